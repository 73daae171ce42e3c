// Package skills normalizes skill tokens and resolves approximate matches
// between a job's required skills and a candidate's declared skills.
package skills

import (
	"strings"

	"github.com/jordanhope/matchengine/internal/types"
)

// Estimated years of hands-on experience per match class. Timeline data is not
// reliably available, so these are coarse heuristics.
const (
	exactMatchYears   = 3
	similarMatchYears = 1
)

// synonymTable maps a normalized skill to related skill names. A candidate
// skill counts as similar when it has a bidirectional substring relationship
// with one of the target's synonyms.
var synonymTable = map[string][]string{
	"javascript": {"js", "node.js", "react", "vue", "angular"},
	"typescript": {"ts", "javascript", "js"},
	"react":      {"reactjs", "react.js", "javascript"},
	"python":     {"django", "flask", "fastapi"},
	"java":       {"spring", "spring boot"},
	"sql":        {"postgresql", "mysql", "sqlite", "database"},
	"docker":     {"containerization", "kubernetes"},
	"aws":        {"cloud", "azure", "gcp"},
}

// Normalize canonicalizes a skill token for comparison
func Normalize(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

// Resolve produces a SkillMatch for every skill the job names: the union of
// its declared skills and its explicit requirements list, de-duplicated in
// first-seen order. Classification is deterministic for a fixed input pair.
func Resolve(jobSkills, requirements, candidateSkills []string) []types.SkillMatch {
	union := make([]string, 0, len(jobSkills)+len(requirements))
	seen := make(map[string]bool)
	for _, s := range append(append([]string{}, jobSkills...), requirements...) {
		if normalized := Normalize(s); normalized != "" && !seen[normalized] {
			seen[normalized] = true
			union = append(union, s)
		}
	}

	requiredSet := make(map[string]bool, len(requirements))
	for _, r := range requirements {
		requiredSet[Normalize(r)] = true
	}

	candidateSet := make(map[string]bool, len(candidateSkills))
	normalizedCandidate := make([]string, 0, len(candidateSkills))
	for _, s := range candidateSkills {
		normalized := Normalize(s)
		if normalized == "" {
			continue
		}
		candidateSet[normalized] = true
		normalizedCandidate = append(normalizedCandidate, normalized)
	}

	matches := make([]types.SkillMatch, 0, len(union))
	for _, jobSkill := range union {
		normalized := Normalize(jobSkill)

		match := types.SkillMatchMissing
		years := 0
		switch {
		case candidateSet[normalized]:
			match = types.SkillMatchExact
			years = exactMatchYears
		case hasSimilar(normalized, normalizedCandidate):
			match = types.SkillMatchSimilar
			years = similarMatchYears
		}

		matches = append(matches, types.SkillMatch{
			Skill:        jobSkill,
			Required:     requiredSet[normalized],
			CandidateHas: match != types.SkillMatchMissing,
			Experience:   years,
			Match:        match,
		})
	}

	return matches
}

// hasSimilar reports whether any candidate skill relates to the target skill
// through the synonym table.
func hasSimilar(targetSkill string, normalizedCandidateSkills []string) bool {
	similar, ok := synonymTable[targetSkill]
	if !ok {
		return false
	}

	for _, candidate := range normalizedCandidateSkills {
		for _, s := range similar {
			if strings.Contains(candidate, s) || strings.Contains(s, candidate) {
				return true
			}
		}
	}
	return false
}
