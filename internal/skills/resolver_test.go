package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jordanhope/matchengine/internal/types"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "react", Normalize("  React "))
	assert.Equal(t, "node.js", Normalize("Node.JS"))
	assert.Equal(t, "", Normalize("   "))
}

func TestResolve_ExactMatch(t *testing.T) {
	matches := Resolve([]string{"Go"}, nil, []string{"go"})

	assert.Len(t, matches, 1)
	assert.Equal(t, types.SkillMatchExact, matches[0].Match)
	assert.True(t, matches[0].CandidateHas)
	assert.Equal(t, 3, matches[0].Experience, "Exact match carries the 3-year heuristic")
}

func TestResolve_ExactMatchIsCaseInsensitive(t *testing.T) {
	matches := Resolve([]string{"TypeScript"}, nil, []string{"  typescript "})

	assert.Equal(t, types.SkillMatchExact, matches[0].Match)
}

func TestResolve_SimilarViaSynonym(t *testing.T) {
	matches := Resolve([]string{"javascript"}, nil, []string{"react"})

	assert.Equal(t, types.SkillMatchSimilar, matches[0].Match)
	assert.True(t, matches[0].CandidateHas)
	assert.Equal(t, 1, matches[0].Experience, "Similar match carries the 1-year heuristic")
}

func TestResolve_SimilarViaSubstring(t *testing.T) {
	// "node.js experience" contains the synonym "node.js"
	matches := Resolve([]string{"javascript"}, nil, []string{"node.js experience"})

	assert.Equal(t, types.SkillMatchSimilar, matches[0].Match)
}

func TestResolve_Missing(t *testing.T) {
	matches := Resolve([]string{"rust"}, nil, []string{"python"})

	assert.Equal(t, types.SkillMatchMissing, matches[0].Match)
	assert.False(t, matches[0].CandidateHas)
	assert.Equal(t, 0, matches[0].Experience)
}

func TestResolve_UnionDeduplicatesFirstSeen(t *testing.T) {
	matches := Resolve([]string{"Go", "SQL"}, []string{"sql", "Docker"}, nil)

	assert.Len(t, matches, 3, "sql appears once despite being listed twice")
	assert.Equal(t, "Go", matches[0].Skill)
	assert.Equal(t, "SQL", matches[1].Skill, "First-seen casing is kept")
	assert.Equal(t, "Docker", matches[2].Skill)
}

func TestResolve_RequiredFlagFollowsRequirements(t *testing.T) {
	matches := Resolve([]string{"go"}, []string{"sql"}, nil)

	assert.False(t, matches[0].Required)
	assert.True(t, matches[1].Required)
}

func TestResolve_EmptyCandidateSkillNeverMatches(t *testing.T) {
	matches := Resolve([]string{"javascript"}, nil, []string{"   "})

	assert.Equal(t, types.SkillMatchMissing, matches[0].Match,
		"A blank candidate skill must not substring-match everything")
}

func TestResolve_NoJobSkills(t *testing.T) {
	matches := Resolve(nil, nil, []string{"go"})

	assert.Empty(t, matches)
}

func TestResolve_Deterministic(t *testing.T) {
	first := Resolve([]string{"go", "sql"}, []string{"docker"}, []string{"go", "postgresql"})
	second := Resolve([]string{"go", "sql"}, []string{"docker"}, []string{"go", "postgresql"})

	assert.Equal(t, first, second)
}
