// Package scoring computes the factor sub-scores and the composite match
// percentage between a candidate profile and a job posting.
package scoring

import (
	"github.com/jordanhope/matchengine/internal/types"
)

// Per-skill weights and contributions for the weighted skill formula.
// Required skills count three times as much as optional ones; an exact match
// earns the full contribution, a synonym match earns a partial one.
const (
	requiredSkillWeight = 3.0
	optionalSkillWeight = 1.0
	exactContribution   = 10.0
	similarContribution = 6.0

	// neutralSkillScore is used when a posting names no skills at all, so
	// terse postings are not unfairly penalized.
	neutralSkillScore = 70

	// batchSkillCap limits the skill contribution inside the batch ranking
	// formula. The breakdown path reports the full 0-100 scale instead; the
	// two scales are intentionally different (see DESIGN.md).
	batchSkillCap = 50.0
)

// weightedSkillRatio returns weightedSum / totalWeight over the matches.
// The ratio lands in [0, 10]: 10 when every skill is an exact match.
func weightedSkillRatio(matches []types.SkillMatch) (float64, bool) {
	if len(matches) == 0 {
		return 0, false
	}

	sum := 0.0
	totalWeight := 0.0
	for _, m := range matches {
		weight := optionalSkillWeight
		if m.Required {
			weight = requiredSkillWeight
		}
		totalWeight += weight

		switch m.Match {
		case types.SkillMatchExact:
			sum += weight * exactContribution
		case types.SkillMatchSimilar:
			sum += weight * similarContribution
		}
	}

	if totalWeight == 0 {
		return 0, false
	}
	return sum / totalWeight, true
}

// SkillScore reports the skill sub-score on the canonical 0-100 breakdown
// scale. An empty match list yields the neutral default.
func SkillScore(matches []types.SkillMatch) int {
	ratio, ok := weightedSkillRatio(matches)
	if !ok {
		return neutralSkillScore
	}
	return clampScore(int(ratio*10.0 + 0.5))
}

// BatchSkillScore reports the capped skill contribution used by the batch
// ranking formula. Kept separate from SkillScore because the two call sites
// use different scales and unifying them would change observable scores.
func BatchSkillScore(matches []types.SkillMatch) float64 {
	ratio, ok := weightedSkillRatio(matches)
	if !ok {
		return 0
	}
	if ratio > batchSkillCap {
		return batchSkillCap
	}
	return ratio
}

// clampScore clamps a sub-score into [0, 100]
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
