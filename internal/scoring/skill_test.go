package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jordanhope/matchengine/internal/types"
)

func TestSkillScore_AllExact(t *testing.T) {
	matches := []types.SkillMatch{
		{Skill: "go", Required: true, Match: types.SkillMatchExact},
		{Skill: "sql", Match: types.SkillMatchExact},
	}

	assert.Equal(t, 100, SkillScore(matches), "Every skill exact should max out the scale")
}

func TestSkillScore_AllMissing(t *testing.T) {
	matches := []types.SkillMatch{
		{Skill: "go", Required: true, Match: types.SkillMatchMissing},
	}

	assert.Equal(t, 0, SkillScore(matches))
}

func TestSkillScore_EmptyIsNeutral(t *testing.T) {
	assert.Equal(t, 70, SkillScore(nil), "Postings without skills get the neutral default")
}

func TestSkillScore_RequiredWeighsTriple(t *testing.T) {
	// Required exact (weight 3, 30 points) + optional missing (weight 1):
	// 30 / 4 = 7.5 ratio -> 75.
	weighted := []types.SkillMatch{
		{Skill: "go", Required: true, Match: types.SkillMatchExact},
		{Skill: "sql", Match: types.SkillMatchMissing},
	}
	// Flip which skill is required and the score drops: 10 / 4 = 2.5 -> 25.
	flipped := []types.SkillMatch{
		{Skill: "go", Match: types.SkillMatchExact},
		{Skill: "sql", Required: true, Match: types.SkillMatchMissing},
	}

	assert.Equal(t, 75, SkillScore(weighted))
	assert.Equal(t, 25, SkillScore(flipped))
}

func TestSkillScore_SimilarEarnsPartialCredit(t *testing.T) {
	matches := []types.SkillMatch{
		{Skill: "javascript", Required: true, Match: types.SkillMatchSimilar},
	}

	assert.Equal(t, 60, SkillScore(matches))
}

func TestSkillScore_TwoExactOneMissingRequired(t *testing.T) {
	// Three required skills, two exact and one missing: 60 / 9 ≈ 6.67 -> 67.
	matches := []types.SkillMatch{
		{Skill: "go", Required: true, Match: types.SkillMatchExact},
		{Skill: "sql", Required: true, Match: types.SkillMatchExact},
		{Skill: "kubernetes", Required: true, Match: types.SkillMatchMissing},
	}

	score := SkillScore(matches)
	assert.Equal(t, 67, score)
	assert.Greater(t, score, 50)
	assert.Less(t, score, 75)
}

func TestBatchSkillScore_UsesRawRatio(t *testing.T) {
	matches := []types.SkillMatch{
		{Skill: "go", Required: true, Match: types.SkillMatchExact},
	}

	assert.InDelta(t, 10.0, BatchSkillScore(matches), 1e-9,
		"Batch path keeps the uncapped 0-10 ratio, not the 0-100 scale")
}

func TestBatchSkillScore_EmptyIsZero(t *testing.T) {
	assert.Zero(t, BatchSkillScore(nil))
}
