package scoring

import (
	"strings"

	"github.com/jordanhope/matchengine/internal/types"
)

// requiredYearsByLevel maps experience-level tags to required years
var requiredYearsByLevel = map[string]int{
	types.LevelEntry:     1,
	types.LevelJunior:    2,
	types.LevelMid:       4,
	types.LevelSenior:    7,
	types.LevelLead:      10,
	types.LevelExecutive: 15,
}

// defaultRequiredYears applies when neither the level tag nor the title gives
// a signal.
const defaultRequiredYears = 3

// batchExperienceTolerance allows a candidate slightly below the bar to still
// count as an experience match on the batch path.
const batchExperienceTolerance = 0.8

// RequiredYears derives the years of experience a posting demands. The
// explicit level tag wins; without one, seniority markers in the title are
// used; otherwise the default applies.
func RequiredYears(job *types.JobPosting) int {
	if years, ok := requiredYearsByLevel[strings.ToLower(strings.TrimSpace(job.ExperienceLevel))]; ok {
		return years
	}

	title := strings.ToLower(job.Title)
	switch {
	case strings.Contains(title, "architect"):
		return 8
	case strings.Contains(title, "lead"):
		return 7
	case strings.Contains(title, "senior"):
		return 5
	default:
		return defaultRequiredYears
	}
}

// ExperienceScore brackets the candidate's years against the requirement for
// the report path.
func ExperienceScore(candidateYears, requiredYears int) int {
	if requiredYears <= 0 {
		return 90
	}

	ratio := float64(candidateYears) / float64(requiredYears)
	switch {
	case ratio >= 1.0:
		return 90
	case ratio >= 0.7:
		return 75
	case ratio >= 0.5:
		return 60
	default:
		return 45
	}
}

// ExperienceMeets is the coarser batch-path derivation: a pass/fail with 20%
// tolerance below the required years.
func ExperienceMeets(candidateYears, requiredYears int) bool {
	return float64(candidateYears) >= float64(requiredYears)*batchExperienceTolerance
}
