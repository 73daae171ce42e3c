package scoring

import (
	"math"

	"github.com/jordanhope/matchengine/internal/types"
)

// neutralSalaryScore applies when either side's range is missing; absent
// salary data is non-blocking.
const neutralSalaryScore = 75

// batchSalaryTolerance is the relative midpoint difference still considered a
// match on the batch path.
const batchSalaryTolerance = 0.2

// SalaryScore brackets the relative midpoint difference between the job's
// range and the candidate's expectation, on the 0-100 breakdown scale.
func SalaryScore(jobRange, candidateRange *types.SalaryRange) int {
	if jobRange == nil || candidateRange == nil {
		return neutralSalaryScore
	}

	jobMid := jobRange.Midpoint()
	candidateMid := candidateRange.Midpoint()
	if jobMid == 0 {
		return neutralSalaryScore
	}

	difference := math.Abs(jobMid-candidateMid) / jobMid
	switch {
	case difference <= 0.1:
		return 95
	case difference <= 0.2:
		return 85
	case difference <= 0.3:
		return 70
	default:
		return 55
	}
}

// SalaryMatches is the batch-path boolean. Missing data on either side counts
// as a match; otherwise the midpoints must sit within tolerance of the
// candidate's expectation.
func SalaryMatches(jobRange, candidateRange *types.SalaryRange) bool {
	if jobRange == nil || candidateRange == nil {
		return true
	}

	candidateMid := candidateRange.Midpoint()
	if candidateMid == 0 {
		return true
	}

	return math.Abs(jobRange.Midpoint()-candidateMid)/candidateMid <= batchSalaryTolerance
}
