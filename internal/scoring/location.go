package scoring

import (
	"strings"

	"github.com/jordanhope/matchengine/internal/types"
)

// DefaultMetroCities is the default city-tier list: two parties both located
// in one of these metros score well even without a direct city match. The
// source market is Swiss, but the list is configurable.
var DefaultMetroCities = []string{"zurich", "geneva", "basel", "bern", "lausanne"}

// Location score tiers. Absent data is never scored as a hard failure.
const (
	locationScoreExact   = 95
	locationScoreMetro   = 85
	locationScoreUnknown = 80
	locationScoreDefault = 60
)

// LocationScore rates how well two location strings line up, on the 0-100
// breakdown scale. metroCities may be nil to use the default tier list.
func LocationScore(jobLocation, candidateLocation string, metroCities []string) int {
	jobCity := strings.ToLower(strings.TrimSpace(jobLocation))
	candidateCity := strings.ToLower(strings.TrimSpace(candidateLocation))

	if jobCity == "" || candidateCity == "" {
		return locationScoreUnknown
	}

	if strings.Contains(jobCity, candidateCity) || strings.Contains(candidateCity, jobCity) {
		return locationScoreExact
	}

	if metroCities == nil {
		metroCities = DefaultMetroCities
	}
	if inMetro(jobCity, metroCities) && inMetro(candidateCity, metroCities) {
		return locationScoreMetro
	}

	return locationScoreDefault
}

// LocationMatches is the batch-path boolean: a remote-compatible pairing is a
// match, otherwise the city strings must overlap.
func LocationMatches(job *types.JobPosting, candidate *types.CandidateProfile) bool {
	if job.Remote && candidate.Remote {
		return true
	}
	if job.Location == "" || candidate.Location == "" {
		return false
	}

	jobCity := strings.ToLower(strings.TrimSpace(job.Location))
	candidateCity := strings.ToLower(strings.TrimSpace(candidate.Location))
	return strings.Contains(jobCity, candidateCity) || strings.Contains(candidateCity, jobCity)
}

func inMetro(city string, metroCities []string) bool {
	for _, metro := range metroCities {
		if strings.Contains(city, metro) {
			return true
		}
	}
	return false
}
