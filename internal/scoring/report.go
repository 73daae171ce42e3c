package scoring

import (
	"time"

	"github.com/google/uuid"

	"github.com/jordanhope/matchengine/internal/types"
)

// BuildReport produces the deterministic MatchReport for a pair. This is the
// fallback path behind the narrative generator and performs no I/O.
func (s *Scorer) BuildReport(jobID, candidateID uuid.UUID, job *types.JobPosting, candidate *types.CandidateProfile, now time.Time) *types.MatchReport {
	breakdown := s.Breakdown(job, candidate)

	return &types.MatchReport{
		ID:              types.ReportID(jobID, candidateID, now),
		JobID:           jobID,
		CandidateID:     candidateID,
		MatchPercent:    Composite(breakdown),
		Breakdown:       breakdown,
		Strengths:       Strengths(breakdown),
		Recommendations: Recommendations(breakdown),
		GeneratedAt:     now,
		UpdatedAt:       now,
	}
}
