// Package match implements the cache-or-generate report gateway and the
// batch match trigger. Collaborators are injected through the interfaces
// below so persistence and the narrative service can be substituted in tests.
package match

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/jordanhope/matchengine/internal/types"
)

// Errors that propagate to the outermost caller. Every other failure inside
// this package degrades to a best-effort deterministic result.
var (
	ErrCandidateNotFound = errors.New("candidate profile not found")
	ErrJobNotFound       = errors.New("job posting not found")
)

// ReportStore reads and writes persisted match reports
type ReportStore interface {
	GetMatchReport(ctx context.Context, jobID, candidateID uuid.UUID) (*types.MatchReport, error)
	UpsertMatchReport(ctx context.Context, report *types.MatchReport) error
}

// HotCache is an optional fast cache in front of the report store
type HotCache interface {
	Get(ctx context.Context, jobID, candidateID uuid.UUID) (*types.MatchReport, error)
	Set(ctx context.Context, report *types.MatchReport) error
}

// ProfileStore reads candidate profiles
type ProfileStore interface {
	GetCandidateProfile(ctx context.Context, candidateID uuid.UUID) (*types.CandidateProfile, error)
}

// JobStore reads job postings
type JobStore interface {
	GetJobPosting(ctx context.Context, jobID uuid.UUID) (*types.JobPosting, error)
	ListOpenJobs(ctx context.Context, limit int) ([]types.JobPosting, error)
}

// MatchStore persists batch match records
type MatchStore interface {
	UpsertJobMatch(ctx context.Context, match *types.JobMatch) error
	ListJobMatches(ctx context.Context, candidateID uuid.UUID) ([]types.JobMatch, error)
}

// Notifier emits notification events. Delivery is fire-and-forget from the
// engine's point of view.
type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, kind, title, content string, data map[string]any) error
}

// NarrativeGenerator produces a qualitative report through an external
// language model. Implementations return an error for every failure mode;
// callers fall back to deterministic scoring.
type NarrativeGenerator interface {
	Generate(ctx context.Context, jobID, candidateID uuid.UUID, job *types.JobPosting, candidate *types.CandidateProfile) (*types.MatchReport, error)
}
