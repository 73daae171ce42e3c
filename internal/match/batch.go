package match

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jordanhope/matchengine/internal/scoring"
	"github.com/jordanhope/matchengine/internal/types"
)

// Batch-path thresholds
const (
	// relevanceFloor drops matches that are too weak to show at all
	relevanceFloor = 30
	// notificationThreshold marks a match worth an immediate notification
	notificationThreshold = 80
	// triggerMatchLimit is how many matches a trigger run persists
	triggerMatchLimit = 20
	// scoreConcurrency bounds parallel per-posting scoring
	scoreConcurrency = 8
)

// notificationKindJobMatch is the event kind emitted for strong matches
const notificationKindJobMatch = "job_match"

// Trigger is the batch entry point: it ranks a candidate against the open job
// corpus, persists the results, and emits notifications for strong matches.
type Trigger struct {
	profiles ProfileStore
	jobs     JobStore
	matches  MatchStore
	notifier Notifier
	scorer   *scoring.Scorer
	logger   *zap.Logger
	now      func() time.Time
}

// NewTrigger creates a Trigger.
func NewTrigger(profiles ProfileStore, jobs JobStore, matches MatchStore, notifier Notifier, scorer *scoring.Scorer, logger *zap.Logger) *Trigger {
	if scorer == nil {
		scorer = scoring.NewScorer(nil)
	}
	return &Trigger{
		profiles: profiles,
		jobs:     jobs,
		matches:  matches,
		notifier: notifier,
		scorer:   scorer,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// FindJobMatches computes a JobMatch for every open posting, drops those at
// or below the relevance floor, and returns the top limit matches sorted by
// score descending. Per-posting scoring is parallel; the final sort is the
// only ordering guarantee.
func (t *Trigger) FindJobMatches(ctx context.Context, candidateID uuid.UUID, limit int) ([]types.JobMatch, error) {
	profile, err := t.profiles.GetCandidateProfile(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("load candidate profile: %w", err)
	}
	if profile == nil {
		return nil, ErrCandidateNotFound
	}

	jobs, err := t.jobs.ListOpenJobs(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("list open jobs: %w", err)
	}

	now := t.now()
	results := make([]types.JobMatch, len(jobs))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(scoreConcurrency)
	for i := range jobs {
		i := i
		g.Go(func() error {
			results[i] = t.scorer.ScoreJobMatch(profile, &jobs[i], now)
			return nil
		})
	}
	// Scoring is pure computation; the group exists only for bounded fan-out.
	_ = g.Wait()

	matches := make([]types.JobMatch, 0, len(results))
	for _, m := range results {
		if m.Score > relevanceFloor {
			matches = append(matches, m)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

// Run computes and persists matches for a candidate, then emits exactly one
// notification per persisted match at or above the notification threshold.
// Persistence and notification failures are logged and never fail the run.
func (t *Trigger) Run(ctx context.Context, candidateID uuid.UUID) error {
	matches, err := t.FindJobMatches(ctx, candidateID, triggerMatchLimit)
	if err != nil {
		return err
	}

	for i := range matches {
		m := &matches[i]
		if err := t.matches.UpsertJobMatch(ctx, m); err != nil {
			t.logger.Warn("failed to persist job match",
				zap.String("match_id", m.ID),
				zap.Error(err))
			continue
		}

		if m.Score >= notificationThreshold {
			t.notify(ctx, m)
		}
	}

	t.logger.Info("matching run complete",
		zap.String("candidate_id", candidateID.String()),
		zap.Int("matches", len(matches)))
	return nil
}

// notify emits the high-score notification for one persisted match.
func (t *Trigger) notify(ctx context.Context, m *types.JobMatch) {
	title := "New High-Quality Job Match!"
	jobTitle := ""
	company := ""
	if m.Job != nil {
		jobTitle = m.Job.Title
		company = m.Job.Company
	}
	content := fmt.Sprintf("%s at %s is a %d%% match for your profile", jobTitle, company, m.Score)

	err := t.notifier.Notify(ctx, m.CandidateID, notificationKindJobMatch, title, content, map[string]any{
		"jobId":      m.JobID.String(),
		"matchId":    m.ID,
		"matchScore": m.Score,
	})
	if err != nil {
		t.logger.Warn("failed to emit match notification",
			zap.String("match_id", m.ID),
			zap.Error(err))
	}
}
