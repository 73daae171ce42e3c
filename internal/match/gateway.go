package match

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jordanhope/matchengine/internal/scoring"
	"github.com/jordanhope/matchengine/internal/types"
)

// Gateway implements the cache-or-generate protocol for match reports. Reads
// go hot cache, then report store; any read failure counts as a miss. Writes
// are best effort: a persistence failure is logged and the freshly generated
// report is still returned. Correctness never depends on the cache.
type Gateway struct {
	reports   ReportStore
	cache     HotCache           // optional
	narrative NarrativeGenerator // optional
	scorer    *scoring.Scorer
	logger    *zap.Logger
	now       func() time.Time
}

// NewGateway creates a Gateway. cache and narrative may be nil: without a
// narrative generator every report comes from the deterministic scorer.
func NewGateway(reports ReportStore, cache HotCache, narrative NarrativeGenerator, scorer *scoring.Scorer, logger *zap.Logger) *Gateway {
	if scorer == nil {
		scorer = scoring.NewScorer(nil)
	}
	return &Gateway{
		reports:   reports,
		cache:     cache,
		narrative: narrative,
		scorer:    scorer,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// GetOrGenerate returns the persisted report for the pair when one exists,
// otherwise generates one, persists it best-effort, and returns it. A missing
// job or candidate is the only failure that propagates; every other report is
// complete, with only its quality varying by which path produced it.
func (g *Gateway) GetOrGenerate(ctx context.Context, jobID, candidateID uuid.UUID, job *types.JobPosting, candidate *types.CandidateProfile) (*types.MatchReport, error) {
	if job == nil {
		return nil, ErrJobNotFound
	}
	if candidate == nil {
		return nil, ErrCandidateNotFound
	}

	if cached := g.lookup(ctx, jobID, candidateID); cached != nil {
		return cached, nil
	}

	report := g.generate(ctx, jobID, candidateID, job, candidate)

	if err := g.reports.UpsertMatchReport(ctx, report); err != nil {
		// Non-critical: the report is still returned to the caller.
		g.logger.Warn("failed to persist match report",
			zap.String("job_id", jobID.String()),
			zap.String("candidate_id", candidateID.String()),
			zap.Error(err))
	}
	g.cacheSet(ctx, report)

	return report, nil
}

// lookup checks the hot cache and the report store. Errors on either are
// logged and treated as misses.
func (g *Gateway) lookup(ctx context.Context, jobID, candidateID uuid.UUID) *types.MatchReport {
	if g.cache != nil {
		report, err := g.cache.Get(ctx, jobID, candidateID)
		if err != nil {
			g.logger.Debug("hot cache read failed, treating as miss",
				zap.String("job_id", jobID.String()),
				zap.Error(err))
		} else if report != nil {
			return report
		}
	}

	report, err := g.reports.GetMatchReport(ctx, jobID, candidateID)
	if err != nil {
		g.logger.Warn("report store read failed, treating as miss",
			zap.String("job_id", jobID.String()),
			zap.String("candidate_id", candidateID.String()),
			zap.Error(err))
		return nil
	}
	if report != nil {
		g.cacheSet(ctx, report)
	}
	return report
}

// generate runs the narrative path when available, falling back to the
// deterministic scorer. External failures are never surfaced.
func (g *Gateway) generate(ctx context.Context, jobID, candidateID uuid.UUID, job *types.JobPosting, candidate *types.CandidateProfile) *types.MatchReport {
	if g.narrative != nil {
		report, err := g.narrative.Generate(ctx, jobID, candidateID, job, candidate)
		if err == nil {
			return report
		}
		g.logger.Info("narrative generation failed, using deterministic scoring",
			zap.String("job_id", jobID.String()),
			zap.String("candidate_id", candidateID.String()),
			zap.Error(err))
	}

	return g.scorer.BuildReport(jobID, candidateID, job, candidate, g.now())
}

func (g *Gateway) cacheSet(ctx context.Context, report *types.MatchReport) {
	if g.cache == nil {
		return
	}
	if err := g.cache.Set(ctx, report); err != nil {
		g.logger.Debug("hot cache write failed",
			zap.String("job_id", report.JobID.String()),
			zap.Error(err))
	}
}
