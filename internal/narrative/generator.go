// Package narrative obtains a qualitative match analysis from an external
// language model. Every failure mode is returned as an error so the caller
// can fall back to the deterministic scoring path; nothing here is surfaced
// to end users.
package narrative

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	_ "embed"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jordanhope/matchengine/internal/llm"
	"github.com/jordanhope/matchengine/internal/schemas"
	"github.com/jordanhope/matchengine/internal/types"
)

//go:embed prompt.md
var promptTemplate string

//go:embed report.schema.json
var reportSchema string

// DefaultTimeout bounds the single outbound generation call
const DefaultTimeout = 30 * time.Second

const maxLogPreview = 200

// Generator produces narrative-rich match reports through an LLM client.
type Generator struct {
	client  llm.Client
	logger  *zap.Logger
	timeout time.Duration
}

// NewGenerator creates a Generator. A zero timeout uses DefaultTimeout.
func NewGenerator(client llm.Client, logger *zap.Logger, timeout time.Duration) *Generator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Generator{
		client:  client,
		logger:  logger,
		timeout: timeout,
	}
}

// payload is the fixed JSON shape requested from the model
type payload struct {
	OverallMatch float64 `json:"overallMatch"`
	Breakdown    struct {
		Skills     float64 `json:"skills"`
		Experience float64 `json:"experience"`
		Education  float64 `json:"education"`
		Location   float64 `json:"location"`
		Salary     float64 `json:"salary"`
	} `json:"breakdown"`
	Strengths       []string `json:"strengths"`
	Recommendations []string `json:"recommendations"`
}

// Generate issues one structured-prompt request and validates the returned
// payload against the report schema before accepting it. Any transport,
// parse, or validation failure is returned as an error.
func (g *Generator) Generate(ctx context.Context, jobID, candidateID uuid.UUID, job *types.JobPosting, candidate *types.CandidateProfile) (*types.MatchReport, error) {
	if job == nil || candidate == nil {
		return nil, fmt.Errorf("job and candidate profiles are required")
	}

	prompt, err := buildPrompt(job, candidate)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	g.logger.Debug("narrative generate request",
		zap.String("job_id", jobID.String()),
		zap.String("candidate_id", candidateID.String()),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
	)

	raw, err := g.client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("narrative generation failed: %w", err)
	}

	g.logger.Debug("narrative generate response",
		zap.String("job_id", jobID.String()),
		zap.String("candidate_id", candidateID.String()),
		zap.String("response_preview", truncateForLog(raw, maxLogPreview)),
	)

	parsed, err := parsePayload(raw)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &types.MatchReport{
		ID:           types.ReportID(jobID, candidateID, now),
		JobID:        jobID,
		CandidateID:  candidateID,
		MatchPercent: roundScore(parsed.OverallMatch),
		Breakdown: types.MatchBreakdown{
			Skills:     roundScore(parsed.Breakdown.Skills),
			Experience: roundScore(parsed.Breakdown.Experience),
			Education:  roundScore(parsed.Breakdown.Education),
			Location:   roundScore(parsed.Breakdown.Location),
			Salary:     roundScore(parsed.Breakdown.Salary),
		},
		Strengths:       parsed.Strengths,
		Recommendations: parsed.Recommendations,
		GeneratedAt:     now,
		UpdatedAt:       now,
	}, nil
}

// buildPrompt renders the embedded template with both profiles as JSON
func buildPrompt(job *types.JobPosting, candidate *types.CandidateProfile) (string, error) {
	jobJSON, err := json.MarshalIndent(job, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal job profile: %w", err)
	}
	candidateJSON, err := json.MarshalIndent(candidate, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal candidate profile: %w", err)
	}

	prompt := strings.ReplaceAll(promptTemplate, "{{JOB_JSON}}", string(jobJSON))
	prompt = strings.ReplaceAll(prompt, "{{CANDIDATE_JSON}}", string(candidateJSON))
	return prompt, nil
}

// parsePayload validates the raw model output against the report schema and
// decodes it. Rejection here triggers the deterministic fallback upstream.
func parsePayload(raw string) (*payload, error) {
	cleaned := llm.CleanJSONBlock(raw)

	if err := schemas.ValidateJSONString(reportSchema, cleaned); err != nil {
		return nil, fmt.Errorf("narrative payload rejected: %w", err)
	}

	var parsed payload
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, fmt.Errorf("parse narrative payload: %w", err)
	}

	return &parsed, nil
}

func roundScore(score float64) int {
	rounded := int(math.Round(score))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}

func truncateForLog(s string, limit int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
