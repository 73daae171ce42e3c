package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jordanhope/matchengine/internal/types"
)

// GetMatchReport retrieves the persisted report for a (job, candidate) pair.
// Returns (nil, nil) when no report has been generated for the pair.
func (db *DB) GetMatchReport(ctx context.Context, jobID, candidateID uuid.UUID) (*types.MatchReport, error) {
	var (
		r                   types.MatchReport
		breakdownJSON       []byte
		strengthsJSON       []byte
		recommendationsJSON []byte
	)

	err := db.pool.QueryRow(ctx,
		`SELECT job_id, user_id, match_percent, breakdown, strengths, recommendations,
		        generated_at, updated_at
		 FROM ai_matches WHERE job_id = $1 AND user_id = $2`,
		jobID, candidateID,
	).Scan(&r.JobID, &r.CandidateID, &r.MatchPercent, &breakdownJSON, &strengthsJSON,
		&recommendationsJSON, &r.GeneratedAt, &r.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get match report: %w", err)
	}

	if err := decodeJSONColumn(breakdownJSON, "breakdown", &r.Breakdown); err != nil {
		return nil, err
	}
	if err := decodeJSONColumn(strengthsJSON, "strengths", &r.Strengths); err != nil {
		return nil, err
	}
	if err := decodeJSONColumn(recommendationsJSON, "recommendations", &r.Recommendations); err != nil {
		return nil, err
	}

	r.ID = types.ReportID(r.JobID, r.CandidateID, r.GeneratedAt)
	return &r, nil
}

// UpsertMatchReport persists a report keyed on (job_id, user_id). Re-saving
// the same pair overwrites the previous record and refreshes updated_at.
func (db *DB) UpsertMatchReport(ctx context.Context, report *types.MatchReport) error {
	breakdownJSON, err := json.Marshal(report.Breakdown)
	if err != nil {
		return fmt.Errorf("failed to marshal breakdown: %w", err)
	}
	strengthsJSON, err := json.Marshal(report.Strengths)
	if err != nil {
		return fmt.Errorf("failed to marshal strengths: %w", err)
	}
	recommendationsJSON, err := json.Marshal(report.Recommendations)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO ai_matches (job_id, user_id, match_percent, breakdown, strengths,
		                         recommendations, generated_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		 ON CONFLICT (job_id, user_id) DO UPDATE SET
		     match_percent = $3,
		     breakdown = $4,
		     strengths = $5,
		     recommendations = $6,
		     generated_at = $7,
		     updated_at = NOW()`,
		report.JobID, report.CandidateID, report.MatchPercent, breakdownJSON,
		strengthsJSON, recommendationsJSON, report.GeneratedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert match report: %w", err)
	}
	return nil
}
