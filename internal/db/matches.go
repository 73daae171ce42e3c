package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jordanhope/matchengine/internal/types"
)

// UpsertJobMatch persists a batch match record keyed on (job_id,
// candidate_id). Last write wins; concurrent identical computations are safe.
func (db *DB) UpsertJobMatch(ctx context.Context, match *types.JobMatch) error {
	reasonsJSON, err := json.Marshal(match.Reasons)
	if err != nil {
		return fmt.Errorf("failed to marshal match reasons: %w", err)
	}
	skillsJSON, err := json.Marshal(match.SkillMatches)
	if err != nil {
		return fmt.Errorf("failed to marshal skill matches: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO job_matches (id, job_id, candidate_id, match_score, match_reasons,
		                          skill_matches, location_match, salary_match,
		                          experience_match, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		 ON CONFLICT (job_id, candidate_id) DO UPDATE SET
		     match_score = $4,
		     match_reasons = $5,
		     skill_matches = $6,
		     location_match = $7,
		     salary_match = $8,
		     experience_match = $9,
		     updated_at = NOW()`,
		match.ID, match.JobID, match.CandidateID, match.Score, reasonsJSON,
		skillsJSON, match.LocationMatch, match.SalaryMatch, match.ExperienceMatch,
		match.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert job match: %w", err)
	}
	return nil
}

// ListJobMatches retrieves persisted matches for a candidate, highest score
// first, with a joined job summary.
func (db *DB) ListJobMatches(ctx context.Context, candidateID uuid.UUID) ([]types.JobMatch, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT m.id, m.job_id, m.candidate_id, m.match_score, m.match_reasons,
		        m.skill_matches, m.location_match, m.salary_match, m.experience_match,
		        m.created_at,
		        j.title, j.company, j.description, j.location,
		        j.salary_min, j.salary_max, j.created_at
		 FROM job_matches m
		 JOIN jobs j ON j.id = m.job_id
		 WHERE m.candidate_id = $1
		 ORDER BY m.match_score DESC`,
		candidateID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list job matches: %w", err)
	}
	defer rows.Close()

	var matches []types.JobMatch
	for rows.Next() {
		var (
			m                 types.JobMatch
			job               types.JobPosting
			reasonsJSON       []byte
			skillsJSON        []byte
			company, location *string
			salaryMin         *int
			salaryMax         *int
		)

		err := rows.Scan(&m.ID, &m.JobID, &m.CandidateID, &m.Score, &reasonsJSON,
			&skillsJSON, &m.LocationMatch, &m.SalaryMatch, &m.ExperienceMatch,
			&m.CreatedAt,
			&job.Title, &company, &job.Description, &location,
			&salaryMin, &salaryMax, &job.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job match: %w", err)
		}

		if err := decodeJSONColumn(reasonsJSON, "match_reasons", &m.Reasons); err != nil {
			return nil, err
		}
		if err := decodeJSONColumn(skillsJSON, "skill_matches", &m.SkillMatches); err != nil {
			return nil, err
		}

		job.ID = m.JobID
		if company != nil {
			job.Company = *company
		}
		if job.Company == "" {
			job.Company = "Unknown Company"
		}
		if location != nil {
			job.Location = *location
		}
		if salaryMin != nil && salaryMax != nil {
			job.Salary = &types.SalaryRange{Min: *salaryMin, Max: *salaryMax}
		}
		m.Job = &job

		matches = append(matches, m)
	}
	return matches, nil
}
