package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jordanhope/matchengine/internal/types"
)

// Default salary expectation applied when a profile row carries none
var defaultSalaryExpectation = types.SalaryRange{Min: 0, Max: 200000}

// GetCandidateProfile retrieves a candidate profile by ID. Returns (nil, nil)
// when the profile does not exist. Null columns map to usable defaults so a
// sparse profile still scores.
func (db *DB) GetCandidateProfile(ctx context.Context, candidateID uuid.UUID) (*types.CandidateProfile, error) {
	var (
		skillsJSON      []byte
		salaryJSON      []byte
		preferencesJSON []byte
		experience      *int
		location        *string
		remote          *bool
	)

	profile := types.CandidateProfile{ID: candidateID}

	err := db.pool.QueryRow(ctx,
		`SELECT skills, experience, location, salary_expectation, remote_work, job_preferences
		 FROM profiles WHERE id = $1`,
		candidateID,
	).Scan(&skillsJSON, &experience, &location, &salaryJSON, &remote, &preferencesJSON)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate profile: %w", err)
	}

	if err := decodeJSONColumn(skillsJSON, "skills", &profile.Skills); err != nil {
		return nil, err
	}
	if experience != nil {
		profile.ExperienceYears = *experience
	}
	if location != nil {
		profile.Location = *location
	}
	if remote != nil {
		profile.Remote = *remote
	}

	expectation := defaultSalaryExpectation
	if err := decodeJSONColumn(salaryJSON, "salary_expectation", &expectation); err != nil {
		return nil, err
	}
	profile.SalaryExpectation = &expectation

	if err := decodeJSONColumn(preferencesJSON, "job_preferences", &profile.Preferences); err != nil {
		return nil, err
	}

	return &profile, nil
}
