package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jordanhope/matchengine/internal/types"
)

// DefaultOpenJobsLimit caps how many postings a batch run considers
const DefaultOpenJobsLimit = 100

const jobColumns = `id, title, company, description, requirements, skills, location,
	        salary_min, salary_max, currency, experience_level, remote, created_at`

// GetJobPosting retrieves a single published posting by ID. Returns
// (nil, nil) when the posting does not exist.
func (db *DB) GetJobPosting(ctx context.Context, jobID uuid.UUID) (*types.JobPosting, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1 AND status = 'published'`,
		jobID,
	)

	job, err := scanJobPosting(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job posting: %w", err)
	}
	return job, nil
}

// ListOpenJobs retrieves published postings, newest first. A non-positive
// limit uses DefaultOpenJobsLimit.
func (db *DB) ListOpenJobs(ctx context.Context, limit int) ([]types.JobPosting, error) {
	if limit <= 0 {
		limit = DefaultOpenJobsLimit
	}

	rows, err := db.pool.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs
		 WHERE status = 'published'
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list open jobs: %w", err)
	}
	defer rows.Close()

	var jobs []types.JobPosting
	for rows.Next() {
		job, err := scanJobPosting(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job posting: %w", err)
		}
		jobs = append(jobs, *job)
	}
	return jobs, nil
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanJobPosting(row rowScanner) (*types.JobPosting, error) {
	var (
		j                 types.JobPosting
		requirementsJSON  []byte
		skillsJSON        []byte
		company, location *string
		salaryMin         *int
		salaryMax         *int
		currency          *string
		level             *string
		remote            *bool
	)

	err := row.Scan(&j.ID, &j.Title, &company, &j.Description, &requirementsJSON,
		&skillsJSON, &location, &salaryMin, &salaryMax, &currency, &level, &remote,
		&j.CreatedAt)
	if err != nil {
		return nil, err
	}

	if company != nil {
		j.Company = *company
	}
	if j.Company == "" {
		j.Company = "Unknown Company"
	}
	if location != nil {
		j.Location = *location
	}
	if level != nil {
		j.ExperienceLevel = *level
	}
	if remote != nil {
		j.Remote = *remote
	}
	if err := decodeJSONColumn(requirementsJSON, "requirements", &j.Requirements); err != nil {
		return nil, err
	}
	if err := decodeJSONColumn(skillsJSON, "skills", &j.Skills); err != nil {
		return nil, err
	}
	if salaryMin != nil && salaryMax != nil {
		j.Salary = &types.SalaryRange{Min: *salaryMin, Max: *salaryMax}
		if currency != nil {
			j.Salary.Currency = *currency
		}
	}

	return &j, nil
}
