package types

import "github.com/google/uuid"

// JobPreferences holds candidate preference metadata. It is consumed by the
// batch path for ranking context but not scored.
type JobPreferences struct {
	Industries   []string `json:"industries"`
	Roles        []string `json:"roles"`
	CompanySizes []string `json:"company_sizes"`
}

// CandidateProfile represents a job seeker profile owned by the profile
// subsystem. Read-only input to matching.
type CandidateProfile struct {
	ID                uuid.UUID      `json:"id"`
	Skills            []string       `json:"skills"`
	ExperienceYears   int            `json:"experience_years"`
	Location          string         `json:"location"`
	SalaryExpectation *SalaryRange   `json:"salary_expectation,omitempty"`
	Remote            bool           `json:"remote"`
	Preferences       JobPreferences `json:"job_preferences"`
}
