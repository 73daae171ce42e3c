// Package types provides type definitions for structured data used throughout the matching engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// Experience level constants for job postings
const (
	LevelEntry     = "entry"
	LevelJunior    = "junior"
	LevelMid       = "mid"
	LevelSenior    = "senior"
	LevelLead      = "lead"
	LevelExecutive = "executive"
)

// SalaryRange represents a salary band in a single currency
type SalaryRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency,omitempty"`
}

// Midpoint returns the middle of the range
func (r *SalaryRange) Midpoint() float64 {
	return float64(r.Min+r.Max) / 2.0
}

// JobPosting represents a published job owned by the job-listing subsystem.
// It is a read-only input to matching.
type JobPosting struct {
	ID              uuid.UUID    `json:"id"`
	Title           string       `json:"title"`
	Company         string       `json:"company"`
	Description     string       `json:"description"`
	Requirements    []string     `json:"requirements"` // required skills
	Skills          []string     `json:"skills"`       // declared tech stack, required or not
	Location        string       `json:"location"`
	Salary          *SalaryRange `json:"salary,omitempty"`
	ExperienceLevel string       `json:"experience_level"` // entry, mid, senior, lead, executive
	Remote          bool         `json:"remote"`
	CreatedAt       time.Time    `json:"created_at"`
}
