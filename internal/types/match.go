package types

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SkillMatchClass classifies how a job skill was matched against a candidate
type SkillMatchClass string

// Skill match classifications
const (
	SkillMatchExact   SkillMatchClass = "exact"
	SkillMatchSimilar SkillMatchClass = "similar"
	SkillMatchMissing SkillMatchClass = "missing"
)

// SkillMatch is a per-skill match record. Derived and ephemeral; recomputed on
// every match and never persisted on its own.
type SkillMatch struct {
	Skill        string          `json:"skill"`
	Required     bool            `json:"required"`
	CandidateHas bool            `json:"candidate_has"`
	Experience   int             `json:"experience"` // estimated years with the skill
	Match        SkillMatchClass `json:"match"`
}

// MatchBreakdown holds the five named sub-scores, each 0-100. All five keys are
// always present; factors that cannot be evaluated carry a neutral default
// rather than being omitted.
type MatchBreakdown struct {
	Skills     int `json:"skills"`
	Experience int `json:"experience"`
	Education  int `json:"education"`
	Location   int `json:"location"`
	Salary     int `json:"salary"`
}

// MatchReport is the externally visible result of a single-pair analysis.
// Uniquely keyed by (JobID, CandidateID); re-generation overwrites via upsert.
type MatchReport struct {
	ID              string         `json:"id"` // jobId_candidateId_generatedAt composite
	JobID           uuid.UUID      `json:"job_id"`
	CandidateID     uuid.UUID      `json:"candidate_id"`
	MatchPercent    int            `json:"match_percent"`
	Breakdown       MatchBreakdown `json:"breakdown"`
	Strengths       []string       `json:"strengths"`
	Recommendations []string       `json:"recommendations"`
	GeneratedAt     time.Time      `json:"generated_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// ReportID builds the composite report identifier for a generation cycle
func ReportID(jobID, candidateID uuid.UUID, generatedAt time.Time) string {
	return fmt.Sprintf("%s_%s_%d", jobID, candidateID, generatedAt.UnixMilli())
}

// JobMatch is the batch-path superset record used for ranking and filtering
// many jobs against one candidate.
type JobMatch struct {
	ID              string       `json:"id"` // candidateId-jobId
	JobID           uuid.UUID    `json:"job_id"`
	CandidateID     uuid.UUID    `json:"candidate_id"`
	Score           int          `json:"match_score"`
	Reasons         []string     `json:"match_reasons"`
	SkillMatches    []SkillMatch `json:"skill_matches"`
	LocationMatch   bool         `json:"location_match"`
	SalaryMatch     bool         `json:"salary_match"`
	ExperienceMatch bool         `json:"experience_match"`
	CreatedAt       time.Time    `json:"created_at"`
	Job             *JobPosting  `json:"job,omitempty"`
}

// MatchID builds the batch match identifier for a (candidate, job) pair
func MatchID(candidateID, jobID uuid.UUID) string {
	return fmt.Sprintf("%s-%s", candidateID, jobID)
}
