package types

import "github.com/go-playground/validator/v10"

// ReportRequest identifies a single (job, candidate) pair for report generation.
type ReportRequest struct {
	JobID       string `json:"job_id" validate:"required,uuid"`
	CandidateID string `json:"candidate_id" validate:"required,uuid"`
}

// BatchMatchRequest asks for ranked matches across the open-job corpus.
type BatchMatchRequest struct {
	CandidateID string `json:"candidate_id" validate:"required,uuid"`
	Limit       int    `json:"limit" validate:"gte=0,lte=100"`
}

// Validate validates the ReportRequest using the validator.
func (r *ReportRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the BatchMatchRequest using the validator.
func (r *BatchMatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
