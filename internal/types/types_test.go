package types

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSalaryRangeMidpoint(t *testing.T) {
	r := &SalaryRange{Min: 90000, Max: 110000}

	assert.Equal(t, 100000.0, r.Midpoint())
}

func TestReportID(t *testing.T) {
	jobID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	candidateID := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	generatedAt := time.UnixMilli(1700000000000).UTC()

	id := ReportID(jobID, candidateID, generatedAt)

	assert.Equal(t, "11111111-1111-1111-1111-111111111111_22222222-2222-2222-2222-222222222222_1700000000000", id)
}

func TestMatchID(t *testing.T) {
	candidateID := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	jobID := uuid.MustParse("11111111-1111-1111-1111-111111111111")

	assert.Equal(t, "22222222-2222-2222-2222-222222222222-11111111-1111-1111-1111-111111111111", MatchID(candidateID, jobID))
}

func TestReportRequestValidate(t *testing.T) {
	valid := &ReportRequest{JobID: uuid.NewString(), CandidateID: uuid.NewString()}
	assert.NoError(t, valid.Validate())

	missing := &ReportRequest{JobID: uuid.NewString()}
	assert.Error(t, missing.Validate())

	notUUID := &ReportRequest{JobID: "abc", CandidateID: uuid.NewString()}
	assert.Error(t, notUUID.Validate())
}

func TestBatchMatchRequestValidate(t *testing.T) {
	valid := &BatchMatchRequest{CandidateID: uuid.NewString(), Limit: 20}
	assert.NoError(t, valid.Validate())

	tooHigh := &BatchMatchRequest{CandidateID: uuid.NewString(), Limit: 500}
	assert.Error(t, tooHigh.Validate())

	negative := &BatchMatchRequest{CandidateID: uuid.NewString(), Limit: -1}
	assert.Error(t, negative.Validate())
}
