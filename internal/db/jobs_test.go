package db

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jordanhope/matchengine/internal/types"
)

// fakeRow satisfies rowScanner with canned column values; nil leaves the
// destination at its zero value like a SQL NULL.
type fakeRow struct {
	values []any
}

func (r *fakeRow) Scan(dest ...any) error {
	for i, d := range dest {
		v := r.values[i]
		if v == nil {
			continue
		}
		switch d := d.(type) {
		case *uuid.UUID:
			*d = v.(uuid.UUID)
		case *string:
			*d = v.(string)
		case **string:
			s := v.(string)
			*d = &s
		case *[]byte:
			*d = v.([]byte)
		case **int:
			n := v.(int)
			*d = &n
		case **bool:
			b := v.(bool)
			*d = &b
		case *time.Time:
			*d = v.(time.Time)
		}
	}
	return nil
}

func jobRowValues() []any {
	return []any{
		uuid.New(),                  // id
		"Go Developer",              // title
		"Acme",                      // company
		"Build services",            // description
		[]byte(`["go"]`),            // requirements
		[]byte(`["go","sql"]`),      // skills
		"Zurich",                    // location
		100000,                      // salary_min
		120000,                      // salary_max
		"CHF",                       // currency
		types.LevelSenior,           // experience_level
		true,                        // remote
		time.Now().UTC(),            // created_at
	}
}

func TestScanJobPosting_MapsRow(t *testing.T) {
	job, err := scanJobPosting(&fakeRow{values: jobRowValues()})

	assert.NoError(t, err)
	assert.Equal(t, "Acme", job.Company)
	assert.Equal(t, []string{"go"}, job.Requirements)
	assert.Equal(t, []string{"go", "sql"}, job.Skills)
	assert.Equal(t, &types.SalaryRange{Min: 100000, Max: 120000, Currency: "CHF"}, job.Salary)
	assert.True(t, job.Remote)
}

func TestScanJobPosting_NullCompanyGetsPlaceholder(t *testing.T) {
	values := jobRowValues()
	values[2] = nil

	job, err := scanJobPosting(&fakeRow{values: values})

	assert.NoError(t, err)
	assert.Equal(t, "Unknown Company", job.Company)
}

func TestScanJobPosting_CorruptSkillsColumn(t *testing.T) {
	values := jobRowValues()
	values[5] = []byte(`{broken`)

	_, err := scanJobPosting(&fakeRow{values: values})

	assert.Error(t, err, "A corrupt JSON column must not be silently dropped")
	assert.Contains(t, err.Error(), "skills column")
}

func TestDecodeJSONColumn_NilColumnKeepsDefault(t *testing.T) {
	skills := []string{"go"}

	err := decodeJSONColumn(nil, "skills", &skills)

	assert.NoError(t, err)
	assert.Equal(t, []string{"go"}, skills, "A NULL column leaves the default untouched")
}

func TestDecodeJSONColumn_CorruptColumnErrors(t *testing.T) {
	var skills []string

	err := decodeJSONColumn([]byte(`not json`), "skills", &skills)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode skills column")
}
