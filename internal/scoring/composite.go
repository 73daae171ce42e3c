package scoring

import (
	"math"

	"github.com/jordanhope/matchengine/internal/skills"
	"github.com/jordanhope/matchengine/internal/types"
)

// Composite weights. They must sum to 1.0; CompositeWeightsSum exists so the
// invariant is checked by tests rather than at runtime.
const (
	weightSkills     = 0.30
	weightExperience = 0.25
	weightEducation  = 0.20
	weightLocation   = 0.15
	weightSalary     = 0.10
)

// CompositeWeightsSum is the sum of all composite weights
const CompositeWeightsSum = weightSkills + weightExperience + weightEducation + weightLocation + weightSalary

// DefaultEducationScore is the fixed education sub-score. There is no
// dedicated education-matching algorithm yet; every breakdown carries this
// placeholder so the key is never absent.
const DefaultEducationScore = 80

// Scorer computes deterministic breakdowns and composite scores. The zero
// value uses the default metro city list.
type Scorer struct {
	MetroCities []string
}

// NewScorer returns a Scorer with the given metro city tier list; nil uses
// the default.
func NewScorer(metroCities []string) *Scorer {
	return &Scorer{MetroCities: metroCities}
}

// Breakdown evaluates all five factor scores for a (job, candidate) pair.
// Every key is always populated.
func (s *Scorer) Breakdown(job *types.JobPosting, candidate *types.CandidateProfile) types.MatchBreakdown {
	matches := skills.Resolve(job.Skills, job.Requirements, candidate.Skills)

	return types.MatchBreakdown{
		Skills:     SkillScore(matches),
		Experience: ExperienceScore(candidate.ExperienceYears, RequiredYears(job)),
		Education:  DefaultEducationScore,
		Location:   LocationScore(job.Location, candidate.Location, s.MetroCities),
		Salary:     SalaryScore(job.Salary, candidate.SalaryExpectation),
	}
}

// Composite combines the sub-scores into the overall match percentage,
// rounded to the nearest integer.
func Composite(b types.MatchBreakdown) int {
	score := float64(b.Skills)*weightSkills +
		float64(b.Experience)*weightExperience +
		float64(b.Education)*weightEducation +
		float64(b.Location)*weightLocation +
		float64(b.Salary)*weightSalary
	return clampScore(int(math.Round(score)))
}
