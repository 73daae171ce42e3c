package scoring

import (
	"fmt"
	"time"

	"github.com/jordanhope/matchengine/internal/skills"
	"github.com/jordanhope/matchengine/internal/types"
)

// Point contributions for the batch ranking formula. These sit on a different
// scale than the breakdown sub-scores on purpose; the batch score is only used
// for ranking and filtering across many jobs.
const (
	batchLocationPoints       = 20
	batchRemotePoints         = 15
	batchSalaryPoints         = 15
	batchExperiencePoints     = 15
	batchExperienceBasePoints = 10
)

// ScoreJobMatch computes the full batch-path JobMatch record for one posting:
// capped skill contribution, the three boolean factors, the combined ranking
// score, and the human-readable match reasons.
func (s *Scorer) ScoreJobMatch(candidate *types.CandidateProfile, job *types.JobPosting, now time.Time) types.JobMatch {
	skillMatches := skills.Resolve(job.Skills, job.Requirements, candidate.Skills)
	skillScore := BatchSkillScore(skillMatches)

	locationMatch := LocationMatches(job, candidate)
	locationScore := 0
	switch {
	case locationMatch:
		locationScore = batchLocationPoints
	case job.Remote && candidate.Remote:
		locationScore = batchRemotePoints
	}

	salaryMatch := SalaryMatches(job.Salary, candidate.SalaryExpectation)
	salaryScore := 0
	if salaryMatch {
		salaryScore = batchSalaryPoints
	}

	experienceMatch := ExperienceMeets(candidate.ExperienceYears, RequiredYears(job))
	experienceScore := batchExperienceBasePoints
	if experienceMatch {
		experienceScore = batchExperiencePoints
	}

	score := int(skillScore) + locationScore + salaryScore + experienceScore
	if score > 100 {
		score = 100
	}

	return types.JobMatch{
		ID:              types.MatchID(candidate.ID, job.ID),
		JobID:           job.ID,
		CandidateID:     candidate.ID,
		Score:           score,
		Reasons:         matchReasons(skillMatches, locationMatch, salaryMatch, experienceMatch, job),
		SkillMatches:    skillMatches,
		LocationMatch:   locationMatch,
		SalaryMatch:     salaryMatch,
		ExperienceMatch: experienceMatch,
		CreatedAt:       now,
		Job:             job,
	}
}

// matchReasons builds the ordered reason strings shown alongside a ranked
// match.
func matchReasons(skillMatches []types.SkillMatch, locationMatch, salaryMatch, experienceMatch bool, job *types.JobPosting) []string {
	var reasons []string

	exact := 0
	similar := 0
	for _, m := range skillMatches {
		if !m.CandidateHas {
			continue
		}
		switch m.Match {
		case types.SkillMatchExact:
			exact++
		case types.SkillMatchSimilar:
			similar++
		}
	}

	if exact > 0 {
		reasons = append(reasons, fmt.Sprintf("%d exact skill match%s", exact, plural(exact, "es")))
	}
	if similar > 0 {
		reasons = append(reasons, fmt.Sprintf("%d related skill%s", similar, plural(similar, "s")))
	}

	if locationMatch {
		if job.Remote {
			reasons = append(reasons, "Remote work available")
		} else {
			reasons = append(reasons, "Location match")
		}
	}
	if salaryMatch {
		reasons = append(reasons, "Salary range alignment")
	}
	if experienceMatch {
		reasons = append(reasons, "Experience level match")
	}

	return reasons
}

func plural(n int, suffix string) string {
	if n > 1 {
		return suffix
	}
	return ""
}
