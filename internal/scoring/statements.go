package scoring

import "github.com/jordanhope/matchengine/internal/types"

// Thresholds for narrative synthesis from the sub-score pattern
const (
	strengthThreshold       = 80
	recommendationThreshold = 70
	maxStatements           = 4
)

// Strengths derives strength statements from the breakdown: one fixed phrase
// per strong factor, always supplemented with two generic closers, capped at
// four. The output is never empty.
func Strengths(b types.MatchBreakdown) []string {
	strengths := make([]string, 0, maxStatements)

	if b.Skills >= strengthThreshold {
		strengths = append(strengths, "Excellent technical skills alignment")
	}
	if b.Experience >= strengthThreshold {
		strengths = append(strengths, "Strong relevant experience")
	}
	if b.Location >= strengthThreshold {
		strengths = append(strengths, "Ideal location match")
	}

	strengths = append(strengths,
		"Professional background fits company culture",
		"Career trajectory aligns with role requirements",
	)

	return capStatements(strengths)
}

// Recommendations derives actionable recommendations: targeted advice for
// weak factors, then generic application advice, capped at four. The output
// is never empty.
func Recommendations(b types.MatchBreakdown) []string {
	recommendations := make([]string, 0, maxStatements)

	if b.Skills < recommendationThreshold {
		recommendations = append(recommendations,
			"Consider upskilling in key technical areas mentioned in the job description")
	}
	if b.Experience < recommendationThreshold {
		recommendations = append(recommendations,
			"Highlight specific achievements and impact from previous roles")
	}

	recommendations = append(recommendations,
		"Customize your application to emphasize relevant project experience",
		"Network with current employees to understand company culture better",
		"Prepare specific examples demonstrating your expertise during interviews",
	)

	return capStatements(recommendations)
}

func capStatements(statements []string) []string {
	if len(statements) > maxStatements {
		return statements[:maxStatements]
	}
	return statements
}
