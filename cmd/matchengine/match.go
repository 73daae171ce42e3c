package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jordanhope/matchengine/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank open job postings for a candidate",
	Long:  "match scores every open job posting against a candidate profile and prints the top matches sorted by score, without persisting anything.",
	RunE:  runMatch,
}

var (
	matchCandidateID string
	matchLimit       int
)

func init() {
	matchCmd.Flags().StringVar(&matchCandidateID, "candidate", "", "Candidate ID (required)")
	matchCmd.Flags().IntVar(&matchLimit, "limit", 20, "Maximum number of matches to return")
	_ = matchCmd.MarkFlagRequired("candidate")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	req := &types.BatchMatchRequest{
		CandidateID: matchCandidateID,
		Limit:       matchLimit,
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}

	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	matches, err := a.trigger.FindJobMatches(ctx, uuid.MustParse(req.CandidateID), req.Limit)
	if err != nil {
		return err
	}

	return printJSON(matches)
}
