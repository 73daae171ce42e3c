package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jordanhope/matchengine/internal/types"
)

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List persisted matches for a candidate",
	Long:  "matches reads back the matches persisted by earlier trigger runs, highest score first, with a joined job summary.",
	RunE:  runMatches,
}

var matchesCandidateID string

func init() {
	matchesCmd.Flags().StringVar(&matchesCandidateID, "candidate", "", "Candidate ID (required)")
	_ = matchesCmd.MarkFlagRequired("candidate")
	rootCmd.AddCommand(matchesCmd)
}

func runMatches(cmd *cobra.Command, args []string) error {
	req := &types.BatchMatchRequest{CandidateID: matchesCandidateID}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}

	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	matches, err := a.db.ListJobMatches(ctx, uuid.MustParse(req.CandidateID))
	if err != nil {
		return err
	}

	return printJSON(matches)
}
