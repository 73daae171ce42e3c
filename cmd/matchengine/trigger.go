package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jordanhope/matchengine/internal/types"
)

var triggerCmd = &cobra.Command{
	Use:   "trigger",
	Short: "Run a matching pass for a candidate and persist the results",
	Long:  "trigger computes matches for a candidate across all open job postings, persists the top results, and emits a notification for every match at or above the notification threshold.",
	RunE:  runTrigger,
}

var triggerCandidateID string

func init() {
	triggerCmd.Flags().StringVar(&triggerCandidateID, "candidate", "", "Candidate ID (required)")
	_ = triggerCmd.MarkFlagRequired("candidate")
	rootCmd.AddCommand(triggerCmd)
}

func runTrigger(cmd *cobra.Command, args []string) error {
	req := &types.BatchMatchRequest{CandidateID: triggerCandidateID}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}

	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	return a.trigger.Run(ctx, uuid.MustParse(req.CandidateID))
}
