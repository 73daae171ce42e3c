package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jordanhope/matchengine/internal/match"
	"github.com/jordanhope/matchengine/internal/types"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Fetch or generate the match report for a job and candidate",
	Long:  "report returns the cached match report for a (job, candidate) pair when one exists, otherwise generates one, persists it, and prints it as JSON.",
	RunE:  runReport,
}

var (
	reportJobID       string
	reportCandidateID string
)

func init() {
	reportCmd.Flags().StringVar(&reportJobID, "job", "", "Job posting ID (required)")
	reportCmd.Flags().StringVar(&reportCandidateID, "candidate", "", "Candidate ID (required)")
	_ = reportCmd.MarkFlagRequired("job")
	_ = reportCmd.MarkFlagRequired("candidate")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	req := &types.ReportRequest{
		JobID:       reportJobID,
		CandidateID: reportCandidateID,
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}

	jobID := uuid.MustParse(req.JobID)
	candidateID := uuid.MustParse(req.CandidateID)

	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	job, err := a.db.GetJobPosting(ctx, jobID)
	if err != nil {
		return fmt.Errorf("load job posting: %w", err)
	}
	if job == nil {
		return match.ErrJobNotFound
	}

	candidate, err := a.db.GetCandidateProfile(ctx, candidateID)
	if err != nil {
		return fmt.Errorf("load candidate profile: %w", err)
	}
	if candidate == nil {
		return match.ErrCandidateNotFound
	}

	report, err := a.gateway.GetOrGenerate(ctx, jobID, candidateID, job, candidate)
	if err != nil {
		return err
	}

	return printJSON(report)
}

// printJSON writes v to stdout as indented JSON
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
