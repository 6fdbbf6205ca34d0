package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-analyzer/internal/observability"
	"github.com/jonathan/job-analyzer/internal/ranking"
	"github.com/jonathan/job-analyzer/internal/types"
)

var matchSkillsCmd = &cobra.Command{
	Use:   "match-skills",
	Short: "Match resume skills against a job's required skills",
	Long:  "Score how well a list of resume skills covers a job's required skills, reporting matched, partial, and missing skills.",
	RunE:  runMatchSkills,
}

var (
	matchResumeSkills   []string
	matchResumeFile     string
	matchRequiredSkills []string
	matchVerbose        bool
)

func init() {
	matchSkillsCmd.Flags().StringSliceVar(&matchResumeSkills, "resume-skills", nil, "Comma-separated resume skills")
	matchSkillsCmd.Flags().StringVar(&matchResumeFile, "resume-file", "", "Path to a JSON file with a {\"skills\": [...]} object")
	matchSkillsCmd.Flags().StringSliceVar(&matchRequiredSkills, "required-skills", nil, "Comma-separated required skills (required)")
	matchSkillsCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print a match summary")

	_ = matchSkillsCmd.MarkFlagRequired("required-skills")

	rootCmd.AddCommand(matchSkillsCmd)
}

// loadResumeSkills resolves the resume skill list from the flag values.
func loadResumeSkills() ([]string, error) {
	if matchResumeFile == "" {
		if len(matchResumeSkills) == 0 {
			return nil, fmt.Errorf("either --resume-skills or --resume-file must be provided")
		}
		return matchResumeSkills, nil
	}

	data, err := os.ReadFile(matchResumeFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}
	var resume types.ResumeSkillSet
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("failed to parse resume file: %w", err)
	}
	return append(resume.Skills, matchResumeSkills...), nil
}

func runMatchSkills(cmd *cobra.Command, args []string) error {
	resumeSkills, err := loadResumeSkills()
	if err != nil {
		return err
	}

	score := ranking.MatchResumeSkills(resumeSkills, matchRequiredSkills)

	if matchVerbose {
		observability.NewPrinter(os.Stderr).PrintSkillMatch(score)
	}

	out, err := json.MarshalIndent(score, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(out))

	return nil
}
