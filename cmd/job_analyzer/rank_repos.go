package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-analyzer/internal/analyze"
	"github.com/jonathan/job-analyzer/internal/github"
	"github.com/jonathan/job-analyzer/internal/observability"
	"github.com/jonathan/job-analyzer/internal/ranking"
	"github.com/jonathan/job-analyzer/internal/types"
)

var rankReposCmd = &cobra.Command{
	Use:   "rank-repos",
	Short: "Rank a GitHub user's repositories against a job posting",
	Long:  "Fetch a GitHub user's repositories and rank them by relevance to the skills and keywords extracted from a job posting.",
	RunE:  runRankRepos,
}

var (
	rankUser     string
	rankJobURL   string
	rankTextFile string
	rankVerbose  bool
)

func init() {
	rankReposCmd.Flags().StringVar(&rankUser, "user", "", "GitHub username whose repositories to rank (required)")
	rankReposCmd.Flags().StringVarP(&rankJobURL, "url", "u", "", "URL to fetch the job posting from")
	rankReposCmd.Flags().StringVarP(&rankTextFile, "text-file", "t", "", "Path to text file containing the job posting")
	rankReposCmd.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print a ranking summary")

	_ = rankReposCmd.MarkFlagRequired("user")

	rootCmd.AddCommand(rankReposCmd)
}

func runRankRepos(cmd *cobra.Command, args []string) error {
	if rankJobURL == "" && rankTextFile == "" {
		return fmt.Errorf("either --url or --text-file must be provided")
	}

	input := types.JobPostingInput{URL: rankJobURL}
	if rankTextFile != "" {
		data, err := os.ReadFile(rankTextFile)
		if err != nil {
			return fmt.Errorf("failed to read job file: %w", err)
		}
		input.Description = string(data)
	}

	result, err := analyze.Run(cmd.Context(), analyze.Options{
		Input:   input,
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		Verbose: rankVerbose,
	})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	client := github.NewClient(os.Getenv("GITHUB_TOKEN"))
	repos, err := client.ListUserRepositories(cmd.Context(), rankUser)
	if err != nil {
		return fmt.Errorf("failed to list repositories: %w", err)
	}

	scores := ranking.RankRepositories(cmd.Context(), repos, analyze.Requirements(result))

	if rankVerbose {
		observability.NewPrinter(os.Stderr).PrintRelevanceScores(scores)
	}

	out, err := json.MarshalIndent(scores, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(out))

	return nil
}
