package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-analyzer/internal/analyze"
	"github.com/jonathan/job-analyzer/internal/config"
	"github.com/jonathan/job-analyzer/internal/ingestion"
	"github.com/jonathan/job-analyzer/internal/observability"
	"github.com/jonathan/job-analyzer/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a job posting from a URL or text file",
	Long:  "Analyze a job posting: extract skills against the taxonomy, classify experience level and language, and optionally enrich with AI.",
	RunE:  runAnalyze,
}

var (
	analyzeURL        string
	analyzeTextFile   string
	analyzeConfig     string
	analyzeUseBrowser bool
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeURL, "url", "u", "", "URL to fetch the job posting from")
	analyzeCmd.Flags().StringVarP(&analyzeTextFile, "text-file", "t", "", "Path to text file containing the job posting")
	analyzeCmd.Flags().StringVarP(&analyzeConfig, "config", "c", "", "Path to JSON config file")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Render JavaScript-heavy pages in a headless browser")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed progress and a result summary")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := config.Config{
		JobURL:     analyzeURL,
		Job:        analyzeTextFile,
		UseBrowser: analyzeUseBrowser,
		Verbose:    analyzeVerbose,
		APIKey:     os.Getenv("GEMINI_API_KEY"),
	}
	if analyzeConfig != "" {
		fileCfg, err := config.LoadConfig(analyzeConfig)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --url or --text-file must be provided")
	}

	input := types.JobPostingInput{URL: cfg.JobURL}
	if cfg.Job != "" {
		data, err := os.ReadFile(cfg.Job)
		if err != nil {
			return fmt.Errorf("failed to read job file: %w", err)
		}
		input.Description = string(data)
	}

	result, err := analyze.Run(cmd.Context(), analyze.Options{
		Input:      input,
		APIKey:     cfg.APIKey,
		UseBrowser: cfg.UseBrowser || analyzeUseBrowser,
		Verbose:    cfg.Verbose || analyzeVerbose,
	})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if cfg.Verbose || analyzeVerbose {
		observability.NewPrinter(os.Stderr).PrintJobResult(result)

		meta := ingestion.NewMetadata(result.Description, cfg.JobURL)
		meta.Site = result.Site
		if metaJSON, err := meta.ToJSON(); err == nil {
			fmt.Fprintln(os.Stderr, string(metaJSON))
		}
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(out))

	return nil
}
