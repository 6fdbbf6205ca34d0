package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-analyzer/internal/config"
	"github.com/jonathan/job-analyzer/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for job posting analysis, repository ranking, and skill matching.`,
	RunE:  runServe,
}

var (
	serveAddr       string
	serveConfig     string
	serveUseBrowser bool
)

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Address to listen on")
	serveCmd.Flags().StringVarP(&serveConfig, "config", "c", "", "Path to JSON config file")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "use-browser", false, "Render JavaScript-heavy pages in a headless browser")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		ListenAddr:  serveAddr,
		UseBrowser:  serveUseBrowser,
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		GitHubToken: os.Getenv("GITHUB_TOKEN"),
	}
	if serveConfig != "" {
		fileCfg, err := config.LoadConfig(serveConfig)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	srv := server.New(server.Config{
		Addr:        cfg.ListenAddr,
		APIKey:      cfg.APIKey,
		GitHubToken: cfg.GitHubToken,
		UseBrowser:  cfg.UseBrowser || serveUseBrowser,
	})

	return srv.Start()
}
