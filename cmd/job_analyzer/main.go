// Package main provides the entry point for the Job Analyzer CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "job_analyzer",
	Short: "Job posting analyzer",
	Long:  "Job Analyzer extracts structured skills and requirements from job postings and ranks GitHub repositories and resume skills against them.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
