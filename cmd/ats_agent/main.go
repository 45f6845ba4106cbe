// Package main provides the entry point for the ATS compatibility scoring CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ats_agent",
	Short: "ATS compatibility scoring engine",
	Long:  "ats_agent scores how well a resume matches a job description: a deterministic, explainable score out of 100 with a categorized list of issues and missing requirements.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
