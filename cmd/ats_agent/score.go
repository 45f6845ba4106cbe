package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-engine/internal/config"
	"github.com/jonathan/ats-engine/internal/db"
	"github.com/jonathan/ats-engine/internal/engine"
	"github.com/jonathan/ats-engine/internal/observability"
	"github.com/jonathan/ats-engine/internal/report"
	"github.com/jonathan/ats-engine/internal/schemas"
	"github.com/jonathan/ats-engine/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job description",
	Long:  "Run the 3-layer ATS analysis: formatting (20 pts), keyword matching (60 pts), and data integrity (20 pts). Inputs are the converter and extraction collaborator outputs as JSON files.",
	RunE:  runScore,
}

var (
	documentFile    string
	requirementFile string
	candidateFile   string
	resumeTextFile  string
	configFile      string
	outFile         string
	scoreJobTitle   string
	scoreCompany    string
	scorePersist    bool
	scoreVerbose    bool
)

func init() {
	scoreCmd.Flags().StringVarP(&documentFile, "document", "d", "", "Path to document structure JSON (required)")
	scoreCmd.Flags().StringVarP(&requirementFile, "requirement-extract", "r", "", "Path to requirement extract JSON (required)")
	scoreCmd.Flags().StringVarP(&candidateFile, "candidate-extract", "c", "", "Path to candidate extract JSON (required)")
	scoreCmd.Flags().StringVarP(&resumeTextFile, "resume-text", "t", "", "Path to raw resume text (defaults to document body text)")
	scoreCmd.Flags().StringVar(&configFile, "config", "", "Path to engine config JSON")
	scoreCmd.Flags().StringVarP(&outFile, "out", "o", "", "Write the report JSON to this path instead of stdout")
	scoreCmd.Flags().StringVar(&scoreJobTitle, "job-title", "", "Job title for the report header")
	scoreCmd.Flags().StringVar(&scoreCompany, "company", "", "Company name for the report header")
	scoreCmd.Flags().BoolVar(&scorePersist, "persist", false, "Save the report to the database (requires DATABASE_URL)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a detailed report summary")

	scoreCmd.MarkFlagRequired("document")
	scoreCmd.MarkFlagRequired("requirement-extract")
	scoreCmd.MarkFlagRequired("candidate-extract")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	doc, err := loadDocument(documentFile)
	if err != nil {
		return err
	}
	requirement, candidate, err := loadExtracts(requirementFile, candidateFile)
	if err != nil {
		return err
	}

	resumeText := ""
	if resumeTextFile != "" {
		data, err := os.ReadFile(resumeTextFile)
		if err != nil {
			return fmt.Errorf("failed to read resume text %s: %w", resumeTextFile, err)
		}
		resumeText = string(data)
	}

	var cfg *config.Config
	if configFile != "" {
		cfg, err = config.LoadConfig(configFile)
		if err != nil {
			return err
		}
	}

	jobTitle := scoreJobTitle
	if jobTitle == "" {
		jobTitle = requirement.JobTitle
	}
	company := scoreCompany
	if company == "" {
		company = requirement.Company
	}

	scoreReport, err := engine.Score(ctx, engine.Inputs{
		Document:    doc,
		Requirement: requirement,
		Candidate:   candidate,
		ResumeText:  resumeText,
	}, engine.Options{
		Config:   cfg,
		JobTitle: jobTitle,
		Company:  company,
		Now:      time.Now(),
	})
	if err != nil {
		return fmt.Errorf("scoring failed: %w", err)
	}

	if scoreVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintScoreReport(scoreReport)
	}

	fmt.Fprint(os.Stdout, report.RenderText(scoreReport))

	if outFile != "" {
		data, err := json.MarshalIndent(scoreReport, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		if err := os.WriteFile(outFile, data, 0o644); err != nil {
			return fmt.Errorf("failed to write report to %s: %w", outFile, err)
		}
		fmt.Fprintf(os.Stdout, "Report written to %s\n", outFile)
	}

	if scorePersist {
		if err := persistReport(ctx, scoreReport); err != nil {
			return err
		}
	}

	return nil
}

// loadDocument reads and schema-validates the document structure JSON.
func loadDocument(path string) (*types.DocumentStructure, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document structure %s: %w", path, err)
	}
	if err := schemas.ValidateDocumentStructure(string(data)); err != nil {
		return nil, fmt.Errorf("document structure %s: %w", path, err)
	}

	var doc types.DocumentStructure
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document structure %s: %w", path, err)
	}
	return &doc, nil
}

// loadExtracts reads and schema-validates the two extraction payloads.
func loadExtracts(requirementPath, candidatePath string) (*types.RequirementExtract, *types.CandidateExtract, error) {
	reqData, err := os.ReadFile(requirementPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read requirement extract %s: %w", requirementPath, err)
	}
	if err := schemas.ValidateRequirementExtract(string(reqData)); err != nil {
		return nil, nil, fmt.Errorf("requirement extract %s: %w", requirementPath, err)
	}

	candData, err := os.ReadFile(candidatePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read candidate extract %s: %w", candidatePath, err)
	}
	if err := schemas.ValidateCandidateExtract(string(candData)); err != nil {
		return nil, nil, fmt.Errorf("candidate extract %s: %w", candidatePath, err)
	}

	var requirement types.RequirementExtract
	if err := json.Unmarshal(reqData, &requirement); err != nil {
		return nil, nil, fmt.Errorf("failed to decode requirement extract: %w", err)
	}
	var candidate types.CandidateExtract
	if err := json.Unmarshal(candData, &candidate); err != nil {
		return nil, nil, fmt.Errorf("failed to decode candidate extract: %w", err)
	}
	return &requirement, &candidate, nil
}

// persistReport saves the report using DATABASE_URL.
func persistReport(ctx context.Context, scoreReport *types.ScoreReport) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("--persist requires the DATABASE_URL environment variable")
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}

	id, err := database.SaveReport(ctx, scoreReport)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Report saved: %s\n", id)
	return nil
}
