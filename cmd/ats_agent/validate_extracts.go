package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-engine/internal/schemas"
)

var validateExtractsCmd = &cobra.Command{
	Use:   "validate-extracts",
	Short: "Validate extraction payloads against their schemas",
	Long:  "Check that requirement/candidate extract JSON files produced by the text-understanding collaborator match the shapes the scoring engine expects, reporting field-level errors.",
	RunE:  runValidateExtracts,
}

var (
	validateRequirementFile string
	validateCandidateFile   string
	validateDocumentFile    string
)

func init() {
	validateExtractsCmd.Flags().StringVarP(&validateRequirementFile, "requirement-extract", "r", "", "Path to requirement extract JSON")
	validateExtractsCmd.Flags().StringVarP(&validateCandidateFile, "candidate-extract", "c", "", "Path to candidate extract JSON")
	validateExtractsCmd.Flags().StringVarP(&validateDocumentFile, "document", "d", "", "Path to document structure JSON")

	rootCmd.AddCommand(validateExtractsCmd)
}

func runValidateExtracts(_ *cobra.Command, _ []string) error {
	if validateRequirementFile == "" && validateCandidateFile == "" && validateDocumentFile == "" {
		return fmt.Errorf("provide at least one of --requirement-extract, --candidate-extract, --document")
	}

	failed := false
	check := func(label, path string, validate func(string) error) error {
		if path == "" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s %s: %w", label, path, err)
		}
		if err := validate(string(data)); err != nil {
			failed = true
			fmt.Fprintf(os.Stdout, "%s %s: INVALID\n%v\n", label, path, err)
			return nil
		}
		fmt.Fprintf(os.Stdout, "%s %s: OK\n", label, path)
		return nil
	}

	if err := check("requirement extract", validateRequirementFile, schemas.ValidateRequirementExtract); err != nil {
		return err
	}
	if err := check("candidate extract", validateCandidateFile, schemas.ValidateCandidateExtract); err != nil {
		return err
	}
	if err := check("document structure", validateDocumentFile, schemas.ValidateDocumentStructure); err != nil {
		return err
	}

	if failed {
		return fmt.Errorf("one or more payloads failed validation")
	}
	return nil
}
