package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nakala/format"
	"nakala/record"
)

var (
	validateInput       string
	validateProfileName string
	validateBaseDir     string
	validatePublishable bool
	validateVerbose     bool
)

var validateCmd = &cobra.Command{
	Use:   "validate <format>",
	Short: "Validate metadata without converting",
	Long: `Validate metadata by parsing it and checking each record against
NAKALA's deposit rules.

With --publishable, records are held to the rules for published
datasets: the five mandatory properties (title, type, creator, created,
license), a full COAR resource-type URI, and a W3C-DTF date.

Arguments:
  format  Input format (csv, nakala)

Input defaults to stdin.

Examples:
  nakala validate csv -i manifest.csv
  nakala validate csv -i manifest.csv --publishable
  cat payload.json | nakala validate nakala`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateInput, "input", "i", "", "Input file (default: stdin)")
	validateCmd.Flags().StringVarP(&validateProfileName, "profile", "p", "", "Column-mapping profile name")
	validateCmd.Flags().StringVar(&validateBaseDir, "base-dir", "", "Base directory for relative file paths")
	validateCmd.Flags().BoolVar(&validatePublishable, "publishable", false, "Check the rules for published datasets")
	validateCmd.Flags().BoolVarP(&validateVerbose, "verbose", "v", false, "Show a summary of each record")
}

func runValidate(cmd *cobra.Command, args []string) (err error) {
	fromFormat := args[0]

	input, inputName, err := openInput(validateInput)
	if err != nil {
		return err
	}
	defer input.Close()

	parser, err := format.GetParser(fromFormat)
	if err != nil {
		return fmt.Errorf("unknown format %q: %w", fromFormat, err)
	}

	prof, err := resolveProfile(validateProfileName)
	if err != nil {
		return err
	}

	parseOpts := &format.ParseOptions{
		Profile:    prof,
		BaseDir:    validateBaseDir,
		Strict:     false,
		SourceName: inputName,
	}
	deposits, err := parser.Parse(input, parseOpts)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	opts := record.DefaultValidationOptions()
	if validatePublishable {
		opts = record.StrictValidationOptions()
	}

	invalid := 0
	for _, dep := range deposits {
		result := record.Validate(dep.Data, opts)
		if result.IsValid() && !result.HasWarnings() {
			continue
		}
		row := dep.Row
		for _, e := range result.Errors {
			fmt.Fprintf(os.Stderr, "row %d: error: %s: %s\n", row, e.Field, e.Message)
		}
		for _, w := range result.Warnings {
			fmt.Fprintf(os.Stderr, "row %d: warning: %s: %s\n", row, w.Field, w.Message)
		}
		if !result.IsValid() {
			invalid++
		}
	}

	if validateVerbose {
		fmt.Println("\nRecord summary:")
		for i, dep := range deposits {
			fmt.Printf("\n  Record %d:\n", i+1)
			fmt.Printf("    Title: %s\n", truncate(dep.Data.Title(""), 60))
			fmt.Printf("    Status: %s\n", dep.Data.Status)
			fmt.Printf("    Metas: %d\n", len(dep.Data.Metas))
			fmt.Printf("    Creators: %d\n", len(record.Creators(dep.Data.Metas)))
			if len(dep.FilePaths) > 0 {
				fmt.Printf("    Files: %d\n", len(dep.FilePaths))
			}
			if len(dep.Collections) > 0 {
				fmt.Printf("    Collections: %v\n", dep.Collections)
			}
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d records invalid", invalid, len(deposits))
	}
	fmt.Printf("✓ Valid: %d records from %s\n", len(deposits), inputName)
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
