package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nakala/batch"
	"nakala/format"
	"nakala/record"
)

var (
	importInput             string
	importProfileName       string
	importBaseDir           string
	importReport            string
	importCreateCollections bool
	importDryRun            bool
	importStrict            bool
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Batch import datasets from a CSV manifest",
	Long: `Run the three-stage deposit workflow for every row of a CSV
manifest: upload the row's files, create the dataset, then affect it to
its collections. Rows that fail are reported and skipped; the run keeps
going. A CSV report with one line per row is written at the end.

The manifest's "collection" column may hold collection identifiers or,
with --create-collections, titles of collections to create on the fly
(reused across rows of the same run).

Examples:
  nakala import -i manifest.csv --base-dir ./files
  nakala import -i manifest.csv --create-collections --report run.csv
  nakala import -i manifest.csv --dry-run`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVarP(&importInput, "input", "i", "", "Manifest file (default: stdin)")
	importCmd.Flags().StringVarP(&importProfileName, "profile", "p", "", "Column-mapping profile name")
	importCmd.Flags().StringVar(&importBaseDir, "base-dir", "", "Base directory for relative file paths")
	importCmd.Flags().StringVar(&importReport, "report", "", "Report file (default: nakala-import-<run-id>.csv)")
	importCmd.Flags().BoolVar(&importCreateCollections, "create-collections", false, "Create collections named by title")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Log planned actions without calling the API")
	importCmd.Flags().BoolVar(&importStrict, "strict", false, "Fail on rows that do not parse instead of skipping them")
}

// parseManifest reads a CSV manifest into deposits.
func parseManifest(path, profileName, baseDir string, strict bool) ([]*record.Deposit, error) {
	input, inputName, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer input.Close()

	parser, err := format.GetParser("csv")
	if err != nil {
		return nil, err
	}
	prof, err := resolveProfile(profileName)
	if err != nil {
		return nil, err
	}

	deposits, err := parser.Parse(input, &format.ParseOptions{
		Profile:    prof,
		BaseDir:    baseDir,
		Strict:     strict,
		SourceName: inputName,
	})
	if err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if len(deposits) == 0 {
		return nil, fmt.Errorf("manifest %s has no usable rows", inputName)
	}
	return deposits, nil
}

// finishReport writes the report and turns failed rows into a non-zero
// exit.
func finishReport(report *batch.Report, path string) error {
	written, err := report.WriteFile(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Report written to %s\n", written)

	if failed := report.Failed(); failed > 0 {
		return fmt.Errorf("%d of %d rows failed", failed, len(report.Rows))
	}
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	deposits, err := parseManifest(importInput, importProfileName, importBaseDir, importStrict)
	if err != nil {
		return err
	}

	c, err := newClient()
	if err != nil {
		return err
	}

	imp := &batch.Importer{
		Client:            c,
		CreateCollections: importCreateCollections,
		DryRun:            importDryRun,
	}
	report, err := imp.Run(cmd.Context(), deposits)
	if err != nil {
		return err
	}
	return finishReport(report, importReport)
}
