package cmd

import (
	"github.com/spf13/cobra"

	"nakala/batch"
)

var (
	modifyInput       string
	modifyProfileName string
	modifyReport      string
	modifyReplace     bool
	modifyDryRun      bool
)

var modifyCmd = &cobra.Command{
	Use:   "modify",
	Short: "Batch modify metadata from a CSV manifest",
	Long: `Apply manifest metadata to existing datasets and collections. The
manifest needs an "id" column; a "kind" column with the value
"collection" routes a row to /collections instead of /datas.

By default changes are incremental: only the properties a row mentions
are touched, by deleting the matching entries and adding the new
values. Properties absent from the manifest survive. With --replace the
whole metadata set is swapped with a PUT, which loses anything the
manifest does not carry.

Examples:
  nakala modify -i changes.csv
  nakala modify -i changes.csv --dry-run
  nakala modify -i changes.csv --replace`,
	RunE: runModify,
}

func init() {
	modifyCmd.Flags().StringVarP(&modifyInput, "input", "i", "", "Manifest file (default: stdin)")
	modifyCmd.Flags().StringVarP(&modifyProfileName, "profile", "p", "", "Column-mapping profile name")
	modifyCmd.Flags().StringVar(&modifyReport, "report", "", "Report file (default: nakala-modify-<run-id>.csv)")
	modifyCmd.Flags().BoolVar(&modifyReplace, "replace", false, "Replace ALL metadata instead of incremental edits")
	modifyCmd.Flags().BoolVar(&modifyDryRun, "dry-run", false, "Log planned changes without calling the API")
}

func runModify(cmd *cobra.Command, args []string) error {
	deposits, err := parseManifest(modifyInput, modifyProfileName, "", false)
	if err != nil {
		return err
	}

	c, err := newClient()
	if err != nil {
		return err
	}

	m := &batch.Modifier{
		Client:  c,
		Replace: modifyReplace,
		DryRun:  modifyDryRun,
	}
	report, err := m.Run(cmd.Context(), deposits)
	if err != nil {
		return err
	}
	return finishReport(report, modifyReport)
}
