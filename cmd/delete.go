package cmd

import (
	"github.com/spf13/cobra"

	"nakala/batch"
)

var (
	deleteInput       string
	deleteProfileName string
	deleteReport      string
	deleteForce       bool
	deleteDryRun      bool
)

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Batch delete datasets and collections from a CSV manifest",
	Long: `Delete the datasets and collections listed in a CSV manifest. The
manifest needs an "id" column; a "kind" column with the value
"collection" deletes a collection instead of a dataset.

Published datasets are refused without --force. NAKALA itself never
deletes published data, so --force merely forwards the server's answer
instead of refusing locally.

Examples:
  nakala delete -i obsolete.csv
  nakala delete -i obsolete.csv --dry-run`,
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().StringVarP(&deleteInput, "input", "i", "", "Manifest file (default: stdin)")
	deleteCmd.Flags().StringVarP(&deleteProfileName, "profile", "p", "", "Column-mapping profile name")
	deleteCmd.Flags().StringVar(&deleteReport, "report", "", "Report file (default: nakala-delete-<run-id>.csv)")
	deleteCmd.Flags().BoolVar(&deleteForce, "force", false, "Attempt deletion of published datasets anyway")
	deleteCmd.Flags().BoolVar(&deleteDryRun, "dry-run", false, "Log planned deletions without calling the API")
}

func runDelete(cmd *cobra.Command, args []string) error {
	deposits, err := parseManifest(deleteInput, deleteProfileName, "", false)
	if err != nil {
		return err
	}

	c, err := newClient()
	if err != nil {
		return err
	}

	d := &batch.Deleter{
		Client: c,
		Force:  deleteForce,
		DryRun: deleteDryRun,
	}
	report, err := d.Run(cmd.Context(), deposits)
	if err != nil {
		return err
	}
	return finishReport(report, deleteReport)
}
