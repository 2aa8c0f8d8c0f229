package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nakala/record"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file>...",
	Short: "Upload files to NAKALA",
	Long: `Upload local files (POST /datas/uploads) and print the returned
file descriptions as JSON. NAKALA expects these objects back verbatim
in the "files" array of a dataset payload.

Examples:
  nakala upload photo.jpg notes.pdf
  nakala upload photo.jpg > files.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUpload,
}

func runUpload(cmd *cobra.Command, args []string) error {
	c, err := newClient()
	if err != nil {
		return err
	}

	infos := make([]*record.FileInfo, 0, len(args))
	for _, path := range args {
		info, err := c.UploadFile(cmd.Context(), path)
		if err != nil {
			return fmt.Errorf("uploading %s: %w", path, err)
		}
		infos = append(infos, info)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(infos)
}
