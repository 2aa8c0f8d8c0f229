package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

var userSearchLimit int

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Work with user accounts",
}

var userSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search accounts by name or username",
	Long: `Search accounts (GET /users/search). The returned ids are what
rights grants expect.

Examples:
  nakala user search "dupont"
  nakala user search tnakala --limit 1`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		users, err := c.SearchUsers(cmd.Context(), args[0], userSearchLimit)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(users)
	},
}

func init() {
	userSearchCmd.Flags().IntVar(&userSearchLimit, "limit", 10, "Maximum number of results")
	userCmd.AddCommand(userSearchCmd)
}
