package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"nakala/profile"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage column-mapping profiles",
	Long: `List, inspect, create, and delete the column-mapping profiles
stored in ~/.nakala/profiles. A profile tells the CSV manifest parser
which NAKALA property (or workflow field) each column feeds; columns
covered by the built-in suggestion table need no profile at all.`,
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := profile.List()
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Println("No profiles found")
			return nil
		}
		sort.Strings(names)

		fmt.Println("Available profiles:")
		for _, name := range names {
			p, err := profile.Load(name)
			if err != nil {
				fmt.Printf("  %s (unreadable: %v)\n", name, err)
				continue
			}
			desc := ""
			if p.Description != "" {
				desc = " - " + p.Description
			}
			fmt.Printf("  %s%s\n", name, desc)
		}
		return nil
	},
}

var profilesShowCmd = &cobra.Command{
	Use:   "show <profile>",
	Short: "Show profile details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := profile.Load(args[0])
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(p)
		if err != nil {
			return err
		}
		os.Stdout.Write(data)
		return nil
	},
}

var profilesCreateCmd = &cobra.Command{
	Use:   "create <name> <manifest.csv>",
	Short: "Create a profile from a manifest header",
	Long: `Read the header row of a CSV manifest and create a profile with a
suggested target for each column. Review and edit the result with
"profiles show" before relying on it; unrecognized columns are marked
skip.

Examples:
  nakala profiles create fieldwork-2026 manifest.csv`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, csvPath := args[0], args[1]
		if profile.Exists(name) {
			return fmt.Errorf("profile %q already exists", name)
		}
		p, err := profile.FromCSVHeader(name, csvPath)
		if err != nil {
			return err
		}
		if err := p.Save(); err != nil {
			return err
		}
		path, _ := profile.ProfilePath(name)
		fmt.Printf("Profile %q created at %s\n", name, path)

		skipped := 0
		for column, fm := range p.Fields {
			if fm.Skip {
				fmt.Printf("  column %q: no suggestion, marked skip\n", column)
				skipped++
			}
		}
		if skipped > 0 {
			fmt.Printf("Edit the profile to map the %d skipped column(s).\n", skipped)
		}
		return nil
	},
}

var profilesDeleteCmd = &cobra.Command{
	Use:   "delete <profile>",
	Short: "Delete a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return profile.Delete(args[0])
	},
}

func init() {
	profilesCmd.AddCommand(profilesListCmd)
	profilesCmd.AddCommand(profilesShowCmd)
	profilesCmd.AddCommand(profilesCreateCmd)
	profilesCmd.AddCommand(profilesDeleteCmd)
}
