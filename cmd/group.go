package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"nakala/record"
)

var (
	groupUsers       []string
	groupSearchLimit int
)

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Work with user groups",
	Long: `Create, inspect, search, and delete user groups (/groups). Granting
a group a role on a dataset or collection gives every member that role
at once.`,
}

var groupCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a group",
	Long: `Create a group (POST /groups). Members are given as username:role
pairs; the role defaults to ROLE_USER. Your own account is added as
ROLE_OWNER automatically, and a group needs at least one other member.

Examples:
  nakala group create "Research Team A" --user tnakala
  nakala group create "Research Team A" --user alice:ROLE_ADMIN --user bob`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		group := &record.Group{Name: args[0]}
		for _, arg := range groupUsers {
			username, role, found := strings.Cut(arg, ":")
			if !found {
				role = record.GroupRoleUser
			}
			group.Users = append(group.Users, record.GroupUser{Username: username, Role: role})
		}

		c, err := newClient()
		if err != nil {
			return err
		}
		id, err := c.CreateGroup(cmd.Context(), group)
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil
	},
}

var groupGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Fetch a group as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		group, err := c.GetGroup(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(group)
	},
}

var groupDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a group",
	Long: `Delete a group (DELETE /groups/{id}). Rights granted through the
group are revoked for all members.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		return c.DeleteGroup(cmd.Context(), args[0])
	},
}

var groupSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search groups by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		groups, err := c.SearchGroups(cmd.Context(), args[0], groupSearchLimit)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(groups)
	},
}

func init() {
	groupCreateCmd.Flags().StringArrayVar(&groupUsers, "user", nil, "Group member as username or username:role (repeatable)")
	groupSearchCmd.Flags().IntVar(&groupSearchLimit, "limit", 10, "Maximum number of results")

	groupCmd.AddCommand(groupCreateCmd)
	groupCmd.AddCommand(groupGetCmd)
	groupCmd.AddCommand(groupDeleteCmd)
	groupCmd.AddCommand(groupSearchCmd)
}
