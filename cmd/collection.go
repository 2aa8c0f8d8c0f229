package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nakala/record"
)

var (
	collectionInput    string
	collectionMetaLang string
	collectionStatus   string
)

var collectionCmd = &cobra.Command{
	Use:   "collection",
	Short: "Work with collections",
	Long: `Create, inspect, update, and delete collections (/collections),
manage their metadata, status, rights, and dataset membership.
Collections group datasets without owning them.`,
}

var collectionCreateCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create a collection",
	Long: `Create a collection (POST /collections) with the given title.
Private by default; use --status public for a public collection.

Examples:
  nakala collection create "Fieldwork 2026"
  nakala collection create "Published corpus" --status public`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !record.ValidCollectionStatus(collectionStatus) {
			return fmt.Errorf("invalid collection status %q", collectionStatus)
		}
		coll := record.NewCollection()
		coll.Status = collectionStatus
		coll.AddMeta(record.NewTitle(args[0], collectionMetaLang))

		c, err := newClient()
		if err != nil {
			return err
		}
		id, err := c.CreateCollection(cmd.Context(), coll)
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil
	},
}

var collectionGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Fetch a collection as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		coll, err := c.GetCollection(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(coll)
	},
}

var collectionUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace a collection from a JSON payload",
	Long: `Replace a collection (PUT /collections/{id}) with the payload read
from --input or stdin. The payload's metadata replaces ALL existing
metadata; use "collection meta" for incremental edits.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _, err := openInput(collectionInput)
		if err != nil {
			return err
		}
		defer input.Close()

		var coll record.Collection
		if err := json.NewDecoder(input).Decode(&coll); err != nil {
			return fmt.Errorf("parsing payload: %w", err)
		}
		coll.Metas = record.DecodeMetas(coll.Metas)

		c, err := newClient()
		if err != nil {
			return err
		}
		return c.UpdateCollection(cmd.Context(), args[0], &coll)
	},
}

var collectionDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a collection",
	Long: `Delete a collection (DELETE /collections/{id}). Member datasets are
not deleted; only the grouping goes away.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		return c.DeleteCollection(cmd.Context(), args[0])
	},
}

var collectionStatusCmd = &cobra.Command{
	Use:   "status <id> <private|public>",
	Short: "Change a collection's status",
	Long: `Change a collection's status (PUT /collections/{id}/status/{status}).
A public collection may only contain published datasets.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		return c.SetCollectionStatus(cmd.Context(), args[0], args[1])
	},
}

var collectionMetaCmd = &cobra.Command{
	Use:   "meta",
	Short: "Edit collection metadata incrementally",
}

var collectionMetaAddCmd = &cobra.Command{
	Use:   "add <id> <property> <value>",
	Short: "Add one metadata entry",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		meta, err := buildMeta(args[1], args[2], collectionMetaLang, "")
		if err != nil {
			return err
		}
		c, err := newClient()
		if err != nil {
			return err
		}
		return c.AddCollectionMeta(cmd.Context(), args[0], meta)
	},
}

var collectionMetaDeleteCmd = &cobra.Command{
	Use:   "delete <id> <property>",
	Short: "Delete metadata entries by property",
	Long: `Delete metadata entries (DELETE /collections/{id}/metadatas). Every
entry matching the property (and language, when --lang is given) is
removed.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		uri, err := resolveProperty(args[1])
		if err != nil {
			return err
		}
		c, err := newClient()
		if err != nil {
			return err
		}
		filter := record.MetaFilter{PropertyURI: uri, Lang: collectionMetaLang}
		return c.DeleteCollectionMetas(cmd.Context(), args[0], filter)
	},
}

var collectionRightsCmd = &cobra.Command{
	Use:   "rights",
	Short: "Manage collection rights",
	Long: `Collection rights are independent from the rights on member
datasets: granting access to a collection does not open its datasets.`,
}

var collectionRightsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "List rights on a collection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		rights, err := c.GetCollectionRights(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rights)
	},
}

var collectionRightsAddCmd = &cobra.Command{
	Use:   "add <id> <user-or-group-id> <role>",
	Short: "Grant a role on a collection",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		rights := []record.Right{{ID: args[1], Role: args[2]}}
		return c.AddCollectionRights(cmd.Context(), args[0], rights)
	},
}

var collectionDatasCmd = &cobra.Command{
	Use:   "datas",
	Short: "Manage a collection's datasets",
}

var collectionDatasAddCmd = &cobra.Command{
	Use:   "add <id> <data-id>",
	Short: "Add a dataset to a collection",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		return c.AddDataToCollection(cmd.Context(), args[0], args[1])
	},
}

var collectionDatasRemoveCmd = &cobra.Command{
	Use:   "remove <id> <data-id>",
	Short: "Remove a dataset from a collection",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		return c.RemoveDataFromCollection(cmd.Context(), args[0], args[1])
	},
}

func init() {
	collectionCreateCmd.Flags().StringVar(&collectionStatus, "status", record.StatusPrivate, "Collection status (private or public)")
	collectionCreateCmd.Flags().StringVar(&collectionMetaLang, "lang", "", "Language tag for the title")
	collectionUpdateCmd.Flags().StringVarP(&collectionInput, "input", "i", "", "Payload file (default: stdin)")
	collectionMetaAddCmd.Flags().StringVar(&collectionMetaLang, "lang", "", "Language tag for the value")
	collectionMetaDeleteCmd.Flags().StringVar(&collectionMetaLang, "lang", "", "Only delete entries with this language")

	collectionMetaCmd.AddCommand(collectionMetaAddCmd)
	collectionMetaCmd.AddCommand(collectionMetaDeleteCmd)
	collectionRightsCmd.AddCommand(collectionRightsGetCmd)
	collectionRightsCmd.AddCommand(collectionRightsAddCmd)
	collectionDatasCmd.AddCommand(collectionDatasAddCmd)
	collectionDatasCmd.AddCommand(collectionDatasRemoveCmd)

	collectionCmd.AddCommand(collectionCreateCmd)
	collectionCmd.AddCommand(collectionGetCmd)
	collectionCmd.AddCommand(collectionUpdateCmd)
	collectionCmd.AddCommand(collectionDeleteCmd)
	collectionCmd.AddCommand(collectionStatusCmd)
	collectionCmd.AddCommand(collectionMetaCmd)
	collectionCmd.AddCommand(collectionRightsCmd)
	collectionCmd.AddCommand(collectionDatasCmd)
}
