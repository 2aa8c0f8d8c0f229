package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"nakala/format"
	"nakala/helpers"
	"nakala/record"
)

var (
	datasetInput    string
	datasetMetaLang string
	datasetTypeURI  string
)

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Work with individual datasets",
	Long: `Create, inspect, update, and delete datasets (/datas), manage their
metadata incrementally, change their status, and manage rights and
collection membership.`,
}

var datasetCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create datasets from JSON payloads",
	Long: `Create datasets from NAKALA JSON payloads (a single object or an
array), read from --input or stdin. Prints one identifier per created
dataset.

Examples:
  nakala convert csv nakala -i manifest.csv | nakala dataset create
  nakala dataset create -i payload.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, inputName, err := openInput(datasetInput)
		if err != nil {
			return err
		}
		defer input.Close()

		parser, err := format.GetParser("nakala")
		if err != nil {
			return err
		}
		deposits, err := parser.Parse(input, &format.ParseOptions{SourceName: inputName})
		if err != nil {
			return fmt.Errorf("parsing payload: %w", err)
		}

		c, err := newClient()
		if err != nil {
			return err
		}
		for _, dep := range deposits {
			id, err := c.CreateData(cmd.Context(), dep.Data)
			if err != nil {
				return err
			}
			fmt.Println(id)
		}
		return nil
	},
}

var datasetGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Fetch a dataset as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		data, err := c.GetData(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	},
}

var datasetUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace a dataset from a JSON payload",
	Long: `Replace a dataset (PUT /datas/{id}) with the payload read from
--input or stdin. The payload's metadata replaces ALL existing
metadata; use "dataset meta" for incremental edits.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _, err := openInput(datasetInput)
		if err != nil {
			return err
		}
		defer input.Close()

		var data record.Data
		if err := json.NewDecoder(input).Decode(&data); err != nil {
			return fmt.Errorf("parsing payload: %w", err)
		}
		data.Metas = record.DecodeMetas(data.Metas)

		c, err := newClient()
		if err != nil {
			return err
		}
		return c.UpdateData(cmd.Context(), args[0], &data)
	},
}

var datasetDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a dataset",
	Long: `Delete a dataset (DELETE /datas/{id}). NAKALA refuses to delete
published datasets; only pending ones can be removed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		return c.DeleteData(cmd.Context(), args[0])
	},
}

var datasetStatusCmd = &cobra.Command{
	Use:   "status <id> <pending|published>",
	Short: "Change a dataset's status",
	Long: `Change a dataset's status (PUT /datas/{id}/status/{status}).
Publishing is permanent: a published dataset gets a citable DOI and
cannot go back to pending or be deleted.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		return c.SetDataStatus(cmd.Context(), args[0], args[1])
	},
}

var datasetMetaCmd = &cobra.Command{
	Use:   "meta",
	Short: "Edit dataset metadata incrementally",
}

var datasetMetaAddCmd = &cobra.Command{
	Use:   "add <id> <property> <value>",
	Short: "Add one metadata entry",
	Long: `Add one metadata entry (POST /datas/{id}/metadatas) without touching
the others. Property is a short name (title, creator, subject, …) or a
full URI. Creator and contributor values use the person grammar
"Surname, Given (ORCID)".

Examples:
  nakala dataset meta add 10.34847/nkl.abc12345 subject "archaeology" --lang en
  nakala dataset meta add 10.34847/nkl.abc12345 creator "Dupont, Marie (0000-0002-1825-0097)"`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		meta, err := buildMeta(args[1], args[2], datasetMetaLang, datasetTypeURI)
		if err != nil {
			return err
		}
		c, err := newClient()
		if err != nil {
			return err
		}
		return c.AddDataMeta(cmd.Context(), args[0], meta)
	},
}

var datasetMetaDeleteCmd = &cobra.Command{
	Use:   "delete <id> <property>",
	Short: "Delete metadata entries by property",
	Long: `Delete metadata entries (DELETE /datas/{id}/metadatas). The server
removes EVERY entry matching the property (and language, when --lang is
given); single values cannot be removed selectively. To change one
value, delete the property and re-add the values you keep.`,
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
		filter := record.MetaFilter{PropertyURI: uri, Lang: datasetMetaLang}
		return c.DeleteDataMetas(cmd.Context(), args[0], filter)
	},
}

var datasetRightsCmd = &cobra.Command{
	Use:   "rights",
	Short: "Manage dataset rights",
}

var datasetRightsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "List rights on a dataset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		rights, err := c.GetDataRights(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rights)
	},
}

var datasetRightsAddCmd = &cobra.Command{
	Use:   "add <id> <user-or-group-id> <role>",
	Short: "Grant a role on a dataset",
	Long: `Grant a role (POST /datas/{id}/rights) to a user or group id.
Find ids with "nakala user search" or "nakala group search".
Roles: ROLE_ADMIN, ROLE_MODERATOR, ROLE_EDITOR, ROLE_READER.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		rights := []record.Right{{ID: args[1], Role: args[2]}}
		return c.AddDataRights(cmd.Context(), args[0], rights)
	},
}

var datasetCollectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "Manage a dataset's collection membership",
}

var datasetCollectionsAddCmd = &cobra.Command{
	Use:   "add <id> <collection-id>...",
	Short: "Affect a dataset to collections",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		return c.AddDataToCollections(cmd.Context(), args[0], args[1:])
	},
}

var datasetCollectionsRemoveCmd = &cobra.Command{
	Use:   "remove <id> <collection-id>...",
	Short: "Remove a dataset from collections",
	Long: `Remove a dataset from collections (DELETE /datas/{id}/collections).
The dataset itself is untouched; only the membership links go away.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		return c.RemoveDataFromCollections(cmd.Context(), args[0], args[1:])
	},
}

func init() {
	datasetCreateCmd.Flags().StringVarP(&datasetInput, "input", "i", "", "Payload file (default: stdin)")
	datasetUpdateCmd.Flags().StringVarP(&datasetInput, "input", "i", "", "Payload file (default: stdin)")
	datasetMetaAddCmd.Flags().StringVar(&datasetMetaLang, "lang", "", "Language tag for the value")
	datasetMetaAddCmd.Flags().StringVar(&datasetTypeURI, "type-uri", "", "Override the value type URI")
	datasetMetaDeleteCmd.Flags().StringVar(&datasetMetaLang, "lang", "", "Only delete entries with this language")

	datasetMetaCmd.AddCommand(datasetMetaAddCmd)
	datasetMetaCmd.AddCommand(datasetMetaDeleteCmd)
	datasetRightsCmd.AddCommand(datasetRightsGetCmd)
	datasetRightsCmd.AddCommand(datasetRightsAddCmd)
	datasetCollectionsCmd.AddCommand(datasetCollectionsAddCmd)
	datasetCollectionsCmd.AddCommand(datasetCollectionsRemoveCmd)

	datasetCmd.AddCommand(datasetCreateCmd)
	datasetCmd.AddCommand(datasetGetCmd)
	datasetCmd.AddCommand(datasetUpdateCmd)
	datasetCmd.AddCommand(datasetDeleteCmd)
	datasetCmd.AddCommand(datasetStatusCmd)
	datasetCmd.AddCommand(datasetMetaCmd)
	datasetCmd.AddCommand(datasetRightsCmd)
	datasetCmd.AddCommand(datasetCollectionsCmd)
}

// resolveProperty turns a short property name into its URI, passing
// full URIs through.
func resolveProperty(name string) (string, error) {
	if uri, ok := record.Properties[name]; ok {
		return uri, nil
	}
	if strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://") {
		return name, nil
	}
	return "", fmt.Errorf("unknown property %q (use a short name like title, creator, subject, or a full URI)", name)
}

// buildMeta builds one metadata entry from command arguments, using the
// person grammar for creator and contributor.
func buildMeta(property, value, lang, typeURI string) (record.Meta, error) {
	uri, err := resolveProperty(property)
	if err != nil {
		return record.Meta{}, err
	}

	var meta record.Meta
	switch uri {
	case record.PropCreator, record.PropContributor:
		person := helpers.ParsePerson(value)
		if person == nil {
			return record.Meta{}, fmt.Errorf("cannot parse person %q", value)
		}
		meta = record.NewPersonMeta(uri, person)
	case record.PropType:
		typeValue, ok := record.LookupType(value)
		if !ok {
			return record.Meta{}, fmt.Errorf("unknown resource type %q", value)
		}
		meta = record.NewTypeMeta(typeValue)
	case record.PropTitle:
		meta = record.NewTitle(value, lang)
	default:
		meta = record.NewMeta(uri, value, lang)
	}
	if typeURI != "" {
		meta.TypeURI = typeURI
	}
	return meta, nil
}
