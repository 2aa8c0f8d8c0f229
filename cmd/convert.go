package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nakala/format"
	csvfmt "nakala/format/csv"
	"nakala/profile"
)

var (
	inputFile   string
	outputFile  string
	profileName string
	baseDir     string
	columns     []string
	outputLang  string
	strict      bool
	pretty      bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <from> <to>",
	Short: "Convert metadata between formats",
	Long: `Convert metadata from one format to another.

Arguments:
  from    Source format (csv, nakala)
  to      Target format (csv, nakala)

Input defaults to stdin, output defaults to stdout.

Examples:
  # Convert a CSV manifest to NAKALA JSON payloads
  nakala convert csv nakala -i manifest.csv

  # Back the other way, from API payloads to a manifest
  nakala dataset get 10.34847/nkl.abc12345 | nakala convert nakala csv

  # With an explicit column-mapping profile
  nakala convert csv nakala -i manifest.csv --profile fieldwork-2026`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file (default: stdin)")
	convertCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	convertCmd.Flags().StringVarP(&profileName, "profile", "p", "", "Column-mapping profile name")
	convertCmd.Flags().StringVar(&baseDir, "base-dir", "", "Base directory for relative file paths")
	convertCmd.Flags().StringSliceVarP(&columns, "columns", "c", nil, "CSV columns to output")
	convertCmd.Flags().StringVar(&outputLang, "lang", "", "Preferred language for collapsed values")
	convertCmd.Flags().BoolVar(&strict, "strict", false, "Fail on invalid rows instead of skipping them")
	convertCmd.Flags().BoolVar(&pretty, "pretty", true, "Pretty-print JSON output")
}

func runConvert(cmd *cobra.Command, args []string) (err error) {
	fromFormat := args[0]
	toFormat := args[1]

	input, inputName, err := openInput(inputFile)
	if err != nil {
		return err
	}
	defer input.Close()

	output, err := openOutput(outputFile)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := output.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", cerr)
		}
	}()

	parser, err := format.GetParser(fromFormat)
	if err != nil {
		return fmt.Errorf("unknown source format %q: %w", fromFormat, err)
	}
	serializer, err := format.GetSerializer(toFormat)
	if err != nil {
		return fmt.Errorf("unknown target format %q: %w", toFormat, err)
	}

	prof, err := resolveProfile(profileName)
	if err != nil {
		return err
	}

	parseOpts := &format.ParseOptions{
		Profile:    prof,
		BaseDir:    baseDir,
		Strict:     strict,
		SourceName: inputName,
	}
	deposits, err := parser.Parse(input, parseOpts)
	if err != nil {
		return fmt.Errorf("parsing input: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Parsed %d records\n", len(deposits))

	serializeOpts := &format.SerializeOptions{
		Profile:       prof,
		Columns:       columns,
		Lang:          outputLang,
		IncludeHeader: true,
		Pretty:        pretty,
	}
	if len(serializeOpts.Columns) == 0 && toFormat == "csv" {
		serializeOpts.Columns = csvfmt.DefaultColumns
	}

	if err := serializer.Serialize(output, deposits, serializeOpts); err != nil {
		return fmt.Errorf("serializing output: %w", err)
	}
	return nil
}

// resolveProfile loads the named profile, or returns nil for the
// built-in column mapping.
func resolveProfile(name string) (*profile.Profile, error) {
	if name == "" {
		return nil, nil
	}
	p, err := profile.Load(name)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	return p, nil
}
