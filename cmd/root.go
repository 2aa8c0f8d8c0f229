// Package cmd provides the CLI commands for nakala.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"nakala/client"
	"nakala/config"
	"nakala/profile"
)

func setupLogger() {
	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "INFO"
	}

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)
}

var (
	apiURL    string
	apiKey    string
	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "nakala",
	Short: "Batch deposit and metadata tool for the NAKALA repository",
	Long: `nakala is a CLI tool for working with the NAKALA research-data
repository (https://nakala.fr): converting CSV manifests to NAKALA
metadata, and batch importing, modifying, and deleting datasets and
collections through the REST API.

By default it talks to the test instance (https://apitest.nakala.fr)
with the public test key, so everything can be tried without an account.
Point it at production with --api-url and --api-key, or put them in
~/.nakala/config.yaml.

Examples:
  nakala convert csv nakala -i manifest.csv
  nakala validate csv -i manifest.csv
  nakala import -i manifest.csv --base-dir ./files
  nakala dataset get 10.34847/nkl.abc12345`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if configDir != "" {
			profile.SetConfigDir(configDir)
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	setupLogger()
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "NAKALA API base URL (default: test instance)")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "NAKALA API key (default: public test key)")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Configuration directory (default: ~/.nakala)")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(datasetCmd)
	rootCmd.AddCommand(collectionCmd)
	rootCmd.AddCommand(groupCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(modifyCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(profilesCmd)
}

// loadConfig loads the configuration with flag overrides applied.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if apiURL != "" {
		cfg.APIURL = apiURL
	}
	if apiKey != "" {
		cfg.APIKey = apiKey
	}
	return cfg, nil
}

// newClient builds an API client from config and flags. It warns when
// the public test key is about to hit the production instance.
func newClient() (*client.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if cfg.UsingTestKey() && cfg.APIURL != client.DefaultBaseURL {
		slog.Warn("using the public test key against a non-test instance", "url", cfg.APIURL)
	}
	return cfg.Client(), nil
}

// openInput opens path, or stdin when path is empty. The returned name
// identifies the source in messages.
func openInput(path string) (io.ReadCloser, string, error) {
	if path == "" {
		return io.NopCloser(os.Stdin), "stdin", nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("opening input file: %w", err)
	}
	return f, path, nil
}

// openOutput creates path, or returns stdout when path is empty.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
