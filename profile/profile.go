// Package profile manages column-mapping profiles stored in
// ~/.nakala/profiles. A profile tells the CSV format which NAKALA
// property (or workflow field) each manifest column feeds.
package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Workflow targets a column can map to besides metadata properties.
const (
	FieldFiles      = "files"
	FieldStatus     = "status"
	FieldCollection = "collection"
	FieldID         = "id"
	FieldKind       = "kind"
)

// Profile represents a mapping configuration for one manifest layout.
type Profile struct {
	// Name is the profile identifier (e.g., "fieldwork-2026")
	Name string `yaml:"name" json:"name"`

	// Description provides human-readable documentation
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Columns is the expected header, used for auto-matching manifests
	Columns []string `yaml:"columns,omitempty" json:"columns,omitempty"`

	// Fields maps column names (lowercased) to their targets
	Fields map[string]FieldMapping `yaml:"fields" json:"fields"`

	// Options contains CSV-level options
	Options Options `yaml:"options,omitempty" json:"options,omitempty"`
}

// FieldMapping describes how a manifest column maps to a target field.
type FieldMapping struct {
	// Target is a NAKALA property short name ("title", "creator", …) or
	// one of the workflow fields ("files", "status", "collection", "id",
	// "kind").
	Target string `yaml:"target" json:"target"`

	// Skip indicates this column should be ignored
	Skip bool `yaml:"skip,omitempty" json:"skip,omitempty"`

	// Delimiter overrides the multi-value separator for this column
	Delimiter string `yaml:"delimiter,omitempty" json:"delimiter,omitempty"`

	// StripHTML strips markup from this column's values
	StripHTML bool `yaml:"strip_html,omitempty" json:"strip_html,omitempty"`
}

// Options contains CSV-level configuration options.
type Options struct {
	// MultiValueSeparator separates repeated values in a cell (default ";")
	MultiValueSeparator string `yaml:"multi_value_separator,omitempty" json:"multi_value_separator,omitempty"`

	// LangSeparator separates language variants in a cell (default "|")
	LangSeparator string `yaml:"lang_separator,omitempty" json:"lang_separator,omitempty"`

	// CSVDelimiter is the CSV field delimiter (default ",")
	CSVDelimiter string `yaml:"csv_delimiter,omitempty" json:"csv_delimiter,omitempty"`
}

// GetMultiValueSeparator returns the multi-value separator with a default.
func (p *Profile) GetMultiValueSeparator() string {
	if p != nil && p.Options.MultiValueSeparator != "" {
		return p.Options.MultiValueSeparator
	}
	return ";"
}

// GetLangSeparator returns the language separator with a default.
func (p *Profile) GetLangSeparator() string {
	if p != nil && p.Options.LangSeparator != "" {
		return p.Options.LangSeparator
	}
	return "|"
}

// GetCSVDelimiter returns the CSV delimiter with a default.
func (p *Profile) GetCSVDelimiter() string {
	if p != nil && p.Options.CSVDelimiter != "" {
		return p.Options.CSVDelimiter
	}
	return ","
}

// Mapping resolves the mapping for a column, falling back to the built-in
// suggestion table for columns the profile does not mention. The second
// return is false when the column should be skipped.
func (p *Profile) Mapping(column string) (FieldMapping, bool) {
	col := strings.ToLower(strings.TrimSpace(column))
	if p != nil && p.Fields != nil {
		if m, ok := p.Fields[col]; ok {
			return m, !m.Skip
		}
	}
	if target := SuggestTarget(col); target != "" {
		return FieldMapping{Target: target}, true
	}
	return FieldMapping{Skip: true}, false
}

// configDirOverride holds a user-specified configuration directory.
// When empty, $NAKALA_CONFIG_DIR and then $HOME/.nakala are used.
var configDirOverride string

// SetConfigDir overrides the default configuration directory.
func SetConfigDir(dir string) {
	configDirOverride = dir
}

// ConfigDir returns the nakala configuration directory.
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}
	if dir := os.Getenv("NAKALA_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".nakala"), nil
}

// ProfilesDir returns the profiles directory.
func ProfilesDir() (string, error) {
	configDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "profiles"), nil
}

// EnsureProfilesDir creates the profiles directory if it doesn't exist.
func EnsureProfilesDir() error {
	dir, err := ProfilesDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// ProfilePath returns the path for a profile file.
func ProfilePath(name string) (string, error) {
	dir, err := ProfilesDir()
	if err != nil {
		return "", err
	}
	name = strings.ToLower(strings.ReplaceAll(name, " ", "-"))
	return filepath.Join(dir, name+".yaml"), nil
}

// Save writes the profile to disk.
func (p *Profile) Save() error {
	if err := EnsureProfilesDir(); err != nil {
		return fmt.Errorf("creating profiles directory: %w", err)
	}

	path, err := ProfilePath(p.Name)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling profile: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}

	return nil
}

// Load reads a profile from disk.
func Load(name string) (*Profile, error) {
	path, err := ProfilePath(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("profile %q not found", name)
		}
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}

	normalizeFields(&p)
	return &p, nil
}

// List returns all available profile names.
func List() ([]string, error) {
	dir, err := ProfilesDir()
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading profiles directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			names = append(names, strings.TrimSuffix(strings.TrimSuffix(name, ".yaml"), ".yml"))
		}
	}

	return names, nil
}

// Delete removes a profile.
func Delete(name string) error {
	path, err := ProfilePath(name)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("profile %q not found", name)
		}
		return fmt.Errorf("deleting profile: %w", err)
	}

	return nil
}

// Exists checks if a profile exists.
func Exists(name string) bool {
	path, err := ProfilePath(name)
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// normalizeFields lowercases column keys so lookups are case-insensitive.
func normalizeFields(p *Profile) {
	if p.Fields == nil {
		return
	}
	fields := make(map[string]FieldMapping, len(p.Fields))
	for col, m := range p.Fields {
		fields[strings.ToLower(strings.TrimSpace(col))] = m
	}
	p.Fields = fields
}
