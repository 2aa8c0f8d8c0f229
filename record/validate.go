package record

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// ValidationError represents a validation failure with context.
type ValidationError struct {
	Field   string // Field path (e.g., "metas[3].lang")
	Code    string // Error code (e.g., "required", "invalid_format")
	Message string // Human-readable message
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationResult collects all errors and warnings for one payload.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// IsValid returns true if there are no errors.
func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Error returns a combined error message, or nil if valid.
func (r *ValidationResult) Error() error {
	if r.IsValid() {
		return nil
	}
	var msgs []string
	for _, e := range r.Errors {
		msgs = append(msgs, e.Error())
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}

func (r *ValidationResult) addError(field, code, message string) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Code: code, Message: message})
}

func (r *ValidationResult) addWarning(field, code, message string) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Code: code, Message: message})
}

// ValidationOptions configures validation behavior.
type ValidationOptions struct {
	// RequirePublishable enforces the five mandatory properties NAKALA
	// demands of published datasets even when the payload status is
	// pending.
	RequirePublishable bool
	// ValidateDates checks created dates against W3C-DTF.
	ValidateDates bool
	// ValidateLangTags checks language tags against BCP 47.
	ValidateLangTags bool
	// ValidateLicenses warns about unrecognized license identifiers.
	ValidateLicenses bool
}

// DefaultValidationOptions returns standard validation options: strict
// only for payloads that will actually publish.
func DefaultValidationOptions() ValidationOptions {
	return ValidationOptions{
		ValidateDates:    true,
		ValidateLangTags: true,
		ValidateLicenses: true,
	}
}

// StrictValidationOptions validates as if the payload were to be
// published immediately.
func StrictValidationOptions() ValidationOptions {
	opts := DefaultValidationOptions()
	opts.RequirePublishable = true
	return opts
}

// mandatory lists the properties NAKALA requires before a dataset can be
// published, with the short names used in messages.
var mandatory = []struct {
	uri  string
	name string
}{
	{PropTitle, "title"},
	{PropType, "type"},
	{PropCreator, "creator"},
	{PropCreated, "created"},
	{PropLicense, "license"},
}

// Validate checks a dataset payload against NAKALA's rules.
func Validate(d *Data, opts ValidationOptions) *ValidationResult {
	result := &ValidationResult{}

	if d.Status != "" && !ValidDataStatus(d.Status) {
		result.addError("status", "invalid_value",
			fmt.Sprintf("status must be %q or %q, got %q", StatusPending, StatusPublished, d.Status))
	}

	if d.Status == StatusPublished || opts.RequirePublishable {
		for _, req := range mandatory {
			if !HasProperty(d.Metas, req.uri) {
				result.addError("metas", "required",
					fmt.Sprintf("missing required field for published status: %s", req.name))
			}
		}
	}

	validateMetas(d.Metas, opts, result)
	return result
}

// ValidateCollection checks a collection payload. Collections only
// require a title.
func ValidateCollection(c *Collection, opts ValidationOptions) *ValidationResult {
	result := &ValidationResult{}

	if c.Status != "" && !ValidCollectionStatus(c.Status) {
		result.addError("status", "invalid_value",
			fmt.Sprintf("status must be %q or %q, got %q", StatusPrivate, StatusPublic, c.Status))
	}

	if !HasProperty(c.Metas, PropTitle) {
		result.addError("metas", "required", "collection requires a title")
	}

	validateMetas(c.Metas, opts, result)
	return result
}

func validateMetas(metas []Meta, opts ValidationOptions, result *ValidationResult) {
	for i, m := range metas {
		field := fmt.Sprintf("metas[%d]", i)

		if m.PropertyURI == "" {
			result.addError(field, "required", "propertyUri is empty")
			continue
		}

		switch m.PropertyURI {
		case PropType:
			if uri := m.StringValue(); !IsCOARType(uri) {
				result.addError(field, "invalid_format",
					fmt.Sprintf("type must be a full COAR URI, not %q", uri))
			}
		case PropCreated:
			if opts.ValidateDates {
				if err := CheckDate(m.StringValue()); err != nil {
					result.addError(field, "invalid_format", err.Error())
				}
			}
		case PropLicense:
			if opts.ValidateLicenses {
				if id := m.StringValue(); !IsKnownLicense(id) {
					result.addWarning(field, "unknown_license",
						fmt.Sprintf("license %q is not a recognized identifier", id))
				}
			}
		case PropCreator, PropContributor:
			p := m.Person()
			if p == nil {
				result.addError(field, "invalid_value", "creator/contributor value must be a person object")
			} else if p.Surname == "" {
				result.addError(field+".surname", "required", "person surname is empty")
			}
		default:
			if m.StringValue() == "" {
				result.addWarning(field, "empty_value",
					fmt.Sprintf("empty value for %s", m.PropertyURI))
			}
		}

		if m.Lang != "" && opts.ValidateLangTags {
			if _, err := language.Parse(m.Lang); err != nil {
				result.addWarning(field+".lang", "invalid_lang",
					fmt.Sprintf("language tag %q is not valid BCP 47", m.Lang))
			}
		}
	}
}
