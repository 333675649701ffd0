package plugin

import (
	"fmt"
	"regexp"
	"strings"
)

// NamePattern matches valid kebab-case names: lowercase, start with letter, hyphens allowed.
var NamePattern = regexp.MustCompile(`^[a-z][a-z0-9]*(?:-[a-z0-9]+)*$`)

// ValidName reports whether name is a well-formed kebab-case identifier.
func ValidName(name string) bool {
	return NamePattern.MatchString(name)
}

// ValidationError represents a single validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// ValidationResult holds validation errors and warnings.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []string
}

// HasErrors returns true if there are any validation errors.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// AddError appends a validation error.
func (r *ValidationResult) AddError(field, message string) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: message})
}

// AddWarning appends a validation warning.
func (r *ValidationResult) AddWarning(message string) {
	r.Warnings = append(r.Warnings, message)
}

// Error implements the error interface.
func (r *ValidationResult) Error() string {
	if len(r.Errors) == 0 {
		return ""
	}

	var messages []string
	for _, err := range r.Errors {
		messages = append(messages, err.Error())
	}

	return fmt.Sprintf("validation failed with %d error(s):\n  - %s",
		len(r.Errors), strings.Join(messages, "\n  - "))
}

// ValidateManifest validates a plugin.json structure.
func ValidateManifest(m *Manifest) *ValidationResult {
	result := &ValidationResult{}

	if m.Name == "" {
		result.AddError("name", "is required")
	} else if !ValidName(m.Name) {
		result.AddError("name", "must be kebab-case (lowercase, hyphens, start with letter)")
	}

	if m.Description == "" {
		result.AddError("description", "is required")
	}

	if m.Author != nil && m.Author.Name == "" {
		result.AddError("author.name", "is required when author is present")
	}

	// DisplayName is free-form, but a value identical to the derived title
	// is redundant and worth flagging.
	if m.DisplayName != "" && m.DisplayName == TitleCase(m.Name) {
		result.AddWarning(fmt.Sprintf("displayName %q matches the derived title; it can be omitted", m.DisplayName))
	}

	return result
}
