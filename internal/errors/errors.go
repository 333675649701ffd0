// Package errors provides structured error types for plugman.
package errors

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Error codes for plugman operations.
const (
	// Plugin errors
	CodePluginInvalidName     = "PLUGIN_001" // Name is not kebab-case
	CodePluginNotFound        = "PLUGIN_002" // Plugin not found
	CodePluginAlreadyExists   = "PLUGIN_003" // Plugin already installed
	CodePluginManifestInvalid = "PLUGIN_004" // Manifest failed validation

	// Marketplace errors
	CodeMarketplaceNotFound   = "MKT_001" // Marketplace not registered
	CodeMarketplaceInvalid    = "MKT_002" // Index failed validation
	CodeMarketplaceCloneError = "MKT_003" // Git clone/fetch failed
	CodeMarketplaceDuplicate  = "MKT_004" // Marketplace already registered

	// Skill errors
	CodeSkillParseError = "SKILL_001" // Frontmatter parse error
	CodeSkillNotFound   = "SKILL_002" // Skill not found in plugin
	CodeSkillBadTarget  = "SKILL_003" // Unknown harness target

	// IO errors
	CodeIOFileNotFound = "IO_001" // File not found
	CodeIOPermission   = "IO_002" // Permission denied
	CodeIOReadError    = "IO_003" // Read error
	CodeIOWriteError   = "IO_004" // Write error
)

// PlugError is the structured error type for plugman operations.
type PlugError struct {
	Code    string         `json:"code"`              // Error code (e.g., "PLUGIN_001")
	Message string         `json:"message"`           // Human-readable message
	Details map[string]any `json:"details,omitempty"` // Context (plugin, marketplace, etc.)
	Cause   error          `json:"-"`                 // Wrapped error (not serialized)
}

// Error implements the error interface.
func (e *PlugError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *PlugError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error.
func (e *PlugError) WithDetail(key string, value any) *PlugError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause wraps an underlying error.
func (e *PlugError) WithCause(err error) *PlugError {
	e.Cause = err
	return e
}

// MarshalJSON implements json.Marshaler with cause error message.
func (e *PlugError) MarshalJSON() ([]byte, error) {
	type alias PlugError
	aux := struct {
		*alias
		CauseMsg string `json:"cause,omitempty"`
	}{
		alias: (*alias)(e),
	}
	if e.Cause != nil {
		aux.CauseMsg = e.Cause.Error()
	}
	return json.Marshal(aux)
}

// New creates a new PlugError.
func New(code, message string) *PlugError {
	return &PlugError{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new PlugError with formatted message.
func Newf(code, format string, args ...any) *PlugError {
	return &PlugError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with a PlugError.
func Wrap(code, message string, err error) *PlugError {
	return &PlugError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with a formatted PlugError.
func Wrapf(code string, err error, format string, args ...any) *PlugError {
	return &PlugError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   err,
	}
}

// --- Plugin Errors ---

// PluginInvalidName creates an error for a malformed plugin name.
func PluginInvalidName(name string) *PlugError {
	return Newf(CodePluginInvalidName, "invalid plugin name %q: must be kebab-case", name).
		WithDetail("plugin", name)
}

// PluginNotFound creates an error for a missing plugin.
func PluginNotFound(name string) *PlugError {
	return Newf(CodePluginNotFound, "plugin not found: %s", name).
		WithDetail("plugin", name)
}

// PluginAlreadyExists creates an error for a duplicate installation.
func PluginAlreadyExists(name, marketplace string) *PlugError {
	return Newf(CodePluginAlreadyExists, "plugin %q already installed (from %s)", name, marketplace).
		WithDetail("plugin", name).
		WithDetail("marketplace", marketplace)
}

// PluginManifestInvalid creates an error for a manifest validation failure.
func PluginManifestInvalid(name string, err error) *PlugError {
	return Wrap(CodePluginManifestInvalid, "plugin manifest failed validation", err).
		WithDetail("plugin", name)
}

// --- Marketplace Errors ---

// MarketplaceNotFound creates an error for an unregistered marketplace.
func MarketplaceNotFound(name string) *PlugError {
	return Newf(CodeMarketplaceNotFound, "marketplace not found: %s", name).
		WithDetail("marketplace", name)
}

// MarketplaceInvalid creates an error for an index validation failure.
func MarketplaceInvalid(name string, err error) *PlugError {
	return Wrap(CodeMarketplaceInvalid, "marketplace index failed validation", err).
		WithDetail("marketplace", name)
}

// MarketplaceCloneError creates an error for a failed clone or fetch.
func MarketplaceCloneError(source string, err error) *PlugError {
	return Wrap(CodeMarketplaceCloneError, "failed to clone marketplace", err).
		WithDetail("source", source)
}

// MarketplaceDuplicate creates an error for an already-registered marketplace.
func MarketplaceDuplicate(name string) *PlugError {
	return Newf(CodeMarketplaceDuplicate, "marketplace already registered: %s", name).
		WithDetail("marketplace", name)
}

// --- Skill Errors ---

// SkillParseError creates an error for a frontmatter parse failure.
func SkillParseError(path string, err error) *PlugError {
	return Wrap(CodeSkillParseError, "failed to parse skill", err).
		WithDetail("path", path)
}

// SkillNotFound creates an error for a skill missing from a plugin.
func SkillNotFound(pluginName, skillName string) *PlugError {
	return Newf(CodeSkillNotFound, "skill %q not found in plugin %s", skillName, pluginName).
		WithDetail("plugin", pluginName).
		WithDetail("skill", skillName)
}

// SkillBadTarget creates an error for an unknown harness target.
func SkillBadTarget(target string) *PlugError {
	return Newf(CodeSkillBadTarget, "unknown harness target: %s", target).
		WithDetail("target", target)
}

// --- IO Errors ---

// IOFileNotFound creates an error for missing file.
func IOFileNotFound(path string) *PlugError {
	return Newf(CodeIOFileNotFound, "file not found: %s", path).
		WithDetail("path", path)
}

// IOPermissionDenied creates an error for permission issues.
func IOPermissionDenied(path string, err error) *PlugError {
	return Wrap(CodeIOPermission, "permission denied", err).
		WithDetail("path", path)
}

// IOReadError creates an error for read failures.
func IOReadError(path string, err error) *PlugError {
	return Wrap(CodeIOReadError, "failed to read file", err).
		WithDetail("path", path)
}

// IOWriteError creates an error for write failures.
func IOWriteError(path string, err error) *PlugError {
	return Wrap(CodeIOWriteError, "failed to write file", err).
		WithDetail("path", path)
}

// HasCode checks if an error is a PlugError with the given code.
// It handles wrapped errors by unwrapping to find a PlugError.
func HasCode(err error, code string) bool {
	var perr *PlugError
	if errors.As(err, &perr) {
		return perr.Code == code
	}
	return false
}

// Code returns the error code if err is a PlugError, empty string otherwise.
// It handles wrapped errors by unwrapping to find a PlugError.
func Code(err error) string {
	var perr *PlugError
	if errors.As(err, &perr) {
		return perr.Code
	}
	return ""
}
