// Package plugin provides types and helpers for plugman plugin manifests.
//
// A plugin is a directory bundling markdown skills, agent personas, and
// supporting files for an AI coding assistant. Its authoritative metadata
// lives in .plugman/plugin.json.
package plugin

// Manifest represents a .plugman/plugin.json file.
// The manifest is the authoritative metadata for a plugin.
type Manifest struct {
	// Name is the plugin identifier (kebab-case).
	// Users reference this in commands like "plugman install name@marketplace".
	// It is the stable key for lookups, store entries, and install paths.
	Name string `json:"name"`

	// DisplayName is an optional human-readable title override.
	// When present and non-empty it is shown verbatim instead of the
	// title derived from Name. It never affects identity or commands.
	DisplayName string `json:"displayName,omitempty"`

	// Description is a human-readable description.
	Description string `json:"description"`

	// Version is the plugin version (semver).
	Version string `json:"version,omitempty"`

	// Author describes the plugin author (optional).
	Author *Author `json:"author,omitempty"`

	// Homepage is the documentation or homepage URL.
	Homepage string `json:"homepage,omitempty"`

	// Repository is the source code repository URL.
	Repository string `json:"repository,omitempty"`

	// License is the SPDX license identifier (MIT, Apache-2.0, etc).
	License string `json:"license,omitempty"`

	// Keywords are tags for search and discovery.
	Keywords []string `json:"keywords,omitempty"`
}

// Author describes a plugin author.
type Author struct {
	// Name is the author name (required).
	Name string `json:"name"`

	// Email is the contact email (optional).
	Email string `json:"email,omitempty"`

	// URL is the website or profile URL (optional).
	URL string `json:"url,omitempty"`
}
