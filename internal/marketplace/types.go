// Package marketplace provides types for plugman's plugin distribution system.
//
// The distribution system uses a two-level hierarchy:
//   - Marketplace: A Git repository containing one or more plugins (.plugman/marketplace.json)
//   - Plugin: A self-contained, installable bundle (.plugman/plugin.json)
package marketplace

import (
	"encoding/json"
	"time"

	"github.com/plugin-stack/plugman/internal/plugin"
)

// Marketplace represents a .plugman/marketplace.json file.
// A marketplace is the top-level distribution unit that indexes multiple plugins.
type Marketplace struct {
	// Name is the marketplace identifier (kebab-case).
	// Users reference this in commands like "plugman install plugin@marketplace-name".
	Name string `json:"name"`

	// Description provides a brief human-readable description.
	Description string `json:"description,omitempty"`

	// Version is the marketplace version (semver).
	// All plugins share this version; there are no per-plugin versions here.
	Version string `json:"version"`

	// Owner describes the marketplace maintainer.
	Owner Owner `json:"owner"`

	// PluginRoot is the base path prepended to relative plugin sources.
	// For example, if PluginRoot is "./plugins" and a plugin source is "hex-mcp",
	// the resolved path is "./plugins/hex-mcp/".
	// Default: "."
	PluginRoot string `json:"pluginRoot,omitempty"`

	// Plugins lists the available plugins in this marketplace.
	Plugins []PluginEntry `json:"plugins"`
}

// Owner describes a marketplace maintainer or organization.
type Owner struct {
	// Name is the maintainer or organization name (required).
	Name string `json:"name"`

	// Email is the contact email (optional).
	Email string `json:"email,omitempty"`

	// URL is the website or profile URL (optional).
	URL string `json:"url,omitempty"`
}

// PluginEntry is a plugin listing in marketplace.json.
// It provides discovery metadata for a plugin.
type PluginEntry struct {
	// Name is the plugin identifier (kebab-case).
	Name string `json:"name"`

	// DisplayName is an optional human-readable title override.
	// Presentation only; never used for lookups or commands.
	DisplayName string `json:"displayName,omitempty"`

	// Source specifies where to find the plugin.
	// Can be a relative path (string) or a SourceObject for external sources.
	Source Source `json:"source"`

	// Description provides a brief human-readable description.
	Description string `json:"description"`

	// Tags are keywords for discovery and filtering.
	Tags []string `json:"tags,omitempty"`

	// Strict indicates whether the plugin must have a .plugman/plugin.json.
	// Default: true. When false, the marketplace entry defines everything.
	Strict *bool `json:"strict,omitempty"`
}

// Title returns the human-facing label for the entry: a non-empty
// DisplayName verbatim, otherwise the title derived from Name.
func (e PluginEntry) Title() string {
	if e.DisplayName != "" {
		return e.DisplayName
	}
	return plugin.TitleCase(e.Name)
}

// Source represents a plugin source, which can be either a relative path (string)
// or a SourceObject for external repositories.
type Source struct {
	// Path is set when the source is a simple relative path string.
	Path string

	// Object is set when the source is a SourceObject (github or git).
	Object *SourceObject
}

// IsPath returns true if this source is a simple relative path.
func (s Source) IsPath() bool {
	return s.Object == nil
}

// String returns the string representation of the source.
// For path sources, returns the path. For object sources, returns a description.
func (s Source) String() string {
	if s.IsPath() {
		return s.Path
	}
	if s.Object.Type == "github" {
		return "github:" + s.Object.Repo
	}
	return "git:" + s.Object.URL
}

// MarshalJSON implements json.Marshaler.
func (s Source) MarshalJSON() ([]byte, error) {
	if s.IsPath() {
		return json.Marshal(s.Path)
	}
	return json.Marshal(s.Object)
}

// UnmarshalJSON implements json.Unmarshaler.
// Handles both string paths and SourceObject structures.
func (s *Source) UnmarshalJSON(data []byte) error {
	// Try string first
	var path string
	if err := json.Unmarshal(data, &path); err == nil {
		s.Path = path
		s.Object = nil
		return nil
	}

	// Try SourceObject
	var obj SourceObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	s.Object = &obj
	s.Path = ""
	return nil
}

// SourceObject represents an external source location (GitHub or Git).
type SourceObject struct {
	// Type must be "github" or "git".
	Type string `json:"type"`

	// Repo is the GitHub repository in "owner/repo" format.
	// Only used when Type is "github".
	Repo string `json:"repo,omitempty"`

	// URL is the Git repository URL.
	// Only used when Type is "git".
	URL string `json:"url,omitempty"`

	// Ref is the Git ref (tag, branch, or commit hash).
	// Optional; defaults to the repository's default branch.
	Ref string `json:"ref,omitempty"`

	// Path is the subdirectory within the repository.
	// Optional; defaults to the repository root.
	Path string `json:"path,omitempty"`
}

// MarketplacesFile represents the ~/.plugman/marketplaces.json file.
// This file tracks all registered marketplaces for the user.
type MarketplacesFile struct {
	// Marketplaces maps marketplace names to their registration info.
	Marketplaces map[string]RegisteredMarketplace `json:"marketplaces"`
}

// RegisteredMarketplace tracks a registered marketplace in ~/.plugman/marketplaces.json.
type RegisteredMarketplace struct {
	// Source is the marketplace source (e.g., "github.com/owner/repo").
	Source string `json:"source"`

	// Version is the cached marketplace version.
	Version string `json:"version"`

	// AddedAt is when the marketplace was first added.
	AddedAt time.Time `json:"added_at"`

	// UpdatedAt is when the marketplace was last updated/fetched.
	UpdatedAt time.Time `json:"updated_at"`
}

// InstalledFile represents the ~/.plugman/installed.json file.
// This file tracks all installed plugins.
type InstalledFile struct {
	// Plugins maps plugin names to their installation info.
	Plugins map[string]InstalledPlugin `json:"plugins"`
}

// InstalledPlugin tracks an installed plugin in ~/.plugman/installed.json.
type InstalledPlugin struct {
	// Marketplace is the source marketplace name (for marketplace-sourced installs).
	// Empty for direct URL installs.
	Marketplace string `json:"marketplace,omitempty"`

	// MarketplaceVersion is the marketplace version at install time.
	// Used to detect when updates are available.
	MarketplaceVersion string `json:"marketplace_version,omitempty"`

	// Source is the direct source URL (for direct URL installs).
	// Empty for marketplace-sourced installs.
	Source string `json:"source,omitempty"`

	// InstalledAt is when the plugin was installed.
	InstalledAt time.Time `json:"installed_at"`

	// Path is where the plugin is installed.
	// For user scope: ~/.plugman/plugins/<name>/
	// For project scope: .plugman/plugins/<name>/
	Path string `json:"path"`

	// Scope is either "user" or "project".
	Scope string `json:"scope"`
}

// Scope constants for InstalledPlugin.
const (
	ScopeUser    = "user"
	ScopeProject = "project"
)

// SourceType constants for SourceObject.
const (
	SourceTypeGitHub = "github"
	SourceTypeGit    = "git"
)
