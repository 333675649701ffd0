package marketplace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/plugin-stack/plugman/internal/plugin"
)

// Validate validates a marketplace.json structure.
func Validate(m *Marketplace) *plugin.ValidationResult {
	result := &plugin.ValidationResult{}

	// Validate required fields
	if m.Name == "" {
		result.AddError("name", "is required")
	} else if !plugin.ValidName(m.Name) {
		result.AddError("name", "must be kebab-case (lowercase, hyphens, start with letter)")
	}

	if m.Version == "" {
		result.AddError("version", "is required")
	}

	if m.Owner.Name == "" {
		result.AddError("owner.name", "is required")
	}

	// Validate plugin entries
	if len(m.Plugins) == 0 {
		result.AddWarning("marketplace has no plugins")
	}

	// Check for duplicate plugin names and validate each entry
	names := make(map[string]int)
	for i, p := range m.Plugins {
		fieldPrefix := fmt.Sprintf("plugins[%d]", i)

		if p.Name == "" {
			result.AddError(fieldPrefix, "name is required")
		} else {
			if !plugin.ValidName(p.Name) {
				result.AddError(fieldPrefix, fmt.Sprintf("name %q must be kebab-case", p.Name))
			}
			if prev, ok := names[p.Name]; ok {
				result.AddError(fieldPrefix, fmt.Sprintf("duplicate plugin name %q (first at index %d)", p.Name, prev))
			} else {
				names[p.Name] = i
			}
		}

		// Source is required - check if it's empty
		if p.Source.IsPath() && p.Source.Path == "" && p.Source.Object == nil {
			result.AddError(fieldPrefix, "source is required")
		}

		// Description is optional but warn if missing
		if p.Description == "" {
			result.AddWarning(fmt.Sprintf("%s (%s): missing description", fieldPrefix, p.Name))
		}
	}

	return result
}

// ValidateDir validates a marketplace directory structure.
// It validates the index and checks that each path-sourced plugin
// directory exists.
func ValidateDir(dir string, m *Marketplace) *plugin.ValidationResult {
	result := Validate(m)

	for i, p := range m.Plugins {
		if !p.Source.IsPath() || p.Source.Path == "" {
			continue
		}

		pluginDir, err := ResolvePluginSource(p, dir, m.PluginRoot)
		if err != nil {
			continue
		}

		if _, err := os.Stat(pluginDir); os.IsNotExist(err) {
			result.AddError(fmt.Sprintf("plugins[%d]", i),
				fmt.Sprintf("source directory %q does not exist", p.Source.Path))
			continue
		}

		strict := p.Strict == nil || *p.Strict
		if strict && !plugin.HasManifest(pluginDir) {
			result.AddError(fmt.Sprintf("plugins[%d]", i),
				fmt.Sprintf("missing %s", filepath.Join(p.Source.Path, MetaDir, plugin.ManifestFileName)))
		}
	}

	return result
}
