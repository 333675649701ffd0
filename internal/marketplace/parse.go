package marketplace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/plugin-stack/plugman/internal/plugin"
)

const (
	// IndexFileName is the expected marketplace index file name within .plugman/
	IndexFileName = "marketplace.json"

	// MetaDir is the directory containing marketplace/plugin metadata
	MetaDir = ".plugman"
)

// Load loads .plugman/marketplace.json from a directory.
func Load(dir string) (*Marketplace, error) {
	path := filepath.Join(dir, MetaDir, IndexFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading marketplace index: %w", err)
	}

	var mkt Marketplace
	if err := json.Unmarshal(data, &mkt); err != nil {
		return nil, fmt.Errorf("parsing marketplace index: %w", err)
	}

	return &mkt, nil
}

// HasIndex checks if a directory has .plugman/marketplace.json.
func HasIndex(dir string) bool {
	path := filepath.Join(dir, MetaDir, IndexFileName)
	_, err := os.Stat(path)
	return err == nil
}

// FindPlugin returns the entry for a plugin name, or nil if not listed.
func (m *Marketplace) FindPlugin(name string) *PluginEntry {
	for i := range m.Plugins {
		if m.Plugins[i].Name == name {
			return &m.Plugins[i]
		}
	}
	return nil
}

// ResolvePluginSource resolves a PluginEntry's source to an absolute path.
// For path sources, it joins the marketplace directory, optional pluginRoot, and source path.
// For external sources (github/git), it returns an error (not yet implemented).
func ResolvePluginSource(entry PluginEntry, marketplaceDir, pluginRoot string) (string, error) {
	if entry.Source.IsPath() {
		base := marketplaceDir
		if pluginRoot != "" {
			base = filepath.Join(marketplaceDir, pluginRoot)
		}
		return filepath.Join(base, entry.Source.Path), nil
	}

	return "", fmt.Errorf("external plugin sources not yet implemented")
}

// LoadPluginManifest loads the plugin.json for an entry resolved from this
// marketplace. Non-strict entries without a manifest fall back to a manifest
// synthesized from the entry metadata.
func (m *Marketplace) LoadPluginManifest(entry PluginEntry, marketplaceDir string) (*plugin.Manifest, error) {
	dir, err := ResolvePluginSource(entry, marketplaceDir, m.PluginRoot)
	if err != nil {
		return nil, err
	}

	strict := entry.Strict == nil || *entry.Strict
	if !strict && !plugin.HasManifest(dir) {
		return &plugin.Manifest{
			Name:        entry.Name,
			DisplayName: entry.DisplayName,
			Description: entry.Description,
			Version:     m.Version,
		}, nil
	}

	return plugin.LoadManifest(dir)
}
