package plugin

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	// ManifestFileName is the expected plugin manifest file name within .plugman/
	ManifestFileName = "plugin.json"

	// MetaDir is the directory containing plugin/marketplace metadata
	MetaDir = ".plugman"
)

// LoadManifest loads .plugman/plugin.json from a plugin directory.
func LoadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, MetaDir, ManifestFileName)
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open plugin manifest: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse parses a plugin manifest from a reader.
func Parse(reader io.Reader) (*Manifest, error) {
	var m Manifest
	if err := json.NewDecoder(reader).Decode(&m); err != nil {
		return nil, fmt.Errorf("decode plugin manifest: %w", err)
	}

	return &m, nil
}

// ParseString parses a plugin manifest from a string.
func ParseString(content string) (*Manifest, error) {
	return Parse(strings.NewReader(content))
}

// HasManifest checks if a directory has .plugman/plugin.json.
func HasManifest(dir string) bool {
	path := filepath.Join(dir, MetaDir, ManifestFileName)
	_, err := os.Stat(path)
	return err == nil
}
