package marketplace

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInstalledStore_LoadMissingFile(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewInstalledStoreWithPath(filepath.Join(tmpDir, "installed.json"))

	f, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v, want nil", err)
	}
	if f == nil {
		t.Fatal("Load() returned nil, want non-nil InstalledFile")
	}
	if f.Plugins == nil {
		t.Error("Load() returned nil Plugins map, want initialized map")
	}
	if len(f.Plugins) != 0 {
		t.Errorf("Load() returned %d plugins, want 0", len(f.Plugins))
	}
}

func TestInstalledStore_SaveCreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewInstalledStoreWithPath(filepath.Join(tmpDir, "nested", "dir", "installed.json"))

	f := &InstalledFile{Plugins: make(map[string]InstalledPlugin)}
	if err := store.Save(f); err != nil {
		t.Fatalf("Save() error = %v, want nil", err)
	}

	if _, err := os.Stat(store.path); os.IsNotExist(err) {
		t.Error("Save() did not create the file")
	}
}

func TestInstalledStore_AddNewPlugin(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewInstalledStoreWithPath(filepath.Join(tmpDir, "installed.json"))

	info := InstalledPlugin{
		Marketplace:        "acme-plugins",
		MarketplaceVersion: "1.0.0",
		Path:               "/home/user/.plugman/plugins/hex-mcp",
		Scope:              ScopeUser,
	}

	if err := store.Add("hex-mcp", info); err != nil {
		t.Fatalf("Add() error = %v, want nil", err)
	}

	f, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(f.Plugins) != 1 {
		t.Errorf("Load() returned %d plugins, want 1", len(f.Plugins))
	}

	p, exists := f.Plugins["hex-mcp"]
	if !exists {
		t.Fatal("Plugin 'hex-mcp' not found after Add()")
	}
	if p.Marketplace != "acme-plugins" {
		t.Errorf("Marketplace = %q, want %q", p.Marketplace, "acme-plugins")
	}
	if p.InstalledAt.IsZero() {
		t.Error("InstalledAt was not set")
	}
}

func TestInstalledStore_GetAndExists(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewInstalledStoreWithPath(filepath.Join(tmpDir, "installed.json"))

	// Missing plugin is not an error
	p, err := store.Get("hex-mcp")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if p != nil {
		t.Errorf("Get() = %+v, want nil for missing plugin", p)
	}

	if err := store.Add("hex-mcp", InstalledPlugin{Scope: ScopeProject}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	exists, err := store.Exists("hex-mcp")
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if !exists {
		t.Error("Exists() = false after Add()")
	}
}

func TestInstalledStore_Remove(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewInstalledStoreWithPath(filepath.Join(tmpDir, "installed.json"))

	if err := store.Remove("hex-mcp"); err == nil {
		t.Error("Remove() on missing plugin should error")
	}

	if err := store.Add("hex-mcp", InstalledPlugin{Scope: ScopeUser}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := store.Remove("hex-mcp"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	exists, err := store.Exists("hex-mcp")
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if exists {
		t.Error("Exists() = true after Remove()")
	}
}
