package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/plugin-stack/plugman/internal/marketplace"
)

// newTestGitMarketplace creates a local git repository containing the given
// marketplace index, usable as a clone source.
func newTestGitMarketplace(t *testing.T, mkt *marketplace.Marketplace) string {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	dir := t.TempDir()
	metaDir := filepath.Join(dir, marketplace.MetaDir)
	if err := os.MkdirAll(metaDir, 0755); err != nil {
		t.Fatal(err)
	}
	data, _ := json.MarshalIndent(mkt, "", "  ")
	if err := os.WriteFile(filepath.Join(metaDir, marketplace.IndexFileName), data, 0644); err != nil {
		t.Fatal(err)
	}

	for _, args := range [][]string{
		{"init", "-q"},
		{"add", "."},
		{"-c", "user.email=test@example.com", "-c", "user.name=test", "commit", "-q", "-m", "init"},
	} {
		gitCmd := exec.Command("git", args...)
		gitCmd.Dir = dir
		if out, err := gitCmd.CombinedOutput(); err != nil {
			t.Fatalf("git %v: %v\n%s", args, err, out)
		}
	}

	return dir
}

func TestMarketplaceAdd(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	repo := newTestGitMarketplace(t, &marketplace.Marketplace{
		Name:    "acme",
		Version: "1.0.0",
		Owner:   marketplace.Owner{Name: "Acme"},
		Plugins: []marketplace.PluginEntry{
			{
				Name:        "hex-mcp",
				Description: "Test plugin",
				Source:      marketplace.Source{Path: "hex-mcp"},
			},
		},
	})

	var buf bytes.Buffer
	marketplaceAddCmd.SetOut(&buf)
	marketplaceAddCmd.SetErr(&buf)

	if err := runMarketplaceAdd(marketplaceAddCmd, []string{repo}); err != nil {
		t.Fatalf("runMarketplaceAdd error: %v", err)
	}

	if !strings.Contains(buf.String(), "Added marketplace acme") {
		t.Errorf("unexpected output: %s", buf.String())
	}

	store, err := marketplace.NewMarketplacesStore()
	if err != nil {
		t.Fatalf("NewMarketplacesStore: %v", err)
	}
	reg, err := store.Get("acme")
	if err != nil {
		t.Fatalf("marketplace should be registered: %v", err)
	}
	if reg.Source != repo {
		t.Errorf("source = %q, want %q", reg.Source, repo)
	}

	cache, err := marketplace.NewCache()
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	if !cache.Exists("acme") {
		t.Error("registered marketplace should have a populated cache")
	}
	if cache.Exists(".staging") {
		t.Error("staging clone should be gone after a successful add")
	}
}

func TestMarketplaceAddInvalidIndex(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	// Missing name and owner; validation must reject it
	repo := newTestGitMarketplace(t, &marketplace.Marketplace{
		Version: "1.0.0",
	})

	err := runMarketplaceAdd(marketplaceAddCmd, []string{repo})
	if err == nil {
		t.Fatal("expected error for invalid marketplace index")
	}

	store, err := marketplace.NewMarketplacesStore()
	if err != nil {
		t.Fatalf("NewMarketplacesStore: %v", err)
	}
	list, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("nothing should be registered after a failed add, got %v", list)
	}

	cache, err := marketplace.NewCache()
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	if cache.Exists(".staging") {
		t.Error("staging clone should be cleaned up after a failed add")
	}
}

func TestMarketplaceListEmpty(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var buf bytes.Buffer
	marketplaceListCmd.SetOut(&buf)
	marketplaceListCmd.SetErr(&buf)

	if err := runMarketplaceList(marketplaceListCmd, nil); err != nil {
		t.Fatalf("runMarketplaceList error: %v", err)
	}

	if !strings.Contains(buf.String(), "No marketplaces registered") {
		t.Errorf("expected empty message, got: %s", buf.String())
	}
}

func TestMarketplaceList(t *testing.T) {
	setupTestMarketplace(t, "acme", "hex-mcp")
	registerTestMarketplace(t, "acme")

	var buf bytes.Buffer
	marketplaceListCmd.SetOut(&buf)
	marketplaceListCmd.SetErr(&buf)

	if err := runMarketplaceList(marketplaceListCmd, nil); err != nil {
		t.Fatalf("runMarketplaceList error: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"MARKETPLACE", "acme", "1.0.0", "test/acme"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}
}

func TestMarketplaceShow(t *testing.T) {
	setupTestMarketplace(t, "acme", "hex-mcp")
	registerTestMarketplace(t, "acme")

	var buf bytes.Buffer
	marketplaceShowCmd.SetOut(&buf)
	marketplaceShowCmd.SetErr(&buf)

	if err := runMarketplaceShow(marketplaceShowCmd, []string{"acme"}); err != nil {
		t.Fatalf("runMarketplaceShow error: %v", err)
	}

	output := buf.String()
	for _, want := range []string{"acme", "hex-mcp", "Hex Mcp", "Test plugin"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}
}

func TestMarketplaceShowUnregistered(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	err := runMarketplaceShow(marketplaceShowCmd, []string{"nope"})
	if err == nil {
		t.Fatal("expected error for unregistered marketplace")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMarketplaceRemove(t *testing.T) {
	setupTestMarketplace(t, "acme", "hex-mcp")
	registerTestMarketplace(t, "acme")

	oldYes := marketplaceRemoveYes
	defer func() { marketplaceRemoveYes = oldYes }()
	marketplaceRemoveYes = true

	var buf bytes.Buffer
	marketplaceRemoveCmd.SetOut(&buf)
	marketplaceRemoveCmd.SetErr(&buf)

	if err := runMarketplaceRemove(marketplaceRemoveCmd, []string{"acme"}); err != nil {
		t.Fatalf("runMarketplaceRemove error: %v", err)
	}

	store, err := marketplace.NewMarketplacesStore()
	if err != nil {
		t.Fatalf("NewMarketplacesStore: %v", err)
	}
	if _, err := store.Get("acme"); err == nil {
		t.Error("marketplace should be unregistered")
	}

	cache, err := marketplace.NewCache()
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	if cache.Exists("acme") {
		t.Error("marketplace cache should be removed")
	}
}

func TestMarketplaceRemoveDeclined(t *testing.T) {
	setupTestMarketplace(t, "acme", "hex-mcp")
	registerTestMarketplace(t, "acme")

	oldYes := marketplaceRemoveYes
	defer func() { marketplaceRemoveYes = oldYes }()
	marketplaceRemoveYes = false

	var buf bytes.Buffer
	marketplaceRemoveCmd.SetOut(&buf)
	marketplaceRemoveCmd.SetErr(&buf)
	marketplaceRemoveCmd.SetIn(strings.NewReader("n\n"))

	if err := runMarketplaceRemove(marketplaceRemoveCmd, []string{"acme"}); err != nil {
		t.Fatalf("runMarketplaceRemove error: %v", err)
	}

	if !strings.Contains(buf.String(), "Cancelled") {
		t.Errorf("expected cancellation, got: %s", buf.String())
	}

	store, err := marketplace.NewMarketplacesStore()
	if err != nil {
		t.Fatalf("NewMarketplacesStore: %v", err)
	}
	if _, err := store.Get("acme"); err != nil {
		t.Error("marketplace should survive a declined remove")
	}
}

func TestMarketplaceUpdateNothingRegistered(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	var buf bytes.Buffer
	marketplaceUpdateCmd.SetOut(&buf)
	marketplaceUpdateCmd.SetErr(&buf)

	if err := runMarketplaceUpdate(marketplaceUpdateCmd, nil); err != nil {
		t.Fatalf("runMarketplaceUpdate error: %v", err)
	}

	if !strings.Contains(buf.String(), "No marketplaces registered") {
		t.Errorf("expected empty message, got: %s", buf.String())
	}
}

func TestMarketplaceUpdateUnknown(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	err := runMarketplaceUpdate(marketplaceUpdateCmd, []string{"nope"})
	if err == nil {
		t.Fatal("expected error for unknown marketplace")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMarketplaceRemoveMissingCacheIsFine(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	registerTestMarketplace(t, "acme")

	oldYes := marketplaceRemoveYes
	defer func() { marketplaceRemoveYes = oldYes }()
	marketplaceRemoveYes = true

	var buf bytes.Buffer
	marketplaceRemoveCmd.SetOut(&buf)
	marketplaceRemoveCmd.SetErr(&buf)

	// Cache was never populated; removal should still unregister
	if err := runMarketplaceRemove(marketplaceRemoveCmd, []string{"acme"}); err != nil {
		t.Fatalf("runMarketplaceRemove error: %v", err)
	}

	store, err := marketplace.NewMarketplacesStore()
	if err != nil {
		t.Fatalf("NewMarketplacesStore: %v", err)
	}
	if _, err := store.Get("acme"); err == nil {
		t.Error("marketplace should be unregistered")
	}
}
