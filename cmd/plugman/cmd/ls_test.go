package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/plugin-stack/plugman/internal/marketplace"
)

func TestLsEmpty(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var buf bytes.Buffer
	lsCmd.SetOut(&buf)
	lsCmd.SetErr(&buf)

	if err := runLs(lsCmd, nil); err != nil {
		t.Fatalf("runLs error: %v", err)
	}

	if !strings.Contains(buf.String(), "No plugins installed") {
		t.Errorf("expected empty message, got: %s", buf.String())
	}
}

func TestLs(t *testing.T) {
	setupTestMarketplace(t, "acme", "hex-mcp")
	resetInstallFlags()

	var installBuf bytes.Buffer
	installCmd.SetOut(&installBuf)
	installCmd.SetErr(&installBuf)
	if err := runInstall(installCmd, []string{"hex-mcp@acme"}); err != nil {
		t.Fatalf("install fixture: %v", err)
	}

	oldJSON := lsJSON
	defer func() { lsJSON = oldJSON }()
	lsJSON = false

	var buf bytes.Buffer
	lsCmd.SetOut(&buf)
	lsCmd.SetErr(&buf)

	if err := runLs(lsCmd, nil); err != nil {
		t.Fatalf("runLs error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "hex-mcp") {
		t.Errorf("expected plugin name, got: %s", output)
	}
	if !strings.Contains(output, "Hex Mcp") {
		t.Errorf("expected derived title, got: %s", output)
	}
	if !strings.Contains(output, "VERSION") {
		t.Errorf("expected version header, got: %s", output)
	}
	if !strings.Contains(output, "1.0.0") {
		t.Errorf("expected manifest version, got: %s", output)
	}
	if !strings.Contains(output, "acme") {
		t.Errorf("expected marketplace column, got: %s", output)
	}
	if !strings.Contains(output, marketplace.ScopeUser) {
		t.Errorf("expected scope column, got: %s", output)
	}
}

func TestLsJSON(t *testing.T) {
	setupTestMarketplace(t, "acme", "hex-mcp")
	resetInstallFlags()

	var installBuf bytes.Buffer
	installCmd.SetOut(&installBuf)
	installCmd.SetErr(&installBuf)
	if err := runInstall(installCmd, []string{"hex-mcp@acme"}); err != nil {
		t.Fatalf("install fixture: %v", err)
	}

	oldJSON := lsJSON
	defer func() { lsJSON = oldJSON }()
	lsJSON = true

	var buf bytes.Buffer
	lsCmd.SetOut(&buf)
	lsCmd.SetErr(&buf)

	if err := runLs(lsCmd, nil); err != nil {
		t.Fatalf("runLs error: %v", err)
	}

	var entries []lsEntry
	if err := json.Unmarshal(buf.Bytes(), &entries); err != nil {
		t.Fatalf("parsing JSON output: %v\n%s", err, buf.String())
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Name != "hex-mcp" || entries[0].Title != "Hex Mcp" || entries[0].Version != "1.0.0" {
		t.Errorf("unexpected entry: %+v", entries[0])
	}
}
