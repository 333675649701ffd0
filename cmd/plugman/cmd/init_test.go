package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/plugin-stack/plugman/internal/plugin"
)

func TestInit(t *testing.T) {
	oldWorkDir := workDir
	workDir = t.TempDir()
	defer func() { workDir = oldWorkDir }()

	oldSkip := initSkipSkill
	defer func() { initSkipSkill = oldSkip }()
	initSkipSkill = false

	var buf bytes.Buffer
	initCmd.SetOut(&buf)
	initCmd.SetErr(&buf)

	if err := runInit(initCmd, []string{"deploy-on-aws"}); err != nil {
		t.Fatalf("runInit error: %v", err)
	}

	pluginDir := filepath.Join(workDir, "deploy-on-aws")

	manifest, err := plugin.LoadManifest(pluginDir)
	if err != nil {
		t.Fatalf("loading scaffolded manifest: %v", err)
	}
	if manifest.Name != "deploy-on-aws" {
		t.Errorf("manifest name = %q", manifest.Name)
	}
	if manifest.Version != "0.1.0" {
		t.Errorf("manifest version = %q", manifest.Version)
	}

	if _, err := os.Stat(filepath.Join(pluginDir, "skills", "example-skill", "SKILL.md")); err != nil {
		t.Errorf("expected example skill: %v", err)
	}

	if !strings.Contains(buf.String(), "Deploy On Aws") {
		t.Errorf("expected derived title in output, got: %s", buf.String())
	}
}

func TestInitSkipSkill(t *testing.T) {
	oldWorkDir := workDir
	workDir = t.TempDir()
	defer func() { workDir = oldWorkDir }()

	oldSkip := initSkipSkill
	defer func() { initSkipSkill = oldSkip }()
	initSkipSkill = true

	var buf bytes.Buffer
	initCmd.SetOut(&buf)
	initCmd.SetErr(&buf)

	if err := runInit(initCmd, []string{"bare-plugin"}); err != nil {
		t.Fatalf("runInit error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(workDir, "bare-plugin", "skills")); !os.IsNotExist(err) {
		t.Error("skills dir should not be created with --skip-skill")
	}
}

func TestInitRejectsBadName(t *testing.T) {
	oldWorkDir := workDir
	workDir = t.TempDir()
	defer func() { workDir = oldWorkDir }()

	for _, name := range []string{"HexMCP", "hex_mcp", "-plugin", "plugin-", "1plugin"} {
		if err := runInit(initCmd, []string{name}); err == nil {
			t.Errorf("expected error for name %q", name)
		}
	}
}

func TestInitExistingDir(t *testing.T) {
	oldWorkDir := workDir
	workDir = t.TempDir()
	defer func() { workDir = oldWorkDir }()

	if err := os.MkdirAll(filepath.Join(workDir, "taken"), 0755); err != nil {
		t.Fatal(err)
	}

	err := runInit(initCmd, []string{"taken"})
	if err == nil {
		t.Fatal("expected error for existing directory")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("unexpected error: %v", err)
	}
}
