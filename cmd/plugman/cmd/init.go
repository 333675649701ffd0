package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/plugin-stack/plugman/internal/plugin"
	"github.com/plugin-stack/plugman/internal/skill"
	"github.com/spf13/cobra"
)

// exampleSkillMd is the starter skill written by `plugman init`.
const exampleSkillMd = `---
name: example-skill
description: Describe what this skill does and when the assistant should use it.
---

# Example Skill

Replace this with the instructions the AI assistant should follow when
this skill is activated.
`

var initSkipSkill bool

var initCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Scaffold a new plugin",
	Long: `Create a new plugin directory with a starter manifest and example skill.

Creates the following structure:

  <name>/
  ├── .plugman/
  │   └── plugin.json      # Plugin manifest
  └── skills/
      └── example-skill/
          └── SKILL.md     # Starter skill

The name must be kebab-case (lowercase letters, digits, hyphens).`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initSkipSkill, "skip-skill", false, "skip creating the example skill")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	name := args[0]

	if !plugin.ValidName(name) {
		return fmt.Errorf("invalid plugin name %q: must be kebab-case (lowercase, hyphens, start with letter)", name)
	}

	baseDir, err := getWorkDir()
	if err != nil {
		return err
	}

	pluginDir := filepath.Join(baseDir, name)
	if _, err := os.Stat(pluginDir); err == nil {
		return fmt.Errorf("directory %q already exists", name)
	}

	metaDir := filepath.Join(pluginDir, plugin.MetaDir)
	if err := os.MkdirAll(metaDir, 0755); err != nil {
		return fmt.Errorf("creating plugin directory: %w", err)
	}

	manifest := plugin.Manifest{
		Name:        name,
		Description: "TODO: describe this plugin",
		Version:     "0.1.0",
	}

	data, err := json.MarshalIndent(&manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	manifestPath := filepath.Join(metaDir, plugin.ManifestFileName)
	if err := os.WriteFile(manifestPath, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}

	if !initSkipSkill {
		skillDir := filepath.Join(pluginDir, skill.SkillsDir, "example-skill")
		if err := os.MkdirAll(skillDir, 0755); err != nil {
			return fmt.Errorf("creating skill directory: %w", err)
		}
		if err := os.WriteFile(filepath.Join(skillDir, skill.FileName), []byte(exampleSkillMd), 0644); err != nil {
			return fmt.Errorf("writing example skill: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ Created plugin %s (%s)\n\n", name, manifest.Title())
	fmt.Fprintf(out, "Next steps:\n")
	fmt.Fprintf(out, "  1. Edit %s\n", manifestPath)
	if !initSkipSkill {
		fmt.Fprintf(out, "  2. Replace the example skill in %s/\n", filepath.Join(name, skill.SkillsDir))
	}
	fmt.Fprintf(out, "  3. Check it: plugman validate %s\n", name)

	return nil
}
