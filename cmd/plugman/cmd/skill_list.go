package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/plugin-stack/plugman/internal/skill"
	"github.com/spf13/cobra"
)

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List skills installed into harness targets",
	Long: `List skills installed into the known AI harness targets.

The output shows:
  - SKILL:  Skill name
  - TITLE:  Human-readable display name
  - TARGET: The harness it is installed into
  - PATH:   Installation path

Use --target to filter by a specific harness.
Use --json for machine-readable output.`,
	RunE: runSkillList,
}

var (
	skillListTarget string
	skillListJSON   bool
)

func init() {
	skillListCmd.Flags().StringVar(&skillListTarget, "target", "", "filter by target harness (e.g., claude, opencode)")
	skillListCmd.Flags().BoolVar(&skillListJSON, "json", false, "output as JSON")
	skillCmd.AddCommand(skillListCmd)
}

// skillListEntry represents an installed skill for listing.
type skillListEntry struct {
	Name   string `json:"name"`
	Title  string `json:"title"`
	Target string `json:"target"`
	Path   string `json:"path"`
}

func runSkillList(cmd *cobra.Command, args []string) error {
	targets := skill.ListKnownTargets()
	if skillListTarget != "" && skillListTarget != "all" {
		if _, ok := skill.KnownTargets[skillListTarget]; !ok {
			return fmt.Errorf("unknown target %q: valid targets are %v", skillListTarget, targets)
		}
		targets = []string{skillListTarget}
	}

	var entries []skillListEntry
	for _, target := range targets {
		targetConfig := skill.KnownTargets[target]

		skillsDir := skillsBaseDir(targetConfig.GlobalPath)
		if skillsDir == "" {
			continue
		}

		files, err := os.ReadDir(skillsDir)
		if err != nil {
			// Directory doesn't exist - no skills installed
			continue
		}

		for _, f := range files {
			if !f.IsDir() {
				continue
			}

			skillDir := filepath.Join(skillsDir, f.Name())
			s, err := skill.LoadFromDir(skillDir)
			if err != nil {
				// Not a skill directory or unreadable
				continue
			}

			entries = append(entries, skillListEntry{
				Name:   f.Name(),
				Title:  s.Title(),
				Target: target,
				Path:   skillDir,
			})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Name != entries[j].Name {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].Target < entries[j].Target
	})

	if skillListJSON {
		return outputSkillListJSON(cmd, entries)
	}

	return outputSkillListText(cmd, entries)
}

// skillsBaseDir extracts the base skills directory from a path template.
// e.g., "~/.claude/skills/{{name}}" -> expanded "~/.claude/skills"
func skillsBaseDir(pathTemplate string) string {
	path := strings.TrimSuffix(pathTemplate, "/{{name}}")
	return skill.ExpandPath(path)
}

func outputSkillListJSON(cmd *cobra.Command, entries []skillListEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func outputSkillListText(cmd *cobra.Command, entries []skillListEntry) error {
	out := cmd.OutOrStdout()

	if len(entries) == 0 {
		fmt.Fprintln(out, "No skills installed.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SKILL\tTITLE\tTARGET\tPATH")

	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Name, e.Title, e.Target, formatSkillPath(e.Path))
	}

	return w.Flush()
}

// formatSkillPath formats a path for display, using ~ for home directory.
func formatSkillPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	if len(path) > len(home) && strings.HasPrefix(path, home) {
		return "~" + path[len(home):]
	}
	return path
}
