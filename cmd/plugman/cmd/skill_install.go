package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/plugin-stack/plugman/internal/logging"
	"github.com/plugin-stack/plugman/internal/marketplace"
	"github.com/plugin-stack/plugman/internal/skill"
	"github.com/spf13/cobra"
)

var (
	skillInstallTarget string
	skillInstallGlobal bool
	skillInstallForce  bool
	skillInstallDryRun bool
)

var skillInstallCmd = &cobra.Command{
	Use:   "install <plugin>/<skill>",
	Short: "Install a plugin's skill into a harness target",
	Long: `Install a skill bundled in an installed plugin into an AI harness.

The skill is copied from the plugin's skills/ directory to the
harness's skill location. With --global, the skill is installed into
the user-wide location instead of the current project.

Examples:
  # Install into the default harness for this project
  plugman skill install hex-mcp/query-builder

  # Install user-wide into Claude Code
  plugman skill install hex-mcp/query-builder --target claude --global

  # Preview without installing
  plugman skill install hex-mcp/query-builder --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runSkillInstall,
}

func init() {
	skillInstallCmd.Flags().StringVar(&skillInstallTarget, "target", "", "target harness (claude, opencode); defaults to the configured harness")
	skillInstallCmd.Flags().BoolVar(&skillInstallGlobal, "global", false, "install into the user-wide location")
	skillInstallCmd.Flags().BoolVar(&skillInstallForce, "force", false, "overwrite an existing skill")
	skillInstallCmd.Flags().BoolVar(&skillInstallDryRun, "dry-run", false, "show what would be installed without installing")
	skillCmd.AddCommand(skillInstallCmd)
}

func runSkillInstall(cmd *cobra.Command, args []string) error {
	pluginName, skillName, err := parseSkillRef(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := logging.WithPlugin(newLogger(cfg), pluginName)

	target := skillInstallTarget
	if target == "" {
		target = cfg.Defaults.Target
	}
	if _, ok := skill.KnownTargets[target]; !ok {
		return fmt.Errorf("unknown target %q: valid targets are %v", target, skill.ListKnownTargets())
	}

	// Locate the skill inside the installed plugin
	store, err := marketplace.NewInstalledStore()
	if err != nil {
		return err
	}
	info, err := store.Get(pluginName)
	if err != nil {
		return fmt.Errorf("reading installed plugins: %w", err)
	}
	if info == nil {
		return fmt.Errorf("plugin %q not installed. Install it with: plugman install %s@<marketplace>", pluginName, pluginName)
	}

	sourceDir := filepath.Join(info.Path, skill.SkillsDir, skillName)
	s, err := skill.LoadFromDir(sourceDir)
	if err != nil {
		return fmt.Errorf("plugin %q has no skill %q: %w", pluginName, skillName, err)
	}

	if result := s.Validate(sourceDir); result.HasErrors() {
		return fmt.Errorf("invalid skill: %s", result.Error())
	}

	destDir, err := skill.ResolveTargetPath(target, s.Meta.Name, skillInstallGlobal)
	if err != nil {
		return err
	}
	logger.Debug("resolved skill destination", "skill", s.Meta.Name, "target", target, "path", destDir)

	if _, err := os.Stat(destDir); err == nil && !skillInstallForce {
		return fmt.Errorf("skill %q already exists at %s. Use --force to overwrite", s.Meta.Name, destDir)
	}

	if skillInstallDryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "Would install %s (%s) to %s\n", s.Title(), s.Meta.Name, destDir)
		return nil
	}

	if err := os.RemoveAll(destDir); err != nil {
		return fmt.Errorf("removing existing skill: %w", err)
	}
	if err := copyDir(sourceDir, destDir); err != nil {
		return fmt.Errorf("copying skill: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Installed skill %s to %s\n", s.Meta.Name, destDir)
	return nil
}

// parseSkillRef splits "plugin/skill" into its parts.
func parseSkillRef(ref string) (pluginName, skillName string, err error) {
	parts := strings.SplitN(ref, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid reference %q: use <plugin>/<skill>", ref)
	}
	return parts[0], parts[1], nil
}
