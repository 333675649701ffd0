package cmd

import (
	"github.com/spf13/cobra"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Manage skills bundled in plugins",
	Long: `Manage skills bundled in installed plugins.

Skills are Markdown instruction files (SKILL.md) that plugins ship
under a skills/ directory. They can be installed into AI harnesses
such as Claude Code or OpenCode.

Commands:
  list     List skills installed into harness targets
  install  Install a plugin's skill into a harness target`,
}

func init() {
	rootCmd.AddCommand(skillCmd)
}
