package cmd

import (
	"fmt"
	"os"

	"github.com/plugin-stack/plugman/internal/cli"
	"github.com/plugin-stack/plugman/internal/marketplace"
	"github.com/spf13/cobra"
)

var uninstallYes bool

var uninstallCmd = &cobra.Command{
	Use:   "uninstall <name>",
	Short: "Uninstall a plugin",
	Long: `Remove an installed plugin and untrack it.

Examples:
  plugman uninstall hex-mcp
  plugman uninstall hex-mcp --yes   # Skip confirmation`,
	Args: cobra.ExactArgs(1),
	RunE: runUninstall,
}

func init() {
	uninstallCmd.Flags().BoolVarP(&uninstallYes, "yes", "y", false, "skip confirmation prompt")
	rootCmd.AddCommand(uninstallCmd)
}

func runUninstall(cmd *cobra.Command, args []string) error {
	name := args[0]

	store, err := marketplace.NewInstalledStore()
	if err != nil {
		return err
	}

	info, err := store.Get(name)
	if err != nil {
		return fmt.Errorf("reading installed plugins: %w", err)
	}
	if info == nil {
		return fmt.Errorf("plugin %q not installed", name)
	}

	if !uninstallYes {
		ok, err := cli.Confirm(cmd.OutOrStdout(), cmd.InOrStdin(),
			fmt.Sprintf("Remove plugin %q from %s?", name, info.Path), false)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
			return nil
		}
	}

	if err := os.RemoveAll(info.Path); err != nil {
		return fmt.Errorf("removing plugin directory: %w", err)
	}

	if err := store.Remove(name); err != nil {
		return fmt.Errorf("untracking plugin: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Uninstalled %s\n", name)
	return nil
}
