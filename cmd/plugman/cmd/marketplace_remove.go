package cmd

import (
	"fmt"

	"github.com/plugin-stack/plugman/internal/cli"
	"github.com/plugin-stack/plugman/internal/marketplace"
	"github.com/spf13/cobra"
)

var marketplaceRemoveYes bool

var marketplaceRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a registered marketplace",
	Long: `Unregister a marketplace and delete its local cache.

Installed plugins are not affected.

Examples:
  plugman marketplace remove acme-plugins
  plugman marketplace remove acme-plugins --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runMarketplaceRemove,
}

func init() {
	marketplaceRemoveCmd.Flags().BoolVarP(&marketplaceRemoveYes, "yes", "y", false, "skip confirmation prompt")
	marketplaceCmd.AddCommand(marketplaceRemoveCmd)
}

func runMarketplaceRemove(cmd *cobra.Command, args []string) error {
	name := args[0]

	store, err := marketplace.NewMarketplacesStore()
	if err != nil {
		return err
	}
	if _, err := store.Get(name); err != nil {
		return err
	}

	if !marketplaceRemoveYes {
		ok, err := cli.Confirm(cmd.OutOrStdout(), cmd.InOrStdin(),
			fmt.Sprintf("Remove marketplace %q and its cache?", name), false)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
			return nil
		}
	}

	cache, err := marketplace.NewCache()
	if err != nil {
		return err
	}
	if err := cache.Remove(name); err != nil {
		return fmt.Errorf("removing cache: %w", err)
	}

	if err := store.Remove(name); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed marketplace %s\n", name)
	return nil
}
