package cmd

import (
	"fmt"
	"os"

	"github.com/plugin-stack/plugman/internal/marketplace"
	"github.com/spf13/cobra"
)

var marketplaceAddCmd = &cobra.Command{
	Use:   "add <source>",
	Short: "Add a plugin marketplace",
	Long: `Add a plugin marketplace from a Git repository.

The marketplace is cloned to the local cache, its index validated, and
registered under the name from its marketplace.json.

Examples:
  plugman marketplace add acme/plugins               # GitHub shorthand
  plugman marketplace add github.com/acme/plugins
  plugman marketplace add https://gitlab.com/team/plugins.git`,
	Args: cobra.ExactArgs(1),
	RunE: runMarketplaceAdd,
}

func init() {
	marketplaceCmd.AddCommand(marketplaceAddCmd)
}

func runMarketplaceAdd(cmd *cobra.Command, args []string) error {
	source := args[0]

	cache, err := marketplace.NewCache()
	if err != nil {
		return err
	}

	// Clone under a temporary name first; the real name comes from the index
	const staging = ".staging"
	if err := cache.Clone(staging, source); err != nil {
		return fmt.Errorf("cloning marketplace: %w", err)
	}
	defer cache.Remove(staging)

	mkt, err := marketplace.Load(cache.Dir(staging))
	if err != nil {
		return fmt.Errorf("loading marketplace index: %w", err)
	}

	if result := marketplace.Validate(mkt); result.HasErrors() {
		return fmt.Errorf("marketplace index invalid:\n%s", result.Error())
	}

	store, err := marketplace.NewMarketplacesStore()
	if err != nil {
		return err
	}

	// Move the staged clone into its final cache slot before registering,
	// so a registered marketplace always has a cache behind it
	if err := cache.Remove(mkt.Name); err != nil {
		return fmt.Errorf("clearing cache slot: %w", err)
	}
	if err := os.Rename(cache.Dir(staging), cache.Dir(mkt.Name)); err != nil {
		return fmt.Errorf("caching marketplace: %w", err)
	}

	if err := store.Add(mkt.Name, source, mkt.Version); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Added marketplace %s (version %s, %d plugins)\n\n",
		mkt.Name, mkt.Version, len(mkt.Plugins))
	fmt.Fprintf(cmd.OutOrStdout(), "Browse: plugman marketplace show %s\n", mkt.Name)

	return nil
}
