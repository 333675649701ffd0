package cmd

import (
	"fmt"
	"sort"

	"github.com/plugin-stack/plugman/internal/marketplace"
	"github.com/spf13/cobra"
)

var marketplaceUpdateCmd = &cobra.Command{
	Use:   "update [name]",
	Short: "Refresh a marketplace's cached index",
	Long: `Refresh the local cache of a registered marketplace.

Without a name, all registered marketplaces are refreshed.

Examples:
  plugman marketplace update acme-plugins
  plugman marketplace update`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMarketplaceUpdate,
}

func init() {
	marketplaceCmd.AddCommand(marketplaceUpdateCmd)
}

func runMarketplaceUpdate(cmd *cobra.Command, args []string) error {
	store, err := marketplace.NewMarketplacesStore()
	if err != nil {
		return err
	}

	cache, err := marketplace.NewCache()
	if err != nil {
		return err
	}

	var names []string
	if len(args) == 1 {
		if _, err := store.Get(args[0]); err != nil {
			return err
		}
		names = []string{args[0]}
	} else {
		registered, err := store.List()
		if err != nil {
			return err
		}
		if len(registered) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No marketplaces registered")
			return nil
		}
		for name := range registered {
			names = append(names, name)
		}
		sort.Strings(names)
	}

	out := cmd.OutOrStdout()
	var failed int
	for _, name := range names {
		if err := updateMarketplace(store, cache, name); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "✗ %s: %v\n", name, err)
			failed++
			continue
		}
		fmt.Fprintf(out, "✓ %s updated\n", name)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d marketplaces failed to update", failed, len(names))
	}
	return nil
}

func updateMarketplace(store *marketplace.MarketplacesStore, cache *marketplace.Cache, name string) error {
	reg, err := store.Get(name)
	if err != nil {
		return err
	}

	if cache.Exists(name) {
		if err := cache.Fetch(name); err != nil {
			return fmt.Errorf("fetching: %w", err)
		}
	} else {
		if err := cache.Clone(name, reg.Source); err != nil {
			return fmt.Errorf("cloning: %w", err)
		}
	}

	mkt, err := marketplace.Load(cache.Dir(name))
	if err != nil {
		return fmt.Errorf("loading index: %w", err)
	}
	if result := marketplace.Validate(mkt); result.HasErrors() {
		return fmt.Errorf("index invalid:\n%s", result.Error())
	}

	return store.Update(name, mkt.Version)
}
