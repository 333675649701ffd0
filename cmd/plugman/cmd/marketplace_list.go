package cmd

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/plugin-stack/plugman/internal/marketplace"
	"github.com/spf13/cobra"
)

var marketplaceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered marketplaces",
	Long: `List all registered marketplaces.

For each marketplace, displays:
  - NAME:    Marketplace identifier
  - VERSION: Current cached version
  - SOURCE:  Marketplace source (URL or GitHub shorthand)

Use 'plugman marketplace show <name>' to see its plugins.`,
	Args: cobra.NoArgs,
	RunE: runMarketplaceList,
}

func init() {
	marketplaceCmd.AddCommand(marketplaceListCmd)
}

func runMarketplaceList(cmd *cobra.Command, args []string) error {
	store, err := marketplace.NewMarketplacesStore()
	if err != nil {
		return err
	}

	mkts, err := store.List()
	if err != nil {
		return fmt.Errorf("listing marketplaces: %w", err)
	}

	if len(mkts) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No marketplaces registered")
		fmt.Fprintln(cmd.OutOrStdout(), "")
		fmt.Fprintln(cmd.OutOrStdout(), "To add a marketplace: plugman marketplace add <source>")
		return nil
	}

	// Sort by name for consistent output
	names := make([]string, 0, len(mkts))
	for name := range mkts {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MARKETPLACE\tVERSION\tSOURCE")

	for _, name := range names {
		mkt := mkts[name]
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, mkt.Version, mkt.Source)
	}

	return w.Flush()
}
