package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/plugin-stack/plugman/internal/marketplace"
	"github.com/spf13/cobra"
)

var marketplaceShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show the plugins in a marketplace",
	Long: `Show the cached index of a registered marketplace.

Example:
  plugman marketplace show acme-plugins`,
	Args: cobra.ExactArgs(1),
	RunE: runMarketplaceShow,
}

func init() {
	marketplaceCmd.AddCommand(marketplaceShowCmd)
}

func runMarketplaceShow(cmd *cobra.Command, args []string) error {
	name := args[0]

	store, err := marketplace.NewMarketplacesStore()
	if err != nil {
		return err
	}
	if _, err := store.Get(name); err != nil {
		return err
	}

	cache, err := marketplace.NewCache()
	if err != nil {
		return err
	}
	if !cache.Exists(name) {
		return fmt.Errorf("marketplace %q not cached. Refresh it with: plugman marketplace update %s", name, name)
	}

	mkt, err := marketplace.Load(cache.Dir(name))
	if err != nil {
		return fmt.Errorf("loading marketplace index: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (version %s)\n", mkt.Name, mkt.Version)
	if mkt.Description != "" {
		fmt.Fprintf(out, "%s\n", mkt.Description)
	}
	fmt.Fprintln(out, "")

	if len(mkt.Plugins) == 0 {
		fmt.Fprintln(out, "No plugins listed")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTITLE\tTAGS\tDESCRIPTION")
	for _, entry := range mkt.Plugins {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			entry.Name, entry.Title(), strings.Join(entry.Tags, ","), entry.Description)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out, "")
	fmt.Fprintf(out, "Install: plugman install <name>@%s\n", mkt.Name)
	return nil
}
