package cmd

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/plugin-stack/plugman/internal/marketplace"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search plugins across registered marketplaces",
	Long: `Search for plugins by name, title, description, or tag.

The search scans the cached index of every registered marketplace.
Run 'plugman marketplace update' first for fresh results.

Example:
  plugman search aws`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

// searchHit is one matching plugin entry.
type searchHit struct {
	marketplaceName string
	entry           marketplace.PluginEntry
}

func runSearch(cmd *cobra.Command, args []string) error {
	term := strings.ToLower(args[0])

	store, err := marketplace.NewMarketplacesStore()
	if err != nil {
		return err
	}

	registered, err := store.List()
	if err != nil {
		return fmt.Errorf("listing marketplaces: %w", err)
	}

	if len(registered) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No marketplaces registered")
		fmt.Fprintln(cmd.OutOrStdout(), "")
		fmt.Fprintln(cmd.OutOrStdout(), "To add one: plugman marketplace add <source>")
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cache, err := newCache(cfg)
	if err != nil {
		return err
	}

	var hits []searchHit
	for name := range registered {
		if !cache.Exists(name) {
			continue
		}

		mkt, err := marketplace.Load(cache.Dir(name))
		if err != nil {
			// Skip unreadable indexes; update will surface the problem
			continue
		}

		for _, entry := range mkt.Plugins {
			if matchesEntry(entry, term) {
				hits = append(hits, searchHit{marketplaceName: name, entry: entry})
			}
		}
	}

	if len(hits) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No plugins matching %q\n", args[0])
		return nil
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].entry.Name != hits[j].entry.Name {
			return hits[i].entry.Name < hits[j].entry.Name
		}
		return hits[i].marketplaceName < hits[j].marketplaceName
	})

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTITLE\tMARKETPLACE\tDESCRIPTION")
	for _, h := range hits {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			h.entry.Name, h.entry.Title(), h.marketplaceName, h.entry.Description)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "")
	fmt.Fprintln(cmd.OutOrStdout(), "Install: plugman install <name>@<marketplace>")
	return nil
}

// matchesEntry checks a plugin entry against a lowercase search term.
func matchesEntry(entry marketplace.PluginEntry, term string) bool {
	if strings.Contains(strings.ToLower(entry.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(entry.Title()), term) {
		return true
	}
	if strings.Contains(strings.ToLower(entry.Description), term) {
		return true
	}
	for _, tag := range entry.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}
