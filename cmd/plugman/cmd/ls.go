package cmd

import (
	"encoding/json"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/plugin-stack/plugman/internal/marketplace"
	"github.com/plugin-stack/plugman/internal/plugin"
	"github.com/spf13/cobra"
)

var lsJSON bool

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List installed plugins",
	Long: `List all installed plugins.

The output shows:
  - NAME:        Plugin identifier (use this in commands)
  - TITLE:       Human-readable title
  - VERSION:     Installed plugin version
  - MARKETPLACE: Source marketplace
  - SCOPE:       user or project

Use --json for machine-readable output.`,
	Args: cobra.NoArgs,
	RunE: runLs,
}

func init() {
	lsCmd.Flags().BoolVar(&lsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(lsCmd)
}

// lsEntry represents an installed plugin for listing.
type lsEntry struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Version     string `json:"version,omitempty"`
	Marketplace string `json:"marketplace,omitempty"`
	Scope       string `json:"scope"`
	Path        string `json:"path"`
}

func runLs(cmd *cobra.Command, args []string) error {
	store, err := marketplace.NewInstalledStore()
	if err != nil {
		return err
	}

	installed, err := store.List()
	if err != nil {
		return fmt.Errorf("listing installed plugins: %w", err)
	}

	if len(installed) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No plugins installed")
		fmt.Fprintln(cmd.OutOrStdout(), "")
		fmt.Fprintln(cmd.OutOrStdout(), "To find plugins:   plugman search <term>")
		fmt.Fprintln(cmd.OutOrStdout(), "To install one:    plugman install <plugin>@<marketplace>")
		return nil
	}

	entries := make([]lsEntry, 0, len(installed))
	for name, info := range installed {
		title := plugin.TitleCase(name)
		version := ""
		// Prefer the manifest's display name when the plugin dir is readable
		if m, err := plugin.LoadManifest(info.Path); err == nil {
			title = m.Title()
			version = m.Version
		}

		entries = append(entries, lsEntry{
			Name:        name,
			Title:       title,
			Version:     version,
			Marketplace: info.Marketplace,
			Scope:       info.Scope,
			Path:        info.Path,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	if lsJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTITLE\tVERSION\tMARKETPLACE\tSCOPE")
	for _, e := range entries {
		version := e.Version
		if version == "" {
			version = "-"
		}
		mkt := e.Marketplace
		if mkt == "" {
			mkt = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.Name, e.Title, version, mkt, e.Scope)
	}

	return w.Flush()
}
