package cmd

import (
	"fmt"
	"strings"

	"github.com/plugin-stack/plugman/internal/marketplace"
	"github.com/plugin-stack/plugman/internal/plugin"
	"github.com/plugin-stack/plugman/internal/skill"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show details of an installed plugin",
	Long: `Show the manifest details and bundled skills of an installed plugin.

Example:
  plugman show hex-mcp`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
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
		return fmt.Errorf("plugin %q not installed. Find it with: plugman search %s", name, name)
	}

	manifest, err := plugin.LoadManifest(info.Path)
	if err != nil {
		return fmt.Errorf("loading manifest: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", manifest.Title())
	fmt.Fprintf(out, "%s\n\n", strings.Repeat("=", len(manifest.Title())))

	fmt.Fprintf(out, "Name:        %s\n", manifest.Name)
	if manifest.Description != "" {
		fmt.Fprintf(out, "Description: %s\n", manifest.Description)
	}
	if manifest.Version != "" {
		fmt.Fprintf(out, "Version:     %s\n", manifest.Version)
	}
	if manifest.Author != nil {
		fmt.Fprintf(out, "Author:      %s\n", manifest.Author.Name)
	}
	if manifest.License != "" {
		fmt.Fprintf(out, "License:     %s\n", manifest.License)
	}
	if len(manifest.Keywords) > 0 {
		fmt.Fprintf(out, "Keywords:    %s\n", strings.Join(manifest.Keywords, ", "))
	}
	if info.Marketplace != "" {
		fmt.Fprintf(out, "Marketplace: %s\n", info.Marketplace)
	}
	fmt.Fprintf(out, "Scope:       %s\n", info.Scope)
	fmt.Fprintf(out, "Path:        %s\n", info.Path)

	// Bundled skills
	skills, err := skill.ListInPlugin(info.Path)
	if err != nil {
		return fmt.Errorf("listing skills: %w", err)
	}
	if len(skills) > 0 {
		fmt.Fprintln(out, "")
		fmt.Fprintln(out, "Skills:")
		for _, s := range skills {
			fmt.Fprintf(out, "  %s - %s\n", s.Title(), s.Meta.Description)
		}
	}

	fmt.Fprintln(out, "")
	fmt.Fprintf(out, "Reinstall: plugman install %s@%s --force\n", manifest.CommandName(), info.Marketplace)

	return nil
}
