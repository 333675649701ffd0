package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/plugin-stack/plugman/internal/marketplace"
	"github.com/plugin-stack/plugman/internal/plugin"
	"github.com/plugin-stack/plugman/internal/skill"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Validate a plugin or marketplace directory",
	Long: `Validate the metadata of a plugin or marketplace directory.

The directory kind is detected from its .plugman/ contents:
  - plugin.json       -> validated as a plugin (manifest + bundled skills)
  - marketplace.json  -> validated as a marketplace (index + plugin dirs)

Defaults to the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	} else if workDir != "" {
		dir = workDir
	}

	switch {
	case marketplace.HasIndex(dir):
		return validateMarketplaceDir(cmd, dir)
	case plugin.HasManifest(dir):
		return validatePluginDir(cmd, dir)
	default:
		return fmt.Errorf("%s is neither a plugin nor a marketplace (no .plugman/plugin.json or .plugman/marketplace.json)", dir)
	}
}

func validatePluginDir(cmd *cobra.Command, dir string) error {
	manifest, err := plugin.LoadManifest(dir)
	if err != nil {
		return err
	}

	result := plugin.ValidateManifest(manifest)

	// Validate bundled skills too
	skills, err := skill.ListInPlugin(dir)
	if err != nil {
		return fmt.Errorf("listing skills: %w", err)
	}
	for _, s := range skills {
		skillResult := s.Validate(filepath.Dir(s.Path))
		for _, e := range skillResult.Errors {
			result.AddError(fmt.Sprintf("skills/%s: %s", s.Meta.Name, e.Field), e.Message)
		}
	}

	return reportValidation(cmd, fmt.Sprintf("plugin %q", manifest.Name), result)
}

func validateMarketplaceDir(cmd *cobra.Command, dir string) error {
	mkt, err := marketplace.Load(dir)
	if err != nil {
		return err
	}

	result := marketplace.ValidateDir(dir, mkt)
	return reportValidation(cmd, fmt.Sprintf("marketplace %q", mkt.Name), result)
}

func reportValidation(cmd *cobra.Command, subject string, result *plugin.ValidationResult) error {
	out := cmd.OutOrStdout()

	for _, warning := range result.Warnings {
		fmt.Fprintf(out, "warning: %s\n", warning)
	}

	if result.HasErrors() {
		return result
	}

	fmt.Fprintf(out, "✓ %s is valid\n", subject)
	return nil
}
