package cmd

import (
	"github.com/spf13/cobra"
)

var marketplaceCmd = &cobra.Command{
	Use:     "marketplace",
	Aliases: []string{"mkt"},
	Short:   "Manage plugin marketplaces",
	Long: `Manage the marketplaces plugman installs plugins from.

A marketplace is a Git repository with a .plugman/marketplace.json index
listing its plugins. Registered marketplaces are cached locally as
shallow clones under ~/.cache/plugman/marketplaces/.`,
}

func init() {
	rootCmd.AddCommand(marketplaceCmd)
}
