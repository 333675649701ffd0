package cmd

import (
	"log/slog"
	"os"

	"github.com/plugin-stack/plugman/internal/config"
	"github.com/plugin-stack/plugman/internal/logging"
	"github.com/plugin-stack/plugman/internal/marketplace"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time via ldflags
	Version = "dev"

	// Global flags
	verbose bool
	workDir string
)

var rootCmd = &cobra.Command{
	Use:   "plugman",
	Short: "plugman - plugin marketplace for AI coding assistants",
	Long: `plugman manages documentation-driven plugins for AI coding assistants.

A plugin bundles markdown skills, agent personas, and supporting files,
described by a .plugman/plugin.json manifest. Marketplaces are Git
repositories indexing installable plugins.

Common commands:
  plugman marketplace add acme/plugins   # Register a marketplace
  plugman search aws                     # Find plugins
  plugman install hex-mcp@acme-plugins   # Install a plugin
  plugman ls                             # List installed plugins`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// When no subcommand is given, list installed plugins
		return runLs(cmd, args)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&workDir, "workdir", "C", "", "working directory (default: current)")

	// Version flag
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("plugman {{.Version}}\n")
}

// getWorkDir returns the effective working directory.
func getWorkDir() (string, error) {
	if workDir != "" {
		return workDir, nil
	}
	return os.Getwd()
}

// loadConfig loads the layered configuration (defaults, then global,
// then project overrides) for the effective working directory.
func loadConfig() (*config.Config, error) {
	dir, err := getWorkDir()
	if err != nil {
		return nil, err
	}
	return config.LoadFromDir(dir)
}

// newLogger builds a logger from config, honoring the --verbose flag.
func newLogger(cfg *config.Config) *slog.Logger {
	if verbose {
		cfg.Logging.Level = config.LogLevelDebug
	}
	logger, _, err := logging.NewFromConfig(cfg, "")
	if err != nil {
		return logging.NewDefault()
	}
	return logger
}

// newCache builds the marketplace cache with the configured TTL.
func newCache(cfg *config.Config) (*marketplace.Cache, error) {
	cache, err := marketplace.NewCache()
	if err != nil {
		return nil, err
	}
	if cfg.Cache.TTL > 0 {
		cache.SetTTL(cfg.Cache.TTL)
	}
	return cache, nil
}
