package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/plugin-stack/plugman/internal/config"
	"github.com/plugin-stack/plugman/internal/logging"
	"github.com/plugin-stack/plugman/internal/marketplace"
	"github.com/plugin-stack/plugman/internal/plugin"
	"github.com/spf13/cobra"
)

var (
	installLocal  bool
	installForce  bool
	installAs     string
	installDryRun bool
)

var installCmd = &cobra.Command{
	Use:   "install <plugin>@<marketplace>",
	Short: "Install a plugin",
	Long: `Install a plugin from a registered marketplace.

Examples:
  plugman install hex-mcp@acme-plugins              # Install to ~/.plugman/plugins/
  plugman install --local hex-mcp@acme-plugins      # Install to .plugman/plugins/
  plugman install hex-mcp@acme-plugins --as my-hex  # Install with alias
  plugman install hex-mcp@acme-plugins --force      # Reinstall/update`,
	Args: cobra.ExactArgs(1),
	RunE: runInstall,
}

func init() {
	installCmd.Flags().BoolVar(&installLocal, "local", false, "install to project instead of user directory")
	installCmd.Flags().BoolVar(&installForce, "force", false, "overwrite existing plugin")
	installCmd.Flags().StringVar(&installAs, "as", "", "install with a different name (for conflicts)")
	installCmd.Flags().BoolVar(&installDryRun, "dry-run", false, "show what would be installed without installing")
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	ref := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := newLogger(cfg)

	pluginName, marketplaceName, err := parseInstallRef(ref, cfg.Defaults.Marketplace)
	if err != nil {
		return err
	}
	logger = logging.WithMarketplace(logging.WithPlugin(logger, pluginName), marketplaceName)
	logger.Debug("resolved install reference")

	// Use alias if provided
	installName := pluginName
	if installAs != "" {
		installName = installAs
	}

	// Determine destination
	destDir, scope, err := resolveInstallDestination(cfg, installName, installLocal)
	if err != nil {
		return err
	}

	// Check for existing
	installedStore, err := marketplace.NewInstalledStore()
	if err != nil {
		return err
	}

	existing, err := installedStore.Get(installName)
	if err != nil {
		return fmt.Errorf("checking existing installation: %w", err)
	}
	if existing != nil && !installForce {
		return fmt.Errorf("plugin %q already exists (from %s)\n\nOptions:\n  plugman install %s --force          # Reinstall\n  plugman install %s --as <alias>     # Install with different name\n  plugman uninstall %s                # Remove first",
			installName, existing.Marketplace, ref, ref, installName)
	}

	// Get source plugin directory and manifest
	cache, err := newCache(cfg)
	if err != nil {
		return err
	}
	if cache.Exists(marketplaceName) {
		fresh, err := cache.IsFresh(marketplaceName)
		if err == nil && !fresh {
			logger.Debug("marketplace cache is stale")
			fmt.Fprintf(cmd.ErrOrStderr(), "Note: cached index for %q is stale. Refresh with: plugman marketplace update %s\n",
				marketplaceName, marketplaceName)
		}
	}

	sourceDir, mktVersion, manifest, err := resolvePluginSource(cache, pluginName, marketplaceName)
	if err != nil {
		return err
	}

	// Dry run output
	if installDryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "Would install %s from %s\n\n", manifest.Title(), marketplaceName)
		fmt.Fprintf(cmd.OutOrStdout(), "Destination: %s\n", destDir)
		return nil
	}

	// Copy plugin
	fmt.Fprintf(cmd.OutOrStdout(), "Installing %s from %s...\n\n", manifest.Title(), marketplaceName)

	if err := copyDir(sourceDir, destDir); err != nil {
		return fmt.Errorf("copying plugin: %w", err)
	}

	// Track installation
	if err := installedStore.Add(installName, marketplace.InstalledPlugin{
		Marketplace:        marketplaceName,
		MarketplaceVersion: mktVersion,
		Path:               destDir,
		Scope:              scope,
	}); err != nil {
		return fmt.Errorf("tracking installation: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Installed %s to %s\n\n", installName, destDir)
	fmt.Fprintf(cmd.OutOrStdout(), "Details: plugman show %s\n", installName)

	return nil
}

// parseInstallRef splits "plugin@marketplace" into its parts. A bare
// plugin name resolves against the configured default marketplace.
func parseInstallRef(ref, defaultMarketplace string) (pluginName, marketplaceName string, err error) {
	if strings.Contains(ref, "@") {
		parts := strings.SplitN(ref, "@", 2)
		if parts[0] == "" || parts[1] == "" {
			return "", "", fmt.Errorf("invalid reference %q: use <plugin>@<marketplace>", ref)
		}
		return parts[0], parts[1], nil
	}

	if defaultMarketplace != "" {
		return ref, defaultMarketplace, nil
	}

	return "", "", fmt.Errorf("invalid reference %q: use <plugin>@<marketplace> format", ref)
}

// resolveInstallDestination picks the install directory for a plugin.
// The plugins directory comes from config (paths.plugins_dir), rooted at
// the home directory for user scope and the working directory for
// project scope.
func resolveInstallDestination(cfg *config.Config, name string, local bool) (string, string, error) {
	if local {
		cwd, err := getWorkDir()
		if err != nil {
			return "", "", err
		}
		return filepath.Join(cfg.PluginsDir(cwd), name), marketplace.ScopeProject, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", "", err
	}
	return filepath.Join(cfg.PluginsDir(home), name), marketplace.ScopeUser, nil
}

// resolvePluginSource locates a plugin's directory inside a cached
// marketplace and loads its manifest.
func resolvePluginSource(cache *marketplace.Cache, pluginName, marketplaceName string) (string, string, *plugin.Manifest, error) {
	if !cache.Exists(marketplaceName) {
		return "", "", nil, fmt.Errorf("marketplace %q not found. Add it with: plugman marketplace add <source>", marketplaceName)
	}

	mktDir := cache.Dir(marketplaceName)
	mkt, err := marketplace.Load(mktDir)
	if err != nil {
		return "", "", nil, fmt.Errorf("loading marketplace index: %w", err)
	}

	entry := mkt.FindPlugin(pluginName)
	if entry == nil {
		return "", "", nil, fmt.Errorf("plugin %q not listed in marketplace %q", pluginName, marketplaceName)
	}

	dir, err := marketplace.ResolvePluginSource(*entry, mktDir, mkt.PluginRoot)
	if err != nil {
		return "", "", nil, err
	}

	manifest, err := mkt.LoadPluginManifest(*entry, mktDir)
	if err != nil {
		return "", "", nil, fmt.Errorf("loading manifest: %w", err)
	}

	return dir, mkt.Version, manifest, nil
}

// copyDir recursively copies a directory tree, skipping .git.
func copyDir(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dst, srcInfo.Mode()); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		// Skip .git directory
		if entry.Name() == ".git" {
			continue
		}

		if entry.IsDir() {
			if err := copyDir(srcPath, dstPath); err != nil {
				return err
			}
		} else {
			if err := copyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
	}

	return nil
}

// copyFile copies a single file.
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return err
	}

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, srcInfo.Mode())
	if err != nil {
		return err
	}
	defer dstFile.Close()

	_, err = io.Copy(dstFile, srcFile)
	return err
}
