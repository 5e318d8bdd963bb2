// Package cli provides the cobra command tree for svcdir.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/svcdir/internal/core/ports/driving"
	"github.com/custodia-labs/svcdir/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verbose   bool
	configDir string
)

// Services bundles the driving ports the commands use.
type Services struct {
	Catalog   driving.CatalogService
	Directory driving.DirectoryService
	Contact   driving.ContactService
	Settings  driving.SettingsService
}

// Options describes how the services should be built for one invocation.
type Options struct {
	// ConfigDir overrides the config directory; empty uses ~/.svcdir.
	ConfigDir string

	// Interactive is true for the TUI, which shows the simulated load
	// latency. Listing commands load without it.
	Interactive bool
}

// BootstrapFunc builds the services once flags have been parsed.
type BootstrapFunc func(opts Options) (*Services, error)

var (
	bootstrap        BootstrapFunc
	catalogService   driving.CatalogService
	directoryService driving.DirectoryService
	contactService   driving.ContactService
	settingsService  driving.SettingsService
)

var rootCmd = &cobra.Command{
	Use:   "svcdir",
	Short: "Browse a directory of local service providers",
	Long: `svcdir is a terminal directory of local service providers.

Filter providers by text, category and city, sort them by rating, review
count or name, keep favourites and open a provider's details to call or
email them. Run without a subcommand to start the interactive UI.`,
	SilenceUsage: true,
}

func init() {
	// Assigned here; setup refers back to rootCmd.
	rootCmd.PersistentPreRunE = setup
	rootCmd.RunE = runTUI

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.svcdir)")
}

// SetBootstrap sets the function that builds services before a command runs.
func SetBootstrap(fn BootstrapFunc) {
	bootstrap = fn
}

// SetServices installs the driving ports directly.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	catalogService = s.Catalog
	directoryService = s.Directory
	contactService = s.Contact
	settingsService = s.Settings
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if bootstrap == nil {
		return nil
	}

	opts := Options{
		ConfigDir:   configDir,
		Interactive: cmd == rootCmd || cmd == tuiCmd,
	}
	logger.Debug("Bootstrap: config dir %q, interactive %t", opts.ConfigDir, opts.Interactive)

	svcs, err := bootstrap(opts)
	if err != nil {
		return fmt.Errorf("initialise: %w", err)
	}
	SetServices(svcs)
	return nil
}

// loadCatalog loads the catalog and refreshes the session so results
// reflect the loaded records.
func loadCatalog(cmd *cobra.Command) error {
	if catalogService == nil || directoryService == nil {
		return errors.New("directory services not configured")
	}

	if _, err := catalogService.Load(commandContext(cmd)); err != nil {
		return err
	}
	directoryService.Refresh()
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
