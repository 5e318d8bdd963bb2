// Command svcdir is a terminal directory of local service providers.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	catalogfile "github.com/custodia-labs/svcdir/internal/adapters/driven/catalog/file"
	catalogsqlite "github.com/custodia-labs/svcdir/internal/adapters/driven/catalog/sqlite"
	configfile "github.com/custodia-labs/svcdir/internal/adapters/driven/config/file"
	"github.com/custodia-labs/svcdir/internal/adapters/driving/cli"
	"github.com/custodia-labs/svcdir/internal/core/ports/driven"
	"github.com/custodia-labs/svcdir/internal/core/services"
	"github.com/custodia-labs/svcdir/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = ""

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// bootstrap wires the adapters and core services for one invocation.
func bootstrap(opts cli.Options) (*cli.Services, error) {
	configStore, err := configfile.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	logger.Debug("Config: %s", configStore.Path())

	settingsService := services.NewSettingsService(configStore)
	settings := settingsService.Get()

	source, err := openCatalog(settings.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}

	delay := settings.LoadDelay
	if !opts.Interactive {
		delay = 0
	}
	catalog := services.NewCatalogService(source, delay)

	directory := services.NewDirectoryService(catalog, services.NewEngine(settings.Locale))
	if err := directory.SetInitialSort(settings.DefaultSort); err != nil {
		return nil, fmt.Errorf("default sort: %w", err)
	}

	return &cli.Services{
		Catalog:   catalog,
		Directory: directory,
		Contact:   services.NewContactService(nil),
		Settings:  settingsService,
	}, nil
}

// openCatalog picks the catalog adapter for path: SQLite databases by
// extension, otherwise a JSON or YAML file, or the embedded sample when
// path is empty.
func openCatalog(path string) (driven.CatalogSource, error) {
	if catalogsqlite.IsDatabasePath(path) {
		return catalogsqlite.NewCatalogSource(path), nil
	}
	return catalogfile.Open(path)
}
