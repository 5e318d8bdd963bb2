package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change svcdir configuration.

Keys:
  catalog.path           JSON or YAML catalog file (empty uses the built-in sample)
  catalog.load_delay_ms  simulated load latency in the interactive UI
  ui.locale              language tag used to order names (e.g. en, de, sv)
  ui.default_sort        initial sort: default, rating, reviews, name`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings := settingsService.Get()
	catalogPath := settings.CatalogPath
	if catalogPath == "" {
		catalogPath = "(built-in sample)"
	}

	cmd.Println("Current Configuration")
	cmd.Println("=====================")
	cmd.Println()
	cmd.Println("[Catalog]")
	cmd.Printf("  Path: %s\n", catalogPath)
	cmd.Printf("  Load delay: %s\n", settings.LoadDelay)
	cmd.Println()
	cmd.Println("[UI]")
	cmd.Printf("  Locale: %s\n", settings.Locale)
	cmd.Printf("  Default sort: %s (%s)\n", settings.DefaultSort, settings.DefaultSort.Label())
	cmd.Println()
	cmd.Printf("Config file: %s\n", settingsService.Path())
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}
