package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var facetsJSON bool

var facetsCmd = &cobra.Command{
	Use:   "facets",
	Short: "List known categories and cities",
	Long: `Lists the categories and cities present in the catalog, in the order
they first appear. The leading "all" entry disables that filter.`,
	Args: cobra.NoArgs,
	RunE: runFacets,
}

func init() {
	facetsCmd.Flags().BoolVar(&facetsJSON, "json", false, "output facets as JSON")
	rootCmd.AddCommand(facetsCmd)
}

func runFacets(cmd *cobra.Command, _ []string) error {
	if err := loadCatalog(cmd); err != nil {
		return err
	}

	categories := catalogService.Categories()
	cities := catalogService.Cities()

	if facetsJSON {
		data, err := json.MarshalIndent(map[string][]string{
			"categories": categories,
			"cities":     cities,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal facets: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println("Categories:")
	for _, c := range categories {
		cmd.Printf("  %s\n", c)
	}
	cmd.Println()
	cmd.Println("Cities:")
	for _, c := range cities {
		cmd.Printf("  %s\n", c)
	}
	return nil
}
