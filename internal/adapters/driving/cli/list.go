package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/svcdir/internal/core/domain"
)

var (
	listSearch   string
	listCategory string
	listCity     string
	listSort     string
	listJSON     bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List service providers",
	Long: `Lists service providers matching the given filters.

Search is a case-insensitive substring match on name, tagline and description.
Category and city must match exactly; "all" disables the filter.

Sort modes:
  default  - catalog order
  rating   - highest rated first
  reviews  - most reviewed first
  name     - alphabetical by name`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "free-text search")
	listCmd.Flags().StringVarP(&listCategory, "category", "c", domain.AllFilter, "category filter")
	listCmd.Flags().StringVar(&listCity, "city", domain.AllFilter, "city filter")
	listCmd.Flags().StringVar(&listSort, "sort", "", "sort mode: default, rating, reviews, name")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(listCmd)
}

// listOutput is the JSON shape of the list command.
type listOutput struct {
	Summary  listSummary            `json:"summary"`
	Criteria domain.FilterCriteria  `json:"criteria"`
	Results  []domain.ServiceRecord `json:"results"`
}

type listSummary struct {
	Shown    int  `json:"shown"`
	Total    int  `json:"total"`
	Filtered bool `json:"filtered"`
}

func runList(cmd *cobra.Command, _ []string) error {
	if err := loadCatalog(cmd); err != nil {
		return err
	}

	if listSort != "" {
		mode, err := domain.ParseSortMode(listSort)
		if err != nil {
			return err
		}
		if err := directoryService.SetSort(mode); err != nil {
			return err
		}
	}
	directoryService.SetSearchTerm(listSearch)
	directoryService.SetCategory(listCategory)
	directoryService.SetCity(listCity)

	results := directoryService.Results()
	summary := directoryService.Summary()

	if listJSON {
		return outputListJSON(cmd, listOutput{
			Summary: listSummary{
				Shown:    summary.Shown,
				Total:    summary.Total,
				Filtered: summary.Filtered(),
			},
			Criteria: directoryService.Criteria(),
			Results:  results,
		})
	}

	if isTerminal(cmd.OutOrStdout()) {
		outputListTable(cmd, summary, directoryService.Criteria(), results)
		return nil
	}
	outputListPlain(cmd, results)
	return nil
}

func outputListJSON(cmd *cobra.Command, out listOutput) error {
	if out.Results == nil {
		out.Results = []domain.ServiceRecord{}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// outputListTable renders a bordered table for interactive terminals.
func outputListTable(cmd *cobra.Command, summary domain.Summary, criteria domain.FilterCriteria, results []domain.ServiceRecord) {
	cmd.Printf("%s [%s]\n", summary, summary.Badge())
	if active := criteria.Active(); len(active) > 0 {
		labels := make([]string, len(active))
		for i, f := range active {
			labels[i] = f.Label
		}
		cmd.Printf("Filters: %s\n", strings.Join(labels, ", "))
	}

	if len(results) == 0 {
		cmd.Println("No services match your filters.")
		return
	}

	rows := make([][]string, len(results))
	for i := range results {
		rows[i] = recordRow(&results[i])
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("ID", "NAME", "CATEGORY", "CITY", "RATING", "REVIEWS", "HOURS").
		Rows(rows...)
	cmd.Println(t.Render())
}

// outputListPlain writes one tab-separated line per record for pipes.
func outputListPlain(cmd *cobra.Command, results []domain.ServiceRecord) {
	for i := range results {
		cmd.Println(strings.Join(recordRow(&results[i]), "\t"))
	}
}

func recordRow(r *domain.ServiceRecord) []string {
	return []string{
		r.ID.String(),
		r.Name,
		r.Category,
		r.City,
		strconv.FormatFloat(r.Rating, 'f', 1, 64),
		strconv.Itoa(r.Reviews),
		r.HoursSummary(),
	}
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
