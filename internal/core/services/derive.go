package services

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/custodia-labs/svcdir/internal/core/domain"
)

// Engine derives the displayed list from a source list and criteria.
// It holds only the language used for alphabetical ordering.
type Engine struct {
	tag language.Tag
}

// NewEngine creates an engine that orders names using the given BCP 47
// locale. An unparseable locale falls back to English.
func NewEngine(locale string) *Engine {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Engine{tag: tag}
}

// Locale returns the language used for name ordering.
func (e *Engine) Locale() language.Tag {
	return e.tag
}

// Derive filters and sorts source according to criteria.
// The source slice is never modified; the result is a new slice.
func (e *Engine) Derive(source []domain.ServiceRecord, criteria domain.FilterCriteria) []domain.ServiceRecord {
	result := make([]domain.ServiceRecord, 0, len(source))

	needle := strings.ToLower(criteria.SearchTerm)
	for i := range source {
		r := &source[i]
		if needle != "" && !matchesText(r, needle) {
			continue
		}
		if criteria.Category != domain.AllFilter && r.Category != criteria.Category {
			continue
		}
		if criteria.City != domain.AllFilter && r.City != criteria.City {
			continue
		}
		result = append(result, *r)
	}

	switch criteria.Sort {
	case domain.SortRating:
		slices.SortStableFunc(result, func(a, b domain.ServiceRecord) int {
			return cmp.Compare(b.Rating, a.Rating)
		})
	case domain.SortReviews:
		slices.SortStableFunc(result, func(a, b domain.ServiceRecord) int {
			return cmp.Compare(b.Reviews, a.Reviews)
		})
	case domain.SortName:
		// Collators keep internal buffers; one per sort keeps Engine shareable.
		c := collate.New(e.tag)
		slices.SortStableFunc(result, func(a, b domain.ServiceRecord) int {
			return c.CompareString(a.Name, b.Name)
		})
	case domain.SortDefault:
		// Source order.
	}

	return result
}

// matchesText reports whether the lowercased needle occurs in the
// record's name, tagline or description.
func matchesText(r *domain.ServiceRecord, needle string) bool {
	return strings.Contains(strings.ToLower(r.Name), needle) ||
		strings.Contains(strings.ToLower(r.Tagline), needle) ||
		strings.Contains(strings.ToLower(r.Description), needle)
}

var defaultEngine = NewEngine(domain.DefaultLocale)

// Derive filters and sorts source with English name ordering.
func Derive(source []domain.ServiceRecord, criteria domain.FilterCriteria) []domain.ServiceRecord {
	return defaultEngine.Derive(source, criteria)
}

// distinct returns the distinct values produced by field, in first-occurrence
// order, preceded by the "all" sentinel. A record value equal to the
// sentinel is not listed twice.
func distinct(records []domain.ServiceRecord, field func(*domain.ServiceRecord) string) []string {
	seen := map[string]struct{}{domain.AllFilter: {}}
	values := []string{domain.AllFilter}
	for i := range records {
		v := field(&records[i])
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}
