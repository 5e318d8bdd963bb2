package domain

import "fmt"

// AllFilter is the sentinel category or city value meaning "no filter".
const AllFilter = "all"

// SortMode controls the ordering of the derived list.
type SortMode string

// Available sort modes.
const (
	// SortDefault keeps catalog order.
	SortDefault SortMode = "default"

	// SortRating orders by rating, highest first.
	SortRating SortMode = "rating"

	// SortReviews orders by review count, highest first.
	SortReviews SortMode = "reviews"

	// SortName orders alphabetically by name.
	SortName SortMode = "name"
)

// SortModes returns all sort modes in the order they are offered to users.
func SortModes() []SortMode {
	return []SortMode{SortDefault, SortRating, SortReviews, SortName}
}

// IsValid returns true if the sort mode is recognised.
func (m SortMode) IsValid() bool {
	switch m {
	case SortDefault, SortRating, SortReviews, SortName:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m SortMode) String() string {
	return string(m)
}

// Label returns the short human-readable name of the mode.
func (m SortMode) Label() string {
	switch m {
	case SortDefault:
		return "Default"
	case SortRating:
		return "Top Rated"
	case SortReviews:
		return "Most Reviews"
	case SortName:
		return "A-Z"
	default:
		return "Unknown"
	}
}

// ParseSortMode converts a user-supplied string to a SortMode.
// An empty string yields SortDefault.
func ParseSortMode(s string) (SortMode, error) {
	if s == "" {
		return SortDefault, nil
	}
	m := SortMode(s)
	if !m.IsValid() {
		return SortDefault, fmt.Errorf("%w: %q", ErrInvalidSortMode, s)
	}
	return m, nil
}

// FilterCriteria is the session-scoped combination of search text,
// category, city and sort mode.
type FilterCriteria struct {
	// SearchTerm is matched as a case-insensitive substring. It is never trimmed.
	SearchTerm string `json:"search_term"`

	// Category is an exact category label or AllFilter.
	Category string `json:"category"`

	// City is an exact city label or AllFilter.
	City string `json:"city"`

	// Sort selects the ordering of the derived list.
	Sort SortMode `json:"sort"`
}

// DefaultCriteria returns criteria that filter nothing and keep catalog order.
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{
		SearchTerm: "",
		Category:   AllFilter,
		City:       AllFilter,
		Sort:       SortDefault,
	}
}

// IsDefault reports whether every criterion is at its default.
func (c FilterCriteria) IsDefault() bool {
	return c == DefaultCriteria()
}

// FilterKind names one of the four criteria.
type FilterKind string

// Filter kinds, in the order active filters are listed.
const (
	FilterSearch   FilterKind = "search"
	FilterCategory FilterKind = "category"
	FilterCity     FilterKind = "city"
	FilterSort     FilterKind = "sort"
)

// ActiveFilter is a single non-default criterion.
type ActiveFilter struct {
	Kind  FilterKind
	Label string
}

// Active returns the non-default criteria in display order:
// search, category, city, sort.
func (c FilterCriteria) Active() []ActiveFilter {
	var active []ActiveFilter
	if c.SearchTerm != "" {
		active = append(active, ActiveFilter{Kind: FilterSearch, Label: fmt.Sprintf("%q", c.SearchTerm)})
	}
	if c.Category != AllFilter {
		active = append(active, ActiveFilter{Kind: FilterCategory, Label: c.Category})
	}
	if c.City != AllFilter {
		active = append(active, ActiveFilter{Kind: FilterCity, Label: c.City})
	}
	if c.Sort != SortDefault {
		active = append(active, ActiveFilter{Kind: FilterSort, Label: c.Sort.Label()})
	}
	return active
}

// Without returns a copy of the criteria with one criterion restored
// to its default.
func (c FilterCriteria) Without(kind FilterKind) FilterCriteria {
	def := DefaultCriteria()
	switch kind {
	case FilterSearch:
		c.SearchTerm = def.SearchTerm
	case FilterCategory:
		c.Category = def.Category
	case FilterCity:
		c.City = def.City
	case FilterSort:
		c.Sort = def.Sort
	}
	return c
}

// Summary describes the derived list relative to the catalog.
type Summary struct {
	// Shown is the number of records in the derived list.
	Shown int

	// Total is the number of records in the catalog.
	Total int
}

// Filtered reports whether the derived list differs in size from the catalog.
func (s Summary) Filtered() bool {
	return s.Shown != s.Total
}

// Badge returns "All" when every record is shown and "Filtered" otherwise.
func (s Summary) Badge() string {
	if s.Filtered() {
		return "Filtered"
	}
	return "All"
}

// String returns a line such as "12 services found".
func (s Summary) String() string {
	return fmt.Sprintf("%d services found", s.Shown)
}
