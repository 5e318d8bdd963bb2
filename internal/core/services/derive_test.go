package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/svcdir/internal/core/domain"
)

func TestDerive_DefaultsAreIdentity(t *testing.T) {
	source := testRecords()

	result := Derive(source, domain.DefaultCriteria())

	assert.Equal(t, source, result)
}

func TestDerive_EmptySource(t *testing.T) {
	criteria := []domain.FilterCriteria{
		domain.DefaultCriteria(),
		{SearchTerm: "x", Category: "Cleaning", City: "Austin", Sort: domain.SortName},
		{SearchTerm: "", Category: domain.AllFilter, City: domain.AllFilter, Sort: domain.SortRating},
	}

	for _, c := range criteria {
		assert.Empty(t, Derive(nil, c))
		assert.Empty(t, Derive([]domain.ServiceRecord{}, c))
	}
}

func TestDerive_DoesNotModifySource(t *testing.T) {
	source := testRecords()
	before := ids(source)

	_ = Derive(source, domain.FilterCriteria{Category: domain.AllFilter, City: domain.AllFilter, Sort: domain.SortReviews})

	assert.Equal(t, before, ids(source))
}

func TestDerive_TextFilter(t *testing.T) {
	tests := []struct {
		name     string
		term     string
		expected []domain.RecordID
	}{
		{"matches tagline case-insensitively", "clean", []domain.RecordID{"1", "3", "5"}},
		{"matches name", "BYTE", []domain.RecordID{"2"}},
		{"matches description", "plant-based", []domain.RecordID{"5"}},
		{"substring not token", "andy", []domain.RecordID{"4"}},
		{"no match", "plumbing", []domain.RecordID{}},
		{"whitespace is literal", "  ", []domain.RecordID{}},
		{"single space matches words", " ", []domain.RecordID{"1", "2", "3", "4", "5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := domain.DefaultCriteria()
			c.SearchTerm = tt.term

			assert.Equal(t, tt.expected, ids(Derive(testRecords(), c)))
		})
	}
}

func TestDerive_SearchTagline(t *testing.T) {
	source := []domain.ServiceRecord{
		{ID: "a", Name: "Acme", Tagline: "Cleaning done right", Description: "x"},
		{ID: "b", Name: "Other", Tagline: "Tax returns", Description: "y"},
	}
	c := domain.DefaultCriteria()
	c.SearchTerm = "clean"

	result := Derive(source, c)

	assert.Equal(t, []domain.RecordID{"a"}, ids(result))
}

func TestDerive_CategoryFilter(t *testing.T) {
	source := testRecords()
	c := domain.DefaultCriteria()
	c.Category = "Cleaning"

	result := Derive(source, c)

	require.NotEmpty(t, result)
	for _, r := range result {
		assert.Equal(t, "Cleaning", r.Category)
		assert.Contains(t, ids(source), r.ID)
	}
}

func TestDerive_CategoryFilterIsCaseSensitive(t *testing.T) {
	c := domain.DefaultCriteria()
	c.Category = "cleaning"

	assert.Empty(t, Derive(testRecords(), c))
}

func TestDerive_CityFilter(t *testing.T) {
	c := domain.DefaultCriteria()
	c.City = "Denver"

	assert.Equal(t, []domain.RecordID{"2", "5"}, ids(Derive(testRecords(), c)))
}

func TestDerive_FiltersAreConjunctive(t *testing.T) {
	source := testRecords()
	combined := domain.FilterCriteria{SearchTerm: "clean", Category: "Cleaning", City: "Austin", Sort: domain.SortDefault}

	onlyText := domain.DefaultCriteria()
	onlyText.SearchTerm = combined.SearchTerm
	onlyCategory := domain.DefaultCriteria()
	onlyCategory.Category = combined.Category
	onlyCity := domain.DefaultCriteria()
	onlyCity.City = combined.City

	var expected []domain.RecordID
	for _, id := range ids(Derive(source, onlyText)) {
		if contains(ids(Derive(source, onlyCategory)), id) && contains(ids(Derive(source, onlyCity)), id) {
			expected = append(expected, id)
		}
	}

	assert.Equal(t, expected, ids(Derive(source, combined)))
	assert.Equal(t, []domain.RecordID{"1"}, expected)
}

func TestDerive_SortRatingIsStable(t *testing.T) {
	source := []domain.ServiceRecord{
		{ID: "A", Name: "A", Rating: 4.5, Reviews: 10},
		{ID: "B", Name: "B", Rating: 4.5, Reviews: 50},
		{ID: "C", Name: "C", Rating: 3.0, Reviews: 5},
	}
	c := domain.DefaultCriteria()

	c.Sort = domain.SortRating
	assert.Equal(t, []domain.RecordID{"A", "B", "C"}, ids(Derive(source, c)))

	c.Sort = domain.SortReviews
	assert.Equal(t, []domain.RecordID{"B", "A", "C"}, ids(Derive(source, c)))
}

func TestDerive_SortRatingTiesFollowFilteredOrder(t *testing.T) {
	c := domain.DefaultCriteria()
	c.Sort = domain.SortRating

	result := ids(Derive(testRecords(), c))

	assert.Equal(t, []domain.RecordID{"4", "1", "2", "5", "3"}, result)
}

func TestDerive_SortReviews(t *testing.T) {
	c := domain.DefaultCriteria()
	c.Sort = domain.SortReviews

	assert.Equal(t, []domain.RecordID{"4", "5", "2", "1", "3"}, ids(Derive(testRecords(), c)))
}

func TestDerive_SortNameIsCaseInsensitive(t *testing.T) {
	c := domain.DefaultCriteria()
	c.Sort = domain.SortName

	result := Derive(testRecords(), c)

	names := make([]string, len(result))
	for i := range result {
		names[i] = result[i].Name
	}
	assert.Equal(t, []string{"Austin Handyman", "byte fixers", "Green Clean Co", "Paws & Claws", "Sparkle Clean"}, names)
}

func TestDerive_SortNameAccents(t *testing.T) {
	source := []domain.ServiceRecord{
		{ID: "z", Name: "Zest"},
		{ID: "e", Name: "Éclair Bakery"},
		{ID: "a", Name: "Apex"},
	}
	c := domain.DefaultCriteria()
	c.Sort = domain.SortName

	assert.Equal(t, []domain.RecordID{"a", "e", "z"}, ids(Derive(source, c)))
}

func TestEngine_LocaleOrdering(t *testing.T) {
	source := []domain.ServiceRecord{
		{ID: "zeta", Name: "Zeta"},
		{ID: "ostra", Name: "Östra"},
		{ID: "omega", Name: "Omega"},
	}
	c := domain.DefaultCriteria()
	c.Sort = domain.SortName

	english := NewEngine("en")
	swedish := NewEngine("sv")

	assert.Equal(t, []domain.RecordID{"omega", "ostra", "zeta"}, ids(english.Derive(source, c)))
	assert.Equal(t, []domain.RecordID{"omega", "zeta", "ostra"}, ids(swedish.Derive(source, c)))
}

func TestNewEngine_InvalidLocaleFallsBack(t *testing.T) {
	e := NewEngine("not a locale!!")

	assert.Equal(t, "en", e.Locale().String())
}

func TestDerive_FilterThenSort(t *testing.T) {
	c := domain.FilterCriteria{SearchTerm: "", Category: domain.AllFilter, City: "Austin", Sort: domain.SortReviews}

	assert.Equal(t, []domain.RecordID{"4", "1", "3"}, ids(Derive(testRecords(), c)))
}

func TestDistinct_FirstOccurrenceOrder(t *testing.T) {
	records := testRecords()

	categories := distinct(records, func(r *domain.ServiceRecord) string { return r.Category })
	cities := distinct(records, func(r *domain.ServiceRecord) string { return r.City })

	assert.Equal(t, []string{"all", "Cleaning", "Technology", "Pet Services", "Home Services"}, categories)
	assert.Equal(t, []string{"all", "Austin", "Denver"}, cities)
}

func TestDistinct_SentinelNotRepeated(t *testing.T) {
	records := []domain.ServiceRecord{{Category: "all"}, {Category: "X"}}

	assert.Equal(t, []string{"all", "X"}, distinct(records, func(r *domain.ServiceRecord) string { return r.Category }))
}

func contains(list []domain.RecordID, id domain.RecordID) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}
