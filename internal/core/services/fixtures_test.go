package services

import (
	"github.com/custodia-labs/svcdir/internal/core/domain"
)

// testRecords returns a small catalog covering repeated categories and
// cities, tied ratings and mixed-case names.
func testRecords() []domain.ServiceRecord {
	return []domain.ServiceRecord{
		{
			ID: "1", Name: "Sparkle Clean", Tagline: "Cleaning done right",
			Description: "Homes and offices", Category: "Cleaning", City: "Austin",
			Rating: 4.5, Reviews: 10, Phone: "555 0100", Email: "hello@sparkle.test",
		},
		{
			ID: "2", Name: "byte fixers", Tagline: "Laptop and phone repair",
			Description: "Same-day screen replacement", Category: "Technology", City: "Denver",
			Rating: 4.5, Reviews: 50, Phone: "555 0101", Email: "fix@bytes.test",
		},
		{
			ID: "3", Name: "Paws & Claws", Tagline: "Grooming with care",
			Description: "Dog walking and a gentle CLEAN groom", Category: "Pet Services", City: "Austin",
			Rating: 3.0, Reviews: 5, Hours: "Mon-Sat: 8am-6pm, Sun: closed",
		},
		{
			ID: "4", Name: "Austin Handyman", Tagline: "Small jobs, done fast",
			Description: "Repairs around the house", Category: "Home Services", City: "Austin",
			Rating: 4.9, Reviews: 200,
		},
		{
			ID: "5", Name: "Green Clean Co", Tagline: "Eco friendly",
			Description: "Plant-based products", Category: "Cleaning", City: "Denver",
			Rating: 4.0, Reviews: 75,
		},
	}
}

func ids(records []domain.ServiceRecord) []domain.RecordID {
	out := make([]domain.RecordID, len(records))
	for i := range records {
		out[i] = records[i].ID
	}
	return out
}
