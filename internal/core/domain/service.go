package domain

import (
	"bytes"
	"encoding/json"
	"strings"
)

// DefaultHours is shown in detail views for records without a schedule.
const DefaultHours = "Mon-Fri: 9am-5pm"

// RecordID identifies a ServiceRecord. Catalog files may carry identifiers
// as JSON strings or numbers; both decode to the same textual form.
type RecordID string

// String returns the identifier as a string.
func (id RecordID) String() string {
	return string(id)
}

// UnmarshalJSON accepts both string and numeric identifiers.
func (id *RecordID) UnmarshalJSON(data []byte) error {
	s, err := stringOrNumber(data)
	if err != nil {
		return err
	}
	*id = RecordID(s)
	return nil
}

// Established is the founding year of a provider, or free text such as
// "early 1990s". Numeric years in catalog files decode to their digits.
type Established string

// String returns the established value as a string.
func (e Established) String() string {
	return string(e)
}

// UnmarshalJSON accepts both string and numeric values.
func (e *Established) UnmarshalJSON(data []byte) error {
	s, err := stringOrNumber(data)
	if err != nil {
		return err
	}
	*e = Established(s)
	return nil
}

func stringOrNumber(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return s, nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}

// ServiceRecord is one service-provider entry in the catalog.
// Records are supplied by a catalog source and never mutated afterwards.
type ServiceRecord struct {
	ID          RecordID    `json:"id" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Tagline     string      `json:"tagline" yaml:"tagline"`
	Description string      `json:"description" yaml:"description"`
	Category    string      `json:"category" yaml:"category"`
	City        string      `json:"city" yaml:"city"`
	Rating      float64     `json:"rating" yaml:"rating"`
	Reviews     int         `json:"reviews" yaml:"reviews"`
	Hours       string      `json:"hours,omitempty" yaml:"hours,omitempty"`
	Established Established `json:"established" yaml:"established"`
	Phone       string      `json:"phone" yaml:"phone"`
	Email       string      `json:"email" yaml:"email"`
}

// HoursSummary returns the first comma-separated segment of the schedule,
// or an empty string if the record has no hours.
func (r *ServiceRecord) HoursSummary() string {
	if r.Hours == "" {
		return ""
	}
	first, _, _ := strings.Cut(r.Hours, ",")
	return strings.TrimSpace(first)
}

// HoursOrDefault returns the full schedule, falling back to DefaultHours.
func (r *ServiceRecord) HoursOrDefault() string {
	if r.Hours == "" {
		return DefaultHours
	}
	return r.Hours
}
