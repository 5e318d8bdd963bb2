package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/svcdir/internal/core/domain"
	"github.com/custodia-labs/svcdir/internal/core/ports/driven"
)

// Ensure CatalogSource implements the interface.
var _ driven.CatalogSource = (*CatalogSource)(nil)

// Schema creates the services table.
//
//go:embed schema.sql
var Schema string

const selectRecords = `
	SELECT id, name, COALESCE(tagline, ''), COALESCE(description, ''),
	       category, city, rating, reviews, COALESCE(hours, ''),
	       COALESCE(established, ''), COALESCE(phone, ''), COALESCE(email, '')
	FROM services
	ORDER BY rowid`

// IsDatabasePath reports whether path names a SQLite catalog by extension.
func IsDatabasePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	default:
		return false
	}
}

// CatalogSource reads records from a SQLite database on each call to Records.
type CatalogSource struct {
	path string
}

// NewCatalogSource creates a source for the database at path. The file is
// not opened until Records is called.
func NewCatalogSource(path string) *CatalogSource {
	return &CatalogSource{path: path}
}

// Name returns the database path.
func (s *CatalogSource) Name() string {
	return s.path
}

// Records opens the database read-only and returns every row of the
// services table.
func (s *CatalogSource) Records(ctx context.Context) ([]domain.ServiceRecord, error) {
	db, err := sql.Open("sqlite", "file:"+s.path+"?mode=ro&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, selectRecords)
	if err != nil {
		return nil, fmt.Errorf("querying services: %w", err)
	}
	defer rows.Close()

	var records []domain.ServiceRecord
	seen := make(map[domain.RecordID]struct{})
	for rows.Next() {
		var (
			r           domain.ServiceRecord
			id          string
			established string
		)
		if err := rows.Scan(
			&id, &r.Name, &r.Tagline, &r.Description,
			&r.Category, &r.City, &r.Rating, &r.Reviews, &r.Hours,
			&established, &r.Phone, &r.Email,
		); err != nil {
			return nil, fmt.Errorf("scanning service: %w", err)
		}
		r.ID = domain.RecordID(id)
		r.Established = domain.Established(established)

		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateID, r.ID)
		}
		seen[r.ID] = struct{}{}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating services: %w", err)
	}

	return records, nil
}
