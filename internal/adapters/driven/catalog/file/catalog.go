package file

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/svcdir/internal/core/domain"
	"github.com/custodia-labs/svcdir/internal/core/ports/driven"
)

// Ensure CatalogSource implements the interface.
var _ driven.CatalogSource = (*CatalogSource)(nil)

//go:embed sample/services.json
var sampleFS embed.FS

const samplePath = "sample/services.json"

// Format identifies how a catalog file is encoded.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath infers the catalog format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// CatalogSource reads records from a catalog file on each call to Records.
type CatalogSource struct {
	name   string
	format Format
	read   func() ([]byte, error)
}

// NewCatalogSource creates a source for the file at path. The format is
// chosen from the file extension.
func NewCatalogSource(path string) (*CatalogSource, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	return &CatalogSource{
		name:   path,
		format: format,
		read:   func() ([]byte, error) { return os.ReadFile(path) },
	}, nil
}

// NewSampleSource returns a source for the catalog embedded in the binary.
func NewSampleSource() *CatalogSource {
	return &CatalogSource{
		name:   "embedded sample",
		format: FormatJSON,
		read:   func() ([]byte, error) { return sampleFS.ReadFile(samplePath) },
	}
}

// Open returns the file source for path, or the embedded sample when
// path is empty.
func Open(path string) (*CatalogSource, error) {
	if path == "" {
		return NewSampleSource(), nil
	}
	return NewCatalogSource(path)
}

// Name returns the file path, or a label for the embedded sample.
func (s *CatalogSource) Name() string {
	return s.name
}

// Format returns the encoding of the catalog.
func (s *CatalogSource) Format() Format {
	return s.format
}

// Records reads and decodes the catalog.
func (s *CatalogSource) Records(ctx context.Context) ([]domain.ServiceRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := s.read()
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	records, err := Decode(data, s.format)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.name, err)
	}
	return records, nil
}

// Decode parses catalog data in the given format and checks that record
// ids are unique.
func Decode(data []byte, format Format) ([]domain.ServiceRecord, error) {
	var records []domain.ServiceRecord

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, err
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&records); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}

	if err := checkUnique(records); err != nil {
		return nil, err
	}
	return records, nil
}

func checkUnique(records []domain.ServiceRecord) error {
	seen := make(map[domain.RecordID]struct{}, len(records))
	for i := range records {
		id := records[i].ID
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateID, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}
