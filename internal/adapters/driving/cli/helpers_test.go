package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/svcdir/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/svcdir/internal/core/domain"
	"github.com/custodia-labs/svcdir/internal/core/services"
)

// MockContactService records contact hand-offs.
type MockContactService struct {
	Calls  []string
	Emails []string
	Err    error
}

func (m *MockContactService) Call(_ context.Context, phone string) error {
	if m.Err != nil {
		return m.Err
	}
	if phone == "" {
		return domain.ErrNoContact
	}
	m.Calls = append(m.Calls, phone)
	return nil
}

func (m *MockContactService) Email(_ context.Context, address string) error {
	if m.Err != nil {
		return m.Err
	}
	if address == "" {
		return domain.ErrNoContact
	}
	m.Emails = append(m.Emails, address)
	return nil
}

func testRecords() []domain.ServiceRecord {
	return []domain.ServiceRecord{
		{ID: "1", Name: "Sparkle Clean", Tagline: "Cleaning done right", Category: "Cleaning",
			City: "Austin", Rating: 4.5, Reviews: 10, Hours: "Mon-Fri: 8am-6pm, Sat: 9am-1pm",
			Established: "2012", Phone: "555-0101", Email: "sparkle@example.com"},
		{ID: "2", Name: "ByteFix", Tagline: "Laptops and phones", Category: "Technology",
			City: "Denver", Rating: 4.5, Reviews: 50, Phone: "555-0102"},
		{ID: "3", Name: "Paws & Claws", Tagline: "Grooming", Category: "Pet Services",
			City: "Austin", Rating: 3.0, Reviews: 5, Email: "paws@example.com"},
	}
}

// testEnv holds the services installed for a CLI test.
type testEnv struct {
	Source   *memory.CatalogSource
	Contact  *MockContactService
	Config   *memory.ConfigStore
	Settings *services.SettingsService
}

// setupTestServices installs services over testRecords and resets
// command flags. The returned cleanup restores an empty configuration.
func setupTestServices(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		Source:  memory.NewCatalogSource(testRecords()...),
		Contact: &MockContactService{},
		Config:  memory.NewConfigStore(),
	}
	env.Settings = services.NewSettingsService(env.Config)

	catalog := services.NewCatalogService(env.Source, 0)
	SetServices(&Services{
		Catalog:   catalog,
		Directory: services.NewDirectoryService(catalog, nil),
		Contact:   env.Contact,
		Settings:  env.Settings,
	})
	resetFlags()

	t.Cleanup(func() {
		SetServices(nil)
		SetBootstrap(nil)
		resetFlags()
	})
	return env
}

func resetFlags() {
	listSearch = ""
	listCategory = domain.AllFilter
	listCity = domain.AllFilter
	listSort = ""
	listJSON = false
	facetsJSON = false
	showJSON = false
	verbose = false
	configDir = ""
}

// execute runs the root command with args and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func requireLines(t *testing.T, out string, n int) []string {
	t.Helper()
	lines := bytes.Split(bytes.TrimRight([]byte(out), "\n"), []byte("\n"))
	require.Len(t, lines, n, out)
	result := make([]string, len(lines))
	for i, l := range lines {
		result[i] = string(l)
	}
	return result
}
