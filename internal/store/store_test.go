package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cotiza/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "budgets.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveAndLoad(t *testing.T) {
	s := newTestStore(t)

	b := model.DefaultBudget()
	b.ClientName = "ACME"
	b.Projects = []model.Project{
		{ID: "p1", Name: "Website", Items: []model.BudgetItem{
			{ID: "i1", PricingMode: model.PricingHourly, Hours: 12},
		}},
	}
	require.NoError(t, s.Save(CurrentSlot, b))

	got, found, err := s.Load(CurrentSlot)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "ACME", got.ClientName)
	require.Len(t, got.Projects, 1)
	assert.InDelta(t, 12, got.Projects[0].Items[0].Hours, 1e-9)
}

func TestLoadMissingSlot(t *testing.T) {
	s := newTestStore(t)

	_, found, err := s.Load("nope")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSaveReplacesExisting(t *testing.T) {
	s := newTestStore(t)

	b := model.DefaultBudget()
	b.ClientName = "first"
	require.NoError(t, s.Save("draft", b))
	b.ClientName = "second"
	require.NoError(t, s.Save("draft", b))

	got, found, err := s.Load("draft")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "second", got.ClientName)

	list, err := s.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestListNamesSlots(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Save(CurrentSlot, model.DefaultBudget()))
	require.NoError(t, s.Save("acme-v1", model.DefaultBudget()))

	list, err := s.List()
	require.NoError(t, err)
	require.Len(t, list, 2)

	names := []string{list[0].Name, list[1].Name}
	assert.Contains(t, names, CurrentSlot)
	assert.Contains(t, names, "acme-v1")
	assert.False(t, list[0].SavedAt.IsZero())
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Save("draft", model.DefaultBudget()))
	require.NoError(t, s.Delete("draft"))

	_, found, err := s.Load("draft")
	require.NoError(t, err)
	assert.False(t, found)

	// Missing slots delete without error.
	require.NoError(t, s.Delete("never-existed"))
}

func TestLoadCorruptedData(t *testing.T) {
	s := newTestStore(t)

	_, err := s.db.Exec(
		`INSERT INTO budgets (name, data, saved_at) VALUES (?, ?, ?)`,
		"bad", "{not json", "2026-01-01T00:00:00Z",
	)
	require.NoError(t, err)

	_, _, err = s.Load("bad")
	assert.Error(t, err)
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budgets.db")

	s, err := Open(path)
	require.NoError(t, err)
	b := model.DefaultBudget()
	b.ClientName = "persisted"
	require.NoError(t, s.Save(CurrentSlot, b))
	require.NoError(t, s.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = s2.Close() }()

	got, found, err := s2.Load(CurrentSlot)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "persisted", got.ClientName)
}
