// Package store persists budget snapshots in a local SQLite database. One
// well-known slot holds the working budget; any number of named slots hold
// saved copies.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"cotiza/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// CurrentSlot is the name under which the working budget is autosaved.
const CurrentSlot = "current"

// Store is a SQLite-backed budget repository.
type Store struct {
	db *sql.DB
}

// SavedBudget describes one stored slot.
type SavedBudget struct {
	Name    string
	SavedAt time.Time
}

// DefaultPath returns the XDG data-dir location of the budget database.
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, "cotiza", "budgets.db")
}

// Open opens or creates the budget database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening budget db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores the budget under the given slot name, replacing any previous
// content.
func (s *Store) Save(name string, b model.Budget) error {
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("encoding budget: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO budgets (name, data, saved_at) VALUES (?, ?, ?)`,
		name, string(data), now,
	)
	if err != nil {
		return fmt.Errorf("saving budget %q: %w", name, err)
	}
	return nil
}

// Load returns the budget stored under the slot name. The second return is
// false when the slot does not exist; corrupted content is reported as an
// error so the caller can fall back to a fresh budget.
func (s *Store) Load(name string) (model.Budget, bool, error) {
	var data string
	err := s.db.QueryRow(`SELECT data FROM budgets WHERE name = ?`, name).Scan(&data)
	if err == sql.ErrNoRows {
		return model.Budget{}, false, nil
	}
	if err != nil {
		return model.Budget{}, false, fmt.Errorf("loading budget %q: %w", name, err)
	}

	var b model.Budget
	if err := json.Unmarshal([]byte(data), &b); err != nil {
		return model.Budget{}, false, fmt.Errorf("decoding budget %q: %w", name, err)
	}
	return b, true, nil
}

// List returns all slots ordered by most recent save.
func (s *Store) List() ([]SavedBudget, error) {
	rows, err := s.db.Query(`SELECT name, saved_at FROM budgets ORDER BY saved_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing budgets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []SavedBudget
	for rows.Next() {
		var sb SavedBudget
		var savedAt string
		if err := rows.Scan(&sb.Name, &savedAt); err != nil {
			return nil, err
		}
		sb.SavedAt, _ = time.Parse(time.RFC3339, savedAt)
		out = append(out, sb)
	}
	return out, rows.Err()
}

// Delete removes the slot. Deleting a missing slot is not an error.
func (s *Store) Delete(name string) error {
	_, err := s.db.Exec(`DELETE FROM budgets WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting budget %q: %w", name, err)
	}
	return nil
}
