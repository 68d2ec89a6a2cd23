// Package snapshot serializes budgets to the JSON interchange format used by
// file export/import. The on-disk shape is the budget itself plus a small
// metadata envelope that import strips before the budget is applied.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"cotiza/internal/model"
)

// FormatVersion is written into every export envelope.
const FormatVersion = 2

// ErrInvalid marks a snapshot that failed structural validation. Import is
// all-or-nothing: on this error the caller's budget must stay untouched.
var ErrInvalid = errors.New("invalid budget snapshot")

// requiredKeys must all be present in an imported snapshot.
var requiredKeys = []string{"clientName", "clientEmail", "projects", "terms", "hourlyRate"}

// Envelope is the exported file shape: budget fields inlined at the top
// level, metadata alongside them.
type Envelope struct {
	model.Budget
	Version      int       `json:"version"`
	ExportedAt   time.Time `json:"exportedAt"`
	ProjectCount int       `json:"projectCount"`
	ItemCount    int       `json:"itemCount"`
}

// Write serializes the budget with its envelope to w.
func Write(w io.Writer, b model.Budget) error {
	env := Envelope{
		Budget:       b,
		Version:      FormatVersion,
		ExportedAt:   time.Now().UTC(),
		ProjectCount: len(b.Projects),
		ItemCount:    b.ItemCount(),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(env); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return nil
}

// Read parses and validates a snapshot. Envelope metadata and any unknown
// keys are dropped; fields missing from the payload keep their zero value
// except igvEnabled, which defaults to enabled when absent.
func Read(r io.Reader) (model.Budget, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return model.Budget{}, fmt.Errorf("reading snapshot: %w", err)
	}
	return Parse(data)
}

// Parse validates and decodes raw snapshot bytes.
func Parse(data []byte) (model.Budget, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return model.Budget{}, fmt.Errorf("%w: not a JSON object", ErrInvalid)
	}
	for _, key := range requiredKeys {
		if _, ok := raw[key]; !ok {
			return model.Budget{}, fmt.Errorf("%w: missing required field %q", ErrInvalid, key)
		}
	}

	var b model.Budget
	if err := json.Unmarshal(data, &b); err != nil {
		return model.Budget{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	// The tax toggle predates some saved snapshots; absent means enabled.
	if _, ok := raw["igvEnabled"]; !ok {
		b.IGVEnabled = true
	}
	return b, nil
}
