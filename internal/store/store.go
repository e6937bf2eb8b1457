// Package store persists the reference corpus and the generated agent ledger
// in SQLite.
package store

import (
	"errors"
	"fmt"

	"github.com/rcliao/uaforge/internal/model"
)

// ErrStorageUnavailable wraps every failed database operation.
var ErrStorageUnavailable = errors.New("storage unavailable")

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorageUnavailable, op, err)
}

// ListParams holds parameters for listing ledger rows.
type ListParams struct {
	DeviceType model.DeviceType // empty means all
	Limit      int
}

// SeedReport is the row count of each reference table after seeding, plus
// which tables were populated by the call.
type SeedReport struct {
	Counts map[string]int `json:"counts"`
	Seeded []string       `json:"seeded,omitempty"`
}
