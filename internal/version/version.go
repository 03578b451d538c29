// Package version tracks the global data version clients use to detect
// stale cached snapshots.
package version

import (
	"context"
	"fmt"

	"github.com/boramrl-25/limon-backend/internal/storage"
)

// Tracker bumps and reads the data version counter stored alongside the
// settings singleton. Every successful catalog or settings mutation calls
// Bump exactly once; reads never do.
type Tracker struct {
	store storage.Store
}

// NewTracker creates a Tracker over the given store.
func NewTracker(store storage.Store) *Tracker {
	return &Tracker{store: store}
}

// Bump increments the data version. The increment is atomic at the
// storage layer so concurrent mutations cannot lose updates.
func (t *Tracker) Bump(ctx context.Context) error {
	if err := t.store.IncrementDataVersion(ctx); err != nil {
		return fmt.Errorf("failed to bump data version: %w", err)
	}
	return nil
}

// Current returns the data version, defaulting to 1 when no settings
// document exists yet.
func (t *Tracker) Current(ctx context.Context) (int64, error) {
	return t.store.DataVersion(ctx)
}
