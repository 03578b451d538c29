package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/boramrl-25/limon-backend/internal/models"
	"github.com/boramrl-25/limon-backend/internal/storage"
	"github.com/boramrl-25/limon-backend/internal/version"
)

// PublicService assembles the read-only payloads public clients cache
// offline.
type PublicService struct {
	store    storage.Store
	versions *version.Tracker
	logger   *slog.Logger
}

// NewPublicService creates a new public data service.
func NewPublicService(store storage.Store, versions *version.Tracker, logger *slog.Logger) *PublicService {
	return &PublicService{
		store:    store,
		versions: versions,
		logger:   logger,
	}
}

// Snapshot is the consolidated catalog read-model. Settings is nil when
// the singleton does not exist yet; LastUpdated is the wall-clock time of
// assembly, not of the last mutation.
type Snapshot struct {
	Settings    *models.Settings
	Categories  []models.Category
	Items       []models.MenuItem
	DataVersion int64
	LastUpdated time.Time
}

// Snapshot reads settings, the version counter, categories and all items,
// in that order, with no cross-read transaction. Reading the counter
// before the catalog means a concurrent write can only make the payload
// newer than DataVersion, never older; the mismatch surfaces on the next
// version poll and the client refetches.
func (s *PublicService) Snapshot(ctx context.Context) (*Snapshot, error) {
	settings, err := s.store.GetSettings(ctx)
	if err != nil {
		s.logger.Error("Failed to read settings for snapshot", "error", err)
		return nil, err
	}
	dataVersion, err := s.versions.Current(ctx)
	if err != nil {
		s.logger.Error("Failed to read data version for snapshot", "error", err)
		return nil, err
	}
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		s.logger.Error("Failed to read categories for snapshot", "error", err)
		return nil, err
	}
	items, err := s.store.ListMenuItems(ctx, storage.MenuItemFilter{})
	if err != nil {
		s.logger.Error("Failed to read menu items for snapshot", "error", err)
		return nil, err
	}

	return &Snapshot{
		Settings:    settings,
		Categories:  categories,
		Items:       items,
		DataVersion: dataVersion,
		LastUpdated: time.Now().UTC(),
	}, nil
}

// Version returns the counter clients poll to decide whether their cached
// snapshot is stale.
func (s *PublicService) Version(ctx context.Context) (int64, error) {
	return s.versions.Current(ctx)
}
