package service

import (
	"context"
	"log/slog"

	"github.com/boramrl-25/limon-backend/internal/models"
	"github.com/boramrl-25/limon-backend/internal/storage"
	"github.com/boramrl-25/limon-backend/internal/version"
)

// SettingsService manages the site-wide settings singleton.
type SettingsService struct {
	store    storage.Store
	versions *version.Tracker
	logger   *slog.Logger
}

// NewSettingsService creates a new settings service.
func NewSettingsService(store storage.Store, versions *version.Tracker, logger *slog.Logger) *SettingsService {
	return &SettingsService{
		store:    store,
		versions: versions,
		logger:   logger,
	}
}

// GetSettings returns the singleton, or nil when none exists yet.
func (s *SettingsService) GetSettings(ctx context.Context) (*models.Settings, error) {
	return s.store.GetSettings(ctx)
}

// UpdateSettings merges the provided fields into the singleton, creating
// it if absent, bumps the data version and returns the resulting document.
func (s *SettingsService) UpdateSettings(ctx context.Context, patch *models.SettingsPatch) (*models.Settings, error) {
	s.logger.Info("Update settings request")

	if patch.IsEmpty() {
		return nil, ErrNoFields
	}
	if _, err := s.store.UpsertSettings(ctx, patch); err != nil {
		s.logger.Error("Failed to update settings", "error", err)
		return nil, err
	}
	if err := s.versions.Bump(ctx); err != nil {
		s.logger.Error("Failed to bump data version", "error", err)
		return nil, err
	}

	// Re-read so the response carries the bumped version.
	settings, err := s.store.GetSettings(ctx)
	if err != nil {
		s.logger.Error("Failed to reload settings", "error", err)
		return nil, err
	}

	s.logger.Info("Settings updated", "data_version", settings.DataVersion)
	return settings, nil
}
