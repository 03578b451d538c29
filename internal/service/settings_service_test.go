package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/boramrl-25/limon-backend/internal/models"
	"github.com/boramrl-25/limon-backend/internal/storage"
	"github.com/boramrl-25/limon-backend/internal/version"
)

func newSettingsService(t *testing.T, store storage.Store) *SettingsService {
	t.Helper()
	return NewSettingsService(store, version.NewTracker(store), slog.New(slog.DiscardHandler))
}

func TestGetSettingsMissing(t *testing.T) {
	store := newTestStore(t)
	svc := newSettingsService(t, store)

	settings, err := svc.GetSettings(context.Background())
	if err != nil {
		t.Fatalf("Failed to get settings: %v", err)
	}
	if settings != nil {
		t.Errorf("Expected nil settings on empty store, got %+v", settings)
	}
}

func TestUpdateSettings(t *testing.T) {
	store := newTestStore(t)
	seedVersion(t, store)
	svc := newSettingsService(t, store)
	ctx := context.Background()

	t.Run("rejects empty patch", func(t *testing.T) {
		_, err := svc.UpdateSettings(ctx, &models.SettingsPatch{})
		if !errors.Is(err, ErrNoFields) {
			t.Errorf("Expected ErrNoFields, got %v", err)
		}
		if got := currentVersion(t, store); got != 1 {
			t.Errorf("Data version moved on rejected update: got %d, want 1", got)
		}
	})

	t.Run("merges fields and bumps version", func(t *testing.T) {
		settings, err := svc.UpdateSettings(ctx, &models.SettingsPatch{
			Phone:           ptr("+971 4 123 4567"),
			RestaurantEmail: ptr("owner@thelimon.ae"),
		})
		if err != nil {
			t.Fatalf("Failed to update settings: %v", err)
		}
		if settings.Phone != "+971 4 123 4567" {
			t.Errorf("Phone mismatch: got %q", settings.Phone)
		}
		if settings.CompanyName != "The Limon" {
			t.Errorf("Untouched company name changed: got %q", settings.CompanyName)
		}
		if settings.DataVersion != 2 {
			t.Errorf("Returned data version mismatch: got %d, want 2", settings.DataVersion)
		}
	})

	t.Run("later patch preserves earlier fields", func(t *testing.T) {
		settings, err := svc.UpdateSettings(ctx, &models.SettingsPatch{
			EnableCart: ptr(false),
		})
		if err != nil {
			t.Fatalf("Failed to update settings: %v", err)
		}
		if settings.RestaurantEmail != "owner@thelimon.ae" {
			t.Errorf("Earlier field lost: got %q", settings.RestaurantEmail)
		}
		if settings.EnableCart == nil || *settings.EnableCart {
			t.Errorf("EnableCart mismatch: got %v", settings.EnableCart)
		}
		if settings.DataVersion != 3 {
			t.Errorf("Returned data version mismatch: got %d, want 3", settings.DataVersion)
		}
	})
}
