package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/boramrl-25/limon-backend/internal/models"
)

// The settings table holds exactly one row (id = 1). doc_id carries the
// ObjectID hex the HTTP layer serializes, so both backends present the
// same document shape.
const settingsCols = `doc_id, company_name, company_name_ar, company_subtitle, company_subtitle_ar,
	title_font, subtitle_font, bg_color, text_color, hero_video, hero_image,
	phone, address, address_ar, opening_hours, opening_hours_ar, instagram, google_maps,
	about_story, about_story_ar, about_mission, about_mission_ar, about_vision, about_vision_ar,
	default_language, restaurant_email, enable_favorites, enable_cart, enable_menu,
	data_version, updated_at`

// GetSettings returns the settings singleton, or (nil, nil) when it has not
// been created yet.
func (s *SQLiteStore) GetSettings(ctx context.Context) (*models.Settings, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+settingsCols+` FROM settings WHERE id = 1`)
	settings, err := scanSettings(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// InsertSettings writes the initial singleton row.
func (s *SQLiteStore) InsertSettings(ctx context.Context, set *models.Settings) error {
	docID := ensureID(&set.ID)
	if set.DataVersion == 0 {
		set.DataVersion = 1
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings (id, `+settingsCols+`)
		 VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		docID,
		set.CompanyName, set.CompanyNameAr, set.CompanySubtitle, set.CompanySubtitleAr,
		set.TitleFont, set.SubtitleFont, set.BgColor, set.TextColor, set.HeroVideo, set.HeroImage,
		set.Phone, set.Address, set.AddressAr, set.OpeningHours, set.OpeningHoursAr, set.Instagram, set.GoogleMaps,
		set.AboutStory, set.AboutStoryAr, set.AboutMission, set.AboutMissionAr, set.AboutVision, set.AboutVisionAr,
		set.DefaultLanguage, set.RestaurantEmail,
		nullBool(set.EnableFavorites), nullBool(set.EnableCart), nullBool(set.EnableMenu),
		set.DataVersion, nullTime(set.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert settings: %w", err)
	}
	return nil
}

// UpsertSettings merges the patch into the singleton, creating the row first
// if it does not exist, and returns the merged document.
func (s *SQLiteStore) UpsertSettings(ctx context.Context, patch *models.SettingsPatch) (*models.Settings, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO settings (id, doc_id) VALUES (1, ?) ON CONFLICT(id) DO NOTHING",
		primitive.NewObjectID().Hex(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure settings row: %w", err)
	}

	set, args := setClause(patch.Fields(), time.Now().UTC())
	if _, err := tx.ExecContext(ctx, "UPDATE settings SET "+set+" WHERE id = 1", args...); err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	row := tx.QueryRowContext(ctx, `SELECT `+settingsCols+` FROM settings WHERE id = 1`)
	merged, err := scanSettings(row)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return merged, nil
}

// IncrementDataVersion atomically bumps the sync counter, creating the
// singleton at version 1 when it does not exist yet.
func (s *SQLiteStore) IncrementDataVersion(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings (id, doc_id, data_version) VALUES (1, ?, 1)
		 ON CONFLICT(id) DO UPDATE SET data_version = data_version + 1`,
		primitive.NewObjectID().Hex(),
	)
	if err != nil {
		return fmt.Errorf("failed to increment data version: %w", err)
	}
	return nil
}

// DataVersion reads the sync counter; a missing row reads as 1.
func (s *SQLiteStore) DataVersion(ctx context.Context) (int64, error) {
	var v int64
	err := s.db.QueryRowContext(ctx, "SELECT data_version FROM settings WHERE id = 1").Scan(&v)
	if err == sql.ErrNoRows {
		return 1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read data version: %w", err)
	}
	return v, nil
}

func scanSettings(sc rowScanner) (*models.Settings, error) {
	var (
		set       models.Settings
		docID     string
		favorites sql.NullBool
		cart      sql.NullBool
		menu      sql.NullBool
		updatedAt sql.NullInt64
	)
	err := sc.Scan(&docID,
		&set.CompanyName, &set.CompanyNameAr, &set.CompanySubtitle, &set.CompanySubtitleAr,
		&set.TitleFont, &set.SubtitleFont, &set.BgColor, &set.TextColor, &set.HeroVideo, &set.HeroImage,
		&set.Phone, &set.Address, &set.AddressAr, &set.OpeningHours, &set.OpeningHoursAr, &set.Instagram, &set.GoogleMaps,
		&set.AboutStory, &set.AboutStoryAr, &set.AboutMission, &set.AboutMissionAr, &set.AboutVision, &set.AboutVisionAr,
		&set.DefaultLanguage, &set.RestaurantEmail, &favorites, &cart, &menu,
		&set.DataVersion, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan settings: %w", err)
	}

	set.ID, err = primitive.ObjectIDFromHex(docID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse settings id: %w", err)
	}
	set.EnableFavorites = boolPtr(favorites)
	set.EnableCart = boolPtr(cart)
	set.EnableMenu = boolPtr(menu)
	set.UpdatedAt = timePtr(updatedAt)
	return &set, nil
}
