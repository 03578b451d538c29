// Package bootstrap seeds a fresh deployment with its first-boot data.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/boramrl-25/limon-backend/internal/auth"
	"github.com/boramrl-25/limon-backend/internal/models"
	"github.com/boramrl-25/limon-backend/internal/storage"
)

// Seed fills empty collections with defaults: the admin account, the
// settings singleton and the category skeleton. Collections that already
// hold data are left alone, so Seed is safe to run on every startup.
func Seed(ctx context.Context, store storage.Store, adminUsername, adminPassword string, logger *slog.Logger) error {
	admins, err := store.CountAdmins(ctx)
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if admins == 0 {
		admin := &models.Admin{
			Username: adminUsername,
			Password: auth.HashPassword(adminPassword),
			Role:     "admin",
		}
		if err := store.CreateAdmin(ctx, admin); err != nil {
			return fmt.Errorf("failed to seed admin: %w", err)
		}
		logger.Info("Seeded default admin", "username", adminUsername)
	}

	settings, err := store.GetSettings(ctx)
	if err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}
	if settings == nil {
		if err := store.InsertSettings(ctx, defaultSettings()); err != nil {
			return fmt.Errorf("failed to seed settings: %w", err)
		}
		logger.Info("Seeded default settings")
	}

	categories, err := store.CountCategories(ctx)
	if err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if categories == 0 {
		defaults := defaultCategories()
		for i := range defaults {
			if err := store.CreateCategory(ctx, &defaults[i]); err != nil {
				return fmt.Errorf("failed to seed categories: %w", err)
			}
		}
		logger.Info("Seeded default categories", "count", len(defaults))
	}

	return nil
}

// defaultSettings returns the launch content for The Limon. DataVersion is
// left zero; the store writes the counter's initial value of 1.
func defaultSettings() *models.Settings {
	return &models.Settings{
		CompanyName:     "The Limon",
		CompanySubtitle: "Turkish Cuisine",
		HeroVideo:       "hero-video-new.mp4",
		HeroImage:       "menu-images/dish_01_01.jpeg",
		Phone:           "+971 4 123 4567",
		Address:         "Sheikh Zayed Road, Dubai, UAE",
		OpeningHours:    "Daily: 8:00 AM - 11:00 PM",
		Instagram:       "https://instagram.com",
		GoogleMaps:      "https://maps.google.com",
		AboutStory:      "Welcome to The Limon Turkish Cuisine, where centuries-old Turkish culinary traditions meet contemporary dining excellence.",
		AboutMission:    "To share the rich heritage of Turkish cuisine with our community, creating memorable dining experiences.",
		AboutVision:     "To become the premier destination for Turkish cuisine, recognized for our commitment to authenticity.",
	}
}

func defaultCategories() []models.Category {
	return []models.Category{
		{Name: "Turkish Breakfast", Slug: "breakfast", Image: "menu-images/dish_01_01.jpeg", Order: 1},
		{Name: "Meze & Salad Selection", Slug: "mezze", Image: "menu-images/dish_06_01.jpeg", Order: 2},
		{Name: "Charcoal Grill", Slug: "main", Image: "menu-images/dish_09_03.jpeg", Order: 3},
		{Name: "Sweet Moments", Slug: "sweet", Image: "menu-images/dish_12_04.jpeg", Order: 4},
		{Name: "Kids Meal", Slug: "kids", Image: "menu-images/dish_13_05.jpeg", Order: 5},
		{Name: "Coffee & Teas", Slug: "coffee", Image: "menu-images/dish_14_01.jpeg", Order: 6},
		{Name: "Fresh Juices & Cocktails", Slug: "juices", Image: "menu-images/dish_16_01.jpeg", Order: 7},
	}
}
