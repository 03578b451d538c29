package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/boramrl-25/limon-backend/internal/models"
	"github.com/boramrl-25/limon-backend/internal/storage"
	"github.com/boramrl-25/limon-backend/internal/version"
)

// CatalogService manages the public menu catalog: categories, menu items,
// display ordering and publish state. Every successful mutation bumps the
// data version so polling clients refetch their cached snapshot.
type CatalogService struct {
	store    storage.Store
	versions *version.Tracker
	logger   *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(store storage.Store, versions *version.Tracker, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		store:    store,
		versions: versions,
		logger:   logger,
	}
}

// ListCategories returns all categories in display order.
func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.store.ListCategories(ctx)
}

// CreateCategory validates and persists a new category.
func (s *CatalogService) CreateCategory(ctx context.Context, create *models.CategoryCreate) (*models.Category, error) {
	s.logger.Info("Create category request", "name", create.Name)

	// Validate input
	if create.Name == "" || create.Slug == "" {
		return nil, fmt.Errorf("%w: name and slug", ErrMissingFields)
	}

	category := &models.Category{
		Name:   create.Name,
		NameAr: create.NameAr,
		Slug:   create.Slug,
		Image:  create.Image,
		Order:  create.Order,
	}
	if err := s.store.CreateCategory(ctx, category); err != nil {
		s.logger.Error("Failed to create category", "name", create.Name, "error", err)
		return nil, err
	}
	if err := s.bump(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("Category created", "category_id", category.ID.Hex())
	return category, nil
}

// UpdateCategory applies a partial update and returns the new state.
func (s *CatalogService) UpdateCategory(ctx context.Context, id string, patch *models.CategoryPatch) (*models.Category, error) {
	s.logger.Info("Update category request", "category_id", id)

	if patch.IsEmpty() {
		return nil, ErrNoFields
	}
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	category, err := s.store.UpdateCategory(ctx, oid, patch)
	if err != nil {
		s.logger.Error("Failed to update category", "category_id", id, "error", err)
		return nil, err
	}
	if err := s.bump(ctx); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes a category and everything inside it. The cascade
// removes the items first, so a partial failure cannot leave items
// pointing at a missing category; the two deletes are not transactional.
func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	s.logger.Info("Delete category request", "category_id", id)

	oid, err := parseID(id)
	if err != nil {
		return err
	}

	removed, err := s.store.DeleteMenuItemsByCategory(ctx, oid.Hex())
	if err != nil {
		s.logger.Error("Failed to delete category items", "category_id", id, "error", err)
		return err
	}
	if err := s.store.DeleteCategory(ctx, oid); err != nil {
		s.logger.Error("Failed to delete category", "category_id", id, "error", err)
		return err
	}
	if err := s.bump(ctx); err != nil {
		return err
	}

	s.logger.Info("Category deleted", "category_id", id, "items_removed", removed)
	return nil
}

// ReorderCategories applies a batch of display-order assignments and bumps
// the data version once for the whole batch.
func (s *CatalogService) ReorderCategories(ctx context.Context, entries []models.ReorderEntry) error {
	s.logger.Info("Reorder categories request", "count", len(entries))

	if err := s.reorder(ctx, entries, s.store.SetCategoryOrder); err != nil {
		return err
	}
	return s.bump(ctx)
}

// ListMenuItems returns items in display order, optionally narrowed by
// category or publish state.
func (s *CatalogService) ListMenuItems(ctx context.Context, filter storage.MenuItemFilter) ([]models.MenuItem, error) {
	return s.store.ListMenuItems(ctx, filter)
}

// GetMenuItem returns a single item by id.
func (s *CatalogService) GetMenuItem(ctx context.Context, id string) (*models.MenuItem, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.store.GetMenuItem(ctx, oid)
}

// CreateMenuItem validates and persists a new menu item. Items are
// published unless the payload says otherwise.
func (s *CatalogService) CreateMenuItem(ctx context.Context, create *models.MenuItemCreate) (*models.MenuItem, error) {
	s.logger.Info("Create menu item request", "title", create.Title, "category_id", create.CategoryID)

	// Validate input
	if create.Title == "" || create.Price == nil || create.CategoryID == "" {
		return nil, fmt.Errorf("%w: title, price and category_id", ErrMissingFields)
	}

	published := true
	if create.IsPublished != nil {
		published = *create.IsPublished
	}
	item := &models.MenuItem{
		Title:         create.Title,
		TitleAr:       create.TitleAr,
		Description:   create.Description,
		DescriptionAr: create.DescriptionAr,
		Price:         *create.Price,
		Image:         create.Image,
		CategoryID:    create.CategoryID,
		IsPublished:   &published,
	}
	if err := s.store.CreateMenuItem(ctx, item); err != nil {
		s.logger.Error("Failed to create menu item", "title", create.Title, "error", err)
		return nil, err
	}
	if err := s.bump(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("Menu item created", "item_id", item.ID.Hex())
	return item, nil
}

// UpdateMenuItem applies a partial update and returns the new state.
func (s *CatalogService) UpdateMenuItem(ctx context.Context, id string, patch *models.MenuItemPatch) (*models.MenuItem, error) {
	s.logger.Info("Update menu item request", "item_id", id)

	if patch.IsEmpty() {
		return nil, ErrNoFields
	}
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	item, err := s.store.UpdateMenuItem(ctx, oid, patch)
	if err != nil {
		s.logger.Error("Failed to update menu item", "item_id", id, "error", err)
		return nil, err
	}
	if err := s.bump(ctx); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteMenuItem removes a single item.
func (s *CatalogService) DeleteMenuItem(ctx context.Context, id string) error {
	s.logger.Info("Delete menu item request", "item_id", id)

	oid, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.store.DeleteMenuItem(ctx, oid); err != nil {
		s.logger.Error("Failed to delete menu item", "item_id", id, "error", err)
		return err
	}
	return s.bump(ctx)
}

// TogglePublish flips an item's publish flag and returns the new state.
// An item that never had the flag counts as published, so its first
// toggle unpublishes it.
func (s *CatalogService) TogglePublish(ctx context.Context, id string) (bool, error) {
	s.logger.Info("Toggle publish request", "item_id", id)

	oid, err := parseID(id)
	if err != nil {
		return false, err
	}
	item, err := s.store.GetMenuItem(ctx, oid)
	if err != nil {
		s.logger.Error("Failed to load menu item", "item_id", id, "error", err)
		return false, err
	}

	published := !item.Published()
	if err := s.store.SetMenuItemPublished(ctx, oid, published); err != nil {
		s.logger.Error("Failed to toggle publish", "item_id", id, "error", err)
		return false, err
	}
	if err := s.bump(ctx); err != nil {
		return false, err
	}

	s.logger.Info("Menu item publish toggled", "item_id", id, "is_published", published)
	return published, nil
}

// ReorderMenuItems applies a batch of display-order assignments and bumps
// the data version once for the whole batch.
func (s *CatalogService) ReorderMenuItems(ctx context.Context, entries []models.ReorderEntry) error {
	s.logger.Info("Reorder menu items request", "count", len(entries))

	if err := s.reorder(ctx, entries, s.store.SetMenuItemOrder); err != nil {
		return err
	}
	return s.bump(ctx)
}

// reorder validates every id up front, then applies the order values one
// by one. Ids with no matching entity are skipped. Entries are applied
// sequentially with no batch atomicity.
func (s *CatalogService) reorder(ctx context.Context, entries []models.ReorderEntry, set func(context.Context, primitive.ObjectID, int) error) error {
	ids := make([]primitive.ObjectID, len(entries))
	for i, entry := range entries {
		oid, err := parseID(entry.ID)
		if err != nil {
			return err
		}
		ids[i] = oid
	}

	for i, entry := range entries {
		err := set(ctx, ids[i], entry.Order)
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			s.logger.Error("Failed to apply reorder entry", "id", entry.ID, "error", err)
			return err
		}
	}
	return nil
}

func (s *CatalogService) bump(ctx context.Context) error {
	if err := s.versions.Bump(ctx); err != nil {
		s.logger.Error("Failed to bump data version", "error", err)
		return err
	}
	return nil
}
