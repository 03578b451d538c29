package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/boramrl-25/limon-backend/internal/models"
	"github.com/boramrl-25/limon-backend/internal/storage"
)

// byOrder sorts ascending by display order, the way every catalog listing
// is served.
var byOrder = bson.D{{Key: "order", Value: 1}}

// CountCategories returns the number of categories.
func (s *MongoStore) CountCategories(ctx context.Context) (int64, error) {
	n, err := s.categories().CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}
	return n, nil
}

// ListCategories returns all categories in ascending display order.
func (s *MongoStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	cur, err := s.categories().Find(ctx, bson.M{}, options.Find().SetSort(byOrder))
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := []models.Category{}
	if err := cur.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return categories, nil
}

// CreateCategory inserts a new category.
func (s *MongoStore) CreateCategory(ctx context.Context, c *models.Category) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	if _, err := s.categories().InsertOne(ctx, c); err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}
	return nil
}

// UpdateCategory applies the provided patch fields and returns the updated
// category.
func (s *MongoStore) UpdateCategory(ctx context.Context, id primitive.ObjectID, patch *models.CategoryPatch) (*models.Category, error) {
	var updated models.Category
	err := s.categories().FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": setDoc(patch.Fields(), time.Now().UTC())},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("category %s: %w", id.Hex(), storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return &updated, nil
}

// DeleteCategory removes a category by id.
func (s *MongoStore) DeleteCategory(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.categories().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("category %s: %w", id.Hex(), storage.ErrNotFound)
	}
	return nil
}

// SetCategoryOrder moves a category to the given display position.
func (s *MongoStore) SetCategoryOrder(ctx context.Context, id primitive.ObjectID, order int) error {
	res, err := s.categories().UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"order": order, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return fmt.Errorf("failed to set category order: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("category %s: %w", id.Hex(), storage.ErrNotFound)
	}
	return nil
}

// ListMenuItems returns menu items matching the filter in ascending display
// order.
func (s *MongoStore) ListMenuItems(ctx context.Context, filter storage.MenuItemFilter) ([]models.MenuItem, error) {
	query := bson.M{}
	if filter.CategoryID != "" {
		query["category_id"] = filter.CategoryID
	}
	if filter.PublishedOnly {
		// $ne false keeps legacy documents without the flag.
		query["is_published"] = bson.M{"$ne": false}
	}

	cur, err := s.menuItems().Find(ctx, query, options.Find().SetSort(byOrder))
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}

	items := []models.MenuItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode menu items: %w", err)
	}
	return items, nil
}

// GetMenuItem retrieves a single menu item by id.
func (s *MongoStore) GetMenuItem(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
	var item models.MenuItem
	err := s.menuItems().FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("menu item %s: %w", id.Hex(), storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find menu item: %w", err)
	}
	return &item, nil
}

// CreateMenuItem inserts a new menu item.
func (s *MongoStore) CreateMenuItem(ctx context.Context, item *models.MenuItem) error {
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}

	if _, err := s.menuItems().InsertOne(ctx, item); err != nil {
		return fmt.Errorf("failed to insert menu item: %w", err)
	}
	return nil
}

// UpdateMenuItem applies the provided patch fields and returns the updated
// item.
func (s *MongoStore) UpdateMenuItem(ctx context.Context, id primitive.ObjectID, patch *models.MenuItemPatch) (*models.MenuItem, error) {
	var updated models.MenuItem
	err := s.menuItems().FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": setDoc(patch.Fields(), time.Now().UTC())},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("menu item %s: %w", id.Hex(), storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}
	return &updated, nil
}

// DeleteMenuItem removes a menu item by id.
func (s *MongoStore) DeleteMenuItem(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.menuItems().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("menu item %s: %w", id.Hex(), storage.ErrNotFound)
	}
	return nil
}

// DeleteMenuItemsByCategory removes all items of a category and reports how
// many went away.
func (s *MongoStore) DeleteMenuItemsByCategory(ctx context.Context, categoryID string) (int64, error) {
	res, err := s.menuItems().DeleteMany(ctx, bson.M{"category_id": categoryID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete menu items by category: %w", err)
	}
	return res.DeletedCount, nil
}

// SetMenuItemOrder moves a menu item to the given display position.
func (s *MongoStore) SetMenuItemOrder(ctx context.Context, id primitive.ObjectID, order int) error {
	res, err := s.menuItems().UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"order": order, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return fmt.Errorf("failed to set menu item order: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("menu item %s: %w", id.Hex(), storage.ErrNotFound)
	}
	return nil
}

// SetMenuItemPublished flips the publish flag.
func (s *MongoStore) SetMenuItemPublished(ctx context.Context, id primitive.ObjectID, published bool) error {
	res, err := s.menuItems().UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"is_published": published, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return fmt.Errorf("failed to set menu item publish flag: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("menu item %s: %w", id.Hex(), storage.ErrNotFound)
	}
	return nil
}
