package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/boramrl-25/limon-backend/internal/models"
	"github.com/boramrl-25/limon-backend/internal/storage"
)

const categoryCols = `id, name, name_ar, slug, image, "order", created_at, updated_at`

// CountCategories returns the number of categories.
func (s *SQLiteStore) CountCategories(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM categories").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}
	return n, nil
}

// ListCategories returns all categories in ascending display order.
func (s *SQLiteStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+categoryCols+` FROM categories ORDER BY "order" ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}
	return categories, nil
}

// CreateCategory inserts a new category.
func (s *SQLiteStore) CreateCategory(ctx context.Context, c *models.Category) error {
	id := ensureID(&c.ID)
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO categories (id, name, name_ar, slug, image, "order", created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, c.Name, c.NameAr, c.Slug, c.Image, c.Order, c.CreatedAt.Unix(), nullTime(c.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}
	return nil
}

// UpdateCategory applies the provided patch fields and returns the updated
// category.
func (s *SQLiteStore) UpdateCategory(ctx context.Context, id primitive.ObjectID, patch *models.CategoryPatch) (*models.Category, error) {
	set, args := setClause(patch.Fields(), time.Now().UTC())
	args = append(args, id.Hex())

	res, err := s.db.ExecContext(ctx, "UPDATE categories SET "+set+" WHERE id = ?", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("category %s: %w", id.Hex(), storage.ErrNotFound)
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT `+categoryCols+` FROM categories WHERE id = ?`, id.Hex(),
	)
	c, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("category %s: %w", id.Hex(), storage.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCategory removes a category by id.
func (s *SQLiteStore) DeleteCategory(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", id.Hex())
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("category %s: %w", id.Hex(), storage.ErrNotFound)
	}
	return nil
}

// SetCategoryOrder moves a category to the given display position.
func (s *SQLiteStore) SetCategoryOrder(ctx context.Context, id primitive.ObjectID, order int) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE categories SET "order" = ?, updated_at = ? WHERE id = ?`,
		order, time.Now().UTC().Unix(), id.Hex(),
	)
	if err != nil {
		return fmt.Errorf("failed to set category order: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("category %s: %w", id.Hex(), storage.ErrNotFound)
	}
	return nil
}

const menuItemCols = `id, title, title_ar, description, description_ar, price, image, category_id, "order", is_published, created_at, updated_at`

// ListMenuItems returns menu items matching the filter in ascending display
// order.
func (s *SQLiteStore) ListMenuItems(ctx context.Context, filter storage.MenuItemFilter) ([]models.MenuItem, error) {
	query := `SELECT ` + menuItemCols + ` FROM menu_items`
	where := ""
	args := []any{}
	if filter.CategoryID != "" {
		where = " WHERE category_id = ?"
		args = append(args, filter.CategoryID)
	}
	if filter.PublishedOnly {
		if where == "" {
			where = " WHERE "
		} else {
			where += " AND "
		}
		// Legacy rows without the flag count as published.
		where += "(is_published IS NULL OR is_published != 0)"
	}
	query += where + ` ORDER BY "order" ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate menu items: %w", err)
	}
	return items, nil
}

// GetMenuItem retrieves a single menu item by id.
func (s *SQLiteStore) GetMenuItem(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+menuItemCols+` FROM menu_items WHERE id = ?`, id.Hex(),
	)
	item, err := scanMenuItem(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("menu item %s: %w", id.Hex(), storage.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// CreateMenuItem inserts a new menu item.
func (s *SQLiteStore) CreateMenuItem(ctx context.Context, item *models.MenuItem) error {
	id := ensureID(&item.ID)
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO menu_items (id, title, title_ar, description, description_ar, price, image, category_id, "order", is_published, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, item.Title, item.TitleAr, item.Description, item.DescriptionAr,
		item.Price, item.Image, item.CategoryID, item.Order,
		nullBool(item.IsPublished), item.CreatedAt.Unix(), nullTime(item.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert menu item: %w", err)
	}
	return nil
}

// UpdateMenuItem applies the provided patch fields and returns the updated
// item.
func (s *SQLiteStore) UpdateMenuItem(ctx context.Context, id primitive.ObjectID, patch *models.MenuItemPatch) (*models.MenuItem, error) {
	set, args := setClause(patch.Fields(), time.Now().UTC())
	args = append(args, id.Hex())

	res, err := s.db.ExecContext(ctx, "UPDATE menu_items SET "+set+" WHERE id = ?", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("menu item %s: %w", id.Hex(), storage.ErrNotFound)
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT `+menuItemCols+` FROM menu_items WHERE id = ?`, id.Hex(),
	)
	item, err := scanMenuItem(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("menu item %s: %w", id.Hex(), storage.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteMenuItem removes a menu item by id.
func (s *SQLiteStore) DeleteMenuItem(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM menu_items WHERE id = ?", id.Hex())
	if err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("menu item %s: %w", id.Hex(), storage.ErrNotFound)
	}
	return nil
}

// DeleteMenuItemsByCategory removes all items of a category and reports how
// many went away.
func (s *SQLiteStore) DeleteMenuItemsByCategory(ctx context.Context, categoryID string) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM menu_items WHERE category_id = ?", categoryID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete menu items by category: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n, nil
}

// SetMenuItemOrder moves a menu item to the given display position.
func (s *SQLiteStore) SetMenuItemOrder(ctx context.Context, id primitive.ObjectID, order int) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE menu_items SET "order" = ?, updated_at = ? WHERE id = ?`,
		order, time.Now().UTC().Unix(), id.Hex(),
	)
	if err != nil {
		return fmt.Errorf("failed to set menu item order: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("menu item %s: %w", id.Hex(), storage.ErrNotFound)
	}
	return nil
}

// SetMenuItemPublished flips the publish flag.
func (s *SQLiteStore) SetMenuItemPublished(ctx context.Context, id primitive.ObjectID, published bool) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE menu_items SET is_published = ?, updated_at = ? WHERE id = ?",
		published, time.Now().UTC().Unix(), id.Hex(),
	)
	if err != nil {
		return fmt.Errorf("failed to set menu item publish flag: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("menu item %s: %w", id.Hex(), storage.ErrNotFound)
	}
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCategory(sc rowScanner) (*models.Category, error) {
	var (
		c         models.Category
		idHex     string
		createdAt int64
		updatedAt sql.NullInt64
	)
	err := sc.Scan(&idHex, &c.Name, &c.NameAr, &c.Slug, &c.Image, &c.Order, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan category: %w", err)
	}

	c.ID, err = primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, fmt.Errorf("failed to parse category id: %w", err)
	}
	c.CreatedAt = time.Unix(createdAt, 0).UTC()
	c.UpdatedAt = timePtr(updatedAt)
	return &c, nil
}

func scanMenuItem(sc rowScanner) (*models.MenuItem, error) {
	var (
		item        models.MenuItem
		idHex       string
		isPublished sql.NullBool
		createdAt   int64
		updatedAt   sql.NullInt64
	)
	err := sc.Scan(&idHex, &item.Title, &item.TitleAr, &item.Description, &item.DescriptionAr,
		&item.Price, &item.Image, &item.CategoryID, &item.Order, &isPublished, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan menu item: %w", err)
	}

	item.ID, err = primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, fmt.Errorf("failed to parse menu item id: %w", err)
	}
	item.IsPublished = boolPtr(isPublished)
	item.CreatedAt = time.Unix(createdAt, 0).UTC()
	item.UpdatedAt = timePtr(updatedAt)
	return &item, nil
}
