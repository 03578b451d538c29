// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/boramrl-25/limon-backend/internal/models"
)

// Sentinel errors shared by all Store implementations. Callers dispatch on
// them with errors.Is.
var (
	// ErrNotFound means the operation targeted an id with no matching
	// document.
	ErrNotFound = errors.New("not found")

	// ErrInvalidID means an identifier could not be parsed.
	ErrInvalidID = errors.New("invalid id")
)

// MenuItemFilter narrows ListMenuItems. The zero value matches everything.
type MenuItemFilter struct {
	// CategoryID, when non-empty, matches items of that category.
	CategoryID string

	// PublishedOnly, when true, matches items whose is_published flag is
	// not explicitly false. Legacy documents without the flag count as
	// published.
	PublishedOnly bool
}

// Store defines the storage contract for the restaurant backend. This
// abstraction allows swapping storage backends (MongoDB, SQLite) without
// changing the service layer.
//
// Implementations must provide per-document atomicity; nothing above this
// interface locks. IncrementDataVersion is the one operation required to
// be a true atomic increment. Concurrent calls from independent mutations
// must all be observed.
type Store interface {
	// Admins.
	CountAdmins(ctx context.Context) (int64, error)
	CreateAdmin(ctx context.Context, admin *models.Admin) error
	// GetAdminByCredentials looks an admin up by username and password
	// hash; ErrNotFound when either does not match.
	GetAdminByCredentials(ctx context.Context, username, passwordHash string) (*models.Admin, error)
	GetAdminByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error)
	SetAdminPassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error

	// Categories, sorted ascending by display order.
	CountCategories(ctx context.Context) (int64, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, c *models.Category) error
	UpdateCategory(ctx context.Context, id primitive.ObjectID, patch *models.CategoryPatch) (*models.Category, error)
	DeleteCategory(ctx context.Context, id primitive.ObjectID) error
	SetCategoryOrder(ctx context.Context, id primitive.ObjectID, order int) error

	// Menu items, sorted ascending by display order.
	ListMenuItems(ctx context.Context, filter MenuItemFilter) ([]models.MenuItem, error)
	GetMenuItem(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error)
	CreateMenuItem(ctx context.Context, item *models.MenuItem) error
	UpdateMenuItem(ctx context.Context, id primitive.ObjectID, patch *models.MenuItemPatch) (*models.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id primitive.ObjectID) error
	// DeleteMenuItemsByCategory removes every item referencing the
	// category and returns how many were removed.
	DeleteMenuItemsByCategory(ctx context.Context, categoryID string) (int64, error)
	SetMenuItemOrder(ctx context.Context, id primitive.ObjectID, order int) error
	SetMenuItemPublished(ctx context.Context, id primitive.ObjectID, published bool) error

	// Settings singleton. GetSettings returns (nil, nil) when the document
	// does not exist yet.
	GetSettings(ctx context.Context) (*models.Settings, error)
	// InsertSettings writes the initial singleton; used by first-boot
	// seeding only.
	InsertSettings(ctx context.Context, s *models.Settings) error
	// UpsertSettings merges the provided fields into the singleton,
	// creating it if absent, and returns the merged document.
	UpsertSettings(ctx context.Context, patch *models.SettingsPatch) (*models.Settings, error)
	// IncrementDataVersion atomically raises the data_version counter by
	// one, creating the singleton (with version 1) if absent.
	IncrementDataVersion(ctx context.Context) error
	// DataVersion reads the counter; a missing document or field reads
	// as 1.
	DataVersion(ctx context.Context) (int64, error)

	// Orders.
	CreateOrder(ctx context.Context, o *models.Order) error
	// ListOrders returns orders newest first, at most limit of them.
	ListOrders(ctx context.Context, limit int64) ([]models.Order, error)
	SetOrderStatus(ctx context.Context, id primitive.ObjectID, status string) error
	DeleteOrder(ctx context.Context, id primitive.ObjectID) error

	// Contact messages.
	CreateContactMessage(ctx context.Context, m *models.ContactMessage) error
	// ListContactMessages returns messages newest first, at most limit.
	ListContactMessages(ctx context.Context, limit int64) ([]models.ContactMessage, error)
	MarkContactMessageRead(ctx context.Context, id primitive.ObjectID) error
	DeleteContactMessage(ctx context.Context, id primitive.ObjectID) error

	// Notifications (outbox; records are written sent=false and left for
	// an external deliverer).
	CreateNotification(ctx context.Context, n *models.Notification) error

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
