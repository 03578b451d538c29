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

// CountAdmins returns the number of admin accounts.
func (s *SQLiteStore) CountAdmins(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM admins").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return n, nil
}

// CreateAdmin inserts a new admin account.
func (s *SQLiteStore) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	id := ensureID(&admin.ID)
	if admin.CreatedAt.IsZero() {
		admin.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO admins (id, username, password, role, created_at) VALUES (?, ?, ?, ?, ?)",
		id, admin.Username, admin.Password, admin.Role, admin.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert admin: %w", err)
	}
	return nil
}

// GetAdminByCredentials retrieves the admin matching both username and
// password hash.
func (s *SQLiteStore) GetAdminByCredentials(ctx context.Context, username, passwordHash string) (*models.Admin, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, username, password, role, created_at FROM admins WHERE username = ? AND password = ?",
		username, passwordHash,
	)
	return scanAdmin(row)
}

// GetAdminByID retrieves an admin by id.
func (s *SQLiteStore) GetAdminByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, username, password, role, created_at FROM admins WHERE id = ?",
		id.Hex(),
	)
	return scanAdmin(row)
}

// SetAdminPassword replaces the stored password hash.
func (s *SQLiteStore) SetAdminPassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE admins SET password = ? WHERE id = ?",
		passwordHash, id.Hex(),
	)
	if err != nil {
		return fmt.Errorf("failed to update admin password: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("admin %s: %w", id.Hex(), storage.ErrNotFound)
	}
	return nil
}

func scanAdmin(row *sql.Row) (*models.Admin, error) {
	var (
		admin     models.Admin
		idHex     string
		createdAt int64
	)
	err := row.Scan(&idHex, &admin.Username, &admin.Password, &admin.Role, &createdAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("admin: %w", storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan admin: %w", err)
	}

	admin.ID, err = primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, fmt.Errorf("failed to parse admin id: %w", err)
	}
	admin.CreatedAt = time.Unix(createdAt, 0).UTC()
	return &admin, nil
}
