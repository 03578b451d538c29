package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/boramrl-25/limon-backend/internal/models"
	"github.com/boramrl-25/limon-backend/internal/storage"
)

// CountAdmins returns the number of admin accounts.
func (s *MongoStore) CountAdmins(ctx context.Context) (int64, error) {
	n, err := s.admins().CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return n, nil
}

// CreateAdmin inserts a new admin account.
func (s *MongoStore) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	if admin.ID.IsZero() {
		admin.ID = primitive.NewObjectID()
	}
	if admin.CreatedAt.IsZero() {
		admin.CreatedAt = time.Now().UTC()
	}

	if _, err := s.admins().InsertOne(ctx, admin); err != nil {
		return fmt.Errorf("failed to insert admin: %w", err)
	}
	return nil
}

// GetAdminByCredentials retrieves the admin matching both username and
// password hash.
func (s *MongoStore) GetAdminByCredentials(ctx context.Context, username, passwordHash string) (*models.Admin, error) {
	var admin models.Admin
	err := s.admins().FindOne(ctx, bson.M{"username": username, "password": passwordHash}).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("admin: %w", storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}
	return &admin, nil
}

// GetAdminByID retrieves an admin by id.
func (s *MongoStore) GetAdminByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error) {
	var admin models.Admin
	err := s.admins().FindOne(ctx, bson.M{"_id": id}).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("admin %s: %w", id.Hex(), storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}
	return &admin, nil
}

// SetAdminPassword replaces the stored password hash.
func (s *MongoStore) SetAdminPassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	res, err := s.admins().UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"password": passwordHash}},
	)
	if err != nil {
		return fmt.Errorf("failed to update admin password: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("admin %s: %w", id.Hex(), storage.ErrNotFound)
	}
	return nil
}
