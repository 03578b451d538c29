package auth

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/boramrl-25/limon-backend/internal/models"
)

// AdminStorage defines the persistence operations the authenticator needs.
// This allows the authenticator to be independent of the storage
// implementation.
type AdminStorage interface {
	GetAdminByCredentials(ctx context.Context, username, passwordHash string) (*models.Admin, error)
	GetAdminByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error)
	SetAdminPassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error
}

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping between different auth methods without
// changing the service layer code.
type Authenticator interface {
	// Authenticate verifies the admin's credentials and returns the admin
	// if successful.
	Authenticate(ctx context.Context, username, credential string) (*models.Admin, error)

	// ChangePassword replaces an admin's credential after verifying the
	// old one.
	ChangePassword(ctx context.Context, adminID primitive.ObjectID, oldCredential, newCredential string) error
}

// PasswordAuthenticator implements password-based authentication over
// hashed credentials.
type PasswordAuthenticator struct {
	storage AdminStorage
}

// NewPasswordAuthenticator creates a new password-based authenticator.
func NewPasswordAuthenticator(storage AdminStorage) *PasswordAuthenticator {
	return &PasswordAuthenticator{
		storage: storage,
	}
}

// Authenticate verifies the username and password, returning the admin if
// valid. Any failure reads as invalid credentials; callers never learn
// whether the username exists.
func (a *PasswordAuthenticator) Authenticate(ctx context.Context, username, credential string) (*models.Admin, error) {
	admin, err := a.storage.GetAdminByCredentials(ctx, username, HashPassword(credential))
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	return admin, nil
}

// ChangePassword verifies the old credential and stores the hash of the new
// one. A missing admin reads the same as a wrong old password.
func (a *PasswordAuthenticator) ChangePassword(ctx context.Context, adminID primitive.ObjectID, oldCredential, newCredential string) error {
	admin, err := a.storage.GetAdminByID(ctx, adminID)
	if err != nil || admin.Password != HashPassword(oldCredential) {
		return ErrInvalidOldPassword
	}

	if err := a.storage.SetAdminPassword(ctx, adminID, HashPassword(newCredential)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}
