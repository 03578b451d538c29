package service

import (
	"context"
	"log/slog"

	"github.com/boramrl-25/limon-backend/internal/auth"
	"github.com/boramrl-25/limon-backend/internal/models"
)

// AuthService handles admin login and password rotation.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

// LoginResult carries the issued token and the authenticated admin.
type LoginResult struct {
	Token string
	Admin *models.Admin
}

// Login authenticates an admin and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	s.logger.Info("Login request", "username", username)

	// Validate input
	if username == "" || password == "" {
		return nil, auth.ErrInvalidCredentials
	}

	// Authenticate admin
	admin, err := s.authenticator.Authenticate(ctx, username, password)
	if err != nil {
		s.logger.Warn("Login failed", "username", username, "error", err)
		return nil, err
	}

	// Generate JWT token
	token, err := s.jwtManager.Generate(admin)
	if err != nil {
		s.logger.Error("Failed to generate token", "admin_id", admin.ID.Hex(), "error", err)
		return nil, err
	}

	s.logger.Info("Admin logged in", "admin_id", admin.ID.Hex(), "username", admin.Username)
	return &LoginResult{Token: token, Admin: admin}, nil
}

// ChangePassword re-verifies the old password before storing the new
// hash. Tokens issued before the change stay valid until natural expiry;
// there is no revocation list.
func (s *AuthService) ChangePassword(ctx context.Context, adminID, oldPassword, newPassword string) error {
	s.logger.Info("Change password request", "admin_id", adminID)

	oid, err := parseID(adminID)
	if err != nil {
		return err
	}
	if err := s.authenticator.ChangePassword(ctx, oid, oldPassword, newPassword); err != nil {
		s.logger.Warn("Change password failed", "admin_id", adminID, "error", err)
		return err
	}

	s.logger.Info("Password changed", "admin_id", adminID)
	return nil
}
