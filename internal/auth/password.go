package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidOldPassword = errors.New("invalid old password")
)

// HashPassword returns the hex-encoded SHA-256 digest of a password.
// Credentials are stored as deterministic digests so a login can match
// username and password in a single lookup.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
