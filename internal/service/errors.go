package service

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/boramrl-25/limon-backend/internal/storage"
)

// Sentinel errors translated to HTTP responses at the server boundary.
var (
	// ErrNoFields rejects partial updates carrying zero provided fields.
	ErrNoFields = errors.New("no data to update")

	// ErrMissingFields rejects create payloads lacking a required field.
	ErrMissingFields = errors.New("missing required fields")
)

// parseID converts a hex path parameter into an ObjectID, mapping parse
// failures to storage.ErrInvalidID.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", storage.ErrInvalidID, id)
	}
	return oid, nil
}
