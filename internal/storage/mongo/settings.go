package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/boramrl-25/limon-backend/internal/models"
)

// The settings collection holds a single document; every operation here
// matches on the empty filter the way the singleton is meant to be used.

// GetSettings returns the settings singleton, or (nil, nil) when it has not
// been created yet.
func (s *MongoStore) GetSettings(ctx context.Context) (*models.Settings, error) {
	var set models.Settings
	err := s.settings().FindOne(ctx, bson.M{}).Decode(&set)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find settings: %w", err)
	}
	return &set, nil
}

// InsertSettings writes the initial singleton document.
func (s *MongoStore) InsertSettings(ctx context.Context, set *models.Settings) error {
	if set.DataVersion == 0 {
		set.DataVersion = 1
	}
	if _, err := s.settings().InsertOne(ctx, set); err != nil {
		return fmt.Errorf("failed to insert settings: %w", err)
	}
	return nil
}

// UpsertSettings merges the patch into the singleton, creating it if absent,
// and returns the merged document.
func (s *MongoStore) UpsertSettings(ctx context.Context, patch *models.SettingsPatch) (*models.Settings, error) {
	var merged models.Settings
	err := s.settings().FindOneAndUpdate(ctx,
		bson.M{},
		bson.M{"$set": setDoc(patch.Fields(), time.Now().UTC())},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&merged)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert settings: %w", err)
	}
	return &merged, nil
}

// IncrementDataVersion atomically bumps the sync counter, creating the
// singleton when it does not exist yet.
func (s *MongoStore) IncrementDataVersion(ctx context.Context) error {
	_, err := s.settings().UpdateOne(ctx,
		bson.M{},
		bson.M{"$inc": bson.M{"data_version": 1}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to increment data version: %w", err)
	}
	return nil
}

// DataVersion reads the sync counter; a missing document or field reads
// as 1.
func (s *MongoStore) DataVersion(ctx context.Context) (int64, error) {
	var doc struct {
		DataVersion int64 `bson:"data_version"`
	}
	err := s.settings().FindOne(ctx, bson.M{},
		options.FindOne().SetProjection(bson.M{"data_version": 1}),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read data version: %w", err)
	}
	if doc.DataVersion == 0 {
		return 1, nil
	}
	return doc.DataVersion, nil
}
