// Package mongo provides the MongoDB-backed implementation of the
// storage.Store interface. It is the production default; documents map
// one-to-one onto the models package via bson tags.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/boramrl-25/limon-backend/internal/models"
	"github.com/boramrl-25/limon-backend/internal/storage"
)

// Ensure MongoStore implements storage.Store
var _ storage.Store = (*MongoStore)(nil)

// MongoStore implements storage.Store on a MongoDB database.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// New connects to MongoDB and verifies the connection with a ping.
func New(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoStore{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

// Close disconnects the client.
func (s *MongoStore) Close() error {
	return s.client.Disconnect(context.Background())
}

// Ping reports whether the deployment is reachable.
func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *MongoStore) admins() *mongo.Collection { return s.db.Collection("admins") }

func (s *MongoStore) categories() *mongo.Collection { return s.db.Collection("categories") }

func (s *MongoStore) menuItems() *mongo.Collection { return s.db.Collection("menu_items") }

func (s *MongoStore) settings() *mongo.Collection { return s.db.Collection("settings") }

func (s *MongoStore) orders() *mongo.Collection { return s.db.Collection("orders") }

func (s *MongoStore) contactMessages() *mongo.Collection { return s.db.Collection("contact_messages") }

func (s *MongoStore) notifications() *mongo.Collection { return s.db.Collection("notifications") }

// setDoc builds the $set document for a patch, stamping updated_at. Field
// names come from the fixed lists in the models package.
func setDoc(fields []models.PatchField, now time.Time) bson.M {
	set := bson.M{"updated_at": now}
	for _, f := range fields {
		set[f.Name] = f.Value
	}
	return set
}
