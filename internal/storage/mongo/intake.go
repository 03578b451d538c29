package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/boramrl-25/limon-backend/internal/models"
	"github.com/boramrl-25/limon-backend/internal/storage"
)

var newestFirst = bson.D{{Key: "created_at", Value: -1}}

// CreateOrder inserts a new customer order.
func (s *MongoStore) CreateOrder(ctx context.Context, o *models.Order) error {
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}

	if _, err := s.orders().InsertOne(ctx, o); err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

// ListOrders returns orders newest first, at most limit of them.
func (s *MongoStore) ListOrders(ctx context.Context, limit int64) ([]models.Order, error) {
	cur, err := s.orders().Find(ctx, bson.M{},
		options.Find().SetSort(newestFirst).SetLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := []models.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	return orders, nil
}

// SetOrderStatus updates the status of an order.
func (s *MongoStore) SetOrderStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	res, err := s.orders().UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return fmt.Errorf("failed to set order status: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("order %s: %w", id.Hex(), storage.ErrNotFound)
	}
	return nil
}

// DeleteOrder removes an order by id.
func (s *MongoStore) DeleteOrder(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.orders().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("order %s: %w", id.Hex(), storage.ErrNotFound)
	}
	return nil
}

// CreateContactMessage inserts a message from the public contact form.
func (s *MongoStore) CreateContactMessage(ctx context.Context, m *models.ContactMessage) error {
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}

	if _, err := s.contactMessages().InsertOne(ctx, m); err != nil {
		return fmt.Errorf("failed to insert contact message: %w", err)
	}
	return nil
}

// ListContactMessages returns messages newest first, at most limit of them.
func (s *MongoStore) ListContactMessages(ctx context.Context, limit int64) ([]models.ContactMessage, error) {
	cur, err := s.contactMessages().Find(ctx, bson.M{},
		options.Find().SetSort(newestFirst).SetLimit(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}

	messages := []models.ContactMessage{}
	if err := cur.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode contact messages: %w", err)
	}
	return messages, nil
}

// MarkContactMessageRead flags a message as read and stamps read_at.
func (s *MongoStore) MarkContactMessageRead(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.contactMessages().UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"is_read": true, "read_at": time.Now().UTC()}},
	)
	if err != nil {
		return fmt.Errorf("failed to mark contact message read: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("contact message %s: %w", id.Hex(), storage.ErrNotFound)
	}
	return nil
}

// DeleteContactMessage removes a message by id.
func (s *MongoStore) DeleteContactMessage(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.contactMessages().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete contact message: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("contact message %s: %w", id.Hex(), storage.ErrNotFound)
	}
	return nil
}

// CreateNotification appends an outbox record.
func (s *MongoStore) CreateNotification(ctx context.Context, n *models.Notification) error {
	if n.ID.IsZero() {
		n.ID = primitive.NewObjectID()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	if _, err := s.notifications().InsertOne(ctx, n); err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}
