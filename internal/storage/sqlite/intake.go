package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/boramrl-25/limon-backend/internal/models"
	"github.com/boramrl-25/limon-backend/internal/storage"
)

// CreateOrder inserts a new customer order. Items are stored as a JSON
// blob; they are read back verbatim and never queried.
func (s *SQLiteStore) CreateOrder(ctx context.Context, o *models.Order) error {
	id := ensureID(&o.ID)
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}

	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("failed to encode order items: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO orders (id, table_number, customer_name, customer_phone, customer_email, items, total, notes, language, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, o.TableNumber, o.CustomerName, o.CustomerPhone, o.CustomerEmail,
		string(items), o.Total, o.Notes, o.Language, o.Status, o.CreatedAt.Unix(), nullTime(o.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

// ListOrders returns orders newest first, at most limit of them.
func (s *SQLiteStore) ListOrders(ctx context.Context, limit int64) ([]models.Order, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, table_number, customer_name, customer_phone, customer_email, items, total, notes, language, status, created_at, updated_at
		 FROM orders ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var (
			o         models.Order
			idHex     string
			items     string
			createdAt int64
			updatedAt sql.NullInt64
		)
		if err := rows.Scan(&idHex, &o.TableNumber, &o.CustomerName, &o.CustomerPhone, &o.CustomerEmail,
			&items, &o.Total, &o.Notes, &o.Language, &o.Status, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		o.ID, err = primitive.ObjectIDFromHex(idHex)
		if err != nil {
			return nil, fmt.Errorf("failed to parse order id: %w", err)
		}
		if err := json.Unmarshal([]byte(items), &o.Items); err != nil {
			return nil, fmt.Errorf("failed to decode order items: %w", err)
		}
		o.CreatedAt = time.Unix(createdAt, 0).UTC()
		o.UpdatedAt = timePtr(updatedAt)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate orders: %w", err)
	}
	return orders, nil
}

// SetOrderStatus updates the status of an order.
func (s *SQLiteStore) SetOrderStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE orders SET status = ?, updated_at = ? WHERE id = ?",
		status, time.Now().UTC().Unix(), id.Hex(),
	)
	if err != nil {
		return fmt.Errorf("failed to set order status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("order %s: %w", id.Hex(), storage.ErrNotFound)
	}
	return nil
}

// DeleteOrder removes an order by id.
func (s *SQLiteStore) DeleteOrder(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM orders WHERE id = ?", id.Hex())
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("order %s: %w", id.Hex(), storage.ErrNotFound)
	}
	return nil
}

// CreateContactMessage inserts a message from the public contact form.
func (s *SQLiteStore) CreateContactMessage(ctx context.Context, m *models.ContactMessage) error {
	id := ensureID(&m.ID)
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO contact_messages (id, name, phone, email, message, language, is_read, created_at, read_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, m.Name, m.Phone, m.Email, m.Message, m.Language, m.IsRead, m.CreatedAt.Unix(), nullTime(m.ReadAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert contact message: %w", err)
	}
	return nil
}

// ListContactMessages returns messages newest first, at most limit of them.
func (s *SQLiteStore) ListContactMessages(ctx context.Context, limit int64) ([]models.ContactMessage, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, phone, email, message, language, is_read, created_at, read_at
		 FROM contact_messages ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	defer rows.Close()

	messages := []models.ContactMessage{}
	for rows.Next() {
		var (
			m         models.ContactMessage
			idHex     string
			createdAt int64
			readAt    sql.NullInt64
		)
		if err := rows.Scan(&idHex, &m.Name, &m.Phone, &m.Email, &m.Message, &m.Language,
			&m.IsRead, &createdAt, &readAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}
		m.ID, err = primitive.ObjectIDFromHex(idHex)
		if err != nil {
			return nil, fmt.Errorf("failed to parse contact message id: %w", err)
		}
		m.CreatedAt = time.Unix(createdAt, 0).UTC()
		m.ReadAt = timePtr(readAt)
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contact messages: %w", err)
	}
	return messages, nil
}

// MarkContactMessageRead flags a message as read and stamps read_at.
func (s *SQLiteStore) MarkContactMessageRead(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE contact_messages SET is_read = 1, read_at = ? WHERE id = ?",
		time.Now().UTC().Unix(), id.Hex(),
	)
	if err != nil {
		return fmt.Errorf("failed to mark contact message read: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("contact message %s: %w", id.Hex(), storage.ErrNotFound)
	}
	return nil
}

// DeleteContactMessage removes a message by id.
func (s *SQLiteStore) DeleteContactMessage(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM contact_messages WHERE id = ?", id.Hex())
	if err != nil {
		return fmt.Errorf("failed to delete contact message: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("contact message %s: %w", id.Hex(), storage.ErrNotFound)
	}
	return nil
}

// CreateNotification appends an outbox record.
func (s *SQLiteStore) CreateNotification(ctx context.Context, n *models.Notification) error {
	id := ensureID(&n.ID)
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO notifications (id, recipient, subject, body, created_at, sent) VALUES (?, ?, ?, ?, ?, ?)",
		id, n.To, n.Subject, n.Body, n.CreatedAt.Unix(), n.Sent,
	)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}
