// Package notify queues email notifications for intake events. Records go
// to a notification outbox; delivery belongs to an external worker.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/boramrl-25/limon-backend/internal/models"
)

const orderBody = `
New Order Received!
-------------------
Order ID: %s
Table: %s
Customer: %s
Phone: %s

Items:
%s

Total: %s AED

Notes: %s

Time: %s
`

const contactBody = `
New Contact Message!
--------------------
From: %s
Phone: %s
Email: %s
Language: %s

Message:
%s

Time: %s
`

// Store is the subset of the storage layer the notifier needs.
type Store interface {
	GetSettings(ctx context.Context) (*models.Settings, error)
	CreateNotification(ctx context.Context, notification *models.Notification) error
}

// Notifier queues notification records addressed to the restaurant inbox.
// Queueing is fire-and-forget: the intake write has already succeeded, so
// failures here are logged and swallowed.
type Notifier struct {
	store  Store
	logger *slog.Logger
}

// NewNotifier creates a Notifier over the given store.
func NewNotifier(store Store, logger *slog.Logger) *Notifier {
	return &Notifier{
		store:  store,
		logger: logger,
	}
}

// OrderReceived queues a new-order email. It does nothing unless a
// restaurant address is configured in settings.
func (n *Notifier) OrderReceived(ctx context.Context, order *models.Order) {
	to := n.recipient(ctx)
	if to == "" {
		return
	}

	id := order.ID.Hex()
	subject := fmt.Sprintf("New Order #%s", id[:8])
	body := fmt.Sprintf(orderBody,
		id,
		orDefault(order.TableNumber, "N/A"),
		orDefault(order.CustomerName, "N/A"),
		orDefault(order.CustomerPhone, "N/A"),
		itemLines(order.Items),
		formatAmount(order.Total),
		orDefault(order.Notes, "None"),
		timestamp(),
	)
	n.queue(ctx, to, subject, body)
}

// ContactReceived queues a new-contact-message email. It does nothing
// unless a restaurant address is configured in settings.
func (n *Notifier) ContactReceived(ctx context.Context, message *models.ContactMessage) {
	to := n.recipient(ctx)
	if to == "" {
		return
	}

	subject := fmt.Sprintf("Contact Message from %s", message.Name)
	body := fmt.Sprintf(contactBody,
		message.Name,
		orDefault(message.Phone, "N/A"),
		orDefault(message.Email, "N/A"),
		message.Language,
		message.Message,
		timestamp(),
	)
	n.queue(ctx, to, subject, body)
}

func (n *Notifier) recipient(ctx context.Context) string {
	settings, err := n.store.GetSettings(ctx)
	if err != nil {
		n.logger.Error("Failed to load settings for notification", "error", err)
		return ""
	}
	if settings == nil {
		return ""
	}
	return settings.RestaurantEmail
}

func (n *Notifier) queue(ctx context.Context, to, subject, body string) {
	notification := &models.Notification{
		To:      to,
		Subject: subject,
		Body:    body,
	}
	if err := n.store.CreateNotification(ctx, notification); err != nil {
		n.logger.Error("Failed to queue notification", "subject", subject, "error", err)
		return
	}
	n.logger.Info("Notification queued", "subject", subject, "to", to)
}

func itemLines(items []models.OrderItem) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		title := item.Title
		if title == "" {
			title = "Item"
		}
		quantity := item.Quantity
		if quantity == 0 {
			quantity = 1
		}
		lines = append(lines, fmt.Sprintf("- %s x%d = %s AED", title, quantity, formatAmount(item.Price)))
	}
	return strings.Join(lines, "\n")
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

func timestamp() string {
	return time.Now().UTC().Format("2006-01-02 15:04:05")
}
