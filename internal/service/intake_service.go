package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/boramrl-25/limon-backend/internal/models"
	"github.com/boramrl-25/limon-backend/internal/notify"
	"github.com/boramrl-25/limon-backend/internal/storage"
)

// intakeListLimit caps the admin listings; intake tables grow unbounded
// and the back office only ever shows the most recent page.
const intakeListLimit = 100

// defaultLanguage is assumed when a public submission does not say which
// language the customer used.
const defaultLanguage = "en"

// IntakeService accepts public order and contact submissions and manages
// them for the back office. Intake never moves the data version; these
// records are not part of the cached public dataset.
type IntakeService struct {
	store    storage.Store
	notifier *notify.Notifier
	logger   *slog.Logger
}

// NewIntakeService creates a new intake service.
func NewIntakeService(store storage.Store, notifier *notify.Notifier, logger *slog.Logger) *IntakeService {
	return &IntakeService{
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// PlaceOrder validates and persists a public order, then queues a
// notification for the restaurant. The notification is fire-and-forget;
// the order stands even if queueing fails.
func (s *IntakeService) PlaceOrder(ctx context.Context, create *models.OrderCreate) (*models.Order, error) {
	s.logger.Info("Order intake request", "items", len(create.Items))

	// Validate input
	if len(create.Items) == 0 || create.Total == nil {
		return nil, fmt.Errorf("%w: items and total", ErrMissingFields)
	}

	language := create.Language
	if language == "" {
		language = defaultLanguage
	}
	order := &models.Order{
		TableNumber:   create.TableNumber,
		CustomerName:  create.CustomerName,
		CustomerPhone: create.CustomerPhone,
		CustomerEmail: create.CustomerEmail,
		Items:         create.Items,
		Total:         *create.Total,
		Notes:         create.Notes,
		Language:      language,
		Status:        models.OrderStatusPending,
	}
	if err := s.store.CreateOrder(ctx, order); err != nil {
		s.logger.Error("Failed to create order", "error", err)
		return nil, err
	}

	s.notifier.OrderReceived(ctx, order)

	s.logger.Info("Order placed", "order_id", order.ID.Hex(), "total", order.Total)
	return order, nil
}

// ListOrders returns the most recent orders, newest first.
func (s *IntakeService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.store.ListOrders(ctx, intakeListLimit)
}

// UpdateOrderStatus moves an order to a new status. Statuses after the
// initial "pending" are free-form strings owned by the admin UI.
func (s *IntakeService) UpdateOrderStatus(ctx context.Context, id, status string) error {
	s.logger.Info("Update order status request", "order_id", id, "status", status)

	if status == "" {
		return fmt.Errorf("%w: status", ErrMissingFields)
	}
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.store.SetOrderStatus(ctx, oid, status); err != nil {
		s.logger.Error("Failed to update order status", "order_id", id, "error", err)
		return err
	}
	return nil
}

// DeleteOrder removes an order.
func (s *IntakeService) DeleteOrder(ctx context.Context, id string) error {
	s.logger.Info("Delete order request", "order_id", id)

	oid, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.store.DeleteOrder(ctx, oid); err != nil {
		s.logger.Error("Failed to delete order", "order_id", id, "error", err)
		return err
	}
	return nil
}

// SubmitContactMessage validates and persists a public contact message,
// then queues a notification for the restaurant.
func (s *IntakeService) SubmitContactMessage(ctx context.Context, create *models.ContactMessageCreate) (*models.ContactMessage, error) {
	s.logger.Info("Contact intake request", "name", create.Name)

	// Validate input
	if create.Name == "" || create.Message == "" {
		return nil, fmt.Errorf("%w: name and message", ErrMissingFields)
	}

	language := create.Language
	if language == "" {
		language = defaultLanguage
	}
	message := &models.ContactMessage{
		Name:     create.Name,
		Phone:    create.Phone,
		Email:    create.Email,
		Message:  create.Message,
		Language: language,
	}
	if err := s.store.CreateContactMessage(ctx, message); err != nil {
		s.logger.Error("Failed to create contact message", "error", err)
		return nil, err
	}

	s.notifier.ContactReceived(ctx, message)

	s.logger.Info("Contact message received", "message_id", message.ID.Hex())
	return message, nil
}

// ListContactMessages returns the most recent messages, newest first.
func (s *IntakeService) ListContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	return s.store.ListContactMessages(ctx, intakeListLimit)
}

// MarkContactMessageRead marks a message read and stamps when.
func (s *IntakeService) MarkContactMessageRead(ctx context.Context, id string) error {
	s.logger.Info("Mark contact message read request", "message_id", id)

	oid, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.store.MarkContactMessageRead(ctx, oid); err != nil {
		s.logger.Error("Failed to mark contact message read", "message_id", id, "error", err)
		return err
	}
	return nil
}

// DeleteContactMessage removes a message.
func (s *IntakeService) DeleteContactMessage(ctx context.Context, id string) error {
	s.logger.Info("Delete contact message request", "message_id", id)

	oid, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.store.DeleteContactMessage(ctx, oid); err != nil {
		s.logger.Error("Failed to delete contact message", "message_id", id, "error", err)
		return err
	}
	return nil
}
