package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/boramrl-25/limon-backend/internal/models"
)

// fakeStore serves canned settings and captures queued notifications.
type fakeStore struct {
	settings    *models.Settings
	settingsErr error
	createErr   error
	queued      []*models.Notification
}

func (f *fakeStore) GetSettings(ctx context.Context) (*models.Settings, error) {
	return f.settings, f.settingsErr
}

func (f *fakeStore) CreateNotification(ctx context.Context, notification *models.Notification) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.queued = append(f.queued, notification)
	return nil
}

func testNotifier(store *fakeStore) *Notifier {
	return NewNotifier(store, slog.New(slog.DiscardHandler))
}

func cutAtTime(t *testing.T, body string) string {
	t.Helper()
	before, _, ok := strings.Cut(body, "Time: ")
	if !ok {
		t.Fatalf("Body missing Time line: %q", body)
	}
	return before
}

func TestOrderReceived(t *testing.T) {
	store := &fakeStore{settings: &models.Settings{RestaurantEmail: "owner@thelimon.ae"}}
	notifier := testNotifier(store)

	order := &models.Order{
		ID:          primitive.NewObjectID(),
		TableNumber: "5",
		Items: []models.OrderItem{
			{Title: "Adana Kebab", Quantity: 2, Price: 45},
			{Price: 12.5},
		},
		Total: 102.5,
	}
	notifier.OrderReceived(context.Background(), order)

	if len(store.queued) != 1 {
		t.Fatalf("Queued %d notifications, want 1", len(store.queued))
	}
	queued := store.queued[0]
	if queued.To != "owner@thelimon.ae" {
		t.Errorf("To mismatch: got %q, want %q", queued.To, "owner@thelimon.ae")
	}
	wantSubject := "New Order #" + order.ID.Hex()[:8]
	if queued.Subject != wantSubject {
		t.Errorf("Subject mismatch: got %q, want %q", queued.Subject, wantSubject)
	}

	want := fmt.Sprintf(`
New Order Received!
-------------------
Order ID: %s
Table: 5
Customer: N/A
Phone: N/A

Items:
- Adana Kebab x2 = 45 AED
- Item x1 = 12.5 AED

Total: 102.5 AED

Notes: None

`, order.ID.Hex())
	if got := cutAtTime(t, queued.Body); got != want {
		t.Errorf("Body mismatch: got %q, want %q", got, want)
	}
}

func TestContactReceived(t *testing.T) {
	store := &fakeStore{settings: &models.Settings{RestaurantEmail: "owner@thelimon.ae"}}
	notifier := testNotifier(store)

	message := &models.ContactMessage{
		ID:       primitive.NewObjectID(),
		Name:     "Sara",
		Email:    "sara@example.com",
		Message:  "Do you take reservations?",
		Language: "ar",
	}
	notifier.ContactReceived(context.Background(), message)

	if len(store.queued) != 1 {
		t.Fatalf("Queued %d notifications, want 1", len(store.queued))
	}
	queued := store.queued[0]
	if queued.Subject != "Contact Message from Sara" {
		t.Errorf("Subject mismatch: got %q, want %q", queued.Subject, "Contact Message from Sara")
	}

	want := `
New Contact Message!
--------------------
From: Sara
Phone: N/A
Email: sara@example.com
Language: ar

Message:
Do you take reservations?

`
	if got := cutAtTime(t, queued.Body); got != want {
		t.Errorf("Body mismatch: got %q, want %q", got, want)
	}
}

func TestNotificationSkippedWithoutRecipient(t *testing.T) {
	order := &models.Order{ID: primitive.NewObjectID(), Total: 10}

	t.Run("no settings", func(t *testing.T) {
		store := &fakeStore{}
		testNotifier(store).OrderReceived(context.Background(), order)
		if len(store.queued) != 0 {
			t.Errorf("Queued %d notifications, want 0", len(store.queued))
		}
	})

	t.Run("no restaurant email", func(t *testing.T) {
		store := &fakeStore{settings: &models.Settings{CompanyName: "The Limon"}}
		testNotifier(store).OrderReceived(context.Background(), order)
		if len(store.queued) != 0 {
			t.Errorf("Queued %d notifications, want 0", len(store.queued))
		}
	})

	t.Run("settings lookup fails", func(t *testing.T) {
		store := &fakeStore{settingsErr: errors.New("store down")}
		testNotifier(store).OrderReceived(context.Background(), order)
		if len(store.queued) != 0 {
			t.Errorf("Queued %d notifications, want 0", len(store.queued))
		}
	})
}

func TestNotificationFailureSwallowed(t *testing.T) {
	store := &fakeStore{
		settings:  &models.Settings{RestaurantEmail: "owner@thelimon.ae"},
		createErr: errors.New("store down"),
	}
	notifier := testNotifier(store)

	// Must not panic or surface the error; the intake write already
	// succeeded by the time the notifier runs.
	notifier.ContactReceived(context.Background(), &models.ContactMessage{Name: "Sara", Message: "hi", Language: "en"})
	if len(store.queued) != 0 {
		t.Errorf("Queued %d notifications, want 0", len(store.queued))
	}
}
