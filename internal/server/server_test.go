package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/boramrl-25/limon-backend/internal/auth"
	"github.com/boramrl-25/limon-backend/internal/bootstrap"
	"github.com/boramrl-25/limon-backend/internal/models"
	"github.com/boramrl-25/limon-backend/internal/storage/sqlite"
	"github.com/boramrl-25/limon-backend/internal/upload"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	dir, err := os.MkdirTemp("", "limon-server-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	store, err := sqlite.New(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	logger := slog.New(slog.DiscardHandler)
	if err := bootstrap.Seed(context.Background(), store, "admin", "admin123", logger); err != nil {
		t.Fatalf("Failed to seed store: %v", err)
	}

	uploads, err := upload.NewLocalStore(filepath.Join(dir, "uploads"))
	if err != nil {
		t.Fatalf("Failed to create upload store: %v", err)
	}

	srv := NewServer(store, auth.NewJWTManager(testSecret, auth.TokenDuration), uploads, logger)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

// apiClient drives the test server over real HTTP. token is empty for
// anonymous calls.
type apiClient struct {
	t       *testing.T
	baseURL string
	token   string
}

func newTestClient(t *testing.T) *apiClient {
	t.Helper()
	ts := newTestServer(t)
	return &apiClient{t: t, baseURL: ts.URL}
}

// asAdmin logs in with the seeded credentials and returns an
// authenticated copy of the client.
func (c *apiClient) asAdmin() *apiClient {
	c.t.Helper()

	status, body := c.request(http.MethodPost, "/api/auth/login", map[string]string{
		"username": "admin",
		"password": "admin123",
	})
	if status != http.StatusOK {
		c.t.Fatalf("Login failed with status %d: %v", status, body)
	}
	token, _ := body["token"].(string)
	if token == "" {
		c.t.Fatal("Login response missing token")
	}

	authed := *c
	authed.token = token
	return &authed
}

func (c *apiClient) request(method, path string, body any) (int, map[string]any) {
	c.t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			c.t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		c.t.Fatalf("Failed to build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		c.t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		c.t.Fatalf("Failed to decode response body: %v", err)
	}
	return resp.StatusCode, decoded
}

func asMap(t *testing.T, v any) map[string]any {
	t.Helper()
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("Expected JSON object, got %T", v)
	}
	return m
}

func asSlice(t *testing.T, v any) []any {
	t.Helper()
	s, ok := v.([]any)
	if !ok {
		t.Fatalf("Expected JSON array, got %T", v)
	}
	return s
}

func detail(t *testing.T, body map[string]any) string {
	t.Helper()
	d, _ := body["detail"].(string)
	return d
}

func (c *apiClient) publicVersion() int64 {
	c.t.Helper()
	status, body := c.request(http.MethodGet, "/api/public/version", nil)
	if status != http.StatusOK {
		c.t.Fatalf("Version probe failed with status %d: %v", status, body)
	}
	v, ok := body["dataVersion"].(float64)
	if !ok {
		c.t.Fatalf("dataVersion missing from version probe: %v", body)
	}
	return int64(v)
}

func TestLoginEndpoint(t *testing.T) {
	c := newTestClient(t)

	t.Run("valid credentials", func(t *testing.T) {
		status, body := c.request(http.MethodPost, "/api/auth/login", map[string]string{
			"username": "admin",
			"password": "admin123",
		})
		if status != http.StatusOK {
			t.Fatalf("Status mismatch: got %d, want %d", status, http.StatusOK)
		}
		if body["token"] == "" {
			t.Error("Token missing from login response")
		}
		user := asMap(t, body["user"])
		if user["username"] != "admin" {
			t.Errorf("Username mismatch: got %v, want admin", user["username"])
		}
		if user["role"] != "admin" {
			t.Errorf("Role mismatch: got %v, want admin", user["role"])
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		status, body := c.request(http.MethodPost, "/api/auth/login", map[string]string{
			"username": "admin",
			"password": "wrong",
		})
		if status != http.StatusUnauthorized {
			t.Fatalf("Status mismatch: got %d, want %d", status, http.StatusUnauthorized)
		}
		if got := detail(t, body); got != "Invalid credentials" {
			t.Errorf("Detail mismatch: got %q, want %q", got, "Invalid credentials")
		}
	})
}

func TestAuthGate(t *testing.T) {
	c := newTestClient(t)

	t.Run("missing token", func(t *testing.T) {
		status, body := c.request(http.MethodPost, "/api/categories", map[string]string{"name": "X", "slug": "x"})
		if status != http.StatusUnauthorized {
			t.Fatalf("Status mismatch: got %d, want %d", status, http.StatusUnauthorized)
		}
		if got := detail(t, body); got != "Not authenticated" {
			t.Errorf("Detail mismatch: got %q, want %q", got, "Not authenticated")
		}
	})

	t.Run("malformed token", func(t *testing.T) {
		bogus := *c
		bogus.token = "not-a-jwt"
		status, body := bogus.request(http.MethodGet, "/api/auth/me", nil)
		if status != http.StatusUnauthorized {
			t.Fatalf("Status mismatch: got %d, want %d", status, http.StatusUnauthorized)
		}
		if got := detail(t, body); got != "Invalid token" {
			t.Errorf("Detail mismatch: got %q, want %q", got, "Invalid token")
		}
	})

	t.Run("expired token", func(t *testing.T) {
		expiredManager := auth.NewJWTManager(testSecret, -time.Hour)
		token, err := expiredManager.Generate(&models.Admin{
			ID:       primitive.NewObjectID(),
			Username: "admin",
			Role:     "admin",
		})
		if err != nil {
			t.Fatalf("Failed to generate expired token: %v", err)
		}

		expired := *c
		expired.token = token
		status, body := expired.request(http.MethodGet, "/api/auth/me", nil)
		if status != http.StatusUnauthorized {
			t.Fatalf("Status mismatch: got %d, want %d", status, http.StatusUnauthorized)
		}
		if got := detail(t, body); got != "Token expired" {
			t.Errorf("Detail mismatch: got %q, want %q", got, "Token expired")
		}
	})

	t.Run("whoami", func(t *testing.T) {
		admin := c.asAdmin()
		status, body := admin.request(http.MethodGet, "/api/auth/me", nil)
		if status != http.StatusOK {
			t.Fatalf("Status mismatch: got %d, want %d", status, http.StatusOK)
		}
		user := asMap(t, body["user"])
		if user["username"] != "admin" {
			t.Errorf("Username mismatch: got %v, want admin", user["username"])
		}
		if user["user_id"] == "" {
			t.Error("user_id missing from claims")
		}
	})
}

func TestChangePasswordEndpoint(t *testing.T) {
	c := newTestClient(t)
	admin := c.asAdmin()

	postForm := func(token string, form string) (int, map[string]any) {
		t.Helper()
		req, err := http.NewRequest(http.MethodPost, c.baseURL+"/api/auth/change-password", strings.NewReader(form))
		if err != nil {
			t.Fatalf("Failed to build request: %v", err)
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("Request failed: %v", err)
		}
		defer resp.Body.Close()

		var decoded map[string]any
		if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
			t.Fatalf("Failed to decode response body: %v", err)
		}
		return resp.StatusCode, decoded
	}

	t.Run("wrong old password", func(t *testing.T) {
		status, body := postForm(admin.token, "old_password=nope&new_password=next")
		if status != http.StatusBadRequest {
			t.Fatalf("Status mismatch: got %d, want %d", status, http.StatusBadRequest)
		}
		if got := detail(t, body); got != "Invalid old password" {
			t.Errorf("Detail mismatch: got %q, want %q", got, "Invalid old password")
		}
	})

	t.Run("rotates the credential", func(t *testing.T) {
		status, body := postForm(admin.token, "old_password=admin123&new_password=limon-2024")
		if status != http.StatusOK {
			t.Fatalf("Change password failed with status %d: %v", status, body)
		}
		if body["message"] != "Password changed successfully" {
			t.Errorf("Message mismatch: got %v", body["message"])
		}

		status, _ = c.request(http.MethodPost, "/api/auth/login", map[string]string{
			"username": "admin",
			"password": "admin123",
		})
		if status != http.StatusUnauthorized {
			t.Errorf("Old password still accepted: status %d", status)
		}

		status, _ = c.request(http.MethodPost, "/api/auth/login", map[string]string{
			"username": "admin",
			"password": "limon-2024",
		})
		if status != http.StatusOK {
			t.Errorf("New password rejected: status %d", status)
		}
	})
}

func TestCategoryEndpoints(t *testing.T) {
	c := newTestClient(t)
	admin := c.asAdmin()

	var categoryID string

	t.Run("create", func(t *testing.T) {
		before := c.publicVersion()
		status, body := admin.request(http.MethodPost, "/api/categories", map[string]any{
			"name":  "Charcoal Grill",
			"slug":  "grill",
			"image": "grill.jpeg",
			"order": 8,
		})
		if status != http.StatusOK {
			t.Fatalf("Create failed with status %d: %v", status, body)
		}
		category := asMap(t, body["category"])
		categoryID, _ = category["id"].(string)
		if categoryID == "" {
			t.Fatal("Category id missing from response")
		}
		if got := c.publicVersion(); got != before+1 {
			t.Errorf("Data version mismatch: got %d, want %d", got, before+1)
		}
	})

	t.Run("list is public", func(t *testing.T) {
		status, body := c.request(http.MethodGet, "/api/categories", nil)
		if status != http.StatusOK {
			t.Fatalf("List failed with status %d", status)
		}
		categories := asSlice(t, body["categories"])
		// 7 seeded defaults plus the one created above.
		if len(categories) != 8 {
			t.Errorf("Category count mismatch: got %d, want 8", len(categories))
		}
	})

	t.Run("update", func(t *testing.T) {
		status, body := admin.request(http.MethodPut, "/api/categories/"+categoryID, map[string]any{
			"name": "Grill & BBQ",
		})
		if status != http.StatusOK {
			t.Fatalf("Update failed with status %d: %v", status, body)
		}
		category := asMap(t, body["category"])
		if category["name"] != "Grill & BBQ" {
			t.Errorf("Name mismatch: got %v", category["name"])
		}
		if category["slug"] != "grill" {
			t.Errorf("Untouched slug changed: got %v", category["slug"])
		}
	})

	t.Run("update with empty body", func(t *testing.T) {
		status, body := admin.request(http.MethodPut, "/api/categories/"+categoryID, map[string]any{})
		if status != http.StatusBadRequest {
			t.Fatalf("Status mismatch: got %d, want %d", status, http.StatusBadRequest)
		}
		if got := detail(t, body); got != "No data to update" {
			t.Errorf("Detail mismatch: got %q, want %q", got, "No data to update")
		}
	})

	t.Run("update unknown id", func(t *testing.T) {
		status, body := admin.request(http.MethodPut, "/api/categories/"+primitive.NewObjectID().Hex(), map[string]any{
			"name": "Ghost",
		})
		if status != http.StatusNotFound {
			t.Fatalf("Status mismatch: got %d, want %d", status, http.StatusNotFound)
		}
		if got := detail(t, body); got != "Category not found" {
			t.Errorf("Detail mismatch: got %q, want %q", got, "Category not found")
		}
	})

	t.Run("reorder", func(t *testing.T) {
		status, body := admin.request(http.MethodPost, "/api/categories/reorder", []map[string]any{
			{"id": categoryID, "order": 1},
		})
		if status != http.StatusOK {
			t.Fatalf("Reorder failed with status %d: %v", status, body)
		}
		if body["message"] != "Categories reordered" {
			t.Errorf("Message mismatch: got %v", body["message"])
		}
	})

	t.Run("delete", func(t *testing.T) {
		status, body := admin.request(http.MethodDelete, "/api/categories/"+categoryID, nil)
		if status != http.StatusOK {
			t.Fatalf("Delete failed with status %d: %v", status, body)
		}
		if body["message"] != "Category deleted" {
			t.Errorf("Message mismatch: got %v", body["message"])
		}
	})
}

func TestMenuItemEndpoints(t *testing.T) {
	c := newTestClient(t)
	admin := c.asAdmin()

	status, body := admin.request(http.MethodPost, "/api/categories", map[string]any{
		"name": "Drinks", "slug": "drinks", "image": "drinks.jpeg",
	})
	if status != http.StatusOK {
		t.Fatalf("Failed to create category: %v", body)
	}
	categoryID := asMap(t, body["category"])["id"].(string)

	var itemID string

	t.Run("create", func(t *testing.T) {
		status, body := admin.request(http.MethodPost, "/api/menu-items", map[string]any{
			"title":       "Fresh Lemonade",
			"description": "House made",
			"price":       18.0,
			"image":       "lemonade.jpeg",
			"category_id": categoryID,
		})
		if status != http.StatusOK {
			t.Fatalf("Create failed with status %d: %v", status, body)
		}
		item := asMap(t, body["item"])
		itemID, _ = item["id"].(string)
		if itemID == "" {
			t.Fatal("Item id missing from response")
		}
		if item["is_published"] != true {
			t.Errorf("New item not published by default: %v", item["is_published"])
		}
	})

	t.Run("create rejects missing fields", func(t *testing.T) {
		status, _ := admin.request(http.MethodPost, "/api/menu-items", map[string]any{
			"title": "No price",
		})
		if status != http.StatusBadRequest {
			t.Errorf("Status mismatch: got %d, want %d", status, http.StatusBadRequest)
		}
	})

	t.Run("get", func(t *testing.T) {
		status, body := c.request(http.MethodGet, "/api/menu-items/"+itemID, nil)
		if status != http.StatusOK {
			t.Fatalf("Get failed with status %d", status)
		}
		item := asMap(t, body["item"])
		if item["title"] != "Fresh Lemonade" {
			t.Errorf("Title mismatch: got %v", item["title"])
		}
	})

	t.Run("get unknown id", func(t *testing.T) {
		status, body := c.request(http.MethodGet, "/api/menu-items/"+primitive.NewObjectID().Hex(), nil)
		if status != http.StatusNotFound {
			t.Fatalf("Status mismatch: got %d, want %d", status, http.StatusNotFound)
		}
		if got := detail(t, body); got != "Item not found" {
			t.Errorf("Detail mismatch: got %q, want %q", got, "Item not found")
		}
	})

	t.Run("toggle publish", func(t *testing.T) {
		status, body := admin.request(http.MethodPut, "/api/menu-items/"+itemID+"/toggle-publish", nil)
		if status != http.StatusOK {
			t.Fatalf("Toggle failed with status %d: %v", status, body)
		}
		if body["item_id"] != itemID {
			t.Errorf("item_id mismatch: got %v, want %v", body["item_id"], itemID)
		}
		if body["is_published"] != false {
			t.Errorf("is_published mismatch: got %v, want false", body["is_published"])
		}
	})

	t.Run("published filter", func(t *testing.T) {
		status, body := c.request(http.MethodGet, "/api/menu-items?category_id="+categoryID+"&published_only=true", nil)
		if status != http.StatusOK {
			t.Fatalf("List failed with status %d", status)
		}
		if items := asSlice(t, body["items"]); len(items) != 0 {
			t.Errorf("Unpublished item leaked into filtered list: %v", items)
		}

		status, body = c.request(http.MethodGet, "/api/menu-items?category_id="+categoryID, nil)
		if status != http.StatusOK {
			t.Fatalf("List failed with status %d", status)
		}
		if items := asSlice(t, body["items"]); len(items) != 1 {
			t.Errorf("Item count mismatch: got %d, want 1", len(items))
		}
	})

	t.Run("update", func(t *testing.T) {
		status, body := admin.request(http.MethodPut, "/api/menu-items/"+itemID, map[string]any{
			"price": 20.0,
		})
		if status != http.StatusOK {
			t.Fatalf("Update failed with status %d: %v", status, body)
		}
		item := asMap(t, body["item"])
		if item["price"] != 20.0 {
			t.Errorf("Price mismatch: got %v, want 20", item["price"])
		}
	})

	t.Run("delete", func(t *testing.T) {
		status, body := admin.request(http.MethodDelete, "/api/menu-items/"+itemID, nil)
		if status != http.StatusOK {
			t.Fatalf("Delete failed with status %d: %v", status, body)
		}
		if body["message"] != "Item deleted" {
			t.Errorf("Message mismatch: got %v", body["message"])
		}
	})
}

func TestSettingsEndpoints(t *testing.T) {
	c := newTestClient(t)
	admin := c.asAdmin()

	t.Run("get seeded settings", func(t *testing.T) {
		status, body := c.request(http.MethodGet, "/api/settings", nil)
		if status != http.StatusOK {
			t.Fatalf("Get failed with status %d", status)
		}
		settings := asMap(t, body["settings"])
		if settings["company_name"] != "The Limon" {
			t.Errorf("company_name mismatch: got %v", settings["company_name"])
		}
	})

	t.Run("update merges and bumps version", func(t *testing.T) {
		before := c.publicVersion()
		status, body := admin.request(http.MethodPut, "/api/settings", map[string]any{
			"phone": "+971 4 765 4321",
		})
		if status != http.StatusOK {
			t.Fatalf("Update failed with status %d: %v", status, body)
		}
		settings := asMap(t, body["settings"])
		if settings["phone"] != "+971 4 765 4321" {
			t.Errorf("phone mismatch: got %v", settings["phone"])
		}
		if settings["company_name"] != "The Limon" {
			t.Errorf("Existing field lost: got %v", settings["company_name"])
		}
		if got, want := settings["data_version"], float64(before+1); got != want {
			t.Errorf("data_version mismatch: got %v, want %v", got, want)
		}
	})

	t.Run("update with empty body", func(t *testing.T) {
		status, body := admin.request(http.MethodPut, "/api/settings", map[string]any{})
		if status != http.StatusBadRequest {
			t.Fatalf("Status mismatch: got %d, want %d", status, http.StatusBadRequest)
		}
		if got := detail(t, body); got != "No data to update" {
			t.Errorf("Detail mismatch: got %q, want %q", got, "No data to update")
		}
	})
}

// TestPublicPollingFlow exercises the cache invalidation contract end to
// end: mutations move the version probe, and the snapshot carries the
// new data under the matching version.
func TestPublicPollingFlow(t *testing.T) {
	c := newTestClient(t)
	admin := c.asAdmin()

	baseline := c.publicVersion()

	status, body := admin.request(http.MethodPost, "/api/categories", map[string]any{
		"name": "Specials", "slug": "specials", "image": "specials.jpeg",
	})
	if status != http.StatusOK {
		t.Fatalf("Failed to create category: %v", body)
	}
	categoryID := asMap(t, body["category"])["id"].(string)

	status, body = admin.request(http.MethodPost, "/api/menu-items", map[string]any{
		"title":        "Lamb Tandir",
		"description":  "Slow cooked",
		"price":        68.0,
		"image":        "tandir.jpeg",
		"category_id":  categoryID,
		"is_published": false,
	})
	if status != http.StatusOK {
		t.Fatalf("Failed to create item: %v", body)
	}

	if got := c.publicVersion(); got != baseline+2 {
		t.Fatalf("Version probe mismatch after two mutations: got %d, want %d", got, baseline+2)
	}

	status, body = c.request(http.MethodGet, "/api/public/data", nil)
	if status != http.StatusOK {
		t.Fatalf("Snapshot failed with status %d", status)
	}

	if got, want := body["dataVersion"], float64(baseline+2); got != want {
		t.Errorf("Snapshot dataVersion mismatch: got %v, want %v", got, want)
	}
	if _, ok := body["lastUpdated"].(string); !ok {
		t.Error("lastUpdated missing from snapshot")
	}
	settings := asMap(t, body["settings"])
	if settings["company_name"] != "The Limon" {
		t.Errorf("Snapshot settings mismatch: got %v", settings["company_name"])
	}

	categories := asSlice(t, body["categories"])
	if len(categories) != 8 {
		t.Errorf("Snapshot category count mismatch: got %d, want 8", len(categories))
	}

	// The snapshot carries unpublished items too; the public app applies
	// its own display rules.
	items := asSlice(t, body["items"])
	if len(items) != 1 {
		t.Fatalf("Snapshot item count mismatch: got %d, want 1", len(items))
	}
	if asMap(t, items[0])["title"] != "Lamb Tandir" {
		t.Errorf("Snapshot item mismatch: got %v", items[0])
	}
}

func TestOrderEndpoints(t *testing.T) {
	c := newTestClient(t)
	admin := c.asAdmin()

	var orderID string

	t.Run("place order anonymously", func(t *testing.T) {
		before := c.publicVersion()
		status, body := c.request(http.MethodPost, "/api/orders", map[string]any{
			"table_number": "5",
			"items":        []map[string]any{{"title": "Adana Kebab", "quantity": 2, "price": 52}},
			"total":        104.0,
		})
		if status != http.StatusOK {
			t.Fatalf("Place order failed with status %d: %v", status, body)
		}
		if body["message"] != "Order placed successfully" {
			t.Errorf("Message mismatch: got %v", body["message"])
		}
		orderID, _ = body["order_id"].(string)
		if orderID == "" {
			t.Fatal("order_id missing from response")
		}
		// Intake never moves the data version.
		if got := c.publicVersion(); got != before {
			t.Errorf("Data version moved on order intake: got %d, want %d", got, before)
		}
	})

	t.Run("order validation", func(t *testing.T) {
		status, _ := c.request(http.MethodPost, "/api/orders", map[string]any{
			"table_number": "5",
		})
		if status != http.StatusBadRequest {
			t.Errorf("Status mismatch: got %d, want %d", status, http.StatusBadRequest)
		}
	})

	t.Run("list requires auth", func(t *testing.T) {
		status, _ := c.request(http.MethodGet, "/api/orders", nil)
		if status != http.StatusUnauthorized {
			t.Errorf("Status mismatch: got %d, want %d", status, http.StatusUnauthorized)
		}
	})

	t.Run("list", func(t *testing.T) {
		status, body := admin.request(http.MethodGet, "/api/orders", nil)
		if status != http.StatusOK {
			t.Fatalf("List failed with status %d", status)
		}
		orders := asSlice(t, body["orders"])
		if len(orders) != 1 {
			t.Fatalf("Order count mismatch: got %d, want 1", len(orders))
		}
		if asMap(t, orders[0])["status"] != "pending" {
			t.Errorf("Status mismatch: got %v, want pending", asMap(t, orders[0])["status"])
		}
	})

	t.Run("update status", func(t *testing.T) {
		status, body := admin.request(http.MethodPut, "/api/orders/"+orderID+"/status?status=completed", nil)
		if status != http.StatusOK {
			t.Fatalf("Update failed with status %d: %v", status, body)
		}
		if body["message"] != "Order status updated to completed" {
			t.Errorf("Message mismatch: got %v", body["message"])
		}
	})

	t.Run("update unknown order", func(t *testing.T) {
		status, body := admin.request(http.MethodPut, "/api/orders/"+primitive.NewObjectID().Hex()+"/status?status=completed", nil)
		if status != http.StatusNotFound {
			t.Fatalf("Status mismatch: got %d, want %d", status, http.StatusNotFound)
		}
		if got := detail(t, body); got != "Order not found" {
			t.Errorf("Detail mismatch: got %q, want %q", got, "Order not found")
		}
	})

	t.Run("delete", func(t *testing.T) {
		status, body := admin.request(http.MethodDelete, "/api/orders/"+orderID, nil)
		if status != http.StatusOK {
			t.Fatalf("Delete failed with status %d: %v", status, body)
		}
		if body["message"] != "Order deleted" {
			t.Errorf("Message mismatch: got %v", body["message"])
		}
	})
}

func TestContactEndpoints(t *testing.T) {
	c := newTestClient(t)
	admin := c.asAdmin()

	var messageID string

	t.Run("submit anonymously", func(t *testing.T) {
		status, body := c.request(http.MethodPost, "/api/contact", map[string]any{
			"name":    "Leyla",
			"email":   "leyla@example.com",
			"message": "Do you take group bookings?",
		})
		if status != http.StatusOK {
			t.Fatalf("Submit failed with status %d: %v", status, body)
		}
		if body["message"] != "Message sent successfully" {
			t.Errorf("Message mismatch: got %v", body["message"])
		}
		messageID, _ = body["id"].(string)
		if messageID == "" {
			t.Fatal("id missing from response")
		}
	})

	t.Run("list", func(t *testing.T) {
		status, body := admin.request(http.MethodGet, "/api/contact-messages", nil)
		if status != http.StatusOK {
			t.Fatalf("List failed with status %d", status)
		}
		messages := asSlice(t, body["messages"])
		if len(messages) != 1 {
			t.Fatalf("Message count mismatch: got %d, want 1", len(messages))
		}
		if asMap(t, messages[0])["is_read"] != false {
			t.Errorf("New message already read: %v", messages[0])
		}
	})

	t.Run("mark read", func(t *testing.T) {
		status, body := admin.request(http.MethodPut, "/api/contact-messages/"+messageID+"/read", nil)
		if status != http.StatusOK {
			t.Fatalf("Mark read failed with status %d: %v", status, body)
		}
		if body["message"] != "Message marked as read" {
			t.Errorf("Message mismatch: got %v", body["message"])
		}
	})

	t.Run("delete", func(t *testing.T) {
		status, body := admin.request(http.MethodDelete, "/api/contact-messages/"+messageID, nil)
		if status != http.StatusOK {
			t.Fatalf("Delete failed with status %d: %v", status, body)
		}
		if body["message"] != "Message deleted" {
			t.Errorf("Message mismatch: got %v", body["message"])
		}

		status, body = admin.request(http.MethodDelete, "/api/contact-messages/"+messageID, nil)
		if status != http.StatusNotFound {
			t.Fatalf("Status mismatch: got %d, want %d", status, http.StatusNotFound)
		}
		if got := detail(t, body); got != "Message not found" {
			t.Errorf("Detail mismatch: got %q, want %q", got, "Message not found")
		}
	})
}

func TestUploadEndpoint(t *testing.T) {
	c := newTestClient(t)
	admin := c.asAdmin()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "dish.jpeg")
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	if _, err := part.Write([]byte("fake image bytes")); err != nil {
		t.Fatalf("Failed to write form file: %v", err)
	}
	mw.Close()

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/api/upload", &buf)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+admin.token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Status mismatch: got %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response body: %v", err)
	}
	url, _ := body["url"].(string)
	if !strings.HasPrefix(url, "uploads/") {
		t.Fatalf("URL mismatch: got %q", url)
	}
	if filename, _ := body["filename"].(string); !strings.HasSuffix(filename, ".jpeg") {
		t.Errorf("Filename extension mismatch: got %q", filename)
	}

	// The stored file is served back from the uploads mount.
	served, err := http.Get(c.baseURL + "/" + url)
	if err != nil {
		t.Fatalf("Fetch of uploaded file failed: %v", err)
	}
	defer served.Body.Close()
	if served.StatusCode != http.StatusOK {
		t.Fatalf("Static serve status mismatch: got %d, want %d", served.StatusCode, http.StatusOK)
	}
	content, err := io.ReadAll(served.Body)
	if err != nil {
		t.Fatalf("Failed to read served file: %v", err)
	}
	if string(content) != "fake image bytes" {
		t.Errorf("Served content mismatch: got %q", content)
	}
}

func TestHealthEndpoint(t *testing.T) {
	c := newTestClient(t)

	status, body := c.request(http.MethodGet, "/api/health", nil)
	if status != http.StatusOK {
		t.Fatalf("Status mismatch: got %d, want %d", status, http.StatusOK)
	}
	if body["status"] != "healthy" {
		t.Errorf("Status field mismatch: got %v, want healthy", body["status"])
	}
	if _, ok := body["timestamp"].(string); !ok {
		t.Error("timestamp missing from health response")
	}
}
