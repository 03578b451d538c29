// Package server exposes the restaurant backend over HTTP: public
// catalog and intake routes, bearer-protected admin routes, uploads,
// health and metrics.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/boramrl-25/limon-backend/internal/auth"
	"github.com/boramrl-25/limon-backend/internal/middleware"
	"github.com/boramrl-25/limon-backend/internal/notify"
	"github.com/boramrl-25/limon-backend/internal/service"
	"github.com/boramrl-25/limon-backend/internal/storage"
	"github.com/boramrl-25/limon-backend/internal/upload"
	"github.com/boramrl-25/limon-backend/internal/version"
)

// Server wires the HTTP surface to the services.
type Server struct {
	store    storage.Store
	auth     *service.AuthService
	catalog  *service.CatalogService
	settings *service.SettingsService
	public   *service.PublicService
	intake   *service.IntakeService
	uploads  *upload.LocalStore
	jwt      *auth.JWTManager
	logger   *slog.Logger
}

// NewServer builds the services over the given store and returns the
// assembled server.
func NewServer(store storage.Store, jwtManager *auth.JWTManager, uploads *upload.LocalStore, logger *slog.Logger) *Server {
	versions := version.NewTracker(store)
	return &Server{
		store:    store,
		auth:     service.NewAuthService(auth.NewPasswordAuthenticator(store), jwtManager, logger),
		catalog:  service.NewCatalogService(store, versions, logger),
		settings: service.NewSettingsService(store, versions, logger),
		public:   service.NewPublicService(store, versions, logger),
		intake:   service.NewIntakeService(store, notify.NewNotifier(store, logger), logger),
		uploads:  uploads,
		jwt:      jwtManager,
		logger:   logger,
	}
}

// Handler returns the complete route tree. Catalog reads, the public
// snapshot and intake are open; every mutating admin route sits behind
// bearer auth.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Auth
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	mux.Handle("GET /api/auth/me", s.protected(s.handleMe))
	mux.Handle("POST /api/auth/change-password", s.protected(s.handleChangePassword))

	// Categories
	mux.HandleFunc("GET /api/categories", s.handleListCategories)
	mux.Handle("POST /api/categories", s.protected(s.handleCreateCategory))
	mux.Handle("POST /api/categories/reorder", s.protected(s.handleReorderCategories))
	mux.Handle("PUT /api/categories/{id}", s.protected(s.handleUpdateCategory))
	mux.Handle("DELETE /api/categories/{id}", s.protected(s.handleDeleteCategory))

	// Menu items
	mux.HandleFunc("GET /api/menu-items", s.handleListMenuItems)
	mux.HandleFunc("GET /api/menu-items/{id}", s.handleGetMenuItem)
	mux.Handle("POST /api/menu-items", s.protected(s.handleCreateMenuItem))
	mux.Handle("POST /api/menu-items/reorder", s.protected(s.handleReorderMenuItems))
	mux.Handle("PUT /api/menu-items/{id}", s.protected(s.handleUpdateMenuItem))
	mux.Handle("PUT /api/menu-items/{id}/toggle-publish", s.protected(s.handleTogglePublish))
	mux.Handle("DELETE /api/menu-items/{id}", s.protected(s.handleDeleteMenuItem))

	// Settings
	mux.HandleFunc("GET /api/settings", s.handleGetSettings)
	mux.Handle("PUT /api/settings", s.protected(s.handleUpdateSettings))

	// Public snapshot
	mux.HandleFunc("GET /api/public/data", s.handlePublicData)
	mux.HandleFunc("GET /api/public/version", s.handlePublicVersion)

	// Intake
	mux.HandleFunc("POST /api/orders", s.handlePlaceOrder)
	mux.Handle("GET /api/orders", s.protected(s.handleListOrders))
	mux.Handle("PUT /api/orders/{id}/status", s.protected(s.handleUpdateOrderStatus))
	mux.Handle("DELETE /api/orders/{id}", s.protected(s.handleDeleteOrder))
	mux.HandleFunc("POST /api/contact", s.handleSubmitContact)
	mux.Handle("GET /api/contact-messages", s.protected(s.handleListContactMessages))
	mux.Handle("PUT /api/contact-messages/{id}/read", s.protected(s.handleMarkContactRead))
	mux.Handle("DELETE /api/contact-messages/{id}", s.protected(s.handleDeleteContactMessage))

	// Uploads
	mux.Handle("POST /api/upload", s.protected(s.handleUpload))
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(s.uploads.Dir()))))

	// Operational
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}

func (s *Server) protected(h http.HandlerFunc) http.Handler {
	return middleware.RequireAuth(s.jwt, h)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	if err := s.store.Ping(r.Context()); err != nil {
		s.logger.Error("Health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{"status": "unhealthy", "timestamp": timestamp})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "healthy", "timestamp": timestamp})
}
