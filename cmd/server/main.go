package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/boramrl-25/limon-backend/internal/auth"
	"github.com/boramrl-25/limon-backend/internal/bootstrap"
	"github.com/boramrl-25/limon-backend/internal/config"
	"github.com/boramrl-25/limon-backend/internal/middleware"
	"github.com/boramrl-25/limon-backend/internal/server"
	"github.com/boramrl-25/limon-backend/internal/storage"
	"github.com/boramrl-25/limon-backend/internal/storage/mongo"
	"github.com/boramrl-25/limon-backend/internal/storage/sqlite"
	"github.com/boramrl-25/limon-backend/internal/upload"
	"github.com/boramrl-25/limon-backend/pkg/logging"
)

func main() {
	logging.Setup()
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := openStore(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize storage", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "driver", cfg.Storage.Driver)

	if err := bootstrap.Seed(ctx, store, cfg.Seed.AdminUsername, cfg.Seed.AdminPassword, slog.Default()); err != nil {
		slog.Error("Failed to seed initial data", "error", err)
		os.Exit(1)
	}

	uploads, err := upload.NewLocalStore(cfg.Server.UploadDir)
	if err != nil {
		slog.Error("Failed to initialize upload store", "dir", cfg.Server.UploadDir, "error", err)
		os.Exit(1)
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, auth.TokenDuration)
	srv := server.NewServer(store, jwtManager, uploads, slog.Default())

	handler := middleware.Logging(middleware.CORS(middleware.Metrics(srv.Handler())))

	// h2c lets HTTP/2 clients connect without TLS; a reverse proxy
	// terminates TLS in front of this server.
	h2cHandler := h2c.NewHandler(handler, &http2.Server{})

	addr := ":" + cfg.Server.Port
	slog.Info("Restaurant backend starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr))
	if err := http.ListenAndServe(addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func openStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Driver {
	case "sqlite":
		return sqlite.New(cfg.Storage.SQLitePath)
	case "mongo":
		return mongo.New(ctx, cfg.Storage.MongoURL, cfg.Storage.Database)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
