// Package config loads server configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything main needs to wire the server.
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Auth    AuthConfig
	Seed    SeedConfig
}

// ServerConfig is the HTTP listener setup.
type ServerConfig struct {
	Port      string
	UploadDir string
}

// StorageConfig selects and configures the storage backend. Driver is
// "mongo" or "sqlite".
type StorageConfig struct {
	Driver     string
	MongoURL   string
	Database   string
	SQLitePath string
}

// AuthConfig holds the token signing secret.
type AuthConfig struct {
	JWTSecret string
}

// SeedConfig is the first-boot admin account.
type SeedConfig struct {
	AdminUsername string
	AdminPassword string
}

// Load reads configuration from the environment; a .env file, when
// present, fills in unset variables. The defaults suit local development
// only, never production.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port:      getEnv("PORT", "8001"),
			UploadDir: getEnv("UPLOAD_DIR", "./uploads"),
		},
		Storage: StorageConfig{
			Driver:     getEnv("STORAGE_DRIVER", "mongo"),
			MongoURL:   getEnv("MONGO_URL", "mongodb://localhost:27017"),
			Database:   getEnv("DB_NAME", "limon_restaurant"),
			SQLitePath: getEnv("SQLITE_PATH", "./data/limon.db"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", "limon-restaurant-secret-key-2024"),
		},
		Seed: SeedConfig{
			AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
			AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
