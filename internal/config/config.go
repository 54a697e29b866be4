package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	UploadDir   string
	AdminToken  string
}

func Load() (Config, error) {
	// .env is a convenience for development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL required")
	}

	adminToken := os.Getenv("ADMIN_TOKEN")
	if adminToken == "" {
		return Config{}, fmt.Errorf("ADMIN_TOKEN required")
	}

	return Config{
		Port:        getEnv("APP_PORT", "8080"),
		DatabaseURL: databaseURL,
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
		AdminToken:  adminToken,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
