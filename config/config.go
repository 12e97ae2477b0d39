package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ak1058/Ai-Recipe-Maker/auth"
)

// Config holds every environment-sourced setting, loaded once at startup.
type Config struct {
	Port string
	Env  string

	DatabaseURL string

	SecretKey     []byte
	Algorithm     string
	TokenLifetime time.Duration

	GeminiAPIKey  string
	YouTubeAPIKey string
}

// GetEnv returns the value of an environment variable or a fallback.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Load reads the configuration from the environment and validates the
// settings the server cannot run without.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          GetEnv("PORT", "8000"),
		Env:           GetEnv("ENV", "development"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SecretKey:     []byte(os.Getenv("SECRET_KEY")),
		Algorithm:     GetEnv("ALGORITHM", "HS256"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		YouTubeAPIKey: os.Getenv("YOUTUBE_API_KEY"),
	}

	if len(cfg.SecretKey) == 0 {
		return nil, fmt.Errorf("SECRET_KEY is not set")
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	if _, err := auth.SigningMethod(cfg.Algorithm); err != nil {
		return nil, fmt.Errorf("ALGORITHM: %w", err)
	}

	minutes := GetEnv("ACCESS_TOKEN_EXPIRE_MINUTES", "60")
	n, err := strconv.Atoi(minutes)
	if err != nil || n <= 0 {
		return nil, fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be a positive integer, got %q", minutes)
	}
	cfg.TokenLifetime = time.Duration(n) * time.Minute

	return cfg, nil
}
