// Package config loads server configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all server settings.
type Config struct {
	// Addr is the listen address.
	Addr string `env:"WISHLIST_ADDR" envDefault:":8080"`

	// DBPath is the SQLite database file.
	DBPath string `env:"WISHLIST_DB_PATH" envDefault:"./data/wishlist.db"`

	// BlobDir is the directory uploaded item photos are written under.
	BlobDir string `env:"WISHLIST_BLOB_DIR" envDefault:"./data/blobs"`

	// PublicBaseURL is the externally reachable URL prefix used when
	// building stored photo URLs.
	PublicBaseURL string `env:"WISHLIST_PUBLIC_URL" envDefault:"http://localhost:8080"`

	// JWTSecret signs session tokens. Leave empty only in development;
	// the server then generates a throwaway secret and sessions do not
	// survive restarts.
	JWTSecret string `env:"WISHLIST_JWT_SECRET"`

	// TokenTTL is how long session tokens stay valid.
	TokenTTL time.Duration `env:"WISHLIST_TOKEN_TTL" envDefault:"24h"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
