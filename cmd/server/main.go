package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/google/uuid"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/nwatkins/wishlist/internal/api"
	"github.com/nwatkins/wishlist/internal/auth"
	"github.com/nwatkins/wishlist/internal/blob/local"
	"github.com/nwatkins/wishlist/internal/config"
	"github.com/nwatkins/wishlist/internal/service"
	"github.com/nwatkins/wishlist/internal/session"
	"github.com/nwatkins/wishlist/internal/storage/sqlite"
	"github.com/nwatkins/wishlist/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	secret := cfg.JWTSecret
	if secret == "" {
		secret = uuid.New().String()
		slog.Warn("WISHLIST_JWT_SECRET not set; sessions will not survive a restart")
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	blobs, err := local.New(cfg.BlobDir, cfg.PublicBaseURL)
	if err != nil {
		slog.Error("Failed to initialize blob storage", "error", err)
		os.Exit(1)
	}
	slog.Info("Blob storage initialized", "dir", blobs.Dir())

	jwtManager := auth.NewJWTManager(secret, cfg.TokenTTL)
	sessions := session.NewHub()
	revocations := session.NewRevocations()
	authenticator := auth.NewPasswordAuthenticator(store)

	// The hub is the one place identity changes are announced.
	unsubscribe := sessions.Subscribe(func(identity string) {
		if identity == "" {
			slog.Debug("Auth state changed", "signed_in", false)
			return
		}
		slog.Debug("Auth state changed", "signed_in", true, "identity", identity)
	})
	defer unsubscribe()

	logger := slog.Default()
	server := api.NewServer(
		service.NewAuthService(authenticator, store, jwtManager, sessions, revocations, logger),
		service.NewItemService(store, blobs, logger),
		service.NewDirectoryService(store, logger),
	)

	router := server.Router(jwtManager, revocations, blobs.Dir())

	// h2c allows HTTP/2 without TLS for local and proxied deployments.
	handler := h2c.NewHandler(router, &http2.Server{})

	slog.Info("Server starting", "address", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
