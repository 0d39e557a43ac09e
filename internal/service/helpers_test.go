package service

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/nwatkins/wishlist/internal/models"
	"github.com/nwatkins/wishlist/internal/storage"
	"github.com/nwatkins/wishlist/internal/storage/sqlite"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T) storage.Store {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "wishlist-service-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

// countingStore wraps a Store and counts item fetches and settings writes,
// so tests can assert which storage calls a code path performed.
type countingStore struct {
	storage.Store
	listCalls     int
	settingsCalls int
}

func (c *countingStore) ListItemsByOwner(ctx context.Context, email string) ([]*models.Item, error) {
	c.listCalls++
	return c.Store.ListItemsByOwner(ctx, email)
}

func (c *countingStore) UpdateUserSettings(ctx context.Context, email string, privacy bool, listPassword string) error {
	c.settingsCalls++
	return c.Store.UpdateUserSettings(ctx, email, privacy, listPassword)
}
