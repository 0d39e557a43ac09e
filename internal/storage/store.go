// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/nwatkins/wishlist/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Store defines the interface for user and item persistence.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, a
// hosted document store, etc.) without changing the service layer.
type Store interface {
	// CreateUser persists a new user profile.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email address.
	// Returns (nil, nil) if no such user exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID.
	// Returns (nil, nil) if no such user exists.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// ListUsers returns all user profiles, ordered by creation.
	ListUsers(ctx context.Context) ([]*models.User, error)

	// UpdateUserSettings writes the privacy flag and list password of the
	// user identified by email in a single update.
	UpdateUserSettings(ctx context.Context, email string, privacy bool, listPassword string) error

	// CreateItem persists a new item. The item.ID and item.CreatedAt
	// fields are populated by the store if unset.
	CreateItem(ctx context.Context, item *models.Item) error

	// GetItem retrieves an item by ID. Returns ErrNotFound if absent.
	GetItem(ctx context.Context, id string) (*models.Item, error)

	// ListItemsByOwner returns all items whose owner email matches, in
	// insertion order.
	ListItemsByOwner(ctx context.Context, email string) ([]*models.Item, error)

	// UpdateItemPrice sets a new price on an item by ID.
	UpdateItemPrice(ctx context.Context, id string, price float64) error

	// DeleteItem removes an item by ID.
	DeleteItem(ctx context.Context, id string) error

	// Close releases any resources held by the store.
	Close() error
}
