package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nwatkins/wishlist/internal/models"
	"github.com/nwatkins/wishlist/internal/storage"
	"github.com/nwatkins/wishlist/internal/wishlist"
)

// CreateItem persists a new item, generating ID and CreatedAt if unset.
func (s *SQLiteStore) CreateItem(ctx context.Context, item *models.Item) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.CreatedAt == 0 {
		item.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO items (id, name, price, priority, user_email, link, image_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		item.ID,
		item.Name,
		item.Price,
		item.Priority,
		item.UserEmail,
		item.Link,
		item.ImageURL,
		item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}

	return nil
}

// GetItem retrieves an item by ID.
func (s *SQLiteStore) GetItem(ctx context.Context, id string) (*models.Item, error) {
	item, err := scanItem(s.db.QueryRowContext(ctx, `
		SELECT id, name, price, priority, user_email, link, image_url, created_at
		FROM items
		WHERE id = ?
	`, id))
	if err == sql.ErrNoRows {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return item, nil
}

// ListItemsByOwner returns all items owned by the given email, in insertion
// order (rowid order; no other ordering is guaranteed or implied).
func (s *SQLiteStore) ListItemsByOwner(ctx context.Context, email string) ([]*models.Item, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, price, priority, user_email, link, image_url, created_at
		FROM items
		WHERE user_email = ?
		ORDER BY rowid
	`, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var items []*models.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	return items, nil
}

// UpdateItemPrice sets a new price on an item.
func (s *SQLiteStore) UpdateItemPrice(ctx context.Context, id string, price float64) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE items SET price = ? WHERE id = ?", price, id)
	if err != nil {
		return fmt.Errorf("failed to update item price: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// DeleteItem removes an item by ID.
func (s *SQLiteStore) DeleteItem(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanItem reads one item row. The price column is scanned as a raw value
// and normalized, since legacy rows can hold text or null prices.
func scanItem(row rowScanner) (*models.Item, error) {
	item := &models.Item{}
	var rawPrice any
	if err := row.Scan(
		&item.ID,
		&item.Name,
		&rawPrice,
		&item.Priority,
		&item.UserEmail,
		&item.Link,
		&item.ImageURL,
		&item.CreatedAt,
	); err != nil {
		return nil, err
	}
	item.Price = wishlist.CoercePrice(rawPrice)
	return item, nil
}
