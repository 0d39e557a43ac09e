package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nwatkins/wishlist/internal/blob"
	"github.com/nwatkins/wishlist/internal/models"
	"github.com/nwatkins/wishlist/internal/storage"
	"github.com/nwatkins/wishlist/internal/wishlist"
)

var (
	// ErrValidationSkipped marks an add-item call that was dropped because
	// a required field was missing. It is a quiet no-op, not a user-facing
	// failure: the list simply does not change.
	ErrValidationSkipped = errors.New("item skipped: missing required fields")

	// ErrNotOwner marks a mutation attempted on an item the caller does
	// not own.
	ErrNotOwner = errors.New("item belongs to another user")
)

// ItemService manages wishlist items on behalf of their owners. Delete and
// price updates verify ownership before touching storage; an item's owner
// is fixed at creation and is the only account allowed to mutate it.
type ItemService struct {
	store  storage.Store
	blobs  blob.Store
	logger *slog.Logger
}

// NewItemService creates a new item service.
func NewItemService(store storage.Store, blobs blob.Store, logger *slog.Logger) *ItemService {
	return &ItemService{store: store, blobs: blobs, logger: logger}
}

// Photo is an uploaded image attached to a new item.
type Photo struct {
	Name string
	Data []byte
}

// ListOwnItems returns the caller's items in insertion order.
func (s *ItemService) ListOwnItems(ctx context.Context, owner string) ([]*models.Item, error) {
	if owner == "" {
		return nil, ErrValidationSkipped
	}
	return s.store.ListItemsByOwner(ctx, owner)
}

// AddItem creates an item owned by owner. Missing owner, empty name, or a
// zero price skips the call entirely (ErrValidationSkipped) — the original
// product silently dropped such submissions and callers rely on that, so
// the precondition is deliberately no stricter than this.
//
// If a photo is supplied it is uploaded first and the resulting public URL
// is stored on the item.
func (s *ItemService) AddItem(ctx context.Context, owner, name string, price float64, priority bool, link string, photo *Photo) (*models.Item, error) {
	if owner == "" || name == "" || price == 0 {
		s.logger.Debug("AddItem skipped", "owner", owner, "name", name, "price", price)
		return nil, ErrValidationSkipped
	}

	item := &models.Item{
		Name:      name,
		Price:     price,
		Priority:  priority,
		UserEmail: owner,
		Link:      link,
	}

	if photo != nil && len(photo.Data) > 0 {
		url, err := s.blobs.Put(ctx, photo.Name, photo.Data)
		if err != nil {
			s.logger.Error("Photo upload failed", "owner", owner, "file", photo.Name, "error", err)
			return nil, err
		}
		item.ImageURL = url
	}

	if err := s.store.CreateItem(ctx, item); err != nil {
		s.logger.Error("AddItem failed", "owner", owner, "error", err)
		return nil, err
	}

	s.logger.Info("Item added", "item_id", item.ID, "owner", owner, "name", name)
	return item, nil
}

// DeleteItem removes an item after verifying the caller owns it.
func (s *ItemService) DeleteItem(ctx context.Context, caller, id string) error {
	if err := s.checkOwner(ctx, caller, id); err != nil {
		return err
	}
	if err := s.store.DeleteItem(ctx, id); err != nil {
		s.logger.Error("DeleteItem failed", "item_id", id, "error", err)
		return err
	}
	s.logger.Info("Item deleted", "item_id", id, "owner", caller)
	return nil
}

// UpdateItemPrice sets a new price on an item after verifying ownership.
func (s *ItemService) UpdateItemPrice(ctx context.Context, caller, id string, price float64) error {
	if err := s.checkOwner(ctx, caller, id); err != nil {
		return err
	}
	if err := s.store.UpdateItemPrice(ctx, id, price); err != nil {
		s.logger.Error("UpdateItemPrice failed", "item_id", id, "error", err)
		return err
	}
	s.logger.Info("Item price updated", "item_id", id, "owner", caller, "price", price)
	return nil
}

// TotalPrice sums the given items' prices, rounded for display.
func (s *ItemService) TotalPrice(items []*models.Item) float64 {
	return wishlist.TotalPrice(items)
}

// checkOwner loads the item and confirms the caller is its owner.
func (s *ItemService) checkOwner(ctx context.Context, caller, id string) error {
	item, err := s.store.GetItem(ctx, id)
	if err != nil {
		return err
	}
	if item.UserEmail != caller {
		s.logger.Warn("Ownership check failed", "item_id", id, "caller", caller, "owner", item.UserEmail)
		return ErrNotOwner
	}
	return nil
}
