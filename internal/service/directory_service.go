package service

import (
	"context"
	"log/slog"

	"github.com/nwatkins/wishlist/internal/directory"
	"github.com/nwatkins/wishlist/internal/models"
	"github.com/nwatkins/wishlist/internal/storage"
	"github.com/nwatkins/wishlist/internal/wishlist"
)

// DirectoryService lists known users and resolves visibility of their item
// lists, and manages the viewer's own privacy settings.
type DirectoryService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewDirectoryService creates a new directory service.
func NewDirectoryService(store storage.Store, logger *slog.Logger) *DirectoryService {
	return &DirectoryService{store: store, logger: logger}
}

// DirectoryEntry is a user as shown in the directory: email and whether
// their list is password-gated. List passwords never leave the server.
type DirectoryEntry struct {
	Email   string `json:"email"`
	Privacy bool   `json:"privacy"`
}

// ListUsers returns all known users.
func (s *DirectoryService) ListUsers(ctx context.Context) ([]DirectoryEntry, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]DirectoryEntry, len(users))
	for i, u := range users {
		entries[i] = DirectoryEntry{Email: u.Email, Privacy: u.Privacy}
	}
	return entries, nil
}

// ViewResult is the outcome of a directory selection.
type ViewResult struct {
	State   directory.State
	Message string
	Items   []*models.Item
	Total   float64
}

// View resolves whether viewer may see target's list, fetching the items
// only when the selection lands visible. There is no unlock caching: a
// private list re-runs the password challenge on every call.
func (s *DirectoryService) View(ctx context.Context, viewer, target, password string) (*ViewResult, error) {
	user, err := s.store.GetUserByEmail(ctx, target)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, storage.ErrNotFound
	}

	state, msg := directory.Resolve(viewer, user, password)
	if state != directory.StateVisible {
		s.logger.Info("Selection blocked", "viewer", viewer, "target", target, "reason", msg)
		return &ViewResult{State: state, Message: msg}, nil
	}

	items, err := s.store.ListItemsByOwner(ctx, target)
	if err != nil {
		return nil, err
	}

	return &ViewResult{
		State: state,
		Items: items,
		Total: wishlist.TotalPrice(items),
	}, nil
}

// TogglePrivacy flips the owner's privacy flag and returns the new value.
// Read-modify-write without a concurrency check: the owner is the only
// writer of their own settings, and each toggle issues exactly one write.
func (s *DirectoryService) TogglePrivacy(ctx context.Context, owner string) (bool, error) {
	user, err := s.store.GetUserByEmail(ctx, owner)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, storage.ErrNotFound
	}

	next := !user.Privacy
	if err := s.store.UpdateUserSettings(ctx, owner, next, user.ListPassword); err != nil {
		return false, err
	}

	s.logger.Info("Privacy toggled", "owner", owner, "privacy", next)
	return next, nil
}

// SetListPassword stores the owner's list password verbatim. The value is a
// shared secret gating list visibility between users, not an account
// credential, and viewers' input is compared against it by exact string
// equality.
func (s *DirectoryService) SetListPassword(ctx context.Context, owner, password string) error {
	user, err := s.store.GetUserByEmail(ctx, owner)
	if err != nil {
		return err
	}
	if user == nil {
		return storage.ErrNotFound
	}

	if err := s.store.UpdateUserSettings(ctx, owner, user.Privacy, password); err != nil {
		return err
	}

	s.logger.Info("List password updated", "owner", owner)
	return nil
}
