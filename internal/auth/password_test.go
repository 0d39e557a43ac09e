package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/nwatkins/wishlist/internal/models"
)

// memStorage is an in-memory UserStorage for authenticator tests.
type memStorage struct {
	users map[string]*models.User
}

func newMemStorage() *memStorage {
	return &memStorage{users: make(map[string]*models.User)}
}

func (m *memStorage) CreateUser(_ context.Context, user *models.User) error {
	m.users[user.Email] = user
	return nil
}

func (m *memStorage) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	return m.users[email], nil
}

func (m *memStorage) GetUserByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func TestPasswordAuthenticator(t *testing.T) {
	ctx := context.Background()

	t.Run("register hashes the password", func(t *testing.T) {
		store := newMemStorage()
		a := NewPasswordAuthenticator(store)

		user, err := a.Register(ctx, "alice@example.com", "hunter22")
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		if user.PasswordHash == "hunter22" || user.PasswordHash == "" {
			t.Error("password stored unhashed")
		}
	})

	t.Run("duplicate email is rejected before hashing", func(t *testing.T) {
		store := newMemStorage()
		a := NewPasswordAuthenticator(store)

		if _, err := a.Register(ctx, "alice@example.com", "hunter22"); err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		if _, err := a.Register(ctx, "alice@example.com", "other-pass"); !errors.Is(err, ErrEmailExists) {
			t.Errorf("expected ErrEmailExists, got %v", err)
		}
	})

	t.Run("empty email and weak password are rejected", func(t *testing.T) {
		a := NewPasswordAuthenticator(newMemStorage())
		if _, err := a.Register(ctx, "", "hunter22"); !errors.Is(err, ErrMissingEmail) {
			t.Errorf("expected ErrMissingEmail, got %v", err)
		}
		if _, err := a.Register(ctx, "a@example.com", "abc"); !errors.Is(err, ErrWeakPassword) {
			t.Errorf("expected ErrWeakPassword, got %v", err)
		}
	})

	t.Run("authenticate collapses all failures", func(t *testing.T) {
		store := newMemStorage()
		a := NewPasswordAuthenticator(store)
		if _, err := a.Register(ctx, "alice@example.com", "hunter22"); err != nil {
			t.Fatalf("Register failed: %v", err)
		}

		if _, err := a.Authenticate(ctx, "alice@example.com", "wrongpass"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("wrong password: got %v", err)
		}
		if _, err := a.Authenticate(ctx, "ghost@example.com", "hunter22"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("unknown user: got %v", err)
		}

		user, err := a.Authenticate(ctx, "alice@example.com", "hunter22")
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if user.Email != "alice@example.com" {
			t.Errorf("unexpected user: %+v", user)
		}
	})
}
