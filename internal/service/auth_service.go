package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/nwatkins/wishlist/internal/auth"
	"github.com/nwatkins/wishlist/internal/models"
	"github.com/nwatkins/wishlist/internal/session"
)

// AuthService drives registration, sign-in, and sign-out. It owns the
// session hub, so every successful sign-in and sign-out is broadcast as an
// identity change event.
type AuthService struct {
	authenticator auth.Authenticator
	users         auth.UserStorage
	jwtManager    *auth.JWTManager
	sessions      *session.Hub
	revocations   *session.Revocations
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, users auth.UserStorage, jwtManager *auth.JWTManager, sessions *session.Hub, revocations *session.Revocations, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		users:         users,
		jwtManager:    jwtManager,
		sessions:      sessions,
		revocations:   revocations,
		logger:        logger,
	}
}

// Register creates a new account. A duplicate email fails with
// auth.ErrEmailExists before any credential is created. Registration does
// not sign the user in.
func (s *AuthService) Register(ctx context.Context, email, password string) (*models.User, error) {
	s.logger.Info("Register request", "email", email)

	user, err := s.authenticator.Register(ctx, email, password)
	if err != nil {
		s.logger.Warn("Registration failed", "email", email, "error", err)
		return nil, err
	}

	s.logger.Info("User registered", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// SignIn authenticates the credentials and issues a session token. The
// identity broadcast to the hub comes from the stored user record, not from
// the caller's input. Every failure collapses to auth.ErrInvalidCredentials.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", auth.ErrInvalidCredentials
	}

	user, err := s.authenticator.Authenticate(ctx, email, password)
	if err != nil {
		s.logger.Warn("Sign-in failed", "email", email)
		return nil, "", auth.ErrInvalidCredentials
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, "", err
	}

	s.sessions.SignedIn(user.Email)
	s.logger.Info("User signed in", "user_id", user.ID, "email", user.Email)
	return user, token, nil
}

// SignOut revokes the session token and broadcasts that nobody is signed
// in. Revocation is keyed on the token's jti and lasts until the token
// would have expired on its own.
func (s *AuthService) SignOut(ctx context.Context, token string) error {
	claims, err := s.jwtManager.Validate(token)
	if err != nil {
		// An invalid token has no live session to end.
		s.sessions.SignedOut()
		return nil
	}

	expiry := time.Now()
	if claims.ExpiresAt != nil {
		expiry = claims.ExpiresAt.Time
	}
	s.revocations.Revoke(claims.ID, expiry)
	s.sessions.SignedOut()

	s.logger.Info("User signed out", "email", claims.Email)
	return nil
}

// CurrentUser loads the profile for an authenticated email.
func (s *AuthService) CurrentUser(ctx context.Context, email string) (*models.User, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, auth.ErrInvalidCredentials
	}
	return user, nil
}
