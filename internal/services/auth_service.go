package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/google/uuid"

	"github.com/sunseekerapp/sunseeker-backend/internal/models"
	"github.com/sunseekerapp/sunseeker-backend/internal/observability/metrics"
	"github.com/sunseekerapp/sunseeker-backend/internal/store"
	"github.com/sunseekerapp/sunseeker-backend/internal/token"
)

var (
	ErrEmailTaken          = errors.New("user already exists")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrTokenRequired       = errors.New("refresh token required")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrTokenReuse          = errors.New("refresh token reused")
	ErrUserNotFound        = errors.New("user not found")
)

// AuthService runs the session lifecycle: register, login, logout, refresh
// rotation with reuse detection, and password updates.
type AuthService struct {
	store      store.CredentialStore
	tokens     *token.Manager
	refreshTTL time.Duration
}

func NewAuthService(credStore store.CredentialStore, tokens *token.Manager, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		store:      credStore,
		tokens:     tokens,
		refreshTTL: refreshTTL,
	}
}

func (s *AuthService) Register(username, email, password string) (*models.User, error) {
	if _, err := s.store.UserByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:       uuid.New(),
		Username: username,
		Email:    email,
		Password: string(hash),
	}
	if err := s.store.CreateUser(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Login returns the same generic error for an unknown email and a wrong
// password so callers cannot enumerate accounts.
func (s *AuthService) Login(email, password string) (token.Pair, *models.User, error) {
	user, err := s.store.UserByEmail(email)
	if err != nil {
		return token.Pair{}, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return token.Pair{}, nil, ErrInvalidCredentials
	}

	pair, err := s.tokens.Issue(user.ID)
	if err != nil {
		return token.Pair{}, nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	if err := s.store.AppendToken(user.ID, pair.RefreshToken, time.Now().Add(s.refreshTTL)); err != nil {
		return token.Pair{}, nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	metrics.LoginsTotal.Inc()
	metrics.TokenPairsIssued.Inc()
	return pair, user, nil
}

// Logout removes one refresh token from its owner's set. It is idempotent:
// an unverifiable token, an unknown user, or an already-removed token all
// report success so clients can always clear local state. Only a missing
// token is an error.
func (s *AuthService) Logout(refreshToken string) error {
	if refreshToken == "" {
		return ErrTokenRequired
	}
	metrics.LogoutsTotal.Inc()

	userID, err := s.tokens.Verify(refreshToken, token.Refresh)
	if err != nil {
		return nil
	}

	if _, err := s.store.UserByID(userID); err != nil {
		return nil
	}

	if err := s.store.RemoveToken(userID, refreshToken); err != nil {
		return fmt.Errorf("failed to remove refresh token: %w", err)
	}
	return nil
}

// Refresh exchanges a valid, currently-active refresh token for a new pair,
// rotating the old token out of the user's set. A token that verifies but is
// no longer in the set was already consumed (or stolen); every session for
// that user is revoked.
func (s *AuthService) Refresh(refreshToken string) (token.Pair, error) {
	if refreshToken == "" {
		return token.Pair{}, ErrTokenRequired
	}

	userID, err := s.tokens.Verify(refreshToken, token.Refresh)
	if err != nil {
		return token.Pair{}, ErrInvalidRefreshToken
	}

	user, err := s.store.UserByID(userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return token.Pair{}, ErrUserNotFound
		}
		return token.Pair{}, fmt.Errorf("failed to load user: %w", err)
	}

	active, err := s.store.ContainsToken(user.ID, refreshToken)
	if err != nil {
		return token.Pair{}, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if !active {
		return token.Pair{}, s.revokeOnReuse(user.ID)
	}

	pair, err := s.tokens.Issue(user.ID)
	if err != nil {
		return token.Pair{}, fmt.Errorf("failed to issue tokens: %w", err)
	}

	err = s.store.RotateToken(user.ID, refreshToken, pair.RefreshToken, time.Now().Add(s.refreshTTL))
	if errors.Is(err, store.ErrNotFound) {
		// a concurrent refresh consumed the token between the membership
		// check and the rotation
		return token.Pair{}, s.revokeOnReuse(user.ID)
	}
	if err != nil {
		return token.Pair{}, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	metrics.RefreshRotations.Inc()
	metrics.TokenPairsIssued.Inc()
	return pair, nil
}

func (s *AuthService) revokeOnReuse(userID uuid.UUID) error {
	slog.Warn("refresh token reuse detected, revoking all sessions", "user_id", userID.String())
	if err := s.store.RevokeAll(userID); err != nil {
		return fmt.Errorf("failed to revoke sessions: %w", err)
	}
	metrics.ReuseRevocations.Inc()
	return ErrTokenReuse
}

// UpdatePassword rehashes and stores a new password and forcibly logs out
// every session; a refresh token leaked under the old credential dies here.
func (s *AuthService) UpdatePassword(userID uuid.UUID, newPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.store.UpdatePassword(userID, string(hash)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	return s.store.RevokeAll(userID)
}
