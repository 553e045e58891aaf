package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mrmoe28/solarscheduler/internal/auth"
	"github.com/mrmoe28/solarscheduler/internal/domain"
)

// ErrUnauthorized is returned when a token is missing, expired, malformed, or
// has been revoked by sign-out.
var ErrUnauthorized = errors.New("unauthorized")

// userRepository is the subset of store.UserStore that AccountService
// requires.
type userRepository interface {
	Create(ctx context.Context, id, email, name string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, in *domain.ProfileInput) error
	Delete(ctx context.Context, id string) error
}

// sessionRepository is the subset of store.SessionStore that AccountService
// requires.
type sessionRepository interface {
	Create(ctx context.Context, id, userID string, expiresAt time.Time) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

// statsRepository is the subset of store.JobStore that AccountService
// requires.
type statsRepository interface {
	Stats(ctx context.Context) (*domain.JobStats, *domain.EquipmentStats, error)
}

type AccountService struct {
	users    userRepository
	sessions sessionRepository
	stats    statsRepository
	tokens   *auth.TokenManager
	logger   *slog.Logger
}

func NewAccountService(
	users userRepository,
	sessions sessionRepository,
	stats statsRepository,
	tokens *auth.TokenManager,
	logger *slog.Logger,
) *AccountService {
	return &AccountService{
		users:    users,
		sessions: sessions,
		stats:    stats,
		tokens:   tokens,
		logger:   logger,
	}
}

// SignIn resolves the user by email, creating the account on first sign-in,
// and returns the user with a signed bearer token.
func (s *AccountService) SignIn(ctx context.Context, email, name string) (*domain.User, string, error) {
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if email == "" {
		return nil, "", domain.ErrEmailRequired
	}
	if !domain.ValidEmail(email) {
		return nil, "", domain.ErrInvalidEmail
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		user, err = s.users.Create(ctx, uuid.NewString(), email, name)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create user: %w", err)
		}
		s.logger.Info("user created", "user_id", user.ID)
	}

	token, sessionID, expiresAt, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	if err := s.sessions.Create(ctx, sessionID, user.ID, expiresAt); err != nil {
		return nil, "", fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.Info("user signed in", "user_id", user.ID)
	return user, token, nil
}

// Authenticate verifies the bearer token and confirms the session it names
// has not been revoked. Returns the signed-in user.
func (s *AccountService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	session, err := s.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil || time.Now().After(session.ExpiresAt) {
		return nil, ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrUnauthorized
	}

	return user, nil
}

// SignOut revokes the session named by the token. An invalid or already
// revoked token is a silent no-op.
func (s *AccountService) SignOut(ctx context.Context, token string) error {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil
	}
	return s.sessions.Delete(ctx, claims.SessionID)
}

// DeleteAccount removes the user; sessions cascade with the user row.
func (s *AccountService) DeleteAccount(ctx context.Context, userID string) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	s.logger.Info("account deleted", "user_id", userID)
	return nil
}

// UpdateProfile validates and persists the editable profile fields, returning
// the updated user.
func (s *AccountService) UpdateProfile(ctx context.Context, userID string, in domain.ProfileInput) (*domain.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	in.Normalize()

	if err := s.users.UpdateProfile(ctx, userID, &in); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return s.users.GetByID(ctx, userID)
}

// UserStatistics returns job and equipment aggregates for dashboard views.
func (s *AccountService) UserStatistics(ctx context.Context) (*domain.JobStats, *domain.EquipmentStats, error) {
	return s.stats.Stats(ctx)
}
