package services

import (
	"context"
	"time"

	"github.com/tulu-g559/talkheal-backend/internal/core/domain"
	"github.com/tulu-g559/talkheal-backend/internal/dto"
)

// UserSvcFacade defines account management operations.
type UserSvcFacade interface {
	// Register creates a local account; duplicate emails fail with
	// apperrors.ErrDuplicate.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// Authenticate verifies email/password, returning apperrors.ErrUnauthorized
	// on mismatch.
	Authenticate(ctx context.Context, email string, password string) (*domain.User, error)

	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindOrCreateOAuthUser resolves the account for a verified OAuth
	// identity, creating it on first sign-in.
	FindOrCreateOAuthUser(ctx context.Context, provider string, providerUserID string, email string, name string) (*domain.User, error)
}

// TokenSvcFacade issues and validates access and refresh tokens.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateAndStoreRefreshToken mints a refresh token, persists its hash
	// and returns the raw token for the client.
	GenerateAndStoreRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateRefreshToken checks the presented raw token against the stored
	// hash and expiry, returning the owning user when valid.
	ValidateRefreshToken(ctx context.Context, userID string, refreshToken string) (*domain.User, error)
}

// GoogleOAuthSvcFacade drives the Google sign-in flow.
type GoogleOAuthSvcFacade interface {
	// AuthCodeURL builds the consent-screen redirect for the given CSRF state.
	AuthCodeURL(state string) string

	// ExchangeAndVerify swaps the callback code for tokens, verifies the ID
	// token and returns the resolved local user.
	ExchangeAndVerify(ctx context.Context, code string) (*domain.User, error)
}
