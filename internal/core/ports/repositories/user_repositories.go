package repositories

import (
	"context"
	"time"

	"github.com/tulu-g559/talkheal-backend/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID returns apperrors.ErrNotFound for unknown or deleted users.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByProviderDetails looks up an account created via OAuth.
	FindUserByProviderDetails(ctx context.Context, authProvider string, providerUserID string) (*domain.User, error)

	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiry time.Time) error

	ClearRefreshToken(ctx context.Context, userID string) error
}
