package models

import (
	"database/sql"
	"time"
)

// User represents a user of the application.
// Includes password hash for local accounts and OAuth provider details for
// accounts created via Google sign-in.
type User struct {
	UserID       string `json:"userID"`
	Name         string `json:"name"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`

	AuthProvider   sql.NullString `db:"auth_provider"`
	ProviderUserID sql.NullString `db:"provider_user_id"`

	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"`

	// Refresh Token Fields
	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
}
