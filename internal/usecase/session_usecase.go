// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"identity/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterInput carries the registration fields in plaintext.
type RegisterInput struct {
	FullName    string
	Email       string
	Password    string
	SensitiveID string
}

// LoginInput carries the login credentials.
type LoginInput struct {
	Email    string
	Password string
}

// Session is the outcome of a successful login.
type Session struct {
	Identity     *entity.SanitizedIdentity
	AccessToken  string
	RefreshToken string
}

// SessionUsecase orchestrates registration, login, refresh, logout and profile retrieval.
type SessionUsecase interface {
	// Register creates an identity and returns it sanitized.
	Register(ctx context.Context, input *RegisterInput) (*entity.SanitizedIdentity, error)

	// Login verifies credentials, issues both tokens and stores the refresh token.
	// A previous refresh token is overwritten.
	Login(ctx context.Context, input *LoginInput) (*Session, error)

	// Refresh issues a new access token for a refresh token that matches the stored one.
	Refresh(ctx context.Context, refreshToken string) (string, error)

	// Logout clears the stored refresh token.
	Logout(ctx context.Context, identityID uuid.UUID) error

	// GetProfile returns the identity with its national ID masked.
	GetProfile(ctx context.Context, identityID uuid.UUID) (*entity.SanitizedIdentity, error)
}
