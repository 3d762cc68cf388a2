package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenService issues and verifies signed session tokens.
// Access and refresh tokens are signed with distinct secrets.
type TokenService interface {
	// IssueAccessToken creates a short-lived token for the identity.
	IssueAccessToken(identityID uuid.UUID) (string, error)

	// IssueRefreshToken creates a long-lived token for the identity.
	IssueRefreshToken(identityID uuid.UUID) (string, error)

	// VerifyAccessToken returns the identity the token belongs to.
	// It fails with ErrExpiredToken past expiry and ErrInvalidToken otherwise.
	VerifyAccessToken(token string) (uuid.UUID, error)

	// VerifyRefreshToken is VerifyAccessToken for refresh tokens.
	VerifyRefreshToken(token string) (uuid.UUID, error)

	AccessTokenTTL() time.Duration
	RefreshTokenTTL() time.Duration
}
