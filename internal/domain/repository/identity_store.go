package repository

import (
	"context"

	"identity/internal/domain/entity"

	"github.com/google/uuid"
)

// NewIdentity carries the plaintext registration fields.
type NewIdentity struct {
	FullName    string
	Email       string
	Password    string
	SensitiveID string
}

// IdentityStore is the identity record boundary. It hashes the password and
// encrypts the national ID on the way in, and never decrypts unless asked.
type IdentityStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error)
	FindByEmail(ctx context.Context, email string) (*entity.Identity, error)

	// Create fails with ErrIdentityAlreadyExists when the email is taken.
	Create(ctx context.Context, fields NewIdentity) (*entity.Identity, error)

	// UpdateRefreshToken overwrites the stored refresh token. An empty token clears it.
	UpdateRefreshToken(ctx context.Context, id uuid.UUID, token string) error

	// RevealSensitiveID decrypts the stored national ID of identity.
	RevealSensitiveID(ctx context.Context, identity *entity.Identity) (string, error)
}
