// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"identity/internal/domain/entity"

	"github.com/google/uuid"
)

// IdentityRepository stores identity rows exactly as given.
// Drivers return ErrIdentityNotFound for missing rows and
// ErrIdentityAlreadyExists when the email is taken.
type IdentityRepository interface {
	// FindByID retrieves a single identity by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error)

	// FindByEmail retrieves a single identity by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Identity, error)

	// Create persists a new identity. The email uniqueness check and the
	// insert happen as one unit inside the storage layer.
	Create(ctx context.Context, identity *entity.Identity) error

	// UpdateRefreshToken overwrites the stored refresh token. An empty token clears it.
	UpdateRefreshToken(ctx context.Context, id uuid.UUID, token string) error
}
