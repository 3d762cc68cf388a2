// Package memory provides an in-process identity repository for development and tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"identity/internal/domain/entity"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/repository"
)

// identityRepository keeps identities in a map guarded by one lock.
// The email check and insert share the write lock, so duplicates cannot race.
type identityRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*entity.Identity
	byEmail map[string]uuid.UUID
	now     func() time.Time
}

// NewIdentityRepository returns an empty in-memory repository.
func NewIdentityRepository() repository.IdentityRepository {
	return &identityRepository{
		byID:    make(map[uuid.UUID]*entity.Identity),
		byEmail: make(map[string]uuid.UUID),
		now:     time.Now,
	}
}

func (repo *identityRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Identity, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	identity, ok := repo.byID[id]
	if !ok {
		return nil, domainerrors.ErrIdentityNotFound.WrapMessage("find identity by id")
	}

	return identity.Clone(), nil
}

func (repo *identityRepository) FindByEmail(_ context.Context, email string) (*entity.Identity, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	id, ok := repo.byEmail[email]
	if !ok {
		return nil, domainerrors.ErrIdentityNotFound.WrapMessage("find identity by email")
	}

	return repo.byID[id].Clone(), nil
}

func (repo *identityRepository) Create(ctx context.Context, identity *entity.Identity) error {
	if err := ctx.Err(); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create identity")
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, taken := repo.byEmail[identity.Email]; taken {
		return domainerrors.ErrIdentityAlreadyExists.WrapMessage("email already exists")
	}
	if _, taken := repo.byID[identity.ID]; taken {
		return domainerrors.NewDatabaseExecuteError(domainerrors.ErrInternalError, "duplicate identity id")
	}

	now := repo.now().UTC()
	if identity.CreatedAt.IsZero() {
		identity.CreatedAt = now
	}
	identity.UpdatedAt = now

	repo.byID[identity.ID] = identity.Clone()
	repo.byEmail[identity.Email] = identity.ID

	return nil
}

func (repo *identityRepository) UpdateRefreshToken(_ context.Context, id uuid.UUID, token string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	identity, ok := repo.byID[id]
	if !ok {
		return domainerrors.ErrIdentityNotFound.WrapMessage("update refresh token")
	}

	identity.RefreshToken = token
	identity.UpdatedAt = repo.now().UTC()

	return nil
}
