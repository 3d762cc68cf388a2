// Package persistence assembles the identity record store on top of a storage driver.
package persistence

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"identity/internal/domain/entity"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/repository"
	"identity/internal/domain/service"
	"identity/internal/errors"
)

// StoreParams defines the dependencies of the identity store.
type StoreParams struct {
	fx.In

	Repo   repository.IdentityRepository
	Hasher service.PasswordHasher
	Cipher service.FieldCipher
}

// identityStore transforms sensitive fields before they reach the repository.
type identityStore struct {
	repo   repository.IdentityRepository
	hasher service.PasswordHasher
	cipher service.FieldCipher
	now    func() time.Time
}

// NewIdentityStore creates the identity record store.
func NewIdentityStore(params StoreParams) repository.IdentityStore {
	return &identityStore{
		repo:   params.Repo,
		hasher: params.Hasher,
		cipher: params.Cipher,
		now:    time.Now,
	}
}

func (s *identityStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *identityStore) FindByEmail(ctx context.Context, email string) (*entity.Identity, error) {
	return s.repo.FindByEmail(ctx, email)
}

// Create hashes the password, encrypts the national ID and inserts the record.
func (s *identityStore) Create(ctx context.Context, fields repository.NewIdentity) (*entity.Identity, error) {
	if strings.TrimSpace(fields.Password) == "" || strings.TrimSpace(fields.SensitiveID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("password and sensitiveId are required")
	}

	passwordHash, err := s.hasher.Hash(fields.Password)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	envelope, err := s.cipher.Encrypt(fields.SensitiveID)
	if err != nil {
		return nil, errors.Wrap(err, "encrypt sensitive id")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage("generate identity id: " + err.Error())
	}

	now := s.now().UTC()
	identity := &entity.Identity{
		ID:           id,
		FullName:     fields.FullName,
		Email:        fields.Email,
		PasswordHash: passwordHash,
		SensitiveID:  envelope,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, identity); err != nil {
		return nil, err
	}

	return identity, nil
}

func (s *identityStore) UpdateRefreshToken(ctx context.Context, id uuid.UUID, token string) error {
	return s.repo.UpdateRefreshToken(ctx, id, token)
}

// RevealSensitiveID is the only path that decrypts the stored national ID.
func (s *identityStore) RevealSensitiveID(_ context.Context, identity *entity.Identity) (string, error) {
	if identity == nil {
		return "", domainerrors.ErrIdentityNotFound.WrapMessage("reveal sensitive id")
	}

	plaintext, err := s.cipher.Decrypt(identity.SensitiveID)
	if err != nil {
		return "", errors.Wrapf(err, "decrypt sensitive id of %s", identity.ID)
	}

	return plaintext, nil
}
