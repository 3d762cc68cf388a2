// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"identity/internal/domain/entity"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/repository"
	"identity/internal/errors"
	"identity/internal/infra/persistence/model"
)

// identityRepository implements the repository.IdentityRepository interface using GORM.
type identityRepository struct {
	db *gorm.DB
}

// NewIdentityRepository is the constructor for identityRepository.
// It returns the repository as a repository.IdentityRepository interface, adhering to dependency inversion.
func NewIdentityRepository(db *gorm.DB) repository.IdentityRepository {
	return &identityRepository{db: db}
}

// FindByID retrieves a single identity by its unique ID.
func (repo *identityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error) {
	var identityM model.IdentityModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&identityM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrIdentityNotFound.WrapMessage("find identity by id")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find identity by id")
	}

	return toIdentityDomain(&identityM), nil
}

// FindByEmail retrieves a single identity by its email address.
func (repo *identityRepository) FindByEmail(ctx context.Context, email string) (*entity.Identity, error) {
	var identityM model.IdentityModel
	err := repo.db.WithContext(ctx).Where("email = ?", email).First(&identityM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrIdentityNotFound.WrapMessage("find identity by email")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find identity by email")
	}

	return toIdentityDomain(&identityM), nil
}

// Create inserts the identity. The unique index on email rejects a concurrent duplicate.
func (repo *identityRepository) Create(ctx context.Context, identity *entity.Identity) error {
	identityM := fromIdentityDomain(identity)

	if err := repo.db.WithContext(ctx).Create(identityM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrIdentityAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required identity information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create identity")
	}

	identity.CreatedAt = identityM.CreatedAt
	identity.UpdatedAt = identityM.UpdatedAt

	return nil
}

// UpdateRefreshToken overwrites or clears the stored refresh token.
func (repo *identityRepository) UpdateRefreshToken(ctx context.Context, id uuid.UUID, token string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.IdentityModel{}).
		Where("id = ?", id).
		Update("refresh_token", toNullableToken(token))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update refresh token")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrIdentityNotFound.WrapMessage("update refresh token")
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toIdentityDomain converts a GORM IdentityModel to a domain Identity entity.
func toIdentityDomain(data *model.IdentityModel) *entity.Identity {
	if data == nil {
		return nil
	}

	identity := &entity.Identity{
		ID:           data.ID,
		FullName:     data.FullName,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		SensitiveID:  data.SensitiveID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
	if data.RefreshToken != nil {
		identity.RefreshToken = *data.RefreshToken
	}

	return identity
}

// fromIdentityDomain converts a domain Identity entity to a GORM IdentityModel for persistence.
func fromIdentityDomain(data *entity.Identity) *model.IdentityModel {
	if data == nil {
		return nil
	}

	return &model.IdentityModel{
		ID:           data.ID,
		FullName:     data.FullName,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		SensitiveID:  data.SensitiveID,
		RefreshToken: toNullableToken(data.RefreshToken),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// toNullableToken stores a cleared token as NULL.
func toNullableToken(token string) *string {
	if token == "" {
		return nil
	}

	return &token
}
