package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"identity/internal/domain/entity"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/errors"
)

func newIdentity(email string) *entity.Identity {
	return &entity.Identity{
		ID:           uuid.Must(uuid.NewV7()),
		FullName:     "Jane Doe",
		Email:        email,
		PasswordHash: "hash",
		SensitiveID:  "iv:ct",
	}
}

func TestIdentityRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewIdentityRepository()
	identity := newIdentity("jane@x.com")

	require.NoError(t, repo.Create(ctx, identity))
	assert.False(t, identity.CreatedAt.IsZero())

	byEmail, err := repo.FindByEmail(ctx, "jane@x.com")
	require.NoError(t, err)
	assert.Equal(t, identity.ID, byEmail.ID)

	byID, err := repo.FindByID(ctx, identity.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane@x.com", byID.Email)
}

func TestIdentityRepository_EmailIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	repo := NewIdentityRepository()

	require.NoError(t, repo.Create(ctx, newIdentity("jane@x.com")))
	require.NoError(t, repo.Create(ctx, newIdentity("Jane@x.com")))

	_, err := repo.FindByEmail(ctx, "JANE@X.COM")
	assert.True(t, errors.Is(err, domainerrors.ErrIdentityNotFound))
}

func TestIdentityRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewIdentityRepository()

	require.NoError(t, repo.Create(ctx, newIdentity("jane@x.com")))

	err := repo.Create(ctx, newIdentity("jane@x.com"))
	assert.True(t, errors.Is(err, domainerrors.ErrIdentityAlreadyExists))
}

func TestIdentityRepository_ConcurrentDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewIdentityRepository()

	const attempts = 32
	var succeeded, duplicates atomic.Int32
	var wg sync.WaitGroup

	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()

			err := repo.Create(ctx, newIdentity("race@x.com"))
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, domainerrors.ErrIdentityAlreadyExists):
				duplicates.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(attempts-1), duplicates.Load())
}

func TestIdentityRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewIdentityRepository()
	identity := newIdentity("jane@x.com")
	require.NoError(t, repo.Create(ctx, identity))

	identity.FullName = "changed after create"
	found, err := repo.FindByID(ctx, identity.ID)
	require.NoError(t, err)
	found.Email = "changed after find"

	again, err := repo.FindByID(ctx, identity.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", again.FullName)
	assert.Equal(t, "jane@x.com", again.Email)
}

func TestIdentityRepository_UpdateRefreshToken(t *testing.T) {
	ctx := context.Background()
	repo := NewIdentityRepository()
	identity := newIdentity("jane@x.com")
	require.NoError(t, repo.Create(ctx, identity))

	require.NoError(t, repo.UpdateRefreshToken(ctx, identity.ID, "first"))
	require.NoError(t, repo.UpdateRefreshToken(ctx, identity.ID, "second"))

	found, err := repo.FindByID(ctx, identity.ID)
	require.NoError(t, err)
	assert.Equal(t, "second", found.RefreshToken)

	require.NoError(t, repo.UpdateRefreshToken(ctx, identity.ID, ""))
	found, err = repo.FindByID(ctx, identity.ID)
	require.NoError(t, err)
	assert.False(t, found.HasActiveRefreshToken())

	err = repo.UpdateRefreshToken(ctx, uuid.New(), "token")
	assert.True(t, errors.Is(err, domainerrors.ErrIdentityNotFound))
}
