package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"identity/config"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/errors"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	password := "secret1"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// A fresh salt per call
	again, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEqual(t, hash, again)
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	password := "StrongPass123!"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	ok, err := hasher.Check(password, hash)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Check("WrongPassword123!", hash)
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = hasher.Check("", hash)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_CheckMalformedHash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	ok, err := hasher.Check("secret1", "not-a-bcrypt-hash")
	assert.False(t, ok)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestBcryptHasher_PasswordTooLong(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	_, err := hasher.Hash(strings.Repeat("a", 73))
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestBcryptHasher_CostFromConfig(t *testing.T) {
	tests := []struct {
		name string
		cost int
		want int
	}{
		{name: "configured", cost: 11, want: 11},
		{name: "zero falls back to default", cost: 0, want: bcrypt.DefaultCost},
		{name: "below minimum", cost: 2, want: bcrypt.MinCost},
		{name: "above maximum", cost: 99, want: bcrypt.MaxCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: tt.cost}})

			got, ok := hasher.(*bcryptHasher)
			require.True(t, ok)
			assert.Equal(t, tt.want, got.cost)
		})
	}
}
