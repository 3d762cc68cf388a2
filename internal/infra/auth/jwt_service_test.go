package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"identity/config"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/errors"
)

type fakeClock struct {
	current time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.current
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
			Issuer:          "identity-test",
		},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func newTestJWTService(t *testing.T) (*jwtService, *fakeClock) {
	t.Helper()

	clock := &fakeClock{current: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	svc, err := newJWTService(newTestConfig(), clock.Now)
	require.NoError(t, err)

	return svc, clock
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, _ := newTestJWTService(t)
	identityID := uuid.New()

	accessToken, err := svc.IssueAccessToken(identityID)
	require.NoError(t, err)
	refreshToken, err := svc.IssueRefreshToken(identityID)
	require.NoError(t, err)
	assert.NotEqual(t, accessToken, refreshToken)

	got, err := svc.VerifyAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, identityID, got)

	got, err = svc.VerifyRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, identityID, got)
}

func TestJWTService_TokensIssuedTogetherDiffer(t *testing.T) {
	svc, _ := newTestJWTService(t)
	identityID := uuid.New()

	first, err := svc.IssueRefreshToken(identityID)
	require.NoError(t, err)
	second, err := svc.IssueRefreshToken(identityID)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestJWTService_Expiry(t *testing.T) {
	svc, clock := newTestJWTService(t)
	identityID := uuid.New()
	issuedAt := clock.current

	token, err := svc.IssueAccessToken(identityID)
	require.NoError(t, err)

	clock.current = issuedAt.Add(15*time.Minute - time.Second)
	_, err = svc.VerifyAccessToken(token)
	assert.NoError(t, err)

	clock.current = issuedAt.Add(15 * time.Minute)
	_, err = svc.VerifyAccessToken(token)
	assert.True(t, errors.Is(err, domainerrors.ErrExpiredToken))

	clock.current = issuedAt.Add(time.Hour)
	_, err = svc.VerifyAccessToken(token)
	assert.True(t, errors.Is(err, domainerrors.ErrExpiredToken))
}

func TestJWTService_InvalidTokens(t *testing.T) {
	svc, _ := newTestJWTService(t)
	identityID := uuid.New()

	accessToken, err := svc.IssueAccessToken(identityID)
	require.NoError(t, err)
	refreshToken, err := svc.IssueRefreshToken(identityID)
	require.NoError(t, err)

	other := newTestConfig()
	other.SecretKey.Access = "a_completely_different_access_secret"
	otherSvc, err := newJWTService(other, svc.now)
	require.NoError(t, err)
	foreignToken, err := otherSvc.IssueAccessToken(identityID)
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   identityID.String(),
		ExpiresAt: jwt.NewNumericDate(svc.now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		verify func(string) (uuid.UUID, error)
	}{
		{name: "garbage", token: "clearly-not-a-jwt-token-format", verify: svc.VerifyAccessToken},
		{name: "tampered signature", token: tamper(accessToken), verify: svc.VerifyAccessToken},
		{name: "signed with another secret", token: foreignToken, verify: svc.VerifyAccessToken},
		{name: "refresh token used as access", token: refreshToken, verify: svc.VerifyAccessToken},
		{name: "access token used as refresh", token: accessToken, verify: svc.VerifyRefreshToken},
		{name: "unsigned token", token: noneToken, verify: svc.VerifyAccessToken},
		{name: "empty", token: "", verify: svc.VerifyAccessToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.verify(tt.token)
			assert.Equal(t, uuid.Nil, got)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken), "got %v", err)
		})
	}
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	cfg := newTestConfig()
	cfg.SecretKey.Refresh = ""

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_TTLs(t *testing.T) {
	svc, _ := newTestJWTService(t)

	assert.Equal(t, 15*time.Minute, svc.AccessTokenTTL())
	assert.Equal(t, 7*24*time.Hour, svc.RefreshTokenTTL())
}

// tamper swaps one character inside the signature segment.
func tamper(token string) string {
	b := []byte(token)
	i := len(b) - 5
	if b[i] == 'A' {
		b[i] = 'B'
	} else {
		b[i] = 'A'
	}

	return string(b)
}
