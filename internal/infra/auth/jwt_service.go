package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"identity/config"
	"identity/internal/domain/entity"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/service"
	"identity/internal/errors"
)

// claims are the registered claims plus the token kind.
type claims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  []byte        // Secret key for signing access tokens.
	refreshSecret []byte        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
	issuer        string
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	return newJWTService(cfg, time.Now)
}

func newJWTService(cfg *config.Config, now func() time.Time) (*jwtService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.Auth == nil || cfg.Auth.AccessTokenTTL <= 0 || cfg.Auth.RefreshTokenTTL <= 0 {
		return nil, errors.New("token lifetimes must be positive")
	}

	return &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     cfg.Auth.AccessTokenTTL,
		refreshTTL:    cfg.Auth.RefreshTokenTTL,
		issuer:        cfg.Auth.Issuer,
		now:           now,
	}, nil
}

func (s *jwtService) IssueAccessToken(identityID uuid.UUID) (string, error) {
	return s.issue(identityID, entity.TokenKindAccess, s.accessTTL, s.accessSecret)
}

func (s *jwtService) IssueRefreshToken(identityID uuid.UUID) (string, error) {
	return s.issue(identityID, entity.TokenKindRefresh, s.refreshTTL, s.refreshSecret)
}

func (s *jwtService) VerifyAccessToken(token string) (uuid.UUID, error) {
	return s.verify(token, entity.TokenKindAccess, s.accessSecret)
}

func (s *jwtService) VerifyRefreshToken(token string) (uuid.UUID, error) {
	return s.verify(token, entity.TokenKindRefresh, s.refreshSecret)
}

func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}

func (s *jwtService) RefreshTokenTTL() time.Duration {
	return s.refreshTTL
}

// issue signs an HS256 token. The jti keeps two tokens issued in the same second distinct.
func (s *jwtService) issue(identityID uuid.UUID, kind entity.TokenKind, ttl time.Duration, secret []byte) (string, error) {
	issuedAt := s.now()
	tokenClaims := claims{
		Type: kind.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identityID.String(),
			Issuer:    s.issuer,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims).SignedString(secret)
	if err != nil {
		return "", domainerrors.ErrTokenIssueFailed.WrapMessage(err.Error())
	}

	return signed, nil
}

// verify checks signature, expiry and kind. A token is already expired at exp itself.
func (s *jwtService) verify(token string, kind entity.TokenKind, secret []byte) (uuid.UUID, error) {
	parsed := &claims{}
	_, err := jwt.ParseWithClaims(token, parsed, func(*jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return uuid.Nil, domainerrors.ErrExpiredToken.WrapMessage("token expired")
	}
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidToken.WrapMessage(err.Error())
	}
	if parsed.Type != kind.String() {
		return uuid.Nil, domainerrors.ErrInvalidToken.WrapMessage("unexpected token type")
	}

	identityID, err := uuid.Parse(parsed.Subject)
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidToken.WrapMessage("invalid subject")
	}

	return identityID, nil
}
