package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "identity/internal/delivery/context"
	"identity/internal/domain/constants"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/service"
	"identity/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware verifies the access token of protected routes.
type AuthMiddleware struct {
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(tokenService service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
		logger:       logger,
	}
}

// Authenticate accepts the access token cookie, falling back to an
// Authorization bearer header for non-browser clients.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := accessTokenFromRequest(c)
		if token == "" {
			return domainerrors.ErrInvalidToken
		}

		identityID, err := m.tokenService.VerifyAccessToken(token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Access token rejected", slog.Bool("expired", errors.Is(err, domainerrors.ErrExpiredToken)))

			return errors.WithStack(err)
		}

		deliverycontext.SetIdentityID(c, identityID)

		ctx := c.Request().Context()
		reqLogger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("identity_id", identityID.String()))
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, reqLogger)))

		return next(c)
	}
}

// GetIdentityID returns the identity authenticated by Authenticate.
func GetIdentityID(c echo.Context) (uuid.UUID, error) {
	identityID, ok := deliverycontext.GetIdentityID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrInvalidToken
	}

	return identityID, nil
}

func accessTokenFromRequest(c echo.Context) string {
	if cookie, err := c.Cookie(constants.AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if len(header) > len(bearerPrefix) && strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return strings.TrimSpace(header[len(bearerPrefix):])
	}

	return ""
}
