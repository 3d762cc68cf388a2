package handler

import (
	"net/http"
	"strings"

	"identity/config"
	"identity/internal/delivery/api/middleware"
	"identity/internal/delivery/api/response"
	"identity/internal/domain/constants"
	"identity/internal/domain/entity"
	domainerrors "identity/internal/domain/errors"
	"identity/internal/domain/service"
	"identity/internal/errors"
	"identity/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC    usecase.SessionUsecase
	TokenService service.TokenService
	Config       *config.Config
}

// SessionHandler serves registration, login, refresh, logout and profile.
type SessionHandler struct {
	sessionUC    usecase.SessionUsecase
	tokenService service.TokenService
	cookies      sessionCookies
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC:    params.SessionUC,
		tokenService: params.TokenService,
		cookies:      newSessionCookies(params.Config),
	}
}

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	FullName    string `json:"fullName" validate:"notblank,max=255"`
	Email       string `json:"email" validate:"required,email,max=255"`
	Password    string `json:"password" validate:"notblank"`
	SensitiveID string `json:"sensitiveId" validate:"notblank,max=64"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"notblank"`
	Password string `json:"password" validate:"notblank"`
}

// RefreshRequest optionally carries the refresh token for clients without cookies.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// LoginResponse is the body returned on login.
type LoginResponse struct {
	User        *entity.SanitizedIdentity `json:"user"`
	AccessToken string                    `json:"accessToken"`
}

// AccessTokenResponse is the body returned on refresh.
type AccessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// LogoutResponse is the body returned on logout.
type LogoutResponse struct {
	LoggedOut bool `json:"loggedOut"`
}

// Register creates an identity.
func (h *SessionHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	identity, err := h.sessionUC.Register(c.Request().Context(), &usecase.RegisterInput{
		FullName:    strings.TrimSpace(req.FullName),
		Email:       strings.TrimSpace(req.Email),
		Password:    req.Password,
		SensitiveID: strings.TrimSpace(req.SensitiveID),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, identity)
}

// Login verifies credentials and starts a session.
func (h *SessionHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	session, err := h.sessionUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.setAccess(c, session.AccessToken, h.tokenService.AccessTokenTTL())
	h.cookies.setRefresh(c, session.RefreshToken, h.tokenService.RefreshTokenTTL())

	return response.Success(c, http.StatusOK, &LoginResponse{
		User:        session.Identity,
		AccessToken: session.AccessToken,
	})
}

// Refresh issues a new access token from the refresh token.
func (h *SessionHandler) Refresh(c echo.Context) error {
	refreshToken := ""
	if cookie, err := c.Cookie(constants.RefreshTokenCookie); err == nil {
		refreshToken = cookie.Value
	}
	if refreshToken == "" {
		var req RefreshRequest
		if err := c.Bind(&req); err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("invalid request body")
		}
		refreshToken = strings.TrimSpace(req.RefreshToken)
	}
	if refreshToken == "" {
		return domainerrors.ErrInvalidToken
	}

	accessToken, err := h.sessionUC.Refresh(c.Request().Context(), refreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	h.cookies.setAccess(c, accessToken, h.tokenService.AccessTokenTTL())

	return response.Success(c, http.StatusOK, &AccessTokenResponse{AccessToken: accessToken})
}

// Logout ends the session of the authenticated identity.
func (h *SessionHandler) Logout(c echo.Context) error {
	identityID, err := middleware.GetIdentityID(c)
	if err != nil {
		return err
	}

	if err := h.sessionUC.Logout(c.Request().Context(), identityID); err != nil {
		return errors.WithStack(err)
	}

	h.cookies.clearAll(c)

	return response.Success(c, http.StatusOK, &LogoutResponse{LoggedOut: true})
}

// Profile returns the authenticated identity with its national ID masked.
func (h *SessionHandler) Profile(c echo.Context) error {
	identityID, err := middleware.GetIdentityID(c)
	if err != nil {
		return err
	}

	identity, err := h.sessionUC.GetProfile(c.Request().Context(), identityID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, identity)
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
