package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"identity/config"
	apimiddleware "identity/internal/delivery/api/middleware"
	"identity/internal/delivery/api/response"
	"identity/internal/delivery/api/router"
	"identity/internal/delivery/api/router/handler"
	"identity/internal/domain/constants"
	"identity/internal/infra/auth"
	"identity/internal/infra/encryption"
	"identity/internal/infra/persistence"
	"identity/internal/infra/persistence/memory"
	"identity/internal/infra/pubsub"
	"identity/internal/usecase/impl"
)

const (
	testOrigin      = "http://localhost:5173"
	janeSensitiveID = "123456789012"
)

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  *response.MetaInfo  `json:"meta"`
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = "test"
	cfg.Env.ServiceName = "identity-test"
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.HTTP.AllowedOrigins = []string{testOrigin}
	cfg.Storage.Driver = config.StorageDriverMemory
	cfg.SecretKey.Access = "access-secret"
	cfg.SecretKey.Refresh = "refresh-secret"
	cfg.Cipher = config.CipherConfig{Secret: "cipher-secret", Salt: "salt"}
	cfg.Auth = &config.AuthConfig{
		BcryptCost:      bcrypt.MinCost,
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
		Issuer:          "identity-test",
	}
	cfg.Cookie = &config.CookieConfig{}

	return cfg
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := newTestConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cipher, err := encryption.NewAESCipher(cfg)
	require.NoError(t, err)
	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	hasher := auth.NewBcryptHasher(cfg)

	store := persistence.NewIdentityStore(persistence.StoreParams{
		Repo:   memory.NewIdentityRepository(),
		Hasher: hasher,
		Cipher: cipher,
	})
	sessionUC := impl.NewSessionService(impl.SessionServiceParams{
		Store:        store,
		Hasher:       hasher,
		TokenService: tokenService,
		Publisher:    pubsub.NewNoopPublisher(logger),
		Logger:       logger,
	})

	return newEcho(cfg, logger, router.RouterParams{
		SessionHandler: handler.NewSessionHandler(handler.SessionHandlerParams{
			SessionUC:    sessionUC,
			TokenService: tokenService,
			Config:       cfg,
		}),
		HealthHandler:  handler.NewHealthHandler(cfg),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(tokenService, logger),
	})
}

func doRequest(t *testing.T, e *echo.Echo, method, path string, body any, mutate ...func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for _, fn := range mutate {
		fn(req)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func withCookies(cookies ...*http.Cookie) func(*http.Request) {
	return func(req *http.Request) {
		for _, cookie := range cookies {
			req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
		}
	}
}

func withBearer(token string) func(*http.Request) {
	return func(req *http.Request) {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var data map[string]any
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &data))

	return data
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}

func janeRegistration() map[string]string {
	return map[string]string{
		"fullName":    "Jane Doe",
		"email":       "jane@x.com",
		"password":    "secret1",
		"sensitiveId": janeSensitiveID,
	}
}

func janeLogin() map[string]string {
	return map[string]string{"email": "jane@x.com", "password": "secret1"}
}

func assertUnauthenticated(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHENTICATED", env.Error.Code)
	assert.Empty(t, env.Error.Details)
}

func TestSessionLifecycle(t *testing.T) {
	e := newTestEcho(t)

	// Register
	rec := doRequest(t, e, http.MethodPost, "/api/users/register", janeRegistration())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	registered := decodeData(t, rec)
	assert.NotEmpty(t, registered["id"])
	assert.Equal(t, "Jane Doe", registered["fullName"])
	assert.Equal(t, "jane@x.com", registered["email"])
	assert.NotEmpty(t, registered["createdAt"])
	for _, field := range []string{"password", "passwordHash", "refreshToken", "sensitiveId"} {
		assert.NotContains(t, registered, field)
	}
	assert.NotContains(t, rec.Body.String(), janeSensitiveID)

	// Login
	rec = doRequest(t, e, http.MethodPost, "/api/users/login", janeLogin())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	loginData := decodeData(t, rec)
	assert.NotEmpty(t, loginData["accessToken"])
	assert.NotContains(t, loginData, "refreshToken")
	user, ok := loginData["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, registered["id"], user["id"])

	accessCookie := findCookie(rec, constants.AccessTokenCookie)
	refreshCookie := findCookie(rec, constants.RefreshTokenCookie)
	require.NotNil(t, accessCookie)
	require.NotNil(t, refreshCookie)
	assert.Equal(t, loginData["accessToken"], accessCookie.Value)
	for _, cookie := range []*http.Cookie{accessCookie, refreshCookie} {
		assert.True(t, cookie.HttpOnly)
		assert.False(t, cookie.Secure)
		assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
		assert.Equal(t, "/", cookie.Path)
	}
	assert.Equal(t, int((15 * time.Minute).Seconds()), accessCookie.MaxAge)
	assert.Equal(t, int((7 * 24 * time.Hour).Seconds()), refreshCookie.MaxAge)

	// Profile via cookie
	rec = doRequest(t, e, http.MethodGet, "/api/users/profile", nil, withCookies(accessCookie))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	profile := decodeData(t, rec)
	assert.Equal(t, "XXXXXXXX9012", profile["sensitiveIdMasked"])
	assert.NotContains(t, rec.Body.String(), janeSensitiveID)

	// Profile via bearer header
	rec = doRequest(t, e, http.MethodGet, "/api/users/profile", nil, withBearer(accessCookie.Value))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// Refresh
	rec = doRequest(t, e, http.MethodPost, "/api/users/refresh", nil, withCookies(refreshCookie))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	refreshed := decodeData(t, rec)
	assert.NotEmpty(t, refreshed["accessToken"])
	newAccess := findCookie(rec, constants.AccessTokenCookie)
	require.NotNil(t, newAccess)
	assert.Equal(t, refreshed["accessToken"], newAccess.Value)
	assert.Nil(t, findCookie(rec, constants.RefreshTokenCookie))

	// Logout
	rec = doRequest(t, e, http.MethodPost, "/api/users/logout", nil, withCookies(newAccess))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	for _, name := range []string{constants.AccessTokenCookie, constants.RefreshTokenCookie} {
		cleared := findCookie(rec, name)
		require.NotNil(t, cleared, name)
		assert.Empty(t, cleared.Value)
		assert.Less(t, cleared.MaxAge, 0)
	}

	// Old refresh cookie without an access token
	rec = doRequest(t, e, http.MethodGet, "/api/users/profile", nil, withCookies(refreshCookie))
	assertUnauthenticated(t, rec)

	// The cleared refresh token no longer refreshes
	rec = doRequest(t, e, http.MethodPost, "/api/users/refresh", nil, withCookies(refreshCookie))
	assertUnauthenticated(t, rec)
}

func TestRegisterErrors(t *testing.T) {
	e := newTestEcho(t)

	rec := doRequest(t, e, http.MethodPost, "/api/users/register", janeRegistration())
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("duplicate email", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPost, "/api/users/register", janeRegistration())
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		body := janeRegistration()
		delete(body, "password")
		body["fullName"] = "  "

		rec := doRequest(t, e, http.MethodPost, "/api/users/register", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		details, _ := env.Error.Details.(string)
		assert.Contains(t, details, "password is required")
		assert.Contains(t, details, "fullName is required")
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/users/register", strings.NewReader("{"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("body too large", func(t *testing.T) {
		body := janeRegistration()
		body["fullName"] = strings.Repeat("a", 2048)

		rec := doRequest(t, e, http.MethodPost, "/api/users/register", body)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		env := decode(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "PAYLOAD_TOO_LARGE", env.Error.Code)
	})
}

func TestLoginErrors(t *testing.T) {
	e := newTestEcho(t)

	rec := doRequest(t, e, http.MethodPost, "/api/users/register", janeRegistration())
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("wrong password", func(t *testing.T) {
		body := janeLogin()
		body["password"] = "wrong"

		rec := doRequest(t, e, http.MethodPost, "/api/users/login", body)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		env := decode(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "Invalid email or password", env.Error.Message)
		assert.Nil(t, findCookie(rec, constants.AccessTokenCookie))
	})

	t.Run("unknown email shares the message", func(t *testing.T) {
		body := janeLogin()
		body["email"] = "nobody@x.com"

		rec := doRequest(t, e, http.MethodPost, "/api/users/login", body)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		env := decode(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "Invalid email or password", env.Error.Message)
	})

	t.Run("missing password", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodPost, "/api/users/login", map[string]string{"email": "jane@x.com"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	e := newTestEcho(t)

	tests := []struct {
		name   string
		method string
		path   string
		mutate func(*http.Request)
	}{
		{name: "profile without token", method: http.MethodGet, path: "/api/users/profile"},
		{name: "logout without token", method: http.MethodPost, path: "/api/users/logout"},
		{name: "profile with garbage bearer", method: http.MethodGet, path: "/api/users/profile", mutate: withBearer("not-a-jwt")},
		{name: "refresh without token", method: http.MethodPost, path: "/api/users/refresh"},
		{
			name:   "refresh with garbage body token",
			method: http.MethodPost,
			path:   "/api/users/refresh",
			mutate: func(req *http.Request) {
				req.Body = io.NopCloser(strings.NewReader(`{"refreshToken":"garbage"}`))
				req.ContentLength = int64(len(`{"refreshToken":"garbage"}`))
				req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var mutate []func(*http.Request)
			if tt.mutate != nil {
				mutate = append(mutate, tt.mutate)
			}
			rec := doRequest(t, e, tt.method, tt.path, nil, mutate...)
			assertUnauthenticated(t, rec)
		})
	}
}

func TestRefreshFromBody(t *testing.T) {
	e := newTestEcho(t)

	require.Equal(t, http.StatusCreated, doRequest(t, e, http.MethodPost, "/api/users/register", janeRegistration()).Code)
	rec := doRequest(t, e, http.MethodPost, "/api/users/login", janeLogin())
	require.Equal(t, http.StatusOK, rec.Code)
	refreshCookie := findCookie(rec, constants.RefreshTokenCookie)
	require.NotNil(t, refreshCookie)

	rec = doRequest(t, e, http.MethodPost, "/api/users/refresh", map[string]string{"refreshToken": refreshCookie.Value})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotEmpty(t, decodeData(t, rec)["accessToken"])
}

func TestHealthAndInfo(t *testing.T) {
	e := newTestEcho(t)

	rec := doRequest(t, e, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeData(t, rec)["status"])

	rec = doRequest(t, e, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "identity-test", decodeData(t, rec)["service"])

	env := decode(t, rec)
	require.NotNil(t, env.Meta)
	assert.Equal(t, rec.Header().Get("X-Request-Id"), env.Meta.RequestID)
}

func TestRequestIDIsEchoed(t *testing.T) {
	e := newTestEcho(t)

	rec := doRequest(t, e, http.MethodGet, "/health", nil, func(req *http.Request) {
		req.Header.Set("X-Request-Id", "client-request-1")
	})
	assert.Equal(t, "client-request-1", rec.Header().Get("X-Request-Id"))
	assert.Equal(t, "client-request-1", decode(t, rec).Meta.RequestID)
}

func TestCORSAllowsCredentials(t *testing.T) {
	e := newTestEcho(t)

	rec := doRequest(t, e, http.MethodOptions, "/api/users/login", nil, func(req *http.Request) {
		req.Header.Set(echo.HeaderOrigin, testOrigin)
		req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	})
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, testOrigin, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))

	rec = doRequest(t, e, http.MethodOptions, "/api/users/login", nil, func(req *http.Request) {
		req.Header.Set(echo.HeaderOrigin, "https://evil.example")
		req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	})
	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestUnknownRoute(t *testing.T) {
	e := newTestEcho(t)

	rec := doRequest(t, e, http.MethodGet, "/api/users/unknown", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decode(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}
