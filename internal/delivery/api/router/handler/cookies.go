package handler

import (
	"net/http"
	"time"

	"identity/config"
	"identity/internal/domain/constants"

	"github.com/labstack/echo/v4"
)

// sessionCookies writes and clears the token cookies.
type sessionCookies struct {
	secure bool
	domain string
}

func newSessionCookies(cfg *config.Config) sessionCookies {
	cookies := sessionCookies{secure: cfg.SecureCookies()}
	if cfg.Cookie != nil {
		cookies.domain = cfg.Cookie.Domain
	}

	return cookies
}

func (s sessionCookies) set(c echo.Context, name, value string, ttl time.Duration) {
	c.SetCookie(s.cookie(name, value, int(ttl/time.Second)))
}

func (s sessionCookies) clear(c echo.Context, name string) {
	c.SetCookie(s.cookie(name, "", -1))
}

func (s sessionCookies) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   s.domain,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (s sessionCookies) setAccess(c echo.Context, token string, ttl time.Duration) {
	s.set(c, constants.AccessTokenCookie, token, ttl)
}

func (s sessionCookies) setRefresh(c echo.Context, token string, ttl time.Duration) {
	s.set(c, constants.RefreshTokenCookie, token, ttl)
}

func (s sessionCookies) clearAll(c echo.Context) {
	s.clear(c, constants.AccessTokenCookie)
	s.clear(c, constants.RefreshTokenCookie)
}
