package utils

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/codearena/arena-admin/internal/shared/config"
)

const (
	AccessTokenCookie  = "arena_admin_access"
	RefreshTokenCookie = "arena_admin_refresh"
)

// SetAuthCookies stores the console token pair as HttpOnly cookies.
func SetAuthCookies(c *gin.Context, cfg config.CookieConfig, accessToken, refreshToken string, accessMaxAge, refreshMaxAge int) {
	c.SetSameSite(parseSameSite(cfg.SameSite))
	c.SetCookie(AccessTokenCookie, accessToken, accessMaxAge, cfg.Path, cfg.Domain, cfg.Secure, true)
	c.SetCookie(RefreshTokenCookie, refreshToken, refreshMaxAge, cfg.Path, cfg.Domain, cfg.Secure, true)
}

func ClearAuthCookies(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(parseSameSite(cfg.SameSite))
	c.SetCookie(AccessTokenCookie, "", -1, cfg.Path, cfg.Domain, cfg.Secure, true)
	c.SetCookie(RefreshTokenCookie, "", -1, cfg.Path, cfg.Domain, cfg.Secure, true)
}

// TokenFromRequest returns the named cookie, falling back to an
// "Authorization: Bearer" header.
func TokenFromRequest(c *gin.Context, cookieName string) string {
	if token, err := c.Cookie(cookieName); err == nil && token != "" {
		return token
	}
	header := c.GetHeader("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func parseSameSite(s string) http.SameSite {
	switch strings.ToLower(s) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
