package handler

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	flashCookie = "flash"
	flashMaxAge = 60
	// flashMaxBytes bounds the escaped cookie value well below the 4 KB
	// browsers accept for a whole cookie
	flashMaxBytes = 3000
	flashEllipsis = "..."
)

// SetFlash stores a one-shot message shown on the next rendered page.
// Long messages are cut so the cookie is never dropped by the browser.
func SetFlash(c echo.Context, message string) {
	c.SetCookie(&http.Cookie{
		Name:     flashCookie,
		Value:    escapeFlash(message),
		Path:     "/",
		MaxAge:   flashMaxAge,
		Expires:  time.Now().Add(flashMaxAge * time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// escapeFlash query-escapes message, truncating it on a rune boundary when the
// escaped form exceeds flashMaxBytes
func escapeFlash(message string) string {
	escaped := url.QueryEscape(message)
	if len(escaped) <= flashMaxBytes {
		return escaped
	}

	budget := flashMaxBytes - len(url.QueryEscape(flashEllipsis))
	var sb strings.Builder
	for _, r := range message {
		part := url.QueryEscape(string(r))
		if sb.Len()+len(part) > budget {
			break
		}
		sb.WriteString(part)
	}
	sb.WriteString(url.QueryEscape(flashEllipsis))
	return sb.String()
}

// PopFlash returns the pending messages and clears them
func PopFlash(c echo.Context) []string {
	cookie, err := c.Cookie(flashCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}
	c.SetCookie(&http.Cookie{
		Name:   flashCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	message, err := url.QueryUnescape(cookie.Value)
	if err != nil || message == "" {
		return nil
	}
	return []string{message}
}

// redirectWithFlash sets a flash message and redirects with 302
func redirectWithFlash(c echo.Context, target, message string) error {
	SetFlash(c, message)
	return c.Redirect(http.StatusFound, target)
}
