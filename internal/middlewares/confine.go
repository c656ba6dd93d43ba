package middlewares

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	internalerrors "github.com/zestagio/reader-launcher/internal/errors"
)

var errPathEscapesRoot = errors.New("path escapes root")

// NewRootConfinement rejects, as not found, any request whose decoded path
// could resolve outside the served root.
func NewRootConfinement() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !IsConfined(c.Request().URL) {
				return internalerrors.NewServerError(
					http.StatusNotFound,
					http.StatusText(http.StatusNotFound),
					errPathEscapesRoot,
				)
			}
			return next(c)
		}
	}
}

// IsConfined reports whether the URL path, decoded, has no ".." segment,
// no NUL byte and no backslash.
func IsConfined(u *url.URL) bool {
	p := u.Path
	if strings.ContainsAny(p, "\x00\\") {
		return false
	}

	for _, segment := range strings.Split(p, "/") {
		if segment == ".." {
			return false
		}
	}
	return true
}
