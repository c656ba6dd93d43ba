package middlewares

import (
	"io/fs"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
)

// NewEscapedPath hands the escaped request path to the next handler and
// restores the decoded one afterwards. echo's static middleware unescapes the
// path it gets, so without this a file named "100%.png" is decoded twice.
func NewEscapedPath() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u := c.Request().URL

			decoded := u.Path
			u.Path = u.EscapedPath()
			defer func() { u.Path = decoded }()

			return next(c)
		}
	}
}

// NewDirectoryRedirect answers 301 to "<dir>/" for a directory requested
// without the trailing slash, so relative links on its index resolve inside it.
func NewDirectoryRedirect(fsys fs.FS) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u := c.Request().URL
			if u.Path == "" || strings.HasSuffix(u.Path, "/") {
				return next(c)
			}

			name := strings.TrimPrefix(path.Clean(u.Path), "/")
			if name == "" || !fs.ValidPath(name) {
				return next(c)
			}

			info, err := fs.Stat(fsys, name)
			if err != nil || !info.IsDir() {
				return next(c)
			}

			// Built from the cleaned name: "//host" must not become a protocol-relative URL.
			target := (&url.URL{Path: "/" + name + "/"}).EscapedPath()
			if u.RawQuery != "" {
				target += "?" + u.RawQuery
			}
			return c.Redirect(http.StatusMovedPermanently, target)
		}
	}
}
