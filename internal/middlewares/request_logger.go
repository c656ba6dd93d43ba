package middlewares

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// AccessLog selects what happens to per-request log records.
type AccessLog string

const (
	AccessLogSilent  AccessLog = "silent"
	AccessLogVerbose AccessLog = "verbose"
)

func ParseAccessLog(s string) (AccessLog, error) {
	switch m := AccessLog(s); m {
	case AccessLogSilent, AccessLogVerbose:
		return m, nil
	}
	return "", fmt.Errorf("unknown access log mode %q", s)
}

// NewAccessLogger is the single switch-off point for request logging.
// In silent mode the returned middleware passes requests through untouched.
func NewAccessLogger(mode AccessLog, lg *zap.Logger) echo.MiddlewareFunc {
	if mode == AccessLogVerbose {
		return NewRequestLogger(lg)
	}
	return silent
}

func silent(next echo.HandlerFunc) echo.HandlerFunc {
	return next
}

func NewRequestLogger(lg *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().Method == http.MethodOptions
		},
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			lg := lg.With(
				zap.Duration("latency", v.Latency),
				zap.String("remote_ip", v.RemoteIP),
				zap.String("method", v.Method),
				zap.String("path", v.URIPath),
				zap.String("user_agent", v.UserAgent),
				zap.Int("status", v.Status),
				zap.Int64("size", v.ResponseSize),
			)

			if err := v.Error; err != nil {
				lg = lg.With(zap.Error(err))
			}

			switch s := v.Status; {
			case s >= 500:
				lg.Error("server error")
			case s >= 400:
				lg.Warn("client error")
			default:
				lg.Info("success")
			}

			return nil
		},
		LogLatency:      true,
		LogRemoteIP:     true,
		LogMethod:       true,
		LogURIPath:      true,
		LogUserAgent:    true,
		LogStatus:       true,
		LogResponseSize: true,
		LogError:        true,
		HandleError:     true,
	})
}
