package errhandler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/zestagio/reader-launcher/internal/errors"
)

var _ echo.HTTPErrorHandler = Handler{}.Handle

//go:generate options-gen -out-filename=errhandler_options.gen.go -from-struct=Options
type Options struct {
	logger  *zap.Logger `option:"mandatory" validate:"required"`
	verbose bool
}

// Handler turns request errors into plain-text status responses.
// They are reported to the logger only in verbose mode.
type Handler struct {
	lg      *zap.Logger
	verbose bool
}

func New(opts Options) (Handler, error) {
	if err := opts.Validate(); err != nil {
		return Handler{}, fmt.Errorf("validate options: %v", err)
	}
	return Handler{
		lg:      opts.logger,
		verbose: opts.verbose,
	}, nil
}

func (h Handler) Handle(err error, eCtx echo.Context) {
	if eCtx.Response().Committed {
		return
	}

	code, msg := errors.ProcessServerError(err)

	if h.verbose {
		h.lg.Debug("request failed",
			zap.String("path", eCtx.Request().URL.Path),
			zap.Int("code", code),
			zap.Error(err),
		)
	}

	if code == http.StatusInternalServerError {
		msg = http.StatusText(code)
	}

	if eCtx.Request().Method == http.MethodHead {
		_ = eCtx.NoContent(code)
		return
	}
	_ = eCtx.String(code, msg)
}
