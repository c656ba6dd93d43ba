package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	stdlog "log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	echomdlwr "github.com/labstack/echo/v4/middleware"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	internalerrors "github.com/zestagio/reader-launcher/internal/errors"
	"github.com/zestagio/reader-launcher/internal/middlewares"
	"github.com/zestagio/reader-launcher/internal/server/errhandler"
	_ "github.com/zestagio/reader-launcher/internal/validator"
)

const (
	indexFile = "index.html"

	readHeaderTimeout = time.Second
	shutdownTimeout   = 3 * time.Second
)

var errAlreadyStarted = errors.New("server already started")

//go:generate options-gen -out-filename=server_options.gen.go -from-struct=Options
type Options struct {
	logger           *zap.Logger           `option:"mandatory" validate:"required"`
	host             string                `option:"mandatory" validate:"required,loopback"`
	port             int                   `option:"mandatory" validate:"min=0,max=65535"`
	root             string                `option:"mandatory" validate:"required"`
	accessLog        middlewares.AccessLog `validate:"omitempty,oneof=silent verbose"`
	directoryListing bool
	onReady          func(url string)
}

// Server serves a single directory tree read-only on a loopback address.
type Server struct {
	lg      *zap.Logger
	host    string
	port    int
	root    string
	onReady func(url string)

	srv     *http.Server
	started atomic.Bool
}

func New(opts Options) (*Server, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}

	root, err := ResolveRoot(opts.root)
	if err != nil {
		return nil, err
	}

	accessLog := opts.accessLog
	if accessLog == "" {
		accessLog = middlewares.AccessLogSilent
	}
	verbose := accessLog == middlewares.AccessLogVerbose

	errHandler, err := errhandler.New(errhandler.NewOptions(opts.logger, errhandler.WithVerbose(verbose)))
	if err != nil {
		return nil, fmt.Errorf("create error handler: %v", err)
	}

	fsys := os.DirFS(root)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errHandler.Handle
	e.Use(
		middlewares.NewAccessLogger(accessLog, opts.logger),
		middlewares.NewRecovery(opts.logger),
		readOnly,
		middlewares.NewRootConfinement(),
		middlewares.NewDirectoryRedirect(fsys),
		middlewares.NewEscapedPath(),
		echomdlwr.StaticWithConfig(echomdlwr.StaticConfig{
			Root:       ".",
			Index:      indexFile,
			Browse:     opts.directoryListing,
			Filesystem: http.FS(fsys),
		}),
	)

	errorLog := stdlog.New(io.Discard, "", 0)
	if verbose {
		errorLog = zap.NewStdLog(opts.logger)
	}

	return &Server{
		lg:      opts.logger,
		host:    opts.host,
		port:    opts.port,
		root:    root,
		onReady: opts.onReady,
		srv: &http.Server{
			Handler:           e,
			ReadHeaderTimeout: readHeaderTimeout,
			ErrorLog:          errorLog,
		},
	}, nil
}

// Root is the absolute path of the served directory.
func (s *Server) Root() string {
	return s.root
}

// Run binds the listening socket once and serves until ctx is done.
// The socket is closed when Run returns.
func (s *Server) Run(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return errAlreadyStarted
	}

	ln, err := net.Listen("tcp", net.JoinHostPort(s.host, strconv.Itoa(s.port)))
	if err != nil {
		return internalerrors.NewBindFailedError(s.host, s.port, err)
	}

	addr := ln.Addr().String()
	s.lg.Info("listen and serve", zap.String("addr", addr), zap.String("root", s.root))

	if s.onReady != nil {
		s.onReady("http://" + addr + "/")
	}

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		<-ctx.Done()

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.srv.Shutdown(ctx); err != nil { //nolint:contextcheck // graceful shutdown with new context
			s.lg.Warn("graceful shutdown", zap.Error(err))
			return s.srv.Close()
		}
		return nil
	})

	eg.Go(func() error {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %v", err)
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		return err
	}

	s.lg.Info("server stopped", zap.String("addr", addr))
	return nil
}

// ResolveRoot returns the absolute path of root if it is an existing directory.
// Otherwise the error matches errors.ErrMissingRootDirectory.
func ResolveRoot(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", internalerrors.NewMissingRootDirectoryError(root, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", internalerrors.NewMissingRootDirectoryError(abs, err)
	}
	if !info.IsDir() {
		return "", internalerrors.NewMissingRootDirectoryError(abs, errors.New("not a directory"))
	}

	return abs, nil
}

func readOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		switch c.Request().Method {
		case http.MethodGet, http.MethodHead:
			return next(c)
		}
		c.Response().Header().Set(echo.HeaderAllow, http.MethodGet+", "+http.MethodHead)
		return echo.ErrMethodNotAllowed
	}
}
