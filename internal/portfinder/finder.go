package portfinder

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	internalerrors "github.com/zestagio/reader-launcher/internal/errors"
	_ "github.com/zestagio/reader-launcher/internal/validator"
)

const (
	maxPort            = 65535
	defaultDialTimeout = 200 * time.Millisecond
)

//go:generate options-gen -out-filename=finder_options.gen.go -from-struct=Options
type Options struct {
	host        string        `option:"mandatory" validate:"required,loopback"`
	start       int           `option:"mandatory" validate:"min=1,max=65535"`
	attempts    int           `option:"mandatory" validate:"min=1,max=65535"`
	dialTimeout time.Duration `validate:"min=0s,max=10s"`
}

// Finder scans [start, start+attempts) in ascending order and picks the first
// port nobody accepts connections on.
type Finder struct {
	lg     *zap.Logger
	host   string
	start  int
	last   int
	dialer net.Dialer
}

func New(opts Options) (*Finder, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}

	last := opts.start + opts.attempts - 1
	if last > maxPort {
		return nil, fmt.Errorf("port range %d-%d exceeds %d", opts.start, last, maxPort)
	}

	timeout := opts.dialTimeout
	if timeout == 0 {
		timeout = defaultDialTimeout
	}

	return &Finder{
		lg:     zap.L().Named("port-finder"),
		host:   opts.host,
		start:  opts.start,
		last:   last,
		dialer: net.Dialer{Timeout: timeout},
	}, nil
}

// Find returns the lowest free port of the range. Probes are sequential.
func (f *Finder) Find(ctx context.Context) (int, error) {
	for port := f.start; port <= f.last; port++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		busy, err := f.probe(ctx, port)
		if err != nil {
			return 0, err
		}
		if !busy {
			f.lg.Debug("port is free", zap.Int("port", port))
			return port, nil
		}

		f.lg.Debug("port is busy", zap.Int("port", port))
	}

	return 0, &internalerrors.NoFreePortError{Host: f.host, From: f.start, To: f.last}
}

// probe reports whether something accepts connections on the port.
// A failed dial means the port is free.
func (f *Finder) probe(ctx context.Context, port int) (busy bool, errReturned error) {
	conn, err := f.dialer.DialContext(ctx, "tcp", net.JoinHostPort(f.host, strconv.Itoa(port)))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return false, ctxErr
		}
		return false, nil
	}
	defer multierr.AppendInvoke(&errReturned, multierr.Close(conn))

	return true, nil
}
