package browser

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	pkgbrowser "github.com/pkg/browser"
	"go.uber.org/zap"

	internalerrors "github.com/zestagio/reader-launcher/internal/errors"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/launcher_mock.gen.go -package=browsermocks

type urlOpener interface {
	OpenURL(url string) error
}

// OpenerFunc adapts a function to the opener of the Launcher.
type OpenerFunc func(url string) error

func (f OpenerFunc) OpenURL(url string) error {
	return f(url)
}

var silenceOnce sync.Once

// NewSystemOpener opens URLs in the default browser of the OS.
// Output of the spawned helper (xdg-open, open, rundll32) is discarded.
func NewSystemOpener() OpenerFunc {
	silenceOnce.Do(func() {
		pkgbrowser.Stdout = io.Discard
		pkgbrowser.Stderr = io.Discard
	})
	return pkgbrowser.OpenURL
}

//go:generate options-gen -out-filename=launcher_options.gen.go -from-struct=Options
type Options struct {
	logger *zap.Logger   `option:"mandatory" validate:"required"`
	opener urlOpener     `option:"mandatory" validate:"required"`
	delay  time.Duration `validate:"min=0s,max=1m"`
}

// Launcher opens the browser once, in the background, after a delay.
// Failures are only logged.
type Launcher struct {
	lg     *zap.Logger
	opener urlOpener
	delay  time.Duration
}

func New(opts Options) (*Launcher, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}

	return &Launcher{
		lg:     opts.logger,
		opener: opts.opener,
		delay:  opts.delay,
	}, nil
}

// Launch returns immediately. The returned channel is closed once the
// attempt is over, either done or abandoned because ctx ended first.
func (l *Launcher) Launch(ctx context.Context, url string) <-chan struct{} {
	done := make(chan struct{})

	go func() {
		defer close(done)

		timer := time.NewTimer(l.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			l.lg.Debug("browser launch abandoned", zap.String("url", url))
			return
		case <-timer.C:
		}

		if err := l.opener.OpenURL(url); err != nil {
			l.lg.Warn("could not open the browser automatically",
				zap.Error(internalerrors.NewBrowserLaunchFailedError(url, err)))
			return
		}
		l.lg.Debug("browser opened", zap.String("url", url))
	}()

	return done
}
