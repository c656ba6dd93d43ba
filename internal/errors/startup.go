package errors

import (
	"errors"
	"fmt"
	"net"
	"strconv"
)

var (
	ErrMissingRootDirectory = errors.New("missing root directory")
	ErrNoFreePort           = errors.New("no free port")
	ErrBindFailed           = errors.New("bind failed")
	ErrBrowserLaunchFailed  = errors.New("browser launch failed")
)

// MissingRootDirectoryError is returned before any socket is touched.
type MissingRootDirectoryError struct {
	Path  string
	cause error
}

func NewMissingRootDirectoryError(path string, cause error) *MissingRootDirectoryError {
	return &MissingRootDirectoryError{Path: path, cause: cause}
}

func (e *MissingRootDirectoryError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("cannot find web directory at: %s: %v", e.Path, e.cause)
	}
	return "cannot find web directory at: " + e.Path
}

func (e *MissingRootDirectoryError) Is(target error) bool { return target == ErrMissingRootDirectory }

func (e *MissingRootDirectoryError) Unwrap() error { return e.cause }

// NoFreePortError carries the exhausted closed range [From, To].
type NoFreePortError struct {
	Host string
	From int
	To   int
}

func (e *NoFreePortError) Error() string {
	return fmt.Sprintf("no free port found for the web server in %s:%d-%d", e.Host, e.From, e.To)
}

func (e *NoFreePortError) Is(target error) bool { return target == ErrNoFreePort }

// BindFailedError wraps the listen error of the static server.
type BindFailedError struct {
	Addr  string
	cause error
}

func NewBindFailedError(host string, port int, cause error) *BindFailedError {
	return &BindFailedError{
		Addr:  net.JoinHostPort(host, strconv.Itoa(port)),
		cause: cause,
	}
}

func (e *BindFailedError) Error() string {
	return fmt.Sprintf("cannot bind %s: %v", e.Addr, e.cause)
}

func (e *BindFailedError) Is(target error) bool { return target == ErrBindFailed }

func (e *BindFailedError) Unwrap() error { return e.cause }

// BrowserLaunchFailedError is never fatal, it ends up in a warning.
type BrowserLaunchFailedError struct {
	URL   string
	cause error
}

func NewBrowserLaunchFailedError(url string, cause error) *BrowserLaunchFailedError {
	return &BrowserLaunchFailedError{URL: url, cause: cause}
}

func (e *BrowserLaunchFailedError) Error() string {
	return fmt.Sprintf("open %s: %v", e.URL, e.cause)
}

func (e *BrowserLaunchFailedError) Is(target error) bool { return target == ErrBrowserLaunchFailed }

func (e *BrowserLaunchFailedError) Unwrap() error { return e.cause }
