package portfinder_test

import (
	"context"
	"errors"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"

	internalerrors "github.com/zestagio/reader-launcher/internal/errors"
	"github.com/zestagio/reader-launcher/internal/portfinder"
	"github.com/zestagio/reader-launcher/internal/testingh"
)

const host = "127.0.0.1"

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name     string
		host     string
		start    int
		attempts int
	}{
		{name: "public host", host: "0.0.0.0", start: 8000, attempts: 30},
		{name: "hostname", host: "localhost", start: 8000, attempts: 30},
		{name: "zero start", host: host, start: 0, attempts: 30},
		{name: "zero attempts", host: host, start: 8000, attempts: 0},
		{name: "range overflow", host: host, start: 65530, attempts: 30},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := portfinder.New(portfinder.NewOptions(tt.host, tt.start, tt.attempts))
			assert.Error(t, err)
		})
	}

	_, err := portfinder.New(portfinder.NewOptions(host, 65535, 1))
	assert.NoError(t, err)
}

type FinderSuite struct {
	testingh.ContextSuite

	base      int
	listeners map[int]net.Listener
}

func TestFinderSuite(t *testing.T) {
	suite.Run(t, new(FinderSuite))
}

const occupied = 4

func (s *FinderSuite) SetupTest() {
	s.ContextSuite.SetupTest()
	s.base, s.listeners = occupyRange(s.T(), occupied)
}

func (s *FinderSuite) TearDownTest() {
	for port := range s.listeners {
		s.release(port)
	}
	s.ContextSuite.TearDownTest()
}

func (s *FinderSuite) TestAllBusy_NoFreePort() {
	f := s.newFinder(occupied)

	port, err := f.Find(s.Ctx)
	s.Require().Error(err)
	s.Zero(port)
	s.ErrorIs(err, internalerrors.ErrNoFreePort)

	var noFree *internalerrors.NoFreePortError
	s.Require().True(errors.As(err, &noFree))
	s.Equal(host, noFree.Host)
	s.Equal(s.base, noFree.From)
	s.Equal(s.base+occupied-1, noFree.To)
}

func (s *FinderSuite) TestFirstFree() {
	s.release(s.base)

	port, err := s.newFinder(occupied).Find(s.Ctx)
	s.Require().NoError(err)
	s.Equal(s.base, port)
}

func (s *FinderSuite) TestSmallestFreeWins() {
	s.release(s.base + 3)
	s.release(s.base + 1)

	port, err := s.newFinder(occupied).Find(s.Ctx)
	s.Require().NoError(err)
	s.Equal(s.base+1, port)
}

func (s *FinderSuite) TestFindDoesNotBind() {
	s.release(s.base + 2)

	port, err := s.newFinder(occupied).Find(s.Ctx)
	s.Require().NoError(err)
	s.Require().Equal(s.base+2, port)

	// The port is still free for the caller.
	ln, err := net.Listen("tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	s.Require().NoError(err)
	s.NoError(ln.Close())
}

func (s *FinderSuite) TestOutOfBudget() {
	s.release(s.base + 3)

	// Budget stops right before the free port.
	_, err := s.newFinder(occupied - 1).Find(s.Ctx)
	s.ErrorIs(err, internalerrors.ErrNoFreePort)
}

func (s *FinderSuite) TestCanceledContext() {
	s.release(s.base + 3)

	ctx, cancel := context.WithCancel(s.Ctx)
	cancel()

	_, err := s.newFinder(occupied).Find(ctx)
	s.ErrorIs(err, context.Canceled)
}

func (s *FinderSuite) newFinder(attempts int) *portfinder.Finder {
	f, err := portfinder.New(portfinder.NewOptions(host, s.base, attempts,
		portfinder.WithDialTimeout(time.Second),
	))
	s.Require().NoError(err)
	return f
}

func (s *FinderSuite) release(port int) {
	ln, ok := s.listeners[port]
	if !ok {
		return
	}
	s.Require().NoError(ln.Close())
	delete(s.listeners, port)
}

// occupyRange listens on n consecutive loopback ports and returns the first one.
func occupyRange(t *testing.T, n int) (int, map[int]net.Listener) {
	t.Helper()

	for try := 0; try < 50; try++ {
		first, err := net.Listen("tcp", net.JoinHostPort(host, "0"))
		require.NoError(t, err)

		base := first.Addr().(*net.TCPAddr).Port
		listeners := map[int]net.Listener{base: first}

		ok := base+n-1 <= 65535
		for port := base + 1; ok && port < base+n; port++ {
			ln, err := net.Listen("tcp", net.JoinHostPort(host, strconv.Itoa(port)))
			if err != nil {
				ok = false
				break
			}
			listeners[port] = ln
		}

		if ok {
			return base, listeners
		}
		for _, ln := range listeners {
			_ = ln.Close()
		}
	}

	t.Fatalf("cannot occupy %d consecutive ports", n)
	return 0, nil
}
