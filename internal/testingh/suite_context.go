package testingh

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"
)

// DefaultTestTimeout bounds every test of a ContextSuite, so a hanging
// server or launcher fails the test instead of the whole run.
const DefaultTestTimeout = 10 * time.Second

type ContextSuite struct {
	suite.Suite

	Ctx       context.Context
	ctxCancel context.CancelFunc

	SuiteCtx       context.Context
	suiteCtxCancel context.CancelFunc
}

func (cs *ContextSuite) SetupSuite() {
	cs.SuiteCtx, cs.suiteCtxCancel = context.WithCancel(context.Background())
}

func (cs *ContextSuite) TearDownSuite() {
	cs.suiteCtxCancel()
}

func (cs *ContextSuite) SetupTest() {
	cs.Ctx, cs.ctxCancel = context.WithTimeout(cs.SuiteCtx, DefaultTestTimeout)
}

func (cs *ContextSuite) TearDownTest() {
	cs.ctxCancel()
}

// Wait blocks until done is closed or the test context ends.
func (cs *ContextSuite) Wait(done <-chan struct{}) {
	select {
	case <-done:
	case <-cs.Ctx.Done():
		cs.Fail("wait: " + cs.Ctx.Err().Error())
	}
}
