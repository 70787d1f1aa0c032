package transfer

import (
	"os"
	"sync/atomic"
)

// CancelExitCode is the process status used when a batch is interrupted,
// matching the conventional "terminated by interrupt" code.
const CancelExitCode = 130

// osExit is swapped out in tests so cancellation can be observed without
// killing the test process.
var osExit = os.Exit

// Token is a set-once cancellation flag, set by an external signal handler
// and polled between discrete units of work. It is never cleared within one
// process invocation.
type Token struct {
	flag atomic.Bool
}

func (t *Token) Set()        { t.flag.Store(true) }
func (t *Token) IsSet() bool { return t != nil && t.flag.Load() }

// pollCancel checks the token at a yield point. On cancellation the process
// terminates directly instead of unwinding through error returns, so a
// half-finished batch is reported as interrupted rather than failed.
func (c *Context) pollCancel(label string) {
	if !c.Token.IsSet() {
		return
	}
	c.Log.Warn().Str("path", label).Msg("interrupted, stopping before next entry")
	osExit(CancelExitCode)
}
