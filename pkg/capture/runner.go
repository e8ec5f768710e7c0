package capture

import (
	"errors"
	"fmt"
)

// TB is the part of testing.TB the runner needs. *testing.T satisfies it.
type TB interface {
	Name() string
	Failed() bool
	Cleanup(func())
	Helper()
}

// ErrTestFailed is the cause passed to TestFailed when the framework reports
// a failure without an error value.
var ErrTestFailed = errors.New("test failed")

// Watch starts a test execution on h and arranges for TestFailed to run when
// t is reported as failed.
//
// Cleanups run in reverse order, so a fixture that registered its own
// teardown before Watch is still open when the screenshot is taken.
func Watch(t TB, h *Hook, fixture any) TestContext {
	t.Helper()

	tc := TestContext{DisplayName: t.Name(), Fixture: fixture}
	h.BeforeTest(tc)
	t.Cleanup(func() {
		if t.Failed() {
			h.TestFailed(tc, ErrTestFailed)
		}
	})
	return tc
}

// Run calls fn as the body of a watched test. A panic in fn is treated as an
// uncaught failure: the screenshot is attempted and the panic continues with
// its original value.
func Run(t TB, h *Hook, fixture any, fn func()) {
	t.Helper()

	tc := Watch(t, h, fixture)
	defer func() {
		if r := recover(); r != nil {
			_ = h.HandleUncaughtFailure(tc, panicError(r))
			panic(r)
		}
	}()
	fn()
}

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", r)
}
