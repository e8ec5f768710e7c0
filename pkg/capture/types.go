package capture

import "github.com/thesyncim/planisphere-e2e/pkg/capture/internal"

// Clock supplies the time used to name artifacts.
type Clock = internal.Clock

// Session is a handle to an active browser session that can produce an image
// of what it currently shows.
type Session interface {
	// Screenshot returns the encoded PNG bytes of the current viewport.
	Screenshot() ([]byte, error)
}

// SessionProvider is implemented by test fixtures that hold a browser session.
// Session returns nil when the fixture has no session to offer. Implementations
// must return an untyped nil, not a nil pointer wrapped in the interface.
type SessionProvider interface {
	Session() Session
}

// TestContext identifies the running test.
type TestContext struct {
	// DisplayName is the human-readable test identifier, e.g. "testLogin()"
	// or "TestHotel/login".
	DisplayName string

	// Fixture is the test fixture instance. The hook binds a session from it
	// when it implements SessionProvider.
	Fixture any
}

// State is the capture lifecycle of one test execution.
type State int

const (
	// StateNotStarted is the state before BeforeTest is called.
	StateNotStarted State = iota
	// StateSessionBound is reached after BeforeTest, whether or not a session was found.
	StateSessionBound
	// StateCaptureAttempted means a capture ran but did not produce an artifact.
	StateCaptureAttempted
	// StateCaptured means the artifact was written. Terminal.
	StateCaptured
	// StateCaptureSkipped means a guard condition held. Terminal.
	StateCaptureSkipped
)

// String returns a string representation of the State.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "NotStarted"
	case StateSessionBound:
		return "SessionBound"
	case StateCaptureAttempted:
		return "CaptureAttempted"
	case StateCaptured:
		return "Captured"
	case StateCaptureSkipped:
		return "CaptureSkipped"
	default:
		return "Unknown"
	}
}

// Terminal reports whether no further transitions happen for this test.
func (s State) Terminal() bool {
	return s == StateCaptured || s == StateCaptureSkipped
}
