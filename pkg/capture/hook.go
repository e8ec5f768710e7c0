// Package capture takes a screenshot of the browser when a test fails.
//
// A Hook observes one test execution at a time. It is notified through two
// independent failure pathways, an uncaught failure (a panic in the test body)
// and a failure reported by the framework after the fact, and writes at most
// one artifact per test no matter how many of them fire:
//
//	screenshots/<yyyyMMdd>/<testName>_<yyyyMMdd_HHmmss>.png
//
// Capture is best-effort. I/O errors are logged and never fail the test, and
// the original failure is always handed back to the caller unchanged.
package capture

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

const (
	dateLayout      = "20060102"
	timestampLayout = "20060102_150405"
)

// Hook captures a screenshot for a failing test.
// One Hook may be reused across sequential tests; BeforeTest resets it.
type Hook struct {
	cfg   Config
	clock Clock
	log   logrus.FieldLogger

	mu       sync.Mutex
	session  Session
	captured bool
	state    State
	artifact string
}

// NewHook creates a Hook. The configuration is fixed for the Hook's lifetime.
func NewHook(cfg Config, opts ...Option) (*Hook, error) {
	if cfg.Dir == "" {
		cfg.Dir = DefaultDir
	}
	h := &Hook{
		cfg:   cfg,
		clock: defaultClock,
		log:   defaultLogger(),
	}
	for _, opt := range opts {
		if err := opt(h); err != nil {
			return nil, fmt.Errorf("capture: %w", err)
		}
	}
	return h, nil
}

// BeforeTest starts a new test execution. Previous per-test state is
// discarded and the session is bound from tc.Fixture if it provides one.
func (h *Hook) BeforeTest(tc TestContext) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.session = nil
	h.captured = false
	h.artifact = ""
	h.state = StateSessionBound

	if p, ok := tc.Fixture.(SessionProvider); ok {
		if s := p.Session(); s != nil {
			h.session = s
		}
	}
}

// HandleUncaughtFailure captures a screenshot for a test whose body failed
// with err, then returns err unchanged.
func (h *Hook) HandleUncaughtFailure(tc TestContext, err error) error {
	h.capture(tc)
	return err
}

// TestFailed captures a screenshot for a test the framework reported as
// failed.
func (h *Hook) TestFailed(tc TestContext, cause error) {
	if cause != nil {
		h.log.WithField("test", tc.DisplayName).WithError(cause).Debug("test reported failed")
	}
	h.capture(tc)
}

// Artifact returns the path written for the current test, or "".
func (h *Hook) Artifact() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.artifact
}

// State returns the capture state of the current test.
func (h *Hook) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

func (h *Hook) capture(tc TestContext) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.captured || h.state.Terminal() {
		return
	}
	if !h.cfg.Enabled || h.session == nil {
		h.state = StateCaptureSkipped
		return
	}
	h.state = StateCaptureAttempted

	// Read the clock once so the directory and file name agree across midnight.
	now := h.clock.Now()
	dir := filepath.Join(h.cfg.Dir, now.Format(dateLayout))
	path := filepath.Join(dir, SanitizeName(tc.DisplayName)+"_"+now.Format(timestampLayout)+".png")
	log := h.log.WithFields(logrus.Fields{
		"test": tc.DisplayName,
		"path": path,
	})

	if _, err := os.Stat(dir); err != nil {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.WithError(err).Warn("failed to create screenshot directory")
		} else {
			log.WithField("dir", dir).Info("screenshot directory created")
		}
	}

	img, err := screenshot(h.session)
	if err != nil {
		log.WithError(err).Warn("failed to take screenshot")
		return
	}

	if err := writeNew(path, img); err != nil {
		log.WithError(err).Warn("failed to write screenshot")
		return
	}

	h.captured = true
	h.artifact = path
	h.state = StateCaptured
	log.Info("screenshot taken")
}

// screenshot asks s for an image. Drivers that report failure by panicking
// are treated as returning an error.
func screenshot(s Session) (img []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			img, err = nil, fmt.Errorf("screenshot panicked: %v", r)
		}
	}()
	return s.Screenshot()
}

// writeNew writes data to a file that must not already exist.
func writeNew(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

var nameReplacer = strings.NewReplacer(
	"()", "",
	"/", "_",
	"\\", "_",
	":", "_",
	"*", "_",
	"?", "_",
	"\"", "_",
	"<", "_",
	">", "_",
	"|", "_",
)

// SanitizeName turns a test display name into a file name stem.
// Call notation is stripped ("testLogin()" becomes "testLogin") and path
// separators become underscores ("TestHotel/login" becomes "TestHotel_login").
func SanitizeName(displayName string) string {
	name := strings.TrimSpace(nameReplacer.Replace(displayName))
	if name == "" {
		return "test"
	}
	return name
}
