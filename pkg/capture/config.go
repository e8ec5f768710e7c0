package capture

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/thesyncim/planisphere-e2e/pkg/capture/internal"
)

// DefaultDir is the root directory screenshots are written under.
const DefaultDir = "screenshots"

// Config controls failure capture.
type Config struct {
	Enabled bool   // Capture screenshots on failure (default: true)
	Dir     string // Root output directory (default: "screenshots")
}

// DefaultConfig returns capture enabled under ./screenshots.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Dir:     DefaultDir,
	}
}

// Option configures a Hook.
type Option func(*Hook) error

// WithClock sets the clock used to name artifacts.
// Default: the system clock.
func WithClock(c Clock) Option {
	return func(h *Hook) error {
		if c == nil {
			return errors.New("clock must not be nil")
		}
		h.clock = c
		return nil
	}
}

// WithLogger sets the logger capture results are reported to.
// Default: a logrus logger writing to stderr.
func WithLogger(l logrus.FieldLogger) Option {
	return func(h *Hook) error {
		if l == nil {
			return errors.New("logger must not be nil")
		}
		h.log = l
		return nil
	}
}

func defaultLogger() logrus.FieldLogger {
	return logrus.New().WithField("component", "capture")
}

var defaultClock Clock = internal.SystemClock{}
