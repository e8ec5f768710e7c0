package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-rod/rod/lib/launcher"

	"github.com/thesyncim/planisphere-e2e/pkg/capture"
)

// Fixture is the base fixture for browser tests. It owns one BrowserClient
// and exposes it to the capture hook as a session.
type Fixture struct {
	Client *BrowserClient
}

// NewFixture launches Chrome for t and closes it when t finishes. The test is
// skipped when no local Chrome is installed.
// The close is registered before any capture.Watch call made afterwards, so
// a failure screenshot is taken while the browser is still open.
func NewFixture(t testing.TB, cfg BrowserConfig) *Fixture {
	t.Helper()
	SkipIfNoBrowser(t)

	client, err := NewBrowserClient(cfg)
	if err != nil {
		t.Fatalf("failed to create browser: %v", err)
	}
	t.Cleanup(func() {
		if err := client.Close(); err != nil {
			t.Errorf("browser close error: %v", err)
		}
	})
	return &Fixture{Client: client}
}

// Session implements capture.SessionProvider.
func (f *Fixture) Session() capture.Session {
	if f == nil || f.Client == nil {
		return nil
	}
	return f.Client
}

// TakeScreenshot saves the current page to dir/<name>_<unix millis>.png and
// returns the path. Unlike failure capture, errors are returned.
func (f *Fixture) TakeScreenshot(dir, name string) (string, error) {
	if f == nil || f.Client == nil {
		return "", ErrNoPage
	}
	img, err := f.Client.Screenshot()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%s_%d.png", capture.SanitizeName(name), time.Now().UnixMilli()))
	if err := os.WriteFile(path, img, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// SkipIfNoBrowser skips the test if Chrome/Chromium is not available locally.
func SkipIfNoBrowser(t testing.TB) {
	t.Helper()

	path, exists := launcher.LookPath()
	if !exists {
		t.Skip("Skipping browser test: Chrome/Chromium not available")
	}
	t.Logf("Found browser at: %s", path)
}
