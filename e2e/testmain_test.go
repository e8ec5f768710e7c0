//go:build e2e

package e2e

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/thesyncim/planisphere-e2e/pkg/capture"
	"github.com/thesyncim/planisphere-e2e/pkg/config"
)

var screenshotEnabled = flag.Bool("screenshot.enabled", true, "capture a screenshot when a browser test fails")

var (
	suiteCfg  *config.Config
	suiteHook *capture.Hook
	suiteLog  = logrus.New()
)

func TestMain(m *testing.M) {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "e2e: %v\n", err)
		os.Exit(2)
	}
	// An explicit flag wins over the environment.
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "screenshot.enabled" {
			cfg.ScreenshotEnabled = *screenshotEnabled
		}
	})
	suiteCfg = cfg

	suiteHook, err = capture.NewHook(cfg.Capture(), capture.WithLogger(suiteLog.WithField("component", "capture")))
	if err != nil {
		fmt.Fprintf(os.Stderr, "e2e: %v\n", err)
		os.Exit(2)
	}
	suiteLog.WithFields(logrus.Fields{
		"screenshots": cfg.ScreenshotEnabled,
		"dir":         cfg.ScreenshotDir,
	}).Info("failure capture configured")

	code := m.Run()

	// Cleanup: Kill any orphaned Chrome processes
	// This is a safety net for test failures/panics where
	// the fixture cleanup didn't run
	cleanupOrphanedBrowsers()

	os.Exit(code)
}

// cleanupOrphanedBrowsers attempts to kill Chrome processes that may have
// been left behind by failed tests. This is best-effort cleanup.
func cleanupOrphanedBrowsers() {
	switch runtime.GOOS {
	case "darwin", "linux":
		// pkill returns non-zero if no processes matched, ignore error
		// Target both chromium (Rod downloads) and chrome (system install)
		_ = exec.Command("pkill", "-f", "chromium|chrome").Run()
	case "windows":
		_ = exec.Command("taskkill", "/F", "/IM", "chrome.exe").Run()
		_ = exec.Command("taskkill", "/F", "/IM", "chromium.exe").Run()
	}
}
