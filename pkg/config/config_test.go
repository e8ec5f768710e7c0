package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKeys = []string{
	"SCREENSHOT_ENABLED",
	"SCREENSHOT_DIR",
	"BROWSER_HEADLESS",
	"BROWSER_TIMEOUT",
	"BROWSER_STEALTH",
	"HOTEL_BASE_URL",
	"API_BASE_URL",
	"ZIP_BASE_URL",
}

// clearEnv empties every key for the duration of the test. godotenv only
// sets variables that are absent, so they are unset rather than emptied.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadFile_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.True(t, cfg.ScreenshotEnabled)
	assert.Equal(t, "screenshots", cfg.ScreenshotDir)
	assert.True(t, cfg.BrowserHeadless)
	assert.False(t, cfg.BrowserStealth)
	assert.Equal(t, 30*time.Second, cfg.BrowserTimeout)
	assert.Empty(t, cfg.HotelBaseURL)
	assert.Empty(t, cfg.APIBaseURL)
	assert.Empty(t, cfg.ZipBaseURL)

	cc := cfg.Capture()
	assert.True(t, cc.Enabled)
	assert.Equal(t, "screenshots", cc.Dir)
}

func TestLoadFile_FromEnvFile(t *testing.T) {
	clearEnv(t)

	file := filepath.Join(t.TempDir(), "test.env")
	content := "SCREENSHOT_ENABLED=false\n" +
		"SCREENSHOT_DIR=out/shots\n" +
		"BROWSER_TIMEOUT=5s\n" +
		"HOTEL_BASE_URL=https://hotel-example-site.takeyaqa.dev\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))

	cfg, err := LoadFile(file)
	require.NoError(t, err)

	assert.False(t, cfg.ScreenshotEnabled)
	assert.Equal(t, "out/shots", cfg.ScreenshotDir)
	assert.Equal(t, 5*time.Second, cfg.BrowserTimeout)
	assert.Equal(t, "https://hotel-example-site.takeyaqa.dev", cfg.HotelBaseURL)
	assert.False(t, cfg.Capture().Enabled)
}

func TestLoadFile_EnvironmentWins(t *testing.T) {
	clearEnv(t)
	t.Setenv("SCREENSHOT_ENABLED", "true")

	file := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(file, []byte("SCREENSHOT_ENABLED=false\n"), 0o644))

	cfg, err := LoadFile(file)
	require.NoError(t, err)
	assert.True(t, cfg.ScreenshotEnabled)
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		key, value, want string
	}{
		{"SCREENSHOT_ENABLED", "maybe", "SCREENSHOT_ENABLED"},
		{"BROWSER_HEADLESS", "sometimes", "BROWSER_HEADLESS"},
		{"BROWSER_TIMEOUT", "soon", "BROWSER_TIMEOUT"},
		{"BROWSER_TIMEOUT", "-1s", "must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
