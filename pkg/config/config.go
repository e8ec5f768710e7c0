// Package config handles suite configuration loading.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/thesyncim/planisphere-e2e/pkg/capture"
)

// Config holds the suite configuration.
type Config struct {
	ScreenshotEnabled bool
	ScreenshotDir     string

	BrowserHeadless bool
	BrowserTimeout  time.Duration
	BrowserStealth  bool

	// Empty base URLs point the suite at the local fixture site.
	HotelBaseURL string
	APIBaseURL   string
	ZipBaseURL   string
}

// Load reads configuration from environment variables and a .env file.
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit env file. A missing file is not an error.
// Variables already set in the environment take precedence over the file.
func LoadFile(file string) (*Config, error) {
	if err := godotenv.Load(file); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading env file '%s': %w", file, err)
		}
	}

	cfg := &Config{
		ScreenshotDir: getEnv("SCREENSHOT_DIR", capture.DefaultDir),
		HotelBaseURL:  getEnv("HOTEL_BASE_URL", ""),
		APIBaseURL:    getEnv("API_BASE_URL", ""),
		ZipBaseURL:    getEnv("ZIP_BASE_URL", ""),
	}

	var err error
	if cfg.ScreenshotEnabled, err = getBool("SCREENSHOT_ENABLED", true); err != nil {
		return nil, err
	}
	if cfg.BrowserHeadless, err = getBool("BROWSER_HEADLESS", true); err != nil {
		return nil, err
	}
	if cfg.BrowserStealth, err = getBool("BROWSER_STEALTH", false); err != nil {
		return nil, err
	}

	timeout, err := time.ParseDuration(getEnv("BROWSER_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid BROWSER_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid BROWSER_TIMEOUT: must be positive, got %s", timeout)
	}
	cfg.BrowserTimeout = timeout

	return cfg, nil
}

// Capture returns the failure capture configuration.
func (c *Config) Capture() capture.Config {
	return capture.Config{
		Enabled: c.ScreenshotEnabled,
		Dir:     c.ScreenshotDir,
	}
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) (bool, error) {
	raw := getEnv(key, strconv.FormatBool(defaultValue))
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}
