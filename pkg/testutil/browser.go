// Package testutil provides browser fixtures for the end-to-end suite.
// It wraps Rod to provide Chrome instances whose sessions can be captured
// by the capture package when a test fails.
package testutil

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
)

// ErrNoPage is returned by operations that need Navigate to have been called.
var ErrNoPage = errors.New("no page open, call Navigate first")

// BrowserConfig configures Chrome launch options.
type BrowserConfig struct {
	Headless bool          // Run in headless mode (default: true)
	Timeout  time.Duration // Default operation timeout (default: 30s)
	Stealth  bool          // Open pages with go-rod/stealth evasions (default: false)
}

// DefaultBrowserConfig returns sensible defaults for E2E testing.
func DefaultBrowserConfig() BrowserConfig {
	return BrowserConfig{
		Headless: true,
		Timeout:  30 * time.Second,
	}
}

// BrowserClient wraps Rod with a single active page.
type BrowserClient struct {
	browser *rod.Browser
	page    *rod.Page
	timeout time.Duration
	stealth bool
}

// NewBrowserClient launches Chrome and connects to it.
// The browser is configured with:
//   - No sandbox (for container compatibility)
//   - Japanese UI language, which the hotel site renders by default
func NewBrowserClient(cfg BrowserConfig) (*BrowserClient, error) {
	l := launcher.New().
		Headless(cfg.Headless).
		Set("no-sandbox").
		Set("disable-gpu").
		Set("lang", "ja-JP")

	url, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch Chrome: %w", err)
	}

	browser := rod.New().ControlURL(url)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to Chrome: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultBrowserConfig().Timeout
	}

	return &BrowserClient{
		browser: browser,
		timeout: timeout,
		stealth: cfg.Stealth,
	}, nil
}

// Timeout returns the default operation timeout.
func (c *BrowserClient) Timeout() time.Duration {
	return c.timeout
}

func (c *BrowserClient) newPage() (*rod.Page, error) {
	if c.stealth {
		return stealth.Page(c.browser)
	}
	return c.browser.Page(proto.TargetCreateTarget{})
}

// Navigate opens a URL with timeout.
// Returns the page for further interaction.
func (c *BrowserClient) Navigate(url string) (*rod.Page, error) {
	if c.page == nil {
		page, err := c.newPage()
		if err != nil {
			return nil, fmt.Errorf("failed to open page: %w", err)
		}
		c.page = page
	}

	if err := c.page.Timeout(c.timeout).Navigate(url); err != nil {
		return nil, fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	if err := c.page.Timeout(c.timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", url, err)
	}
	return c.page, nil
}

// Page returns the current page, or nil if none open.
func (c *BrowserClient) Page() *rod.Page {
	return c.page
}

// Eval executes JavaScript and returns the result.
// Requires Navigate() to have been called first.
func (c *BrowserClient) Eval(js string) (interface{}, error) {
	if c.page == nil {
		return nil, ErrNoPage
	}
	result, err := c.page.Eval(js)
	if err != nil {
		return nil, fmt.Errorf("eval failed: %w", err)
	}
	return result.Value, nil
}

// WaitStable waits for the page to be stable (no DOM changes).
func (c *BrowserClient) WaitStable() error {
	if c.page == nil {
		return ErrNoPage
	}
	return c.page.WaitStable(c.timeout)
}

// Screenshot captures the current viewport as PNG.
func (c *BrowserClient) Screenshot() ([]byte, error) {
	if c.page == nil {
		return nil, ErrNoPage
	}
	img, err := c.page.Timeout(c.timeout).Screenshot(false, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return nil, fmt.Errorf("screenshot failed: %w", err)
	}
	return img, nil
}

// Response is a network response observed through the DevTools protocol.
type Response struct {
	URL      string
	Status   int
	MIMEType string
}

// WatchResponse navigates to url and returns the first response whose URL
// contains match. It fails if no such response arrives within the timeout.
func (c *BrowserClient) WatchResponse(url, match string) (Response, error) {
	if c.page == nil {
		page, err := c.newPage()
		if err != nil {
			return Response{}, fmt.Errorf("failed to open page: %w", err)
		}
		c.page = page
	}

	var got Response
	page := c.page.Timeout(c.timeout)
	wait := page.EachEvent(func(e *proto.NetworkResponseReceived) bool {
		if !strings.Contains(e.Response.URL, match) {
			return false
		}
		got = Response{
			URL:      e.Response.URL,
			Status:   e.Response.Status,
			MIMEType: e.Response.MIMEType,
		}
		return true
	})

	if err := page.Navigate(url); err != nil {
		return Response{}, fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	wait()
	page.CancelTimeout()

	if got.URL == "" {
		return Response{}, fmt.Errorf("no response matching %q within %s", match, c.timeout)
	}
	return got, nil
}

// Close cleans up browser resources.
// Always call this (via defer) to prevent orphaned Chrome processes.
func (c *BrowserClient) Close() error {
	if c.browser != nil {
		return c.browser.Close()
	}
	return nil
}
