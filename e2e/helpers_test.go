//go:build e2e

package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/thesyncim/planisphere-e2e/cmd/hotel-site/server"
	"github.com/thesyncim/planisphere-e2e/pkg/api"
	"github.com/thesyncim/planisphere-e2e/pkg/pages"
	"github.com/thesyncim/planisphere-e2e/pkg/testutil"
)

// startSite starts the fixture site for t and returns its base URL.
func startSite(t *testing.T) string {
	t.Helper()

	cfg := server.DefaultConfig()
	cfg.Logger = suiteLog
	srv, err := server.NewServer(cfg)
	require.NoError(t, err, "failed to create server")

	_, err = srv.Start()
	require.NoError(t, err, "failed to start server")
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			t.Errorf("server shutdown error: %v", err)
		}
	})

	t.Logf("Fixture site started on %s", srv.URL())
	return srv.URL()
}

// baseURL returns configured unless it is empty, in which case the fixture
// site is started once for t and reused.
func baseURL(t *testing.T, configured string, local *string) string {
	t.Helper()
	if configured != "" {
		return configured
	}
	if *local == "" {
		*local = startSite(t)
	}
	return *local
}

func browserConfig() testutil.BrowserConfig {
	return testutil.BrowserConfig{
		Headless: suiteCfg.BrowserHeadless,
		Timeout:  suiteCfg.BrowserTimeout,
		Stealth:  suiteCfg.BrowserStealth,
	}
}

// hotelEnv is one browser test's view of the site.
type hotelEnv struct {
	site    string
	fixture *testutil.Fixture
	hotel   *pages.HotelPage
}

// newHotelEnv starts the site (unless configured) and a browser for t.
// It does not attach the capture hook; tests do that with capture.Watch or
// capture.Run so the hook's cleanup is registered after the browser's.
func newHotelEnv(t *testing.T) *hotelEnv {
	t.Helper()

	var local string
	site := baseURL(t, suiteCfg.HotelBaseURL, &local)

	fx := testutil.NewFixture(t, browserConfig())
	page, err := fx.Client.Navigate("about:blank")
	require.NoError(t, err)

	return &hotelEnv{
		site:    site,
		fixture: fx,
		hotel:   pages.NewHotelPage(page, site, fx.Client.Timeout()),
	}
}

// apiClients returns clients for the posts and zipcode APIs.
func apiClients(t *testing.T) (posts, zip *api.Client) {
	t.Helper()

	var local string
	postsURL := baseURL(t, suiteCfg.APIBaseURL, &local)
	zipURL := baseURL(t, suiteCfg.ZipBaseURL, &local)

	logger := suiteLog.WithField("component", "api")
	return api.NewClient(postsURL, api.WithLogger(logger)), api.NewClient(zipURL, api.WithLogger(logger))
}

// recorderTB stands in for *testing.T when a test needs a scenario to fail
// without failing itself.
type recorderTB struct {
	name     string
	failed   bool
	cleanups []func()
}

func (r *recorderTB) Name() string      { return r.name }
func (r *recorderTB) Failed() bool      { return r.failed }
func (r *recorderTB) Cleanup(fn func()) { r.cleanups = append(r.cleanups, fn) }
func (r *recorderTB) Helper()           {}

func (r *recorderTB) finish() {
	for i := len(r.cleanups) - 1; i >= 0; i-- {
		r.cleanups[i]()
	}
}
