//go:build e2e

// Package e2e provides end-to-end tests for the HOTEL PLANISPHERE practice
// site and the JSON APIs it is paired with.
//
// These tests are isolated from the standard test suite via build tags.
// They require a Chrome browser (auto-downloaded by Rod if not present)
// and are intended for CI pipelines or explicit local testing.
//
// Running E2E tests:
//
//	go test -tags=e2e ./e2e/...
//
// Running without failure screenshots:
//
//	go test -tags=e2e ./e2e/... -args -screenshot.enabled=false
//
// By default every test starts the local fixture site from cmd/hotel-site on
// a random port. Set HOTEL_BASE_URL, API_BASE_URL and ZIP_BASE_URL (in the
// environment or a .env file next to this package) to target real hosts.
//
// A failing browser test leaves one screenshot under
// screenshots/<yyyyMMdd>/<TestName>_<yyyyMMdd_HHmmss>.png.
package e2e
