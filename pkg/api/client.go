// Package api provides small clients for the JSON APIs the suite asserts on.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Default endpoints.
const (
	DefaultPostsURL = "https://jsonplaceholder.typicode.com"
	DefaultZipURL   = "https://zipcloud.ibsnet.co.jp"
)

// Response is the raw result of a request.
type Response struct {
	StatusCode int
	Body       []byte
}

// Client sends GET requests to one base URL.
type Client struct {
	baseURL string
	http    *http.Client
	log     logrus.FieldLogger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.http = hc
	}
}

// WithLogger sets the logger requests are reported to.
func WithLogger(l logrus.FieldLogger) ClientOption {
	return func(c *Client) {
		c.log = l
	}
}

// NewClient creates a client for baseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get requests path with the given query and returns the raw response.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", u, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body of %s: %w", u, err)
	}

	c.log.WithFields(logrus.Fields{
		"url":    u,
		"status": resp.StatusCode,
		"bytes":  len(body),
	}).Debug("api response")

	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}

// getJSON decodes the body into v regardless of status code and returns the
// status code.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, v any) (int, error) {
	resp, err := c.Get(ctx, path, query)
	if err != nil {
		return 0, err
	}
	if err := json.Unmarshal(resp.Body, v); err != nil {
		return resp.StatusCode, fmt.Errorf("decode %s: %w", path, err)
	}
	return resp.StatusCode, nil
}
