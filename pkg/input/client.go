// Copyright (C) 2022-2026 Jan Gosmann
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/awnumar/memguard"
)

// ErrBadStatus is returned when the puzzle input endpoint responds with a
// non-2xx status code.
var ErrBadStatus = errors.New("unexpected HTTP status")

// HTTPClient abstracts the underlying HTTP transport for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches puzzle inputs over HTTP, authenticating with the session
// cookie of the Advent of Code website.
//
// The session id is held in a memguard enclave and only decrypted for the
// duration of building a request, so the secret never lingers in plain
// process memory.
type Client struct {
	httpClient HTTPClient
	baseURL    string
	sessionID  *memguard.Enclave
}

// NewClient validates baseURL and seals sessionID. The base URL must be an
// absolute http(s) URL; a trailing slash is appended if missing. sessionID
// is wiped by memguard after sealing.
func NewClient(baseURL string, sessionID []byte) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("client base URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("client base URL %q: scheme must be http or https", baseURL)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("client base URL %q: missing host", baseURL)
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		sessionID:  memguard.NewEnclave(sessionID),
	}, nil
}

// FetchInput performs a single authenticated GET for the given puzzle and
// returns the response body as a lazy, single-pass byte stream. The caller
// must close the returned reader. A non-2xx response is an error wrapping
// ErrBadStatus; no retry is attempted.
func (c *Client) FetchInput(ctx context.Context, year, day int) (io.ReadCloser, error) {
	requestURL := fmt.Sprintf("%s%d/day/%d/input", c.baseURL, year, day)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", requestURL, err)
	}

	session, err := c.sessionID.Open()
	if err != nil {
		return nil, fmt.Errorf("opening session id enclave: %w", err)
	}
	req.Header.Set("Cookie", "session="+session.String())
	session.Destroy()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP GET %s: %w", requestURL, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: %s for %s", ErrBadStatus, resp.Status, requestURL)
	}
	return resp.Body, nil
}
