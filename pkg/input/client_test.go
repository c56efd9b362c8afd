// Copyright (C) 2022-2026 Jan Gosmann
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package input

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHTTPClient captures the last request and serves a canned response.
type fakeHTTPClient struct {
	lastRequest *http.Request
	status      int
	body        string
}

func (f *fakeHTTPClient) Do(req *http.Request) (*http.Response, error) {
	f.lastRequest = req
	return &http.Response{
		StatusCode: f.status,
		Status:     http.StatusText(f.status),
		Body:       io.NopCloser(strings.NewReader(f.body)),
		Request:    req,
	}, nil
}

func TestNewClientRejectsInvalidBaseURL(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		baseURL string
	}{
		{"relative path", "not-a-url"},
		{"missing host", "https://"},
		{"bad scheme", "ftp://example.com/"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewClient(tc.baseURL, []byte("secret"))
			assert.Error(t, err)
		})
	}
}

func TestFetchInputRequestShape(t *testing.T) {
	t.Parallel()
	client, err := NewClient("https://adventofcode.com", []byte("s3cr3t"))
	require.NoError(t, err)
	fake := &fakeHTTPClient{status: http.StatusOK, body: "input data\n"}
	client.httpClient = fake

	body, err := client.FetchInput(context.Background(), 2022, 11)
	require.NoError(t, err)
	defer func() {
		_ = body.Close()
	}()

	assert.Equal(t, "https://adventofcode.com/2022/day/11/input", fake.lastRequest.URL.String())
	assert.Equal(t, "session=s3cr3t", fake.lastRequest.Header.Get("Cookie"))

	content, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "input data\n", string(content))
}

func TestFetchInputBadStatus(t *testing.T) {
	t.Parallel()
	client, err := NewClient("https://adventofcode.com/", []byte("s3cr3t"))
	require.NoError(t, err)
	client.httpClient = &fakeHTTPClient{status: http.StatusNotFound, body: "nope"}

	_, err = client.FetchInput(context.Background(), 2022, 11)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadStatus)
}
