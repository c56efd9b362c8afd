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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingFetch returns the given content and records how often it was
// invoked.
type countingFetch struct {
	content string
	calls   int
}

func (f *countingFetch) fetch(_ context.Context, _ Key) (io.ReadCloser, error) {
	f.calls++
	return io.NopCloser(strings.NewReader(f.content)), nil
}

func TestKeySerialization(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "2022-11", Key{Year: 2022, Day: 11}.String())
	assert.Equal(t, "2023-01", Key{Year: 2023, Day: 1}.String())
}

func TestGetPopulatesOnFirstAccess(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	fetch := &countingFetch{content: "puzzle input\n"}
	cache, err := NewFileCache(dir, fetch.fetch)
	require.NoError(t, err)

	content, err := cache.Get(context.Background(), Key{Year: 2022, Day: 11})
	require.NoError(t, err)
	assert.Equal(t, "puzzle input\n", content)
	assert.Equal(t, 1, fetch.calls)

	written, err := os.ReadFile(filepath.Join(dir, "2022-11"))
	require.NoError(t, err)
	assert.Equal(t, "puzzle input\n", string(written))
}

func TestGetIsIdempotent(t *testing.T) {
	t.Parallel()
	fetch := &countingFetch{content: "cached\n"}
	cache, err := NewFileCache(t.TempDir(), fetch.fetch)
	require.NoError(t, err)

	first, err := cache.Get(context.Background(), Key{Year: 2022, Day: 11})
	require.NoError(t, err)
	second, err := cache.Get(context.Background(), Key{Year: 2022, Day: 11})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, fetch.calls)
}

func TestGetDistinguishesKeys(t *testing.T) {
	t.Parallel()
	fetch := &countingFetch{content: "x"}
	cache, err := NewFileCache(t.TempDir(), fetch.fetch)
	require.NoError(t, err)

	_, err = cache.Get(context.Background(), Key{Year: 2022, Day: 11})
	require.NoError(t, err)
	_, err = cache.Get(context.Background(), Key{Year: 2022, Day: 12})
	require.NoError(t, err)
	assert.Equal(t, 2, fetch.calls)
}

func TestGetRejectsInvalidUTF8(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2022-11"), []byte{0xff, 0xfe}, 0o644))
	fetch := &countingFetch{}
	cache, err := NewFileCache(dir, fetch.fetch)
	require.NoError(t, err)

	_, err = cache.Get(context.Background(), Key{Year: 2022, Day: 11})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid UTF-8")
	assert.Zero(t, fetch.calls)
}

func TestNewFileCacheCreatesDirectory(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "nested", "cache")
	_, err := NewFileCache(dir, (&countingFetch{}).fetch)
	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
