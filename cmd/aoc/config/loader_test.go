// Copyright (C) 2022-2026 Jan Gosmann
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntoAppliesDefaults(t *testing.T) {
	var cfg AocConfig
	require.NoError(t, parseInto([]byte(""), &cfg))

	assert.Equal(t, "https://adventofcode.com/", cfg.BaseURL)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.False(t, cfg.Log.JSON)
	assert.Empty(t, cfg.CacheDir)
}

func TestParseIntoOverridesDefaults(t *testing.T) {
	var cfg AocConfig
	data := []byte("base_url: https://example.com/\ncache_dir: /tmp/aoc\nlog:\n  level: debug\n  json: true\n")
	require.NoError(t, parseInto(data, &cfg))

	assert.Equal(t, "https://example.com/", cfg.BaseURL)
	assert.Equal(t, "/tmp/aoc", cfg.CacheDir)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.JSON)
}

func TestParseIntoRejectsInvalidConfig(t *testing.T) {
	var cfg AocConfig
	assert.Error(t, parseInto([]byte("base_url: not a url\n"), &cfg))
	assert.Error(t, parseInto([]byte("log:\n  level: loud\n"), &cfg))
}

func TestCacheDirPrefersConfiguredOverride(t *testing.T) {
	orig := Global
	t.Cleanup(func() { Global = orig })

	Global.CacheDir = "/tmp/aoc-test-cache"
	assert.Equal(t, "/tmp/aoc-test-cache", CacheDir())

	Global.CacheDir = ""
	assert.NotEmpty(t, CacheDir())
}
