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
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// FetchFunc retrieves the content for a missing cache entry as a byte
// stream. It is invoked at most once per missing key.
type FetchFunc func(ctx context.Context, key Key) (io.ReadCloser, error)

// FileCache stores one immutable file per puzzle key under a directory.
// An entry, once written, is treated as valid forever; there is no expiry
// and no invalidation.
//
// The cache performs no locking and no atomic rename-on-write, so
// concurrent process invocations sharing a directory may observe a partial
// write. Single-shot CLI usage does not hit this.
type FileCache struct {
	directory string
	fetch     FetchFunc
}

// NewFileCache creates the cache directory if it is missing.
func NewFileCache(directory string, fetch FetchFunc) (*FileCache, error) {
	if _, err := os.Stat(directory); errors.Is(err, fs.ErrNotExist) {
		if err := os.MkdirAll(directory, 0o755); err != nil {
			return nil, fmt.Errorf("creating cache directory %s: %w", directory, err)
		}
	}
	return &FileCache{directory: directory, fetch: fetch}, nil
}

// Get returns the cached content for key, fetching and writing it on first
// access. The content must be valid UTF-8.
func (c *FileCache) Get(ctx context.Context, key Key) (string, error) {
	path := c.pathForKey(key)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := c.populate(ctx, key, path); err != nil {
			return "", err
		}
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read from %s: %w", path, err)
	}
	if !utf8.Valid(content) {
		return "", fmt.Errorf("read from %s: content is not valid UTF-8", path)
	}
	return string(content), nil
}

// populate streams the fetched content into the cache file as it arrives.
func (c *FileCache) populate(ctx context.Context, key Key, path string) error {
	source, err := c.fetch(ctx, key)
	if err != nil {
		return err
	}
	defer func() {
		_ = source.Close()
	}()

	sink, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", path, err)
	}
	if _, err := io.Copy(sink, source); err != nil {
		_ = sink.Close()
		return fmt.Errorf("writing file: %s: %w", path, err)
	}
	return sink.Close()
}

func (c *FileCache) pathForKey(key Key) string {
	return filepath.Join(c.directory, key.String())
}
