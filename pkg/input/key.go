// Copyright (C) 2022-2026 Jan Gosmann
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package input acquires puzzle inputs: an authenticated HTTP client for
// the Advent of Code website and a file-based cache in front of it.
package input

import "fmt"

// Key identifies a single puzzle instance by year and day.
type Key struct {
	Year int
	Day  int
}

// String serializes the key for use as a cache file name, e.g. "2022-11".
func (k Key) String() string {
	return fmt.Sprintf("%04d-%02d", k.Year, k.Day)
}
