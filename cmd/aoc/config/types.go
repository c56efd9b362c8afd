// Copyright (C) 2022-2026 Jan Gosmann
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package config loads the aoc CLI configuration from ~/.aoc/aoc.yaml,
// creating the file with defaults on first run.
package config

type AocConfig struct {
	// BaseURL is the Advent of Code endpoint puzzle inputs are fetched
	// from. Must end with a trailing slash.
	BaseURL string `yaml:"base_url" validate:"required,url"`

	// CacheDir overrides the puzzle input cache location. Empty selects
	// the user cache directory.
	CacheDir string `yaml:"cache_dir,omitempty"`

	Log LogConfig `yaml:"log"`
}

type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	JSON  bool   `yaml:"json"`
}

func DefaultConfig() AocConfig {
	return AocConfig{
		BaseURL: "https://adventofcode.com/",
		Log: LogConfig{
			Level: "warn",
		},
	}
}
