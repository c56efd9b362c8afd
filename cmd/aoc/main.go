// Copyright (C) 2022-2026 Jan Gosmann
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jgosmann/aoc/cmd/aoc/config"
	"github.com/jgosmann/aoc/pkg/logging"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}

		level, err := logging.ParseLevel(config.Global.Log.Level)
		if err != nil {
			level = slog.LevelWarn
		}
		if verbose {
			level = slog.LevelDebug
		}
		logging.SetDefault(logging.New(logging.Config{
			Level: level,
			JSON:  config.Global.Log.JSON,
		}))
		return nil
	}
}
