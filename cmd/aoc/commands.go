// Copyright (C) 2022-2026 Jan Gosmann
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"github.com/spf13/cobra"
)

// --- Global Command Variables ---
var (
	requestedDays []int
	requestedYear int
	verbose       bool

	rootCmd = &cobra.Command{
		Use:   "aoc",
		Short: "Solve Advent of Code puzzles",
		Long: `aoc fetches your puzzle inputs from adventofcode.com, caches them
locally, and runs the solver for the requested days.

Run without a subcommand to solve today's puzzle.`,
		RunE: runSolve, // Defined in cmd_solve.go
	}

	solveCmd = &cobra.Command{
		Use:   "solve",
		Short: "Solve puzzles",
		RunE:  runSolve, // Defined in cmd_solve.go
	}

	setSessionIDCmd = &cobra.Command{
		Use:   "set-session-id",
		Short: "Set the session ID for interacting with the AoC API",
		RunE:  runSetSessionID, // Defined in cmd_set_session_id.go
	}

	createCmd = &cobra.Command{
		Use:   "create",
		Short: "Create the solver module for a day from the template",
		RunE:  runCreate, // Defined in cmd_create.go
	}
)

// addDateFlags registers the -d/--days and -y/--year flags shared by the
// commands operating on puzzles.
func addDateFlags(cmd *cobra.Command) {
	cmd.Flags().IntSliceVarP(&requestedDays, "days", "d", nil,
		"Days of the advent calendar to solve. Defaults to the current day "+
			"(EST/UTC-5, the timezone in which puzzles are published at midnight).")
	cmd.Flags().IntVarP(&requestedYear, "year", "y", 0,
		"Year of the advent calendar to solve. Defaults to the current year.")
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false,
		"Enable debug logging")

	addDateFlags(rootCmd)

	rootCmd.AddCommand(solveCmd)
	addDateFlags(solveCmd)

	rootCmd.AddCommand(setSessionIDCmd)

	rootCmd.AddCommand(createCmd)
	addDateFlags(createCmd)
}
