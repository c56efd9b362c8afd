// Copyright (C) 2022-2026 Jan Gosmann
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/jgosmann/aoc/cmd/aoc/config"
	"github.com/jgosmann/aoc/pkg/input"
	"github.com/jgosmann/aoc/pkg/logging"
	"github.com/jgosmann/aoc/pkg/ux"
	"github.com/jgosmann/aoc/solvers/dispatch"
)

// nowFunc is swapped in tests to pin the current date.
var nowFunc = time.Now

// currentAoCDate returns the current date in EST/UTC-5, the timezone in
// which puzzles are published at midnight.
func currentAoCDate() time.Time {
	return nowFunc().In(time.FixedZone("UTC-5", -5*60*60))
}

// resolveRequestedDays fills the year and days flags with the current AoC
// date where unset.
func resolveRequestedDays(year int, days []int) (int, []int) {
	if year != 0 && len(days) > 0 {
		return year, days
	}
	now := currentAoCDate()
	if year == 0 {
		year = now.Year()
	}
	if len(days) == 0 {
		days = []int{now.Day()}
	}
	return year, days
}

func runSolve(cmd *cobra.Command, args []string) error {
	year, days := resolveRequestedDays(requestedYear, requestedDays)
	store := NewDefaultSessionStore()

	// The client prompts for the session ID on first use, so it must not
	// be constructed unless an input actually needs fetching.
	client := sync.OnceValues(func() (*input.Client, error) {
		enclave, err := sessionID(cmd.Context(), store)
		if err != nil {
			return nil, fmt.Errorf("missing session ID: %w", err)
		}
		session, err := enclave.Open()
		if err != nil {
			return nil, fmt.Errorf("opening session id enclave: %w", err)
		}
		defer session.Destroy()
		return input.NewClient(config.Global.BaseURL, session.Bytes())
	})

	inputCache, err := input.NewFileCache(config.CacheDir(),
		func(ctx context.Context, key input.Key) (io.ReadCloser, error) {
			c, err := client()
			if err != nil {
				return nil, err
			}
			return c.FetchInput(ctx, key.Year, key.Day)
		})
	if err != nil {
		return err
	}

	for _, day := range days {
		logging.Default().Debug("solving puzzle", "year", year, "day", day)
		fmt.Println()
		fmt.Printf("%s %s\n", ux.IconCalendar.Render(),
			ux.Styles.Underline.Render(fmt.Sprintf("%d, day %s",
				year, ux.Styles.Bold.Render(strconv.Itoa(day)))))

		puzzleInput, err := inputCache.Get(cmd.Context(), input.Key{Year: year, Day: day})
		if err != nil {
			return err
		}
		solver, err := dispatch.New(puzzleInput, year, day)
		if err != nil {
			return err
		}

		part1, err := solver.SolvePart1()
		if err != nil {
			return err
		}
		fmt.Printf("%s %s\n", ux.IconStar.Render(), part1)

		part2, err := solver.SolvePart2()
		if err != nil {
			return err
		}
		fmt.Printf("%s %s\n", ux.IconStar.Render(), part2)
	}

	return nil
}
