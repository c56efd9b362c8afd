// Copyright (C) 2022-2026 Jan Gosmann
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package dispatch maps a puzzle key to the matching solver constructor.
//
// The table below is maintained by the `aoc create` command, which inserts
// entries (and year imports) at the marker comments. Do not remove the
// markers.
package dispatch

import (
	"errors"
	"fmt"

	"github.com/jgosmann/aoc/solvers"
	"github.com/jgosmann/aoc/solvers/year2023"
	"github.com/jgosmann/aoc/solvers/year2024"
	"github.com/jgosmann/aoc/solvers/year2025"
	// <<IMPORT MARKER>>
)

// ErrNoSolver is returned when no solver is registered for a puzzle key.
var ErrNoSolver = errors.New("no solver")

// Key identifies a puzzle by year and day.
type Key struct {
	Year int
	Day  int
}

// Constructor builds a solver from the raw puzzle input text.
type Constructor func(input string) (solvers.Solver, error)

var constructors = map[Key]Constructor{
	{Year: 2023, Day: 1}:  year2023.NewDay1,
	{Year: 2023, Day: 3}:  year2023.NewDay3,
	{Year: 2023, Day: 4}:  year2023.NewDay4,
	{Year: 2023, Day: 5}:  year2023.NewDay5,
	{Year: 2023, Day: 11}: year2023.NewDay11,
	{Year: 2023, Day: 12}: year2023.NewDay12,
	{Year: 2023, Day: 16}: year2023.NewDay16,
	{Year: 2023, Day: 17}: year2023.NewDay17,
	{Year: 2023, Day: 25}: year2023.NewDay25,
	{Year: 2024, Day: 4}:  year2024.NewDay4,
	{Year: 2024, Day: 10}: year2024.NewDay10,
	{Year: 2024, Day: 12}: year2024.NewDay12,
	{Year: 2024, Day: 13}: year2024.NewDay13,
	{Year: 2024, Day: 23}: year2024.NewDay23,
	{Year: 2025, Day: 1}:  year2025.NewDay1,
	// <<INSERT MARKER>>
}

// New constructs the solver registered for (year, day) from input.
func New(input string, year, day int) (solvers.Solver, error) {
	constructor, ok := constructors[Key{Year: year, Day: day}]
	if !ok {
		return nil, fmt.Errorf("%w for day %d of year %d", ErrNoSolver, day, year)
	}
	return constructor(input)
}
