// Copyright (C) 2022-2026 Jan Gosmann
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package year2024 contains the puzzle solvers for Advent of Code 2024.
package year2024

import (
	"strconv"

	"github.com/jgosmann/aoc/pkg/grid"
	"github.com/jgosmann/aoc/solvers"
)

var xmasDirections = [8][2]int{
	{0, -1}, {0, 1}, {-1, 0}, {1, 0},
	{-1, -1}, {1, 1}, {-1, 1}, {1, -1},
}

// The two diagonals of an X; each pair must spell MAS in one of the two
// reading directions.
var crossMasDirectionPairs = [4][2][2]int{
	{{1, 1}, {1, -1}},
	{{-1, -1}, {1, -1}},
	{{1, 1}, {-1, 1}},
	{{-1, -1}, {-1, 1}},
}

type day4Solver struct {
	grid *grid.Grid[byte]
}

func NewDay4(input string) (solvers.Solver, error) {
	return &day4Solver{grid: grid.FromSeparated('\n', []byte(input))}, nil
}

func (s *day4Solver) SolvePart1() (solvers.Solution, error) {
	xmasCount := 0
	for row := 0; row < s.grid.Height(); row++ {
		for col := 0; col < s.grid.Width(); col++ {
			for _, dir := range xmasDirections {
				if s.checkForXmas(grid.Cell{Row: row, Col: col}, dir) {
					xmasCount++
				}
			}
		}
	}
	return solvers.WithDescription("Part 1", strconv.Itoa(xmasCount)), nil
}

func (s *day4Solver) SolvePart2() (solvers.MaybeSolution, error) {
	crossMasCount := 0
	for row := 1; row < s.grid.Height()-1; row++ {
		for col := 1; col < s.grid.Width()-1; col++ {
			c := grid.Cell{Row: row, Col: col}
			for _, pair := range crossMasDirectionPairs {
				if s.checkForMas(c, pair[0]) && s.checkForMas(c, pair[1]) {
					crossMasCount++
					break
				}
			}
		}
	}
	return solvers.Present(
		solvers.WithDescription("Part 2", strconv.Itoa(crossMasCount))), nil
}

func (s *day4Solver) checkForXmas(c grid.Cell, dir [2]int) bool {
	if s.grid.At(c) != 'X' {
		return false
	}
	if dir[0] < 0 && c.Row < 3 {
		return false
	}
	if dir[0] > 0 && c.Row >= s.grid.Height()-3 {
		return false
	}
	if dir[1] < 0 && c.Col < 3 {
		return false
	}
	if dir[1] > 0 && c.Col >= s.grid.Width()-3 {
		return false
	}
	for i, want := range []byte("MAS") {
		cell := grid.Cell{Row: c.Row + (i+1)*dir[0], Col: c.Col + (i+1)*dir[1]}
		if s.grid.At(cell) != want {
			return false
		}
	}
	return true
}

func (s *day4Solver) checkForMas(c grid.Cell, dir [2]int) bool {
	if s.grid.At(c) != 'A' {
		return false
	}
	return s.grid.At(grid.Cell{Row: c.Row - dir[0], Col: c.Col - dir[1]}) == 'M' &&
		s.grid.At(grid.Cell{Row: c.Row + dir[0], Col: c.Col + dir[1]}) == 'S'
}
