// Copyright (C) 2022-2026 Jan Gosmann
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package year2023

import (
	"strconv"

	"github.com/jgosmann/aoc/pkg/grid"
	"github.com/jgosmann/aoc/solvers"
)

// partNumberLoc addresses a horizontal digit run in the schematic.
type partNumberLoc struct {
	row        int
	start, end int // column span, end exclusive
}

func partNumberLocAt(schematic *grid.Grid[byte], seed grid.Cell) (partNumberLoc, bool) {
	if !isASCIIDigit(schematic.At(seed)) {
		return partNumberLoc{}, false
	}
	start := seed.Col
	for start > 0 && isASCIIDigit(schematic.At(grid.Cell{Row: seed.Row, Col: start - 1})) {
		start--
	}
	end := seed.Col
	for end < schematic.Width() && isASCIIDigit(schematic.At(grid.Cell{Row: seed.Row, Col: end})) {
		end++
	}
	return partNumberLoc{row: seed.Row, start: start, end: end}, true
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

type day3Solver struct {
	partNumberSum int
	gearRatioSum  int
}

// NewDay3 scans the engine schematic for part numbers and gear ratios.
func NewDay3(input string) (solvers.Solver, error) {
	schematic := grid.FromSeparated('\n', []byte(input))

	s := &day3Solver{}
	for row := 0; row < schematic.Height(); row++ {
		for col := 0; col < schematic.Width(); col++ {
			symbol := schematic.At(grid.Cell{Row: row, Col: col})
			if symbol == '.' || isASCIIDigit(symbol) {
				continue
			}

			// Distinct digit runs adjacent to the symbol; the same run may
			// be seeded by several neighbor cells.
			locs := map[partNumberLoc]struct{}{}
			schematic.Surround(grid.Cell{Row: row, Col: col})(func(neighbor grid.Cell) bool {
				if loc, ok := partNumberLocAt(schematic, neighbor); ok {
					locs[loc] = struct{}{}
				}
				return true
			})

			partNumbers := make([]int, 0, len(locs))
			for loc := range locs {
				value, err := strconv.Atoi(string(schematic.RowSpan(loc.row, loc.start, loc.end)))
				if err != nil {
					return nil, err
				}
				partNumbers = append(partNumbers, value)
			}

			for _, value := range partNumbers {
				s.partNumberSum += value
			}
			if symbol == '*' && len(partNumbers) == 2 {
				s.gearRatioSum += partNumbers[0] * partNumbers[1]
			}
		}
	}
	return s, nil
}

func (s *day3Solver) SolvePart1() (solvers.Solution, error) {
	return solvers.WithDescription("Sum of part numbers", strconv.Itoa(s.partNumberSum)), nil
}

func (s *day3Solver) SolvePart2() (solvers.MaybeSolution, error) {
	return solvers.Present(
		solvers.WithDescription("Sum of gear ratios", strconv.Itoa(s.gearRatioSum))), nil
}
