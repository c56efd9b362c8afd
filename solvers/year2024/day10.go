// Copyright (C) 2022-2026 Jan Gosmann
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package year2024

import (
	"strconv"

	"github.com/jgosmann/aoc/pkg/grid"
	"github.com/jgosmann/aoc/solvers"
)

// findSummits returns all peaks reachable from trailhead via strictly
// increasing steps of one. Peaks reachable over multiple trails are
// returned once per trail.
func findSummits(topoMap *grid.Grid[byte], trailhead grid.Cell) []grid.Cell {
	var summits []grid.Cell
	toVisit := []grid.Cell{trailhead}
	for len(toVisit) > 0 {
		pos := toVisit[len(toVisit)-1]
		toVisit = toVisit[:len(toVisit)-1]
		elevation := topoMap.At(pos)
		if elevation == '9' {
			summits = append(summits, pos)
			continue
		}
		topoMap.Neighbors(pos)(func(neighbor grid.Cell) bool {
			if topoMap.At(neighbor) == elevation+1 {
				toVisit = append(toVisit, neighbor)
			}
			return true
		})
	}
	return summits
}

type day10Solver struct {
	scoreSum  int
	ratingSum int
}

func NewDay10(input string) (solvers.Solver, error) {
	topoMap := grid.FromSeparated('\n', []byte(input))
	solver := &day10Solver{}
	for row := 0; row < topoMap.Height(); row++ {
		for col := 0; col < topoMap.Width(); col++ {
			if topoMap.At(grid.Cell{Row: row, Col: col}) != '0' {
				continue
			}
			summits := findSummits(topoMap, grid.Cell{Row: row, Col: col})
			distinct := make(map[grid.Cell]struct{}, len(summits))
			for _, summit := range summits {
				distinct[summit] = struct{}{}
			}
			solver.scoreSum += len(distinct)
			solver.ratingSum += len(summits)
		}
	}
	return solver, nil
}

func (s *day10Solver) SolvePart1() (solvers.Solution, error) {
	return solvers.WithDescription("Part 1", strconv.Itoa(s.scoreSum)), nil
}

func (s *day10Solver) SolvePart2() (solvers.MaybeSolution, error) {
	return solvers.Present(
		solvers.WithDescription("Part 2", strconv.Itoa(s.ratingSum))), nil
}
