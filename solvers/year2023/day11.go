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

type day11Solver struct {
	galaxies   []grid.Cell
	galaxyRows map[int]struct{}
	galaxyCols map[int]struct{}
}

// NewDay11 locates the galaxies in the cosmic image.
func NewDay11(input string) (solvers.Solver, error) {
	image := grid.FromSeparated('\n', []byte(input))
	s := &day11Solver{
		galaxyRows: map[int]struct{}{},
		galaxyCols: map[int]struct{}{},
	}
	n := 0
	image.All()(func(cell byte) bool {
		if cell == '#' {
			galaxy := image.NthIndex(n)
			s.galaxies = append(s.galaxies, galaxy)
			s.galaxyRows[galaxy.Row] = struct{}{}
			s.galaxyCols[galaxy.Col] = struct{}{}
		}
		n++
		return true
	})
	return s, nil
}

// sumShortestPaths sums pairwise distances, counting each empty row or
// column crossed as cosmologicalConstant steps.
func (s *day11Solver) sumShortestPaths(cosmologicalConstant int) int {
	sum := 0
	for i, a := range s.galaxies {
		for _, b := range s.galaxies[i+1:] {
			for _, row := range orderedRange(a.Row, b.Row) {
				if _, ok := s.galaxyRows[row]; ok {
					sum++
				} else {
					sum += cosmologicalConstant
				}
			}
			for _, col := range orderedRange(a.Col, b.Col) {
				if _, ok := s.galaxyCols[col]; ok {
					sum++
				} else {
					sum += cosmologicalConstant
				}
			}
		}
	}
	return sum
}

func orderedRange(a, b int) []int {
	if a > b {
		a, b = b, a
	}
	values := make([]int, 0, b-a)
	for v := a; v < b; v++ {
		values = append(values, v)
	}
	return values
}

func (s *day11Solver) SolvePart1() (solvers.Solution, error) {
	return solvers.WithDescription("Part 1", strconv.Itoa(s.sumShortestPaths(2))), nil
}

func (s *day11Solver) SolvePart2() (solvers.MaybeSolution, error) {
	return solvers.Present(solvers.WithDescription(
		"Part 2", strconv.Itoa(s.sumShortestPaths(1_000_000)))), nil
}
