// Copyright (C) 2022-2026 Jan Gosmann
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package year2024

import (
	"math/bits"
	"strconv"

	"github.com/jgosmann/aoc/pkg/grid"
	"github.com/jgosmann/aoc/solvers"
)

// Bitmask per fence side of a plot.
const (
	fenceDown  = 0b0001
	fenceUp    = 0b0010
	fenceRight = 0b0100
	fenceLeft  = 0b1000
	fenceAll   = 0b1111
)

type day12Solver struct {
	grid *grid.Grid[byte]
}

func NewDay12(input string) (solvers.Solver, error) {
	return &day12Solver{grid: grid.FromSeparated('\n', []byte(input))}, nil
}

func (s *day12Solver) SolvePart1() (solvers.Solution, error) {
	price := 0
	visited := grid.New(s.grid.Width(), 0, make([]bool, s.grid.Width()*s.grid.Height()))
	for startRow := 0; startRow < s.grid.Height(); startRow++ {
		for startCol := 0; startCol < s.grid.Width(); startCol++ {
			area, perimeter := 0, 0
			toVisit := []grid.Cell{{Row: startRow, Col: startCol}}
			for len(toVisit) > 0 {
				pos := toVisit[len(toVisit)-1]
				toVisit = toVisit[:len(toVisit)-1]
				if visited.At(pos) {
					continue
				}
				visited.Set(pos, true)
				area++

				perimeter += 4
				s.grid.Neighbors(pos)(func(neighbor grid.Cell) bool {
					if s.grid.At(neighbor) == s.grid.At(pos) {
						toVisit = append(toVisit, neighbor)
						perimeter--
					}
					return true
				})
			}
			price += area * perimeter
		}
	}
	return solvers.WithDescription("Part 1", strconv.Itoa(price)), nil
}

func (s *day12Solver) SolvePart2() (solvers.MaybeSolution, error) {
	price := 0
	visited := grid.New(s.grid.Width(), 0, make([]bool, s.grid.Width()*s.grid.Height()))
	for startRow := 0; startRow < s.grid.Height(); startRow++ {
		for startCol := 0; startCol < s.grid.Width(); startCol++ {
			area, perimeter := 0, 0
			toVisit := []grid.Cell{{Row: startRow, Col: startCol}}
			// Straight fence runs must be priced once. When a plot
			// contributes a side, the whole run is traced and marked as
			// counted so later plots of the run skip it.
			countedPerimeters := grid.New(s.grid.Width(), 0,
				make([]uint8, s.grid.Width()*s.grid.Height()))
			for len(toVisit) > 0 {
				pos := toVisit[len(toVisit)-1]
				toVisit = toVisit[:len(toVisit)-1]
				if visited.At(pos) {
					continue
				}
				visited.Set(pos, true)
				area++

				perimeterSides := uint8(fenceAll) &^ countedPerimeters.At(pos)
				s.grid.Neighbors(pos)(func(neighbor grid.Cell) bool {
					if s.grid.At(neighbor) == s.grid.At(pos) {
						perimeterSides &^= sideFromNeighbor(pos, neighbor)
					}
					return true
				})

				for _, trace := range []struct {
					side  uint8
					delta [2]int
				}{{fenceDown, [2]int{1, 0}}, {fenceUp, [2]int{-1, 0}}} {
					if perimeterSides&trace.side == 0 {
						continue
					}
					for c := pos.Col + 1; c < s.grid.Width(); c++ {
						if !s.markFenceRun(countedPerimeters, pos,
							grid.Cell{Row: pos.Row, Col: c}, trace.delta, trace.side) {
							break
						}
					}
					for c := pos.Col - 1; c >= 0; c-- {
						if !s.markFenceRun(countedPerimeters, pos,
							grid.Cell{Row: pos.Row, Col: c}, trace.delta, trace.side) {
							break
						}
					}
				}

				for _, trace := range []struct {
					side  uint8
					delta [2]int
				}{{fenceRight, [2]int{0, 1}}, {fenceLeft, [2]int{0, -1}}} {
					if perimeterSides&trace.side == 0 {
						continue
					}
					for r := pos.Row + 1; r < s.grid.Height(); r++ {
						if !s.markFenceRun(countedPerimeters, pos,
							grid.Cell{Row: r, Col: pos.Col}, trace.delta, trace.side) {
							break
						}
					}
					for r := pos.Row - 1; r >= 0; r-- {
						if !s.markFenceRun(countedPerimeters, pos,
							grid.Cell{Row: r, Col: pos.Col}, trace.delta, trace.side) {
							break
						}
					}
				}

				perimeter += bits.OnesCount8(perimeterSides)
				s.grid.Neighbors(pos)(func(neighbor grid.Cell) bool {
					if s.grid.At(neighbor) == s.grid.At(pos) {
						toVisit = append(toVisit, neighbor)
					}
					return true
				})
			}
			price += area * perimeter
		}
	}
	return solvers.Present(
		solvers.WithDescription("Part 2", strconv.Itoa(price))), nil
}

// markFenceRun marks side as counted at cell if cell continues the fence
// run started at origin, and reports whether tracing should continue.
func (s *day12Solver) markFenceRun(
	countedPerimeters *grid.Grid[uint8], origin, cell grid.Cell, delta [2]int, side uint8,
) bool {
	if s.grid.At(cell) != s.grid.At(origin) || !s.isFence(cell, delta) {
		return false
	}
	countedPerimeters.Set(cell, countedPerimeters.At(cell)|side)
	return true
}

// isFence reports whether the plot at pos has a fence towards delta, i.e.
// the adjacent plot belongs to a different region or lies off the map.
func (s *day12Solver) isFence(pos grid.Cell, delta [2]int) bool {
	neighbor := grid.Cell{Row: pos.Row + delta[0], Col: pos.Col + delta[1]}
	if neighbor.Row < 0 || neighbor.Row >= s.grid.Height() ||
		neighbor.Col < 0 || neighbor.Col >= s.grid.Width() {
		return true
	}
	return s.grid.At(pos) != s.grid.At(neighbor)
}

func sideFromNeighbor(pos, neighbor grid.Cell) uint8 {
	switch {
	case pos.Row < neighbor.Row && pos.Col == neighbor.Col:
		return fenceDown
	case pos.Row > neighbor.Row && pos.Col == neighbor.Col:
		return fenceUp
	case pos.Row == neighbor.Row && pos.Col < neighbor.Col:
		return fenceRight
	case pos.Row == neighbor.Row && pos.Col > neighbor.Col:
		return fenceLeft
	}
	panic("cells are not neighboring")
}
