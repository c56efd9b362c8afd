// Copyright (C) 2022-2026 Jan Gosmann
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package year2023

import (
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/jgosmann/aoc/pkg/grid"
	"github.com/jgosmann/aoc/solvers"
)

type beamDir int

const (
	beamLeft beamDir = iota
	beamRight
	beamUp
	beamDown
)

type beam struct {
	dir beamDir
	pos grid.Cell
}

func pushBeam(queue []beam, contraption *grid.Grid[byte], dir beamDir, pos grid.Cell) []beam {
	switch dir {
	case beamLeft:
		if pos.Col > 0 {
			queue = append(queue, beam{dir: beamLeft, pos: grid.Cell{Row: pos.Row, Col: pos.Col - 1}})
		}
	case beamRight:
		if pos.Col < contraption.Width()-1 {
			queue = append(queue, beam{dir: beamRight, pos: grid.Cell{Row: pos.Row, Col: pos.Col + 1}})
		}
	case beamUp:
		if pos.Row > 0 {
			queue = append(queue, beam{dir: beamUp, pos: grid.Cell{Row: pos.Row - 1, Col: pos.Col}})
		}
	case beamDown:
		if pos.Row < contraption.Height()-1 {
			queue = append(queue, beam{dir: beamDown, pos: grid.Cell{Row: pos.Row + 1, Col: pos.Col}})
		}
	}
	return queue
}

func countEnergizedTiles(contraption *grid.Grid[byte], start beam) int {
	energized := map[grid.Cell]struct{}{}
	seen := map[beam]struct{}{}
	queue := []beam{start}
	for len(queue) > 0 {
		current := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		if _, ok := seen[current]; ok {
			continue
		}
		seen[current] = struct{}{}
		energized[current.pos] = struct{}{}

		tile := contraption.At(current.pos)
		switch {
		case (current.dir == beamLeft && tile == '\\') || (current.dir == beamRight && tile == '/'):
			queue = pushBeam(queue, contraption, beamUp, current.pos)
		case (current.dir == beamRight && tile == '\\') || (current.dir == beamLeft && tile == '/'):
			queue = pushBeam(queue, contraption, beamDown, current.pos)
		case (current.dir == beamUp && tile == '\\') || (current.dir == beamDown && tile == '/'):
			queue = pushBeam(queue, contraption, beamLeft, current.pos)
		case (current.dir == beamDown && tile == '\\') || (current.dir == beamUp && tile == '/'):
			queue = pushBeam(queue, contraption, beamRight, current.pos)
		case (current.dir == beamLeft || current.dir == beamRight) && tile == '|':
			queue = pushBeam(queue, contraption, beamUp, current.pos)
			queue = pushBeam(queue, contraption, beamDown, current.pos)
		case (current.dir == beamUp || current.dir == beamDown) && tile == '-':
			queue = pushBeam(queue, contraption, beamLeft, current.pos)
			queue = pushBeam(queue, contraption, beamRight, current.pos)
		default:
			queue = pushBeam(queue, contraption, current.dir, current.pos)
		}
	}
	return len(energized)
}

type day16Solver struct {
	contraption *grid.Grid[byte]
}

// NewDay16 traces light beams through the mirror contraption.
func NewDay16(input string) (solvers.Solver, error) {
	return &day16Solver{contraption: grid.FromSeparated('\n', []byte(input))}, nil
}

func (s *day16Solver) SolvePart1() (solvers.Solution, error) {
	count := countEnergizedTiles(s.contraption, beam{dir: beamRight, pos: grid.Cell{}})
	return solvers.WithDescription("Energized tiles", strconv.Itoa(count)), nil
}

func (s *day16Solver) SolvePart2() (solvers.MaybeSolution, error) {
	var possibleStarts []beam
	for col := 0; col < s.contraption.Width(); col++ {
		possibleStarts = append(possibleStarts,
			beam{dir: beamUp, pos: grid.Cell{Row: s.contraption.Height() - 1, Col: col}},
			beam{dir: beamDown, pos: grid.Cell{Row: 0, Col: col}})
	}
	for row := 0; row < s.contraption.Height(); row++ {
		possibleStarts = append(possibleStarts,
			beam{dir: beamLeft, pos: grid.Cell{Row: row, Col: s.contraption.Width() - 1}},
			beam{dir: beamRight, pos: grid.Cell{Row: row, Col: 0}})
	}

	// Starts are independent; fan the pure traces out across the CPUs and
	// reduce to the maximum.
	counts := make([]int, len(possibleStarts))
	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())
	for i, start := range possibleStarts {
		g.Go(func() error {
			counts[i] = countEnergizedTiles(s.contraption, start)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return solvers.MaybeSolution{}, err
	}

	maxEnergization := 0
	for _, count := range counts {
		maxEnergization = max(maxEnergization, count)
	}
	return solvers.Present(
		solvers.WithDescription("Part 2", strconv.Itoa(maxEnergization))), nil
}
