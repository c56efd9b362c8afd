// Copyright (C) 2022-2026 Jan Gosmann
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package year2023

import (
	"container/heap"
	"fmt"
	"strconv"

	"github.com/jgosmann/aoc/pkg/grid"
	"github.com/jgosmann/aoc/solvers"
)

type crucibleDir int

const (
	crucibleLeft crucibleDir = iota
	crucibleRight
	crucibleUp
	crucibleDown
)

func (d crucibleDir) invert() crucibleDir {
	switch d {
	case crucibleLeft:
		return crucibleRight
	case crucibleRight:
		return crucibleLeft
	case crucibleUp:
		return crucibleDown
	default:
		return crucibleUp
	}
}

type crucibleVisitedKey struct {
	pos      grid.Cell
	dir      crucibleDir
	runSteps int
}

type cruciblePathState struct {
	heatloss int
	pos      grid.Cell
	dir      crucibleDir
	runSteps int // steps taken since the last direction change
	target   grid.Cell
}

// minHeatlossBound lower-bounds the total heat loss via the Manhattan
// distance to the target (every remaining tile costs at least 1).
func (s cruciblePathState) minHeatlossBound() int {
	return s.heatloss + (s.target.Row - s.pos.Row) + (s.target.Col - s.pos.Col)
}

func (s cruciblePathState) isValidTravelDir(dir crucibleDir, minSteps, maxSteps int, height, width int) bool {
	if s.dir.invert() == dir {
		return false
	}
	if s.dir == dir && s.runSteps >= maxSteps {
		return false
	}
	if minSteps > 0 && s.dir != dir && s.runSteps < minSteps {
		return false
	}
	switch dir {
	case crucibleDown:
		return s.pos.Row < height-1
	case crucibleUp:
		return s.pos.Row > 0
	case crucibleLeft:
		return s.pos.Col > 0
	default:
		return s.pos.Col < width-1
	}
}

// crucibleQueue is a min-heap ordered by the heat-loss bound.
type crucibleQueue []cruciblePathState

func (q crucibleQueue) Len() int { return len(q) }
func (q crucibleQueue) Less(i, j int) bool {
	return q[i].minHeatlossBound() < q[j].minHeatlossBound()
}
func (q crucibleQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *crucibleQueue) Push(x any) {
	*q = append(*q, x.(cruciblePathState))
}

func (q *crucibleQueue) Pop() any {
	old := *q
	state := old[len(old)-1]
	*q = old[:len(old)-1]
	return state
}

// findMinHeatloss runs an A* search over (position, direction, straight-run
// length) states. minSteps of 0 means no minimum straight-run constraint.
func findMinHeatloss(city *grid.Grid[byte], minSteps, maxSteps int) (int, error) {
	target := grid.Cell{Row: city.Height() - 1, Col: city.Width() - 1}
	queue := &crucibleQueue{
		{dir: crucibleDown, target: target},
		{dir: crucibleRight, target: target},
	}
	heap.Init(queue)
	visited := map[crucibleVisitedKey]int{}
	for queue.Len() > 0 {
		state := heap.Pop(queue).(cruciblePathState)
		if state.pos == target && state.runSteps >= minSteps {
			return state.heatloss, nil
		}

		key := crucibleVisitedKey{pos: state.pos, dir: state.dir, runSteps: state.runSteps}
		if prior, ok := visited[key]; ok && prior <= state.heatloss {
			continue
		}
		visited[key] = state.heatloss

		for _, dir := range []crucibleDir{crucibleLeft, crucibleRight, crucibleDown, crucibleUp} {
			if !state.isValidTravelDir(dir, minSteps, maxSteps, city.Height(), city.Width()) {
				continue
			}

			newPos := state.pos
			switch dir {
			case crucibleUp:
				newPos.Row--
			case crucibleDown:
				newPos.Row++
			case crucibleLeft:
				newPos.Col--
			case crucibleRight:
				newPos.Col++
			}

			runSteps := 1
			if state.dir == dir {
				runSteps = state.runSteps + 1
			}
			heap.Push(queue, cruciblePathState{
				heatloss: state.heatloss + int(city.At(newPos)-'0'),
				pos:      newPos,
				dir:      dir,
				runSteps: runSteps,
				target:   target,
			})
		}
	}
	return 0, fmt.Errorf("no path to the target exists")
}

type day17Solver struct {
	city *grid.Grid[byte]
}

// NewDay17 parses the city heat-loss map.
func NewDay17(input string) (solvers.Solver, error) {
	return &day17Solver{city: grid.FromSeparated('\n', []byte(input))}, nil
}

func (s *day17Solver) SolvePart1() (solvers.Solution, error) {
	minHeatloss, err := findMinHeatloss(s.city, 0, 3)
	if err != nil {
		return solvers.Solution{}, err
	}
	return solvers.WithDescription("Minimal heat loss", strconv.Itoa(minHeatloss)), nil
}

func (s *day17Solver) SolvePart2() (solvers.MaybeSolution, error) {
	minHeatloss, err := findMinHeatloss(s.city, 4, 10)
	if err != nil {
		return solvers.MaybeSolution{}, err
	}
	return solvers.Present(solvers.WithDescription(
		"Minimal heat loss with ultra crucible", strconv.Itoa(minHeatloss))), nil
}
