// Copyright (C) 2022-2026 Jan Gosmann
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package year2023

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jgosmann/aoc/solvers"
)

type springStateClass int

const (
	springStart springStateClass = iota
	springOutsideGroup
	springInsideGroup
)

// springState is an NFA state while sweeping a condition record: which
// damage group we are in (if any) and how large it has grown.
type springState struct {
	class     springStateClass
	groupIdx  int
	groupSize int
}

func (s springState) next(input byte, groups []int) []springState {
	enterGroup := springState{
		class:     springInsideGroup,
		groupIdx:  s.groupIdx,
		groupSize: 1,
	}
	switch s.class {
	case springStart, springOutsideGroup:
		outside := s
		outside.class = springOutsideGroup
		switch input {
		case '.':
			return []springState{outside}
		case '#':
			return []springState{enterGroup}
		case '?':
			return []springState{outside, enterGroup}
		}
	case springInsideGroup:
		var nextStates []springState
		if s.groupIdx < len(groups) {
			if (input == '.' || input == '?') && s.groupSize == groups[s.groupIdx] {
				nextStates = append(nextStates, springState{
					class:    springOutsideGroup,
					groupIdx: s.groupIdx + 1,
				})
			}
			if (input == '#' || input == '?') && s.groupSize < groups[s.groupIdx] {
				nextStates = append(nextStates, springState{
					class:     springInsideGroup,
					groupIdx:  s.groupIdx,
					groupSize: s.groupSize + 1,
				})
			}
		}
		return nextStates
	}
	return nil
}

func (s springState) isTerminating(groups []int) bool {
	return (s.groupIdx == len(groups)-1 && s.groupSize == groups[s.groupIdx]) ||
		(s.groupIdx == len(groups) && s.groupSize == 0)
}

func countArrangements(springs string, groups []int) int {
	states := []springState{{}}
	for i := 0; i < len(springs); i++ {
		var next []springState
		for _, state := range states {
			next = append(next, state.next(springs[i], groups)...)
		}
		states = next
	}
	count := 0
	for _, state := range states {
		if state.isTerminating(groups) {
			count++
		}
	}
	return count
}

type day12Solver struct {
	numArrangements int
}

// NewDay12 counts the possible spring arrangements per condition record.
func NewDay12(input string) (solvers.Solver, error) {
	numArrangements := 0
	for _, line := range strings.Split(strings.TrimRight(input, "\n"), "\n") {
		springs, groupDef, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("invalid input line")
		}
		var groups []int
		for _, group := range strings.Split(groupDef, ",") {
			size, err := strconv.Atoi(group)
			if err != nil {
				return nil, err
			}
			groups = append(groups, size)
		}
		numArrangements += countArrangements(springs, groups)
	}
	return &day12Solver{numArrangements: numArrangements}, nil
}

func (s *day12Solver) SolvePart1() (solvers.Solution, error) {
	return solvers.WithDescription("Part 1", strconv.Itoa(s.numArrangements)), nil
}

func (s *day12Solver) SolvePart2() (solvers.MaybeSolution, error) {
	// The state sweep explodes on the unfolded records; part 2 needs a
	// memoized formulation first.
	return solvers.NotImplemented(), nil
}
