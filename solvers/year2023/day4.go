// Copyright (C) 2022-2026 Jan Gosmann
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package year2023

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jgosmann/aoc/solvers"
)

var cardPattern = regexp.MustCompile(`^Card\s+(\d+): ([0-9 ]*) \| ([0-9 ]*)$`)

func parseNumberSet(input string) (map[int]struct{}, error) {
	numbers := map[int]struct{}{}
	for _, item := range strings.Fields(input) {
		value, err := strconv.Atoi(item)
		if err != nil {
			return nil, err
		}
		numbers[value] = struct{}{}
	}
	return numbers, nil
}

type day4Solver struct {
	numWinning []int
}

// NewDay4 counts winning numbers per scratchcard.
func NewDay4(input string) (solvers.Solver, error) {
	var numWinning []int
	for _, line := range strings.Split(input, "\n") {
		captures := cardPattern.FindStringSubmatch(line)
		if captures == nil {
			continue
		}
		winningNumbers, err := parseNumberSet(captures[2])
		if err != nil {
			return nil, err
		}
		ourNumbers, err := parseNumberSet(captures[3])
		if err != nil {
			return nil, err
		}
		matches := 0
		for number := range ourNumbers {
			if _, ok := winningNumbers[number]; ok {
				matches++
			}
		}
		numWinning = append(numWinning, matches)
	}
	return &day4Solver{numWinning: numWinning}, nil
}

func (s *day4Solver) SolvePart1() (solvers.Solution, error) {
	points := 0
	for _, numWinning := range s.numWinning {
		if numWinning > 0 {
			points += 1 << (numWinning - 1)
		}
	}
	return solvers.WithDescription("Points", strconv.Itoa(points)), nil
}

func (s *day4Solver) SolvePart2() (solvers.MaybeSolution, error) {
	copies := make([]int, len(s.numWinning))
	for i := range copies {
		copies[i] = 1
	}
	totalCards := 0
	for i, numWinning := range s.numWinning {
		totalCards += copies[i]
		for j := i + 1; j < len(s.numWinning) && j <= i+numWinning; j++ {
			copies[j] += copies[i]
		}
	}
	return solvers.Present(
		solvers.WithDescription("Number of scratch cards", strconv.Itoa(totalCards))), nil
}
