// Copyright (C) 2022-2026 Jan Gosmann
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package year2025 contains the puzzle solvers for Advent of Code 2025.
package year2025

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jgosmann/aoc/solvers"
)

type day1Solver struct {
	instructions []int
}

func NewDay1(input string) (solvers.Solver, error) {
	solver := &day1Solver{}
	for _, line := range strings.Split(input, "\n") {
		if line == "" {
			continue
		}
		instruction, err := parseDialInstruction(line)
		if err != nil {
			return nil, err
		}
		solver.instructions = append(solver.instructions, instruction)
	}
	return solver, nil
}

// parseDialInstruction converts a rotation like "L68" or "R48" into a
// signed distance, left being negative.
func parseDialInstruction(line string) (int, error) {
	direction, distance := line[:1], line[1:]
	var sign int
	switch direction {
	case "L":
		sign = -1
	case "R":
		sign = 1
	default:
		return 0, fmt.Errorf("invalid direction: %s", direction)
	}
	value, err := strconv.Atoi(distance)
	if err != nil {
		return 0, fmt.Errorf("invalid distance: %w", err)
	}
	return sign * value, nil
}

func (s *day1Solver) SolvePart1() (solvers.Solution, error) {
	dial, password := 50, 0
	for _, instruction := range s.instructions {
		for instruction < 0 {
			instruction += 100
		}
		dial = (dial + instruction) % 100
		if dial == 0 {
			password++
		}
	}
	return solvers.WithDescription("Password", strconv.Itoa(password)), nil
}

func (s *day1Solver) SolvePart2() (solvers.MaybeSolution, error) {
	dial, password := 50, 0
	for _, instruction := range s.instructions {
		// Starting on zero must not count the departure as a pass.
		if dial == 0 && instruction < 0 {
			password--
		}
		dial += instruction
		for dial < 0 {
			dial += 100
			password++
		}
		for dial > 99 {
			dial -= 100
			password++
		}
		if dial == 0 && instruction < 0 {
			password++
		}
	}
	if dial == 0 {
		password++
	}
	return solvers.Present(solvers.WithDescription(
		"Password with method 0x434C49434B", strconv.Itoa(password))), nil
}
