// Copyright (C) 2022-2026 Jan Gosmann
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package year2023 contains the puzzle solvers for Advent of Code 2023.
package year2023

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jgosmann/aoc/solvers"
)

var (
	digits = regexp.MustCompile(
		"[1-9]|one|two|three|four|five|six|seven|eight|nine")
	// Matching the reversed line with reversed words finds the last
	// spelled digit even when two overlap (e.g. "twone").
	reverseDigits = regexp.MustCompile(
		"[1-9]|eno|owt|eerht|ruof|evif|xis|neves|thgie|enin")
)

type day1Solver struct {
	input string
}

// NewDay1 solves the trebuchet calibration document.
func NewDay1(input string) (solvers.Solver, error) {
	return &day1Solver{input: input}, nil
}

func (s *day1Solver) SolvePart1() (solvers.Solution, error) {
	var sum int
	for _, line := range strings.Split(s.input, "\n") {
		first, last := 0, 0
		for i := 0; i < len(line); i++ {
			if line[i] >= '0' && line[i] <= '9' {
				first = int(line[i] - '0')
				break
			}
		}
		for i := len(line) - 1; i >= 0; i-- {
			if line[i] >= '0' && line[i] <= '9' {
				last = int(line[i] - '0')
				break
			}
		}
		sum += 10*first + last
	}
	return solvers.WithDescription("Calibration sum (part 1)", strconv.Itoa(sum)), nil
}

func (s *day1Solver) SolvePart2() (solvers.MaybeSolution, error) {
	var sum int
	for _, line := range strings.Split(s.input, "\n") {
		first := parseSpelledDigit(digits.FindString(line))
		last := parseSpelledDigit(reverseDigits.FindString(reverseString(line)))
		sum += 10*first + last
	}
	return solvers.Present(
		solvers.WithDescription("Calibration sum (part 2)", strconv.Itoa(sum))), nil
}

func parseSpelledDigit(digit string) int {
	switch digit {
	case "1", "one", "eno":
		return 1
	case "2", "two", "owt":
		return 2
	case "3", "three", "eerht":
		return 3
	case "4", "four", "ruof":
		return 4
	case "5", "five", "evif":
		return 5
	case "6", "six", "xis":
		return 6
	case "7", "seven", "neves":
		return 7
	case "8", "eight", "thgie":
		return 8
	case "9", "nine", "enin":
		return 9
	}
	return 0
}

func reverseString(s string) string {
	reversed := []byte(s)
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	return string(reversed)
}
