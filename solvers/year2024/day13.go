// Copyright (C) 2022-2026 Jan Gosmann
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package year2024

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jgosmann/aoc/solvers"
)

var (
	buttonPattern = regexp.MustCompile(`^Button [AB]: X\+(\d+), Y\+(\d+)$`)
	prizePattern  = regexp.MustCompile(`^Prize: X=(\d+), Y=(\d+)$`)
)

type clawButton struct {
	dx, dy int64
}

type clawPrize struct {
	x, y int64
}

type clawMachine struct {
	buttons [2]clawButton
	prize   clawPrize
}

// fewestTokensToWin solves the two-equation integer system for the button
// press counts and returns the token cost, or false if the prize cannot be
// reached with whole presses.
func (m clawMachine) fewestTokensToWin() (int64, bool) {
	x, y := m.prize.x, m.prize.y
	xa, ya := m.buttons[0].dx, m.buttons[0].dy
	xb, yb := m.buttons[1].dx, m.buttons[1].dy
	bDenominator := xb*ya - xa*yb
	if bDenominator == 0 {
		panic("linearly dependent buttons are not supported")
	}
	bNumerator := x*ya - xa*y
	if bNumerator%bDenominator != 0 {
		return 0, false
	}
	b := bNumerator / bDenominator
	aNumerator := y - b*yb
	if aNumerator%ya != 0 {
		return 0, false
	}
	a := aNumerator / ya
	if a < 0 || b < 0 {
		return 0, false
	}
	return 3*a + b, true
}

type day13Solver struct {
	clawMachines []clawMachine
}

func NewDay13(input string) (solvers.Solver, error) {
	var lines []string
	for _, line := range strings.Split(input, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines)%3 != 0 {
		return nil, fmt.Errorf("partial claw machine definition")
	}

	solver := &day13Solver{}
	for i := 0; i < len(lines); i += 3 {
		buttonA, err := parseClawButton(lines[i])
		if err != nil {
			return nil, err
		}
		buttonB, err := parseClawButton(lines[i+1])
		if err != nil {
			return nil, err
		}
		prize, err := parseClawPrize(lines[i+2])
		if err != nil {
			return nil, err
		}
		solver.clawMachines = append(solver.clawMachines, clawMachine{
			buttons: [2]clawButton{buttonA, buttonB},
			prize:   prize,
		})
	}
	return solver, nil
}

func parseClawButton(line string) (clawButton, error) {
	captures := buttonPattern.FindStringSubmatch(line)
	if captures == nil {
		return clawButton{}, fmt.Errorf("invalid button definition: %q", line)
	}
	dx, _ := strconv.ParseInt(captures[1], 10, 64)
	dy, _ := strconv.ParseInt(captures[2], 10, 64)
	return clawButton{dx: dx, dy: dy}, nil
}

func parseClawPrize(line string) (clawPrize, error) {
	captures := prizePattern.FindStringSubmatch(line)
	if captures == nil {
		return clawPrize{}, fmt.Errorf("invalid prize definition: %q", line)
	}
	x, _ := strconv.ParseInt(captures[1], 10, 64)
	y, _ := strconv.ParseInt(captures[2], 10, 64)
	return clawPrize{x: x, y: y}, nil
}

func (s *day13Solver) SolvePart1() (solvers.Solution, error) {
	var total int64
	for _, machine := range s.clawMachines {
		if tokens, ok := machine.fewestTokensToWin(); ok {
			total += tokens
		}
	}
	return solvers.WithDescription("Part 1", strconv.FormatInt(total, 10)), nil
}

func (s *day13Solver) SolvePart2() (solvers.MaybeSolution, error) {
	const conversion = 10_000_000_000_000
	var total int64
	for _, machine := range s.clawMachines {
		machine.prize.x += conversion
		machine.prize.y += conversion
		if tokens, ok := machine.fewestTokensToWin(); ok {
			total += tokens
		}
	}
	return solvers.Present(
		solvers.WithDescription("Part 2", strconv.FormatInt(total, 10))), nil
}
