// Copyright (C) 2022-2026 Jan Gosmann
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package solvers defines the capability shared by all per-day puzzle
// solvers: constructed from the raw puzzle input text, producing two
// independently computed, described answers.
package solvers

import "github.com/jgosmann/aoc/pkg/ux"

// Solver computes the two answers of a single puzzle. Construction from
// the input text happens in the per-day constructor (a Constructor in the
// dispatch package), where parse errors surface; Solve failures are domain
// errors such as an unsolvable grid.
type Solver interface {
	SolvePart1() (Solution, error)
	SolvePart2() (MaybeSolution, error)
}

// Solution is a computed answer with a human-readable description.
type Solution struct {
	Description string
	Value       string
}

// WithDescription pairs an answer value with its description.
func WithDescription(description, value string) Solution {
	return Solution{Description: description, Value: value}
}

// String renders "Description: value" with the value in bold.
func (s Solution) String() string {
	return s.Description + ": " + ux.Styles.Bold.Render(s.Value)
}

// MaybeSolution is either a computed Solution or an explicit marker that
// the solver for the part is not written yet, for use during incremental
// development of a day's solution.
type MaybeSolution struct {
	solution Solution
	present  bool
}

// Present wraps a computed solution.
func Present(s Solution) MaybeSolution {
	return MaybeSolution{solution: s, present: true}
}

// NotImplemented marks part 2 as not solved yet.
func NotImplemented() MaybeSolution {
	return MaybeSolution{}
}

// Solution returns the computed solution, if any.
func (m MaybeSolution) Solution() (Solution, bool) {
	return m.solution, m.present
}

// String renders the solution, or a placeholder when not implemented.
func (m MaybeSolution) String() string {
	if !m.present {
		return "(Solver for part not implemented.)"
	}
	return m.solution.String()
}
