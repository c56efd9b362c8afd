// Copyright (C) 2022-2026 Jan Gosmann
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package year2023

import (
	_ "embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/day1-1.example
var day1Example1 string

//go:embed testdata/day1-2.example
var day1Example2 string

func TestDay1ExamplePart1(t *testing.T) {
	t.Parallel()
	solver, err := NewDay1(day1Example1)
	require.NoError(t, err)
	solution, err := solver.SolvePart1()
	require.NoError(t, err)
	assert.Equal(t, "142", solution.Value)
}

func TestDay1ExamplePart2(t *testing.T) {
	t.Parallel()
	solver, err := NewDay1(day1Example2)
	require.NoError(t, err)
	maybe, err := solver.SolvePart2()
	require.NoError(t, err)
	solution, ok := maybe.Solution()
	require.True(t, ok)
	assert.Equal(t, "281", solution.Value)
}

// "twone" and friends must resolve to the digit closest to each end.
func TestDay1OverlappingSpelledDigits(t *testing.T) {
	t.Parallel()
	solver, err := NewDay1("twone\n")
	require.NoError(t, err)
	maybe, err := solver.SolvePart2()
	require.NoError(t, err)
	solution, ok := maybe.Solution()
	require.True(t, ok)
	assert.Equal(t, "21", solution.Value)
}
