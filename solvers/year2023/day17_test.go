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

//go:embed testdata/day17-1.example
var day17Example string

//go:embed testdata/day17-2.example
var day17UltraExample string

func TestDay17ExamplePart1(t *testing.T) {
	t.Parallel()
	solver, err := NewDay17(day17Example)
	require.NoError(t, err)
	solution, err := solver.SolvePart1()
	require.NoError(t, err)
	assert.Equal(t, "102", solution.Value)
}

func TestDay17ExamplePart2(t *testing.T) {
	t.Parallel()
	solver, err := NewDay17(day17Example)
	require.NoError(t, err)
	maybe, err := solver.SolvePart2()
	require.NoError(t, err)
	solution, ok := maybe.Solution()
	require.True(t, ok)
	assert.Equal(t, "94", solution.Value)
}

// The ultra crucible must not stop within its first four blocks, which
// makes a path viable in part 2 that part 1 would reject.
func TestDay17UltraCrucibleMinimumRunLength(t *testing.T) {
	t.Parallel()
	solver, err := NewDay17(day17UltraExample)
	require.NoError(t, err)
	maybe, err := solver.SolvePart2()
	require.NoError(t, err)
	solution, ok := maybe.Solution()
	require.True(t, ok)
	assert.Equal(t, "71", solution.Value)
}
