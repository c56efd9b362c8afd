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

//go:embed testdata/day3-1.example
var day3Example string

func TestDay3ExamplePart1(t *testing.T) {
	t.Parallel()
	solver, err := NewDay3(day3Example)
	require.NoError(t, err)
	solution, err := solver.SolvePart1()
	require.NoError(t, err)
	assert.Equal(t, "4361", solution.Value)
}

func TestDay3ExamplePart2(t *testing.T) {
	t.Parallel()
	solver, err := NewDay3(day3Example)
	require.NoError(t, err)
	maybe, err := solver.SolvePart2()
	require.NoError(t, err)
	solution, ok := maybe.Solution()
	require.True(t, ok)
	assert.Equal(t, "467835", solution.Value)
}
