// Copyright (C) 2022-2026 Jan Gosmann
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructsRegisteredSolver(t *testing.T) {
	t.Parallel()
	solver, err := New("1abc2\n", 2023, 1)
	require.NoError(t, err)
	require.NotNil(t, solver)

	solution, err := solver.SolvePart1()
	require.NoError(t, err)
	assert.Equal(t, "12", solution.Value)
}

func TestNewFailsForUnregisteredKey(t *testing.T) {
	t.Parallel()
	_, err := New("", 2022, 11)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoSolver)
	assert.Equal(t, "no solver for day 11 of year 2022", err.Error())
}
