// Copyright (C) 2022-2026 Jan Gosmann
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package year2024

import (
	_ "embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/day13-1.example
var day13Example string

func TestDay13ExamplePart1(t *testing.T) {
	t.Parallel()
	solver, err := NewDay13(day13Example)
	require.NoError(t, err)
	solution, err := solver.SolvePart1()
	require.NoError(t, err)
	assert.Equal(t, "480", solution.Value)
}

func TestDay13UnreachablePrizeCostsNothing(t *testing.T) {
	t.Parallel()
	machine := clawMachine{
		buttons: [2]clawButton{{dx: 2, dy: 4}, {dx: 3, dy: 1}},
		prize:   clawPrize{x: 7, y: 200},
	}
	_, ok := machine.fewestTokensToWin()
	assert.False(t, ok)
}

func TestDay13RejectsPartialMachineDefinition(t *testing.T) {
	t.Parallel()
	_, err := NewDay13("Button A: X+94, Y+34\nButton B: X+22, Y+67\n")
	require.Error(t, err)
}
