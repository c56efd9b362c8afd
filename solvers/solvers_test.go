// Copyright (C) 2022-2026 Jan Gosmann
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package solvers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolutionStringContainsDescriptionAndValue(t *testing.T) {
	t.Parallel()
	s := WithDescription("Calibration sum (part 1)", "142")
	rendered := s.String()
	assert.Contains(t, rendered, "Calibration sum (part 1): ")
	assert.Contains(t, rendered, "142")
}

func TestMaybeSolutionPresent(t *testing.T) {
	t.Parallel()
	m := Present(WithDescription("Part 2", "81"))
	solution, ok := m.Solution()
	require.True(t, ok)
	assert.Equal(t, "81", solution.Value)
	assert.Contains(t, m.String(), "Part 2")
}

func TestMaybeSolutionNotImplemented(t *testing.T) {
	t.Parallel()
	m := NotImplemented()
	_, ok := m.Solution()
	assert.False(t, ok)
	assert.Equal(t, "(Solver for part not implemented.)", m.String())
}
