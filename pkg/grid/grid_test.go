// Copyright (C) 2022-2026 Jan Gosmann
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package grid

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialBytes(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}

// A width of 5 with a separator width of 2 tolerates a final row missing
// its separator, or the separator plus one trailing byte.
func TestNewAcceptsTruncatedFinalRow(t *testing.T) {
	t.Parallel()
	for _, length := range []int{8, 9, 10} {
		t.Run(fmt.Sprintf("len%d", length), func(t *testing.T) {
			t.Parallel()
			g := New(5, 2, sequentialBytes(length))
			assert.Equal(t, 2, g.Height())
			assert.Equal(t, 3, g.Width())
			assert.Equal(t, byte(0), g.At(Cell{0, 0}))
			assert.Equal(t, byte(2), g.At(Cell{0, 2}))
			assert.Equal(t, byte(5), g.At(Cell{1, 0}))
			assert.Equal(t, byte(7), g.At(Cell{1, 2}))
		})
	}
}

func TestNewPanicsOnInconsistentLength(t *testing.T) {
	t.Parallel()
	// Only a final row cut down to a single element is inconsistent; a
	// row merely missing the separator (or its last element) is allowed.
	for _, length := range []int{6, 11, 16} {
		assert.Panics(t, func() {
			New(5, 2, sequentialBytes(length))
		}, "length %d", length)
	}
}

func TestNewAcceptsPartialRowRemainders(t *testing.T) {
	t.Parallel()
	for _, length := range []int{7, 12} {
		assert.NotPanics(t, func() {
			New(5, 2, sequentialBytes(length))
		}, "length %d", length)
	}
}

func TestAtPanicsOutsideViewDimensions(t *testing.T) {
	t.Parallel()
	cases := []Cell{{0, 3}, {0, 4}, {2, 0}, {3, 3}}
	for _, c := range cases {
		g := New(5, 2, sequentialBytes(10))
		assert.Panics(t, func() { g.At(c) }, "cell %v", c)
	}
}

func TestAtMatchesFlatOffset(t *testing.T) {
	t.Parallel()
	data := sequentialBytes(10)
	g := New(5, 2, data)
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			assert.Equal(t, data[row*5+col], g.At(Cell{row, col}))
		}
	}
}

func TestSetWritesThrough(t *testing.T) {
	t.Parallel()
	data := sequentialBytes(10)
	g := New(5, 2, data)
	g.Set(Cell{1, 2}, 42)
	assert.Equal(t, byte(42), data[7])
	assert.Panics(t, func() { g.Set(Cell{0, 3}, 0) })
}

func TestFromSeparated(t *testing.T) {
	t.Parallel()
	g := FromSeparated('\n', []byte("123\n456\n789"))
	require.Equal(t, 3, g.Height())
	require.Equal(t, 3, g.Width())
	assert.Equal(t, byte('9'), g.At(Cell{2, 2}))
}

func TestFromSeparatedSingleRow(t *testing.T) {
	t.Parallel()
	g := FromSeparated('\n', []byte("abc"))
	assert.Equal(t, 1, g.Height())
	assert.Equal(t, 3, g.Width())
}

func TestAllSkipsSeparatorColumns(t *testing.T) {
	t.Parallel()
	g := New(5, 2, sequentialBytes(10))
	var elements []byte
	g.All()(func(v byte) bool {
		elements = append(elements, v)
		return true
	})
	assert.Equal(t, []byte{0, 1, 2, 5, 6, 7}, elements)
}

func TestNthIndex(t *testing.T) {
	t.Parallel()
	g := New(5, 2, sequentialBytes(10))
	assert.Equal(t, Cell{1, 2}, g.NthIndex(5))
	assert.Equal(t, Cell{0, 0}, g.NthIndex(0))
}

func TestRowAndColSlices(t *testing.T) {
	t.Parallel()
	g := New(5, 2, sequentialBytes(10))

	row := g.Row(1)
	require.Equal(t, 3, row.Len())
	assert.Equal(t, byte(5), row.At(0))
	assert.Equal(t, byte(7), row.At(2))

	col := g.Col(2)
	require.Equal(t, 2, col.Len())
	assert.Equal(t, byte(2), col.At(0))
	assert.Equal(t, byte(7), col.At(1))

	assert.Panics(t, func() { row.At(3) })
}

func TestRowSpan(t *testing.T) {
	t.Parallel()
	g := New(5, 2, sequentialBytes(10))
	assert.Equal(t, []byte{1, 2}, g.RowSpan(0, 1, 3))
	assert.Panics(t, func() { g.RowSpan(0, 0, 4) })
}
