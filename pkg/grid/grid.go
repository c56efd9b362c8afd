// Copyright (C) 2022-2026 Jan Gosmann
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package grid provides a bounds-checked two-dimensional view over a flat
// buffer, as used to represent textual puzzle inputs.
//
// A textual grid usually arrives as a single byte buffer whose rows are
// terminated by a fixed-width separator (for example a newline). Grid keeps
// the buffer as-is and translates (row, column) indices to flat offsets,
// excluding the separator columns from the logical width. Constructing a
// view over a buffer whose length does not match the declared width, or
// indexing outside the logical dimensions, is a programming error and
// panics.
package grid

import "fmt"

// Cell addresses a single grid position by row and column.
type Cell struct {
	Row, Col int
}

// Grid is a rectangular view over a flat backing slice. The view never
// copies the buffer: mutations through Set are visible to other views of
// the same slice. The zero value is not usable; construct views with New
// or FromSeparated.
type Grid[T any] struct {
	data       []T
	totalWidth int // row length in the backing slice, separator included
	height     int
	width      int // logical width, separator excluded
}

// New creates a view over data with the given total row width (separator
// columns included) and separator width. The final row may omit the
// separator, or the separator and its preceding element; any other length
// mismatch panics.
func New[T any](totalWidth, separatorWidth int, data []T) *Grid[T] {
	rem := len(data) % totalWidth
	if rem > 0 && rem < totalWidth-separatorWidth-1 {
		panic("width must be a divisor of total data length")
	}
	return &Grid[T]{
		data:       data,
		totalWidth: totalWidth,
		height:     (len(data) + totalWidth - 1) / totalWidth,
		width:      totalWidth - separatorWidth,
	}
}

// FromSeparated creates a byte view over data, deriving the row width from
// the position of the first separator byte. A buffer without any separator
// forms a single row.
func FromSeparated(separator byte, data []byte) *Grid[byte] {
	width := len(data)
	for i, b := range data {
		if b == separator {
			width = i
			break
		}
	}
	return New(width+1, 1, data)
}

// Size returns the logical dimensions as (height, width).
func (g *Grid[T]) Size() (height, width int) {
	return g.height, g.width
}

// Height returns the number of rows.
func (g *Grid[T]) Height() int {
	return g.height
}

// Width returns the logical number of columns, separator excluded.
func (g *Grid[T]) Width() int {
	return g.width
}

// At returns the element at c. Indexing a column in or beyond the
// separator region panics, even where the flat offset would still fall
// inside the buffer.
func (g *Grid[T]) At(c Cell) T {
	if c.Col >= g.width {
		panic("index exceeds view dimensions")
	}
	return g.data[c.Row*g.totalWidth+c.Col]
}

// Set stores v at c, with the same bounds rules as At.
func (g *Grid[T]) Set(c Cell, v T) {
	if c.Col >= g.width {
		panic("index exceeds view dimensions")
	}
	g.data[c.Row*g.totalWidth+c.Col] = v
}

// RowSpan returns the contiguous backing elements of row between the
// columns from (inclusive) and to (exclusive).
func (g *Grid[T]) RowSpan(row, from, to int) []T {
	if to > g.width {
		panic("index exceeds view dimensions")
	}
	start := row * g.totalWidth
	return g.data[start+from : start+to]
}

// Row returns a strided view of the given row.
func (g *Grid[T]) Row(index int) Slice[T] {
	return Slice[T]{
		data:   g.data,
		offset: index * g.totalWidth,
		stride: 1,
		length: g.width,
	}
}

// Col returns a strided view of the given column.
func (g *Grid[T]) Col(index int) Slice[T] {
	return Slice[T]{
		data:   g.data,
		offset: index,
		stride: g.totalWidth,
		length: g.height,
	}
}

// All iterates the logical cells in row-major order, skipping separator
// columns. Use NthIndex to map the iteration ordinal back to a Cell.
func (g *Grid[T]) All() func(yield func(T) bool) {
	return func(yield func(T) bool) {
		for row := 0; row < g.height; row++ {
			for col := 0; col < g.width; col++ {
				if !yield(g.At(Cell{row, col})) {
					return
				}
			}
		}
	}
}

// NthIndex returns the Cell of the n-th element yielded by All.
func (g *Grid[T]) NthIndex(n int) Cell {
	return Cell{Row: n / g.width, Col: n % g.width}
}

// String formats the dimensions for debugging output.
func (g *Grid[T]) String() string {
	return fmt.Sprintf("grid %dx%d (row width %d)", g.height, g.width, g.totalWidth)
}

// Slice is a strided one-dimensional view over grid elements, returned by
// Row and Col so algorithms can traverse either axis uniformly.
type Slice[T any] struct {
	data           []T
	offset, stride int
	length         int
}

// Len returns the number of elements in the slice view.
func (s Slice[T]) Len() int {
	return s.length
}

// At returns the element at index. Out-of-range indices panic.
func (s Slice[T]) At(index int) T {
	if index >= s.length {
		panic("index exceeds slice length")
	}
	return s.data[s.offset+index*s.stride]
}

// All iterates the slice elements in order.
func (s Slice[T]) All() func(yield func(T) bool) {
	return func(yield func(T) bool) {
		for i := 0; i < s.length; i++ {
			if !yield(s.At(i)) {
				return
			}
		}
	}
}
