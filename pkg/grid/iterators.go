// Copyright (C) 2022-2026 Jan Gosmann
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package grid

// neighborOffsets lists the four orthogonal neighbors in row-major order.
var neighborOffsets = [4][2]int{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}

// surroundOffsets lists all eight adjacent cells in row-major order.
var surroundOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Neighbors iterates the orthogonally adjacent cells of c, clipped at the
// grid edges. Cells are yielded in row-major order: up, left, right, down.
func (g *Grid[T]) Neighbors(c Cell) func(yield func(Cell) bool) {
	return g.adjacent(c, neighborOffsets[:])
}

// Surround iterates all eight adjacent cells of c, diagonals included,
// clipped at the grid edges. Cells are yielded in row-major order.
func (g *Grid[T]) Surround(c Cell) func(yield func(Cell) bool) {
	return g.adjacent(c, surroundOffsets[:])
}

func (g *Grid[T]) adjacent(c Cell, offsets [][2]int) func(yield func(Cell) bool) {
	return func(yield func(Cell) bool) {
		for _, offset := range offsets {
			row, col := c.Row+offset[0], c.Col+offset[1]
			if row < 0 || row >= g.height || col < 0 || col >= g.width {
				continue
			}
			if !yield(Cell{Row: row, Col: col}) {
				return
			}
		}
	}
}
