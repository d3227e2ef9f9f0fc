// bitoku - a Sudoku constraint-propagation and search solver.
// Copyright (C) 2026 the bitoku authors.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.

package puzzle

import (
	"fmt"
)

/*

Board geometry

The grid is 81 cells indexed 0 through 80 in English reading
order.  Every cell belongs to exactly three peer groups (its
row, its box, and its column), and the union of those three
groups is the cell's constraint neighborhood: the 21 distinct
cells whose digits constrain it.  All of the tables here are
computed once at startup and never mutated afterward, so they
are safe to share between boards.

*/

// Grid dimensions.
const (
	SideLen   = 9
	BoxLen    = 3
	CellCount = SideLen * SideLen

	// every constraint neighborhood has exactly this many
	// members, the cell itself included
	neighborCount = 21
)

// A Group is the nine cell indices of one row, column, or box.
type Group [SideLen]int

// Coordinate helpers for a cell index.
func rowOf(idx int) int { return idx / SideLen }
func colOf(idx int) int { return idx % SideLen }
func boxOf(idx int) int { return colOf(idx)/BoxLen + BoxLen*(rowOf(idx)/BoxLen) }

var (
	rows    [SideLen]Group
	columns [SideLen]Group
	boxes   [SideLen]Group

	// groups lists all 27 peer groups in scan order: rows
	// first, then boxes, then columns.  The hidden-singles
	// technique walks them in exactly this order.
	groups [3 * SideLen]Group

	// neighborhoods[idx] holds idx's constraint neighborhood in
	// ascending order.
	neighborhoods [CellCount][neighborCount]int
)

// The tables are built at startup.  A neighborhood that doesn't
// come out to exactly 21 members means the row/column/box tables
// are wrong, so that's a fatal configuration error, not a
// runtime condition.
func init() {
	for i := 0; i < SideLen; i++ {
		for p := 0; p < SideLen; p++ {
			rows[i][p] = i*SideLen + p
			columns[i][p] = p*SideLen + i
		}
		baseRow, baseCol := BoxLen*(i/BoxLen), BoxLen*(i%BoxLen)
		for p := 0; p < SideLen; p++ {
			boxes[i][p] = (baseRow+p/BoxLen)*SideLen + baseCol + p%BoxLen
		}
	}
	copy(groups[:SideLen], rows[:])
	copy(groups[SideLen:2*SideLen], boxes[:])
	copy(groups[2*SideLen:], columns[:])

	for idx := 0; idx < CellCount; idx++ {
		var seen [CellCount]bool
		for _, g := range [3]Group{rows[rowOf(idx)], columns[colOf(idx)], boxes[boxOf(idx)]} {
			for _, n := range g {
				seen[n] = true
			}
		}
		count := 0
		for n := 0; n < CellCount; n++ {
			if !seen[n] {
				continue
			}
			if count < neighborCount {
				neighborhoods[idx][count] = n
			}
			count++
		}
		if count != neighborCount {
			panic(fmt.Errorf("cell %d has %d constraint neighbors, want %d",
				idx, count, neighborCount))
		}
	}
}
