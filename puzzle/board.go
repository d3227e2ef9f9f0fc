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
	"strings"
)

/*

Boards and batches

A board maps each cell to its candidate set.  Boards are only
ever mutated by intersecting with a batch's mask, so a cell's
candidates shrink monotonically over the board's lifetime.

A batch accumulates pending edits as one board-shaped
intersection mask plus a count of the edits recorded.  Because
intersection is associative and commutative, edits from
independent findings of one scan compose correctly no matter the
order of discovery, and applying the whole batch is a single
cellwise intersection: no technique ever observes a
partially-applied batch.  The count is only a did-anything-change
signal.

*/

// A Board is the candidate sets of all 81 cells.
type Board [CellCount]Cands

// NewBoard returns a board with every cell unresolved.
func NewBoard() *Board {
	var b Board
	for i := range b {
		b[i] = Unresolved
	}
	return &b
}

// Clone returns an independent copy sharing no storage with the
// original.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// Apply intersects every cell with the batch's mask.
func (b *Board) Apply(batch *Batch) {
	for i := range b {
		b[i] &= batch.mask[i]
	}
}

// Valid reports whether every cell still has at least one open
// digit.  An invalid board is a logical contradiction.
func (b *Board) Valid() bool {
	for _, c := range b {
		if !c.Valid() {
			return false
		}
	}
	return true
}

// Solved reports whether every cell has been fixed.
func (b *Board) Solved() bool {
	for _, c := range b {
		if !c.Fixed() {
			return false
		}
	}
	return true
}

// Parse builds a board from an 81-character puzzle line,
// applying one batched Put per given digit.  '0' marks a blank
// cell; any character outside '0'..'9' is a parse error.
func Parse(line string) (*Board, error) {
	if len(line) != CellCount {
		return nil, Error{
			Scope:     ParseScope,
			Condition: WrongLengthCondition,
			Values:    ErrorData{len(line), CellCount},
		}
	}
	batch := NewBatch()
	for i := 0; i < CellCount; i++ {
		ch := line[i]
		if ch < '0' || ch > '9' {
			return nil, Error{
				Scope:     ParseScope,
				Condition: BadSymbolCondition,
				Values:    ErrorData{string(ch), i},
			}
		}
		if ch != '0' {
			batch.Put(i, int(ch-'0'))
		}
	}
	b := NewBoard()
	b.Apply(batch)
	return b, nil
}

// Line renders the board as an 81-character line in reading
// order, '0' for cells not yet fixed.
func (b *Board) Line() string {
	buf := make([]byte, CellCount)
	for i, c := range b {
		if c.Fixed() {
			buf[i] = byte('0' + c.Digit())
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

// Grid gives a pretty-printed view of the board, for logs and
// debugging.  Fixed cells show their digit, singletons show =d,
// two-candidate cells show both digits, everything else shows _.
func (b *Board) Grid() string {
	var sb strings.Builder
	for r := 0; r < SideLen; r++ {
		if r%BoxLen == 0 {
			sb.WriteString("+---------+---------+---------+\n")
		}
		for c := 0; c < SideLen; c++ {
			if c%BoxLen == 0 {
				sb.WriteString("|")
			}
			cell := b[r*SideLen+c]
			switch {
			case cell.Fixed():
				fmt.Fprintf(&sb, " %d ", cell.Digit())
			case cell.Singleton():
				fmt.Fprintf(&sb, "=%d ", cell.Digit())
			case cell.Possibilities() == 2:
				ds := cell.Digits()
				fmt.Fprintf(&sb, "%d,%d", ds[0], ds[1])
			default:
				sb.WriteString(" _ ")
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("+---------+---------+---------+\n")
	return sb.String()
}

func (b *Board) String() string {
	return b.Grid()
}

/*

Batches

*/

// A Batch accumulates pending cell edits for one propagation
// pass.  Build it with Fix, Disable, and Put, then apply it to a
// board in one shot.
type Batch struct {
	mask  Board
	count int
}

// NewBatch returns an empty batch, whose mask permits
// everything.
func NewBatch() *Batch {
	b := &Batch{}
	for i := range b.mask {
		b.mask[i] = Unresolved
	}
	return b
}

// Len returns the number of edits recorded in the batch.
func (t *Batch) Len() int {
	return t.count
}

// Fix records the placement of digit d in cell idx: the cell's
// contribution becomes the exact singleton {d}, which clears the
// marker and every other candidate.
func (t *Batch) Fix(idx, d int) *Batch {
	t.mask[idx] = CandsOf(d)
	t.count++
	return t
}

// Disable removes digit d from cell idx's candidates without
// touching the marker bit.
func (t *Batch) Disable(idx, d int) *Batch {
	t.mask[idx] &= CandsWithout(d)
	t.count++
	return t
}

// Put places digit d in cell idx: d is disabled throughout the
// cell's constraint neighborhood (idx included, harmlessly,
// because the Fix follows) and then idx is fixed to d.
func (t *Batch) Put(idx, d int) *Batch {
	for _, n := range neighborhoods[idx] {
		t.Disable(n, d)
	}
	return t.Fix(idx, d)
}
