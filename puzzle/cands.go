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
	"math/bits"
)

/*

Candidate sets

Each cell of a board carries a set of candidate symbols packed
into the low ten bits of a uint16.  Bits 1 through 9 are the
placeable digits.  Bit 0 is the unresolved marker: it stays set
while the cell is still open and is cleared exactly when a digit
is placed, so symbol 0 itself is never placed.

*/

// A Cands value is one cell's candidate set.  Cands values are
// immutable; every operation returns a new set.
type Cands uint16

const (
	candMask  Cands = 0x3ff // the ten usable bits
	markerBit Cands = 1 << 0

	// Unresolved is the starting value of every cell: the
	// marker plus all nine digits.
	Unresolved Cands = candMask
)

// CandsOf returns the singleton set {d}.
func CandsOf(d int) Cands {
	return 1 << uint(d)
}

// CandsWithout returns the universe minus {d}.
func CandsWithout(d int) Cands {
	return ^CandsOf(d) & candMask
}

// Contains reports whether symbol d is in the set.
func (c Cands) Contains(d int) bool {
	return c&CandsOf(d) != 0
}

// Union returns the set of symbols in either set.
func (c Cands) Union(o Cands) Cands {
	return c | o
}

// Intersect returns the set of symbols in both sets.
func (c Cands) Intersect(o Cands) Cands {
	return c & o
}

// Complement returns the set's complement within the ten-bit
// universe.
func (c Cands) Complement() Cands {
	return ^c & candMask
}

// Count returns the number of symbols in the set, marker
// included.
func (c Cands) Count() int {
	return bits.OnesCount16(uint16(c))
}

// Min returns the smallest symbol in the set.  On the empty set
// it returns 16, one past any symbol.
func (c Cands) Min() int {
	return bits.TrailingZeros16(uint16(c))
}

// Max returns the largest symbol in the set, -1 on the empty
// set.
func (c Cands) Max() int {
	return bits.Len16(uint16(c)) - 1
}

// Real returns the set restricted to placeable digits: the
// marker is stripped.
func (c Cands) Real() Cands {
	return c &^ markerBit
}

// Fixed reports whether the cell has been fixed to a digit,
// which is exactly when the marker bit has been cleared.
func (c Cands) Fixed() bool {
	return c&markerBit == 0
}

// Possibilities returns the number of digits still open for the
// cell.  A fixed cell has no open digits.
func (c Cands) Possibilities() int {
	if c.Fixed() {
		return 0
	}
	return c.Real().Count()
}

// Singleton reports whether the cell is unresolved with exactly
// one digit left.
func (c Cands) Singleton() bool {
	return c.Possibilities() == 1
}

// Valid reports whether at least one digit can still go in the
// cell.  An invalid cell signals a contradiction.
func (c Cands) Valid() bool {
	return c.Real() != 0
}

// Digit returns the sole digit of a fixed or singleton cell.
func (c Cands) Digit() int {
	return c.Real().Min()
}

// Digits returns the set's placeable digits in ascending order.
func (c Cands) Digits() []int {
	ds := make([]int, 0, 9)
	for r := c.Real(); r != 0; r &= r - 1 {
		ds = append(ds, bits.TrailingZeros16(uint16(r)))
	}
	return ds
}

// Cands implements Stringer for readable test failures.
func (c Cands) String() string {
	if c.Fixed() {
		if c.Real() == 0 {
			return "{!}"
		}
		return fmt.Sprintf("{=%d}", c.Digit())
	}
	return fmt.Sprintf("{%v}", c.Digits())
}
