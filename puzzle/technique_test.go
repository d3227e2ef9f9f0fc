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
	"testing"
)

func TestNakedSingles(t *testing.T) {
	b := NewBoard()
	setup := NewBatch()
	for d := 1; d <= 8; d++ {
		setup.Disable(40, d)
	}
	b.Apply(setup)
	if !b[40].Singleton() {
		t.Fatalf("cell 40: got %v, want singleton 9", b[40])
	}

	batch := nakedSingles(b)
	if batch.Len() == 0 {
		t.Fatalf("naked singles found nothing")
	}
	b.Apply(batch)
	if !b[40].Fixed() || b[40].Digit() != 9 {
		t.Errorf("cell 40: got %v, want fixed 9", b[40])
	}
	for _, n := range neighborhoods[40] {
		if n != 40 && b[n].Contains(9) {
			t.Errorf("peer cell %d still holds 9", n)
		}
	}
}

func TestNakedSinglesScansEverything(t *testing.T) {
	// two independent singletons in one board: both must land
	// in the same batch
	b := NewBoard()
	setup := NewBatch()
	for d := 1; d <= 8; d++ {
		setup.Disable(0, d)  // cell 0 forced to 9
		setup.Disable(80, d) // cell 80 forced to 9
	}
	b.Apply(setup)
	b.Apply(nakedSingles(b))
	if !b[0].Fixed() || !b[80].Fixed() {
		t.Errorf("singles pass skipped a finding: %v, %v", b[0], b[80])
	}
}

func TestHiddenSingles(t *testing.T) {
	// digit 5 has exactly one home left in row 0
	b := NewBoard()
	setup := NewBatch()
	for _, idx := range rows[0][1:] {
		setup.Disable(idx, 5)
	}
	b.Apply(setup)
	if b[0].Singleton() {
		t.Fatalf("setup leaked: cell 0 is a naked single")
	}

	batch := hiddenSingles(b)
	if batch.Len() == 0 {
		t.Fatalf("hidden singles found nothing")
	}
	b.Apply(batch)
	if !b[0].Fixed() || b[0].Digit() != 5 {
		t.Errorf("cell 0: got %v, want fixed 5", b[0])
	}
}

func TestHiddenSinglesShortCircuit(t *testing.T) {
	// findings in row 0 and row 8; only row 0's may be batched
	b := NewBoard()
	setup := NewBatch()
	for _, idx := range rows[0][1:] {
		setup.Disable(idx, 5)
	}
	for _, idx := range rows[8][:8] {
		setup.Disable(idx, 7)
	}
	b.Apply(setup)

	b.Apply(hiddenSingles(b))
	if !b[0].Fixed() {
		t.Errorf("first group's finding missing: %v", b[0])
	}
	if b[80].Fixed() {
		t.Errorf("later group scanned in the same pass: %v", b[80])
	}

	// the next pass picks up what the first left behind
	b.Apply(hiddenSingles(b))
	if !b[80].Fixed() || b[80].Digit() != 7 {
		t.Errorf("cell 80 after second pass: got %v, want fixed 7", b[80])
	}
}

func TestNakedPairs(t *testing.T) {
	// cells 0 and 1 both hold exactly {4,7}; cell 2 holds 4 but
	// not 7
	b := NewBoard()
	setup := NewBatch()
	for d := 1; d <= 9; d++ {
		if d != 4 && d != 7 {
			setup.Disable(0, d)
			setup.Disable(1, d)
		}
	}
	setup.Disable(2, 7)
	b.Apply(setup)

	batch := nakedPairs(b)
	if batch.Len() == 0 {
		t.Fatalf("naked pairs found nothing")
	}
	b.Apply(batch)
	if b[2].Contains(4) {
		t.Errorf("cell 2 still holds 4: %v", b[2])
	}
	if b[2].Fixed() {
		t.Errorf("pair elimination cleared cell 2's marker")
	}
	// cells holding both pair digits are left alone
	for _, idx := range rows[0][3:] {
		if !b[idx].Contains(4) || !b[idx].Contains(7) {
			t.Errorf("cell %d lost pair digits it fully contains: %v", idx, b[idx])
		}
	}
}

func TestTechniquesDontMutate(t *testing.T) {
	b, err := Parse(oneStarLine)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	before := *b
	nakedSingles(b)
	hiddenSingles(b)
	nakedPairs(b)
	if *b != before {
		t.Errorf("a technique mutated the board it scanned")
	}
}
