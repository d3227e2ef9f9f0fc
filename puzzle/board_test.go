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
	"strings"
	"testing"
)

func TestParseErrors(t *testing.T) {
	if _, err := Parse("12345"); err == nil {
		t.Errorf("short line parsed without error")
	} else if e, ok := err.(Error); !ok || e.Condition != WrongLengthCondition {
		t.Errorf("short line error: got %v", err)
	}
	bad := strings.Repeat("0", 40) + "x" + strings.Repeat("0", 40)
	if _, err := Parse(bad); err == nil {
		t.Errorf("bad symbol parsed without error")
	} else if e, ok := err.(Error); !ok || e.Condition != BadSymbolCondition {
		t.Errorf("bad symbol error: got %v", err)
	}
}

func TestParseBlank(t *testing.T) {
	b, err := Parse(strings.Repeat("0", CellCount))
	if err != nil {
		t.Fatalf("blank line: %v", err)
	}
	for idx, cell := range b {
		if cell != Unresolved {
			t.Errorf("cell %d of blank board: got %v", idx, cell)
		}
	}
}

func TestParseGiven(t *testing.T) {
	line := "5" + strings.Repeat("0", CellCount-1)
	b, err := Parse(line)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !b[0].Fixed() || b[0].Digit() != 5 {
		t.Errorf("cell 0: got %v, want fixed 5", b[0])
	}
	// 5 is gone from the whole neighborhood, nowhere else
	for idx := 1; idx < CellCount; idx++ {
		peer := rowOf(idx) == 0 || colOf(idx) == 0 || boxOf(idx) == 0
		if peer && b[idx].Contains(5) {
			t.Errorf("peer cell %d still holds 5", idx)
		}
		if !peer && b[idx] != Unresolved {
			t.Errorf("non-peer cell %d changed: %v", idx, b[idx])
		}
	}
}

func TestBatchFixDisable(t *testing.T) {
	b := NewBoard()
	batch := NewBatch()
	batch.Disable(10, 3)
	batch.Fix(20, 7)
	if batch.Len() != 2 {
		t.Errorf("batch length: got %d, want 2", batch.Len())
	}
	b.Apply(batch)
	if b[10].Contains(3) {
		t.Errorf("cell 10 still holds 3")
	}
	if b[10].Fixed() {
		t.Errorf("Disable cleared the marker on cell 10")
	}
	if b[20] != CandsOf(7) {
		t.Errorf("cell 20: got %v, want fixed 7", b[20])
	}
}

func TestApplyIdempotent(t *testing.T) {
	once, err := Parse(oneStarLine)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	twice := once.Clone()
	batch := nakedSingles(once)
	once.Apply(batch)
	twice.Apply(batch)
	twice.Apply(batch)
	if *once != *twice {
		t.Errorf("applying a batch twice differs from applying it once")
	}
}

func TestApplyOnlyShrinks(t *testing.T) {
	b, err := Parse(oneStarLine)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	before := b.Clone()
	for _, tech := range techniques {
		batch := tech(b)
		b.Apply(batch)
	}
	for idx := range b {
		after, prior := b[idx].Real(), before[idx].Real()
		if after&prior != after {
			t.Errorf("cell %d grew: %v -> %v", idx, before[idx], b[idx])
		}
	}
}

func TestLineRoundTrip(t *testing.T) {
	b, err := Parse(oneStarSolution)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !b.Solved() {
		t.Fatalf("fully-given board not solved after parse")
	}
	if got := b.Line(); got != oneStarSolution {
		t.Errorf("round trip: got %q", got)
	}
}

func TestGrid(t *testing.T) {
	b, err := Parse(oneStarLine)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	grid := b.Grid()
	if n := strings.Count(grid, "\n"); n != 13 {
		t.Errorf("grid has %d lines, want 13", n)
	}
	if !strings.Contains(grid, "| 4 ") {
		t.Errorf("grid doesn't show the first given:\n%s", grid)
	}
}

func TestCloneIndependence(t *testing.T) {
	b, err := Parse(oneStarLine)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	c := b.Clone()
	c.Apply(NewBatch().Put(2, 1))
	if *b == *c {
		t.Errorf("mutating a clone changed the original")
	}
}
