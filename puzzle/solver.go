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

/*

Solver

Propagation runs the three techniques in priority order until
either a contradiction shows up or no technique can deduce
anything more.  When propagation stalls on an unsolved board,
the search driver guesses: it picks the open cell with the
fewest remaining candidates, clones the board once per candidate
digit, and walks the clones depth-first on a stack of owned
snapshots.  Each snapshot is propagated when it is pushed, so
every board on the stack is consistent; the first solved board
popped is the answer (puzzles are assumed to have a unique
solution).

*/

// Technique states for the propagation driver.
const (
	techSingles = iota
	techHidden
	techPairs
	techStable
)

var techniques = [techStable]func(*Board) *Batch{
	techSingles: nakedSingles,
	techHidden:  hiddenSingles,
	techPairs:   nakedPairs,
}

// propagate runs the techniques to a fixpoint, mutating the
// board.  A productive technique resets the driver to the
// highest priority; an unproductive one advances it.  The error
// is non-nil if some cell runs out of candidates.  A nil return
// means only that there is no contradiction and no further
// forced deduction; the board may still be unsolved.
func propagate(b *Board) error {
	for state := techSingles; state != techStable; {
		if !b.Valid() {
			return contradiction(b)
		}
		batch := techniques[state](b)
		if batch.Len() > 0 {
			b.Apply(batch)
			state = techSingles
			continue
		}
		state++
	}
	return nil
}

// contradiction reports the first cell with no remaining
// candidates.
func contradiction(b *Board) error {
	for idx, cell := range b {
		if !cell.Valid() {
			return Error{
				Scope:     CellScope,
				Condition: NoCandidatesCondition,
				Values:    ErrorData{idx},
			}
		}
	}
	return nil
}

// splitCell picks the cell to branch the search on: scanning
// candidate counts in increasing order and cell indices in
// reading order, the first cell with that many open digits
// wins.  ok is false when no cell has more than one open digit,
// which on an unsolved board is an invariant violation.
func splitCell(b *Board) (int, bool) {
	for p := 2; p <= SideLen; p++ {
		for idx, cell := range b {
			if cell.Possibilities() == p {
				return idx, true
			}
		}
	}
	return 0, false
}

// Solve solves the 81-character puzzle line and returns the
// 81-digit solution line.
func Solve(line string) (string, error) {
	b, err := Parse(line)
	if err != nil {
		return "", err
	}
	solved, err := solve(b)
	if err != nil {
		return "", err
	}
	return solved.Line(), nil
}

// solve runs the backtracking search.  The board passed in must
// be freshly parsed: solve propagates it first, and a
// contradiction among the givens is fatal because there is
// nothing to search.
func solve(b *Board) (*Board, error) {
	if err := propagate(b); err != nil {
		return nil, Error{
			Scope:     SearchScope,
			Condition: CannotPropagateCondition,
			Values:    ErrorData{err.Error()},
		}
	}
	stack := []*Board{b}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.Solved() {
			return cur, nil
		}
		idx, ok := splitCell(cur)
		if !ok {
			return nil, Error{
				Scope:     SearchScope,
				Condition: CannotSplitCondition,
				Values:    ErrorData{cur.Line()},
			}
		}
		// try the split cell's digits in ascending order; the
		// stack then explores them in descending order
		for _, d := range cur[idx].Digits() {
			next := cur.Clone()
			next.Apply(NewBatch().Put(idx, d))
			if propagate(next) != nil {
				continue
			}
			stack = append(stack, next)
		}
	}
	return nil, Error{
		Scope:     SearchScope,
		Condition: UnsolvableCondition,
		Values:    ErrorData{b.Line()},
	}
}
