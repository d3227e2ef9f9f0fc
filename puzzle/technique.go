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

Propagation techniques

Each technique scans a board without mutating it and returns a
batch of the edits it wants made.  The driver applies any
non-empty batch and restarts from the highest-priority
technique, so a technique is free to stop scanning after its
first finding: whatever it leaves on the table is picked up on
the next pass.  The short-circuits below don't affect the
eventual fixpoint, only how much work each single pass does.

*/

// nakedSingles queues a Put for every cell with exactly one
// remaining candidate.  It always scans all 81 cells in index
// order and batches every finding.
func nakedSingles(b *Board) *Batch {
	batch := NewBatch()
	for idx, cell := range b {
		if cell.Singleton() {
			batch.Put(idx, cell.Digit())
		}
	}
	return batch
}

// hiddenSingles looks for a digit with exactly one possible home
// among the unresolved cells of a peer group.  Groups are
// scanned rows, then boxes, then columns; the scan stops after
// the first group that yields a finding.
func hiddenSingles(b *Board) *Batch {
	batch := NewBatch()
	for _, g := range groups {
		var counts, homes [SideLen + 1]int
		for _, idx := range g {
			cell := b[idx]
			if cell.Fixed() {
				continue
			}
			for _, d := range cell.Digits() {
				counts[d]++
				homes[d] = idx
			}
		}
		found := false
		for d := 1; d <= SideLen; d++ {
			if counts[d] != 1 {
				continue
			}
			found = true
			batch.Put(homes[d], d)
		}
		if found {
			return batch
		}
	}
	return batch
}

// nakedPairs looks for two cells of a group that hold the same
// two candidates, which excludes those two digits from every
// other unfixed cell of the group.  Pairs are enumerated in
// ascending lexicographic order over the group's nine slots, and
// the scan stops as soon as one pair has produced an
// elimination.
func nakedPairs(b *Board) *Batch {
	batch := NewBatch()
	for _, g := range groups {
		for left := 0; left < SideLen-1; left++ {
			lc := b[g[left]]
			if lc.Possibilities() != 2 {
				continue
			}
			for right := left + 1; right < SideLen; right++ {
				rc := b[g[right]]
				if rc.Possibilities() != 2 || lc != rc {
					continue
				}
				pair := lc.Real()
				for slot := 0; slot < SideLen; slot++ {
					if slot == left || slot == right {
						continue
					}
					cell := b[g[slot]]
					if cell.Fixed() {
						continue
					}
					// only cells sharing some but not all of the
					// pair's digits gain anything from the exclusion
					common := cell.Real() & pair
					if common == 0 || common == pair {
						continue
					}
					for _, d := range pair.Digits() {
						batch.Disable(g[slot], d)
					}
				}
				if batch.Len() > 0 {
					return batch
				}
			}
		}
	}
	return batch
}
