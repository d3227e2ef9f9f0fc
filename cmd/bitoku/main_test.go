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

package main

import (
	"bytes"
	"strings"
	"testing"
)

const (
	classicLine     = "530070000600195000098000060800060003400803001700020006060000280000419005000080079"
	classicSolution = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
)

func TestRunSolvesLines(t *testing.T) {
	in := strings.NewReader(classicLine + "\n\n" + classicLine + "\n")
	var out bytes.Buffer
	if err := run(in, &out); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	want := classicSolution + "\n" + classicSolution + "\n"
	if out.String() != want {
		t.Errorf("run output:\n%swant:\n%s", out.String(), want)
	}
}

func TestRunAbortsOnBadLine(t *testing.T) {
	in := strings.NewReader("not a puzzle\n" + classicLine + "\n")
	var out bytes.Buffer
	err := run(in, &out)
	if err == nil {
		t.Fatalf("run accepted a malformed line")
	}
	if !strings.Contains(err.Error(), "line 1") {
		t.Errorf("error doesn't name the offending line: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("output written before abort: %q", out.String())
	}
}

func TestRunSkipsBadLines(t *testing.T) {
	*skipBad = true
	defer func() { *skipBad = false }()
	in := strings.NewReader("not a puzzle\n" + classicLine + "\n")
	var out bytes.Buffer
	if err := run(in, &out); err != nil {
		t.Fatalf("run failed with -skip: %v", err)
	}
	if out.String() != classicSolution+"\n" {
		t.Errorf("run output with -skip:\n%s", out.String())
	}
}
