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

// Command-line solver for bitoku puzzles.  Reads puzzle lines (81
// characters, '0' for blanks) from the given file or from stdin,
// and writes one solution line per puzzle to stdout.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"

	"github.com/bitoku-go/bitoku/puzzle"
	"github.com/bitoku-go/bitoku/storage"
)

var log = logrus.New()

var (
	skipBad   = flag.Bool("skip", false, "skip unsolvable or malformed lines instead of aborting")
	verbose   = flag.Bool("v", false, "pretty-print each solution grid to stderr")
	doProfile = flag.Bool("profile", false, "write a CPU profile to the current directory")
	useStore  = flag.Bool("store", false, "cache and record solutions in storage")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] [puzzle-file]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	if *doProfile {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	in := os.Stdin
	if flag.NArg() == 1 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatalf("Couldn't open puzzle file: %v", err)
		}
		defer f.Close()
		in = f
	}

	if *useStore {
		godotenv.Load()
		cid, dbid, err := storage.Connect()
		if err != nil {
			log.Fatalf("Couldn't connect to storage: %v", err)
		}
		log.Printf("Connected to cache at %q, database at %q", cid, dbid)
		defer storage.Close()
	}

	if err := run(in, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run solves every non-empty line of in, writing solutions to out.
func run(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if line == "" {
			continue
		}
		solution, err := solveLine(line)
		if err != nil {
			if *skipBad {
				log.Printf("Skipping line %d: %v", lineno, err)
				continue
			}
			return fmt.Errorf("line %d: %v", lineno, err)
		}
		fmt.Fprintln(out, solution)
		if *verbose {
			b, err := puzzle.Parse(solution)
			if err == nil {
				fmt.Fprint(os.Stderr, b.Grid())
			}
		}
	}
	return scanner.Err()
}

// solveLine solves one puzzle line, consulting and feeding the
// solution cache and the solve history when storage is connected.
func solveLine(line string) (string, error) {
	if *useStore {
		if solution, ok := storage.CachedSolution(line); ok {
			return solution, nil
		}
	}
	start := time.Now()
	solution, err := puzzle.Solve(line)
	if err != nil {
		return "", err
	}
	if *useStore {
		storage.CacheSolution(line, solution)
		if _, err := storage.RecordSolve(line, solution, time.Since(start)); err != nil {
			log.Printf("Couldn't record solve: %v", err)
		}
	}
	return solution, nil
}
