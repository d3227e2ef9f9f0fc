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

// Prepare and reset the bitoku storage system.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/bitoku-go/bitoku/dbprep"
)

var log = logrus.New()

func main() {
	godotenv.Load()

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}
	switch command {
	case "up":
		log.Printf("Installing database schema...")
		if err := dbprep.EnsureSchema(); err != nil {
			log.Fatalf("Couldn't install schema: %v", err)
		}
		log.Printf("Database ready.")
	case "down":
		log.Printf("Removing database schema...")
		if err := dbprep.RemoveSchema(); err != nil {
			log.Fatalf("Couldn't remove schema: %v", err)
		}
		log.Printf("Database removed.")
	case "reset":
		log.Printf("Removing existing data storage and cache...")
		if err := dbprep.ReinitializeAll(); err != nil {
			log.Fatalf("Couldn't reset storage: %v", err)
		}
		log.Printf("Storage re-initialized.")
	case "version":
		version, err := dbprep.SchemaVersion()
		if err != nil {
			log.Fatalf("Couldn't get schema version: %v", err)
		}
		fmt.Println(version)
	case "clearcache":
		log.Printf("Clearing cache...")
		if err := dbprep.ClearCache(); err != nil {
			log.Fatalf("Couldn't clear cache: %v", err)
		}
		log.Printf("Cache cleared.")
	default:
		fmt.Fprintf(os.Stderr, "usage: %s [up|down|reset|version|clearcache]\n", os.Args[0])
		os.Exit(2)
	}
}
