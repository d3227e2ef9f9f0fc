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

// Package dbprep prepares the Redis and Postgres instances used by
// the storage package: it installs the database schema and can wipe
// both stores back to a clean state.
package dbprep

import (
	"fmt"
)

// EnsureSchema brings the database schema up to the current version.
func EnsureSchema() error {
	if err := SchemaUp(); err != nil {
		return fmt.Errorf("Couldn't install schema: %v", err)
	}
	version, err := SchemaVersion()
	if err != nil {
		return fmt.Errorf("Couldn't get schema version: %v", err)
	}
	if version == 0 {
		return fmt.Errorf("Database schema still at version 0, shouldn't be.")
	}
	return nil
}

// RemoveSchema tears down the database schema, if any is installed.
func RemoveSchema() error {
	version, err := SchemaVersion()
	if err != nil {
		return fmt.Errorf("Couldn't get schema version: %v", err)
	}
	if version > 0 {
		if err := SchemaDown(); err != nil {
			return fmt.Errorf("Couldn't remove tables: %v", err)
		}
	}
	return nil
}

// ReinitializeAll wipes the cache and rebuilds the database from
// scratch.  Meant for tests and for operator resets.
func ReinitializeAll() error {
	if err := ClearCache(); err != nil {
		return fmt.Errorf("Couldn't clear cache: %v", err)
	}
	if err := RemoveSchema(); err != nil {
		return fmt.Errorf("Couldn't clear database: %v", err)
	}
	if err := EnsureSchema(); err != nil {
		return fmt.Errorf("Couldn't rebuild database: %v", err)
	}
	return nil
}
