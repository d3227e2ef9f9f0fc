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

package storage

import (
	"context"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

/*

solution cache

*/

// cacheTTL bounds how long a cached solution lives.  Solutions
// never go stale, but letting unused entries expire keeps the
// cache sized to the working set.
const cacheTTL = 30 * 24 * time.Hour

func cacheKey(givens string) string {
	return "solution:" + givens
}

// CachedSolution looks up the solution for a givens line in the
// cache.  ok is false on a miss, and also on any cache failure:
// a broken cache must never block solving.
func CachedSolution(givens string) (solution string, ok bool) {
	err := rdExecute(func() error {
		reply, err := redis.String(rdc.Do("GET", cacheKey(givens)))
		if err == redis.ErrNil {
			return nil
		}
		if err != nil {
			return err
		}
		solution, ok = reply, true
		return nil
	})
	if err != nil {
		log.Printf("Redis error on lookup of %q: %v", givens, err)
		return "", false
	}
	return solution, ok
}

// CacheSolution saves a solved puzzle in the cache.
func CacheSolution(givens, solution string) {
	err := rdExecute(func() error {
		_, err := rdc.Do("SETEX", cacheKey(givens), int(cacheTTL/time.Second), solution)
		return err
	})
	if err != nil {
		log.Printf("Redis error on save of %q: %v", givens, err)
	}
}

/*

solve history

*/

// A SolveRecord is one row of solve history.
type SolveRecord struct {
	ID       string        // unique ID for this solve
	Givens   string        // the 81-character puzzle line
	Solution string        // the 81-digit solution line
	Duration time.Duration // how long the solve took
	SolvedAt time.Time     // when the solve finished
}

// RecordSolve persists one solved puzzle in the database and
// returns the new record's ID.
func RecordSolve(givens, solution string, duration time.Duration) (string, error) {
	rec := SolveRecord{
		ID:       uuid.NewString(),
		Givens:   givens,
		Solution: solution,
		Duration: duration,
		SolvedAt: time.Now(),
	}
	err := pgExecute(func(tx pgx.Tx) error {
		_, err := tx.Exec(context.Background(),
			`insert into solves (id, givens, solution, duration_us, solved_at)
			 values ($1, $2, $3, $4, $5)`,
			rec.ID, rec.Givens, rec.Solution, rec.Duration.Microseconds(), rec.SolvedAt)
		return err
	})
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

// RecentSolves returns up to limit solve records, newest first.
func RecentSolves(limit int) ([]SolveRecord, error) {
	var recs []SolveRecord
	err := pgExecute(func(tx pgx.Tx) error {
		rows, err := tx.Query(context.Background(),
			`select id, givens, solution, duration_us, solved_at
			 from solves order by solved_at desc limit $1`, limit)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var rec SolveRecord
			var us int64
			if err := rows.Scan(&rec.ID, &rec.Givens, &rec.Solution, &us, &rec.SolvedAt); err != nil {
				return err
			}
			rec.Duration = time.Duration(us) * time.Microsecond
			recs = append(recs, rec)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}
