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

// Package storage provides the solved-puzzle cache and the
// solve-history store.  Solutions are cached in Redis keyed by
// their givens line, so repeated puzzles are answered without
// another search; every fresh solve is recorded in Postgres.
package storage

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"

	"github.com/bitoku-go/bitoku/dbprep"
)

var log = logrus.New()

// Connect makes sure the database schema is in place and opens
// the cache and database connections.  It returns identifiers
// for both connections for the caller to log.
func Connect() (cacheId, databaseId string, err error) {
	if err = dbprep.EnsureSchema(); err != nil {
		err = fmt.Errorf("Couldn't initialize database: %v", err)
		return
	}

	rdInit()
	rdMutex.Lock()
	defer rdMutex.Unlock()
	cacheId, err = rdConnect()
	if err != nil {
		return
	}

	pgInit()
	databaseId, err = pgConnect()
	return
}

// Close shuts down both connections.
func Close() {
	rdMutex.Lock()
	defer rdMutex.Unlock()
	pgClose()
	rdClose()
}

/*

cache using Redis

*/

// Redis connection data
var (
	rdc     redis.Conn // open connection, if any
	rdUrl   string     // URL for the open connection
	rdMutex sync.Mutex // prevent concurrent connection use
)

// rdInit - look up Redis info from the environment
func rdInit() {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		rdUrl = "redis://localhost:6379/"
	} else {
		rdUrl = url
	}
}

// rdConnect: connect to the given Redis URL.  Returns the
// connection id, if successful, an error otherwise.
func rdConnect() (string, error) {
	conn, err := redis.DialURL(rdUrl)
	if err != nil {
		return "", fmt.Errorf("Couldn't connect to cache at %q: %v", rdUrl, err)
	}
	rdc = conn
	return rdUrl, nil
}

// rdClose: close the open Redis connection, if any.
func rdClose() {
	if rdc != nil {
		rdc.Close()
		rdc = nil
	}
}

// rdExecute: execute the body against the Redis connection,
// holding the connection mutex.  The body reads the package
// connection, so a reconnect done here is visible to it.
func rdExecute(body func() error) error {
	wrapper := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				if e, ok := r.(error); ok {
					err = e
				} else {
					err = fmt.Errorf("Caught panic during rdExecute: %v", r)
				}
			}
		}()
		// Redis connections can go away without warning, so ping
		// first and reconnect if the connection has died.
		if _, err := rdc.Do("PING"); err != nil {
			rdClose()
			if _, err := rdConnect(); err != nil {
				return fmt.Errorf("Failed to reconnect to cache at %q", rdUrl)
			}
		}
		return body()
	}
	rdMutex.Lock()
	defer rdMutex.Unlock()
	return wrapper()
}

/*

persistence using Postgres

*/

// Postgres connection data
var (
	pgConn *pgx.Conn // open database, if any
	pgUrl  string    // URL for the open connection
)

// pgInit - look up Postgres info from the environment
func pgInit() {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		pgUrl = "postgres://localhost/bitoku?sslmode=disable"
	} else {
		pgUrl = url
	}
}

// pgConnect: open the Postgres database.  Returns the
// connection id, if successful, an error otherwise.
func pgConnect() (string, error) {
	conn, err := pgx.Connect(context.Background(), pgUrl)
	if err != nil {
		return "", fmt.Errorf("Couldn't connect to db at %q: %v", pgUrl, err)
	}
	pgConn = conn
	return pgUrl, nil
}

// pgClose: close the open Postgres connection, if any.
func pgClose() {
	if pgConn != nil {
		pgConn.Close(context.Background())
		pgConn = nil
	}
}

// pgExecute: execute the body inside a single transaction.  If
// the body errs out or panics, the transaction is rolled back,
// otherwise it's committed.
func pgExecute(body func(tx pgx.Tx) error) error {
	ctx := context.Background()
	tx, err := pgConn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("Can't open a transaction against database: %v", err)
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback(ctx)
			panic(r)
		}
	}()
	if err := body(tx); err != nil {
		tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}
