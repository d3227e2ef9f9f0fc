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

// Web service for bitoku.  Exposes the solver over JSON at
// /api/solve and over a websocket at /api/stream, with solutions
// cached and recorded through the storage package.
package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/bitoku-go/bitoku/puzzle"
	"github.com/bitoku-go/bitoku/storage"
)

var log = logrus.New()

func main() {
	godotenv.Load()

	cid, dbid, err := storage.Connect()
	if err != nil {
		log.Fatalf("Couldn't connect to storage: %v", err)
	}
	log.Printf("Connected to cache at %q", cid)
	log.Printf("Connected to database at %q", dbid)
	defer storage.Close()

	shutdownOnSignal()

	http.HandleFunc("/api/solve", solveAPI)
	http.HandleFunc("/api/stream", streamAPI)

	// Heroku-style port sensing
	port := os.Getenv("PORT")
	if port == "" {
		// running locally in dev mode
		port = "localhost:8080"
	} else {
		// running as a true server
		port = ":" + port
	}

	log.Printf("Listening on %s...", port)
	if err := http.ListenAndServe(port, nil); err != nil {
		log.Fatalf("Listener failure: %v", err)
	}
}

// shutdownOnSignal closes the storage connections before dying,
// so we don't strand a database transaction.
func shutdownOnSignal() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		s := <-c
		log.Printf("Received %v, shutting down...", s)
		storage.Close()
		os.Exit(1)
	}()
}

// solveAPI answers POST /api/solve.
func solveAPI(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "solve requires POST", http.StatusMethodNotAllowed)
		return
	}
	log.Printf("Handling %s %s...", r.Method, r.URL.Path)
	if err := puzzle.SolveHandler(solveLine, w, r); err != nil {
		log.Printf("Couldn't respond to client: %v", err)
	}
}

var upgrader = websocket.Upgrader{
	// the solver has no client-specific state to protect
	CheckOrigin: func(r *http.Request) bool { return true },
}

// streamAPI answers GET /api/stream by upgrading to a websocket
// and solving each puzzle line the client sends, one text message
// per puzzle.  Bad puzzles get an "error: ..." message back and
// the stream stays open.
func streamAPI(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Couldn't upgrade stream request: %v", err)
		return
	}
	defer conn.Close()
	log.Printf("Streaming solutions to %s...", conn.RemoteAddr())
	for {
		kind, msg, err := conn.ReadMessage()
		if err != nil {
			log.Printf("Stream from %s closed: %v", conn.RemoteAddr(), err)
			return
		}
		if kind != websocket.TextMessage {
			continue
		}
		reply, err := solveLine(string(msg))
		if err != nil {
			reply = "error: " + err.Error()
		}
		if err := conn.WriteMessage(websocket.TextMessage, []byte(reply)); err != nil {
			log.Printf("Couldn't write to stream %s: %v", conn.RemoteAddr(), err)
			return
		}
	}
}

// solveLine solves one puzzle line, consulting and feeding the
// solution cache and the solve history.
func solveLine(line string) (string, error) {
	if solution, ok := storage.CachedSolution(line); ok {
		return solution, nil
	}
	start := time.Now()
	solution, err := puzzle.Solve(line)
	if err != nil {
		return "", err
	}
	storage.CacheSolution(line, solution)
	if _, err := storage.RecordSolve(line, solution, time.Since(start)); err != nil {
		log.Printf("Couldn't record solve: %v", err)
	}
	return solution, nil
}
