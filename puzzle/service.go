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
	"encoding/json"
	"net/http"
)

/*

Web interface to the solver

*/

// A SolveRequest is the JSON body accepted by SolveHandler.
type SolveRequest struct {
	Puzzle string `json:"puzzle"`
}

// A SolveResponse is what SolveHandler sends back on success.
type SolveResponse struct {
	Puzzle   string `json:"puzzle"`
	Solution string `json:"solution"`
}

// A SolverFunc produces the solution line for a puzzle line.
// Solve is the obvious one; servers wrap it with caching.
type SolverFunc func(string) (string, error)

// SolveHandler is a POST handler that reads a JSON-encoded
// SolveRequest from the request body, solves it with the given
// SolverFunc, and responds with the SolveResponse for the solved
// puzzle.  Engine errors are sent as a 400 response carrying the
// structured Error, with its Message filled in for clients that
// don't want to interpret the structure.
//
// If we can't encode the response to the client (which should
// never happen), the client gets a 500 and the golang caller
// gets the encoding error as a signal that the client didn't
// get the correct response.
func SolveHandler(solve SolverFunc, w http.ResponseWriter, r *http.Request) error {
	dec := json.NewDecoder(r.Body)
	var req SolveRequest
	if e := dec.Decode(&req); e != nil {
		err := Error{
			Scope:     ParseScope,
			Condition: UnknownCondition,
			Message:   "Request decode: " + e.Error(),
		}
		return writeJSON(err, http.StatusBadRequest, w)
	}
	solution, e := solve(req.Puzzle)
	if e != nil {
		err, ok := e.(Error)
		if !ok {
			err = Error{Message: e.Error()}
		}
		err.Message = err.Error()
		return writeJSON(err, http.StatusBadRequest, w)
	}
	return writeJSON(SolveResponse{Puzzle: req.Puzzle, Solution: solution}, http.StatusOK, w)
}

// writeJSON encodes a body as a JSON response with the given
// status.
func writeJSON(body interface{}, status int, w http.ResponseWriter) error {
	bytes, err := json.Marshal(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(bytes)
	return err
}
