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
	"fmt"
)

/*

Errors

*/

// An Error describes a problem with a puzzle line or with the
// solving of it.  It can produce an error message in English,
// but its main job is to tell callers "this thing failed this
// condition" in a form they can inspect or serialize for web
// clients.
type Error struct {
	Scope     ErrorScope     `json:"scope"`
	Condition ErrorCondition `json:"condition"`
	Values    ErrorData      `json:"values,omitempty"`
	Message   string         `json:"message,omitempty"` // custom message
}

// An ErrorScope explains what type of thing the error is
// referring to.
type ErrorScope int

// Constants for the various error scopes.
const (
	UnknownScope ErrorScope = iota
	ParseScope
	CellScope
	SearchScope
	MaxScope
)

// The ErrorCondition is the predicate that the scope failed to
// satisfy.
type ErrorCondition int

// Constants for the various error conditions.
const (
	UnknownCondition ErrorCondition = iota
	WrongLengthCondition
	BadSymbolCondition
	NoCandidatesCondition
	CannotPropagateCondition
	CannotSplitCondition
	UnsolvableCondition
	MaxCondition
)

// The ErrorData provides details about the thing that failed to
// meet the predicate.  Every item in the slice is required to be
// JSON-serializable, so errors can be returned to web clients.
type ErrorData []interface{}

// Return an error string from an Error.  If the Error has a
// pre-canned message, this will use it, otherwise it will
// produce an appropriate (English, non-localized) message.
func (e Error) Error() string {
	if len(e.Message) > 0 {
		return e.Message
	}
	values := e.Values
	nextVal := func() interface{} {
		if len(values) == 0 {
			return "<unknown>"
		}
		val := values[0]
		values = values[1:]
		return val
	}
	var es string
	switch e.Scope {
	case ParseScope:
		es = "Invalid puzzle line: "
	case CellScope:
		es = fmt.Sprintf("Problem in cell %v: ", nextVal())
	case SearchScope:
		es = "Search failed: "
	default:
		es = "Unknown error: "
	}
	switch e.Condition {
	case WrongLengthCondition:
		es += fmt.Sprintf("Length is %v, must be %v", nextVal(), nextVal())
	case BadSymbolCondition:
		es += fmt.Sprintf("Symbol %v at position %v is not in '0'..'9'", nextVal(), nextVal())
	case NoCandidatesCondition:
		es += "No remaining candidate digits"
	case CannotPropagateCondition:
		es += fmt.Sprintf("Cannot propagate the givens: %v", nextVal())
	case CannotSplitCondition:
		es += "Unsolved board has no cell to split on"
	case UnsolvableCondition:
		es += "Puzzle cannot be solved"
	default:
		es += fmt.Sprintf("Supplemental data is %v", values)
	}
	return es
}
