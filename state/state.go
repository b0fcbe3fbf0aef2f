/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package state defines the decision graph's node identity: a State is
// either a NonTerminal (named b13, c4, p11, ...; has a transition function
// and a graph entry) or a Terminal (an HTTP status code; ends the walk).
//
// The source this engine is modeled on conflates the two: a state is a
// symbol, and "is it terminal" is decided by trying to parse the symbol's
// name as an integer. That conflation is deliberately not reproduced here —
// whether a State is terminal is fixed at definition time, not discovered by
// parsing a string on every step of every walk.
package state

import "fmt"

// State is a node in the decision graph. The zero value is not a valid
// State; construct one with NonTerminal or Terminal.
type State struct {
	name     string
	terminal bool
	status   int
}

// NonTerminal constructs a named, non-terminal state. name is used only for
// diagnostics (Explain, String) and as a map key; it carries no parsing
// significance.
func NonTerminal(name string) State {
	if name == "" {
		panic("state: NonTerminal name must not be empty")
	}
	return State{name: name}
}

// Terminal constructs a state that ends the walk with the given HTTP status
// code.
func Terminal(status int) State {
	return State{terminal: true, status: status}
}

// IsTerminal reports whether s ends the walk.
func (s State) IsTerminal() bool { return s.terminal }

// Status returns the HTTP status code for a terminal state, and ok=true. For
// a non-terminal state it returns (0, false).
func (s State) Status() (int, bool) {
	if !s.terminal {
		return 0, false
	}
	return s.status, true
}

// Name returns the symbolic name of a non-terminal state (e.g. "b13"). For a
// terminal state it returns the decimal status code, matching the source's
// convention that a terminal's "name" doubles as its status.
func (s State) Name() string {
	if s.terminal {
		return fmt.Sprintf("%d", s.status)
	}
	return s.name
}

// String implements fmt.Stringer for use in diagnostics and test failures.
func (s State) String() string { return s.Name() }

// Equal reports whether s and o identify the same state.
func (s State) Equal(o State) bool {
	return s.terminal == o.terminal && s.status == o.status && s.name == o.name
}
