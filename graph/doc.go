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

// Package graph holds the decision engine's state graph: a static mapping
// from each non-terminal state to the two states it leads to, keyed on a
// boolean transition outcome.
//
// # Overview
//
// The graph is built once, at engine construction time, and is immutable and
// safe for concurrent reuse across every request walk thereafter. It knows
// nothing about requests, heaps, or callbacks — it is purely the topology: 54
// non-terminal states wired to each other and to a closed set of terminal
// HTTP status codes.
//
// # Building a graph
//
// New with no options builds the library's standard topology. Most callers
// never need anything else:
//
//	g, err := graph.New()
//
// WithOverride lets a caller replace a single state's successor pair
// without hand-building an entirely new table — useful for an embedder
// experimenting with fuller Webmachine semantics on one node at a time. The
// default topology never applies it itself.
//
// # Resolution
//
// Successor looks up the next state for a (state, outcome) pair. A missing
// entry — which should not occur in a well-formed graph — resolves to the
// generic state.Terminal(500), matching the engine's documented failure
// semantics rather than panicking.
//
// # Diagnostics
//
// Explain renders a walked path as a human-readable trace, for logging or
// test failure messages. It is for inspection, not stable machine parsing.
package graph
