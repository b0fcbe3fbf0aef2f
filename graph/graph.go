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

package graph

import "clothesline.dev/engine/state"

// edge holds the two successors of a non-terminal state, keyed on the
// boolean outcome of its transition function.
type edge struct {
	onFalse state.State
	onTrue  state.State
}

// Graph is an immutable, reusable state-graph topology. The zero value is
// not usable; construct one with New.
type Graph struct {
	edges map[string]edge
}

// Successor returns the state that follows s when its transition function
// evaluates to outcome. If s is not present in the graph — which never
// happens for a Graph built by New, since New validates totality — it
// returns state.Terminal(500), mirroring the engine's documented behavior
// for a missing successor.
func (g *Graph) Successor(s state.State, outcome bool) state.State {
	e, ok := g.edges[s.Name()]
	if !ok {
		return state.Terminal(500)
	}
	if outcome {
		return e.onTrue
	}
	return e.onFalse
}

// Has reports whether s is a non-terminal state known to g.
func (g *Graph) Has(s state.State) bool {
	_, ok := g.edges[s.Name()]
	return ok
}
