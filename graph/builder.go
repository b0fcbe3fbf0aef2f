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

import (
	"fmt"

	"clothesline.dev/engine/state"
)

type builder struct {
	edges map[string]edge
}

// newBuilder seeds a builder from the library's default 54-entry topology.
// Options mutate a copy of it; New validates and freezes the result.
func newBuilder() *builder {
	edges := make(map[string]edge, len(defaultEdges))
	for k, v := range defaultEdges {
		edges[k] = v
	}
	return &builder{edges: edges}
}

// New builds a Graph from the library defaults, applying opts in order, and
// validates the result before freezing it: every non-terminal state.All()
// entry must be present with both successors set.
func New(opts ...Option) (*Graph, error) {
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}
	if err := validate(b.edges); err != nil {
		return nil, fmt.Errorf("graph: %w", err)
	}
	frozen := make(map[string]edge, len(b.edges))
	for k, v := range b.edges {
		frozen[k] = v
	}
	return &Graph{edges: frozen}, nil
}

// validate enforces graph totality: every known non-terminal state has an
// entry, and both its successors are either terminal or themselves a known
// non-terminal.
func validate(edges map[string]edge) error {
	for _, s := range state.All() {
		e, ok := edges[s.Name()]
		if !ok {
			return fmt.Errorf("missing entry for state %q", s.Name())
		}
		for _, succ := range []state.State{e.onFalse, e.onTrue} {
			if succ.IsTerminal() {
				continue
			}
			if _, ok := edges[succ.Name()]; !ok {
				return fmt.Errorf("state %q references unknown successor %q", s.Name(), succ.Name())
			}
		}
	}
	return nil
}
