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
	"testing"

	"clothesline.dev/engine/state"
)

func TestNewDefaultIsTotal(t *testing.T) {
	g, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	for _, s := range state.All() {
		if !g.Has(s) {
			t.Errorf("state %q missing from default graph", s.Name())
		}
	}
}

func TestSuccessorMissingDefaultsTo500(t *testing.T) {
	g := &Graph{edges: map[string]edge{}}
	got := g.Successor(state.B13, true)
	if status, ok := got.Status(); !ok || status != 500 {
		t.Fatalf("Successor on empty graph = %v, want 500", got)
	}
}

// TestAcyclic walks from every non-terminal state twice, once taking the
// false branch at every step and once the true branch, up to a generous
// step bound, and confirms each walk reaches a terminal without revisiting
// a state.
func TestAcyclic(t *testing.T) {
	g, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	for _, start := range state.All() {
		for _, outcome := range []bool{false, true} {
			visited := map[string]bool{start.Name(): true}
			cur := start
			steps := 0
			for {
				next := g.Successor(cur, outcome)
				steps++
				if steps > len(state.All())+1 {
					t.Fatalf("from %q outcome=%v: exceeded step bound, likely a cycle", start.Name(), outcome)
				}
				if next.IsTerminal() {
					break
				}
				if visited[next.Name()] {
					t.Fatalf("from %q outcome=%v: revisited state %q", start.Name(), outcome, next.Name())
				}
				visited[next.Name()] = true
				cur = next
			}
		}
	}
}

func TestDefaultGetPathReaches200(t *testing.T) {
	g, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	// Walk the path a default GET against an existing resource with no
	// providers and no Accept header takes, applying the documented stub
	// polarities and fixed GET-is-not-PUT/POST/DELETE outcomes by hand.
	outcomes := map[string]bool{
		"b13": true, "b12": true, "b11": false, "b10": true, "b9": false,
		"b8": true, "b7": false, "b6": false, "b5": false, "b4": false,
		"b3": false, "c3": false, "d4": false, "e5": false, "f6": false,
		"g7": true, "g8": false, "h10": false, "i4": false, "i7": false,
		"k5": false, "k7": false, "l5": false, "l7": false, "l14": false,
		"l15": false, "l17": false,
	}
	cur := state.B13
	for i := 0; i < len(state.All())+1; i++ {
		outcome, ok := outcomes[cur.Name()]
		if !ok {
			t.Fatalf("no recorded outcome for state %q; path diverged from the expected default walk", cur.Name())
		}
		next := g.Successor(cur, outcome)
		if next.IsTerminal() {
			status, _ := next.Status()
			if status != 200 {
				t.Fatalf("default GET walk reached %d, want 200", status)
			}
			return
		}
		cur = next
	}
	t.Fatal("default GET walk did not terminate")
}

func TestWithOverride(t *testing.T) {
	g, err := New(WithOverride(state.B13, state.Terminal(503), state.Terminal(503)))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	got := g.Successor(state.B13, true)
	if status, ok := got.Status(); !ok || status != 503 {
		t.Fatalf("Successor(b13, true) = %v, want 503 after override", got)
	}
}

func TestExplain(t *testing.T) {
	path := []state.State{state.B13, state.B12, state.Terminal(200)}
	got := Explain(path)
	want := "b13 -> b12 -> 200"
	if got != want {
		t.Fatalf("Explain() = %q, want %q", got, want)
	}
}
