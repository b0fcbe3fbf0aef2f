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

package engine

import (
	"fmt"

	"clothesline.dev/engine/graph"
	"clothesline.dev/engine/state"
)

// Handler is a built decision engine: a resolved callback set paired with a
// state graph. It holds no per-request state and is safe for concurrent use
// by any number of goroutines, the same way the callback map it was built
// from never changes after Build returns.
type Handler struct {
	callbacks resolved
	graph     *graph.Graph
	maxSteps  int
}

// Handle walks req through the state graph to a terminal status, invoking
// callbacks as their states are reached, and returns the resulting
// Response. If the walk exceeds the Handler's step bound — which a
// well-formed graph never does — it terminates at 500.
func (h *Handler) Handle(req *Request) Response {
	heap := Heap{}.With(heapKeyCallbacks, h.callbacks)
	resp := NewResponse()
	w := &walker{callbacks: h.callbacks}

	cur := state.B13
	for step := 0; ; step++ {
		if status, ok := cur.Status(); ok {
			resp = resp.WithStatus(status)
			return finalize(req, heap, resp)
		}
		if step >= h.maxSteps {
			resp = resp.WithStatus(500)
			return finalize(req, heap, resp)
		}

		fn, ok := transitions[cur.Name()]
		if !ok {
			resp = resp.WithStatus(500)
			return finalize(req, heap, resp)
		}

		var outcome bool
		outcome, heap, resp = fn(w, req, heap, resp)
		cur = h.graph.Successor(cur, outcome)
	}
}

// finalize invokes a pending body provider, if any, exactly once, and
// returns the response it produces; otherwise it returns resp unchanged.
func finalize(req *Request, heap Heap, resp Response) Response {
	if p, ok := resp.Body.Provider(); ok {
		resp = p(req, heap, resp)
	}
	return resp
}

// String implements fmt.Stringer for debugging: the handler's step bound.
func (h *Handler) String() string {
	return fmt.Sprintf("Handler{maxSteps=%d}", h.maxSteps)
}
