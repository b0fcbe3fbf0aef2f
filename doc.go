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

// Package engine is a small HTTP decision engine: it drives a request
// through a deterministic state machine, closely modeled on the Webmachine
// decision graph, to arrive at an HTTP status code and a content-negotiated
// response body.
//
// # Overview
//
// Resource authors supply a small set of callbacks — method gating, a
// malformedness check, an existence check, content-type providers — and
// Build compiles them into a Handler. The handler walks the standard HTTP
// decision tree, calling back into those callbacks only where the walk
// actually needs resource-specific knowledge; every other decision (method
// legality, Accept negotiation, conditional-request bookkeeping) is fixed
// engine policy.
//
// # Building a handler
//
//	h, err := engine.Build(engine.CallbackMap{
//	    engine.ResourceExists: engine.ResourceExistsFunc(func(req *engine.Request, heap engine.Heap, resp engine.Response) engine.CallbackResult[bool] {
//	        return engine.CallbackResult[bool]{Result: lookupExists(req)}
//	    }),
//	})
//	if err != nil {
//	    // unknown callback name, or a value of the wrong type for its name
//	}
//	resp := h.Handle(req)
//
// Callback names not among the four recognized ones fail Build before any
// request is ever served. Omitted names fall back to library defaults
// (DefaultAllowedMethods, DefaultResourceExists, DefaultMalformedRequest,
// DefaultContentTypesProvided).
//
// # Heap and response
//
// Each request gets a fresh Heap (scratch state shared across callback
// invocations within that one walk) and a Response accumulator. Both are
// passed to callbacks as snapshots; a callback that wants to change them
// returns a full replacement in CallbackResult.Heap / CallbackResult.Response,
// which the driver applies before the next transition. Heap and Response are
// never shared across requests.
//
// # Concurrency
//
// A Handler is immutable after Build and safe for concurrent use. Each call
// to Handle is an independent, single-threaded walk; nothing it touches is
// shared with any other in-flight call.
package engine
