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
	"net/http"

	"clothesline.dev/engine/httpmethod"
)

// Request is the engine's view of an inbound HTTP request: only the fields
// the graph and its transitions actually read.
//
// Headers is an http.Header, which canonicalizes and looks up header names
// case-insensitively. This is a deliberate departure from the source this
// engine is modeled on, which reads "Location" capitalized but "accept"
// lowercase — almost certainly an accident of how each was typed, not a
// meaningful distinction. Every header this engine consults (Accept,
// If-Match, If-Unmodified-Since, If-None-Match, Location) is looked up the
// same, case-insensitive way.
type Request struct {
	Method  httpmethod.Method
	Headers http.Header

	// Params carries path/query parameters; the engine never reads it.
	// It exists so resource authors have somewhere to stash per-request
	// routing data their callbacks need.
	Params map[string]string

	// Globals carries embedder-specific context (a DB handle, a logger, a
	// trace ID) opaque to the engine. Callbacks type-assert it themselves.
	Globals any
}

// Header is a small convenience wrapper over Headers.Get, so transitions
// read cleanly without repeating the nil-map guard Headers may need.
func (r *Request) Header(name string) string {
	if r == nil || r.Headers == nil {
		return ""
	}
	return r.Headers.Get(name)
}
