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

// Package httpmethod defines the closed set of HTTP methods the decision
// engine knows how to route on.
package httpmethod

// Method is an HTTP request method. The eight verbs declared below are the
// ones the engine's fixed b12 transition recognizes as "known"; a Method may
// hold any other string as well, and Known reports whether it names one of
// the eight.
type Method string

// The eight verbs the engine's b12 transition treats as known. A request
// whose method is not one of these always terminates at 501, regardless of
// any allowed-methods callback.
const (
	// GET retrieves a representation of the resource. Part of the library
	// default allowed-methods set.
	GET Method = "GET"

	// HEAD retrieves headers only, with no body. Part of the library default
	// allowed-methods set.
	HEAD Method = "HEAD"

	// POST is the generic "do something resource-specific" verb: creating a
	// subordinate resource, submitting a command, appending to a collection.
	// Drives transitions l7, m5, n16.
	POST Method = "POST"

	// PUT creates or replaces a resource at the request URI. Drives
	// transitions i7, o16.
	PUT Method = "PUT"

	// DELETE removes the resource. Drives transition m16.
	DELETE Method = "DELETE"

	// TRACE and CONNECT are recognized as known methods (so b12 passes) but
	// have no dedicated fixed transition; a resource author wanting special
	// handling for them does so through allowed-methods and the callback
	// chain like any other verb.
	TRACE   Method = "TRACE"
	CONNECT Method = "CONNECT"

	// OPTIONS is the method b3 asks about; b3 is stubbed false, so an
	// OPTIONS request is not short-circuited and walks the graph like any
	// other method.
	OPTIONS Method = "OPTIONS"
)

// known holds the fixed set b12 consults. Built once; never mutated.
var known = map[Method]struct{}{
	GET: {}, HEAD: {}, POST: {}, PUT: {}, DELETE: {}, TRACE: {}, CONNECT: {}, OPTIONS: {},
}

// Known reports whether m is one of the eight methods the engine recognizes.
// This is the predicate behind the fixed b12 transition.
func Known(m Method) bool {
	_, ok := known[m]
	return ok
}

// Set is an unordered collection of methods, the result type of the
// allowed-methods callback (b10's input).
type Set map[Method]struct{}

// NewSet builds a Set from a list of methods, deduplicating.
func NewSet(methods ...Method) Set {
	s := make(Set, len(methods))
	for _, m := range methods {
		s[m] = struct{}{}
	}
	return s
}

// Contains reports whether m is a member of s. A nil Set contains nothing.
func (s Set) Contains(m Method) bool {
	_, ok := s[m]
	return ok
}

// DefaultAllowed is the allowed-methods default used whenever a callback map
// omits that callback: {GET, HEAD}.
func DefaultAllowed() Set {
	return NewSet(GET, HEAD)
}
