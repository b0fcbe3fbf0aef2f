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

package state

// The 54 non-terminal states of the decision graph, grouped by the letter
// column of the diagram they belong to. Each is a package-level State value;
// the graph package wires them together, and the engine package attaches a
// transition function to each one.

// Service-availability and request-shape gates (the "B" column).
var (
	// B13 asks whether the service itself is available to handle any
	// request at all. Stubbed true by default — embedders with a real
	// health/readiness signal replace this by overriding the graph.
	B13 = NonTerminal("b13")

	// B12 asks whether the request method is one of the eight known verbs
	// (httpmethod.Known). Unconditional on any callback.
	B12 = NonTerminal("b12")

	// B11 asks whether the request URI exceeds a length limit. Stubbed
	// false: no limit is enforced by default.
	B11 = NonTerminal("b11")

	// B10 asks whether the request method is a member of the
	// allowed-methods callback's result.
	B10 = NonTerminal("b10")

	// B9 asks the malformed-request? callback.
	B9 = NonTerminal("b9")

	// B8 asks whether the caller is authorized. Stubbed true: no
	// authentication scheme is built in.
	B8 = NonTerminal("b8")

	// B7 asks whether the caller is forbidden from the operation. Stubbed
	// false: no authorization scheme is built in.
	B7 = NonTerminal("b7")

	// B6 asks whether the request carries an unsupported Content-* header.
	// Stubbed false.
	B6 = NonTerminal("b6")

	// B5 asks whether the request's Content-Type is unknown to the
	// resource. Stubbed false: the engine does not itself validate request
	// bodies.
	B5 = NonTerminal("b5")

	// B4 asks whether the request entity exceeds a size limit. Stubbed
	// false.
	B4 = NonTerminal("b4")

	// B3 asks whether the request method is OPTIONS; a true outcome would
	// end the walk at 200. Stubbed false: OPTIONS requests continue through
	// the rest of the graph like any other method.
	B3 = NonTerminal("b3")
)

// Content negotiation (the "C" through "F" columns).
var (
	// C3 asks whether the request carries an Accept header at all.
	C3 = NonTerminal("c3")

	// C4 runs media-type negotiation (negotiate.Select) against
	// content-types-provided; on success it sets Content-Type and stores the
	// chosen provider in the response body slot.
	C4 = NonTerminal("c4")

	// D4 asks whether Accept-Language is present. Stubbed false: language
	// negotiation is out of scope.
	D4 = NonTerminal("d4")
	// D5 would check whether an acceptable language is available; dead code
	// given D4 is permanently false, kept for graph totality.
	D5 = NonTerminal("d5")

	// E5 asks whether Accept-Charset is present. Stubbed false.
	E5 = NonTerminal("e5")
	// E6 would check an acceptable charset; dead code given E5 is false.
	E6 = NonTerminal("e6")

	// F6 asks whether Accept-Encoding is present. Stubbed false.
	F6 = NonTerminal("f6")
	// F7 would check an acceptable encoding; dead code given F6 is false.
	F7 = NonTerminal("f7")
)

// Resource existence and conditional-request handling (the "G" through "K"
// columns). ETag/Last-Modified are non-goals (spec.md §1); these nodes exist
// for graph totality and fall back to pass-through behavior in the absence
// of any callback that mints an ETag or Last-Modified value.
var (
	// G7 asks the resource-exists? callback.
	G7 = NonTerminal("g7")

	// G8 asks (for an existing resource) whether If-Match is present.
	// Stubbed false.
	G8 = NonTerminal("g8")
	// G9 asks whether If-Match is exactly "*".
	G9 = NonTerminal("g9")
	// G11 asks whether the resource's current ETag is among those listed in
	// If-Match. Always false: the engine never mints an ETag.
	G11 = NonTerminal("g11")

	// H7 asks (for a missing resource) whether If-Match is exactly "*"; if
	// so the walk ends at 412, since there is no representation for the
	// precondition to match.
	H7 = NonTerminal("h7")
	// H10 asks whether If-Unmodified-Since is present. Stubbed false.
	H10 = NonTerminal("h10")
	// H11 asks whether If-Unmodified-Since parses as a valid HTTP-date.
	H11 = NonTerminal("h11")
	// H12 asks whether the resource's Last-Modified is after
	// If-Unmodified-Since. Always false: no Last-Modified is tracked.
	H12 = NonTerminal("h12")

	// I4 asks (existing resource) whether it has moved permanently. Always
	// false: no callback exposes this.
	I4 = NonTerminal("i4")
	// I7 asks whether the request method is PUT.
	I7 = NonTerminal("i7")
	// I12 asks (missing resource) whether it has moved permanently. Stubbed
	// false.
	I12 = NonTerminal("i12")
	// I13 asks (missing resource) whether it has moved temporarily. Always
	// false: no callback exposes this.
	I13 = NonTerminal("i13")

	// J18 asks whether the method is GET or HEAD; reached only once
	// If-None-Match: * has already matched, to decide between 304 and 412.
	J18 = NonTerminal("j18")

	// K5 asks (existing resource, past the PUT branch) whether it has moved
	// temporarily. Stubbed false.
	K5 = NonTerminal("k5")
	// K7 asks whether If-None-Match is present. Stubbed false.
	K7 = NonTerminal("k7")
	// K13 asks whether If-None-Match is exactly "*".
	K13 = NonTerminal("k13")
)

// The read/mutate response tail (the "L" through "P" columns): deciding
// between multiple representations, dispatching DELETE/POST, and resolving
// the final 2xx/3xx shape of a successful response.
var (
	// L5 asks whether multiple representations exist without a server
	// preference (300). Stubbed false.
	L5 = NonTerminal("l5")
	// L7 asks whether the request method is POST.
	L7 = NonTerminal("l7")
	// L13 asks whether the resource is gone (tombstoned). Stubbed false.
	L13 = NonTerminal("l13")
	// L14 asks whether the request method is DELETE.
	L14 = NonTerminal("l14")
	// L15 asks whether multiple representations exist without a preferred
	// one, post-DELETE-check. Always false: negotiation always narrows to
	// exactly one provider.
	L15 = NonTerminal("l15")
	// L17 asks whether the response carries an ETag. Always false.
	L17 = NonTerminal("l17")

	// M5 asks whether the method is POST, for the POST-to-existing-resource
	// path reached from L7.
	M5 = NonTerminal("m5")
	// M7 asks whether a DELETE was enacted immediately. Stubbed true: the
	// engine performs no deletion itself, so it behaves as if any DELETE
	// completed synchronously.
	M7 = NonTerminal("m7")
	// M16 asks whether the request method is DELETE.
	M16 = NonTerminal("m16")
	// M20 asks whether the DELETE completed. Stubbed true, for the same
	// reason as M7.
	M20 = NonTerminal("m20")

	// N5 asks whether a missing resource accepts POST (create-via-POST).
	// Stubbed true, matching the common default of allowing it.
	N5 = NonTerminal("n5")
	// N11 asks whether a POST handler redirected the client. Stubbed false.
	N11 = NonTerminal("n11")
	// N16 asks whether the request method is POST, on the missing-resource
	// branch.
	N16 = NonTerminal("n16")

	// O14 asks whether creating the resource via PUT conflicts with
	// something. Stubbed false.
	O14 = NonTerminal("o14")
	// O16 asks whether the request method is PUT, on the missing-resource
	// branch.
	O16 = NonTerminal("o16")
	// O18 asks whether the PUT's Content-Type is unacceptable for creation
	// (415). Stubbed false (meaning: no problem found).
	O18 = NonTerminal("o18")
	// O20 asks whether the response body is non-empty, to choose between
	// 200 and 204.
	O20 = NonTerminal("o20")

	// P3 asks whether completing a PUT would conflict with existing state.
	// Stubbed false.
	P3 = NonTerminal("p3")
	// P11 asks whether the response carries a Location header.
	P11 = NonTerminal("p11")
)

// All lists every non-terminal state, for graph-totality checks and tests.
func All() []State {
	return []State{
		B13, B12, B11, B10, B9, B8, B7, B6, B5, B4, B3,
		C3, C4,
		D4, D5,
		E5, E6,
		F6, F7,
		G7, G8, G9, G11,
		H7, H10, H11, H12,
		I4, I7, I12, I13,
		J18,
		K5, K7, K13,
		L5, L7, L13, L14, L15, L17,
		M5, M7, M16, M20,
		N5, N11, N16,
		O14, O16, O18, O20,
		P3, P11,
	}
}

// TerminalStatuses is the full set of HTTP status codes this graph's
// terminal states may carry.
func TerminalStatuses() []int {
	return []int{
		200, 201, 202, 204,
		300, 301, 303, 304, 307,
		400, 401, 403, 404, 405, 406, 409, 410, 412, 413, 414, 415,
		500, 501, 503,
	}
}
