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

// defaultEdges is the library's standard 54-entry decision topology. Every
// non-terminal state.All() entry has exactly one row here; every successor
// is either another row's key or a state.Terminal from the closed status
// set. The ordering follows the diagram's lettered columns, b through p.
//
// Rows annotated "stub" reach one branch only because the paired transition
// function is wired to a fixed polarity (see the engine's defaults); the
// other branch is kept here so the graph stays total if that polarity is
// ever overridden with WithOverride.
var defaultEdges = map[string]edge{
	// Service availability and request shape.
	"b13": {onFalse: state.Terminal(503), onTrue: state.B12}, // service available? (stub true)
	"b12": {onFalse: state.Terminal(501), onTrue: state.B11}, // known method?
	"b11": {onFalse: state.B10, onTrue: state.Terminal(414)}, // URI too long? (stub false)
	"b10": {onFalse: state.Terminal(405), onTrue: state.B9},  // method allowed?
	"b9":  {onFalse: state.B8, onTrue: state.Terminal(400)},  // malformed?
	"b8":  {onFalse: state.Terminal(401), onTrue: state.B7},  // authorized? (stub true)
	"b7":  {onFalse: state.B6, onTrue: state.Terminal(403)},  // forbidden? (stub false)
	"b6":  {onFalse: state.B5, onTrue: state.Terminal(501)},  // unsupported content-* header? (stub false)
	"b5":  {onFalse: state.B4, onTrue: state.Terminal(415)},  // unknown content type? (stub false)
	"b4":  {onFalse: state.B3, onTrue: state.Terminal(413)},  // entity too large? (stub false)
	"b3":  {onFalse: state.C3, onTrue: state.Terminal(200)},  // OPTIONS? (stub false)

	// Content negotiation: Accept, then the stubbed Accept-Language /
	// Accept-Charset / Accept-Encoding chains.
	"c3": {onFalse: state.D4, onTrue: state.C4},             // Accept present?
	"c4": {onFalse: state.Terminal(406), onTrue: state.D4},   // acceptable media type found?
	"d4": {onFalse: state.E5, onTrue: state.D5},              // Accept-Language present? (stub false)
	"d5": {onFalse: state.Terminal(406), onTrue: state.E5},   // acceptable language? (unreachable)
	"e5": {onFalse: state.F6, onTrue: state.E6},              // Accept-Charset present? (stub false)
	"e6": {onFalse: state.Terminal(406), onTrue: state.F6},   // acceptable charset? (unreachable)
	"f6": {onFalse: state.G7, onTrue: state.F7},              // Accept-Encoding present? (stub false)
	"f7": {onFalse: state.Terminal(406), onTrue: state.G7},   // acceptable encoding? (unreachable)

	// Resource existence and If-Match conditionals, existing-resource side.
	"g7":  {onFalse: state.H7, onTrue: state.G8},             // resource exists?
	"g8":  {onFalse: state.H10, onTrue: state.G9},             // If-Match present? (stub false)
	"g9":  {onFalse: state.G11, onTrue: state.H10},            // If-Match == "*"? (unreachable under default stub polarity: g8 never takes this branch)
	"g11": {onFalse: state.Terminal(412), onTrue: state.H10},  // listed ETag matches? (unreachable, no ETag minted)

	// If-Match on a missing resource, then the shared If-Unmodified-Since
	// chain (only meaningful once a representation is known to exist).
	"h7":  {onFalse: state.I12, onTrue: state.Terminal(412)}, // If-Match == "*" on missing resource? (precondition fails: 412)
	"h10": {onFalse: state.I4, onTrue: state.H11},            // If-Unmodified-Since present? (stub false)
	"h11": {onFalse: state.I4, onTrue: state.H12},            // ...parses as a valid HTTP-date? (unreachable under default stub polarity: h10 never takes this branch)
	"h12": {onFalse: state.I4, onTrue: state.Terminal(412)},  // Last-Modified after If-Unmodified-Since? (unreachable, no Last-Modified tracked)

	// Moved-permanently / PUT dispatch, existing-resource side.
	"i4": {onFalse: state.I7, onTrue: state.Terminal(301)}, // existing resource moved permanently? (always false)
	"i7": {onFalse: state.K5, onTrue: state.P3},            // method PUT?

	// Moved-permanently / moved-temporarily / gone, missing-resource side.
	"i12": {onFalse: state.I13, onTrue: state.Terminal(301)}, // missing resource moved permanently? (stub false)
	"i13": {onFalse: state.L13, onTrue: state.Terminal(307)}, // missing resource moved temporarily? (always false)
	"l13": {onFalse: state.O16, onTrue: state.Terminal(410)}, // resource previously existed (now gone)? (stub false)

	// If-None-Match on an existing resource, and the GET/HEAD carve-out for
	// If-None-Match: "*".
	"k5":  {onFalse: state.K7, onTrue: state.Terminal(307)}, // existing resource moved temporarily? (stub false)
	"k7":  {onFalse: state.L5, onTrue: state.K13},           // If-None-Match present? (stub false)
	"k13": {onFalse: state.L5, onTrue: state.J18},           // If-None-Match == "*"? (unreachable under default stub polarity: k7 never takes this branch)
	"j18": {onFalse: state.Terminal(412), onTrue: state.Terminal(304)}, // GET or HEAD? (unreachable under default stub polarity, transitively via k13)

	// Representation selection and method dispatch on an existing resource.
	"l5":  {onFalse: state.L7, onTrue: state.Terminal(300)}, // multiple reps, no preference? (stub false)
	"l7":  {onFalse: state.L14, onTrue: state.M5},           // method POST?
	"l14": {onFalse: state.L15, onTrue: state.M16},          // method DELETE?
	"l15": {onFalse: state.L17, onTrue: state.Terminal(300)}, // multiple reps, no preference (post-delete check)? (always false)
	"l17": {onFalse: state.Terminal(200), onTrue: state.Terminal(200)}, // response carries an ETag? (always false; folds to 200)

	// POST-to-existing and DELETE dispatch.
	"m5":  {onFalse: state.L14, onTrue: state.N11},          // method POST (dispatch continuation)
	"m7":  {onFalse: state.Terminal(202), onTrue: state.M20}, // DELETE enacted immediately? (stub true)
	"m16": {onFalse: state.L15, onTrue: state.M7},           // method DELETE (dispatch continuation)
	"m20": {onFalse: state.Terminal(500), onTrue: state.Terminal(204)}, // DELETE completed? (stub true)

	// Create-via-POST dispatch, missing-resource side.
	"n5":  {onFalse: state.Terminal(404), onTrue: state.N11}, // missing resource accepts POST-create? (stub true)
	"n11": {onFalse: state.P11, onTrue: state.Terminal(303)}, // POST handler redirected client? (stub false)
	"n16": {onFalse: state.Terminal(404), onTrue: state.N5},  // method POST (missing-resource dispatch)?

	// Create-via-PUT dispatch, missing-resource side.
	"o14": {onFalse: state.O18, onTrue: state.Terminal(409)}, // PUT creation conflicts? (stub false)
	"o16": {onFalse: state.N16, onTrue: state.O14},           // method PUT (missing-resource dispatch)?
	"o18": {onFalse: state.P3, onTrue: state.Terminal(415)},  // PUT content-type unacceptable for creation? (stub false)
	"o20": {onFalse: state.Terminal(204), onTrue: state.Terminal(200)}, // response body non-empty?

	// Final conflict/Location shaping, shared by update-via-PUT and
	// create-via-PUT.
	"p3":  {onFalse: state.P11, onTrue: state.Terminal(409)}, // completing PUT conflicts with existing state? (stub false)
	"p11": {onFalse: state.O20, onTrue: state.Terminal(201)}, // response carries a Location header?
}
