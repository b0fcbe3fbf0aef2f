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

// Derived transitions fill in the waypoints the source system leaves as
// "…" in its own state table. Where the waypoint's name implies a concrete,
// request-observable condition, it is computed for real; where it implies a
// feature this engine does not carry (ETags, Last-Modified tracking), it is
// a fixed false, matching the engine's no-conditional-metadata default.

// g9: If-Match == "*"? Mirrors h7's rule on the "resource exists" branch,
// where an If-Match of "*" always matches since some representation exists.
func (w *walker) g9(req *Request, heap Heap, resp Response) (bool, Heap, Response) {
	return req.Header("If-Match") == "*", heap, resp
}

// g11: ETag-based If-Match comparison. The engine never mints or compares
// ETags, so an If-Match value other than "*" can never be satisfied.
func (w *walker) g11(req *Request, heap Heap, resp Response) (bool, Heap, Response) {
	return false, heap, resp
}

// h11: If-Unmodified-Since parses as a valid HTTP date? A malformed date is
// ignored per RFC 9110 and treated as if the header were absent.
func (w *walker) h11(req *Request, heap Heap, resp Response) (bool, Heap, Response) {
	v := req.Header("If-Unmodified-Since")
	if v == "" {
		return false, heap, resp
	}
	_, err := http.ParseTime(v)
	return err == nil, heap, resp
}

// h12: is the resource's last-modified time after If-Unmodified-Since? The
// engine tracks no last-modified time, so this can never be true.
func (w *walker) h12(req *Request, heap Heap, resp Response) (bool, Heap, Response) {
	return false, heap, resp
}

// i4: has the existing resource moved permanently (301)? No callback
// exposes this, so it is always false.
func (w *walker) i4(req *Request, heap Heap, resp Response) (bool, Heap, Response) {
	return false, heap, resp
}

// i13: has the missing resource moved temporarily (307)? No callback
// exposes this, so it is always false.
func (w *walker) i13(req *Request, heap Heap, resp Response) (bool, Heap, Response) {
	return false, heap, resp
}

// j18: method is GET or HEAD? Used to decide whether a conditional match
// on a missing precondition yields 304 (safe methods) or 412 (everything
// else).
func (w *walker) j18(req *Request, heap Heap, resp Response) (bool, Heap, Response) {
	return req.Method == httpmethod.GET || req.Method == httpmethod.HEAD, heap, resp
}

// k13: If-None-Match == "*"? Mirrors g9/h7 on the resource-exists branch.
func (w *walker) k13(req *Request, heap Heap, resp Response) (bool, Heap, Response) {
	return req.Header("If-None-Match") == "*", heap, resp
}

// l14: method is DELETE? Reached from l7 and m5, on a branch distinct from
// m16's; kept as its own named check rather than folded into m16 so each
// waypoint in the graph has a single, locally obvious condition.
func (w *walker) l14(req *Request, heap Heap, resp Response) (bool, Heap, Response) {
	return req.Method == httpmethod.DELETE, heap, resp
}

// l15: multiple representations without a preferred one (300)? Negotiation
// always narrows to exactly one provider, so this is always false.
func (w *walker) l15(req *Request, heap Heap, resp Response) (bool, Heap, Response) {
	return false, heap, resp
}

// l17: does the response carry an ETag? The engine never mints ETags, so
// this is always false; both branches lead to 200.
func (w *walker) l17(req *Request, heap Heap, resp Response) (bool, Heap, Response) {
	return false, heap, resp
}

// d5: acceptable language available? The engine does not perform language
// negotiation.
func (w *walker) d5(req *Request, heap Heap, resp Response) (bool, Heap, Response) {
	return false, heap, resp
}

// e6: acceptable charset available? The engine does not perform charset
// negotiation.
func (w *walker) e6(req *Request, heap Heap, resp Response) (bool, Heap, Response) {
	return false, heap, resp
}

// f7: acceptable encoding available? The engine does not perform
// content-encoding negotiation.
func (w *walker) f7(req *Request, heap Heap, resp Response) (bool, Heap, Response) {
	return false, heap, resp
}
