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
	"clothesline.dev/engine/httpmethod"
	"clothesline.dev/engine/negotiate"
)

// Fixed transitions: always computed by the engine, never user-overridable.
// Each corresponds to a bullet in the system's "Fixed transitions" list.

// b12: known method?
func (w *walker) b12(req *Request, heap Heap, resp Response) (bool, Heap, Response) {
	return httpmethod.Known(req.Method), heap, resp
}

// b10: method allowed?
func (w *walker) b10(req *Request, heap Heap, resp Response) (bool, Heap, Response) {
	allowed, heap, resp := invoke(w.callbacks.allowedMethods, req, heap, resp)
	return allowed.Contains(req.Method), heap, resp
}

// b9: malformed?
func (w *walker) b9(req *Request, heap Heap, resp Response) (bool, Heap, Response) {
	return invoke(w.callbacks.malformedRequest, req, heap, resp)
}

// c3: Accept header present?
func (w *walker) c3(req *Request, heap Heap, resp Response) (bool, Heap, Response) {
	return req.Header("Accept") != "", heap, resp
}

// c4: acceptable media type found? On success, sets Content-Type and stores
// the chosen provider in the response body.
func (w *walker) c4(req *Request, heap Heap, resp Response) (bool, Heap, Response) {
	offered, heap, resp := invoke(w.callbacks.contentTypesProvided, req, heap, resp)
	mt, provider, ok := negotiate.Select(offered, req.Header("Accept"))
	if !ok {
		return false, heap, resp
	}
	resp = resp.WithHeader("Content-Type", mt).WithBody(ProviderBody(provider))
	return true, heap, resp
}

// g7: resource exists?
func (w *walker) g7(req *Request, heap Heap, resp Response) (bool, Heap, Response) {
	return invoke(w.callbacks.resourceExists, req, heap, resp)
}

// h7: If-Match == "*"? (on a resource the walk has already determined is
// missing; a true outcome ends the walk at 412, since there is no
// representation for the "*" precondition to match).
func (w *walker) h7(req *Request, heap Heap, resp Response) (bool, Heap, Response) {
	return req.Header("If-Match") == "*", heap, resp
}

// i7, o16: method PUT?
func (w *walker) i7(req *Request, heap Heap, resp Response) (bool, Heap, Response) {
	return req.Method == httpmethod.PUT, heap, resp
}
func (w *walker) o16(req *Request, heap Heap, resp Response) (bool, Heap, Response) {
	return req.Method == httpmethod.PUT, heap, resp
}

// l7, m5, n16: method POST?
func (w *walker) l7(req *Request, heap Heap, resp Response) (bool, Heap, Response) {
	return req.Method == httpmethod.POST, heap, resp
}
func (w *walker) m5(req *Request, heap Heap, resp Response) (bool, Heap, Response) {
	return req.Method == httpmethod.POST, heap, resp
}
func (w *walker) n16(req *Request, heap Heap, resp Response) (bool, Heap, Response) {
	return req.Method == httpmethod.POST, heap, resp
}

// m16: method DELETE?
func (w *walker) m16(req *Request, heap Heap, resp Response) (bool, Heap, Response) {
	return req.Method == httpmethod.DELETE, heap, resp
}

// o20: response body non-empty?
func (w *walker) o20(req *Request, heap Heap, resp Response) (bool, Heap, Response) {
	return !resp.Body.IsEmpty(), heap, resp
}

// p11: response carries a Location header? Location is set on the response
// by an earlier callback (e.g. after creating a resource), never read from
// the request, so this checks resp.Headers directly rather than req.Header.
func (w *walker) p11(req *Request, heap Heap, resp Response) (bool, Heap, Response) {
	return resp.Headers.Get("Location") != "", heap, resp
}
