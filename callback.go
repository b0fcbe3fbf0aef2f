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

import "clothesline.dev/engine/httpmethod"

// The four callback names a resource author may supply. Any other key in a
// CallbackMap is a construction-time error (see Build).
const (
	AllowedMethods       = "allowed-methods"
	ResourceExists       = "resource-exists?"
	MalformedRequest     = "malformed-request?"
	ContentTypesProvided = "content-types-provided"
)

// CallbackResult is what a callback returns: the value the caller consumes
// (Result), and optionally full replacements for the in-flight heap and/or
// response. A nil Heap or Response means "no change" — the driver keeps
// whatever it already had. There is deliberately no way to express "an
// unrecognized extra field" here: §4.4 of the system this engine models
// treats an unrecognized return key as a programmer error to be rejected at
// runtime; representing the return as a Go struct with exactly these three
// fields makes that error a compile-time impossibility instead, which is a
// strictly stronger guarantee.
type CallbackResult[T any] struct {
	Result   T
	Heap     *Heap
	Response *Response
}

// AllowedMethodsFunc backs the "allowed-methods" callback: which methods a
// resource accepts. Drives the b10 transition.
type AllowedMethodsFunc func(req *Request, heap Heap, resp Response) CallbackResult[httpmethod.Set]

// ResourceExistsFunc backs the "resource-exists?" callback. Drives g7.
type ResourceExistsFunc func(req *Request, heap Heap, resp Response) CallbackResult[bool]

// MalformedRequestFunc backs the "malformed-request?" callback. Drives b9.
type MalformedRequestFunc func(req *Request, heap Heap, resp Response) CallbackResult[bool]

// ContentTypesProvidedFunc backs the "content-types-provided" callback: the
// media types a resource can render, and the Provider for each. Drives c4.
type ContentTypesProvidedFunc func(req *Request, heap Heap, resp Response) CallbackResult[map[string]Provider]

// CallbackMap is the resource-author-supplied set of callbacks, keyed by
// name. Build validates every key against the four names above and the
// corresponding Func type before use; an unrecognized name, or a value of
// the wrong type for a recognized name, fails construction.
type CallbackMap map[string]any

// resolved is the merged, type-checked, defaults-filled callback set a
// Handler actually carries — never partially populated, never holding a raw
// `any`.
type resolved struct {
	allowedMethods       AllowedMethodsFunc
	resourceExists       ResourceExistsFunc
	malformedRequest     MalformedRequestFunc
	contentTypesProvided ContentTypesProvidedFunc
}

// invoke calls f, applies its optional heap/response replacement, and
// returns the callback's result alongside the (possibly updated) heap and
// response. This is the dispatch step from §4.4: a single-threaded walk
// makes "atomic update" just "assign both before returning".
func invoke[T any](f func(req *Request, heap Heap, resp Response) CallbackResult[T], req *Request, heap Heap, resp Response) (T, Heap, Response) {
	out := f(req, heap, resp)
	if out.Heap != nil {
		heap = *out.Heap
	}
	if out.Response != nil {
		resp = *out.Response
	}
	return out.Result, heap, resp
}
