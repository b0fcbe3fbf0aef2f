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

import "net/http"

// Response is the HTTP response under construction as the walk proceeds.
// Status is overwritten exactly once, when the walk reaches a terminal
// state; Headers and Body may be set earlier, by transitions or by
// callbacks returning a replacement response.
type Response struct {
	Status  int
	Headers http.Header
	Body    Body
}

// NewResponse returns a Response with an initialized, empty header set and
// an empty body. Status is left at zero; the driver assigns it on
// termination.
func NewResponse() Response {
	return Response{Headers: make(http.Header), Body: EmptyBody()}
}

// WithHeader returns a copy of r with name set to value, leaving r
// untouched. Like Heap.With, this exists so a response snapshot already
// handed to an earlier callback is never retroactively mutated.
func (r Response) WithHeader(name, value string) Response {
	next := r.cloneHeaders()
	next.Headers.Set(name, value)
	return next
}

// WithBody returns a copy of r with its body slot replaced.
func (r Response) WithBody(b Body) Response {
	next := r.cloneHeaders()
	next.Body = b
	return next
}

// WithStatus returns a copy of r with its status replaced.
func (r Response) WithStatus(status int) Response {
	next := r.cloneHeaders()
	next.Status = status
	return next
}

func (r Response) cloneHeaders() Response {
	h := make(http.Header, len(r.Headers))
	for k, v := range r.Headers {
		vv := make([]string, len(v))
		copy(vv, v)
		h[k] = vv
	}
	return Response{Status: r.Status, Headers: h, Body: r.Body}
}
