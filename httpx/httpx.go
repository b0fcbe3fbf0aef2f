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

// Package httpx is the net/http-facing adapter an embedding server calls to
// drain a finished engine.Response onto a real http.ResponseWriter.
package httpx

import (
	"net/http"

	"clothesline.dev/engine"
)

// Writer drains an engine.Response onto an http.ResponseWriter: headers,
// then status, then body. resp must already be the result the handler
// returned from Handle — Handle itself invokes any pending body provider
// before returning, so Write never does.
type Writer struct{}

// Write copies resp's headers and status onto rw, then its body if any.
func (Writer) Write(rw http.ResponseWriter, resp engine.Response) {
	h := rw.Header()
	for k, v := range resp.Headers {
		h[k] = v
	}
	rw.WriteHeader(resp.Status)

	if b, ok := resp.Body.Value(); ok {
		_, _ = rw.Write(b)
	}
}
