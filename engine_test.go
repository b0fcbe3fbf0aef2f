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
	"testing"

	"clothesline.dev/engine/httpmethod"
)

func newReq(method httpmethod.Method, headers map[string]string) *Request {
	h := make(http.Header, len(headers))
	for k, v := range headers {
		h.Set(k, v)
	}
	return &Request{Method: method, Headers: h}
}

func TestHandleDefaultGetReturns200(t *testing.T) {
	h, err := Build(nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	resp := h.Handle(newReq(httpmethod.GET, nil))
	if resp.Status != 200 {
		t.Fatalf("status = %d, want 200", resp.Status)
	}
	if !resp.Body.IsEmpty() {
		b, _ := resp.Body.Value()
		t.Fatalf("body = %q, want empty", b)
	}
}

func TestHandleUnknownMethodReturns501(t *testing.T) {
	h, err := Build(nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	resp := h.Handle(newReq(httpmethod.Method("FROB"), nil))
	if resp.Status != 501 {
		t.Fatalf("status = %d, want 501", resp.Status)
	}
}

func TestHandleDisallowedMethodReturns405(t *testing.T) {
	h, err := Build(CallbackMap{
		AllowedMethods: AllowedMethodsFunc(func(_ *Request, _ Heap, _ Response) CallbackResult[httpmethod.Set] {
			return CallbackResult[httpmethod.Set]{Result: httpmethod.NewSet(httpmethod.GET)}
		}),
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	resp := h.Handle(newReq(httpmethod.POST, nil))
	if resp.Status != 405 {
		t.Fatalf("status = %d, want 405", resp.Status)
	}
}

func TestHandleMalformedRequestReturns400WithBody(t *testing.T) {
	const want = "missing node"
	h, err := Build(CallbackMap{
		MalformedRequest: MalformedRequestFunc(func(_ *Request, _ Heap, resp Response) CallbackResult[bool] {
			r := resp.WithBody(ValueBody([]byte(want)))
			return CallbackResult[bool]{Result: true, Response: &r}
		}),
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	resp := h.Handle(newReq(httpmethod.GET, nil))
	if resp.Status != 400 {
		t.Fatalf("status = %d, want 400", resp.Status)
	}
	if b, _ := resp.Body.Value(); string(b) != want {
		t.Fatalf("body = %q, want %q", b, want)
	}
}

func TestHandleMissingResourceReturns404WithBody(t *testing.T) {
	const want = `{"error":"Could not find facts for n1"}`
	h, err := Build(CallbackMap{
		ResourceExists: ResourceExistsFunc(func(_ *Request, _ Heap, resp Response) CallbackResult[bool] {
			r := resp.WithBody(ValueBody([]byte(want)))
			return CallbackResult[bool]{Result: false, Response: &r}
		}),
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	resp := h.Handle(newReq(httpmethod.GET, nil))
	if resp.Status != 404 {
		t.Fatalf("status = %d, want 404", resp.Status)
	}
	if b, _ := resp.Body.Value(); string(b) != want {
		t.Fatalf("body = %q, want %q", b, want)
	}
}

func TestHandleNegotiationSuccess(t *testing.T) {
	const payload = `{"ok":true}`
	h, err := Build(CallbackMap{
		ContentTypesProvided: ContentTypesProvidedFunc(func(_ *Request, _ Heap, _ Response) CallbackResult[map[string]Provider] {
			return CallbackResult[map[string]Provider]{Result: map[string]Provider{
				"application/json": func(_ *Request, _ Heap, resp Response) Response {
					return resp.WithBody(ValueBody([]byte(payload)))
				},
			}}
		}),
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	resp := h.Handle(newReq(httpmethod.GET, map[string]string{"Accept": "application/json"}))
	if resp.Status != 200 {
		t.Fatalf("status = %d, want 200", resp.Status)
	}
	if ct := resp.Headers.Get("Content-Type"); ct != "application/json" {
		t.Fatalf("Content-Type = %q, want application/json", ct)
	}
	if b, _ := resp.Body.Value(); string(b) != payload {
		t.Fatalf("body = %q, want %q", b, payload)
	}
}

func TestHandleNegotiationFailureReturns406(t *testing.T) {
	h, err := Build(CallbackMap{
		ContentTypesProvided: ContentTypesProvidedFunc(func(_ *Request, _ Heap, _ Response) CallbackResult[map[string]Provider] {
			return CallbackResult[map[string]Provider]{Result: map[string]Provider{
				"application/json": func(_ *Request, _ Heap, resp Response) Response { return resp },
			}}
		}),
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	resp := h.Handle(newReq(httpmethod.GET, map[string]string{"Accept": "text/html"}))
	if resp.Status != 406 {
		t.Fatalf("status = %d, want 406", resp.Status)
	}
}

func TestBuildRejectsUnknownCallbackName(t *testing.T) {
	_, err := Build(CallbackMap{
		"not-a-callback": ResourceExistsFunc(func(_ *Request, _ Heap, _ Response) CallbackResult[bool] {
			return CallbackResult[bool]{Result: true}
		}),
	})
	if err == nil {
		t.Fatal("Build: want error for unrecognized callback name, got nil")
	}
}

func TestBuildRejectsWrongCallbackType(t *testing.T) {
	_, err := Build(CallbackMap{
		ResourceExists: func() {},
	})
	if err == nil {
		t.Fatal("Build: want error for mistyped callback value, got nil")
	}
}

// Termination bound: a runaway custom graph still returns within maxSteps
// rather than looping forever.
func TestHandleRespectsMaxSteps(t *testing.T) {
	h, err := Build(nil, WithMaxSteps(0))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	resp := h.Handle(newReq(httpmethod.GET, nil))
	if resp.Status != 500 {
		t.Fatalf("status = %d, want 500 when the step bound is exhausted immediately", resp.Status)
	}
}

// Default idempotence: handling the same request twice against the same
// Handler yields the same result, since a Handler carries no mutable
// per-request state.
func TestHandleIsIdempotentAcrossCalls(t *testing.T) {
	h, err := Build(nil)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	req := newReq(httpmethod.GET, nil)
	first := h.Handle(req)
	second := h.Handle(req)
	if first.Status != second.Status {
		t.Fatalf("status changed across calls: %d then %d", first.Status, second.Status)
	}
}

// Callback-map isolation: two requests handled by the same Handler each get
// their own heap, so replacing one request's heap snapshot leaves the other
// request's heap unchanged.
func TestHandleRequestsDoNotShareHeap(t *testing.T) {
	var seen []Heap
	h, err := Build(CallbackMap{
		ResourceExists: ResourceExistsFunc(func(_ *Request, heap Heap, _ Response) CallbackResult[bool] {
			seen = append(seen, heap)
			return CallbackResult[bool]{Result: true}
		}),
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	h.Handle(newReq(httpmethod.GET, nil))
	h.Handle(newReq(httpmethod.GET, nil))
	if len(seen) != 2 {
		t.Fatalf("resource-exists? invoked %d times, want 2", len(seen))
	}
	seen[0] = seen[0].With("poisoned", true)
	if _, ok := seen[1].Get("poisoned"); ok {
		t.Fatal("mutating one request's heap snapshot leaked into another's")
	}
}
