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

// Package adapter converts a finished engine.Response into the
// transport-agnostic view/descriptor types an embedder logs around a
// handler call, without exposing engine.Response itself to a logging or
// tracing layer.
package adapter

import (
	"clothesline.dev/engine"
	"clothesline.dev/engine/apis"
)

// ToView converts resp and its resolved status into a small, JSON-friendly
// ResponseView. path, if non-empty, is normally the result of a
// graph.Explain call the caller made while walking the request; the
// converter itself never inspects how the walk got here.
func ToView(resp engine.Response, st apis.Status, path string, details ...apis.Detail) apis.ResponseView {
	return apis.ResponseView{
		Status:      st.HTTP,
		ContentType: resp.Headers.Get("Content-Type"),
		Path:        path,
		Details:     details,
	}
}

// ToDescriptor converts resp and its resolved status into the fuller,
// non-serialized Descriptor, for admin/diagnostic surfaces rather than the
// wire.
func ToDescriptor(resp engine.Response, st apis.Status, path string, details ...apis.Detail) apis.Descriptor {
	return apis.Descriptor{
		Status:  st,
		Path:    path,
		Details: details,
	}
}
