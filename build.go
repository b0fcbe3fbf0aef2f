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
	"fmt"

	"clothesline.dev/engine/graph"
)

// knownCallbackNames is the fixed set of names Build accepts. Construction
// with any other key fails before any request is ever served.
var knownCallbackNames = map[string]bool{
	AllowedMethods:       true,
	ResourceExists:       true,
	MalformedRequest:     true,
	ContentTypesProvided: true,
}

// Build validates callbacks, merges it over the library defaults, and
// returns an immutable Handler. A non-nil error means no Handler was built
// and no request can be served:
//   - a key in callbacks outside the four recognized names,
//   - a value whose type does not match the Func type its name expects,
//   - a graph.Option (via WithGraphOption) that leaves the graph non-total.
func Build(callbacks CallbackMap, opts ...Option) (*Handler, error) {
	r := resolved{
		allowedMethods:       DefaultAllowedMethods,
		resourceExists:       DefaultResourceExists,
		malformedRequest:     DefaultMalformedRequest,
		contentTypesProvided: DefaultContentTypesProvided,
	}

	for name, v := range callbacks {
		if !knownCallbackNames[name] {
			return nil, fmt.Errorf("engine: unrecognized callback name %q", name)
		}
		if err := applyCallback(&r, name, v); err != nil {
			return nil, fmt.Errorf("engine: %w", err)
		}
	}

	cfg := config{maxSteps: defaultMaxSteps}
	for _, opt := range opts {
		opt(&cfg)
	}

	g := cfg.graph
	if g == nil {
		built, err := graph.New(cfg.graphOpts...)
		if err != nil {
			return nil, fmt.Errorf("engine: %w", err)
		}
		g = built
	}

	return &Handler{callbacks: r, graph: g, maxSteps: cfg.maxSteps}, nil
}

// applyCallback type-asserts v into the Func type name expects and stores
// it on r. name is already known to be one of the four recognized names.
func applyCallback(r *resolved, name string, v any) error {
	switch name {
	case AllowedMethods:
		f, ok := v.(AllowedMethodsFunc)
		if !ok {
			return fmt.Errorf("callback %q must be an AllowedMethodsFunc, got %T", name, v)
		}
		r.allowedMethods = f
	case ResourceExists:
		f, ok := v.(ResourceExistsFunc)
		if !ok {
			return fmt.Errorf("callback %q must be a ResourceExistsFunc, got %T", name, v)
		}
		r.resourceExists = f
	case MalformedRequest:
		f, ok := v.(MalformedRequestFunc)
		if !ok {
			return fmt.Errorf("callback %q must be a MalformedRequestFunc, got %T", name, v)
		}
		r.malformedRequest = f
	case ContentTypesProvided:
		f, ok := v.(ContentTypesProvidedFunc)
		if !ok {
			return fmt.Errorf("callback %q must be a ContentTypesProvidedFunc, got %T", name, v)
		}
		r.contentTypesProvided = f
	}
	return nil
}
