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

// Option configures a Graph at build time. All options are applied to an
// internal builder and then validated and frozen into an immutable Graph.
type Option func(*builder)

// WithOverride replaces both successors of state s: onFalse for a false
// outcome and onTrue for a true one. It applies to any state, stubbed or
// not. This does not change a stub's polarity — the engine's stubbed
// transition functions still always return the polarity documented for
// them — so for a stub only the successor on that polarity's side affects
// a walk. The shipped default graph never calls this itself; it
// exists for embedders experimenting with fuller Webmachine semantics one
// node at a time.
func WithOverride(s state.State, onFalse, onTrue state.State) Option {
	return func(b *builder) {
		b.edges[s.Name()] = edge{onFalse: onFalse, onTrue: onTrue}
	}
}
