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

import (
	"strings"

	"clothesline.dev/engine/state"
)

// Explain renders the sequence of states a walk visited as a human-readable
// trace, e.g. "b13 -> b12 -> b11 -> b10 -> b9 -> 400". It is intended for
// logging and test failure messages, not for stable machine parsing.
func Explain(path []state.State) string {
	names := make([]string, len(path))
	for i, s := range path {
		names[i] = s.Name()
	}
	return strings.Join(names, " -> ")
}
