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

import "clothesline.dev/engine/graph"

// defaultMaxSteps bounds a single walk's transitions, well above the 54
// non-terminal states in the default graph. A well-formed graph (the only
// kind Build accepts — graph.New validates totality) always terminates well
// within this; it exists purely as a defensive backstop against a custom
// graph.Option that introduces a cycle.
const defaultMaxSteps = 128

type config struct {
	graph     *graph.Graph
	maxSteps  int
	graphOpts []graph.Option
}

// Option configures a Handler at build time.
type Option func(*config)

// WithGraph overrides the default state graph entirely. Most callers should
// prefer WithGraphOption, which applies targeted overrides to the library
// default rather than replacing it outright.
func WithGraph(g *graph.Graph) Option {
	return func(c *config) { c.graph = g }
}

// WithGraphOption applies a graph.Option (e.g. graph.WithOverride) to the
// library default graph when Build constructs it. Ignored if WithGraph is
// also supplied.
func WithGraphOption(opt graph.Option) Option {
	return func(c *config) { c.graphOpts = append(c.graphOpts, opt) }
}

// WithMaxSteps overrides the walk's step bound. The default is generous
// enough for the library's own graph; lowering it can make a runaway custom
// graph fail fast in tests instead of looping until it hits the built-in
// ceiling.
func WithMaxSteps(n int) Option {
	return func(c *config) { c.maxSteps = n }
}
