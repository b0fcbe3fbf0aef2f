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

// Package negotiate implements the engine's content-type matcher: deciding
// whether a single offered media type is acceptable against an Accept
// header, and selecting one acceptable offer out of a set.
//
// # Matching rules
//
// An Accept header is a comma-separated list of media ranges, each
// optionally followed by parameters (";q=0.5" and friends, which are
// discarded — q-value-weighted negotiation is out of scope). An offer is
// acceptable if any range in the header matches it exactly, is "*/*", or is
// "type/*" for the offer's own top-level type.
//
// # Selection
//
// When more than one offered media type is acceptable, which one wins is
// unspecified beyond "some acceptable offer is chosen" — Select resolves
// ties in Go's map-iteration order, which is randomized per process. Do not
// write a test that depends on which acceptable offer is selected when more
// than one qualifies.
package negotiate

import (
	"strings"

	"clothesline.dev/engine/negotiate/internal/segmenttrie"
)

// Matches reports whether offer (e.g. "application/json") is acceptable
// against accept, the raw value of an Accept header.
func Matches(offer, accept string) bool {
	if accept == "" {
		return false
	}
	t := rangeTrie(accept)
	_, ok := t.Match(offer)
	return ok
}

// Select picks one acceptable media type out of offered (the result of a
// content-types-provided callback) against accept, the raw Accept header
// value. It returns the chosen media type, ok=true on success, or ok=false
// if accept rejects every offer.
func Select[P any](offered map[string]P, accept string) (mediaType string, provider P, ok bool) {
	if accept == "" || len(offered) == 0 {
		return "", provider, false
	}
	t := rangeTrie(accept)
	for mt, p := range offered {
		if _, matched := t.Match(mt); matched {
			return mt, p, true
		}
	}
	return "", provider, false
}

// rangeTrie indexes every media range in accept (parameters stripped) into
// a trie keyed on '/' with the top-level wildcard "*/*" permitted, so a
// single pass over the offer set resolves each candidate with a
// longest-prefix-match lookup instead of a re-scan of the header per offer.
func rangeTrie(accept string) *segmenttrie.Trie[struct{}] {
	t := segmenttrie.New[struct{}]('/', true)
	for _, entry := range strings.Split(accept, ",") {
		r := strings.TrimSpace(entry)
		if i := strings.IndexByte(r, ';'); i >= 0 {
			r = strings.TrimSpace(r[:i])
		}
		if r == "" {
			continue
		}
		// Insert errors (malformed ranges) are ignored: an unparsable range
		// simply never matches anything, which is the correct behavior for
		// a client that sent garbage in its Accept header.
		_ = t.Insert(r, struct{}{})
	}
	return t
}
