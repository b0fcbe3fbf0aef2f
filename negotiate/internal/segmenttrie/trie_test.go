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

package segmenttrie

import "testing"

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestInsertAndMatchSimple(t *testing.T) {
	tr := New[int]('/', false)
	must(t, tr.Insert("application/json", 200))
	must(t, tr.Insert("application/xml", 201))

	if v, ok, p := tr.MatchWithPattern("application/json"); !ok || v != 200 || p != "application/json" {
		t.Fatalf("match application/json => ok=%v v=%v p=%q; want ok=true v=200 p=application/json", ok, v, p)
	}
}

func TestWildcardOneSegment(t *testing.T) {
	tr := New[int]('/', false)
	must(t, tr.Insert("application/*", 498))
	must(t, tr.Insert("application/json", 401))

	if v, ok, p := tr.MatchWithPattern("application/json"); !ok || v != 401 || p != "application/json" {
		t.Fatalf("exact must win over wildcard, got ok=%v v=%v p=%q", ok, v, p)
	}
	if v, ok, p := tr.MatchWithPattern("application/xml"); !ok || v != 498 || p != "application/*" {
		t.Fatalf("wildcard match failed: ok=%v v=%v p=%q", ok, v, p)
	}
}

func TestAllWildcardRejectedByDefault(t *testing.T) {
	tr := New[int]('/', false)
	if err := tr.Insert("*/*", 1); err == nil {
		t.Fatal("expected all-wildcard prefix to be rejected")
	}
}

func TestAllWildcardAllowedWhenEnabled(t *testing.T) {
	tr := New[int]('/', true)
	must(t, tr.Insert("*/*", 1))
	if v, ok, _ := tr.MatchWithPattern("application/json"); !ok || v != 1 {
		t.Fatalf("expected */* to match anything, got ok=%v v=%v", ok, v)
	}
}

func TestRelaxedSegmentCharset(t *testing.T) {
	tr := New[int]('/', false)
	must(t, tr.Insert("application/vnd.api+json", 1))
	if _, ok, _ := tr.MatchWithPattern("application/vnd.api+json"); !ok {
		t.Fatal("expected subtype with '.' and '+' to be indexable")
	}
	must(t, tr.Insert("application/x-protobuf", 2))
	if _, ok, _ := tr.MatchWithPattern("application/x-protobuf"); !ok {
		t.Fatal("expected subtype with '-' to be indexable")
	}
}

func TestInvalidInputs(t *testing.T) {
	tr := New[int]('/', false)
	if err := tr.Insert("", 1); err == nil {
		t.Fatal("empty prefix must be invalid")
	}
	if err := tr.Insert("a//b", 1); err == nil {
		t.Fatal("empty segment must be invalid")
	}
	if err := tr.Insert("a/b c", 1); err == nil {
		t.Fatal("a space in a segment must be invalid")
	}
}

func TestMatchOnNilTrie(t *testing.T) {
	var tr *Trie[int]
	if _, ok := tr.Match("application/json"); ok {
		t.Fatal("a nil trie must never match")
	}
}
