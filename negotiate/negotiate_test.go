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

package negotiate

import "testing"

func TestMatchesExact(t *testing.T) {
	if !Matches("application/json", "application/json") {
		t.Fatal("expected exact match")
	}
	if Matches("application/json", "text/html") {
		t.Fatal("did not expect a match")
	}
}

func TestMatchesAllWildcard(t *testing.T) {
	if !Matches("application/json", "*/*") {
		t.Fatal("expected */* to match anything")
	}
}

func TestMatchesTypeWildcard(t *testing.T) {
	if !Matches("application/json", "application/*") {
		t.Fatal("expected application/* to match application/json")
	}
	if Matches("text/plain", "application/*") {
		t.Fatal("did not expect application/* to match text/plain")
	}
}

func TestMatchesMultipleEntriesAndParams(t *testing.T) {
	accept := "text/html;q=0.9, application/json;q=0.5, */*;q=0.1"
	if !Matches("application/json", accept) {
		t.Fatal("expected a match among multiple entries with q-params")
	}
}

func TestMatchesEmptyAccept(t *testing.T) {
	if Matches("application/json", "") {
		t.Fatal("empty Accept header should never match")
	}
}

func TestSelectPicksAnAcceptableOffer(t *testing.T) {
	offered := map[string]string{
		"application/json": "json-provider",
		"text/html":         "html-provider",
	}
	mt, provider, ok := Select(offered, "application/json")
	if !ok {
		t.Fatal("expected a selection")
	}
	if mt != "application/json" || provider != "json-provider" {
		t.Fatalf("got (%q, %q), want (application/json, json-provider)", mt, provider)
	}
}

func TestSelectNoAcceptableOffer(t *testing.T) {
	offered := map[string]string{"application/json": "json-provider"}
	_, _, ok := Select(offered, "text/html")
	if ok {
		t.Fatal("did not expect a selection")
	}
}

func TestSelectEmptyOfferSet(t *testing.T) {
	_, _, ok := Select(map[string]string{}, "application/json")
	if ok {
		t.Fatal("did not expect a selection from an empty offer set")
	}
}
