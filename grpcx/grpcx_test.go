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

package grpcx

import (
	"testing"

	"clothesline.dev/engine/state"
	"google.golang.org/grpc/codes"
)

func TestStatusKnownCodes(t *testing.T) {
	var b Bridge
	cases := map[int]codes.Code{
		200: codes.OK,
		404: codes.NotFound,
		503: codes.Unavailable,
	}
	for http, want := range cases {
		if got := b.Status(http); got != want {
			t.Errorf("Status(%d) = %v, want %v", http, got, want)
		}
	}
}

func TestStatusCoversAllTerminals(t *testing.T) {
	var b Bridge
	for _, status := range state.TerminalStatuses() {
		if got := b.Status(status); got == codes.Unknown {
			t.Errorf("Status(%d) = Unknown, want a mapped code", status)
		}
	}
}

func TestStatusUnknown(t *testing.T) {
	var b Bridge
	if got := b.Status(999); got != codes.Unknown {
		t.Errorf("Status(999) = %v, want Unknown", got)
	}
}
