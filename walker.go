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

// transitionFunc computes the boolean outcome of one non-terminal state,
// given the request and the heap/response snapshot at that point in the
// walk, and returns the (possibly updated) heap/response alongside it.
type transitionFunc func(w *walker, req *Request, heap Heap, resp Response) (bool, Heap, Response)

// walker holds what a single request's walk needs beyond the graph itself:
// the resolved callback set. It carries no per-walk mutable state — heap
// and response are threaded explicitly through every transition call — so
// a walker is reusable across the steps of one walk but never across
// requests.
type walker struct {
	callbacks resolved
}

// transitions maps every non-terminal state name to the function that
// computes its outcome. Built once; never mutated.
var transitions = map[string]transitionFunc{
	"b13": (*walker).b13,
	"b12": (*walker).b12,
	"b11": (*walker).b11,
	"b10": (*walker).b10,
	"b9":  (*walker).b9,
	"b8":  (*walker).b8,
	"b7":  (*walker).b7,
	"b6":  (*walker).b6,
	"b5":  (*walker).b5,
	"b4":  (*walker).b4,
	"b3":  (*walker).b3,

	"c3": (*walker).c3,
	"c4": (*walker).c4,

	"d4": (*walker).d4,
	"d5": (*walker).d5,
	"e5": (*walker).e5,
	"e6": (*walker).e6,
	"f6": (*walker).f6,
	"f7": (*walker).f7,

	"g7":  (*walker).g7,
	"g8":  (*walker).g8,
	"g9":  (*walker).g9,
	"g11": (*walker).g11,

	"h7":  (*walker).h7,
	"h10": (*walker).h10,
	"h11": (*walker).h11,
	"h12": (*walker).h12,

	"i4":  (*walker).i4,
	"i7":  (*walker).i7,
	"i12": (*walker).i12,
	"i13": (*walker).i13,

	"j18": (*walker).j18,

	"k5":  (*walker).k5,
	"k7":  (*walker).k7,
	"k13": (*walker).k13,

	"l5":  (*walker).l5,
	"l7":  (*walker).l7,
	"l13": (*walker).l13,
	"l14": (*walker).l14,
	"l15": (*walker).l15,
	"l17": (*walker).l17,

	"m5":  (*walker).m5,
	"m7":  (*walker).m7,
	"m16": (*walker).m16,
	"m20": (*walker).m20,

	"n5":  (*walker).n5,
	"n11": (*walker).n11,
	"n16": (*walker).n16,

	"o14": (*walker).o14,
	"o16": (*walker).o16,
	"o18": (*walker).o18,
	"o20": (*walker).o20,

	"p3":  (*walker).p3,
	"p11": (*walker).p11,
}
