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

// Stub transitions have a fixed polarity: the engine never consults a
// callback or the request to compute them. They exist in the graph purely
// as named waypoints other transitions branch through.

// True-stubs: always true.

func (w *walker) b8(req *Request, heap Heap, resp Response) (bool, Heap, Response)  { return true, heap, resp }
func (w *walker) b13(req *Request, heap Heap, resp Response) (bool, Heap, Response) { return true, heap, resp }
func (w *walker) m7(req *Request, heap Heap, resp Response) (bool, Heap, Response)  { return true, heap, resp }
func (w *walker) m20(req *Request, heap Heap, resp Response) (bool, Heap, Response) { return true, heap, resp }
func (w *walker) n5(req *Request, heap Heap, resp Response) (bool, Heap, Response)  { return true, heap, resp }

// False-stubs: always false.

func (w *walker) b3(req *Request, heap Heap, resp Response) (bool, Heap, Response)  { return false, heap, resp }
func (w *walker) b4(req *Request, heap Heap, resp Response) (bool, Heap, Response)  { return false, heap, resp }
func (w *walker) b5(req *Request, heap Heap, resp Response) (bool, Heap, Response)  { return false, heap, resp }
func (w *walker) b6(req *Request, heap Heap, resp Response) (bool, Heap, Response)  { return false, heap, resp }
func (w *walker) b7(req *Request, heap Heap, resp Response) (bool, Heap, Response)  { return false, heap, resp }
func (w *walker) b11(req *Request, heap Heap, resp Response) (bool, Heap, Response) { return false, heap, resp }
func (w *walker) d4(req *Request, heap Heap, resp Response) (bool, Heap, Response)  { return false, heap, resp }
func (w *walker) e5(req *Request, heap Heap, resp Response) (bool, Heap, Response)  { return false, heap, resp }
func (w *walker) f6(req *Request, heap Heap, resp Response) (bool, Heap, Response)  { return false, heap, resp }
func (w *walker) g8(req *Request, heap Heap, resp Response) (bool, Heap, Response)  { return false, heap, resp }
func (w *walker) h10(req *Request, heap Heap, resp Response) (bool, Heap, Response) { return false, heap, resp }
func (w *walker) i12(req *Request, heap Heap, resp Response) (bool, Heap, Response) { return false, heap, resp }
func (w *walker) k5(req *Request, heap Heap, resp Response) (bool, Heap, Response)  { return false, heap, resp }
func (w *walker) k7(req *Request, heap Heap, resp Response) (bool, Heap, Response)  { return false, heap, resp }
func (w *walker) l5(req *Request, heap Heap, resp Response) (bool, Heap, Response)  { return false, heap, resp }
func (w *walker) l13(req *Request, heap Heap, resp Response) (bool, Heap, Response) { return false, heap, resp }
func (w *walker) n11(req *Request, heap Heap, resp Response) (bool, Heap, Response) { return false, heap, resp }
func (w *walker) o14(req *Request, heap Heap, resp Response) (bool, Heap, Response) { return false, heap, resp }
func (w *walker) o18(req *Request, heap Heap, resp Response) (bool, Heap, Response) { return false, heap, resp }
func (w *walker) p3(req *Request, heap Heap, resp Response) (bool, Heap, Response)  { return false, heap, resp }
