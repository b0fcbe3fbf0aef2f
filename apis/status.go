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

// Package apis holds the small, transport-agnostic view types other
// packages target instead of a concrete engine.Response, so logging and
// dual HTTP/gRPC embedders have a stable shape to work with.
package apis

import "google.golang.org/grpc/codes"

// Status pairs an HTTP status code with its gRPC equivalent, as resolved by
// grpcx.Bridge from a terminal engine state.
type Status struct {
	HTTP int
	GRPC codes.Code
}
