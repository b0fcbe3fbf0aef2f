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

// Package grpcx bridges the engine's HTTP terminal statuses to gRPC status
// codes, for embedders that front both an HTTP and a gRPC/grpc-gateway
// facade from the same resource logic and want one consistent status story
// across both.
package grpcx

import "google.golang.org/grpc/codes"

// Bridge translates HTTP statuses to gRPC codes using the engine's fixed
// table. It carries no state and is safe for concurrent use; its methods
// could be package functions, but it is a type so it satisfies the same
// shape as other small engine-adjacent adapters (apis.Status, adapter.ToView).
type Bridge struct{}

// httpToGRPC maps every terminal status this engine's graph can reach to
// its closest gRPC equivalent, mirroring the mapper package's
// defaultHTTP/defaultGRPC pairing but inverted: keyed by HTTP status, since
// that is the only status the engine itself ever produces.
var httpToGRPC = map[int]codes.Code{
	200: codes.OK,
	201: codes.OK,
	202: codes.OK,
	204: codes.OK,
	300: codes.FailedPrecondition,
	301: codes.FailedPrecondition,
	303: codes.FailedPrecondition,
	304: codes.OK,
	307: codes.FailedPrecondition,
	400: codes.InvalidArgument,
	401: codes.Unauthenticated,
	403: codes.PermissionDenied,
	404: codes.NotFound,
	405: codes.Unimplemented,
	406: codes.InvalidArgument,
	409: codes.Aborted,
	410: codes.NotFound,
	412: codes.FailedPrecondition,
	413: codes.ResourceExhausted,
	414: codes.InvalidArgument,
	415: codes.InvalidArgument,
	500: codes.Internal,
	501: codes.Unimplemented,
	503: codes.Unavailable,
}

// Status returns the gRPC code for an HTTP status the engine produced.
// Statuses outside the engine's closed terminal set (a caller's bug, not the
// engine's) fall back to codes.Unknown.
func (Bridge) Status(httpStatus int) codes.Code {
	if c, ok := httpToGRPC[httpStatus]; ok {
		return c
	}
	return codes.Unknown
}
