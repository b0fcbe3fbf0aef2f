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

import "clothesline.dev/engine/httpmethod"

// DefaultAllowedMethods is used whenever a CallbackMap omits
// "allowed-methods": GET and HEAD only.
func DefaultAllowedMethods(_ *Request, _ Heap, _ Response) CallbackResult[httpmethod.Set] {
	return CallbackResult[httpmethod.Set]{Result: httpmethod.DefaultAllowed()}
}

// DefaultResourceExists is used whenever a CallbackMap omits
// "resource-exists?": every resource exists.
func DefaultResourceExists(_ *Request, _ Heap, _ Response) CallbackResult[bool] {
	return CallbackResult[bool]{Result: true}
}

// DefaultMalformedRequest is used whenever a CallbackMap omits
// "malformed-request?": no request is malformed.
func DefaultMalformedRequest(_ *Request, _ Heap, _ Response) CallbackResult[bool] {
	return CallbackResult[bool]{Result: false}
}

// DefaultContentTypesProvided is used whenever a CallbackMap omits
// "content-types-provided": no media types are offered, so negotiation (c4)
// always fails when an Accept header is present.
func DefaultContentTypesProvided(_ *Request, _ Heap, _ Response) CallbackResult[map[string]Provider] {
	return CallbackResult[map[string]Provider]{Result: map[string]Provider{}}
}
