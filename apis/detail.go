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

package apis

// Detail describes one validation violation a malformed-request? or
// resource-exists? callback may want to surface alongside a 4xx terminal,
// analogous to a single entry in a JSON:API or gRPC BadRequest detail list.
type Detail struct {
	// Field names the offending input, e.g. "node" for a missing query param.
	Field string
	// Reason is a short, machine-stable token, e.g. "required".
	Reason string
	// Info is a human-readable elaboration, e.g. "node is required".
	Info string
}
