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

// Descriptor is the fuller, non-serialized counterpart to ResponseView: the
// whole resolved status pair plus the path the walk took through the state
// graph, for diagnostics (logging, admin endpoints) rather than the wire.
type Descriptor struct {
	Status Status
	Path   string
	Details []Detail
}
