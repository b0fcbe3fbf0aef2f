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

// ResponseView is a small, JSON-friendly rendering of a finished engine
// response, suitable for structured logging around a handler without
// retaining the handler's internal types.
type ResponseView struct {
	Status      int      `json:"status"`
	ContentType string   `json:"content_type,omitempty"`
	Path        string   `json:"path,omitempty"`
	Details     []Detail `json:"details,omitempty"`
}
