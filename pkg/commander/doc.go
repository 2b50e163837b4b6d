//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package commander reads command lines and text for edm and passes them
// to the editor. In command mode a line is parsed into a command and applied;
// in text-entry mode it is handed to the editor verbatim. Errors are reported
// to the user and never end the session.
// Scripts written in Lisp drive the same path through the ed primitive.
package commander
