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

// Package editor implements the core text editing functions of edm.
// An Editor owns one buffer of lines and the current line. Commands are
// applied whole or not at all: addresses are resolved against the buffer
// before anything changes. Insert, append and change without inline text
// put the editor in text-entry mode until the sentinel line arrives.
package editor
