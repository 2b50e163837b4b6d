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

package types

import "errors"

// Error kinds reported by the parsers and the editor. Call sites wrap them
// with detail; test for them with errors.Is.
var (
	ErrInvalidRange      = errors.New("invalid range")
	ErrUnknownCommand    = errors.New("unknown command")
	ErrTooManyArguments  = errors.New("too many arguments")
	ErrAddressOutOfRange = errors.New("address out of range")
	ErrWriteFailed       = errors.New("write failed")
	ErrNoFilename        = errors.New("no filename given")
)
