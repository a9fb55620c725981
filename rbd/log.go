// Copyright 2026 go-rbd Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rbd

import "github.com/rs/zerolog"

// logger is a no-op by default; the numeric core never logs, only the
// dispatch facade emits Debug-level records.
var logger = zerolog.Nop()

// SetLogger installs a logger for the dispatch facade. Pass zerolog.Nop()
// to silence it again.
func SetLogger(l zerolog.Logger) {
	logger = l
}
