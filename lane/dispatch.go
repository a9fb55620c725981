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

package lane

import (
	"os"
	"strconv"
)

// detected is the best backend for this CPU, set by init() in the
// dispatch_*.go files.
var detected Backend

// Preferred returns the best backend available at runtime, preferring
// wide-predicated over fixed two-lane over scalar.
//
// Overrides, checked in order:
//   - RBD_NO_SIMD forces the scalar backend (see NoSimdEnv).
//   - RBD_FORCE_BACKEND=scalar|fixed2|wide pins a specific model; a pinned
//     model never exceeds the detected capability.
func Preferred() Backend {
	if NoSimdEnv() {
		return Scalar()
	}
	switch os.Getenv("RBD_FORCE_BACKEND") {
	case "scalar":
		return Scalar()
	case "fixed2":
		if detected.level >= LevelFixed2 {
			return Fixed2()
		}
		return Scalar()
	case "wide":
		if detected.level == LevelWide {
			return detected
		}
	}
	return detected
}

// Detected returns the backend chosen by CPU feature detection, ignoring
// environment overrides.
func Detected() Backend {
	return detected
}

// Supports reports whether the detected capability covers backend b. A wider
// wide backend than detected, or a higher level, is unsupported.
func Supports(b Backend) bool {
	if b.level > detected.level {
		return false
	}
	if b.level == LevelWide && b.lanes > detected.lanes {
		return false
	}
	return true
}

// NoSimdEnv checks the RBD_NO_SIMD environment variable. When it is set to a
// true boolean or to any value that does not parse as a boolean, the scalar
// backend is preferred regardless of CPU capabilities; empty or false values
// (such as "0" or "false") leave detection in effect. Useful for testing and
// debugging.
func NoSimdEnv() bool {
	val := os.Getenv("RBD_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
