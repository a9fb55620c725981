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

//go:build arm64

package lane

import "golang.org/x/sys/cpu"

func init() {
	if cpu.ARM64.HasSVE {
		// SVE vector length is not queryable from portable Go; model the
		// common 256-bit implementation (four doubles) with predication.
		detected = Wide(4)
		return
	}
	// NEON (ASIMD) is part of the ARMv8-A base: 128-bit, two doubles.
	detected = Fixed2()
}
