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

//go:build amd64

package lane

import "golang.org/x/sys/cpu"

func init() {
	switch {
	case cpu.X86.HasAVX512F:
		// 512-bit registers with lane masks: eight doubles, predicated.
		detected = Wide(8)
	case cpu.X86.HasAVX2:
		// 256-bit registers; AVX-512-style masking is absent but the Go
		// realisation predicates in software, so the wide model still applies.
		detected = Wide(4)
	default:
		// SSE2 is the amd64 baseline: two doubles per vector.
		detected = Fixed2()
	}
}
