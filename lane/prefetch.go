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

// Prefetch hints are advisory: issuing or skipping them never affects
// results. Go exposes no portable prefetch intrinsic, so these compile to
// nothing; the call sites remain to mark the access pattern of the batched
// loops and to keep a hook for asm-backed builds.

// PrefetchRead hints that rows consecutive rows of base, each rowStride
// doubles apart, will be read soon starting at offset.
func PrefetchRead(base []float64, rows, rowStride, offset int) {
}

// PrefetchWrite hints that base[offset:] will be written soon.
func PrefetchWrite(base []float64, offset int) {
}
