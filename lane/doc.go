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

// Package lane provides the double-precision lane-vector primitives the RBD
// evaluation engine is written against.
//
// A Backend fixes the lane count L and the predication model:
//
//   - Scalar: L=1, no predication. Used for loop tails and as the portable
//     fallback.
//   - Fixed2: L=2, models a 128-bit two-double vector (SSE2, NEON).
//   - Wide: variable L with per-lane active masks, models predicated
//     wide-vector hardware (AVX-512 masks, SVE predicates).
//
// All backends are implemented in portable Go over float64 slices; the
// backend determines partitioning and masking, never the arithmetic, so any
// two backends produce identical results for the same inputs up to the
// rounding of fused operations (math.FMA is a single rounding on every
// backend).
//
// Basic usage:
//
//	be := lane.Preferred()
//	m := be.FullMask()
//	v := be.MaskLoad(m, data)
//	v = be.Cap(be.Mul(v, v))
//	be.MaskStore(m, v, out)
package lane
