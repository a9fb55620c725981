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

import "math"

// This file provides the portable implementations of all lane operations.
// Every operation is lane-wise; there are no lane-crossing reductions.

// Load creates a vector from the first Lanes() values of src.
// src must hold at least Lanes() values; use MaskLoad near buffer ends.
func (b Backend) Load(src []float64) Vec {
	data := make([]float64, b.lanes)
	copy(data, src[:b.lanes])
	return Vec{data: data}
}

// MaskLoad creates a vector reading only the active lanes of src.
// Inactive lanes are zero. Only active lanes touch memory, so src may be
// shorter than Lanes() as long as it covers every active lane.
func (b Backend) MaskLoad(m Mask, src []float64) Vec {
	data := make([]float64, b.lanes)
	for i := 0; i < b.lanes; i++ {
		if m.bits[i] {
			data[i] = src[i]
		}
	}
	return Vec{data: data}
}

// Store writes all lanes of v to dst.
func (b Backend) Store(v Vec, dst []float64) {
	copy(dst[:b.lanes], v.data)
}

// MaskStore writes only the active lanes of v to dst. Inactive lanes of dst
// are left untouched and their memory is never written.
func (b Backend) MaskStore(m Mask, v Vec, dst []float64) {
	for i := 0; i < b.lanes; i++ {
		if m.bits[i] {
			dst[i] = v.data[i]
		}
	}
}

// Splat broadcasts c to all lanes.
func (b Backend) Splat(c float64) Vec {
	data := make([]float64, b.lanes)
	for i := range data {
		data[i] = c
	}
	return Vec{data: data}
}

// Add performs lane-wise addition.
func (b Backend) Add(x, y Vec) Vec {
	data := make([]float64, b.lanes)
	for i := range data {
		data[i] = x.data[i] + y.data[i]
	}
	return Vec{data: data}
}

// Sub performs lane-wise subtraction x - y.
func (b Backend) Sub(x, y Vec) Vec {
	data := make([]float64, b.lanes)
	for i := range data {
		data[i] = x.data[i] - y.data[i]
	}
	return Vec{data: data}
}

// Mul performs lane-wise multiplication.
func (b Backend) Mul(x, y Vec) Vec {
	data := make([]float64, b.lanes)
	for i := range data {
		data[i] = x.data[i] * y.data[i]
	}
	return Vec{data: data}
}

// FMA computes a + x*y per lane with a single rounding.
func (b Backend) FMA(a, x, y Vec) Vec {
	data := make([]float64, b.lanes)
	for i := range data {
		data[i] = math.FMA(x.data[i], y.data[i], a.data[i])
	}
	return Vec{data: data}
}

// FMS computes a - x*y per lane with a single rounding.
func (b Backend) FMS(a, x, y Vec) Vec {
	data := make([]float64, b.lanes)
	for i := range data {
		data[i] = math.FMA(-x.data[i], y.data[i], a.data[i])
	}
	return Vec{data: data}
}

// Min performs lane-wise IEEE min-number: when one operand is NaN the other
// operand is returned.
func (b Backend) Min(x, y Vec) Vec {
	data := make([]float64, b.lanes)
	for i := range data {
		data[i] = minNum(x.data[i], y.data[i])
	}
	return Vec{data: data}
}

// Max performs lane-wise IEEE max-number: when one operand is NaN the other
// operand is returned.
func (b Backend) Max(x, y Vec) Vec {
	data := make([]float64, b.lanes)
	for i := range data {
		data[i] = maxNum(x.data[i], y.data[i])
	}
	return Vec{data: data}
}

// Cap clamps every lane into [0, 1] as min(1, max(0, v)) with min-number /
// max-number semantics. The ordering is contractual: max(0, NaN) yields 0,
// so a NaN lane caps to 0.
func (b Backend) Cap(v Vec) Vec {
	data := make([]float64, b.lanes)
	for i := range data {
		data[i] = minNum(1, maxNum(0, v.data[i]))
	}
	return Vec{data: data}
}

// CapValue clamps a single double into [0, 1] with the same NaN policy as
// Cap. It is the scalar form used by loop tails.
func CapValue(v float64) float64 {
	return minNum(1, maxNum(0, v))
}

// minNum implements IEEE-754 minNum: a NaN operand yields the other operand.
// math.Min propagates NaN instead, so it cannot be used here.
func minNum(a, b float64) float64 {
	if math.IsNaN(a) {
		return b
	}
	if math.IsNaN(b) {
		return a
	}
	return math.Min(a, b)
}

// maxNum implements IEEE-754 maxNum: a NaN operand yields the other operand.
func maxNum(a, b float64) float64 {
	if math.IsNaN(a) {
		return b
	}
	if math.IsNaN(b) {
		return a
	}
	return math.Max(a, b)
}
