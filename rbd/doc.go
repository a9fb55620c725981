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

// Package rbd evaluates Reliability Block Diagram structures: given
// per-component reliability time series, it computes the reliability time
// series of a composed block over a shared time axis.
//
// Four canonical topologies are supported, each in a generic form (every
// component has its own series) and an identical form (one shared series):
//
//   - Series: all components must work; reliability is the product.
//   - Parallel: any component suffices; 1 minus the product of
//     unreliabilities.
//   - Bridge: the five-component crossover topology.
//   - K-out-of-N: at least k of n components must work.
//
// Inputs are row-major flat []float64 matrices of shape
// (numComponents, numTimes) in generic mode and length numTimes in identical
// mode; every value must already lie in [0, 1]. Outputs are capped into
// [0, 1] slot by slot; a NaN produced by degenerate inputs caps to 0.
//
// The time axis is split across numCores workers in interleaved lane-sized
// batches; each worker walks its batch with the selected lane backend.
// Predicated backends cover a partial final block with a lane mask; other
// backends finish sub-vector tails with the scalar backend. Either way the
// path that computes a slot does not depend on the worker count, so results
// are identical for any worker count.
//
//	out := make([]float64, numTimes)
//	err := rbd.KooNGeneric(rel, 5, 3, numTimes, runtime.GOMAXPROCS(0), out)
package rbd
