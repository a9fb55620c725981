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

import (
	"github.com/ajroetker/go-rbd/comb"
	"github.com/ajroetker/go-rbd/lane"
)

// maxKooNComponents is the largest component count the K-out-of-N engine
// accepts; it also sizes the recursion scratch.
const maxKooNComponents = comb.MaxComponents

// evalParams is the per-worker parameter block. All fields except batchIdx
// and recur are shared across the workers of one evaluation; rel, nCi and
// combs are read-only during evaluation and each worker writes only the
// output slots of its own batch.
type evalParams struct {
	// rel is the component reliability matrix: row-major
	// (numComponents, numTimes) in generic mode, length numTimes in
	// identical mode.
	rel []float64

	// out is the block reliability series, length numTimes.
	out []float64

	numTimes      int
	numComponents int

	// minComponents is k for K-out-of-N blocks, possibly already
	// transformed to the failure side (see koonIdenticalStep).
	minComponents int

	numCores int
	batchIdx int

	// computeUnreliability selects the failure-side series for identical
	// K-out-of-N blocks.
	computeUnreliability bool

	// nCi holds the binomial multipliers for identical K-out-of-N,
	// nCi[i] = C(n, minComponents+i).
	nCi []float64

	// combs holds the enumerated combinations for the generic
	// combinatorial K-out-of-N backend.
	combs *comb.Table

	// recur is the scratch for the generic recursive K-out-of-N backend,
	// owned by one worker.
	recur *recurScratch
}

// loadComp loads component c's reliabilities for the lane block at time t.
func (p *evalParams) loadComp(be lane.Backend, m lane.Mask, c, t int) lane.Vec {
	return be.MaskLoad(m, p.rel[c*p.numTimes+t:])
}

// stepFunc computes one lane block of output at time slot t: it reads the
// component reliabilities for lanes [t, t+L), applies a topology formula,
// caps once and stores through the mask. Steps are backend-generic; the
// worker passes the scalar backend for loop tails.
type stepFunc func(be lane.Backend, m lane.Mask, p *evalParams, t int)

// recurScratch is the per-worker scratch of the recursive K-out-of-N
// backend: an in-place combination index array and a pivot reliability
// cache holding one lane vector per component slot, addressed at
// componentIndex*lanes doubles.
type recurScratch struct {
	comb   [maxKooNComponents]int
	pivots []float64
	lanes  int
}

func newRecurScratch(lanes int) *recurScratch {
	return &recurScratch{
		pivots: make([]float64, maxKooNComponents*lanes),
		lanes:  lanes,
	}
}

// pivotSlot returns the cache slot for component c.
func (s *recurScratch) pivotSlot(c int) []float64 {
	return s.pivots[c*s.lanes:]
}
