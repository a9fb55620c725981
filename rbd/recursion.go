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

import "github.com/ajroetker/go-rbd/lane"

// koonRecurStep evaluates a generic K-out-of-N block by recursive pivotal
// decomposition. The cap is applied exactly once, here at the top-level
// store; intermediate values may exceed [0,1] only within rounding error.
func koonRecurStep(be lane.Backend, m lane.Mask, p *evalParams, t int) {
	v := koonRecurse(be, m, p, t, p.numComponents, p.minComponents)
	be.MaskStore(m, be.Cap(v), p.out[t:])
}

// koonRecurse computes KooN(n, k) over components [0, n) at time slot t.
//
// The single-pivot identity is
//
//	KooN(n,k) = r * KooN(n-1,k-1) + (1-r) * KooN(n-1,k)
//
// with Series (k=n) and Parallel (k=1) as base cases. To bound the tree,
// each level pivots on best = min(k-1, n-k) components at once: condition
// on how many of the pivots work and weight KooN(n-best, k-j) by the
// probability of exactly j pivots working. The all-work and none-work
// weights are plain products; the intermediate counts are accumulated by
// enumerating the C(best,i) combinations of i flipped pivots, each
// combination yielding a product and its mirror.
//
// n strictly decreases by at least one per call, so the recursion bottoms
// out at a Series or Parallel base.
func koonRecurse(be lane.Backend, m lane.Mask, p *evalParams, t, n, k int) lane.Vec {
	if k == n {
		return seriesProduct(be, m, p, t, n)
	}
	if k == 1 {
		return parallelProduct(be, m, p, t, n)
	}

	best := min(k-1, n-k)
	one := be.Splat(1)

	if best <= 1 {
		r := p.loadComp(be, m, n-1, t)
		working := koonRecurse(be, m, p, t, n-1, k-1)
		failing := koonRecurse(be, m, p, t, n-1, k)
		return be.FMA(be.Mul(r, working), be.Sub(one, r), failing)
	}

	base := n - best
	s := p.recur

	// Load this level's pivot rows into the cache once; the combination
	// loops below reread them from there. Slot c of the cache belongs to
	// component c, so levels never collide.
	for j := 0; j < best; j++ {
		be.Store(p.loadComp(be, m, base+j, t), s.pivotSlot(base+j))
	}
	pivot := func(j int) lane.Vec {
		return be.Load(s.pivotSlot(base + j))
	}

	pv0 := pivot(0)
	prodAll := pv0
	prodNone := be.Sub(one, pv0)
	for j := 1; j < best; j++ {
		pv := pivot(j)
		prodAll = be.Mul(prodAll, pv)
		prodNone = be.FMS(prodNone, prodNone, pv)
	}

	acc := be.Mul(prodAll, koonRecurse(be, m, p, t, base, k-best))
	acc = be.FMA(acc, prodNone, koonRecurse(be, m, p, t, base, k))

	for i := 1; i <= best/2; i++ {
		idx := s.comb[:i]
		firstCombination(idx)

		sumLo := be.Splat(0) // exactly i pivots working
		sumHi := be.Splat(0) // mirror: exactly best-i pivots working
		for {
			w := one
			x := one
			next := 0
			for j := 0; j < best; j++ {
				pv := pivot(j)
				if next < i && idx[next] == j {
					w = be.Mul(w, pv)
					x = be.FMS(x, x, pv)
					next++
				} else {
					w = be.FMS(w, w, pv)
					x = be.Mul(x, pv)
				}
			}
			sumLo = be.Add(sumLo, w)
			sumHi = be.Add(sumHi, x)
			if !nextCombination(idx, best) {
				break
			}
		}

		acc = be.FMA(acc, sumLo, koonRecurse(be, m, p, t, base, k-i))
		if 2*i == best {
			// The mirror of a half-sized combination is itself a
			// half-sized combination, so sumLo already covers every
			// midpoint split exactly once.
			continue
		}
		acc = be.FMA(acc, sumHi, koonRecurse(be, m, p, t, base, k-best+i))
	}
	return acc
}

// firstCombination initialises idx to the lexicographically first
// combination {0, 1, ..., len(idx)-1}.
func firstCombination(idx []int) {
	for j := range idx {
		idx[j] = j
	}
}

// nextCombination advances idx to the next combination of len(idx) values
// from [0, n) in lexicographic order, returning false after the last one.
func nextCombination(idx []int, n int) bool {
	r := len(idx)
	i := r - 1
	for i >= 0 && idx[i] == n-r+i {
		i--
	}
	if i < 0 {
		return false
	}
	idx[i]++
	for j := i + 1; j < r; j++ {
		idx[j] = idx[j-1] + 1
	}
	return true
}
