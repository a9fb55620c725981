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

// koonIdenticalStep evaluates an identical K-out-of-N block from one shared
// reliability series.
//
// Success form (computeUnreliability false), with u = 1-r and ru = r*u:
//
//	O = sum_i nCi[i] * r^numWork * u^numFail,  numWork = k+i, numFail = n-k-i
//
// Failure form (computeUnreliability true): the facade has already replaced
// k by n-k+1, so the sum runs over the working-set sizes below the original
// k and O = 1 - sum.
//
// Each term is built from ru^min(numWork,numFail) and the leftover factor by
// repeated multiplication; there is no pow anywhere.
func koonIdenticalStep(be lane.Backend, m lane.Mask, p *evalParams, t int) {
	one := be.Splat(1)
	r := be.MaskLoad(m, p.rel[t:])
	u := be.Sub(one, r)
	ru := be.Mul(r, u)

	n, k := p.numComponents, p.minComponents

	acc := be.Splat(0)
	for i := 0; i <= n-k; i++ {
		numWork, numFail := k+i, n-k-i
		if p.computeUnreliability {
			numWork, numFail = n-k-i, k+i
		}
		term := identicalTerm(be, ru, r, u, numWork, numFail)
		acc = be.FMA(acc, be.Splat(p.nCi[i]), term)
	}
	if p.computeUnreliability {
		acc = be.Sub(one, acc)
	}
	be.MaskStore(m, be.Cap(acc), p.out[t:])
}

// identicalTerm computes r^numWork * u^numFail as ru^e times the remaining
// r or u factors, e = min(numWork, numFail), via repeated mul.
func identicalTerm(be lane.Backend, ru, r, u lane.Vec, numWork, numFail int) lane.Vec {
	e := min(numWork, numFail)
	term := be.Splat(1)
	for j := 0; j < e; j++ {
		term = be.Mul(term, ru)
	}
	for j := e; j < numWork; j++ {
		term = be.Mul(term, r)
	}
	for j := e; j < numFail; j++ {
		term = be.Mul(term, u)
	}
	return term
}

// koonEnumStep evaluates a generic K-out-of-N block from a pre-enumerated
// combination table.
//
// Success side: for every enumerated working set S, accumulate
// prod_{c in S} R[c] * prod_{c not in S} (1 - R[c]). Failure side: start
// from 1 and subtract each enumerated working-set probability. In-set
// factors use mul; out-of-set factors use fms, step - step*R == step*(1-R).
func koonEnumStep(be lane.Backend, m lane.Mask, p *evalParams, t int) {
	one := be.Splat(1)
	success := p.combs.Side == comb.Success

	acc := be.Splat(0)
	if !success {
		acc = one
	}
	for _, g := range p.combs.Groups {
		for _, tuple := range g.Tuples {
			step := one
			next := 0
			for c := 0; c < p.numComponents; c++ {
				rc := p.loadComp(be, m, c, t)
				if next < len(tuple) && tuple[next] == c {
					step = be.Mul(step, rc)
					next++
				} else {
					step = be.FMS(step, step, rc)
				}
			}
			if success {
				acc = be.Add(acc, step)
			} else {
				acc = be.Sub(acc, step)
			}
		}
	}
	be.MaskStore(m, be.Cap(acc), p.out[t:])
}
