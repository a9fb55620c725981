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

// bridgeComponents is the component count of the five-component bridge
// topology; component 5 is the crossover.
const bridgeComponents = 5

// bridgeGenericStep evaluates the bridge identity
//
//	VAL1 = (R1 + R3 - R1*R3) * (R2 + R4 - R2*R4)
//	VAL2 = R1*R2 + R3*R4 - R1*R2*R3*R4
//	R    = R5*(VAL1 - VAL2) + VAL2
//
// which is the pivotal decomposition about the crossover R5 written with
// only products, sums and one trailing fma.
func bridgeGenericStep(be lane.Backend, m lane.Mask, p *evalParams, t int) {
	r1 := p.loadComp(be, m, 0, t)
	r2 := p.loadComp(be, m, 1, t)
	r3 := p.loadComp(be, m, 2, t)
	r4 := p.loadComp(be, m, 3, t)
	r5 := p.loadComp(be, m, 4, t)

	v13 := be.FMS(be.Add(r1, r3), r1, r3)
	v24 := be.FMS(be.Add(r2, r4), r2, r4)
	val1 := be.Mul(v13, v24)

	p12 := be.Mul(r1, r2)
	p34 := be.Mul(r3, r4)
	val2 := be.FMS(be.Add(p12, p34), p12, p34)

	res := be.FMA(val2, r5, be.Sub(val1, val2))
	be.MaskStore(m, be.Cap(res), p.out[t:])
}

// bridgeIdenticalStep is the generic identity with all five components
// equal. The operation sequence mirrors bridgeGenericStep exactly so the
// two modes produce identical IEEE results.
func bridgeIdenticalStep(be lane.Backend, m lane.Mask, p *evalParams, t int) {
	r := be.MaskLoad(m, p.rel[t:])

	v := be.FMS(be.Add(r, r), r, r) // r + r - r*r
	val1 := be.Mul(v, v)

	rr := be.Mul(r, r)
	val2 := be.FMS(be.Add(rr, rr), rr, rr) // 2r^2 - r^4

	res := be.FMA(val2, r, be.Sub(val1, val2))
	be.MaskStore(m, be.Cap(res), p.out[t:])
}
