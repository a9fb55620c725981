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

// parallelGenericStep computes the parallel block reliability for one lane
// block: 1 minus the product of component unreliabilities. The complement
// product is accumulated with fms, acc - acc*r == acc*(1-r), keeping one
// rounding per factor.
func parallelGenericStep(be lane.Backend, m lane.Mask, p *evalParams, t int) {
	be.MaskStore(m, be.Cap(parallelProduct(be, m, p, t, p.numComponents)), p.out[t:])
}

// parallelProduct computes 1 minus the unreliability product of components
// [0, n). It doubles as the k=1 base of the K-out-of-N recursion.
func parallelProduct(be lane.Backend, m lane.Mask, p *evalParams, t, n int) lane.Vec {
	one := be.Splat(1)
	acc := be.Sub(one, p.loadComp(be, m, 0, t))
	for c := 1; c < n; c++ {
		acc = be.FMS(acc, acc, p.loadComp(be, m, c, t))
	}
	return be.Sub(one, acc)
}

// parallelIdenticalStep computes 1 - (1-r)^n with the same fms chain as the
// generic step, so the two modes agree bit for bit when all rows are equal.
func parallelIdenticalStep(be lane.Backend, m lane.Mask, p *evalParams, t int) {
	one := be.Splat(1)
	r := be.MaskLoad(m, p.rel[t:])
	acc := be.Sub(one, r)
	for i := 1; i < p.numComponents; i++ {
		acc = be.FMS(acc, acc, r)
	}
	be.MaskStore(m, be.Cap(be.Sub(one, acc)), p.out[t:])
}
