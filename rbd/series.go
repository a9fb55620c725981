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

// seriesGenericStep computes the series block reliability for one lane
// block: the left-to-right product of all component reliabilities.
func seriesGenericStep(be lane.Backend, m lane.Mask, p *evalParams, t int) {
	be.MaskStore(m, be.Cap(seriesProduct(be, m, p, t, p.numComponents)), p.out[t:])
}

// seriesProduct multiplies the reliabilities of components [0, n)
// left-to-right. It doubles as the k=n base of the K-out-of-N recursion.
func seriesProduct(be lane.Backend, m lane.Mask, p *evalParams, t, n int) lane.Vec {
	acc := p.loadComp(be, m, 0, t)
	for c := 1; c < n; c++ {
		acc = be.Mul(acc, p.loadComp(be, m, c, t))
	}
	return acc
}

// seriesIdenticalStep computes r^n as a chain of n-1 multiplications, the
// same chain the generic step produces when all rows are equal, so the two
// modes agree bit for bit.
func seriesIdenticalStep(be lane.Backend, m lane.Mask, p *evalParams, t int) {
	r := be.MaskLoad(m, p.rel[t:])
	acc := r
	for i := 1; i < p.numComponents; i++ {
		acc = be.Mul(acc, r)
	}
	be.MaskStore(m, be.Cap(acc), p.out[t:])
}
