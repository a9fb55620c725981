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

// runWorker walks one worker's interleaved batch of the time axis. Worker
// batchIdx owns time slots batchIdx*L, batchIdx*L + numCores*L, ... so the
// workers partition the axis exactly: no slot twice, no slot skipped.
//
// Predicated backends run masked to the end of the axis. Other backends
// stop before a partial block; the single worker whose next block start
// lies inside the final partial block finishes those slots with the scalar
// backend, so which path computes a slot depends only on the backend and
// the axis length, never on the worker count.
func runWorker(be lane.Backend, p *evalParams, step stepFunc) {
	lanes := be.Lanes()
	numTimes := p.numTimes
	stride := p.numCores * lanes
	time := p.batchIdx * lanes

	full := be.FullMask()

	if be.Predicated() {
		for time < numTimes {
			m := full
			if time+lanes > numTimes {
				m = be.TailMask(numTimes - time)
			}
			step(be, m, p, time)
			prefetchNext(p, time+stride)
			time += stride
		}
		return
	}

	for time+lanes <= numTimes {
		step(be, full, p, time)
		prefetchNext(p, time+stride)
		time += stride
	}
	if time < numTimes {
		sc := lane.Scalar()
		sm := sc.FullMask()
		for ; time < numTimes; time++ {
			step(sc, sm, p, time)
		}
	}
}

// prefetchNext hints the loads and the store for the block this worker will
// visit next.
func prefetchNext(p *evalParams, next int) {
	if next >= p.numTimes {
		return
	}
	lane.PrefetchRead(p.rel, p.numComponents, p.numTimes, next)
	lane.PrefetchWrite(p.out, next)
}
