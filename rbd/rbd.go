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
	"fmt"
	"runtime"
	"sync"

	"github.com/ajroetker/go-rbd/comb"
	"github.com/ajroetker/go-rbd/lane"
	"github.com/ajroetker/go-rbd/workerpool"
)

// defaultPool runs the per-batch worker tasks. Sized once to the machine;
// evaluations with more batches than workers queue on it.
var defaultPool = sync.OnceValue(func() *workerpool.Pool {
	return workerpool.New(runtime.GOMAXPROCS(0))
})

// SeriesGeneric computes the reliability series of a series block of n
// components. rel is row-major (n, numTimes); out receives numTimes values.
func SeriesGeneric(rel []float64, n, numTimes, numCores int, out []float64, opts ...Option) error {
	cfg := newConfig(opts)
	if err := validate(rel, n, numTimes, numCores, out, false); err != nil {
		return err
	}
	p := evalParams{rel: rel, out: out, numTimes: numTimes, numComponents: n, numCores: numCores}
	return run(cfg, p, "series", seriesGenericStep, false)
}

// SeriesIdentical computes the reliability series of a series block of n
// identical components sharing the series rel of length numTimes.
func SeriesIdentical(rel []float64, n, numTimes, numCores int, out []float64, opts ...Option) error {
	cfg := newConfig(opts)
	if err := validate(rel, n, numTimes, numCores, out, true); err != nil {
		return err
	}
	p := evalParams{rel: rel, out: out, numTimes: numTimes, numComponents: n, numCores: numCores}
	return run(cfg, p, "series", seriesIdenticalStep, false)
}

// ParallelGeneric computes the reliability series of a parallel block of n
// components. rel is row-major (n, numTimes); out receives numTimes values.
func ParallelGeneric(rel []float64, n, numTimes, numCores int, out []float64, opts ...Option) error {
	cfg := newConfig(opts)
	if err := validate(rel, n, numTimes, numCores, out, false); err != nil {
		return err
	}
	p := evalParams{rel: rel, out: out, numTimes: numTimes, numComponents: n, numCores: numCores}
	return run(cfg, p, "parallel", parallelGenericStep, false)
}

// ParallelIdentical computes the reliability series of a parallel block of
// n identical components sharing the series rel of length numTimes.
func ParallelIdentical(rel []float64, n, numTimes, numCores int, out []float64, opts ...Option) error {
	cfg := newConfig(opts)
	if err := validate(rel, n, numTimes, numCores, out, true); err != nil {
		return err
	}
	p := evalParams{rel: rel, out: out, numTimes: numTimes, numComponents: n, numCores: numCores}
	return run(cfg, p, "parallel", parallelIdenticalStep, false)
}

// BridgeGeneric computes the reliability series of the five-component
// bridge topology. rel is row-major (5, numTimes) with the crossover
// component in the last row.
func BridgeGeneric(rel []float64, numTimes, numCores int, out []float64, opts ...Option) error {
	cfg := newConfig(opts)
	if err := validate(rel, bridgeComponents, numTimes, numCores, out, false); err != nil {
		return err
	}
	p := evalParams{rel: rel, out: out, numTimes: numTimes, numComponents: bridgeComponents, numCores: numCores}
	return run(cfg, p, "bridge", bridgeGenericStep, false)
}

// BridgeIdentical computes the reliability series of a bridge of five
// identical components sharing the series rel of length numTimes.
func BridgeIdentical(rel []float64, numTimes, numCores int, out []float64, opts ...Option) error {
	cfg := newConfig(opts)
	if err := validate(rel, bridgeComponents, numTimes, numCores, out, true); err != nil {
		return err
	}
	p := evalParams{rel: rel, out: out, numTimes: numTimes, numComponents: bridgeComponents, numCores: numCores}
	return run(cfg, p, "bridge", bridgeIdenticalStep, false)
}

// KooNIdentical computes the reliability series of a K-out-of-N block of n
// identical components sharing the series rel of length numTimes.
//
// k=0 fills out with 1 and k>n fills with 0 without entering the numeric
// core. k=n and k=1 evaluate as identical Series and Parallel. Otherwise
// the block is evaluated through whichever of the success-side and
// failure-side series has fewer summands; WithUnreliability pins the
// failure side.
func KooNIdentical(rel []float64, n, k, numTimes, numCores int, out []float64, opts ...Option) error {
	cfg := newConfig(opts)
	if err := validateKooN(rel, n, k, numTimes, numCores, out, true); err != nil {
		return err
	}
	if done, err := koonDegenerate(k, n, numTimes, out); done {
		return err
	}

	p := evalParams{rel: rel, out: out, numTimes: numTimes, numComponents: n, numCores: numCores}
	if !cfg.unreliability {
		switch k {
		case n:
			return run(cfg, p, "koon", seriesIdenticalStep, false)
		case 1:
			return run(cfg, p, "koon", parallelIdenticalStep, false)
		}
	}

	// The failure-side series sums the k working-set sizes below the
	// original k; substituting k -> n-k+1 turns the success-form index
	// arithmetic into exactly that sum.
	if cfg.unreliability || k < n-k+1 {
		p.minComponents = n - k + 1
		p.computeUnreliability = true
	} else {
		p.minComponents = k
	}
	p.nCi = comb.Binomials(n, p.minComponents)
	return run(cfg, p, "koon", koonIdenticalStep, false)
}

// KooNGeneric computes the reliability series of a K-out-of-N block of n
// components. rel is row-major (n, numTimes).
//
// k=0 fills out with 1 and k>n fills with 0 without entering the numeric
// core. With WithCombinations the pre-enumerated combinatorial backend is
// used; otherwise the recursive decomposition runs with a private
// per-worker scratch.
func KooNGeneric(rel []float64, n, k, numTimes, numCores int, out []float64, opts ...Option) error {
	cfg := newConfig(opts)
	if err := validateKooN(rel, n, k, numTimes, numCores, out, false); err != nil {
		return err
	}
	if done, err := koonDegenerate(k, n, numTimes, out); done {
		return err
	}

	p := evalParams{
		rel: rel, out: out,
		numTimes: numTimes, numComponents: n, minComponents: k,
		numCores: numCores,
	}
	if cfg.combs != nil {
		if cfg.combs.N != n || cfg.combs.K != k {
			return fmt.Errorf("%w: combination table is for (n=%d, k=%d), block is (n=%d, k=%d)",
				ErrInvalidArgument, cfg.combs.N, cfg.combs.K, n, k)
		}
		p.combs = cfg.combs
		return run(cfg, p, "koon", koonEnumStep, false)
	}
	return run(cfg, p, "koon", koonRecurStep, true)
}

// koonDegenerate handles k=0 (always working) and k>n (never working) by
// dispatching a fill worker over the output.
func koonDegenerate(k, n, numTimes int, out []float64) (bool, error) {
	switch {
	case k == 0:
		fillOutput(out[:numTimes], 1)
		return true, nil
	case k > n:
		fillOutput(out[:numTimes], 0)
		return true, nil
	}
	return false, nil
}

func fillOutput(out []float64, v float64) {
	defaultPool().ParallelFor(len(out), func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = v
		}
	})
}

// run selects the backend, builds one parameter block per worker and
// submits the batch tasks to the pool, blocking until all finish.
func run(cfg config, proto evalParams, topology string, step stepFunc, needRecur bool) error {
	be := lane.Preferred()
	if cfg.pinned {
		if !lane.Supports(cfg.backend) {
			return fmt.Errorf("%w: %s exceeds detected %s",
				ErrBackendUnavailable, cfg.backend.Name(), lane.Detected().Name())
		}
		be = cfg.backend
	}

	logger.Debug().
		Str("topology", topology).
		Str("backend", be.Name()).
		Int("numTimes", proto.numTimes).
		Int("numComponents", proto.numComponents).
		Int("workers", proto.numCores).
		Msg("evaluating block")

	err := defaultPool().RunBatches(proto.numCores, func(batch int) error {
		p := proto
		p.batchIdx = batch
		if needRecur {
			p.recur = newRecurScratch(be.Lanes())
		}
		runWorker(be, &p, step)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternalFailure, err)
	}
	return nil
}

// validate checks the shared argument contract of the non-KooN entry
// points. identical selects the 1-D input layout.
func validate(rel []float64, n, numTimes, numCores int, out []float64, identical bool) error {
	if n < 1 {
		return fmt.Errorf("%w: need at least one component, got %d", ErrInvalidArgument, n)
	}
	return validateBuffers(rel, n, numTimes, numCores, out, identical)
}

// validateKooN adds the K-out-of-N shape limits. k is checked for
// negativity only: k=0 and k>n are valid degenerate requests.
func validateKooN(rel []float64, n, k, numTimes, numCores int, out []float64, identical bool) error {
	if n < 1 || n > maxKooNComponents {
		return fmt.Errorf("%w: need 1 <= n <= %d, got %d", ErrInvalidArgument, maxKooNComponents, n)
	}
	if k < 0 {
		return fmt.Errorf("%w: negative k %d", ErrInvalidArgument, k)
	}
	return validateBuffers(rel, n, numTimes, numCores, out, identical)
}

func validateBuffers(rel []float64, n, numTimes, numCores int, out []float64, identical bool) error {
	if numTimes < 1 {
		return fmt.Errorf("%w: need at least one time slot, got %d", ErrInvalidArgument, numTimes)
	}
	if numCores < 1 {
		return fmt.Errorf("%w: need at least one worker, got %d", ErrInvalidArgument, numCores)
	}
	want := n * numTimes
	if identical {
		want = numTimes
	}
	if rel == nil || len(rel) < want {
		return fmt.Errorf("%w: reliability matrix needs %d values, got %d", ErrInvalidArgument, want, len(rel))
	}
	if out == nil || len(out) < numTimes {
		return fmt.Errorf("%w: output buffer needs %d values, got %d", ErrInvalidArgument, numTimes, len(out))
	}
	return nil
}
