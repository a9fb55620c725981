// Copyright 2026 The go-rbd Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides the SMP primitive the RBD dispatch facade
// runs its per-batch evaluation tasks on: spawn one task per batch, bound
// concurrency by the worker count, join all, and surface the first task
// error as the aggregate status.
package workerpool

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Pool bounds the number of concurrently running tasks. A Pool carries no
// goroutines of its own; tasks are spawned per call and joined before the
// call returns, so a Pool is safe for concurrent use and never needs
// closing.
type Pool struct {
	numWorkers int
}

// New creates a pool with the specified worker bound.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	return &Pool{numWorkers: numWorkers}
}

// NumWorkers returns the concurrency bound of the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// RunBatches runs task(batch) for every batch in [0, numBatches), at most
// NumWorkers at a time, and blocks until all complete. The first non-nil
// task error is returned; remaining batches still run to completion, so
// partially written outputs are bounded by the batch partition.
func (p *Pool) RunBatches(numBatches int, task func(batch int) error) error {
	if numBatches <= 0 {
		return nil
	}
	if numBatches == 1 {
		return task(0)
	}

	var g errgroup.Group
	g.SetLimit(p.numWorkers)
	for batch := range numBatches {
		g.Go(func() error {
			return task(batch)
		})
	}
	return g.Wait()
}

// ParallelFor executes fn over [0, n) split into one contiguous chunk per
// worker. Blocks until all work completes.
//
// fn receives (start, end) indices where work should process [start, end).
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	// Don't use more workers than items.
	workers := min(p.numWorkers, n)
	if workers == 1 {
		fn(0, n)
		return
	}

	// Chunk size rounds up so all items are covered.
	chunkSize := (n + workers - 1) / workers

	var g errgroup.Group
	for i := range workers {
		start := i * chunkSize
		end := min(start+chunkSize, n)
		if start >= n {
			continue
		}
		g.Go(func() error {
			fn(start, end)
			return nil
		})
	}
	_ = g.Wait()
}
