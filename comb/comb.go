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

// Package comb supplies the combinatorial tables consumed by the RBD
// evaluation engine: binomial coefficient vectors for identical K-out-of-N
// blocks, and enumerated component combinations for the generic
// combinatorial backend.
package comb

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat/combin"
)

// MaxComponents is the largest component count accepted for K-out-of-N
// tables.
const MaxComponents = 127

// MaxEnumerated caps the total number of tuples EnumerateKooN will
// materialise. Beyond this the recursive backend is the right tool.
const MaxEnumerated = 1 << 20

// ErrTooManyCombinations is returned when an enumeration would exceed
// MaxEnumerated tuples.
var ErrTooManyCombinations = errors.New("comb: combination count exceeds enumeration limit")

// ErrBadShape is returned for component counts outside 1 <= k <= n <= 127.
var ErrBadShape = errors.New("comb: need 1 <= k <= n <= 127")

// maxExactBinomialN bounds the integer binomial form: every C(n, j) with
// n <= 62 fits in an int64 with room to spare, while C(67, 33) overflows.
const maxExactBinomialN = 62

// Binomials returns the coefficient vector for an identical K-out-of-N
// block: nCi[i] = C(n, k+i) for i = 0..n-k.
//
// Coefficients are float64 multipliers. Up to n = 62 they come from the
// exact integer form; beyond that C(n, j) can exceed the int64 range and
// the gamma-function form is used, which is the precision the reliability
// series is computed at anyway.
func Binomials(n, k int) []float64 {
	nCi := make([]float64, n-k+1)
	for i := range nCi {
		if n <= maxExactBinomialN {
			nCi[i] = float64(combin.Binomial(n, k+i))
		} else {
			nCi[i] = combin.GeneralizedBinomial(float64(n), float64(k+i))
		}
	}
	return nCi
}

// Side reports which event class a Table enumerates.
type Side int

const (
	// Success enumerates working sets of size >= k; the block works iff one
	// of the enumerated sets is exactly the working set.
	Success Side = iota

	// Failure enumerates working sets of size < k; the block fails iff one
	// of the enumerated sets is exactly the working set.
	Failure
)

// String returns "success" or "failure".
func (s Side) String() string {
	if s == Success {
		return "success"
	}
	return "failure"
}

// Group holds every combination of a single working-set size.
type Group struct {
	// Size is the working-set cardinality of each tuple in this group.
	Size int

	// Tuples lists the component index sets in lexicographic order.
	// For Size 0 it holds a single empty tuple.
	Tuples [][]int
}

// Table is a complete enumeration of one side of a K-out-of-N block over
// components 0..N-1. Groups are ordered by ascending Size.
type Table struct {
	N, K int
	Side Side

	Groups []Group
}

// NumTuples returns the total number of enumerated combinations.
func (t *Table) NumTuples() int {
	total := 0
	for _, g := range t.Groups {
		total += len(g.Tuples)
	}
	return total
}

// EnumerateKooN builds the combination table for a K-out-of-N block,
// enumerating whichever side (success or failure) has fewer combinations.
//
// Combinations within each group follow combin.Combinations lexicographic
// order, so independent enumerations of the same block are identical
// tuple-for-tuple.
func EnumerateKooN(n, k int) (*Table, error) {
	if k < 1 || k > n || n > MaxComponents {
		return nil, fmt.Errorf("%w: n=%d k=%d", ErrBadShape, n, k)
	}

	successCount := 0.0
	for j := k; j <= n; j++ {
		successCount += combin.GeneralizedBinomial(float64(n), float64(j))
	}
	failureCount := 0.0
	for j := 0; j < k; j++ {
		failureCount += combin.GeneralizedBinomial(float64(n), float64(j))
	}

	side, count := Success, successCount
	if failureCount < successCount {
		side, count = Failure, failureCount
	}
	if count > MaxEnumerated {
		return nil, fmt.Errorf("%w: n=%d k=%d needs %.0f tuples", ErrTooManyCombinations, n, k, count)
	}

	t := &Table{N: n, K: k, Side: side}
	lo, hi := k, n
	if side == Failure {
		lo, hi = 0, k-1
	}
	for j := lo; j <= hi; j++ {
		g := Group{Size: j}
		if j == 0 {
			g.Tuples = [][]int{{}}
		} else {
			g.Tuples = combin.Combinations(n, j)
		}
		t.Groups = append(t.Groups, g)
	}
	return t, nil
}
