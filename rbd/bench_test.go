package rbd

import (
	"math/rand"
	"testing"

	"github.com/ajroetker/go-rbd/comb"
)

func benchMatrix(n, numTimes int) []float64 {
	rng := rand.New(rand.NewSource(42))
	rel := make([]float64, n*numTimes)
	for i := range rel {
		rel[i] = rng.Float64()
	}
	return rel
}

func BenchmarkSeriesGeneric(b *testing.B) {
	const n, numTimes = 8, 4096
	rel := benchMatrix(n, numTimes)
	out := make([]float64, numTimes)
	b.ResetTimer()
	for b.Loop() {
		if err := SeriesGeneric(rel, n, numTimes, 4, out); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBridgeGeneric(b *testing.B) {
	const numTimes = 4096
	rel := benchMatrix(5, numTimes)
	out := make([]float64, numTimes)
	b.ResetTimer()
	for b.Loop() {
		if err := BridgeGeneric(rel, numTimes, 4, out); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkKooNRecursion(b *testing.B) {
	const n, k, numTimes = 12, 6, 1024
	rel := benchMatrix(n, numTimes)
	out := make([]float64, numTimes)
	b.ResetTimer()
	for b.Loop() {
		if err := KooNGeneric(rel, n, k, numTimes, 4, out); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkKooNEnumeration(b *testing.B) {
	const n, k, numTimes = 12, 6, 1024
	rel := benchMatrix(n, numTimes)
	out := make([]float64, numTimes)
	tab, err := comb.EnumerateKooN(n, k)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for b.Loop() {
		if err := KooNGeneric(rel, n, k, numTimes, 4, out, WithCombinations(tab)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkKooNIdentical(b *testing.B) {
	const n, k, numTimes = 64, 32, 4096
	rel := make([]float64, numTimes)
	rng := rand.New(rand.NewSource(43))
	for i := range rel {
		rel[i] = rng.Float64()
	}
	out := make([]float64, numTimes)
	b.ResetTimer()
	for b.Loop() {
		if err := KooNIdentical(rel, n, k, numTimes, 4, out); err != nil {
			b.Fatal(err)
		}
	}
}
