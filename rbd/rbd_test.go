package rbd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-rbd/comb"
	"github.com/ajroetker/go-rbd/lane"
)

// refBlock computes K-out-of-N reliability for one time slot by enumerating
// all 2^n working/failing configurations. Series is k=n, Parallel is k=1.
func refBlock(k int, rs []float64) float64 {
	n := len(rs)
	total := 0.0
	for mask := 0; mask < 1<<n; mask++ {
		p := 1.0
		working := 0
		for c := 0; c < n; c++ {
			if mask>>c&1 == 1 {
				p *= rs[c]
				working++
			} else {
				p *= 1 - rs[c]
			}
		}
		if working >= k {
			total += p
		}
	}
	return total
}

// column extracts the component reliabilities of one time slot from a
// row-major matrix.
func column(rel []float64, n, numTimes, t int) []float64 {
	rs := make([]float64, n)
	for c := 0; c < n; c++ {
		rs[c] = rel[c*numTimes+t]
	}
	return rs
}

func TestSeriesGeneric(t *testing.T) {
	rel := []float64{
		0.9, 0.8,
		0.95, 0.7,
		1.0, 0.5,
	}
	out := make([]float64, 2)
	require.NoError(t, SeriesGeneric(rel, 3, 2, 2, out))
	assert.InDelta(t, 0.855, out[0], 1e-12)
	assert.InDelta(t, 0.280, out[1], 1e-12)
}

func TestSeriesAbsorption(t *testing.T) {
	// All ones stays one; any zero forces zero.
	out := make([]float64, 1)
	require.NoError(t, SeriesGeneric([]float64{1, 1, 1}, 3, 1, 1, out))
	assert.Equal(t, 1.0, out[0])
	require.NoError(t, SeriesGeneric([]float64{0.9, 0, 0.8}, 3, 1, 1, out))
	assert.Equal(t, 0.0, out[0])
}

func TestParallelGeneric(t *testing.T) {
	rel := []float64{0.1, 0.2, 0.3}
	out := make([]float64, 1)
	require.NoError(t, ParallelGeneric(rel, 3, 1, 1, out))
	assert.InDelta(t, 0.496, out[0], 1e-12)
}

func TestParallelAbsorption(t *testing.T) {
	out := make([]float64, 1)
	require.NoError(t, ParallelGeneric([]float64{0, 0, 0}, 3, 1, 1, out))
	assert.Equal(t, 0.0, out[0])
	require.NoError(t, ParallelGeneric([]float64{0.1, 1, 0.2}, 3, 1, 1, out))
	assert.Equal(t, 1.0, out[0])
}

func TestBridgeGeneric(t *testing.T) {
	// R5 pivotal identity: VAL1 = (R1||R3)(R2||R4), VAL2 = R1R2 || R3R4.
	rel := []float64{0.9, 0.8, 0.7, 0.6, 0.5}
	out := make([]float64, 1)
	require.NoError(t, BridgeGeneric(rel, 1, 1, out))

	val1 := (0.9 + 0.7 - 0.9*0.7) * (0.8 + 0.6 - 0.8*0.6)
	val2 := 0.9*0.8 + 0.7*0.6 - 0.9*0.8*0.7*0.6
	want := 0.5*(val1-val2) + val2
	assert.InDelta(t, want, out[0], 1e-12)
	assert.InDelta(t, 0.865, out[0], 1e-12)
}

func TestKooNIdenticalSuccessForm(t *testing.T) {
	// n=5, k=3, r=0.9: C(5,3) 0.9^3 0.1^2 + C(5,4) 0.9^4 0.1 + 0.9^5.
	out := make([]float64, 1)
	require.NoError(t, KooNIdentical([]float64{0.9}, 5, 3, 1, 1, out))
	assert.InDelta(t, 0.99144, out[0], 1e-10)
}

func TestKooNGenericRecursion(t *testing.T) {
	rel := []float64{0.9, 0.8, 0.7, 0.6}
	out := make([]float64, 1)
	require.NoError(t, KooNGeneric(rel, 4, 2, 1, 1, out))
	assert.InDelta(t, refBlock(2, []float64{0.9, 0.8, 0.7, 0.6}), out[0], 1e-12)
	assert.InDelta(t, 0.9572, out[0], 1e-6)
}

func TestKooNDegenerate(t *testing.T) {
	rel := []float64{0.5, 0.5, 0.5, 0.5}
	out := make([]float64, 4)

	require.NoError(t, KooNIdentical(rel, 3, 0, 4, 2, out))
	assert.Equal(t, []float64{1, 1, 1, 1}, out)

	require.NoError(t, KooNIdentical(rel, 3, 4, 4, 2, out))
	assert.Equal(t, []float64{0, 0, 0, 0}, out)

	genRel := make([]float64, 3*4)
	require.NoError(t, KooNGeneric(genRel, 3, 0, 4, 2, out))
	assert.Equal(t, []float64{1, 1, 1, 1}, out)
	require.NoError(t, KooNGeneric(genRel, 3, 4, 4, 2, out))
	assert.Equal(t, []float64{0, 0, 0, 0}, out)
}

func TestKooNGenericEnumeration(t *testing.T) {
	tab, err := comb.EnumerateKooN(4, 2)
	require.NoError(t, err)

	rel := []float64{0.9, 0.8, 0.7, 0.6}
	out := make([]float64, 1)
	require.NoError(t, KooNGeneric(rel, 4, 2, 1, 1, out, WithCombinations(tab)))
	assert.InDelta(t, refBlock(2, rel), out[0], 1e-12)
}

func TestKooNGenericRejectsMismatchedTable(t *testing.T) {
	tab, err := comb.EnumerateKooN(5, 2)
	require.NoError(t, err)

	rel := make([]float64, 4)
	out := make([]float64, 1)
	err = KooNGeneric(rel, 4, 2, 1, 1, out, WithCombinations(tab))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestValidation(t *testing.T) {
	rel := []float64{0.9, 0.8}
	out := make([]float64, 2)

	cases := []struct {
		name string
		err  error
	}{
		{"zero times", SeriesGeneric(rel, 2, 0, 1, out)},
		{"zero workers", SeriesGeneric(rel, 2, 1, 0, out)},
		{"zero components", SeriesGeneric(rel, 0, 1, 1, out)},
		{"nil matrix", SeriesGeneric(nil, 2, 1, 1, out)},
		{"short matrix", SeriesGeneric(rel, 3, 1, 1, out)},
		{"nil output", SeriesGeneric(rel, 2, 1, 1, nil)},
		{"short output", SeriesGeneric(rel, 1, 2, 1, out[:1])},
		{"koon too many components", KooNGeneric(make([]float64, 128), 128, 2, 1, 1, out)},
		{"koon negative k", KooNGeneric(rel, 2, -1, 1, 1, out)},
		{"identical short", SeriesIdentical(rel[:1], 3, 2, 1, out)},
	}
	for _, tc := range cases {
		assert.ErrorIs(t, tc.err, ErrInvalidArgument, tc.name)
	}
}

func TestValidationLeavesOutputUntouched(t *testing.T) {
	out := []float64{-7, -7}
	err := SeriesGeneric(nil, 2, 2, 1, out)
	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, []float64{-7, -7}, out)
}

func TestPinnedBackendBeyondCapability(t *testing.T) {
	rel := []float64{0.9}
	out := make([]float64, 1)
	err := SeriesIdentical(rel, 2, 1, 1, out, WithBackend(lane.Wide(64)))
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestPinnedScalarAlwaysWorks(t *testing.T) {
	rel := []float64{0.9, 0.8, 0.95, 0.7}
	out := make([]float64, 2)
	require.NoError(t, SeriesGeneric(rel, 2, 2, 1, out, WithBackend(lane.Scalar())))
	assert.InDelta(t, 0.9*0.95, out[0], 1e-15)
	assert.InDelta(t, 0.8*0.7, out[1], 1e-15)
}
