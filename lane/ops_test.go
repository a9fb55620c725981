package lane

import (
	"math"
	"testing"
)

var backends = []Backend{Scalar(), Fixed2(), Wide(4), Wide(8)}

func TestLoadStore(t *testing.T) {
	data := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8}
	for _, be := range backends {
		v := be.Load(data)
		if v.NumLanes() != be.Lanes() {
			t.Errorf("%s: Load: got %d lanes, want %d", be.Name(), v.NumLanes(), be.Lanes())
		}
		out := make([]float64, be.Lanes())
		be.Store(v, out)
		for i := range out {
			if out[i] != data[i] {
				t.Errorf("%s: Store: lane %d: got %v, want %v", be.Name(), i, out[i], data[i])
			}
		}
	}
}

func TestMaskLoadShortSource(t *testing.T) {
	be := Wide(4)
	src := []float64{0.9, 0.8, 0.7}
	m := be.TailMask(3)
	v := be.MaskLoad(m, src)
	for i := 0; i < 3; i++ {
		if v.Lane(i) != src[i] {
			t.Errorf("MaskLoad: lane %d: got %v, want %v", i, v.Lane(i), src[i])
		}
	}
	if v.Lane(3) != 0 {
		t.Errorf("MaskLoad: inactive lane: got %v, want 0", v.Lane(3))
	}
}

func TestMaskStoreLeavesInactiveLanes(t *testing.T) {
	be := Wide(4)
	dst := []float64{-1, -1, -1, -1}
	m := be.TailMask(2)
	be.MaskStore(m, be.Splat(0.5), dst)
	want := []float64{0.5, 0.5, -1, -1}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("MaskStore: slot %d: got %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestSplat(t *testing.T) {
	for _, be := range backends {
		v := be.Splat(0.25)
		for i := 0; i < v.NumLanes(); i++ {
			if v.Lane(i) != 0.25 {
				t.Errorf("%s: Splat: lane %d: got %v, want 0.25", be.Name(), i, v.Lane(i))
			}
		}
	}
}

func TestArithmetic(t *testing.T) {
	for _, be := range backends {
		a := be.Splat(0.9)
		b := be.Splat(0.4)
		if got := be.Add(a, b).Lane(0); got != 0.9+0.4 {
			t.Errorf("%s: Add: got %v", be.Name(), got)
		}
		if got := be.Sub(a, b).Lane(0); got != 0.9-0.4 {
			t.Errorf("%s: Sub: got %v", be.Name(), got)
		}
		// The lanes hold 0.9 and 0.4 rounded to float64, so the product is
		// taken in float64 too; the untyped constant 0.9*0.4 folds exactly
		// to 0.36 and differs by one ulp.
		x, y := 0.9, 0.4
		if got := be.Mul(a, b).Lane(0); got != x*y {
			t.Errorf("%s: Mul: got %v", be.Name(), got)
		}
	}
}

func TestFMAFMSSingleRounding(t *testing.T) {
	for _, be := range backends {
		a := be.Splat(0.1)
		x := be.Splat(0.2)
		y := be.Splat(0.3)
		wantFMA := math.FMA(0.2, 0.3, 0.1)
		wantFMS := math.FMA(-0.2, 0.3, 0.1)
		if got := be.FMA(a, x, y).Lane(0); got != wantFMA {
			t.Errorf("%s: FMA: got %v, want %v", be.Name(), got, wantFMA)
		}
		if got := be.FMS(a, x, y).Lane(0); got != wantFMS {
			t.Errorf("%s: FMS: got %v, want %v", be.Name(), got, wantFMS)
		}
	}
}

func TestMinMaxNumberSemantics(t *testing.T) {
	be := Fixed2()
	nan := be.Splat(math.NaN())
	half := be.Splat(0.5)
	if got := be.Min(nan, half).Lane(0); got != 0.5 {
		t.Errorf("Min(NaN, 0.5): got %v, want 0.5", got)
	}
	if got := be.Max(half, nan).Lane(0); got != 0.5 {
		t.Errorf("Max(0.5, NaN): got %v, want 0.5", got)
	}
}

func TestCap(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0.5, 0.5},
		{0, 0},
		{1, 1},
		{1.0000000001, 1},
		{-0.25, 0},
		{math.Inf(1), 1},
		{math.Inf(-1), 0},
		{math.NaN(), 0},
	}
	for _, be := range backends {
		for _, tc := range cases {
			got := be.Cap(be.Splat(tc.in)).Lane(0)
			if got != tc.want {
				t.Errorf("%s: Cap(%v): got %v, want %v", be.Name(), tc.in, got, tc.want)
			}
		}
	}
	for _, tc := range cases {
		if got := CapValue(tc.in); got != tc.want {
			t.Errorf("CapValue(%v): got %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestTailMask(t *testing.T) {
	be := Wide(4)
	if got := be.TailMask(2).CountTrue(); got != 2 {
		t.Errorf("TailMask(2): got %d active lanes, want 2", got)
	}
	if got := be.TailMask(-1).CountTrue(); got != 0 {
		t.Errorf("TailMask(-1): got %d active lanes, want 0", got)
	}
	if got := be.TailMask(9).CountTrue(); got != 4 {
		t.Errorf("TailMask(9): got %d active lanes, want 4", got)
	}
	if !be.FullMask().bits[3] {
		t.Error("FullMask: lane 3 inactive")
	}
}

func TestBackendNames(t *testing.T) {
	if got := Scalar().Name(); got != "scalar" {
		t.Errorf("Scalar name: got %q", got)
	}
	if got := Fixed2().Name(); got != "fixed2" {
		t.Errorf("Fixed2 name: got %q", got)
	}
	if got := Wide(8).Name(); got != "wide8" {
		t.Errorf("Wide(8) name: got %q", got)
	}
}

func TestDetectedSupportsItself(t *testing.T) {
	if !Supports(Detected()) {
		t.Error("detected backend not supported by itself")
	}
	if !Supports(Scalar()) {
		t.Error("scalar must always be supported")
	}
}
