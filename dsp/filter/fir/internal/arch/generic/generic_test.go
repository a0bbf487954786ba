package generic

import (
	"testing"

	"github.com/cwbudde/algo-blockfir/dsp/filter/fir/kernel"
	"github.com/cwbudde/algo-blockfir/dsp/sample"
)

var f32 Kernel[float32, float32, kernel.F32Arith]

// convolve is the textbook causal convolution with zero initial history.
func convolve(h, x []float32) []float32 {
	y := make([]float32, len(x))
	for n := range x {
		var acc float32
		for k := range h {
			if n-k >= 0 {
				acc += float32(h[k] * x[n-k])
			}
		}
		y[n] = acc
	}
	return y
}

func TestFIRMatchesConvolutionAcrossBlocks(t *testing.T) {
	h := []float32{0.5, -0.25, 0.125, 1}
	x := []float32{1, 2, 0, -1, 3, 0.5, -2, 4, 1, 1, 0, -0.5}
	const block = 3

	inst := &kernel.FIRInstance[float32]{
		NumTaps: uint16(len(h)),
		State:   make([]float32, len(h)+block-1),
		Coeffs:  h,
	}

	got := make([]float32, len(x))
	for i := 0; i < len(x); i += block {
		f32.FIR(inst, x[i:i+block], got[i:i+block], block)
	}

	want := convolve(h, x)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("y[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFIRSingleTap(t *testing.T) {
	inst := &kernel.FIRInstance[float32]{NumTaps: 1, State: make([]float32, 4), Coeffs: []float32{2}}
	dst := make([]float32, 4)

	f32.FIR(inst, []float32{1, 2, 3, 4}, dst, 4)

	for i, want := range []float32{2, 4, 6, 8} {
		if dst[i] != want {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], want)
		}
	}
}

func TestDecimateKeepsEveryMth(t *testing.T) {
	h := []float32{0.25, 0.5, 0.25}
	x := []float32{1, 0, 2, 0, -1, 3, 0, 1}
	const (
		block = 4
		m     = 2
	)

	inst := &kernel.DecimateInstance[float32]{
		M:       m,
		NumTaps: uint16(len(h)),
		State:   make([]float32, len(h)+block-1),
		Coeffs:  h,
	}

	got := make([]float32, len(x)/m)
	for i := 0; i < len(x); i += block {
		f32.Decimate(inst, x[i:i+block], got[i/m:(i+block)/m], block)
	}

	full := convolve(h, x)
	for j := range got {
		if got[j] != full[j*m] {
			t.Fatalf("y[%d] = %v, want %v", j, got[j], full[j*m])
		}
	}
}

func TestInterpolateMatchesZeroStuffing(t *testing.T) {
	const (
		l     = 3
		block = 2
	)

	h := []float32{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}
	x := []float32{1, -2, 0.5, 4}

	inst := &kernel.InterpolateInstance[float32]{
		L:           l,
		PhaseLength: uint16(len(h) / l),
		State:       make([]float32, len(h)+block-1),
		Coeffs:      h,
	}

	got := make([]float32, len(x)*l)
	for i := 0; i < len(x); i += block {
		f32.Interpolate(inst, x[i:i+block], got[i*l:(i+block)*l], block)
	}

	stuffed := make([]float32, len(x)*l)
	for i, v := range x {
		stuffed[i*l] = v
	}

	want := convolve(h, stuffed)
	for i := range want {
		if diff := got[i] - want[i]; diff > 1e-6 || diff < -1e-6 {
			t.Fatalf("y[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestQ15FIRMovingAverage(t *testing.T) {
	var q15 Kernel[sample.Q15, int64, kernel.Q15Arith]

	quarter := sample.Q15FromFloat(0.25)
	inst := &kernel.FIRInstance[sample.Q15]{
		NumTaps: 4,
		State:   make([]sample.Q15, 7),
		Coeffs:  []sample.Q15{quarter, quarter, quarter, quarter},
	}

	half := sample.Q15FromFloat(0.5)
	dst := make([]sample.Q15, 4)
	q15.FIR(inst, []sample.Q15{half, half, half, half}, dst, 4)

	for i, want := range []sample.Q15{4096, 8192, 12288, 16384} {
		if dst[i] != want {
			t.Fatalf("dst[%d] = %d, want %d", i, dst[i], want)
		}
	}
}
