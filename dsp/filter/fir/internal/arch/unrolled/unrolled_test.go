package unrolled

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-blockfir/dsp/filter/fir/internal/arch/generic"
	"github.com/cwbudde/algo-blockfir/dsp/filter/fir/kernel"
	"github.com/cwbudde/algo-blockfir/dsp/sample"
)

func randomQ15(rng *rand.Rand, n int) []sample.Q15 {
	out := make([]sample.Q15, n)
	for i := range out {
		out[i] = sample.Q15(rng.Intn(1<<16) - 1<<15)
	}
	return out
}

func randomQ31(rng *rand.Rand, n int) []sample.Q31 {
	out := make([]sample.Q31, n)
	for i := range out {
		// Keep headroom: Q31 narrowing wraps instead of saturating.
		out[i] = sample.Q31(rng.Int31() >> 4)
		if rng.Intn(2) == 0 {
			out[i] = -out[i]
		}
	}
	return out
}

func randomF32(rng *rand.Rand, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = rng.Float32()*2 - 1
	}
	return out
}

type shape struct {
	taps, block, factor int
}

var shapes = []shape{
	{taps: 1, block: 1, factor: 1},
	{taps: 4, block: 4, factor: 2},
	{taps: 6, block: 6, factor: 3},
	{taps: 9, block: 7, factor: 1},
	{taps: 16, block: 10, factor: 2},
	{taps: 32, block: 33, factor: 1},
}

func compareBackends[T sample.Type](t *testing.T, want, got kernel.Kernel[T], gen func(*rand.Rand, int) []T) {
	t.Helper()

	for _, s := range shapes {
		t.Run(fmt.Sprintf("taps=%d/block=%d/factor=%d", s.taps, s.block, s.factor), func(t *testing.T) {
			rng := rand.New(rand.NewSource(int64(s.taps*1000 + s.block)))
			coeffs := gen(rng, s.taps)

			newFIR := func() *kernel.FIRInstance[T] {
				return &kernel.FIRInstance[T]{NumTaps: uint16(s.taps), State: make([]T, s.taps+s.block-1), Coeffs: coeffs}
			}
			a, b := newFIR(), newFIR()

			var (
				dec  = s.block - s.block%s.factor
				decA = &kernel.DecimateInstance[T]{M: uint8(s.factor), NumTaps: uint16(s.taps), State: make([]T, s.taps+dec-1), Coeffs: coeffs}
				decB = &kernel.DecimateInstance[T]{M: uint8(s.factor), NumTaps: uint16(s.taps), State: make([]T, s.taps+dec-1), Coeffs: coeffs}
			)

			interpTaps := s.taps - s.taps%s.factor
			newInterp := func() *kernel.InterpolateInstance[T] {
				return &kernel.InterpolateInstance[T]{
					L:           uint8(s.factor),
					PhaseLength: uint16(interpTaps / s.factor),
					State:       make([]T, interpTaps+s.block-1),
					Coeffs:      coeffs[:interpTaps],
				}
			}
			intA, intB := newInterp(), newInterp()

			for range 5 {
				src := gen(rng, s.block)

				outA, outB := make([]T, s.block), make([]T, s.block)
				want.FIR(a, src, outA, s.block)
				got.FIR(b, src, outB, s.block)
				requireEqual(t, "FIR", outA, outB)

				outA, outB = make([]T, dec/s.factor), make([]T, dec/s.factor)
				want.Decimate(decA, src[:dec], outA, dec)
				got.Decimate(decB, src[:dec], outB, dec)
				requireEqual(t, "Decimate", outA, outB)

				outA, outB = make([]T, s.block*s.factor), make([]T, s.block*s.factor)
				want.Interpolate(intA, src, outA, s.block)
				got.Interpolate(intB, src, outB, s.block)
				requireEqual(t, "Interpolate", outA, outB)
			}
		})
	}
}

func requireEqual[T sample.Type](t *testing.T, op string, want, got []T) {
	t.Helper()

	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("%s: index %d: generic=%v unrolled=%v", op, i, want[i], got[i])
		}
	}
}

func TestUnrolledMatchesGenericQ15(t *testing.T) {
	compareBackends[sample.Q15](t,
		generic.Kernel[sample.Q15, int64, kernel.Q15Arith]{},
		Kernel[sample.Q15, int64, kernel.Q15Arith]{},
		randomQ15)
}

func TestUnrolledMatchesGenericQ31(t *testing.T) {
	compareBackends[sample.Q31](t,
		generic.Kernel[sample.Q31, int64, kernel.Q31Arith]{},
		Kernel[sample.Q31, int64, kernel.Q31Arith]{},
		randomQ31)
}

func TestUnrolledMatchesGenericF32(t *testing.T) {
	compareBackends[float32](t,
		generic.Kernel[float32, float32, kernel.F32Arith]{},
		Kernel[float32, float32, kernel.F32Arith]{},
		randomF32)
}
