// Package generic registers the scalar reference FIR kernels.
package generic

import (
	"github.com/cwbudde/algo-blockfir/dsp/filter/fir/internal/arch/registry"
	"github.com/cwbudde/algo-blockfir/dsp/filter/fir/kernel"
	"github.com/cwbudde/algo-blockfir/dsp/sample"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.Backend{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Q15:       Kernel[sample.Q15, int64, kernel.Q15Arith]{},
		Q31:       Kernel[sample.Q31, int64, kernel.Q31Arith]{},
		F32:       Kernel[float32, float32, kernel.F32Arith]{},
	})
}

// Kernel computes one output sample at a time.
type Kernel[T sample.Type, A any, M kernel.Arithmetic[T, A]] struct{}

func (Kernel[T, A, M]) FIR(inst *kernel.FIRInstance[T], src, dst []T, blockSize int) {
	taps := int(inst.NumTaps)
	state := inst.State

	copy(state[taps-1:], src[:blockSize])

	for n := range blockSize {
		dst[n] = dot[T, A, M](state, n+taps-1, inst.Coeffs, 0, 1, taps)
	}

	copy(state, state[blockSize:blockSize+taps-1])
}

func (Kernel[T, A, M]) Decimate(inst *kernel.DecimateInstance[T], src, dst []T, blockSize int) {
	taps := int(inst.NumTaps)
	m := int(inst.M)
	state := inst.State

	copy(state[taps-1:], src[:blockSize])

	for j := range blockSize / m {
		dst[j] = dot[T, A, M](state, j*m+taps-1, inst.Coeffs, 0, 1, taps)
	}

	copy(state, state[blockSize:blockSize+taps-1])
}

func (Kernel[T, A, M]) Interpolate(inst *kernel.InterpolateInstance[T], src, dst []T, blockSize int) {
	l := int(inst.L)
	phaseLen := int(inst.PhaseLength)
	state := inst.State

	copy(state[phaseLen-1:], src[:blockSize])

	for n := range blockSize {
		newest := n + phaseLen - 1
		for p := range l {
			dst[n*l+p] = dot[T, A, M](state, newest, inst.Coeffs, p, l, phaseLen)
		}
	}

	copy(state, state[blockSize:blockSize+phaseLen-1])
}

// dot returns sum(coeffs[start+k*stride] * state[newest-k]) for k < count.
func dot[T sample.Type, A any, M kernel.Arithmetic[T, A]](state []T, newest int, coeffs []T, start, stride, count int) T {
	var (
		m   M
		acc A
	)

	c := start
	for k := range count {
		acc = m.MulAcc(acc, state[newest-k], coeffs[c])
		c += stride
	}

	return m.Narrow(acc)
}
