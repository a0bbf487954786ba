// Package unrolled registers FIR kernels that compute four outputs per pass
// over the coefficients. Each output accumulates its taps in the same order
// as the generic kernels, so results are bit-identical.
package unrolled

import (
	"github.com/cwbudde/algo-blockfir/dsp/filter/fir/internal/arch/registry"
	"github.com/cwbudde/algo-blockfir/dsp/filter/fir/kernel"
	"github.com/cwbudde/algo-blockfir/dsp/sample"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.Backend{
		Name:      "unrolled",
		SIMDLevel: cpu.SIMDNone,
		Priority:  10,
		Q15:       Kernel[sample.Q15, int64, kernel.Q15Arith]{},
		Q31:       Kernel[sample.Q31, int64, kernel.Q31Arith]{},
		F32:       Kernel[float32, float32, kernel.F32Arith]{},
	})
}

// Kernel computes four outputs per coefficient pass.
type Kernel[T sample.Type, A any, M kernel.Arithmetic[T, A]] struct{}

func (Kernel[T, A, M]) FIR(inst *kernel.FIRInstance[T], src, dst []T, blockSize int) {
	taps := int(inst.NumTaps)
	state := inst.State

	copy(state[taps-1:], src[:blockSize])
	convolve[T, A, M](state, dst, inst.Coeffs[:taps], taps-1, 1, blockSize)
	copy(state, state[blockSize:blockSize+taps-1])
}

func (Kernel[T, A, M]) Decimate(inst *kernel.DecimateInstance[T], src, dst []T, blockSize int) {
	taps := int(inst.NumTaps)
	m := int(inst.M)
	state := inst.State

	copy(state[taps-1:], src[:blockSize])
	convolve[T, A, M](state, dst, inst.Coeffs[:taps], taps-1, m, blockSize/m)
	copy(state, state[blockSize:blockSize+taps-1])
}

func (Kernel[T, A, M]) Interpolate(inst *kernel.InterpolateInstance[T], src, dst []T, blockSize int) {
	var m M

	l := int(inst.L)
	phaseLen := int(inst.PhaseLength)
	state := inst.State
	coeffs := inst.Coeffs

	copy(state[phaseLen-1:], src[:blockSize])

	for p := range l {
		n := 0
		for ; n+3 < blockSize; n += 4 {
			var a0, a1, a2, a3 A

			newest := n + phaseLen - 1
			for r := range phaseLen {
				c := coeffs[p+r*l]
				x := newest - r
				a0 = m.MulAcc(a0, state[x], c)
				a1 = m.MulAcc(a1, state[x+1], c)
				a2 = m.MulAcc(a2, state[x+2], c)
				a3 = m.MulAcc(a3, state[x+3], c)
			}

			dst[n*l+p] = m.Narrow(a0)
			dst[(n+1)*l+p] = m.Narrow(a1)
			dst[(n+2)*l+p] = m.Narrow(a2)
			dst[(n+3)*l+p] = m.Narrow(a3)
		}

		for ; n < blockSize; n++ {
			var acc A

			newest := n + phaseLen - 1
			for r := range phaseLen {
				acc = m.MulAcc(acc, state[newest-r], coeffs[p+r*l])
			}

			dst[n*l+p] = m.Narrow(acc)
		}
	}

	copy(state, state[blockSize:blockSize+phaseLen-1])
}

// convolve writes outputs y[j] = sum(coeffs[k] * state[first+j*step-k]).
func convolve[T sample.Type, A any, M kernel.Arithmetic[T, A]](state, dst, coeffs []T, first, step, outputs int) {
	var m M

	j := 0
	for ; j+3 < outputs; j += 4 {
		var a0, a1, a2, a3 A

		base := first + j*step
		for k, c := range coeffs {
			x := base - k
			a0 = m.MulAcc(a0, state[x], c)
			a1 = m.MulAcc(a1, state[x+step], c)
			a2 = m.MulAcc(a2, state[x+2*step], c)
			a3 = m.MulAcc(a3, state[x+3*step], c)
		}

		dst[j] = m.Narrow(a0)
		dst[j+1] = m.Narrow(a1)
		dst[j+2] = m.Narrow(a2)
		dst[j+3] = m.Narrow(a3)
	}

	for ; j < outputs; j++ {
		var acc A

		x := first + j*step
		for k, c := range coeffs {
			acc = m.MulAcc(acc, state[x-k], c)
		}

		dst[j] = m.Narrow(acc)
	}
}
