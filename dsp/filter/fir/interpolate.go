package fir

import (
	"fmt"

	"github.com/cwbudde/algo-blockfir/dsp/filter/fir/kernel"
	"github.com/cwbudde/algo-blockfir/dsp/sample"
)

// Interpolator is a block FIR that upsamples by L: it behaves as if L-1
// zeros were inserted after every input sample before filtering.
type Interpolator[T sample.Type] struct {
	state[T]

	kernel  kernel.Kernel[T]
	backend string
	inst    kernel.InterpolateInstance[T]
}

// NewInterpolator creates an interpolating block FIR. The tap count must be
// a multiple of l; each of the l polyphase branches has len(coeffs)/l taps.
func NewInterpolator[T sample.Type](coeffs []T, l, blockSize int, opts ...Option[T]) (*Interpolator[T], error) {
	if err := checkFactor(l); err != nil {
		return nil, err
	}

	st, err := newState(coeffs, blockSize)
	if err != nil {
		return nil, err
	}

	if len(coeffs)%l != 0 {
		return nil, fmt.Errorf("%w: %d taps, L %d", ErrTapsNotMultiple, len(coeffs), l)
	}

	k, name, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	ip := &Interpolator[T]{state: st, kernel: k, backend: name}
	ip.inst = kernel.InterpolateInstance[T]{
		L:           uint8(l),
		PhaseLength: uint16(len(st.coeffs) / l),
		State:       st.delay,
		Coeffs:      st.coeffs,
	}

	return ip, nil
}

// InterpolationFactor returns L.
func (ip *Interpolator[T]) InterpolationFactor() int {
	return int(ip.inst.L)
}

// PhaseLength returns the number of taps per polyphase branch.
func (ip *Interpolator[T]) PhaseLength() int {
	return int(ip.inst.PhaseLength)
}

// OutputSize returns BlockSize*L.
func (ip *Interpolator[T]) OutputSize() int {
	return ip.blockSize * int(ip.inst.L)
}

// NewOutput returns a zeroed buffer of OutputSize samples.
func (ip *Interpolator[T]) NewOutput() []T {
	return make([]T, ip.OutputSize())
}

// Backend returns the name of the kernel backend in use.
func (ip *Interpolator[T]) Backend() string {
	return ip.backend
}

// Filter filters BlockSize samples of src and writes BlockSize*L samples
// to dst. Filter panics on any other buffer length.
func (ip *Interpolator[T]) Filter(src, dst []T) {
	checkBlock("interpolator", src, ip.blockSize, dst, ip.OutputSize())
	ip.kernel.Interpolate(&ip.inst, src, dst, ip.blockSize)
}
