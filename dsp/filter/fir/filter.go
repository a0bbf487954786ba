package fir

import (
	"github.com/cwbudde/algo-blockfir/dsp/filter/fir/kernel"
	"github.com/cwbudde/algo-blockfir/dsp/sample"
)

// Filter is a standard block FIR: BlockSize samples in, BlockSize out.
type Filter[T sample.Type] struct {
	state[T]

	kernel  kernel.Kernel[T]
	backend string
	inst    kernel.FIRInstance[T]
}

// New creates a block FIR from coeffs (copied; coeffs[k] weights x[n-k])
// processing blockSize samples per call. The delay line starts zeroed.
func New[T sample.Type](coeffs []T, blockSize int, opts ...Option[T]) (*Filter[T], error) {
	st, err := newState(coeffs, blockSize)
	if err != nil {
		return nil, err
	}

	k, name, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	f := &Filter[T]{state: st, kernel: k, backend: name}
	f.inst = kernel.FIRInstance[T]{
		NumTaps: uint16(len(st.coeffs)),
		State:   st.delay,
		Coeffs:  st.coeffs,
	}

	return f, nil
}

// OutputSize returns BlockSize.
func (f *Filter[T]) OutputSize() int {
	return f.blockSize
}

// NewOutput returns a zeroed buffer of OutputSize samples.
func (f *Filter[T]) NewOutput() []T {
	return make([]T, f.OutputSize())
}

// Backend returns the name of the kernel backend in use.
func (f *Filter[T]) Backend() string {
	return f.backend
}

// Filter filters one block of src into dst. Both must hold BlockSize
// samples; otherwise Filter panics.
func (f *Filter[T]) Filter(src, dst []T) {
	checkBlock("filter", src, f.blockSize, dst, f.blockSize)
	f.kernel.FIR(&f.inst, src, dst, f.blockSize)
}
