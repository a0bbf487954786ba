package fir

import (
	"fmt"

	"github.com/cwbudde/algo-blockfir/dsp/filter/fir/kernel"
	"github.com/cwbudde/algo-blockfir/dsp/sample"
)

// Decimator is a block FIR that keeps every Mth output sample.
type Decimator[T sample.Type] struct {
	state[T]

	kernel  kernel.Kernel[T]
	backend string
	inst    kernel.DecimateInstance[T]
}

// NewDecimator creates a decimating block FIR. blockSize must be a multiple
// of m.
func NewDecimator[T sample.Type](coeffs []T, m, blockSize int, opts ...Option[T]) (*Decimator[T], error) {
	if err := checkFactor(m); err != nil {
		return nil, err
	}

	st, err := newState(coeffs, blockSize)
	if err != nil {
		return nil, err
	}

	if blockSize%m != 0 {
		return nil, fmt.Errorf("%w: block size %d, M %d", ErrBlockNotMultiple, blockSize, m)
	}

	k, name, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	d := &Decimator[T]{state: st, kernel: k, backend: name}
	d.inst = kernel.DecimateInstance[T]{
		M:       uint8(m),
		NumTaps: uint16(len(st.coeffs)),
		State:   st.delay,
		Coeffs:  st.coeffs,
	}

	return d, nil
}

// DecimationFactor returns M.
func (d *Decimator[T]) DecimationFactor() int {
	return int(d.inst.M)
}

// OutputSize returns BlockSize/M.
func (d *Decimator[T]) OutputSize() int {
	return d.blockSize / int(d.inst.M)
}

// NewOutput returns a zeroed buffer of OutputSize samples.
func (d *Decimator[T]) NewOutput() []T {
	return make([]T, d.OutputSize())
}

// Backend returns the name of the kernel backend in use.
func (d *Decimator[T]) Backend() string {
	return d.backend
}

// Filter filters BlockSize samples of src and writes BlockSize/M samples
// to dst. Filter panics on any other buffer length.
func (d *Decimator[T]) Filter(src, dst []T) {
	checkBlock("decimator", src, d.blockSize, dst, d.OutputSize())
	d.kernel.Decimate(&d.inst, src, dst, d.blockSize)
}
