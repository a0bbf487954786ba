package fir

import (
	"fmt"
	"math"
	"slices"

	"github.com/cwbudde/algo-blockfir/dsp/sample"
)

// state owns the coefficient and delay-line buffers shared by all variants.
type state[T sample.Type] struct {
	coeffs    []T
	delay     []T
	blockSize int
}

func newState[T sample.Type](coeffs []T, blockSize int) (state[T], error) {
	switch {
	case len(coeffs) == 0:
		return state[T]{}, ErrNoTaps
	case len(coeffs) > math.MaxUint16:
		return state[T]{}, fmt.Errorf("%w: %d > %d", ErrTooManyTaps, len(coeffs), math.MaxUint16)
	case blockSize <= 0:
		return state[T]{}, fmt.Errorf("%w: %d", ErrInvalidBlockSize, blockSize)
	}

	return state[T]{
		coeffs:    slices.Clone(coeffs),
		delay:     make([]T, len(coeffs)+blockSize-1),
		blockSize: blockSize,
	}, nil
}

func checkFactor(factor int) error {
	if factor < 1 || factor > math.MaxUint8 {
		return fmt.Errorf("%w: %d", ErrInvalidFactor, factor)
	}

	return nil
}

// Taps returns the number of coefficients.
func (s *state[T]) Taps() int {
	return len(s.coeffs)
}

// BlockSize returns the number of input samples per call.
func (s *state[T]) BlockSize() int {
	return s.blockSize
}

// Coefficients returns a copy of the coefficients.
func (s *state[T]) Coefficients() []T {
	return slices.Clone(s.coeffs)
}

// DelayLine returns a copy of the delay line (taps+blockSize-1 samples).
func (s *state[T]) DelayLine() []T {
	return slices.Clone(s.delay)
}

// Reset clears the delay line to zero.
func (s *state[T]) Reset() {
	clear(s.delay)
}

// NewInput returns a zeroed buffer of BlockSize samples.
func (s *state[T]) NewInput() []T {
	return make([]T, s.blockSize)
}
