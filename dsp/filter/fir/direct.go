package fir

import (
	"math"
	"math/cmplx"
	"slices"

	"github.com/cwbudde/algo-blockfir/dsp/filter/fir/kernel"
	"github.com/cwbudde/algo-blockfir/dsp/sample"
)

// Direct is an unblocked direct-form FIR using a circular-buffer delay line.
// It applies the same per-sample arithmetic as the block kernels, so feeding
// it the concatenation of a block filter's inputs reproduces the block
// filter's outputs exactly.
type Direct[T sample.Type] struct {
	coeffs []T
	delay  []T
	pos    int
	dot    func(coeffs, delay []T, pos int) T
}

// NewDirect creates a per-sample FIR from coeffs (copied).
func NewDirect[T sample.Type](coeffs []T) (*Direct[T], error) {
	if len(coeffs) == 0 {
		return nil, ErrNoTaps
	}

	return &Direct[T]{
		coeffs: slices.Clone(coeffs),
		delay:  make([]T, len(coeffs)),
		dot:    circularDotFor[T](),
	}, nil
}

// ProcessSample filters one input sample.
//
//	y[n] = sum_{k=0}^{N-1} h[k] * x[n-k]
func (d *Direct[T]) ProcessSample(x T) T {
	d.delay[d.pos] = x
	y := d.dot(d.coeffs, d.delay, d.pos)

	d.pos++
	if d.pos >= len(d.coeffs) {
		d.pos = 0
	}

	return y
}

// ProcessBlock filters a block of samples in-place.
func (d *Direct[T]) ProcessBlock(buf []T) {
	for i, x := range buf {
		buf[i] = d.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (d *Direct[T]) ProcessBlockTo(dst, src []T) {
	if len(src) == 0 {
		return
	}

	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = d.ProcessSample(x)
	}
}

// Reset clears the delay line to zero.
func (d *Direct[T]) Reset() {
	clear(d.delay)
	d.pos = 0
}

// Order returns the filter order (len(coeffs) - 1).
func (d *Direct[T]) Order() int {
	return len(d.coeffs) - 1
}

// Coefficients returns a copy of the filter coefficients.
func (d *Direct[T]) Coefficients() []T {
	return slices.Clone(d.coeffs)
}

// Response computes the complex frequency response H(e^{jw}) at the given
// frequency (Hz) and sample rate (Hz), with coefficients taken as fractions.
func (d *Direct[T]) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate

	var h complex128
	for k, c := range d.coeffs {
		h += complex(sample.ToFloat(c), 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}

	return h
}

// MagnitudeDB returns the magnitude response in dB at the given frequency.
func (d *Direct[T]) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(d.Response(freqHz, sampleRate)))
}

func circularDotFor[T sample.Type]() func(coeffs, delay []T, pos int) T {
	var (
		zero T
		fn   any
	)

	switch any(zero).(type) {
	case sample.Q15:
		fn = circularDot[sample.Q15, int64, kernel.Q15Arith]
	case sample.Q31:
		fn = circularDot[sample.Q31, int64, kernel.Q31Arith]
	default:
		fn = circularDot[float32, float32, kernel.F32Arith]
	}

	return fn.(func(coeffs, delay []T, pos int) T)
}

func circularDot[T sample.Type, A any, M kernel.Arithmetic[T, A]](coeffs, delay []T, pos int) T {
	var (
		m   M
		acc A
	)

	n := len(coeffs)
	p := pos
	for k := range n {
		acc = m.MulAcc(acc, delay[p], coeffs[k])
		p--
		if p < 0 {
			p = n - 1
		}
	}

	return m.Narrow(acc)
}
