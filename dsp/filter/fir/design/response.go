package design

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// ErrInvalidFFTSize indicates an FFT size that is not a power of two or is
// shorter than the filter.
var ErrInvalidFFTSize = errors.New("design: FFT size must be a power of two >= tap count")

// MagnitudeResponse returns |H| at fftSize/2+1 equally spaced frequencies
// from DC to Nyquist.
func MagnitudeResponse(taps []float64, fftSize int) ([]float64, error) {
	if len(taps) == 0 {
		return nil, ErrInvalidTaps
	}

	if fftSize < len(taps) || fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("%w: %d for %d taps", ErrInvalidFFTSize, fftSize, len(taps))
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("design: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, fftSize)
	for i, v := range taps {
		padded[i] = complex(v, 0)
	}

	spectrum := make([]complex128, fftSize)
	if err := plan.Forward(spectrum, padded); err != nil {
		return nil, fmt.Errorf("design: forward FFT failed: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for i := range bins {
		re[i] = real(spectrum[i])
		im[i] = imag(spectrum[i])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return mag, nil
}
