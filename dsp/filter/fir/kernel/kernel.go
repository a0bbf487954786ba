// Package kernel defines the call boundary between the block filters in
// package fir and the numeric routines that do the convolution.
//
// The parameter records mirror the instance structures of the vendor
// fixed-point DSP library (tap count as uint16, rate factors as uint8) so a
// binding to that library can satisfy [Kernel] without translation.
//
// Delay-line convention: the first NumTaps-1 (PhaseLength-1 for
// interpolation) elements of State hold the most recent input history,
// oldest first. The rest of State is scratch space for the current block.
// Coefficients are in natural order: Coeffs[k] weights x[n-k].
package kernel

import "github.com/cwbudde/algo-blockfir/dsp/sample"

// FIRInstance is the parameter record of a standard block FIR.
type FIRInstance[T sample.Type] struct {
	NumTaps uint16
	State   []T
	Coeffs  []T
}

// DecimateInstance is the parameter record of a decimating block FIR.
type DecimateInstance[T sample.Type] struct {
	M       uint8
	NumTaps uint16
	State   []T
	Coeffs  []T
}

// InterpolateInstance is the parameter record of an interpolating block FIR.
// PhaseLength is the number of taps per polyphase branch (NumTaps / L).
type InterpolateInstance[T sample.Type] struct {
	L           uint8
	PhaseLength uint16
	State       []T
	Coeffs      []T
}

// Kernel is the numeric service consumed by the block filters, one
// implementation per sample type.
//
// Every method reads blockSize samples from src, writes the full output
// block to dst and advances the delay line in the record. Callers guarantee
// the buffer lengths; implementations do not validate them.
type Kernel[T sample.Type] interface {
	// FIR writes blockSize filtered samples to dst.
	FIR(inst *FIRInstance[T], src, dst []T, blockSize int)
	// Decimate writes blockSize/M samples to dst, keeping every Mth output.
	Decimate(inst *DecimateInstance[T], src, dst []T, blockSize int)
	// Interpolate writes blockSize*L samples to dst.
	Interpolate(inst *InterpolateInstance[T], src, dst []T, blockSize int)
}
