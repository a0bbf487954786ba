// Package design computes FIR coefficients for the block filters in package
// fir: windowed-sinc lowpass prototypes, anti-aliasing filters sized for
// decimators and anti-imaging filters sized for interpolators.
//
// Coefficients are designed in float64 and converted to a sample type with
// [Quantize]. [MagnitudeResponse] evaluates a design on an FFT grid.
package design
