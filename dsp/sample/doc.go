// Package sample defines the sample representations accepted by the block
// filters: 16-bit fixed point [Q15], 32-bit fixed point [Q31] and float32.
//
// Fixed-point values are signed fractions in [-1, 1). Conversions from
// float64 round to nearest and saturate at the representable range.
package sample
