package sample

import "math"

// Type is the set of sample representations a filter instance can be
// parameterized with. One instance never mixes representations.
type Type interface {
	Q15 | Q31 | float32
}

// Q15 is a signed 1.15 fixed-point fraction.
type Q15 int16

// Q31 is a signed 1.31 fixed-point fraction.
type Q31 int32

const (
	MaxQ15 Q15 = math.MaxInt16
	MinQ15 Q15 = math.MinInt16
	MaxQ31 Q31 = math.MaxInt32
	MinQ31 Q31 = math.MinInt32
)

const (
	q15Scale = 1 << 15
	q31Scale = 1 << 31
)

// Q15FromFloat converts v to Q15, rounding to nearest and saturating.
// NaN maps to zero.
func Q15FromFloat(v float64) Q15 {
	if math.IsNaN(v) {
		return 0
	}

	return Q15(clamp(math.Round(v*q15Scale), math.MinInt16, math.MaxInt16))
}

// Q31FromFloat converts v to Q31, rounding to nearest and saturating.
// NaN maps to zero.
func Q31FromFloat(v float64) Q31 {
	if math.IsNaN(v) {
		return 0
	}

	return Q31(clamp(math.Round(v*q31Scale), math.MinInt32, math.MaxInt32))
}

// Float returns q as a fraction in [-1, 1).
func (q Q15) Float() float64 {
	return float64(q) / q15Scale
}

// Float returns q as a fraction in [-1, 1).
func (q Q31) Float() float64 {
	return float64(q) / q31Scale
}

// SaturateQ15 narrows v to the Q15 range.
func SaturateQ15(v int64) Q15 {
	switch {
	case v > math.MaxInt16:
		return MaxQ15
	case v < math.MinInt16:
		return MinQ15
	}

	return Q15(v)
}

// SaturateQ31 narrows v to the Q31 range.
func SaturateQ31(v int64) Q31 {
	switch {
	case v > math.MaxInt32:
		return MaxQ31
	case v < math.MinInt32:
		return MinQ31
	}

	return Q31(v)
}

func clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}

	if value > hi {
		return hi
	}

	return value
}
