package kernel

import "github.com/cwbudde/algo-blockfir/dsp/sample"

// Arithmetic is the per-sample-type multiply-accumulate used by the
// kernels. A is the accumulator type.
type Arithmetic[T sample.Type, A any] interface {
	MulAcc(acc A, x, c T) A
	Narrow(acc A) T
}

// Q15Arith accumulates 1.15 x 1.15 products in a 64-bit 34.30 accumulator
// and narrows with an arithmetic shift by 15 and saturation.
type Q15Arith struct{}

func (Q15Arith) MulAcc(acc int64, x, c sample.Q15) int64 {
	return acc + int64(x)*int64(c)
}

func (Q15Arith) Narrow(acc int64) sample.Q15 {
	return sample.SaturateQ15(acc >> 15)
}

// Q31Arith accumulates 1.31 x 1.31 products in a 64-bit 2.62 accumulator
// and narrows by discarding the low 31 bits. The narrowing truncates
// without saturation, so inputs need log2(taps) bits of headroom.
type Q31Arith struct{}

func (Q31Arith) MulAcc(acc int64, x, c sample.Q31) int64 {
	return acc + int64(x)*int64(c)
}

func (Q31Arith) Narrow(acc int64) sample.Q31 {
	return sample.Q31(int32(acc >> 31))
}

// F32Arith accumulates in float32.
type F32Arith struct{}

func (F32Arith) MulAcc(acc, x, c float32) float32 {
	// The conversion rounds the product and prevents FMA fusion, so every
	// backend produces the same bits.
	return acc + float32(x*c)
}

func (F32Arith) Narrow(acc float32) float32 {
	return acc
}
