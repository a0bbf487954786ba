package fir

import "github.com/cwbudde/algo-blockfir/dsp/sample"

// BlockFilter maps one fixed-size input block to one fixed-size output
// block, carrying history between calls.
type BlockFilter[T sample.Type] interface {
	// BlockSize is the required input length.
	BlockSize() int
	// OutputSize is the required output length.
	OutputSize() int
	// Filter consumes len(src) == BlockSize() samples and overwrites
	// dst, which must hold OutputSize() samples.
	Filter(src, dst []T)
}

// BlockDecimateFilter is a BlockFilter producing BlockSize()/M outputs.
type BlockDecimateFilter[T sample.Type] interface {
	BlockFilter[T]
	DecimationFactor() int
}

// BlockInterpolateFilter is a BlockFilter producing BlockSize()*L outputs.
type BlockInterpolateFilter[T sample.Type] interface {
	BlockFilter[T]
	InterpolationFactor() int
}

var (
	_ BlockFilter[float32]               = (*Filter[float32])(nil)
	_ BlockDecimateFilter[sample.Q15]    = (*Decimator[sample.Q15])(nil)
	_ BlockInterpolateFilter[sample.Q31] = (*Interpolator[sample.Q31])(nil)
)
