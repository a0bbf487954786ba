package resample

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-blockfir/dsp/filter/fir"
	"github.com/cwbudde/algo-blockfir/dsp/filter/fir/design"
	"github.com/cwbudde/algo-blockfir/dsp/sample"
)

var (
	// ErrInvalidRatio indicates an invalid up/down ratio.
	ErrInvalidRatio = errors.New("resample: invalid ratio")
	// ErrInvalidRate indicates an invalid input/output sample rate.
	ErrInvalidRate = errors.New("resample: invalid sample rate")
	// ErrInvalidBlockSize indicates a block size that does not map to a
	// whole number of output samples.
	ErrInvalidBlockSize = errors.New("resample: block size times up must be a multiple of down")
)

// Resampler performs rational sample-rate conversion on fixed-size blocks.
//
// When up > 1 the anti-aliasing lowpass runs in the interpolating stage and
// the decimating stage keeps every down-th sample through a single unit tap.
// When up == 1 the lowpass runs in the decimating stage alone.
type Resampler[T sample.Type] struct {
	up   int
	down int

	blockSize int
	quality   Quality
	taps      []float64

	interp  *fir.Interpolator[T]
	dec     *fir.Decimator[T]
	scratch []T
}

var _ fir.BlockFilter[float32] = (*Resampler[float32])(nil)

// NewRational creates a resampler for ratio up/down consuming blockSize
// input samples per call. The ratio is reduced first; the reduced factors
// must not exceed 255.
func NewRational[T sample.Type](up, down, blockSize int, opts ...Option) (*Resampler[T], error) {
	if up <= 0 || down <= 0 {
		return nil, fmt.Errorf("%w: %d/%d", ErrInvalidRatio, up, down)
	}

	g := gcd(up, down)
	up /= g
	down /= g

	if up > maxFactor || down > maxFactor {
		return nil, fmt.Errorf("%w: reduced ratio %d/%d exceeds %d", ErrInvalidRatio, up, down, maxFactor)
	}

	if blockSize <= 0 || (blockSize*up)%down != 0 {
		return nil, fmt.Errorf("%w: block %d, ratio %d/%d", ErrInvalidBlockSize, blockSize, up, down)
	}

	cfg := newConfig(opts)

	taps, err := designPrototype(up, down, cfg)
	if err != nil {
		return nil, err
	}

	r := &Resampler[T]{
		up:        up,
		down:      down,
		blockSize: blockSize,
		quality:   cfg.quality,
		taps:      taps,
	}

	firOpts := []fir.Option[T]{fir.WithBackend[T](cfg.backend)}
	coeffs := design.Quantize[T](taps)

	if up == 1 && down > 1 {
		r.dec, err = fir.NewDecimator(coeffs, down, blockSize, firOpts...)
		if err != nil {
			return nil, fmt.Errorf("resample: decimator: %w", err)
		}

		return r, nil
	}

	r.interp, err = fir.NewInterpolator(coeffs, up, blockSize, firOpts...)
	if err != nil {
		return nil, fmt.Errorf("resample: interpolator: %w", err)
	}

	if down > 1 {
		unit := []T{sample.FromFloat[T](1)}

		r.dec, err = fir.NewDecimator(unit, down, blockSize*up, firOpts...)
		if err != nil {
			return nil, fmt.Errorf("resample: decimator: %w", err)
		}

		r.scratch = r.interp.NewOutput()
	}

	return r, nil
}

// NewForRates creates a resampler by approximating outRate/inRate as a
// ratio whose denominator is at most the configured maximum.
func NewForRates[T sample.Type](inRate, outRate float64, blockSize int, opts ...Option) (*Resampler[T], error) {
	if inRate <= 0 || outRate <= 0 || math.IsNaN(inRate) || math.IsNaN(outRate) ||
		math.IsInf(inRate, 0) || math.IsInf(outRate, 0) {
		return nil, fmt.Errorf("%w: %g -> %g", ErrInvalidRate, inRate, outRate)
	}

	cfg := newConfig(opts)
	up, down := approximateRatio(outRate/inRate, cfg.maxDen)

	return NewRational[T](up, down, blockSize, opts...)
}

// oneShotBlock is the approximate input block size used by Resample.
const oneShotBlock = 256

// Resample converts input using ratio up/down as a one-shot helper. The
// input is zero-padded to a whole number of blocks and the output trimmed to
// ceil(len(input)*up/down) samples.
func Resample[T sample.Type](input []T, up, down int, opts ...Option) ([]T, error) {
	if up <= 0 || down <= 0 {
		return nil, fmt.Errorf("%w: %d/%d", ErrInvalidRatio, up, down)
	}

	g := gcd(up, down)
	block := down / g
	block *= max(1, oneShotBlock/block)

	r, err := NewRational[T](up, down, block, opts...)
	if err != nil {
		return nil, err
	}

	if len(input) == 0 {
		return nil, nil
	}

	blocks := (len(input) + block - 1) / block
	outLen := (len(input)*r.up + r.down - 1) / r.down

	src := r.NewInput()
	out := make([]T, blocks*r.OutputSize())

	for b := range blocks {
		clear(src)
		copy(src, input[b*block:])
		r.Filter(src, out[b*r.OutputSize():(b+1)*r.OutputSize()])
	}

	return out[:outLen], nil
}

// Filter converts BlockSize input samples into OutputSize output samples.
// Filter panics on any other buffer length.
func (r *Resampler[T]) Filter(src, dst []T) {
	switch {
	case r.interp == nil:
		r.dec.Filter(src, dst)
	case r.dec == nil:
		r.interp.Filter(src, dst)
	default:
		r.interp.Filter(src, r.scratch)
		r.dec.Filter(r.scratch, dst)
	}
}

// Reset clears the delay lines of both stages.
func (r *Resampler[T]) Reset() {
	if r.interp != nil {
		r.interp.Reset()
	}

	if r.dec != nil {
		r.dec.Reset()
	}
}

// BlockSize returns the number of input samples per Filter call.
func (r *Resampler[T]) BlockSize() int {
	return r.blockSize
}

// OutputSize returns the number of output samples per Filter call.
func (r *Resampler[T]) OutputSize() int {
	return r.blockSize * r.up / r.down
}

// NewInput returns a zeroed buffer of BlockSize samples.
func (r *Resampler[T]) NewInput() []T {
	return make([]T, r.blockSize)
}

// NewOutput returns a zeroed buffer of OutputSize samples.
func (r *Resampler[T]) NewOutput() []T {
	return make([]T, r.OutputSize())
}

// Ratio returns reduced up/down conversion factors.
func (r *Resampler[T]) Ratio() (up, down int) {
	return r.up, r.down
}

// Quality returns the configured quality mode.
func (r *Resampler[T]) Quality() Quality {
	return r.quality
}

// Backend returns the FIR kernel backend in use.
func (r *Resampler[T]) Backend() string {
	if r.interp != nil {
		return r.interp.Backend()
	}

	return r.dec.Backend()
}

// TapsPerPhase returns taps in each polyphase branch of the lowpass stage.
func (r *Resampler[T]) TapsPerPhase() int {
	if r.interp != nil {
		return r.interp.PhaseLength()
	}

	return len(r.taps)
}

// Prototype returns a copy of the float64 prototype lowpass taps.
func (r *Resampler[T]) Prototype() []float64 {
	out := make([]float64, len(r.taps))
	copy(out, r.taps)

	return out
}

func designPrototype(up, down int, cfg config) ([]float64, error) {
	dopts := []design.Option{
		design.WithKaiserBeta(cfg.kaiserBeta),
		design.WithGain(float64(up)),
	}

	nTaps := cfg.tapsPerPhase * up
	if up == 1 {
		nTaps = cfg.tapsPerPhase * down
	}

	fc := 0.5 / float64(max(up, down)) * cfg.cutoffScale
	if up == 1 && down == 1 {
		// Identity ratio: keep a wide band-limiting lowpass.
		fc = 0.5 * cfg.cutoffScale * 0.99
	}

	taps, err := design.Lowpass(nTaps, fc, dopts...)
	if err != nil {
		return nil, fmt.Errorf("resample: prototype design: %w", err)
	}

	return taps, nil
}
