package design

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-blockfir/dsp/sample"
	"github.com/cwbudde/algo-blockfir/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrInvalidTaps indicates a non-positive tap count.
	ErrInvalidTaps = errors.New("design: tap count must be > 0")
	// ErrInvalidCutoff indicates a cutoff outside (0, 0.5).
	ErrInvalidCutoff = errors.New("design: cutoff must be in (0, 0.5) cycles/sample")
	// ErrInvalidFactor indicates a non-positive rate factor.
	ErrInvalidFactor = errors.New("design: rate factor must be > 0")
)

// DefaultKaiserBeta gives roughly 75 dB stopband attenuation.
const DefaultKaiserBeta = 7.5

type config struct {
	window      window.Type
	kaiserBeta  float64
	gain        float64
	cutoffScale float64
}

// Option configures a design.
type Option func(*config)

// WithKaiserBeta overrides the Kaiser window beta parameter.
func WithKaiserBeta(beta float64) Option {
	return func(cfg *config) {
		if beta >= 0 {
			cfg.kaiserBeta = beta
		}
	}
}

// WithWindow selects the window that truncates the ideal response. The
// default is a Kaiser window.
func WithWindow(t window.Type) Option {
	return func(cfg *config) {
		cfg.window = t
	}
}

// WithGain overrides the DC gain of the design.
func WithGain(g float64) Option {
	return func(cfg *config) {
		cfg.gain = g
	}
}

// WithCutoffScale scales the theoretical anti-aliasing cutoff of
// Decimation and Interpolation designs. v must be in (0, 1].
func WithCutoffScale(v float64) Option {
	return func(cfg *config) {
		if v > 0 && v <= 1 {
			cfg.cutoffScale = v
		}
	}
}

func newConfig(opts []Option) config {
	cfg := config{
		window:      window.TypeKaiser,
		kaiserBeta:  DefaultKaiserBeta,
		gain:        1,
		cutoffScale: 0.92,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// Lowpass returns numTaps coefficients of a linear-phase lowpass with the
// given cutoff in cycles/sample, normalized to the configured DC gain.
func Lowpass(numTaps int, cutoff float64, opts ...Option) ([]float64, error) {
	return lowpass(numTaps, cutoff, newConfig(opts))
}

// Decimation returns an anti-aliasing lowpass for decimation by m with
// tapsPerPhase*m taps.
func Decimation(m, tapsPerPhase int, opts ...Option) ([]float64, error) {
	if m <= 0 {
		return nil, fmt.Errorf("%w: M=%d", ErrInvalidFactor, m)
	}

	cfg := newConfig(opts)

	return lowpass(tapsPerPhase*m, 0.5/float64(m)*cfg.cutoffScale, cfg)
}

// Interpolation returns an anti-imaging lowpass for interpolation by l with
// tapsPerPhase*l taps. Unless overridden, the DC gain is l so the
// zero-stuffed signal keeps its amplitude.
func Interpolation(l, tapsPerPhase int, opts ...Option) ([]float64, error) {
	if l <= 0 {
		return nil, fmt.Errorf("%w: L=%d", ErrInvalidFactor, l)
	}

	cfg := newConfig(append([]Option{WithGain(float64(l))}, opts...))

	return lowpass(tapsPerPhase*l, 0.5/float64(l)*cfg.cutoffScale, cfg)
}

// Quantize converts float64 coefficients to sample type T, saturating
// fixed-point values at the representable range.
func Quantize[T sample.Type](taps []float64) []T {
	return sample.FromFloats[T](taps)
}

func lowpass(numTaps int, cutoff float64, cfg config) ([]float64, error) {
	if numTaps <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTaps, numTaps)
	}

	if !(cutoff > 0 && cutoff < 0.5) {
		return nil, fmt.Errorf("%w: %.6f", ErrInvalidCutoff, cutoff)
	}

	taps := make([]float64, numTaps)

	center := 0.5 * float64(numTaps-1)
	for n := range numTaps {
		taps[n] = 2 * cutoff * sinc(2*cutoff*(float64(n)-center))
	}

	window.Apply(cfg.window, taps, window.WithAlpha(cfg.kaiserBeta))

	var sum float64
	for _, v := range taps {
		sum += v
	}

	if sum == 0 {
		return nil, errors.New("design: designed zero-sum filter")
	}

	vecmath.ScaleBlock(taps, taps, cfg.gain/sum)

	return taps, nil
}

func sinc(x float64) float64 {
	if math.Abs(x) < 1e-12 {
		return 1
	}

	pix := math.Pi * x

	return math.Sin(pix) / pix
}
