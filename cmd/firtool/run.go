package main

import (
	"fmt"
	"math"
	"time"

	"github.com/cwbudde/algo-blockfir/dsp/filter/fir"
	"github.com/cwbudde/algo-blockfir/dsp/filter/fir/design"
	"github.com/cwbudde/algo-blockfir/dsp/resample"
	"github.com/cwbudde/algo-blockfir/dsp/sample"
	"github.com/cwbudde/algo-blockfir/dsp/signal"
	"github.com/cwbudde/algo-blockfir/dsp/spectrum"
	"github.com/cwbudde/algo-blockfir/dsp/window"
	"github.com/cwbudde/algo-blockfir/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Filter a generated signal and report output statistics",
		Long: `run builds the block filter described by the configuration, feeds it a
generated signal block by block and prints statistics of input and output.
Flags override the configuration file, which overrides the defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.FromViper(a.v)
			if err != nil {
				return err
			}

			res, err := execute(cfg, a.log)
			if err != nil {
				return err
			}

			return writeReport(cmd.OutOrStdout(), cfg, res)
		},
	}

	flags := cmd.Flags()
	flags.StringP("type", "t", "", "sample type: q15, q31 or f32")
	flags.String("variant", "", "fir, decimate, interpolate or resample")
	flags.String("backend", "", "kernel backend (see 'firtool backends')")
	flags.Int("block-size", 0, "input samples per block")
	flags.Int("factor", 0, "decimation or interpolation factor")
	flags.Int("up", 0, "resampling numerator")
	flags.Int("down", 0, "resampling denominator")
	flags.Int("blocks", 0, "number of blocks to run")

	if err := bindFlags(a.v, flags, map[string]string{
		"sample_type":   "type",
		"variant":       "variant",
		"backend":       "backend",
		"block_size":    "block-size",
		"factor":        "factor",
		"up":            "up",
		"down":          "down",
		"signal.blocks": "blocks",
	}); err != nil {
		panic(err)
	}

	return cmd
}

// bindFlags binds each flag to its configuration key so that a flag set on
// the command line overrides the file and the environment.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) error {
	for key, name := range keys {
		f := flags.Lookup(name)
		if f == nil {
			return fmt.Errorf("no flag %q for key %q", name, key)
		}

		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}

	return nil
}

// runResult is the outcome of one filter run in float64.
type runResult struct {
	backend    string
	taps       int
	blockSize  int
	outputSize int
	blocks     int
	in         []float64
	out        []float64
	elapsed    time.Duration

	// toneGain is the output/input amplitude ratio at the sine frequency,
	// measured over the second half of the run. NaN when not measured.
	toneGain float64
}

func execute(cfg *config.Config, log *zap.Logger) (*runResult, error) {
	switch cfg.SampleType {
	case "q15":
		return executeTyped[sample.Q15](cfg, log)
	case "q31":
		return executeTyped[sample.Q31](cfg, log)
	default:
		return executeTyped[float32](cfg, log)
	}
}

type blockRunner[T sample.Type] interface {
	fir.BlockFilter[T]
	Backend() string
}

func executeTyped[T sample.Type](cfg *config.Config, log *zap.Logger) (*runResult, error) {
	f, taps, err := buildFilter[T](cfg, log)
	if err != nil {
		return nil, err
	}

	log.Info("filter ready",
		zap.String("variant", cfg.Variant),
		zap.String("sample_type", sample.Name[T]()),
		zap.String("backend", f.Backend()),
		zap.Int("taps", taps),
		zap.Int("block_size", f.BlockSize()),
		zap.Int("output_size", f.OutputSize()),
	)

	in, err := generate(cfg, cfg.Signal.Blocks*f.BlockSize())
	if err != nil {
		return nil, err
	}

	src := sample.FromFloats[T](in)
	out := make([]T, cfg.Signal.Blocks*f.OutputSize())

	start := time.Now()

	for b := range cfg.Signal.Blocks {
		f.Filter(
			src[b*f.BlockSize():(b+1)*f.BlockSize()],
			out[b*f.OutputSize():(b+1)*f.OutputSize()],
		)
	}

	elapsed := time.Since(start)

	toneGain := math.NaN()
	if cfg.Signal.Kind == config.SignalSine {
		toneGain, err = measureToneGain(cfg, src, out, float64(f.OutputSize())/float64(f.BlockSize()))
		if err != nil {
			log.Debug("tone gain not measured", zap.Error(err))
			toneGain = math.NaN()
		}
	}

	log.Debug("run complete",
		zap.Int("blocks", cfg.Signal.Blocks),
		zap.Duration("elapsed", elapsed),
	)

	return &runResult{
		backend:    f.Backend(),
		taps:       taps,
		blockSize:  f.BlockSize(),
		outputSize: f.OutputSize(),
		blocks:     cfg.Signal.Blocks,
		in:         sample.ToFloats(src),
		out:        sample.ToFloats(out),
		elapsed:    elapsed,
		toneGain:   toneGain,
	}, nil
}

func buildFilter[T sample.Type](cfg *config.Config, log *zap.Logger) (blockRunner[T], int, error) {
	if cfg.Variant == config.VariantResample {
		q, ok := resample.ParseQuality(cfg.Quality)
		if !ok {
			return nil, 0, fmt.Errorf("unknown quality %q", cfg.Quality)
		}

		r, err := resample.NewRational[T](cfg.Up, cfg.Down, cfg.BlockSize,
			resample.WithQuality(q), resample.WithBackend(cfg.Backend))
		if err != nil {
			return nil, 0, err
		}

		return r, len(r.Prototype()), nil
	}

	factor := 1
	if cfg.Variant == config.VariantDecimate || cfg.Variant == config.VariantInterpolate {
		factor = cfg.Factor
	}

	taps, err := coefficients(cfg, factor, log)
	if err != nil {
		return nil, 0, err
	}

	coeffs := design.Quantize[T](taps)
	opt := fir.WithBackend[T](cfg.Backend)

	var f blockRunner[T]

	switch cfg.Variant {
	case config.VariantDecimate:
		f, err = fir.NewDecimator(coeffs, factor, cfg.BlockSize, opt)
	case config.VariantInterpolate:
		f, err = fir.NewInterpolator(coeffs, factor, cfg.BlockSize, opt)
	default:
		f, err = fir.New(coeffs, cfg.BlockSize, opt)
	}

	if err != nil {
		return nil, 0, err
	}

	return f, len(coeffs), nil
}

func measureToneGain[T sample.Type](cfg *config.Config, in, out []T, rateRatio float64) (float64, error) {
	freq := cfg.Signal.Frequency
	inRate := cfg.Signal.SampleRate

	inAmp, err := spectrum.ToneAmplitude(in[len(in)/2:], freq, inRate)
	if err != nil {
		return 0, err
	}

	outAmp, err := spectrum.ToneAmplitude(out[len(out)/2:], freq, inRate*rateRatio)
	if err != nil {
		return 0, err
	}

	if inAmp == 0 {
		return 0, fmt.Errorf("no input tone at %g Hz", freq)
	}

	return outAmp / inAmp, nil
}

// coefficients returns the configured taps or designs a lowpass. Designed
// interpolation filters are rounded up to a multiple of the factor and
// scaled by it.
func coefficients(cfg *config.Config, factor int, log *zap.Logger) ([]float64, error) {
	if len(cfg.Design.Coefficients) > 0 {
		return cfg.Design.Coefficients, nil
	}

	n := cfg.Design.Taps
	gain := cfg.Design.Gain

	if cfg.Variant == config.VariantInterpolate {
		n = (n + factor - 1) / factor * factor
		gain *= float64(factor)

		if n != cfg.Design.Taps {
			log.Debug("rounded tap count to a multiple of the factor",
				zap.Int("requested", cfg.Design.Taps),
				zap.Int("taps", n),
			)
		}
	}

	win, _ := window.Parse(cfg.Design.Window)

	return design.Lowpass(n, cfg.Design.Cutoff, design.WithWindow(win),
		design.WithKaiserBeta(cfg.Design.KaiserBeta), design.WithGain(gain))
}

func generate(cfg *config.Config, n int) ([]float64, error) {
	g := signal.NewGenerator(
		signal.WithSampleRate(cfg.Signal.SampleRate),
		signal.WithSeed(cfg.Signal.Seed),
	)

	switch cfg.Signal.Kind {
	case config.SignalNoise:
		return g.WhiteNoise(cfg.Signal.Amplitude, n)
	case config.SignalImpulse:
		return g.Impulse(cfg.Signal.Amplitude, n, 0)
	default:
		return g.Sine(cfg.Signal.Frequency, cfg.Signal.Amplitude, n)
	}
}
