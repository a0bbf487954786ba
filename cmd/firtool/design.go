package main

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-blockfir/dsp/filter/fir/design"
	"github.com/cwbudde/algo-blockfir/dsp/sample"
	"github.com/cwbudde/algo-blockfir/dsp/window"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type designFlags struct {
	taps       int
	cutoff     float64
	beta       float64
	gain       float64
	sampleType string
	window     string
	response   int
}

func newDesignCmd(a *app) *cobra.Command {
	var f designFlags

	cmd := &cobra.Command{
		Use:   "design",
		Short: "Print Kaiser-windowed lowpass coefficients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDesign(cmd.OutOrStdout(), a.log, f)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&f.taps, "taps", 63, "number of taps")
	flags.Float64Var(&f.cutoff, "cutoff", 0.1, "cutoff in cycles/sample, (0, 0.5)")
	flags.Float64Var(&f.beta, "beta", design.DefaultKaiserBeta, "Kaiser window beta")
	flags.Float64Var(&f.gain, "gain", 1, "DC gain")
	flags.StringVarP(&f.window, "window", "w", "kaiser", "window: rectangular, hann, hamming, blackman, blackman-harris or kaiser")
	flags.StringVarP(&f.sampleType, "type", "t", "f32", "quantize to q15, q31 or f32")
	flags.IntVar(&f.response, "response", 0, "also print a response summary on an FFT of this size (power of two)")

	return cmd
}

func runDesign(w io.Writer, log *zap.Logger, f designFlags) error {
	win, ok := window.Parse(f.window)
	if !ok {
		return fmt.Errorf("unknown window %q", f.window)
	}

	taps, err := design.Lowpass(f.taps, f.cutoff,
		design.WithWindow(win), design.WithKaiserBeta(f.beta), design.WithGain(f.gain))
	if err != nil {
		return err
	}

	log.Debug("designed lowpass",
		zap.Int("taps", f.taps),
		zap.Float64("cutoff", f.cutoff),
		zap.Stringer("window", win),
		zap.Float64("beta", f.beta),
		zap.String("type", f.sampleType),
	)

	var quantized []string

	switch f.sampleType {
	case "q15":
		quantized = rawValues(design.Quantize[sample.Q15](taps))
	case "q31":
		quantized = rawValues(design.Quantize[sample.Q31](taps))
	case "f32":
		quantized = rawValues(design.Quantize[float32](taps))
	default:
		return fmt.Errorf("unknown sample type %q (want q15, q31 or f32)", f.sampleType)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Tap\tCoefficient\t%s\n", f.sampleType)
	fmt.Fprintf(tw, "---\t-----------\t%s\n", strings.Repeat("-", len(f.sampleType)))

	for i, c := range taps {
		fmt.Fprintf(tw, "%d\t%+.10f\t%s\n", i, c, quantized[i])
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	if f.response == 0 {
		return nil
	}

	mag, err := design.MagnitudeResponse(taps, f.response)
	if err != nil {
		return err
	}

	s := summarizeResponse(mag)

	fmt.Fprintf(w, "\nDC gain:        %.2f dB\n", s.dcDB)
	fmt.Fprintf(w, "-3 dB point:    %.4f cycles/sample\n", s.corner)
	fmt.Fprintf(w, "Nyquist gain:   %.2f dB\n", s.nyquistDB)

	return nil
}

type responseSummary struct {
	dcDB      float64
	corner    float64
	nyquistDB float64
}

func summarizeResponse(mag []float64) responseSummary {
	s := responseSummary{
		dcDB:      toDB(mag[0]),
		nyquistDB: toDB(mag[len(mag)-1]),
		corner:    0.5,
	}

	fftSize := 2 * (len(mag) - 1)
	threshold := mag[0] / math.Sqrt2

	for i, m := range mag {
		if m < threshold {
			s.corner = float64(i) / float64(fftSize)
			break
		}
	}

	return s
}

func toDB(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(v)
}

func rawValues[T sample.Type](v []T) []string {
	out := make([]string, len(v))
	for i, x := range v {
		out[i] = fmt.Sprint(x)
	}

	return out
}
