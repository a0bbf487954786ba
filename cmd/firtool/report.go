package main

import (
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-blockfir/internal/config"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// signalStats summarizes one sample stream.
type signalStats struct {
	count  int
	min    float64
	max    float64
	mean   float64
	stdDev float64
	rms    float64
}

func computeStats(x []float64) signalStats {
	if len(x) == 0 {
		return signalStats{}
	}

	mean, std := stat.MeanStdDev(x, nil)

	return signalStats{
		count:  len(x),
		min:    floats.Min(x),
		max:    floats.Max(x),
		mean:   mean,
		stdDev: std,
		rms:    math.Sqrt(floats.Dot(x, x) / float64(len(x))),
	}
}

func writeReport(w io.Writer, cfg *config.Config, res *runResult) error {
	p := message.NewPrinter(language.English)
	title := cases.Title(language.English)

	p.Fprintf(w, "%s filter, %s samples, backend %s\n",
		title.String(cfg.Variant), cfg.SampleType, res.backend)
	p.Fprintf(w, "taps %d, block %d -> %d, %d blocks in %v\n\n",
		res.taps, res.blockSize, res.outputSize, res.blocks, res.elapsed)

	in := computeStats(res.in)
	out := computeStats(res.out)

	prec := cfg.Precision
	if prec <= 0 {
		prec = 6
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	num := "%." + strconv.Itoa(prec) + "f"
	rowFormat := "%s\t%d\t" + strings.Repeat(num+"\t", 5) + "\n"

	p.Fprintf(tw, "\tSamples\tMin\tMax\tMean\tStd Dev\tRMS\t\n")

	for _, row := range []struct {
		name string
		s    signalStats
	}{{"input", in}, {"output", out}} {
		p.Fprintf(tw, rowFormat, row.name, row.s.count,
			row.s.min, row.s.max, row.s.mean, row.s.stdDev, row.s.rms)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	if in.rms > 0 && out.rms > 0 {
		p.Fprintf(w, "\nRMS gain: %.2f dB\n", 20*math.Log10(out.rms/in.rms))
	}

	if !math.IsNaN(res.toneGain) && res.toneGain > 0 {
		p.Fprintf(w, "Tone gain at %.1f Hz: %.2f dB\n",
			cfg.Signal.Frequency, 20*math.Log10(res.toneGain))
	}

	return nil
}
