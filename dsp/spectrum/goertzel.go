package spectrum

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-blockfir/dsp/sample"
)

// Goertzel evaluates one DFT term of everything processed since the last
// Reset. Input samples are converted to float64 before accumulation.
//
// Spectral leakage occurs if the target frequency does not align with an
// integer number of cycles within the processed block.
type Goertzel[T sample.Type] struct {
	frequency  float64
	sampleRate float64
	coeff      float64
	s0, s1     float64
	n          int
}

// NewGoertzel creates an analyzer for frequency in [0, sampleRate/2].
func NewGoertzel[T sample.Type](frequency, sampleRate float64) (*Goertzel[T], error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("goertzel: sample rate must be > 0: %v", sampleRate)
	}

	if frequency < 0 || frequency > sampleRate/2 || math.IsNaN(frequency) {
		return nil, fmt.Errorf("goertzel: frequency must be between 0 and sampleRate/2: %v", frequency)
	}

	return &Goertzel[T]{
		frequency:  frequency,
		sampleRate: sampleRate,
		coeff:      2 * math.Cos(2*math.Pi*frequency/sampleRate),
	}, nil
}

// Reset clears the internal state.
func (g *Goertzel[T]) Reset() {
	g.s0, g.s1, g.n = 0, 0, 0
}

// ProcessBlock updates the internal state with a block of samples.
func (g *Goertzel[T]) ProcessBlock(input []T) {
	s0, s1 := g.s0, g.s1

	coeff := g.coeff
	for _, v := range input {
		s := sample.ToFloat(v) + coeff*s0 - s1
		s1 = s0
		s0 = s
	}

	g.s0, g.s1 = s0, s1
	g.n += len(input)
}

// Power returns |X(f)|^2 over the processed samples.
func (g *Goertzel[T]) Power() float64 {
	return g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
}

// Amplitude estimates the peak amplitude of a sinusoid at the target
// frequency, 2|X(f)|/N. It is 0 before any sample is processed.
func (g *Goertzel[T]) Amplitude() float64 {
	p := g.Power()
	if p <= 0 || g.n == 0 {
		return 0
	}

	return 2 * math.Sqrt(p) / float64(g.n)
}

// Frequency returns the target frequency.
func (g *Goertzel[T]) Frequency() float64 { return g.frequency }

// SampleRate returns the sample rate.
func (g *Goertzel[T]) SampleRate() float64 { return g.sampleRate }

// ToneAmplitude is a one-shot Amplitude over input.
func ToneAmplitude[T sample.Type](input []T, frequency, sampleRate float64) (float64, error) {
	g, err := NewGoertzel[T](frequency, sampleRate)
	if err != nil {
		return 0, err
	}

	g.ProcessBlock(input)

	return g.Amplitude(), nil
}
