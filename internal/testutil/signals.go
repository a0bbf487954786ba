// Package testutil provides deterministic test signals in every sample
// representation and comparison helpers for filter tests.
package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-blockfir/dsp/sample"
)

// Sine generates a deterministic sine wave quantized to T.
func Sine[T sample.Type](freqHz, sampleRate, amplitude float64, length int) []T {
	out := make([]T, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = sample.FromFloat[T](amplitude * math.Sin(step*float64(i)))
	}
	return out
}

// Noise generates uniform white noise in [-amplitude, amplitude) with a
// fixed seed, quantized to T.
func Noise[T sample.Type](seed int64, amplitude float64, length int) []T {
	out := make([]T, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = sample.FromFloat[T]((rng.Float64()*2 - 1) * amplitude)
	}
	return out
}

// Impulse generates a sample of the given amplitude at pos, zero elsewhere.
func Impulse[T sample.Type](amplitude float64, length, pos int) []T {
	out := make([]T, length)
	if pos >= 0 && pos < length {
		out[pos] = sample.FromFloat[T](amplitude)
	}
	return out
}

// ZeroStuff inserts factor-1 zeros after every sample of x.
func ZeroStuff[T sample.Type](x []T, factor int) []T {
	out := make([]T, len(x)*factor)
	for i, v := range x {
		out[i*factor] = v
	}
	return out
}
