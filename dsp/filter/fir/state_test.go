package fir

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cwbudde/algo-blockfir/dsp/sample"
)

var sizes = []struct {
	taps, block int
}{
	{1, 1}, {1, 8}, {4, 4}, {7, 3}, {32, 64}, {255, 1},
}

func requireZeroDelay[T sample.Type](t *testing.T, delay []T, taps, block int) {
	t.Helper()

	if len(delay) != taps+block-1 {
		t.Fatalf("delay line length = %d, want %d", len(delay), taps+block-1)
	}

	for i, v := range delay {
		if v != 0 {
			t.Fatalf("delay[%d] = %v, want 0", i, v)
		}
	}
}

func testDelayLineSized[T sample.Type](t *testing.T) {
	for _, sz := range sizes {
		t.Run(fmt.Sprintf("taps=%d/block=%d", sz.taps, sz.block), func(t *testing.T) {
			coeffs := make([]T, sz.taps)
			coeffs[0] = sample.FromFloat[T](0.5)

			f, err := New(coeffs, sz.block)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			requireZeroDelay(t, f.DelayLine(), sz.taps, sz.block)

			d, err := NewDecimator(coeffs, 1, sz.block)
			if err != nil {
				t.Fatalf("NewDecimator() error = %v", err)
			}
			requireZeroDelay(t, d.DelayLine(), sz.taps, sz.block)

			ip, err := NewInterpolator(coeffs, 1, sz.block)
			if err != nil {
				t.Fatalf("NewInterpolator() error = %v", err)
			}
			requireZeroDelay(t, ip.DelayLine(), sz.taps, sz.block)
		})
	}
}

func TestDelayLineSized(t *testing.T) {
	t.Run("q15", testDelayLineSized[sample.Q15])
	t.Run("q31", testDelayLineSized[sample.Q31])
	t.Run("f32", testDelayLineSized[float32])
}

func TestConstructionErrors(t *testing.T) {
	four := []float32{0.25, 0.25, 0.25, 0.25}

	tests := []struct {
		name string
		make func() error
		want error
	}{
		{"no taps", func() error { _, err := New([]float32{}, 4); return err }, ErrNoTaps},
		{"nil taps", func() error { _, err := New[float32](nil, 4); return err }, ErrNoTaps},
		{"too many taps", func() error { _, err := New(make([]float32, 1<<16), 4); return err }, ErrTooManyTaps},
		{"zero block", func() error { _, err := New(four, 0); return err }, ErrInvalidBlockSize},
		{"negative block", func() error { _, err := New(four, -2); return err }, ErrInvalidBlockSize},
		{"decimator zero M", func() error { _, err := NewDecimator(four, 0, 4); return err }, ErrInvalidFactor},
		{"decimator M too large", func() error { _, err := NewDecimator(four, 256, 512); return err }, ErrInvalidFactor},
		{"decimator block not multiple", func() error { _, err := NewDecimator(four, 3, 4); return err }, ErrBlockNotMultiple},
		{"decimator no taps", func() error { _, err := NewDecimator([]float32{}, 2, 4); return err }, ErrNoTaps},
		{"interpolator zero L", func() error { _, err := NewInterpolator(four, 0, 4); return err }, ErrInvalidFactor},
		{"interpolator taps not multiple", func() error { _, err := NewInterpolator(four, 3, 4); return err }, ErrTapsNotMultiple},
		{"interpolator zero block", func() error { _, err := NewInterpolator(four, 2, 0); return err }, ErrInvalidBlockSize},
		{"unknown backend", func() error { _, err := New(four, 4, WithBackend[float32]("nope")); return err }, ErrUnknownBackend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.make()
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMaxTapsAccepted(t *testing.T) {
	f, err := New(make([]sample.Q15, 1<<16-1), 1)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if f.Taps() != 1<<16-1 {
		t.Fatalf("Taps() = %d", f.Taps())
	}
}

func TestCoefficientsCopied(t *testing.T) {
	coeffs := []float32{0.25, 0.5, 0.25}

	f, err := New(coeffs, 2)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	coeffs[0] = 999
	if f.Coefficients()[0] != 0.25 {
		t.Fatal("New did not copy coefficients")
	}

	c := f.Coefficients()
	c[1] = 999
	if f.Coefficients()[1] != 0.5 {
		t.Fatal("Coefficients did not return a copy")
	}
}
