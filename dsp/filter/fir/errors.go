package fir

import (
	"errors"
	"fmt"
)

var (
	// ErrNoTaps indicates an empty coefficient slice.
	ErrNoTaps = errors.New("fir: no coefficients")
	// ErrTooManyTaps indicates more taps than the kernel record can describe.
	ErrTooManyTaps = errors.New("fir: too many coefficients")
	// ErrInvalidBlockSize indicates a non-positive block size.
	ErrInvalidBlockSize = errors.New("fir: invalid block size")
	// ErrInvalidFactor indicates a decimation or interpolation factor outside [1, 255].
	ErrInvalidFactor = errors.New("fir: invalid rate factor")
	// ErrBlockNotMultiple indicates a block size that is not a multiple of M.
	ErrBlockNotMultiple = errors.New("fir: block size must be a multiple of the decimation factor")
	// ErrTapsNotMultiple indicates a tap count that is not a multiple of L.
	ErrTapsNotMultiple = errors.New("fir: tap count must be a multiple of the interpolation factor")
	// ErrUnknownBackend indicates a backend name that is not registered.
	ErrUnknownBackend = errors.New("fir: unknown kernel backend")
)

func checkBlock[T any](variant string, src []T, wantSrc int, dst []T, wantDst int) {
	if len(src) != wantSrc || len(dst) != wantDst {
		panic(fmt.Sprintf("fir: %s: got src=%d dst=%d samples, want src=%d dst=%d",
			variant, len(src), len(dst), wantSrc, wantDst))
	}
}
