// Package fir provides block FIR filters over Q15, Q31 and float32 samples.
//
// Three variants share one delay-line layout of taps+blockSize-1 samples:
//
//   - [Filter]: blockSize in, blockSize out
//   - [Decimator]: blockSize in, blockSize/M out
//   - [Interpolator]: blockSize in, blockSize*L out
//
// Sizes are fixed at construction. Construction validates them and returns an
// error; a filtering call with mismatched buffer lengths is a programming
// error and panics. Filtering does not allocate.
//
// The convolution itself is delegated to a [kernel.Kernel]. By default the
// highest-priority registered backend is used; [WithBackend] selects one by
// name and [WithKernel] plugs in an external implementation.
//
// [Direct] is an unblocked per-sample filter with the same arithmetic, useful
// as a streaming reference and for frequency-response analysis.
package fir
