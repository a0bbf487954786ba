// Package resample provides rational sample-rate conversion on fixed-size
// blocks of Q15, Q31 or float32 samples.
//
// A Resampler cascades a polyphase interpolating FIR (up) with a
// decimating FIR (down). Both stages are block filters from package fir, so
// the input block size must yield a whole number of output samples:
// blockSize*up must be a multiple of down after the ratio is reduced.
//
// Quality modes:
//   - QualityFast: lower CPU, lower attenuation
//   - QualityBalanced: default mode
//   - QualityBest: higher attenuation and flatter passband
//
// Default quality/performance matrix:
//
//	mode            taps/phase   nominal stopband
//	QualityFast     16           ~55 dB
//	QualityBalanced 32           ~75 dB
//	QualityBest     64           ~90 dB
//
// Common workflows:
//   - NewRational[T](up, down, blockSize, opts...)
//   - NewForRates[T](inRate, outRate, blockSize, opts...)
//   - Resample(input, up, down, opts...)
package resample
