// Package spectrum measures single frequency components of Q15, Q31 or
// float32 sample streams with the Goertzel algorithm.
package spectrum
