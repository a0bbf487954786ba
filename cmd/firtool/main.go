// Command firtool designs FIR coefficients and runs block FIR filters over
// generated signals.
//
// Usage:
//
//	firtool design [flags]
//	firtool run [--config run.yaml] [flags]
//	firtool backends
//
// Examples:
//
//	firtool design --taps 31 --cutoff 0.125 --type q15
//	firtool design --taps 63 --cutoff 0.1 --response 1024
//	firtool run --config run.yaml --verbose
//	FIRTOOL_SAMPLE_TYPE=f32 firtool run --variant decimate --factor 4
//	firtool backends
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
