package fir

import (
	"fmt"
	"sync"

	_ "github.com/cwbudde/algo-blockfir/dsp/filter/fir/internal/arch/generic" // register generic backend
	"github.com/cwbudde/algo-blockfir/dsp/filter/fir/internal/arch/registry"
	_ "github.com/cwbudde/algo-blockfir/dsp/filter/fir/internal/arch/unrolled" // register unrolled backend
	"github.com/cwbudde/algo-blockfir/dsp/filter/fir/kernel"
	"github.com/cwbudde/algo-blockfir/dsp/sample"
	"github.com/cwbudde/algo-vecmath/cpu"
)

var (
	defaultBackend     *registry.Backend
	defaultBackendOnce sync.Once
)

func initDefaultBackend() {
	defaultBackend = registry.Global.Lookup(cpu.DetectFeatures())
	if defaultBackend == nil {
		panic("fir: no kernel backend registered (missing generic fallback?)")
	}
}

// DefaultBackend returns the name of the backend used when no option
// selects one.
func DefaultBackend() string {
	defaultBackendOnce.Do(initDefaultBackend)
	return defaultBackend.Name
}

// Backends returns the registered backend names, highest priority first.
func Backends() []string {
	entries := registry.Global.Entries()

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}

	return names
}

func kernelFor[T sample.Type](name string) (kernel.Kernel[T], string, error) {
	var b *registry.Backend

	if name == "" {
		defaultBackendOnce.Do(initDefaultBackend)
		b = defaultBackend
	} else {
		b = registry.Global.ByName(name)
		if b == nil {
			return nil, "", fmt.Errorf("%w: %q", ErrUnknownBackend, name)
		}
	}

	var k any

	var zero T
	switch any(zero).(type) {
	case sample.Q15:
		k = b.Q15
	case sample.Q31:
		k = b.Q31
	case float32:
		k = b.F32
	}

	kt, ok := k.(kernel.Kernel[T])
	if !ok {
		return nil, "", fmt.Errorf("%w: %q has no %s kernel", ErrUnknownBackend, b.Name, sample.Name[T]())
	}

	return kt, b.Name, nil
}
