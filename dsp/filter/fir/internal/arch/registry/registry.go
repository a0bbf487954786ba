package registry

import (
	"slices"
	"sync"

	"github.com/cwbudde/algo-blockfir/dsp/filter/fir/kernel"
	"github.com/cwbudde/algo-blockfir/dsp/sample"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// Backend is one registered set of FIR kernels, one per sample type.
type Backend struct {
	Name      string
	SIMDLevel cpu.SIMDLevel
	Priority  int

	Q15 kernel.Kernel[sample.Q15]
	Q31 kernel.Kernel[sample.Q31]
	F32 kernel.Kernel[float32]
}

// Registry stores available backends.
type Registry struct {
	mu      sync.RWMutex
	entries []Backend
	sorted  bool
}

// Global is the default FIR kernel registry.
var Global = &Registry{}

// Register adds a backend.
func (r *Registry) Register(b Backend) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, b)
	r.sorted = false
}

// Lookup returns the highest-priority backend supported by features.
func (r *Registry) Lookup(features cpu.Features) *Backend {
	r.sort()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if cpu.Supports(features, r.entries[i].SIMDLevel) {
			b := r.entries[i]
			return &b
		}
	}

	return nil
}

// ByName returns the backend registered under name.
func (r *Registry) ByName(name string) *Backend {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Name == name {
			b := r.entries[i]
			return &b
		}
	}

	return nil
}

// Entries returns a copy of the backends, highest priority first.
func (r *Registry) Entries() []Backend {
	r.sort()

	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.entries)
}

func (r *Registry) sort() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sorted {
		return
	}

	slices.SortStableFunc(r.entries, func(a, b Backend) int {
		return b.Priority - a.Priority
	})
	r.sorted = true
}
