package fir

import (
	"github.com/cwbudde/algo-blockfir/dsp/filter/fir/kernel"
	"github.com/cwbudde/algo-blockfir/dsp/sample"
)

type config[T sample.Type] struct {
	kernel  kernel.Kernel[T]
	backend string
}

// Option configures a filter at construction.
type Option[T sample.Type] func(*config[T])

// WithKernel uses k instead of a registered backend.
func WithKernel[T sample.Type](k kernel.Kernel[T]) Option[T] {
	return func(cfg *config[T]) {
		cfg.kernel = k
	}
}

// WithBackend selects a registered backend by name (see [Backends]).
func WithBackend[T sample.Type](name string) Option[T] {
	return func(cfg *config[T]) {
		cfg.backend = name
	}
}

// customBackend is reported by Backend() for kernels passed via WithKernel.
const customBackend = "custom"

func resolve[T sample.Type](opts []Option[T]) (kernel.Kernel[T], string, error) {
	var cfg config[T]

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.kernel != nil {
		return cfg.kernel, customBackend, nil
	}

	return kernelFor[T](cfg.backend)
}
