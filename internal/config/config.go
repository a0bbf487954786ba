// Package config loads the filter run description used by firtool.
//
// A run is described in YAML. Every key has a default and can be
// overridden from the environment with the FIRTOOL_ prefix, dots replaced by
// underscores (FIRTOOL_DESIGN_TAPS=127).
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cwbudde/algo-blockfir/dsp/window"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "FIRTOOL"

var (
	// ErrInvalidConfig is wrapped by every validation failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Variant names accepted in the variant key.
const (
	VariantFIR         = "fir"
	VariantDecimate    = "decimate"
	VariantInterpolate = "interpolate"
	VariantResample    = "resample"
)

// Signal kinds accepted in signal.kind.
const (
	SignalSine    = "sine"
	SignalNoise   = "noise"
	SignalImpulse = "impulse"
)

// Config describes one filter run.
type Config struct {
	SampleType string `mapstructure:"sample_type" yaml:"sample_type"`
	Variant    string `mapstructure:"variant" yaml:"variant"`
	Backend    string `mapstructure:"backend" yaml:"backend"`
	BlockSize  int    `mapstructure:"block_size" yaml:"block_size"`
	Factor     int    `mapstructure:"factor" yaml:"factor"`
	Up         int    `mapstructure:"up" yaml:"up"`
	Down       int    `mapstructure:"down" yaml:"down"`
	Quality    string `mapstructure:"quality" yaml:"quality"`
	Design     Design `mapstructure:"design" yaml:"design"`
	Signal     Signal `mapstructure:"signal" yaml:"signal"`
	LogLevel   string `mapstructure:"log_level" yaml:"log_level"`
	Precision  int    `mapstructure:"precision" yaml:"precision"`
}

// Design selects the coefficients: explicit values win over a lowpass design.
type Design struct {
	Coefficients []float64 `mapstructure:"coefficients" yaml:"coefficients,omitempty"`
	Taps         int       `mapstructure:"taps" yaml:"taps"`
	Cutoff       float64   `mapstructure:"cutoff" yaml:"cutoff"`
	Window       string    `mapstructure:"window" yaml:"window"`
	KaiserBeta   float64   `mapstructure:"kaiser_beta" yaml:"kaiser_beta"`
	Gain         float64   `mapstructure:"gain" yaml:"gain"`
}

// Signal describes the generated input.
type Signal struct {
	Kind       string  `mapstructure:"kind" yaml:"kind"`
	Frequency  float64 `mapstructure:"frequency" yaml:"frequency"`
	SampleRate float64 `mapstructure:"sample_rate" yaml:"sample_rate"`
	Amplitude  float64 `mapstructure:"amplitude" yaml:"amplitude"`
	Blocks     int     `mapstructure:"blocks" yaml:"blocks"`
	Seed       int64   `mapstructure:"seed" yaml:"seed"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("sample_type", "q15")
	v.SetDefault("variant", VariantFIR)
	v.SetDefault("backend", "")
	v.SetDefault("block_size", 64)
	v.SetDefault("factor", 1)
	v.SetDefault("up", 1)
	v.SetDefault("down", 1)
	v.SetDefault("quality", "balanced")
	v.SetDefault("log_level", "info")
	v.SetDefault("precision", 6)

	v.SetDefault("design.coefficients", []float64{})
	v.SetDefault("design.taps", 63)
	v.SetDefault("design.cutoff", 0.1)
	v.SetDefault("design.window", "kaiser")
	v.SetDefault("design.kaiser_beta", 7.5)
	v.SetDefault("design.gain", 1.0)

	v.SetDefault("signal.kind", SignalSine)
	v.SetDefault("signal.frequency", 1000.0)
	v.SetDefault("signal.sample_rate", 48000.0)
	v.SetDefault("signal.amplitude", 0.5)
	v.SetDefault("signal.blocks", 16)
	v.SetDefault("signal.seed", 1)
}

// NewViper returns a viper instance with defaults and environment
// overrides configured.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads path (YAML) if non-empty, applies environment overrides and
// validates the result.
func Load(path string) (*Config, error) {
	v := NewViper()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	return FromViper(v)
}

// FromViper decodes and validates the configuration held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unable to decode configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks ranges and names. It does not check combinations the
// filter constructors already reject, such as a block size that is not a
// multiple of the decimation factor.
func (c *Config) Validate() error {
	switch c.SampleType {
	case "q15", "q31", "f32":
	default:
		return fmt.Errorf("%w: unknown sample_type %q (want q15, q31 or f32)", ErrInvalidConfig, c.SampleType)
	}

	switch c.Variant {
	case VariantFIR, VariantDecimate, VariantInterpolate, VariantResample:
	default:
		return fmt.Errorf("%w: unknown variant %q", ErrInvalidConfig, c.Variant)
	}

	if c.BlockSize <= 0 {
		return fmt.Errorf("%w: block_size must be > 0, got %d", ErrInvalidConfig, c.BlockSize)
	}

	if (c.Variant == VariantDecimate || c.Variant == VariantInterpolate) && (c.Factor < 1 || c.Factor > 255) {
		return fmt.Errorf("%w: factor must be in 1..255, got %d", ErrInvalidConfig, c.Factor)
	}

	if c.Variant == VariantResample && (c.Up <= 0 || c.Down <= 0) {
		return fmt.Errorf("%w: up and down must be > 0, got %d/%d", ErrInvalidConfig, c.Up, c.Down)
	}

	if len(c.Design.Coefficients) == 0 && c.Variant != VariantResample {
		if c.Design.Taps <= 0 {
			return fmt.Errorf("%w: design.taps must be > 0 when no coefficients are given", ErrInvalidConfig)
		}

		if !(c.Design.Cutoff > 0 && c.Design.Cutoff < 0.5) {
			return fmt.Errorf("%w: design.cutoff must be in (0, 0.5), got %g", ErrInvalidConfig, c.Design.Cutoff)
		}

		if _, ok := window.Parse(c.Design.Window); !ok {
			return fmt.Errorf("%w: unknown design.window %q", ErrInvalidConfig, c.Design.Window)
		}
	}

	switch c.Signal.Kind {
	case SignalSine, SignalNoise, SignalImpulse:
	default:
		return fmt.Errorf("%w: unknown signal.kind %q", ErrInvalidConfig, c.Signal.Kind)
	}

	if c.Signal.Blocks <= 0 {
		return fmt.Errorf("%w: signal.blocks must be > 0, got %d", ErrInvalidConfig, c.Signal.Blocks)
	}

	if c.Signal.SampleRate <= 0 {
		return fmt.Errorf("%w: signal.sample_rate must be > 0, got %g", ErrInvalidConfig, c.Signal.SampleRate)
	}

	return nil
}

// Write encodes c as YAML.
func (c *Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}

	return enc.Close()
}

// Parse decodes YAML produced by Write without consulting defaults or the
// environment.
func Parse(r io.Reader) (*Config, error) {
	cfg := &Config{}
	if err := yaml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
