package resample

// Quality controls default anti-aliasing filter settings.
type Quality int

const (
	// QualityFast prioritizes lower CPU usage.
	QualityFast Quality = iota
	// QualityBalanced is the default quality/performance trade-off.
	QualityBalanced
	// QualityBest prioritizes stopband attenuation and passband flatness.
	QualityBest
)

// String returns the lower-case quality name.
func (q Quality) String() string {
	switch q {
	case QualityFast:
		return "fast"
	case QualityBest:
		return "best"
	default:
		return "balanced"
	}
}

// ParseQuality maps a quality name back to its mode.
func ParseQuality(name string) (Quality, bool) {
	switch name {
	case "fast":
		return QualityFast, true
	case "balanced", "":
		return QualityBalanced, true
	case "best":
		return QualityBest, true
	}

	return QualityBalanced, false
}

// Profile exposes default filter parameters for each quality mode.
type Profile struct {
	TapsPerPhase      int
	CutoffScale       float64
	KaiserBeta        float64
	NominalStopbandDB float64
}

// QualityProfile returns the default profile used by quality mode q.
func QualityProfile(q Quality) Profile {
	switch q {
	case QualityFast:
		return Profile{TapsPerPhase: 16, CutoffScale: 0.88, KaiserBeta: 5.0, NominalStopbandDB: 55}
	case QualityBest:
		return Profile{TapsPerPhase: 64, CutoffScale: 0.96, KaiserBeta: 9.0, NominalStopbandDB: 90}
	default:
		return Profile{TapsPerPhase: 32, CutoffScale: 0.92, KaiserBeta: 7.5, NominalStopbandDB: 75}
	}
}

type config struct {
	quality      Quality
	tapsPerPhase int
	cutoffScale  float64
	kaiserBeta   float64
	maxDen       int
	backend      string
}

// Option configures the resampler.
type Option func(*config)

// WithQuality selects a predefined anti-aliasing quality mode.
func WithQuality(q Quality) Option {
	return func(cfg *config) {
		cfg.quality = q
	}
}

// WithTapsPerPhase overrides taps per polyphase branch.
func WithTapsPerPhase(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.tapsPerPhase = n
		}
	}
}

// WithCutoffScale overrides normalized cutoff scaling in range (0, 1].
// 1.0 equals the theoretical anti-aliasing cutoff.
func WithCutoffScale(v float64) Option {
	return func(cfg *config) {
		if v > 0 && v <= 1 {
			cfg.cutoffScale = v
		}
	}
}

// WithKaiserBeta overrides the Kaiser window beta parameter.
func WithKaiserBeta(beta float64) Option {
	return func(cfg *config) {
		if beta > 0 {
			cfg.kaiserBeta = beta
		}
	}
}

// WithMaxDenominator caps denominator size for rate-ratio approximation.
// Values above 255 are clamped because rate factors are limited to 255.
func WithMaxDenominator(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.maxDen = n
		}
	}
}

// WithBackend selects the FIR kernel backend by name.
func WithBackend(name string) Option {
	return func(cfg *config) {
		cfg.backend = name
	}
}

func newConfig(opts []Option) config {
	cfg := config{
		quality: QualityBalanced,
		maxDen:  maxFactor,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	p := QualityProfile(cfg.quality)
	if cfg.tapsPerPhase <= 0 {
		cfg.tapsPerPhase = p.TapsPerPhase
	}

	if cfg.cutoffScale <= 0 || cfg.cutoffScale > 1 {
		cfg.cutoffScale = p.CutoffScale
	}

	if cfg.kaiserBeta <= 0 {
		cfg.kaiserBeta = p.KaiserBeta
	}

	if cfg.maxDen <= 0 || cfg.maxDen > maxFactor {
		cfg.maxDen = maxFactor
	}

	return cfg
}
