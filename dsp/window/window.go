package window

import (
	"fmt"
	"strings"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeBlackmanHarris
	TypeBlackmanNuttall
	TypeNuttall
	TypeFlatTop
	TypeBartlettHann
	TypeLanczos
	TypeKaiser
	TypeTukey
	TypeGauss
	TypeTriangle
	TypeWelch
)

var names = map[Type]string{
	TypeRectangular:     "rectangular",
	TypeHann:            "hann",
	TypeHamming:         "hamming",
	TypeBlackman:        "blackman",
	TypeBlackmanHarris:  "blackman-harris",
	TypeBlackmanNuttall: "blackman-nuttall",
	TypeNuttall:         "nuttall",
	TypeFlatTop:         "flat-top",
	TypeBartlettHann:    "bartlett-hann",
	TypeLanczos:         "lanczos",
	TypeKaiser:          "kaiser",
	TypeTukey:           "tukey",
	TypeGauss:           "gauss",
	TypeTriangle:        "triangle",
	TypeWelch:           "welch",
}

// defaultAlpha holds the shape parameter used by parametric windows when
// WithAlpha is not given.
var defaultAlpha = map[Type]float64{
	TypeLanczos: 1,
	TypeKaiser:  8.6,
	TypeTukey:   0.5,
	TypeGauss:   2.5,
}

// String returns the lower-case window name.
func (t Type) String() string {
	if n, ok := names[t]; ok {
		return n
	}
	return "unknown"
}

// Parametric reports whether t takes a shape parameter (see [WithAlpha]).
func (t Type) Parametric() bool {
	_, ok := defaultAlpha[t]
	return ok
}

// Types returns all supported window types in declaration order.
func Types() []Type {
	out := make([]Type, 0, len(names))
	for t := TypeRectangular; t <= TypeWelch; t++ {
		out = append(out, t)
	}
	return out
}

// Parse looks up a window type by name (case-insensitive).
func Parse(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range names {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// Option configures window generation.
type Option func(*config)

type config struct {
	alpha    float64
	alphaSet bool
	periodic bool
}

// WithAlpha sets the shape parameter of parametric windows: beta for
// Kaiser, the taper ratio for Tukey, the width for Gauss and the lobe count
// for Lanczos. Other window types ignore it.
func WithAlpha(v float64) Option {
	return func(c *config) {
		c.alpha = v
		c.alphaSet = true
	}
}

// WithPeriodic selects the periodic (DFT-even) form instead of the
// symmetric form. Use it for windows that feed an FFT.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

func newConfig(t Type, opts []Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if !cfg.alphaSet {
		cfg.alpha = defaultAlpha[t]
	}
	return cfg
}

// Generate returns float64 window coefficients of the given length.
// Unknown types and non-positive lengths yield nil.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 || validateType(t) != nil {
		return nil
	}

	cfg := newConfig(t, opts)

	if fn, ok := gonumGenerators[t]; ok {
		return gonumSequence(fn, length, cfg.periodic)
	}

	out := make([]float64, length)
	for i := range out {
		out[i] = evalWindow(t, samplePosition(i, length, cfg.periodic), cfg)
	}
	return out
}

// Coefficients returns size window coefficients for t as float32.
//
// A single-point window is [1]. Non-positive sizes return an empty slice.
// Unknown types return [ErrUnknownType]; an out-of-range shape parameter
// returns [ErrInvalidParameter].
func Coefficients(t Type, size int, opts ...Option) ([]float32, error) {
	if err := validateType(t); err != nil {
		return nil, err
	}
	if err := validateParameter(t, newConfig(t, opts)); err != nil {
		return nil, err
	}
	if size <= 0 {
		return []float32{}, nil
	}
	if size == 1 {
		return []float32{1}, nil
	}

	seq := Generate(t, size, opts...)
	out := make([]float32, size)
	for i, v := range seq {
		out[i] = float32(v)
	}
	return out, nil
}
