package window

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownType is returned for a [Type] this package does not implement.
	ErrUnknownType = errors.New("window: unknown type")
	// ErrInvalidParameter is returned for an out-of-range shape parameter.
	ErrInvalidParameter = errors.New("window: invalid shape parameter")

	errEmptyCoeffs      = errors.New("window: coefficients must not be empty")
	errZeroCoherentGain = errors.New("window: coherent gain is zero")
)

func validateType(t Type) error {
	if _, ok := names[t]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}
	return nil
}

func validateParameter(t Type, cfg config) error {
	switch t {
	case TypeKaiser:
		if cfg.alpha < 0 {
			return fmt.Errorf("%w: kaiser beta must be >= 0: %f", ErrInvalidParameter, cfg.alpha)
		}
	case TypeTukey:
		if cfg.alpha < 0 || cfg.alpha > 1 {
			return fmt.Errorf("%w: tukey alpha must be in [0,1]: %f", ErrInvalidParameter, cfg.alpha)
		}
	case TypeGauss, TypeLanczos:
		if cfg.alpha <= 0 {
			return fmt.Errorf("%w: %s alpha must be > 0: %f", ErrInvalidParameter, t, cfg.alpha)
		}
	}
	return nil
}
