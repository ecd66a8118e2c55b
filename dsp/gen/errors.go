package gen

import "errors"

var (
	// ErrNilGenerator is returned when a Node is built without a generator.
	ErrNilGenerator = errors.New("gen: generator must not be nil")

	// ErrInvalidSampleRate is returned for non-positive sample rates.
	ErrInvalidSampleRate = errors.New("gen: sample rate must be > 0")

	// ErrInvalidFrameSize is returned for negative frame sizes.
	ErrInvalidFrameSize = errors.New("gen: frame size must be >= 0")
)
