package fft

import "errors"

// ErrInvalidSize is returned when a transform size is not a positive power of two.
var ErrInvalidSize = errors.New("fft: size must be a power of two")
