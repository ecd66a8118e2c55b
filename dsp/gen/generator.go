package gen

import (
	"math"
	"math/rand"
)

// Generator evaluates a signal at time t, in seconds.
type Generator interface {
	At(t float64) float32
}

// GeneratorFunc adapts a function to the [Generator] interface.
type GeneratorFunc func(t float64) float32

// At implements [Generator].
func (f GeneratorFunc) At(t float64) float32 {
	return f(t)
}

// Sine returns a unit-amplitude sine at freqHz with zero phase.
func Sine(freqHz float64) Generator {
	return SineAmp(freqHz, 1)
}

// SineAmp returns a sine at freqHz scaled by amplitude.
func SineAmp(freqHz, amplitude float64) Generator {
	w := 2 * math.Pi * freqHz
	return GeneratorFunc(func(t float64) float32 {
		return float32(amplitude * math.Sin(w*t))
	})
}

// Step returns 0 before time at and 1 from then on.
func Step(at float64) Generator {
	return GeneratorFunc(func(t float64) float32 {
		if t < at {
			return 0
		}
		return 1
	})
}

// Impulse returns 1 at t == 0 and 0 everywhere else.
func Impulse() Generator {
	return GeneratorFunc(func(t float64) float32 {
		if t == 0 {
			return 1
		}
		return 0
	})
}

// DC returns a constant signal.
func DC(value float32) Generator {
	return GeneratorFunc(func(float64) float32 {
		return value
	})
}

// Noise returns deterministic white noise in [-amplitude, amplitude].
//
// Noise ignores t: each call draws the next value from a generator seeded
// with seed, so two Noise generators with the same seed emit the same
// sequence. Negative amplitudes are treated as their absolute value.
func Noise(amplitude float64, seed int64) Generator {
	amplitude = math.Abs(amplitude)
	rng := rand.New(rand.NewSource(seed))
	return GeneratorFunc(func(float64) float32 {
		return float32((rng.Float64()*2 - 1) * amplitude)
	})
}
