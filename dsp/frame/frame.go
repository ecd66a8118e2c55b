package frame

// Real is a time-domain frame: one float32 sample per time step.
type Real = []float32

// Complex is a frequency-domain frame: one complex64 value per bin.
type Complex = []complex64

// New returns a zero-filled Real frame of the given size.
// Negative sizes yield an empty frame.
func New(size int) Real {
	if size < 0 {
		size = 0
	}
	return make(Real, size)
}

// NewComplex returns a zero-filled Complex frame of the given size.
// Negative sizes yield an empty frame.
func NewComplex(size int) Complex {
	if size < 0 {
		size = 0
	}
	return make(Complex, size)
}

// Clone returns a deep copy of f that is independent of the node that
// produced it.
func Clone(f Real) Real {
	if f == nil {
		return nil
	}
	out := make(Real, len(f))
	copy(out, f)
	return out
}

// CloneComplex returns a deep copy of f.
func CloneComplex(f Complex) Complex {
	if f == nil {
		return nil
	}
	out := make(Complex, len(f))
	copy(out, f)
	return out
}

// Zero sets all samples to 0.
func Zero(f Real) {
	for i := range f {
		f[i] = 0
	}
}

// ZeroComplex sets all bins to 0.
func ZeroComplex(f Complex) {
	for i := range f {
		f[i] = 0
	}
}
