package vecmath

// LiftReal widens real samples to complex values with a zero imaginary part:
// dst[i] = complex(src[i], 0).
// Slices must have equal length. Panics if lengths differ.
func LiftReal(dst []complex64, src []float32) {
	if len(dst) != len(src) {
		panic("vecmath: slice length mismatch")
	}
	for i := range dst {
		dst[i] = complex(src[i], 0)
	}
}

// RealPart projects complex values onto their real component:
// dst[i] = real(src[i]).
// Slices must have equal length. Panics if lengths differ.
func RealPart(dst []float32, src []complex64) {
	if len(dst) != len(src) {
		panic("vecmath: slice length mismatch")
	}
	for i := range dst {
		dst[i] = real(src[i])
	}
}
