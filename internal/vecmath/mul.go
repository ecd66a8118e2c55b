package vecmath

// MulBlock performs element-wise multiplication: dst[i] = a[i] * b[i].
// Slices must have equal length. Panics if lengths differ.
func MulBlock(dst, a, b []float32) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecmath: slice length mismatch")
	}
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// MulComplexBlock scales complex values by real coefficients:
// dst[i] = src[i] * coeffs[i].
// Slices must have equal length. Panics if lengths differ.
func MulComplexBlock(dst, src []complex64, coeffs []float32) {
	if len(src) != len(coeffs) || len(dst) != len(src) {
		panic("vecmath: slice length mismatch")
	}
	for i := range dst {
		c := coeffs[i]
		dst[i] = complex(real(src[i])*c, imag(src[i])*c)
	}
}
