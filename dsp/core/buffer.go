package core

// MinLen returns the smallest of the given lengths, or 0 when none are given.
// Every node in this module recomputes exactly MinLen(inputs..., size)
// positions of its output.
func MinLen(lengths ...int) int {
	if len(lengths) == 0 {
		return 0
	}
	n := lengths[0]
	for _, l := range lengths[1:] {
		if l < n {
			n = l
		}
	}
	if n < 0 {
		return 0
	}
	return n
}

// CopyInto copies src into dst and returns the number of copied elements.
// Elements of dst beyond the copied prefix are left untouched.
func CopyInto[T any](dst, src []T) int {
	n := MinLen(len(dst), len(src))
	copy(dst[:n], src[:n])
	return n
}
