package fft

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// transform holds the single-precision plan and the staged input buffer
// shared by all node shapes in this package.
type transform struct {
	plan    *algofft.Plan[complex64]
	staged  []complex64
	inverse bool
}

func newTransform(size int, inverse bool) (*transform, error) {
	if !isPowerOf2(size) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	plan, err := algofft.NewPlan32(size)
	if err != nil {
		return nil, fmt.Errorf("fft: failed to create plan of size %d: %w", size, err)
	}

	return &transform{
		plan:    plan,
		staged:  make([]complex64, size),
		inverse: inverse,
	}, nil
}

func isPowerOf2(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}

func (t *transform) size() int {
	return len(t.staged)
}

// stageComplex copies the first min(len(in), size) values into the staged input.
func (t *transform) stageComplex(in []complex64) {
	copy(t.staged, in)
}

// stageReal copies the first min(len(in), size) samples into the staged input.
func (t *transform) stageReal(in []float32) {
	n := min(len(in), len(t.staged))
	for i := range n {
		t.staged[i] = complex(in[i], 0)
	}
}

// run transforms the staged input into dst. It reports false if the plan
// rejected the buffers; both have the plan size, so that does not happen in
// practice and the caller keeps its previous output.
func (t *transform) run(dst []complex64) bool {
	var err error
	if t.inverse {
		err = t.plan.Inverse(dst, t.staged)
	} else {
		err = t.plan.Forward(dst, t.staged)
	}
	return err == nil
}
