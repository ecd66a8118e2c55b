package signalops

import (
	"github.com/cwbudde/algo-sigflow/dsp/core"
	"github.com/cwbudde/algo-sigflow/dsp/frame"
	"github.com/cwbudde/algo-sigflow/internal/vecmath"
)

// Sum adds two real frames elementwise.
//
// Sum takes two inputs, so it does not implement node.Transformer; callers
// invoke Process directly.
type Sum struct {
	output frame.Real
}

// NewSum returns a Sum node with the given frame size.
func NewSum(size int) *Sum {
	return &Sum{output: frame.New(size)}
}

// Size returns the fixed output length.
func (s *Sum) Size() int {
	return len(s.output)
}

// Process sets output[i] = a[i] + b[i] for the first
// min(len(a), len(b), Size()) positions and returns the output frame.
func (s *Sum) Process(a, b frame.Real) frame.Real {
	n := core.MinLen(len(a), len(b), len(s.output))
	vecmath.AddBlock(s.output[:n], a[:n], b[:n])
	return s.output
}
