package signalops

import (
	"github.com/cwbudde/algo-sigflow/dsp/core"
	"github.com/cwbudde/algo-sigflow/dsp/frame"
	"github.com/cwbudde/algo-sigflow/dsp/node"
	"github.com/cwbudde/algo-sigflow/internal/vecmath"
)

// Gain scales a real frame by a constant factor.
type Gain struct {
	factor float32
	output frame.Real
}

var _ node.Transformer[frame.Real, frame.Real] = (*Gain)(nil)

// NewGain returns a Gain node with the given factor and frame size.
// The factor cannot be changed afterwards.
func NewGain(factor float32, size int) *Gain {
	return &Gain{factor: factor, output: frame.New(size)}
}

// NewGainDB returns a Gain node whose factor is given in decibels
// (20*log10 convention): 0 dB is unity, -6 dB roughly halves the amplitude.
func NewGainDB(db float64, size int) *Gain {
	return NewGain(float32(core.DBToLinear(db)), size)
}

// Factor returns the scale factor.
func (g *Gain) Factor() float32 {
	return g.factor
}

// Size returns the fixed output length.
func (g *Gain) Size() int {
	return len(g.output)
}

// Process sets output[i] = factor * in[i] for the first
// min(len(in), Size()) positions and returns the output frame.
func (g *Gain) Process(in frame.Real) frame.Real {
	n := core.MinLen(len(in), len(g.output))
	vecmath.ScaleBlock(g.output[:n], in[:n], g.factor)
	return g.output
}
