package spectrum

import (
	"math"

	"github.com/cwbudde/algo-sigflow/dsp/core"
	"github.com/cwbudde/algo-sigflow/dsp/frame"
	"github.com/cwbudde/algo-sigflow/dsp/node"
	"github.com/cwbudde/algo-vecmath"
)

// scratch holds float64 split real/imaginary parts and the kernel result.
type scratch struct {
	re  []float64
	im  []float64
	out []float64
}

func newScratch(size int) scratch {
	if size < 0 {
		size = 0
	}
	return scratch{
		re:  make([]float64, size),
		im:  make([]float64, size),
		out: make([]float64, size),
	}
}

// split unpacks the first n bins of in and returns n.
func (s *scratch) split(in frame.Complex) int {
	n := core.MinLen(len(in), len(s.re))
	for i := range n {
		s.re[i] = float64(real(in[i]))
		s.im[i] = float64(imag(in[i]))
	}
	return n
}

func (s *scratch) narrow(dst frame.Real, n int) {
	for i := range n {
		dst[i] = float32(s.out[i])
	}
}

// Magnitude computes |X[k]| for each bin.
type Magnitude struct {
	s      scratch
	output frame.Real
}

var _ node.Transformer[frame.Complex, frame.Real] = (*Magnitude)(nil)

// NewMagnitude returns a magnitude node for size bins.
func NewMagnitude(size int) *Magnitude {
	return &Magnitude{s: newScratch(size), output: frame.New(size)}
}

// Size returns the fixed output length.
func (m *Magnitude) Size() int { return len(m.output) }

// Process sets output[k] = |in[k]| for the first min(len(in), Size()) bins
// and returns the output frame.
func (m *Magnitude) Process(in frame.Complex) frame.Real {
	n := m.s.split(in)
	vecmath.Magnitude(m.s.out[:n], m.s.re[:n], m.s.im[:n])
	m.s.narrow(m.output, n)
	return m.output
}

// Power computes |X[k]|^2 for each bin.
type Power struct {
	s      scratch
	output frame.Real
}

var _ node.Transformer[frame.Complex, frame.Real] = (*Power)(nil)

// NewPower returns a power node for size bins.
func NewPower(size int) *Power {
	return &Power{s: newScratch(size), output: frame.New(size)}
}

// Size returns the fixed output length.
func (p *Power) Size() int { return len(p.output) }

// Process sets output[k] = |in[k]|^2 for the first min(len(in), Size())
// bins and returns the output frame.
func (p *Power) Process(in frame.Complex) frame.Real {
	n := p.s.split(in)
	vecmath.Power(p.s.out[:n], p.s.re[:n], p.s.im[:n])
	p.s.narrow(p.output, n)
	return p.output
}

// Phase computes arg(X[k]) in radians, in (-pi, pi].
type Phase struct {
	output frame.Real
}

var _ node.Transformer[frame.Complex, frame.Real] = (*Phase)(nil)

// NewPhase returns a phase node for size bins.
func NewPhase(size int) *Phase {
	return &Phase{output: frame.New(size)}
}

// Size returns the fixed output length.
func (p *Phase) Size() int { return len(p.output) }

// Process sets output[k] = arg(in[k]) for the first min(len(in), Size())
// bins and returns the output frame.
func (p *Phase) Process(in frame.Complex) frame.Real {
	n := core.MinLen(len(in), len(p.output))
	for i := range n {
		p.output[i] = float32(math.Atan2(float64(imag(in[i])), float64(real(in[i]))))
	}
	return p.output
}
