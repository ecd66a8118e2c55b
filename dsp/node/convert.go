package node

import (
	"github.com/cwbudde/algo-sigflow/dsp/core"
	"github.com/cwbudde/algo-sigflow/dsp/frame"
	"github.com/cwbudde/algo-sigflow/internal/vecmath"
)

// RealToComplex lifts time-domain samples into complex values with a zero
// imaginary part.
type RealToComplex struct {
	output frame.Complex
}

var _ Transformer[frame.Real, frame.Complex] = (*RealToComplex)(nil)

// NewRealToComplex returns a node whose output frame holds size bins.
func NewRealToComplex(size int) *RealToComplex {
	return &RealToComplex{output: frame.NewComplex(size)}
}

// Size returns the fixed output length.
func (n *RealToComplex) Size() int {
	return len(n.output)
}

// Process sets output[i] = complex(in[i], 0) for the first
// min(len(in), Size()) positions and returns the output frame.
func (n *RealToComplex) Process(in frame.Real) frame.Complex {
	k := core.MinLen(len(in), len(n.output))
	vecmath.LiftReal(n.output[:k], in[:k])
	return n.output
}

// ComplexToReal projects complex values onto their real part. The imaginary
// part is discarded.
type ComplexToReal struct {
	output frame.Real
}

var _ Transformer[frame.Complex, frame.Real] = (*ComplexToReal)(nil)

// NewComplexToReal returns a node whose output frame holds size samples.
func NewComplexToReal(size int) *ComplexToReal {
	return &ComplexToReal{output: frame.New(size)}
}

// Size returns the fixed output length.
func (n *ComplexToReal) Size() int {
	return len(n.output)
}

// Process sets output[i] = real(in[i]) for the first min(len(in), Size())
// positions and returns the output frame.
func (n *ComplexToReal) Process(in frame.Complex) frame.Real {
	k := core.MinLen(len(in), len(n.output))
	vecmath.RealPart(n.output[:k], in[:k])
	return n.output
}
