package window

import (
	"github.com/cwbudde/algo-sigflow/dsp/core"
	"github.com/cwbudde/algo-sigflow/dsp/frame"
	"github.com/cwbudde/algo-sigflow/dsp/node"
	"github.com/cwbudde/algo-sigflow/internal/vecmath"
)

// Node applies a window to real frames.
type Node struct {
	typ    Type
	coeffs []float32
	output frame.Real
}

var _ node.Transformer[frame.Real, frame.Real] = (*Node)(nil)

// New returns a window node of type t and the given frame size.
func New(t Type, size int, opts ...Option) (*Node, error) {
	coeffs, err := Coefficients(t, size, opts...)
	if err != nil {
		return nil, err
	}
	return &Node{typ: t, coeffs: coeffs, output: frame.New(len(coeffs))}, nil
}

// Type returns the window type.
func (n *Node) Type() Type { return n.typ }

// Size returns the fixed output length.
func (n *Node) Size() int { return len(n.output) }

// Coefficients returns the window coefficients. The slice must not be modified.
func (n *Node) Coefficients() []float32 { return n.coeffs }

// Process sets output[i] = in[i] * w[i] for the first min(len(in), Size())
// positions and returns the output frame.
func (n *Node) Process(in frame.Real) frame.Real {
	k := core.MinLen(len(in), len(n.output))
	vecmath.MulBlock(n.output[:k], in[:k], n.coeffs[:k])
	return n.output
}

// ComplexNode applies a window to complex frames, scaling real and
// imaginary parts alike.
type ComplexNode struct {
	typ    Type
	coeffs []float32
	output frame.Complex
}

var _ node.Transformer[frame.Complex, frame.Complex] = (*ComplexNode)(nil)

// NewComplex returns a complex window node of type t and the given size.
func NewComplex(t Type, size int, opts ...Option) (*ComplexNode, error) {
	coeffs, err := Coefficients(t, size, opts...)
	if err != nil {
		return nil, err
	}
	return &ComplexNode{typ: t, coeffs: coeffs, output: frame.NewComplex(len(coeffs))}, nil
}

// Type returns the window type.
func (n *ComplexNode) Type() Type { return n.typ }

// Size returns the fixed output length.
func (n *ComplexNode) Size() int { return len(n.output) }

// Process sets output[i] = in[i] * w[i] for the first min(len(in), Size())
// positions and returns the output frame.
func (n *ComplexNode) Process(in frame.Complex) frame.Complex {
	k := core.MinLen(len(in), len(n.output))
	vecmath.MulComplexBlock(n.output[:k], in[:k], n.coeffs[:k])
	return n.output
}
