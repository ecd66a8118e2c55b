package gen

import (
	"fmt"

	"github.com/cwbudde/algo-sigflow/dsp/core"
	"github.com/cwbudde/algo-sigflow/dsp/frame"
	"github.com/cwbudde/algo-sigflow/dsp/node"
)

// Node samples a [Generator] into fixed-size real frames.
type Node struct {
	gen        Generator
	sampleRate float64
	position   int64 // index of the next sample
	output     frame.Real
}

var _ node.Producer[frame.Real] = (*Node)(nil)

// NewNode creates a Node for g. Sample rate and frame size come from the
// processor options (defaults: 48 kHz, 1024 samples).
func NewNode(g Generator, opts ...core.ProcessorOption) (*Node, error) {
	return NewNodeFromConfig(g, core.ApplyProcessorOptions(opts...))
}

// NewNodeFromConfig creates a Node for g from an explicit configuration.
func NewNodeFromConfig(g Generator, cfg core.ProcessorConfig) (*Node, error) {
	if g == nil {
		return nil, ErrNilGenerator
	}
	if cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("%w: %f", ErrInvalidSampleRate, cfg.SampleRate)
	}
	if cfg.FrameSize < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFrameSize, cfg.FrameSize)
	}

	return &Node{
		gen:        g,
		sampleRate: cfg.SampleRate,
		output:     frame.New(cfg.FrameSize),
	}, nil
}

// Size returns the number of samples per frame.
func (n *Node) Size() int {
	return len(n.output)
}

// SampleRate returns the configured sample rate in Hz.
func (n *Node) SampleRate() float64 {
	return n.sampleRate
}

// Time returns the time in seconds of the first sample of the next frame.
func (n *Node) Time() float64 {
	return float64(n.position) / n.sampleRate
}

// Next fills the output frame with the next Size() samples and returns it.
// The frame is valid until the next call to Next.
func (n *Node) Next() frame.Real {
	for i := range n.output {
		t := float64(n.position+int64(i)) / n.sampleRate
		n.output[i] = n.gen.At(t)
	}
	n.position += int64(len(n.output))
	return n.output
}

// Reset rewinds time to zero. Stateful generators such as [Noise] are not
// rewound.
func (n *Node) Reset() {
	n.position = 0
}
