package fft

import (
	"github.com/cwbudde/algo-sigflow/dsp/frame"
	"github.com/cwbudde/algo-sigflow/dsp/node"
)

// Forward computes the discrete Fourier transform of complex frames.
type Forward struct {
	t      *transform
	output frame.Complex
}

var _ node.Transformer[frame.Complex, frame.Complex] = (*Forward)(nil)

// NewForward creates a forward transform of the given size.
func NewForward(size int) (*Forward, error) {
	t, err := newTransform(size, false)
	if err != nil {
		return nil, err
	}
	return &Forward{t: t, output: frame.NewComplex(size)}, nil
}

// Size returns the transform size.
func (f *Forward) Size() int {
	return f.t.size()
}

// Process transforms in and returns the spectrum. The returned frame is
// valid until the next call to Process.
func (f *Forward) Process(in frame.Complex) frame.Complex {
	f.t.stageComplex(in)
	f.t.run(f.output)
	return f.output
}

// Inverse computes the normalized inverse transform of complex frames.
type Inverse struct {
	t      *transform
	output frame.Complex
}

var _ node.Transformer[frame.Complex, frame.Complex] = (*Inverse)(nil)

// NewInverse creates an inverse transform of the given size.
func NewInverse(size int) (*Inverse, error) {
	t, err := newTransform(size, true)
	if err != nil {
		return nil, err
	}
	return &Inverse{t: t, output: frame.NewComplex(size)}, nil
}

// Size returns the transform size.
func (f *Inverse) Size() int {
	return f.t.size()
}

// Process transforms the spectrum in back to the time domain.
func (f *Inverse) Process(in frame.Complex) frame.Complex {
	f.t.stageComplex(in)
	f.t.run(f.output)
	return f.output
}

// RealForward computes the full complex spectrum of a real frame.
type RealForward struct {
	t      *transform
	output frame.Complex
}

var _ node.Transformer[frame.Real, frame.Complex] = (*RealForward)(nil)

// NewRealForward creates a real-input forward transform of the given size.
// The output holds all size bins, including the mirrored upper half.
func NewRealForward(size int) (*RealForward, error) {
	t, err := newTransform(size, false)
	if err != nil {
		return nil, err
	}
	return &RealForward{t: t, output: frame.NewComplex(size)}, nil
}

// Size returns the transform size.
func (f *RealForward) Size() int {
	return f.t.size()
}

// Process transforms the real frame in and returns its spectrum.
func (f *RealForward) Process(in frame.Real) frame.Complex {
	f.t.stageReal(in)
	f.t.run(f.output)
	return f.output
}

// RealInverse computes the normalized inverse transform and keeps only the
// real part of the result.
type RealInverse struct {
	t      *transform
	work   frame.Complex
	output frame.Real
}

var _ node.Transformer[frame.Complex, frame.Real] = (*RealInverse)(nil)

// NewRealInverse creates an inverse transform with real output.
func NewRealInverse(size int) (*RealInverse, error) {
	t, err := newTransform(size, true)
	if err != nil {
		return nil, err
	}
	return &RealInverse{t: t, work: frame.NewComplex(size), output: frame.New(size)}, nil
}

// Size returns the transform size.
func (f *RealInverse) Size() int {
	return f.t.size()
}

// Process transforms the spectrum in and returns the real time-domain frame.
func (f *RealInverse) Process(in frame.Complex) frame.Real {
	f.t.stageComplex(in)
	if f.t.run(f.work) {
		for i, v := range f.work {
			f.output[i] = float32(real(v))
		}
	}
	return f.output
}
