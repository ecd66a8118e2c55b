package sink

import (
	"math"

	"github.com/cwbudde/algo-sigflow/dsp/core"
	"github.com/cwbudde/algo-sigflow/dsp/frame"
	"github.com/cwbudde/algo-sigflow/dsp/node"
)

// Meter tracks the running peak and RMS level of consumed frames.
type Meter struct {
	peak       float64
	sumSquares float64
	samples    int
	frames     int
}

var _ node.Consumer[frame.Real] = (*Meter)(nil)

// NewMeter returns a Meter with no history.
func NewMeter() *Meter {
	return &Meter{}
}

// Consume accumulates the samples of in.
func (m *Meter) Consume(in frame.Real) {
	for _, v := range in {
		x := float64(v)
		if a := math.Abs(x); a > m.peak {
			m.peak = a
		}
		m.sumSquares += x * x
	}
	m.samples += len(in)
	m.frames++
}

// Frames returns the number of consumed frames.
func (m *Meter) Frames() int { return m.frames }

// Samples returns the number of consumed samples.
func (m *Meter) Samples() int { return m.samples }

// Peak returns the largest absolute sample value seen.
func (m *Meter) Peak() float64 { return m.peak }

// RMS returns the root mean square over all consumed samples, or 0 before
// any sample was seen.
func (m *Meter) RMS() float64 {
	if m.samples == 0 {
		return 0
	}
	return math.Sqrt(m.sumSquares / float64(m.samples))
}

// PeakDB returns the peak level in dBFS.
func (m *Meter) PeakDB() float64 {
	return core.LinearToDB(m.peak)
}

// RMSDB returns the RMS level in dBFS.
func (m *Meter) RMSDB() float64 {
	if m.samples == 0 {
		return math.Inf(-1)
	}
	return core.LinearPowerToDB(m.sumSquares / float64(m.samples))
}

// Reset clears all accumulated state.
func (m *Meter) Reset() {
	*m = Meter{}
}
