package gen

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-sigflow/dsp/core"
	"github.com/cwbudde/algo-sigflow/dsp/frame"
	"github.com/cwbudde/algo-sigflow/internal/testutil"
)

func TestNodeSine(t *testing.T) {
	n, err := NewNode(Sine(1), core.WithSampleRate(4), core.WithFrameSize(4))
	if err != nil {
		t.Fatalf("NewNode() error = %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, n.Next(), frame.Real{0, 1, 0, -1}, 1e-6)
}

func TestNodeAdvancesTime(t *testing.T) {
	n, err := NewNode(GeneratorFunc(func(t float64) float32 { return float32(t) }),
		core.WithSampleRate(2), core.WithFrameSize(3))
	if err != nil {
		t.Fatalf("NewNode() error = %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, n.Next(), frame.Real{0, 0.5, 1}, 0)
	if n.Time() != 1.5 {
		t.Fatalf("Time() = %v, want 1.5", n.Time())
	}
	testutil.RequireSliceNearlyEqual(t, n.Next(), frame.Real{1.5, 2, 2.5}, 0)

	n.Reset()
	testutil.RequireSliceNearlyEqual(t, n.Next(), frame.Real{0, 0.5, 1}, 0)
}

func TestNodeReusesOutput(t *testing.T) {
	n, err := NewNode(Step(0.5), core.WithSampleRate(4), core.WithFrameSize(2))
	if err != nil {
		t.Fatalf("NewNode() error = %v", err)
	}

	first := n.Next()
	second := n.Next()
	if &first[0] != &second[0] {
		t.Fatal("Next should return the same backing array on every call")
	}
	testutil.RequireSliceNearlyEqual(t, first, frame.Real{1, 1}, 0)
}

func TestNodeDefaults(t *testing.T) {
	n, err := NewNode(Impulse())
	if err != nil {
		t.Fatalf("NewNode() error = %v", err)
	}
	def := core.DefaultProcessorConfig()
	if n.Size() != def.FrameSize {
		t.Fatalf("Size() = %d, want %d", n.Size(), def.FrameSize)
	}
	if n.SampleRate() != def.SampleRate {
		t.Fatalf("SampleRate() = %v, want %v", n.SampleRate(), def.SampleRate)
	}

	out := n.Next()
	if out[0] != 1 || out[1] != 0 {
		t.Fatalf("impulse frame starts %v, want [1 0 ...]", out[:2])
	}
}

func TestNewNodeErrors(t *testing.T) {
	tests := []struct {
		name string
		gen  Generator
		cfg  core.ProcessorConfig
		want error
	}{
		{name: "nil generator", gen: nil, cfg: core.DefaultProcessorConfig(), want: ErrNilGenerator},
		{name: "zero rate", gen: DC(1), cfg: core.ProcessorConfig{SampleRate: 0, FrameSize: 4}, want: ErrInvalidSampleRate},
		{name: "negative size", gen: DC(1), cfg: core.ProcessorConfig{SampleRate: 8, FrameSize: -1}, want: ErrInvalidFrameSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewNodeFromConfig(tt.gen, tt.cfg)
			if !errors.Is(err, tt.want) {
				t.Fatalf("NewNodeFromConfig() error = %v, want %v", err, tt.want)
			}
		})
	}
}
