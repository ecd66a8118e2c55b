package pipeline

import (
	"errors"

	"github.com/cwbudde/algo-sigflow/dsp/node"
)

// ErrNilStage is returned when a Runner is built with a nil stage.
var ErrNilStage = errors.New("pipeline: stage must not be nil")

// Option configures a Runner.
type Option func(*config)

type config struct {
	logger    SLogger
	name      string
	logFrames bool
}

// WithLogger sets the logger used by the Runner. A nil logger is ignored.
// Per-frame Debug records are only emitted when a logger is set.
func WithLogger(logger SLogger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
			c.logFrames = true
		}
	}
}

// WithName sets the name attached to log records.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// Runner drives producer -> transformer -> consumer one frame at a time.
//
// Each step fully hands the transformer output to the consumer before the
// producer is called again, which is what the borrow-once-per-call buffer
// contract requires. Runner is not safe for concurrent use.
type Runner[In, Out any] struct {
	producer    node.Producer[In]
	transformer node.Transformer[In, Out]
	consumer    node.Consumer[Out]
	cfg         config
	frames      int
}

// NewRunner returns a Runner for the given stages. Use [Identity] when no
// transformation is needed.
func NewRunner[In, Out any](
	p node.Producer[In],
	t node.Transformer[In, Out],
	c node.Consumer[Out],
	opts ...Option,
) (*Runner[In, Out], error) {
	if p == nil || t == nil || c == nil {
		return nil, ErrNilStage
	}

	cfg := config{logger: DefaultSLogger(), name: "pipeline"}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return &Runner[In, Out]{
		producer:    p,
		transformer: t,
		consumer:    c,
		cfg:         cfg,
	}, nil
}

// Step pulls, transforms and consumes one frame.
func (r *Runner[In, Out]) Step() {
	r.consumer.Consume(r.transformer.Process(r.producer.Next()))
	r.frames++
	if r.cfg.logFrames {
		r.cfg.logger.Debug("frame processed", "pipeline", r.cfg.name, "frame", r.frames)
	}
}

// Run performs frames steps and returns the number performed. Non-positive
// counts do nothing.
func (r *Runner[In, Out]) Run(frames int) int {
	if frames <= 0 {
		return 0
	}

	r.cfg.logger.Info("run started", "pipeline", r.cfg.name, "frames", frames)
	for range frames {
		r.Step()
	}
	r.cfg.logger.Info("run finished", "pipeline", r.cfg.name, "frames", frames, "total", r.frames)

	return frames
}

// Frames returns the number of frames processed since construction.
func (r *Runner[In, Out]) Frames() int {
	return r.frames
}
