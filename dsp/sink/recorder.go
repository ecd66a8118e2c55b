package sink

import (
	"github.com/go-audio/audio"

	"github.com/cwbudde/algo-sigflow/dsp/core"
	"github.com/cwbudde/algo-sigflow/dsp/frame"
	"github.com/cwbudde/algo-sigflow/dsp/node"
)

// Recorder appends every consumed frame to an in-memory mono PCM buffer.
type Recorder struct {
	buf    *audio.Float32Buffer
	frames int
}

var _ node.Consumer[frame.Real] = (*Recorder)(nil)

// NewRecorder returns an empty Recorder. The sample rate option is stored in
// the buffer format; frame size is not used.
func NewRecorder(opts ...core.ProcessorOption) *Recorder {
	cfg := core.ApplyProcessorOptions(opts...)
	return &Recorder{
		buf: &audio.Float32Buffer{
			Format: &audio.Format{
				NumChannels: 1,
				SampleRate:  int(cfg.SampleRate),
			},
			SourceBitDepth: 32,
		},
	}
}

// Consume appends a copy of in.
func (r *Recorder) Consume(in frame.Real) {
	r.buf.Data = append(r.buf.Data, in...)
	r.frames++
}

// Frames returns the number of consumed frames.
func (r *Recorder) Frames() int {
	return r.frames
}

// Samples returns the recorded samples. The slice is owned by the Recorder.
func (r *Recorder) Samples() []float32 {
	return r.buf.Data
}

// Buffer returns the recorded audio as a go-audio float buffer.
func (r *Recorder) Buffer() *audio.Float32Buffer {
	return r.buf
}

// IntBuffer converts the recording to integer PCM at bitDepth bits
// (8, 16, 24 or 32; anything else selects 16). Samples are clipped to
// [-1, 1] before scaling.
func (r *Recorder) IntBuffer(bitDepth int) *audio.IntBuffer {
	switch bitDepth {
	case 8, 16, 24, 32:
	default:
		bitDepth = 16
	}
	scale := float64(int64(1)<<(bitDepth-1) - 1)

	out := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: r.buf.Format.NumChannels,
			SampleRate:  r.buf.Format.SampleRate,
		},
		SourceBitDepth: bitDepth,
		Data:           make([]int, len(r.buf.Data)),
	}
	for i, v := range r.buf.Data {
		s := float64(v)
		switch {
		case s > 1:
			s = 1
		case s < -1:
			s = -1
		}
		out.Data[i] = int(s * scale)
	}
	return out
}

// Reset drops the recording but keeps the format.
func (r *Recorder) Reset() {
	r.buf.Data = r.buf.Data[:0]
	r.frames = 0
}
