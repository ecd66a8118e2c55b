// Package spectrum provides nodes that reduce complex spectrum frames to
// real-valued analysis frames: [Magnitude], [Power] and [Phase].
//
// The package does not implement a transform itself; it operates on complex
// bins produced by the fft package or any other node.Transformer with a
// complex output. Magnitude and power use the SIMD kernels of algo-vecmath
// over float64 scratch buffers owned by each node.
package spectrum
