// Package fft provides frequency-transform nodes backed by single-precision
// algo-fft plans.
//
// [Forward] and [Inverse] map complex frames to complex frames; [RealForward]
// and [RealInverse] connect real time-domain frames to complex spectra
// directly. Sizes must be powers of two. The inverse transforms are
// normalized by 1/N, so Forward followed by Inverse reproduces the input up
// to rounding.
//
// Each node stages its input into a buffer of the transform size. As with
// every node, only the first min(len(in), Size()) input positions are
// replaced on a call; the rest of the staged input is whatever the previous
// call left there. Plans and work buffers are allocated once at
// construction, so Process does not allocate.
package fft
