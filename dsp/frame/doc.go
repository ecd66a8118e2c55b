// Package frame defines the two buffer types that flow through a pipeline:
// time-domain [Real] frames of float32 samples and frequency-domain [Complex]
// frames of complex64 bins.
//
// Both are plain slice aliases, so DSP code and callers can pass literals and
// ordinary slices without conversion. A frame returned by a node is borrowed:
// it aliases the node's output storage and is overwritten by the node's next
// call. Use [Clone] or [CloneComplex] to keep a frame past that point.
package frame
