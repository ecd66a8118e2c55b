// Package pipeline provides caller-side helpers for wiring nodes together.
//
// Nodes never call each other; these helpers are ordinary callers built on
// the node interfaces:
//
//   - [Chain2] and [Chain3] fuse transformers into one node.Transformer.
//   - [Source] fuses a producer and a transformer into one node.Producer.
//   - [Runner] pulls frames from a producer through a transformer into a
//     consumer, synchronously and in order.
//
// The buffer contract carries through: the frame a composed stage returns
// is the last inner stage's output and stays valid only until the next call.
package pipeline
