// Package sink provides node.Consumer implementations that terminate a
// pipeline.
//
// Consumers receive borrowed frames: anything a sink keeps past Consume is
// copied first.
package sink
