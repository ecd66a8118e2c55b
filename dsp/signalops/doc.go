// Package signalops provides elementary time-domain nodes: a constant
// [Gain] and a two-input [Sum].
//
// Both follow the node buffer contract: one fixed-size output frame per
// node, recomputed in place over the shortest operand, returned as a borrow
// valid until the next call.
package signalops
