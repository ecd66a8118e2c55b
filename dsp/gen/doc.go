// Package gen provides signal generators and a frame-producing node that
// samples them.
//
// A [Generator] is a continuous-time signal evaluated at t seconds. [Node]
// turns a generator into a node.Producer of fixed-size real frames at a
// configured sample rate, advancing time by one frame per call.
package gen
