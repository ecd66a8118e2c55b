// Package node defines the capability interfaces every pipeline stage
// implements, plus the real/complex conversion nodes.
//
// # Interfaces
//
//	type Producer[F any] interface { Next() F }
//	type Transformer[In, Out any] interface { Process(in In) Out }
//	type Consumer[F any] interface { Consume(in F) }
//
// Control flow is pull-based and synchronous: the caller asks a [Producer]
// for a frame, hands it through any number of [Transformer] stages, and
// passes the result to a [Consumer]. Nodes never call each other.
//
// # Buffer contract
//
// Every producing or transforming node owns one output frame, allocated at
// construction with a fixed size and never resized. Each call overwrites that
// frame in place and returns it. The returned slice is borrowed: it stays valid
// only until the next call on the same node. Copy it with frame.Clone if it
// has to outlive that call.
//
// When the input length differs from the node size, only the first
// min(len(in), size) positions are recomputed. Longer input is truncated.
// With shorter input the remaining output positions keep whatever the
// previous call left there; they are neither zeroed nor dropped.
//
// Nodes are not safe for concurrent use.
package node
