package node

// Producer yields successive frames. The returned frame is valid until the
// next call to Next on the same instance.
type Producer[F any] interface {
	Next() F
}

// Transformer maps an input frame to an internally owned output frame. The
// returned frame is valid until the next call to Process on the same
// instance and always has the node's fixed size.
type Transformer[In, Out any] interface {
	Process(in In) Out
}

// Consumer accepts a borrowed frame. It must not retain the frame after
// Consume returns.
type Consumer[F any] interface {
	Consume(in F)
}

// ProducerFunc adapts a function to the [Producer] interface.
type ProducerFunc[F any] func() F

// Next implements [Producer].
func (f ProducerFunc[F]) Next() F {
	return f()
}

// TransformerFunc adapts a function to the [Transformer] interface.
//
// The function is responsible for honoring the buffer contract.
type TransformerFunc[In, Out any] func(in In) Out

// Process implements [Transformer].
func (f TransformerFunc[In, Out]) Process(in In) Out {
	return f(in)
}

// ConsumerFunc adapts a function to the [Consumer] interface.
type ConsumerFunc[F any] func(in F)

// Consume implements [Consumer].
func (f ConsumerFunc[F]) Consume(in F) {
	f(in)
}
