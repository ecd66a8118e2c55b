package pipeline

import "github.com/cwbudde/algo-sigflow/dsp/node"

// Chain2 composes two transformers: the output of t1 becomes the input of t2.
func Chain2[A, B, C any](t1 node.Transformer[A, B], t2 node.Transformer[B, C]) node.Transformer[A, C] {
	return &chain2[A, B, C]{t1, t2}
}

type chain2[A, B, C any] struct {
	t1 node.Transformer[A, B]
	t2 node.Transformer[B, C]
}

func (c *chain2[A, B, C]) Process(in A) C {
	return c.t2.Process(c.t1.Process(in))
}

// Chain3 composes three transformers.
func Chain3[A, B, C, D any](t1 node.Transformer[A, B], t2 node.Transformer[B, C], t3 node.Transformer[C, D]) node.Transformer[A, D] {
	return Chain2(t1, Chain2(t2, t3))
}

// Source composes a producer with a transformer into a producer.
func Source[A, B any](p node.Producer[A], t node.Transformer[A, B]) node.Producer[B] {
	return &source[A, B]{p, t}
}

type source[A, B any] struct {
	p node.Producer[A]
	t node.Transformer[A, B]
}

func (s *source[A, B]) Next() B {
	return s.t.Process(s.p.Next())
}

// Identity returns a transformer that passes its input through unchanged.
// It owns no buffer: the returned frame is the input itself.
func Identity[F any]() node.Transformer[F, F] {
	return node.TransformerFunc[F, F](func(in F) F { return in })
}
