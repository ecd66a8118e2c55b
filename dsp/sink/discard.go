package sink

import "github.com/cwbudde/algo-sigflow/dsp/node"

// Discard drops every frame. It is useful for driving a pipeline whose
// results are observed elsewhere.
type Discard[F any] struct{}

var _ node.Consumer[[]float32] = Discard[[]float32]{}

// Consume implements node.Consumer.
func (Discard[F]) Consume(F) {}
