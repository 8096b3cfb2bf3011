// Package filter implements realtime batch-processing filter blocks.
//
// Each block consumes batches through Put, transforms them in Batch and
// pushes the result to the consumer registered with Connect. Blocks keep
// whatever state they need to stay correct across batch boundaries, so the
// caller may slice a stream into batches of any size: the concatenated
// output never changes, apart from each block's declared delay.
//
// Blocks are not safe for concurrent use. A chain is driven by exactly one
// caller; a Put runs the batch through the whole downstream chain before
// returning.
package filter

import (
	"fmt"

	hshsignal "github.com/v3551G/hsh-signal"
)

// out holds the single downstream consumer of a block. Concrete blocks
// embed it and forward their Batch output through forward.
type out[T hshsignal.Sample] struct {
	consumer hshsignal.Consumer[T]
}

// Connect registers the downstream consumer.
func (o *out[T]) Connect(c hshsignal.Consumer[T]) {
	o.consumer = c
}

// forward pushes a batch downstream. Forwarding without a connected
// consumer is a programmer error.
func (o *out[T]) forward(name string, batch []T) {
	if o.consumer == nil {
		panic(fmt.Sprintf("filter: %s: put without connected consumer", name))
	}
	o.consumer.Put(batch)
}
