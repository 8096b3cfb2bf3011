package filter

import (
	hshsignal "github.com/v3551G/hsh-signal"
)

// Splitter fans one stream out to several consumers. Unlike other blocks
// it accepts any number of Connect calls; Put forwards the identical batch
// to every consumer in registration order.
type Splitter[T hshsignal.Sample] struct {
	consumers []hshsignal.Consumer[T]
}

// NewSplitter creates an empty splitter.
func NewSplitter[T hshsignal.Sample]() *Splitter[T] {
	return &Splitter[T]{}
}

// Connect adds a consumer.
func (s *Splitter[T]) Connect(c hshsignal.Consumer[T]) {
	s.consumers = append(s.consumers, c)
}

// Put forwards the batch to every registered consumer.
func (s *Splitter[T]) Put(x []T) {
	for _, c := range s.consumers {
		c.Put(x)
	}
}
