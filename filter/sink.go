package filter

import (
	hshsignal "github.com/v3551G/hsh-signal"
)

// Sink terminates a chain and collects everything it receives.
type Sink[T hshsignal.Sample] struct {
	data []T
}

// NewSink creates an empty sink.
func NewSink[T hshsignal.Sample]() *Sink[T] {
	return &Sink[T]{}
}

// Put appends the batch to the collected data.
func (s *Sink[T]) Put(x []T) {
	s.data = append(s.data, x...)
}

// Data returns the collected samples in arrival order.
func (s *Sink[T]) Data() []T {
	return s.data
}

// Reset discards the collected data.
func (s *Sink[T]) Reset() {
	s.data = nil
}
