package filter

import (
	"fmt"

	hshsignal "github.com/v3551G/hsh-signal"
)

// Delay holds samples back by a fixed number of positions. The line starts
// filled with zero values, so the first delay output samples are warm-up
// and carry no real input.
type Delay[T hshsignal.Sample] struct {
	out[T]
	buffer []T
	delay  int
}

// NewDelay creates a delay line of the given length in samples.
func NewDelay[T hshsignal.Sample](delay int) (*Delay[T], error) {
	if delay < 0 {
		return nil, fmt.Errorf("filter: negative delay: %d", delay)
	}
	return &Delay[T]{
		buffer: make([]T, delay),
		delay:  delay,
	}, nil
}

// Delay returns the line length in samples.
func (d *Delay[T]) Delay() int {
	return d.delay
}

// Batch appends the input to the line and emits as many samples as came
// in, trailing the input by the line length.
func (d *Delay[T]) Batch(x []T) []T {
	if d.delay == 0 {
		y := make([]T, len(x))
		copy(y, x)
		return y
	}
	d.buffer = append(d.buffer, x...)
	cut := len(d.buffer) - d.delay
	y := make([]T, cut)
	copy(y, d.buffer[:cut])
	d.buffer = append(d.buffer[:0], d.buffer[cut:]...)
	return y
}

// Put processes a batch and pushes the result downstream.
func (d *Delay[T]) Put(x []T) {
	d.forward("delay", d.Batch(x))
}
