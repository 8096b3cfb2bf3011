// Package mock provides chain components for testing.
package mock

import (
	"math"
	"math/cmplx"

	hshsignal "github.com/v3551G/hsh-signal"
)

// Consumer records every batch it receives, keeping batch boundaries so
// tests can assert on the granularity of what a block forwarded.
type Consumer[T hshsignal.Sample] struct {
	Batches [][]T
}

// Put records a copy of the batch.
func (c *Consumer[T]) Put(x []T) {
	batch := make([]T, len(x))
	copy(batch, x)
	c.Batches = append(c.Batches, batch)
}

// Samples returns all received samples concatenated in arrival order.
func (c *Consumer[T]) Samples() []T {
	var all []T
	for _, b := range c.Batches {
		all = append(all, b...)
	}
	return all
}

// PhaseDetector is a stub filter.PhaseDetector locked to a fixed
// frequency. Frequency reports it for every sample; Carrier reconstructs
// a unit carrier at that frequency with phase continuous across batches.
type PhaseDetector struct {
	Fps   float64
	Freq  float64
	phase float64
}

// Frequency returns the locked frequency per input sample.
func (d *PhaseDetector) Frequency(batch []complex128) []float64 {
	y := make([]float64, len(batch))
	for i := range y {
		y[i] = d.Freq
	}
	return y
}

// Carrier returns a unit carrier at the locked frequency.
func (d *PhaseDetector) Carrier(batch []complex128) []complex128 {
	y := make([]complex128, len(batch))
	for i := range y {
		y[i] = cmplx.Exp(complex(0, d.phase))
		d.phase += 2 * math.Pi * d.Freq / d.Fps
	}
	return y
}
