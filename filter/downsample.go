package filter

import (
	"fmt"

	hshsignal "github.com/v3551G/hsh-signal"
)

// Downsampler keeps every ratio-th sample of its input stream. The phase
// of the kept samples is fixed at construction and survives any batching:
// for any partition of the stream into batches, the kept stream indices
// are phase, phase+ratio, phase+2*ratio and so on.
type Downsampler[T hshsignal.Sample] struct {
	out[T]
	ratio   int
	waitfor int
}

// DownsamplerOption configures a downsampler.
type DownsamplerOption func(waitfor *int) error

// WithPhase sets the stream index of the first kept sample. Default 0.
func WithPhase(phase int) DownsamplerOption {
	return func(waitfor *int) error {
		if phase < 0 {
			return fmt.Errorf("filter: negative downsampler phase: %d", phase)
		}
		*waitfor = phase
		return nil
	}
}

// NewDownsampler creates a downsampler with the given integer ratio.
func NewDownsampler[T hshsignal.Sample](ratio int, options ...DownsamplerOption) (*Downsampler[T], error) {
	if ratio < 1 {
		return nil, fmt.Errorf("filter: invalid downsampling ratio: %d", ratio)
	}
	d := &Downsampler[T]{ratio: ratio}
	for _, option := range options {
		if err := option(&d.waitfor); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Ratio returns the downsampling ratio.
func (d *Downsampler[T]) Ratio() int {
	return d.ratio
}

// Batch emits the kept samples of one batch. waitfor counts the leading
// input samples to skip before the next kept one; batches shorter than
// that produce no output and only advance the phase.
func (d *Downsampler[T]) Batch(x []T) []T {
	n := len(x)
	if n <= d.waitfor {
		d.waitfor -= n
		return nil
	}
	y := make([]T, 0, (n-d.waitfor+d.ratio-1)/d.ratio)
	for i := d.waitfor; i < n; i += d.ratio {
		y = append(y, x[i])
	}
	// The carried phase must make the kept indices independent of the
	// batch sizes: the next kept index is exactly ratio past the last
	// kept one, whether or not that falls on a batch boundary.
	d.waitfor = (d.ratio - (n-d.waitfor)%d.ratio) % d.ratio
	return y
}

// Put processes a batch and pushes the result downstream.
func (d *Downsampler[T]) Put(x []T) {
	d.forward("downsampler", d.Batch(x))
}
