package filter

import (
	"fmt"

	hshsignal "github.com/v3551G/hsh-signal"
)

// Regroup splits oversized incoming batches into chunks of at most a
// configured size before forwarding them, so downstream blocks with fixed
// batch-size assumptions see the granularity they expect. Sample values
// pass through unchanged.
type Regroup[T hshsignal.Sample] struct {
	out[T]
	size int
}

// NewRegroup creates a regrouper with the given output batch size.
func NewRegroup[T hshsignal.Sample](size int) (*Regroup[T], error) {
	if size < 1 {
		return nil, fmt.Errorf("filter: invalid regroup batch size: %d", size)
	}
	return &Regroup[T]{size: size}, nil
}

// Batch is the identity.
func (r *Regroup[T]) Batch(x []T) []T {
	return x
}

// Put forwards the batch downstream in consecutive chunks of at most the
// configured size. The last chunk may be shorter.
func (r *Regroup[T]) Put(x []T) {
	for start := 0; start < len(x); start += r.size {
		end := start + r.size
		if end > len(x) {
			end = len(x)
		}
		r.forward("regroup", r.Batch(x[start:end]))
	}
}
