package filter

import (
	"fmt"

	hshsignal "github.com/v3551G/hsh-signal"
)

// ChunkSource originates a bounded stream from an in-memory slice,
// mimicking a device that delivers fixed-size batches. Every Poll pushes
// the next chunk downstream; the last chunk may be shorter.
type ChunkSource[T hshsignal.Sample] struct {
	out[T]
	data []T
	size int
	fps  float64
	pos  int
}

// NewChunkSource creates a source over data sampled at fps, delivering
// batches of the given size.
func NewChunkSource[T hshsignal.Sample](data []T, size int, fps float64) (*ChunkSource[T], error) {
	if size < 1 {
		return nil, fmt.Errorf("filter: invalid source batch size: %d", size)
	}
	return &ChunkSource[T]{data: data, size: size, fps: fps}, nil
}

// SampleRate returns the sampling rate of the stream.
func (s *ChunkSource[T]) SampleRate() float64 {
	return s.fps
}

// Batch is the identity: a source originates data, it does not transform.
func (s *ChunkSource[T]) Batch(x []T) []T {
	return x
}

// Poll pushes the next chunk downstream. Call it regularly until Finished
// reports true; polling an exhausted source does nothing.
func (s *ChunkSource[T]) Poll() {
	if s.pos >= len(s.data) {
		return
	}
	end := s.pos + s.size
	if end > len(s.data) {
		end = len(s.data)
	}
	s.forward("source", s.Batch(s.data[s.pos:end]))
	s.pos = end
}

// Finished reports whether all data has been delivered.
func (s *ChunkSource[T]) Finished() bool {
	return s.pos >= len(s.data)
}

// Progress returns the delivered share of the data in percent.
func (s *ChunkSource[T]) Progress() float64 {
	if len(s.data) == 0 {
		return 100
	}
	return float64(s.pos) / float64(len(s.data)) * 100
}
