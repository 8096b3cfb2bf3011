package filter

import (
	"fmt"
	"math"
)

// Mixer multiplies its input by a locally generated sinusoidal carrier.
// The carrier time offset persists across batches, so carrier phase is
// continuous at batch boundaries regardless of batch size.
type Mixer struct {
	out[float64]
	fps float64
	f0  float64
	t   float64
}

// NewMixer creates a local-oscillator mixer with carrier frequency f0 (Hz)
// for a stream sampled at fps (Hz).
func NewMixer(fps, f0 float64) (*Mixer, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("filter: invalid mixer sampling rate: %g", fps)
	}
	return &Mixer{fps: fps, f0: f0}, nil
}

// SampleRate returns the sampling rate of the stream.
func (m *Mixer) SampleRate() float64 {
	return m.fps
}

// Batch mixes one batch with the carrier.
func (m *Mixer) Batch(x []float64) []float64 {
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = v * math.Sin(2*math.Pi*m.f0*m.t)
		m.t += 1 / m.fps
	}
	return y
}

// Put processes a batch and pushes the result downstream.
func (m *Mixer) Put(x []float64) {
	m.forward("mixer", m.Batch(x))
}
