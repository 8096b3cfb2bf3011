// Package signal provides the container exchanged around filter chains and
// helpers to generate and inspect sample streams.
package signal

import (
	"math"
	"math/cmplx"
	"time"
)

// Signal is a sampled waveform: sample values, the immutable sampling rate
// they were captured at, and the number of leading pad samples that do not
// belong to the recording (a filter warm-up region, for example).
type Signal struct {
	X    []float64
	Fps  float64
	Lpad int
}

// New wraps samples captured at the given sampling rate.
func New(x []float64, fps float64) Signal {
	return Signal{X: x, Fps: fps}
}

// TimeAt returns the time of sample i in seconds, relative to the first
// non-pad sample.
func (s Signal) TimeAt(i int) float64 {
	return float64(i-s.Lpad) / s.Fps
}

// Len returns the number of samples.
func (s Signal) Len() int {
	return len(s.X)
}

// Duration returns the time duration covered by the samples.
func (s Signal) Duration() time.Duration {
	return DurationOf(s.Fps, len(s.X))
}

// DurationOf returns the time duration of n samples at the given rate.
func DurationOf(fps float64, n int) time.Duration {
	return time.Duration(float64(n) / fps * float64(time.Second))
}

// Sine generates n samples of amp*sin(2*pi*freq*t) sampled at fps.
func Sine(n int, freq, amp, fps float64) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = amp * math.Sin(2*math.Pi*freq*float64(i)/fps)
	}
	return x
}

// Impulse generates n zero samples with a single unit sample at index at.
func Impulse(n, at int) []float64 {
	x := make([]float64, n)
	if at >= 0 && at < n {
		x[at] = 1
	}
	return x
}

// Magnitude returns the instantaneous amplitude of an analytic signal.
func Magnitude(x []complex128) []float64 {
	m := make([]float64, len(x))
	for i, v := range x {
		m[i] = cmplx.Abs(v)
	}
	return m
}

// Phase returns the instantaneous phase of an analytic signal in radians,
// wrapped to (-pi, pi].
func Phase(x []complex128) []float64 {
	p := make([]float64, len(x))
	for i, v := range x {
		p[i] = cmplx.Phase(v)
	}
	return p
}
