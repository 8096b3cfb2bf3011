package filter

import (
	"errors"

	"github.com/v3551G/hsh-signal/internal/conv"
)

// Convolution strategies for the FIR filter, resolved at construction.
const (
	// ModeDirect computes the sliding dot product in the time domain.
	ModeDirect Mode = iota + 1
	// ModeFFT computes the equivalent convolution in the frequency
	// domain. This is the default.
	ModeFFT
)

// Mode selects the convolution strategy of a FIR filter.
type Mode int

// Errors returned by the FIR constructor.
var (
	ErrInvalidMode = errors.New("filter: invalid convolution mode")
	ErrEmptyTaps   = errors.New("filter: empty coefficient vector")
)

// FIR is a realtime FIR filter. It convolves a sliding window of past and
// current samples against a fixed coefficient vector.
//
// The filter introduces a delay of ntaps/2 samples, and the first Delay()
// output samples are warm-up computed against the zero-filled initial
// window.
type FIR struct {
	out[float64]
	taps     []float64
	fps      float64
	buffer   []float64
	convolve func([]float64) []float64
}

// FIROption configures a FIR filter.
type FIROption func(*FIR) error

// WithMode selects the convolution strategy.
func WithMode(m Mode) FIROption {
	return func(f *FIR) error {
		switch m {
		case ModeDirect:
			f.convolve = func(x []float64) []float64 {
				return conv.Valid(x, f.taps)
			}
		case ModeFFT:
			c, err := conv.NewConvolver(f.taps)
			if err != nil {
				return err
			}
			f.convolve = c.Valid
		default:
			return ErrInvalidMode
		}
		return nil
	}
}

// NewFIR creates a FIR filter from the given coefficient vector and
// sampling rate. The coefficients are copied.
func NewFIR(taps []float64, fps float64, options ...FIROption) (*FIR, error) {
	if len(taps) == 0 {
		return nil, ErrEmptyTaps
	}
	f := &FIR{
		taps: make([]float64, len(taps)),
		fps:  fps,
		// the trailing ntaps-1 window starts zero-filled
		buffer: make([]float64, len(taps)-1, 2*len(taps)),
	}
	copy(f.taps, taps)
	options = append([]FIROption{WithMode(ModeFFT)}, options...)
	for _, option := range options {
		if err := option(f); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Delay returns the filter delay in samples: the number of front taps,
// ntaps/2.
func (f *FIR) Delay() int {
	return len(f.taps) / 2
}

// SampleRate returns the sampling rate the filter was designed for.
func (f *FIR) SampleRate() float64 {
	return f.fps
}

// Batch filters one batch. The input is convolved together with the
// retained trailing window of earlier input, so output length equals input
// length for any batching.
func (f *FIR) Batch(x []float64) []float64 {
	f.buffer = append(f.buffer, x...)
	y := f.convolve(f.buffer)

	// keep the trailing ntaps-1 samples as the leading boundary of the
	// next batch
	cut := len(f.buffer) - (len(f.taps) - 1)
	f.buffer = append(f.buffer[:0], f.buffer[cut:]...)
	return y
}

// Put processes a batch and pushes the result downstream.
func (f *FIR) Put(x []float64) {
	f.forward("fir", f.Batch(x))
}
