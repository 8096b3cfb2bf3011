package filter

import (
	"errors"

	"github.com/v3551G/hsh-signal/firdes"
)

// ErrNotImplemented is returned by operations the realtime blocks do not
// support, instead of producing silently wrong output.
var ErrNotImplemented = errors.New("filter: not implemented")

// DefaultHilbertTaps is the kernel length used when none is given.
const DefaultHilbertTaps = 65

// Hilbert turns a stream of real samples into analytic (complex) samples:
// the real part is the input delayed by ntaps/2 samples, the imaginary
// part is the input phase-shifted by 90 degrees, time-aligned with it.
//
// The first Delay() output samples are warm-up and invalid.
type Hilbert struct {
	out[complex128]
	imag  *FIR
	real  *Delay[float64]
	delay int
}

// NewHilbert creates a Hilbert transform over a kernel of the given
// length. An even ntaps is incremented so the kernel has a center tap.
func NewHilbert(ntaps int, options ...FIROption) (*Hilbert, error) {
	ntaps += 1 - ntaps%2
	taps, err := firdes.Hilbert(ntaps)
	if err != nil {
		return nil, err
	}
	imag, err := NewFIR(taps, 0, options...)
	if err != nil {
		return nil, err
	}
	// delay the real branch so the two parts match up again
	line, err := NewDelay[float64](imag.Delay())
	if err != nil {
		return nil, err
	}
	return &Hilbert{
		imag:  imag,
		real:  line,
		delay: imag.Delay(),
	}, nil
}

// Delay returns the transform delay in samples, ntaps/2.
func (h *Hilbert) Delay() int {
	return h.delay
}

// Batch processes one batch of real samples into analytic samples.
func (h *Hilbert) Batch(x []float64) []complex128 {
	re := h.real.Batch(x)
	im := h.imag.Batch(x)
	y := make([]complex128, len(re))
	for i := range y {
		y[i] = complex(re[i], im[i])
	}
	return y
}

// Put processes a batch and pushes the result downstream.
func (h *Hilbert) Put(x []float64) {
	h.forward("hilbert", h.Batch(x))
}

// Add would append a single sample and return the current output value.
// Single-sample operation is not supported: only batch operation is.
func (h *Hilbert) Add(sample float64) (complex128, error) {
	return 0, ErrNotImplemented
}
