package filter

import (
	"errors"
)

// PhaseDetector is an external phase-locked-loop collaborator: a stateful
// unit that tracks the dominant oscillation of an analytic signal. The
// block wrapping it only forwards batches and returns its output
// unchanged.
type PhaseDetector interface {
	// Frequency returns the tracked-frequency estimate per input sample.
	Frequency(batch []complex128) []float64
	// Carrier returns the reconstructed carrier per input sample.
	Carrier(batch []complex128) []complex128
}

// ErrNotLoaded is returned when a PLL block is used before Load.
var ErrNotLoaded = errors.New("filter: pll detector not loaded")

// PLL wraps an injected phase detector as a chain block producing the
// tracked frequency. Detectors are typically heavyweight, so construction
// is two-phase: NewPLL is cheap, Load builds the detector and must be
// called once before the block sees data.
type PLL struct {
	out[float64]
	load func() (PhaseDetector, error)
	det  PhaseDetector
}

// NewPLL creates a PLL block. The loader is invoked by Load, not here.
func NewPLL(load func() (PhaseDetector, error)) *PLL {
	return &PLL{load: load}
}

// Load builds the detector. Calling it again is a no-op.
func (p *PLL) Load() error {
	if p.det != nil {
		return nil
	}
	det, err := p.load()
	if err != nil {
		return err
	}
	p.det = det
	return nil
}

// Batch returns the tracked-frequency estimate for one batch.
func (p *PLL) Batch(x []complex128) []float64 {
	if p.det == nil {
		panic(ErrNotLoaded)
	}
	return p.det.Frequency(x)
}

// BatchCarrier returns the reconstructed carrier for one batch.
func (p *PLL) BatchCarrier(x []complex128) []complex128 {
	if p.det == nil {
		panic(ErrNotLoaded)
	}
	return p.det.Carrier(x)
}

// Put processes a batch and pushes the tracked frequency downstream.
func (p *PLL) Put(x []complex128) {
	p.forward("pll", p.Batch(x))
}
