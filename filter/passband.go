package filter

import (
	"github.com/v3551G/hsh-signal/firdes"
)

// stop-band attenuation used by the pass-band convenience constructors
const passbandAtten = 60

// NewLowpass creates a realtime low-pass filter. cutoff is the beginning
// of the transition band (Hz) and transition its width (Hz). Introduces a
// delay and outputs some initial invalid samples.
func NewLowpass(cutoff, transition, fps float64, options ...FIROption) (*FIR, error) {
	taps, err := firdes.LowPass(1, fps, cutoff, transition, passbandAtten)
	if err != nil {
		return nil, err
	}
	return NewFIR(taps, fps, options...)
}

// NewHighpass creates a realtime high-pass filter. cutoff is the end of
// the stop band (Hz) and transition the transition band width (Hz).
func NewHighpass(cutoff, transition, fps float64, options ...FIROption) (*FIR, error) {
	taps, err := firdes.HighPass(1, fps, cutoff, transition, passbandAtten)
	if err != nil {
		return nil, err
	}
	return NewFIR(taps, fps, options...)
}

// NewBandpass creates a realtime band-pass filter between the low and
// high cutoff frequencies (Hz).
func NewBandpass(low, high, transition, fps float64, options ...FIROption) (*FIR, error) {
	taps, err := firdes.BandPass(1, fps, low, high, transition, passbandAtten)
	if err != nil {
		return nil, err
	}
	return NewFIR(taps, fps, options...)
}

// NewBandreject creates a realtime band-reject filter between the low and
// high cutoff frequencies (Hz).
func NewBandreject(low, high, transition, fps float64, options ...FIROption) (*FIR, error) {
	taps, err := firdes.BandReject(1, fps, low, high, transition, passbandAtten)
	if err != nil {
		return nil, err
	}
	return NewFIR(taps, fps, options...)
}
