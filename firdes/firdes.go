// Package firdes designs FIR filter coefficient vectors.
//
// The filter chain treats coefficient design as an external collaborator:
// blocks only ever consume the coefficient vectors returned here. Designs
// are windowed-sinc with a Kaiser window whose shape is derived from the
// requested stop-band attenuation. Tap counts follow from the attenuation
// and the transition width and are always forced odd, so every kernel has
// a well-defined center tap.
package firdes

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/dsp/window"
)

// Errors returned for invalid design parameters.
var (
	ErrBadRate        = errors.New("firdes: sampling rate must be positive")
	ErrBadCutoff      = errors.New("firdes: cutoff must lie in (0, fps/2)")
	ErrBadTransition  = errors.New("firdes: transition width must be positive")
	ErrBadAttenuation = errors.New("firdes: attenuation must be positive")
	ErrEvenTaps       = errors.New("firdes: hilbert kernel needs an odd number of taps")
)

// LowPass designs a low-pass filter.
//
// gain is the pass-band gain, fps the sampling rate (Hz), cutoff the
// beginning of the transition band (Hz), transition its width (Hz) and
// atten the stop-band attenuation (dB).
func LowPass(gain, fps, cutoff, transition, atten float64) ([]float64, error) {
	if err := validate(fps, cutoff, transition, atten); err != nil {
		return nil, err
	}
	taps := sinc(ntaps(fps, transition, atten), 2*math.Pi*cutoff/fps)
	applyKaiser(taps, atten)

	// unity gain at DC
	var sum float64
	for _, t := range taps {
		sum += t
	}
	scale(taps, gain/sum)
	return taps, nil
}

// HighPass designs a high-pass filter by spectral inversion of the
// complementary low-pass. Parameters are as in [LowPass], with cutoff the
// end of the stop band.
func HighPass(gain, fps, cutoff, transition, atten float64) ([]float64, error) {
	taps, err := LowPass(1, fps, cutoff, transition, atten)
	if err != nil {
		return nil, err
	}
	for i := range taps {
		taps[i] = -taps[i]
	}
	taps[len(taps)/2]++

	// unity gain at Nyquist
	var sum float64
	sign := 1.0
	for _, t := range taps {
		sum += sign * t
		sign = -sign
	}
	scale(taps, gain/sum)
	return taps, nil
}

// BandPass designs a band-pass filter between the low and high cutoff
// frequencies by modulating a low-pass prototype up to the band center.
func BandPass(gain, fps, low, high, transition, atten float64) ([]float64, error) {
	if high <= low {
		return nil, fmt.Errorf("firdes: band edges out of order: %g >= %g", low, high)
	}
	taps, err := LowPass(1, fps, (high-low)/2, transition, atten)
	if err != nil {
		return nil, err
	}
	m := len(taps) / 2
	w0 := math.Pi * (low + high) / fps
	for i := range taps {
		taps[i] *= 2 * math.Cos(w0*float64(i-m))
	}

	// unity gain at the band center
	var re, im float64
	wc := w0
	for i, t := range taps {
		re += t * math.Cos(wc*float64(i))
		im -= t * math.Sin(wc*float64(i))
	}
	scale(taps, gain/math.Hypot(re, im))
	return taps, nil
}

// BandReject designs a band-reject filter as the spectral inverse of the
// corresponding band-pass.
func BandReject(gain, fps, low, high, transition, atten float64) ([]float64, error) {
	taps, err := BandPass(1, fps, low, high, transition, atten)
	if err != nil {
		return nil, err
	}
	for i := range taps {
		taps[i] = -taps[i]
	}
	taps[len(taps)/2]++

	var sum float64
	for _, t := range taps {
		sum += t
	}
	scale(taps, gain/sum)
	return taps, nil
}

// Hilbert designs an ntaps-long approximation of an ideal 90-degree phase
// shifter, Hamming-windowed. ntaps must be odd.
func Hilbert(ntaps int) ([]float64, error) {
	if ntaps < 3 || ntaps%2 == 0 {
		return nil, ErrEvenTaps
	}
	taps := make([]float64, ntaps)
	m := ntaps / 2
	for i := range taps {
		k := i - m
		if k%2 != 0 {
			taps[i] = 2 / (math.Pi * float64(k))
		}
	}
	window.Hamming(taps)
	return taps, nil
}

func validate(fps, cutoff, transition, atten float64) error {
	switch {
	case fps <= 0:
		return ErrBadRate
	case cutoff <= 0 || cutoff >= fps/2:
		return ErrBadCutoff
	case transition <= 0:
		return ErrBadTransition
	case atten <= 0:
		return ErrBadAttenuation
	}
	return nil
}

// ntaps estimates the tap count a Kaiser window needs for the given
// transition width and attenuation, forced odd.
func ntaps(fps, transition, atten float64) int {
	n := int(math.Ceil((atten - 7.95) / (2.285 * 2 * math.Pi * transition / fps)))
	if n%2 == 0 {
		n++
	}
	if n < 3 {
		n = 3
	}
	return n
}

// sinc returns the ideal low-pass impulse response with cutoff wc
// (radians per sample), centered on the middle tap.
func sinc(n int, wc float64) []float64 {
	taps := make([]float64, n)
	m := n / 2
	for i := range taps {
		k := float64(i - m)
		if k == 0 {
			taps[i] = wc / math.Pi
		} else {
			taps[i] = math.Sin(wc*k) / (math.Pi * k)
		}
	}
	return taps
}

// applyKaiser multiplies taps by a Kaiser window sized for the requested
// stop-band attenuation.
func applyKaiser(taps []float64, atten float64) {
	beta := kaiserBeta(atten)
	n := len(taps)
	den := besselI0(beta)
	for i := range taps {
		r := 2*float64(i)/float64(n-1) - 1
		taps[i] *= besselI0(beta*math.Sqrt(1-r*r)) / den
	}
}

// kaiserBeta computes the Kaiser window shape parameter for the given
// stop-band attenuation in dB.
func kaiserBeta(atten float64) float64 {
	switch {
	case atten > 50:
		return 0.1102 * (atten - 8.7)
	case atten >= 21:
		return 0.5842*math.Pow(atten-21, 0.4) + 0.07886*(atten-21)
	default:
		return 0
	}
}

// besselI0 computes the zeroth-order modified Bessel function of the first
// kind by its power series.
func besselI0(x float64) float64 {
	sum := 1.0
	term := 1.0
	half := x / 2
	for k := 1; k < 64; k++ {
		term *= half / float64(k)
		d := term * term
		sum += d
		if d < sum*1e-18 {
			break
		}
	}
	return sum
}

func scale(taps []float64, g float64) {
	for i := range taps {
		taps[i] *= g
	}
}
