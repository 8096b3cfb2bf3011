// Package conv provides valid-mode linear convolution for streaming FIR
// filters.
//
// Two strategies are offered: direct time-domain convolution, suitable for
// short kernels, and FFT-based convolution with cached per-size plans for
// longer kernels. Both return only the fully-overlapping positions (valid
// mode) and are numerically interchangeable within floating-point
// tolerance.
package conv

import (
	"errors"

	"gonum.org/v1/gonum/dsp/fourier"
)

// ErrEmptyKernel is returned when a convolver is created without kernel.
var ErrEmptyKernel = errors.New("conv: empty kernel")

// Valid performs direct time-domain convolution of x with kernel and
// returns the valid region: len(x)-len(kernel)+1 samples, nil if x is
// shorter than the kernel.
func Valid(x, kernel []float64) []float64 {
	n := len(x) - len(kernel) + 1
	if n <= 0 || len(kernel) == 0 {
		return nil
	}
	m := len(kernel)
	y := make([]float64, n)
	for i := range y {
		var acc float64
		// convolution flips the kernel
		for j, k := range kernel {
			acc += k * x[i+m-1-j]
		}
		y[i] = acc
	}
	return y
}

// Convolver performs FFT-based valid-mode convolution against a fixed
// kernel. Plans and kernel spectra are cached per FFT size, so repeated
// calls with the same input length reuse their buffers.
type Convolver struct {
	kernel []float64
	plans  map[int]*plan
}

type plan struct {
	fft    *fourier.FFT
	kspec  []complex128
	xspec  []complex128
	padded []float64
	seq    []float64
}

// NewConvolver creates a convolver for the given kernel. The kernel is
// copied.
func NewConvolver(kernel []float64) (*Convolver, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}
	k := make([]float64, len(kernel))
	copy(k, kernel)
	return &Convolver{
		kernel: k,
		plans:  make(map[int]*plan),
	}, nil
}

// Valid convolves x with the kernel and returns the valid region, as in
// [Valid].
func (c *Convolver) Valid(x []float64) []float64 {
	m := len(c.kernel)
	n := len(x) - m + 1
	if n <= 0 {
		return nil
	}
	p := c.plan(nextPow2(len(x) + m - 1))

	copy(p.padded, x)
	for i := len(x); i < len(p.padded); i++ {
		p.padded[i] = 0
	}
	p.fft.Coefficients(p.xspec, p.padded)
	for i := range p.xspec {
		p.xspec[i] *= p.kspec[i]
	}
	p.fft.Sequence(p.seq, p.xspec)

	// Sequence is unnormalized: scale by the FFT size. The full linear
	// convolution starts at index 0, the valid region at m-1.
	y := make([]float64, n)
	scale := 1 / float64(p.fft.Len())
	for i := range y {
		y[i] = p.seq[m-1+i] * scale
	}
	return y
}

func (c *Convolver) plan(size int) *plan {
	if p, ok := c.plans[size]; ok {
		return p
	}
	p := &plan{
		fft:    fourier.NewFFT(size),
		kspec:  make([]complex128, size/2+1),
		xspec:  make([]complex128, size/2+1),
		padded: make([]float64, size),
		seq:    make([]float64, size),
	}
	copy(p.padded, c.kernel)
	p.fft.Coefficients(p.kspec, p.padded)
	c.plans[size] = p
	return p
}

// nextPow2 returns the next power of 2 >= n.
func nextPow2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
