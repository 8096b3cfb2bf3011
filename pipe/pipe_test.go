package pipe_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/v3551G/hsh-signal/filter"
	"github.com/v3551G/hsh-signal/pipe"
	"github.com/v3551G/hsh-signal/signal"
)

// The driver is synchronous push: a run must not leave goroutines behind.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestApplyFilterOptionErrors(t *testing.T) {
	f, err := filter.NewFIR([]float64{1}, 250)
	require.NoError(t, err)

	_, err = pipe.ApplyFilter(make([]float64, 10), f, pipe.WithChunkSize(0))
	assert.ErrorIs(t, err, pipe.ErrInvalidChunkSize)
}

// Padding added before the run and the delay trim after it cancel out:
// the output is exactly as long as the input.
func TestApplyFilterRoundTripLength(t *testing.T) {
	lowpass, err := filter.NewLowpass(20, 30, 250)
	require.NoError(t, err)
	x := signal.Sine(1000, 10, 1, 250)

	y, err := pipe.ApplyFilter(x, lowpass, pipe.WithChunkSize(128))
	require.NoError(t, err)
	assert.Len(t, y, len(x))
}

// Driving the same signal through in different chunk sizes must produce
// identical results.
func TestApplyFilterChunkSizeIndependence(t *testing.T) {
	const n = 400
	x := signal.Sine(n, 17, 1, 250)
	newFilter := func() *filter.FIR {
		f, err := filter.NewFIR([]float64{0.1, 0.15, 0.5, 0.15, 0.1}, 250)
		require.NoError(t, err)
		return f
	}

	reference, err := pipe.ApplyFilter(x, newFilter())
	require.NoError(t, err)
	require.Len(t, reference, n)

	for _, size := range []int{1, 17, 128, n, 100000} {
		y, err := pipe.ApplyFilter(x, newFilter(), pipe.WithChunkSize(size))
		require.NoError(t, err)
		require.Len(t, y, n, "chunk size %d", size)
		for i := range reference {
			assert.InDelta(t, reference[i], y[i], 1e-9, "chunk size %d at %d", size, i)
		}
	}
}

// A low-pass with cutoff well below an input sinusoid attenuates it by at
// least the design's stop-band attenuation; an in-band sinusoid passes
// through at the correct timestamps.
func TestApplyFilterLowpass(t *testing.T) {
	const (
		fps = 250.0
		n   = 1500
	)
	lowpass, err := filter.NewLowpass(5, 10, fps)
	require.NoError(t, err)
	delay := lowpass.Delay()

	stop := signal.Sine(n, 60, 1, fps)
	y, err := pipe.ApplyFilter(stop, lowpass, pipe.WithChunkSize(256), pipe.WithName("stopband"))
	require.NoError(t, err)
	require.Len(t, y, n)
	for i := 2 * delay; i < n-2*delay; i++ {
		assert.Less(t, math.Abs(y[i]), 1e-2, "stop-band leak at %d", i)
	}

	lowpass, err = filter.NewLowpass(5, 10, fps)
	require.NoError(t, err)
	pass := signal.Sine(n, 2, 1, fps)
	y, err = pipe.ApplyFilter(pass, lowpass)
	require.NoError(t, err)
	for i := 2 * delay; i < n-2*delay; i++ {
		assert.InDelta(t, pass[i], y[i], 0.02, "pass-band distortion at %d", i)
	}
}

// The driver works for complex-producing filters too: the Hilbert output
// is delay-compensated the same way.
func TestApplyFilterHilbert(t *testing.T) {
	const (
		fps = 250.0
		n   = 1200
		amp = 2.0
	)
	h, err := filter.NewHilbert(filter.DefaultHilbertTaps)
	require.NoError(t, err)

	y, err := pipe.ApplyFilter(signal.Sine(n, 31.25, amp, fps), h)
	require.NoError(t, err)
	require.Len(t, y, n)

	mag := signal.Magnitude(y[h.Delay() : n-h.Delay()])
	for i, m := range mag {
		assert.InDelta(t, amp, m, 0.05*amp, "magnitude at %d", i)
	}
}

// Blocks without a declared delay run through the driver with no padding
// or trimming at all.
func TestApplyFilterDownsampler(t *testing.T) {
	d, err := filter.NewDownsampler[float64](3)
	require.NoError(t, err)

	x := make([]float64, 10)
	for i := range x {
		x[i] = float64(i)
	}
	y, err := pipe.ApplyFilter(x, d, pipe.WithChunkSize(4))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 3, 6, 9}, y)
}

func TestApply(t *testing.T) {
	lowpass, err := filter.NewLowpass(20, 30, 250)
	require.NoError(t, err)

	s := signal.New(signal.Sine(500, 10, 1, 250), 250)
	out, err := pipe.Apply(s, lowpass, pipe.WithDebug())
	require.NoError(t, err)
	assert.Equal(t, s.Fps, out.Fps)
	assert.Len(t, out.X, s.Len())
}
