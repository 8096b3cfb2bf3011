// Package pipe drives filter chains over bounded in-memory signals.
//
// ApplyFilter packages the streaming blocks into a one-shot call: the
// signal is pushed through the filter in fixed-size chunks exactly as a
// live feed would deliver it, and the collected output is compensated for
// the filter delay. Running the same signal through with different chunk
// sizes yields identical results.
package pipe

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/xid"
	"github.com/sirupsen/logrus"

	hshsignal "github.com/v3551G/hsh-signal"
	"github.com/v3551G/hsh-signal/filter"
	"github.com/v3551G/hsh-signal/log"
	"github.com/v3551G/hsh-signal/signal"
)

// DefaultChunkSize is the batch size used when no option overrides it.
const DefaultChunkSize = 179200

// ErrInvalidChunkSize is returned for non-positive chunk sizes.
var ErrInvalidChunkSize = errors.New("pipe: chunk size must be positive")

// Filter is a block that consumes real batches and produces batches of
// Out samples. Delay and sampling-rate compensation are picked up through
// the optional hshsignal.Delayer and hshsignal.SampleRater capabilities.
type Filter[Out hshsignal.Sample] interface {
	hshsignal.Consumer[float64]
	hshsignal.Producer[Out]
}

// Option provides a way to set parameters to a run.
type Option func(*config) error

type config struct {
	name      string
	chunkSize int
	debug     bool
}

// WithName names the run in log fields.
func WithName(name string) Option {
	return func(c *config) error {
		c.name = name
		return nil
	}
}

// WithChunkSize sets the batch size the bounded source delivers.
func WithChunkSize(size int) Option {
	return func(c *config) error {
		if size < 1 {
			return fmt.Errorf("%w: %d", ErrInvalidChunkSize, size)
		}
		c.chunkSize = size
		return nil
	}
}

// WithDebug enables progress reporting during the run.
func WithDebug() Option {
	return func(c *config) error {
		c.debug = true
		return nil
	}
}

// ApplyFilter pushes a full in-memory signal through the filter and
// returns the delay-compensated output.
//
// The signal is padded with Delay() trailing zeros so the last real
// samples are not lost to the delay, fed through a bounded source in
// chunks, and the leading Delay() warm-up samples are dropped from the
// collected output. For filters that preserve length, the result is
// exactly as long as the input.
func ApplyFilter[Out hshsignal.Sample](x []float64, f Filter[Out], options ...Option) ([]Out, error) {
	c := config{chunkSize: DefaultChunkSize}
	for _, option := range options {
		if err := option(&c); err != nil {
			return nil, err
		}
	}
	logger := log.GetLogger()
	if c.debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	var delay int
	if d, ok := f.(hshsignal.Delayer); ok {
		delay = d.Delay()
	}
	var fps float64
	if r, ok := f.(hshsignal.SampleRater); ok {
		fps = r.SampleRate()
	}

	// pad with trailing zeros to force returning the complete signal
	padded := make([]float64, len(x)+delay)
	copy(padded, x)

	source, err := filter.NewChunkSource(padded, c.chunkSize, fps)
	if err != nil {
		return nil, err
	}
	sink := filter.NewSink[Out]()
	source.Connect(f)
	f.Connect(sink)

	entry := logger.WithFields(logrus.Fields{
		"pipe": xid.New().String(),
		"name": c.name,
	})
	prev := time.Now()
	for !source.Finished() {
		source.Poll()
		if now := time.Now(); now.Sub(prev) >= time.Second {
			entry.Debugf("progress: %.0f %%", source.Progress())
			prev = now
		}
	}

	// cut off the leading filter delay, it contains warm-up output
	out := sink.Data()
	if delay > len(out) {
		delay = len(out)
	}
	y := make([]Out, len(out)-delay)
	copy(y, out[delay:])
	return y, nil
}

// Apply runs a real-valued filter over a signal container, preserving its
// sampling-rate metadata.
func Apply(s signal.Signal, f Filter[float64], options ...Option) (signal.Signal, error) {
	y, err := ApplyFilter(s.X, f, options...)
	if err != nil {
		return signal.Signal{}, err
	}
	return signal.Signal{X: y, Fps: s.Fps, Lpad: s.Lpad}, nil
}
