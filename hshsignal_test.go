package hshsignal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hshsignal "github.com/v3551G/hsh-signal"
	"github.com/v3551G/hsh-signal/filter"
)

func TestLink(t *testing.T) {
	d, err := filter.NewDelay[float64](2)
	require.NoError(t, err)
	sink := filter.NewSink[float64]()

	hshsignal.Link[float64](d, sink)
	d.Put([]float64{1, 2, 3})

	assert.Equal(t, []float64{0, 0, 1}, sink.Data())
}

func TestDelayerCapability(t *testing.T) {
	d, err := filter.NewDelay[float64](5)
	require.NoError(t, err)

	var delayer hshsignal.Delayer = d
	assert.Equal(t, 5, delayer.Delay())

	// a splitter has no delay capability
	_, ok := interface{}(filter.NewSplitter[float64]()).(hshsignal.Delayer)
	assert.False(t, ok)
}
