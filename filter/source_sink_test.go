package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/v3551G/hsh-signal/filter"
	"github.com/v3551G/hsh-signal/mock"
)

func TestChunkSource(t *testing.T) {
	data := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	s, err := filter.NewChunkSource(data, 4, 250)
	require.NoError(t, err)
	assert.Equal(t, 250.0, s.SampleRate())

	consumer := &mock.Consumer[float64]{}
	s.Connect(consumer)

	assert.False(t, s.Finished())
	assert.Equal(t, 0.0, s.Progress())

	s.Poll()
	assert.InDelta(t, 40, s.Progress(), 1e-12)
	s.Poll()
	s.Poll()
	assert.True(t, s.Finished())
	assert.InDelta(t, 100, s.Progress(), 1e-12)

	// polling an exhausted source is a no-op
	s.Poll()

	assert.Equal(t, [][]float64{{0, 1, 2, 3}, {4, 5, 6, 7}, {8, 9}}, consumer.Batches)
}

func TestChunkSourceErrors(t *testing.T) {
	_, err := filter.NewChunkSource([]float64{1}, 0, 250)
	assert.Error(t, err)
}

func TestChunkSourceEmpty(t *testing.T) {
	s, err := filter.NewChunkSource[float64](nil, 4, 250)
	require.NoError(t, err)
	assert.True(t, s.Finished())
	assert.Equal(t, 100.0, s.Progress())
}

func TestSink(t *testing.T) {
	s := filter.NewSink[float64]()
	s.Put([]float64{1, 2})
	s.Put([]float64{3})
	assert.Equal(t, []float64{1, 2, 3}, s.Data())

	s.Reset()
	assert.Nil(t, s.Data())
}
