package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/v3551G/hsh-signal/filter"
	"github.com/v3551G/hsh-signal/mock"
)

func TestNewRegroupErrors(t *testing.T) {
	_, err := filter.NewRegroup[float64](0)
	assert.Error(t, err)
}

func TestRegroup(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		in       []float64
		expected [][]float64
	}{
		{
			name:     "even split",
			size:     2,
			in:       []float64{1, 2, 3, 4},
			expected: [][]float64{{1, 2}, {3, 4}},
		},
		{
			name:     "short last chunk",
			size:     3,
			in:       []float64{1, 2, 3, 4, 5},
			expected: [][]float64{{1, 2, 3}, {4, 5}},
		},
		{
			name:     "input smaller than chunk",
			size:     10,
			in:       []float64{1, 2},
			expected: [][]float64{{1, 2}},
		},
		{
			name:     "single sample chunks",
			size:     1,
			in:       []float64{1, 2, 3},
			expected: [][]float64{{1}, {2}, {3}},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r, err := filter.NewRegroup[float64](test.size)
			require.NoError(t, err)
			consumer := &mock.Consumer[float64]{}
			r.Connect(consumer)

			r.Put(test.in)

			// regrouping must be transparent: values unchanged,
			// only granularity differs
			assert.Equal(t, test.expected, consumer.Batches)
			assert.Equal(t, test.in, consumer.Samples())
		})
	}
}
