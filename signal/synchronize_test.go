package signal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/signaltl/signal"
)

// TestSynchronize_UnionInsideOverlap merges timestamps and clips to the overlap.
func TestSynchronize_UnionInsideOverlap(t *testing.T) {
	x := mustSignal(t, signal.Linear, [2]float64{0, 0}, [2]float64{2, 2}, [2]float64{4, 4})
	y := mustSignal(t, signal.Hold, [2]float64{1, 10}, [2]float64{3, 30}, [2]float64{5, 50})

	out, times, err := signal.Synchronize(x, y)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, []float64{1, 2, 3, 4}, times)
	assert.Equal(t, times, out[0].Times())
	assert.Equal(t, times, out[1].Times())

	// Each output keeps its own policy.
	assert.Equal(t, []float64{1, 2, 3, 4}, out[0].Values())
	assert.Equal(t, []float64{10, 10, 30, 30}, out[1].Values())
	assert.Equal(t, signal.Hold, out[1].Interpolation())
}

// TestSynchronize_SingleRoundTrip: one input comes back with the same samples.
func TestSynchronize_SingleRoundTrip(t *testing.T) {
	x := mustSignal(t, signal.Linear, [2]float64{0, 1}, [2]float64{1, 3}, [2]float64{2, 0})

	out, times, err := signal.Synchronize(x)
	require.NoError(t, err)
	assert.Equal(t, x.Times(), times)
	assert.Equal(t, x.Samples(), out[0].Samples())
}

// TestSynchronize_Disjoint fails with ErrEmptyIntersection.
func TestSynchronize_Disjoint(t *testing.T) {
	x := mustSignal(t, signal.Linear, [2]float64{0, 0}, [2]float64{1, 1})
	y := mustSignal(t, signal.Linear, [2]float64{2, 0}, [2]float64{3, 1})

	_, _, err := signal.Synchronize(x, y)
	assert.ErrorIs(t, err, signal.ErrEmptyIntersection)
}

// TestSynchronize_TouchingDomains yields a single shared instant.
func TestSynchronize_TouchingDomains(t *testing.T) {
	x := mustSignal(t, signal.Linear, [2]float64{0, 0}, [2]float64{1, 1})
	y := mustSignal(t, signal.Linear, [2]float64{1, 7}, [2]float64{3, 1})

	out, times, err := signal.Synchronize(x, y)
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, times)
	assert.Equal(t, 1.0, out[0].At(0).Value)
	assert.Equal(t, 7.0, out[1].At(0).Value)
}

// TestSynchronize_BadInput rejects empty and nil inputs.
func TestSynchronize_BadInput(t *testing.T) {
	_, _, err := signal.Synchronize()
	assert.ErrorIs(t, err, signal.ErrInvalidSignal)

	x := mustSignal(t, signal.Linear, [2]float64{0, 0})
	_, _, err = signal.Synchronize(x, nil)
	assert.ErrorIs(t, err, signal.ErrInvalidSignal)
}
