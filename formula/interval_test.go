package formula_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/signaltl/formula"
)

func TestNewInterval(t *testing.T) {
	inf := math.Inf(1)
	valid := [][2]float64{{0, 0}, {0, 2}, {1.5, 1.5}, {3, inf}}
	for _, b := range valid {
		iv, err := formula.NewInterval(b[0], b[1])
		require.NoError(t, err, "%v", b)
		assert.Equal(t, b[0], iv.Lo())
		assert.Equal(t, b[1], iv.Hi())
	}

	invalid := [][2]float64{{-1, 2}, {3, 2}, {math.NaN(), 1}, {0, math.NaN()}, {inf, inf}, {0, math.Inf(-1)}}
	for _, b := range invalid {
		_, err := formula.NewInterval(b[0], b[1])
		assert.ErrorIs(t, err, formula.ErrMalformedInterval, "%v", b)
	}
}

func TestInterval_Predicates(t *testing.T) {
	var zero formula.Interval
	assert.True(t, zero.IsPoint())
	assert.False(t, zero.IsUnbounded())
	assert.NoError(t, zero.Validate())
	assert.Equal(t, "[0,0]", zero.String())

	f := formula.Forever()
	assert.True(t, f.IsZeroToInf())
	assert.True(t, f.IsUnbounded())
	assert.Equal(t, "[0,inf)", f.String())

	u := formula.Unbounded(2.5)
	assert.False(t, u.IsZeroToInf())
	assert.Equal(t, "[2.5,inf)", u.String())

	assert.Equal(t, "[0.5,4]", formula.MustInterval(0.5, 4).String())
}

func TestMustInterval_Panics(t *testing.T) {
	assert.Panics(t, func() { formula.MustInterval(2, 1) })
	assert.Panics(t, func() { formula.Unbounded(-1) })
}
