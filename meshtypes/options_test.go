package meshtypes

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	o := Options{"a": 3, "b": float64(4), "c": int64(5), "d": 2.5, "e": "six", "f": true}
	for name, want := range map[string]int{"a": 3, "b": 4, "c": 5} {
		i, err := o.Int(name)
		require.NoError(t, err)
		assert.Equal(t, want, i)
	}
	_, err := o.Int("d")
	assert.True(t, errors.Is(err, ErrOptionType))
	_, err = o.Int("e")
	assert.True(t, errors.Is(err, ErrOptionType))
	_, err = o.Int("z")
	assert.True(t, errors.Is(err, ErrMissingOption))
	// Integral floats beyond the int range are refused rather than wrapped
	for _, v := range []float64{1e300, -1e300, math.Inf(1), math.Ldexp(1, 63)} {
		_, err = Options{"big": v}.Int("big")
		assert.True(t, errors.Is(err, ErrOptionType), "%v", v)
	}
	i, err := Options{"small": math.Ldexp(-1, 30)}.Int("small")
	require.NoError(t, err)
	assert.Equal(t, -1<<30, i)

	b, err := o.Bool("f")
	require.NoError(t, err)
	assert.True(t, b)
	_, err = o.Bool("a")
	assert.True(t, errors.Is(err, ErrOptionType))
	_, err = o.Bool("z")
	assert.True(t, errors.Is(err, ErrMissingOption))

	oc := o.Clone()
	oc["a"] = 10
	assert.Equal(t, 3, o["a"])
}
