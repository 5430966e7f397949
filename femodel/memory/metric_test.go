package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestRegionMetric(t *testing.T) {
	r := newPlaneRegion(t)
	g, err := r.Metric(1, 0.3, 0.7)
	require.NoError(t, err)
	// Unit squares with unit tangents have the identity metric
	assert.InDelta(t, 1., g.At(0, 0), 1.e-14)
	assert.InDelta(t, 0., g.At(0, 1), 1.e-14)
	assert.InDelta(t, 1., g.At(1, 1), 1.e-14)

	dA, err := r.AreaElement(2, 0.5, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 1., dA, 1.e-14)

	a, err := r.ElementArea(1, 3)
	require.NoError(t, err)
	assert.InDelta(t, 1., a, 1.e-14)
	area, err := r.Area(2)
	require.NoError(t, err)
	assert.InDelta(t, 2., area, 1.e-14)

	_, err = r.Metric(3, 0, 0)
	assert.Error(t, err)
}

func TestRegionEdgeLines(t *testing.T) {
	r := newPlaneRegion(t)
	segments, err := r.EdgeLines(4)
	require.NoError(t, err)
	// Two squares with four edges of four segments
	require.Len(t, segments, 2*4*4)
	for _, s := range segments {
		assert.InDelta(t, 0., s[0].Z, 1.e-15)
		assert.InDelta(t, 0.25, r3.Norm(r3.Sub(s[1], s[0])), 1.e-14)
	}
	_, err = r.EdgeLines(0)
	assert.Error(t, err)
}
