package sphere2d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/meshgen/eft"
)

func spherePoint(theta, phi float64) r3.Vec {
	return r3.Vec{
		X: Radius * math.Cos(theta) * math.Sin(phi),
		Y: Radius * math.Sin(theta) * math.Sin(phi),
		Z: -Radius * math.Cos(phi),
	}
}

func TestBuildNodesSmall(t *testing.T) {
	// One equatorial ring between the poles
	p := Params{ElementsUp: 2, ElementsAround: 4}
	nodes := BuildNodes(p)
	require.Len(t, nodes, 6)
	assert.Equal(t, SouthApexNode, nodes[0].Kind)
	assert.Equal(t, NorthApexNode, nodes[5].Kind)
	assert.Equal(t, r3.Vec{Z: -0.5}, nodes[0].Value)
	assert.Equal(t, r3.Vec{Z: 0.5}, nodes[5].Value)
	want := []r3.Vec{{X: 0.5}, {Y: 0.5}, {X: -0.5}, {Y: -0.5}}
	for i, n := range nodes[1:5] {
		assert.Equal(t, RingNode, n.Kind)
		assert.Equal(t, 1, n.Row)
		assert.Equal(t, i, n.Col)
		assert.InDelta(t, 0., r3.Norm(r3.Sub(want[i], n.Value)), 1.e-15)
		assert.InDelta(t, 0., n.Value.Z, 1.e-15)
	}
	dUp := math.Pi / 2
	assert.Equal(t, r3.Vec{Y: 0.5 * dUp}, nodes[0].DS1)
	assert.Equal(t, r3.Vec{X: 0.5 * dUp}, nodes[0].DS2)
	assert.Equal(t, r3.Vec{Y: 0.5 * dUp}, nodes[5].DS1)
	assert.Equal(t, r3.Vec{X: -0.5 * dUp}, nodes[5].DS2)
}

func TestBuildNodes(t *testing.T) {
	for _, cross := range []bool{false, true} {
		p := Params{ElementsUp: 5, ElementsAround: 7, UseCrossDerivatives: cross}
		var (
			nodes        = BuildNodes(p)
			dUp, dAround = p.RadiansPerElement()
			h            = 1.e-6
		)
		require.Len(t, nodes, p.NumberOfNodes())
		for i, n := range nodes {
			assert.Equal(t, i+1, n.ID)
			assert.InDelta(t, 0.25, r3.Dot(n.Value, n.Value), 1.e-14)
			assert.Greater(t, r3.Norm(n.DS1), 0.)
			assert.Greater(t, r3.Norm(n.DS2), 0.)
			// Tangents lie in the tangent plane
			assert.InDelta(t, 0., r3.Dot(n.Value, n.DS1), 1.e-14)
			assert.InDelta(t, 0., r3.Dot(n.Value, n.DS2), 1.e-14)

			params := n.Parameters()
			if n.Kind != RingNode {
				assert.Nil(t, n.DS1DS2)
				assert.Len(t, params, 3)
				continue
			}
			assert.Equal(t, p.RingNodeID(n.Row, n.Col), n.ID)
			if cross {
				require.NotNil(t, n.DS1DS2)
				assert.Equal(t, r3.Vec{}, *n.DS1DS2)
				assert.Len(t, params, 4)
			} else {
				assert.Nil(t, n.DS1DS2)
				_, ok := params[eft.DS1DS2]
				assert.False(t, ok)
			}
			// Derivatives are the angular derivatives scaled by the element width
			theta, phi := float64(n.Col)*dAround, float64(n.Row)*dUp
			assert.Equal(t, spherePoint(theta, phi), n.Value)
			fd1 := r3.Scale(dAround/(2*h), r3.Sub(spherePoint(theta+h, phi), spherePoint(theta-h, phi)))
			fd2 := r3.Scale(dUp/(2*h), r3.Sub(spherePoint(theta, phi+h), spherePoint(theta, phi-h)))
			assert.InDelta(t, 0., r3.Norm(r3.Sub(fd1, n.DS1)), 1.e-8)
			assert.InDelta(t, 0., r3.Norm(r3.Sub(fd2, n.DS2)), 1.e-8)
		}
		assert.Equal(t, SouthApexNode, nodes[0].Kind)
		assert.Equal(t, NorthApexNode, nodes[len(nodes)-1].Kind)
	}
}
