package sphere2d

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildElementsSmall(t *testing.T) {
	p := Params{ElementsUp: 2, ElementsAround: 4}
	elements := BuildElements(p)
	require.Len(t, elements, 8)
	wantNodes := [][]int{
		{1, 2, 3}, {1, 3, 4}, {1, 4, 5}, {1, 5, 2},
		{2, 3, 6}, {3, 4, 6}, {4, 5, 6}, {5, 2, 6},
	}
	for i, el := range elements {
		assert.Equal(t, i+1, el.ID)
		assert.Equal(t, wantNodes[i], el.Connectivity.NodeIDs)
		require.NotNil(t, el.ScaleFactors)
		if i < 4 {
			assert.Equal(t, ApexSouth, el.Connectivity.Kind)
		} else {
			assert.Equal(t, ApexNorth, el.Connectivity.Kind)
		}
	}
	assert.Equal(t, [4]int{301, 302, 1, 2}, elements[3].ScaleFactors.Identifiers)
	assert.Equal(t, [4]int{101, 102, 201, 202}, elements[5].ScaleFactors.Identifiers)
}

func TestBuildElements(t *testing.T) {
	var (
		tp        = BuildTemplates(false)
		// Passes run south apex, regular rows, north apex
		passOrder = map[ConnectivityKind]int{ApexSouth: 0, Regular: 1, ApexNorth: 2}
	)
	for up := 2; up < 6; up++ {
		for around := 2; around < 8; around++ {
			var (
				p            = Params{ElementsUp: up, ElementsAround: around}
				elements     = BuildElements(p)
				_, dAround   = p.RadiansPerElement()
				kindCounts   = make(map[ConnectivityKind]int)
				previousKind = ApexSouth
			)
			require.Len(t, elements, p.NumberOfElements())
			require.Len(t, elements, up*around)
			for i, el := range elements {
				kind := el.Connectivity.Kind
				assert.Equal(t, i+1, el.ID)
				assert.GreaterOrEqual(t, passOrder[kind], passOrder[previousKind],
					"element %d: %s after %s", el.ID, kind, previousKind)
				previousKind = kind
				kindCounts[kind]++
				require.NoError(t, el.Connectivity.Validate(tp.For(kind)))
				for _, id := range el.Connectivity.NodeIDs {
					assert.True(t, id >= 1 && id <= p.NumberOfNodes())
				}
				if kind == Regular {
					assert.Nil(t, el.ScaleFactors)
					continue
				}
				require.NotNil(t, el.ScaleFactors)
				var (
					e         = el.Col
					next      = (e + 1) % around
					theta     = float64(e) * dAround
					thetaNext = float64(next) * dAround
					sign      = 1.
				)
				if kind == ApexNorth {
					sign = -1
				}
				assert.Equal(t, [4]float64{
					sign * math.Sin(theta), math.Cos(theta),
					sign * math.Sin(thetaNext), math.Cos(thetaNext),
				}, el.ScaleFactors.Values)
				assert.Equal(t, [4]int{e*100 + 1, e*100 + 2, next*100 + 1, next*100 + 2},
					el.ScaleFactors.Identifiers)
			}
			assert.Equal(t, around, kindCounts[ApexSouth])
			assert.Equal(t, around, kindCounts[ApexNorth])
			assert.Equal(t, (up-2)*around, kindCounts[Regular])
		}
	}
}

func TestBuildElementsClosure(t *testing.T) {
	p := Params{ElementsUp: 4, ElementsAround: 6}
	elements := BuildElements(p)
	// Each row of elements wraps: the last element's right side is the first element's left side
	for row := 0; row < p.ElementsUp; row++ {
		first := elements[row*p.ElementsAround]
		last := elements[row*p.ElementsAround+p.ElementsAround-1]
		assert.Equal(t, 0, first.Col)
		assert.Equal(t, p.ElementsAround-1, last.Col)
		fs, ls := first.Connectivity.SlotNodeIDs(), last.Connectivity.SlotNodeIDs()
		// slots 2,4 are xi1 = 1 and slots 1,3 are xi1 = 0
		assert.Equal(t, fs[0], ls[1])
		assert.Equal(t, fs[2], ls[3])
		if first.ScaleFactors != nil {
			assert.Equal(t, first.ScaleFactors.Identifiers[:2], last.ScaleFactors.Identifiers[2:])
			assert.Equal(t, first.ScaleFactors.Values[:2], last.ScaleFactors.Values[2:])
		}
	}
	for _, el := range elements {
		if el.Connectivity.Kind == Regular {
			assert.Equal(t, [4]int{
				p.RingNodeID(el.Row, el.Col), p.RingNodeID(el.Row, el.Col+1),
				p.RingNodeID(el.Row+1, el.Col), p.RingNodeID(el.Row+1, el.Col+1),
			}, el.Connectivity.SlotNodeIDs())
		}
	}
}
