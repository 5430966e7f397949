package sphere2d

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/meshgen/eft"
	"github.com/notargets/meshgen/femodel"
)

type NodeKind uint8

const (
	RingNode NodeKind = iota
	SouthApexNode
	NorthApexNode
)

func (k NodeKind) String() string {
	return [...]string{"Ring", "SouthApex", "NorthApex"}[k]
}

type NodeRecord struct {
	ID       int
	Kind     NodeKind
	Row, Col int // Ring position, row 0 is the south pole and ElementsUp the north pole
	Value    r3.Vec
	DS1, DS2 r3.Vec
	DS1DS2   *r3.Vec // Only stored on ring nodes with cross derivatives
}

// Parameters returns the node's values in the layout of its node template
func (n NodeRecord) Parameters() (params femodel.NodeParameters) {
	params = femodel.NodeParameters{
		eft.Value: {n.Value},
		eft.DS1:   {n.DS1},
		eft.DS2:   {n.DS2},
	}
	if n.DS1DS2 != nil {
		params[eft.DS1DS2] = []r3.Vec{*n.DS1DS2}
	}
	return
}

/*
BuildNodes places the nodes on a sphere of Radius centred on the origin, with
z the polar axis. For polar angle phi measured from the south pole and angle
theta around:

	x = (r cos(theta) sin(phi), r sin(theta) sin(phi), -r cos(phi))

d/ds1 is dx/dtheta and d/ds2 is dx/dphi, each scaled by the element's
parametric width. The apexes have no direction around, so their d/ds1, d/ds2
are the meridional directions at theta = pi/2 and theta = 0, which the apex
templates blend by angle.
*/
func BuildNodes(p Params) (nodes []NodeRecord) {
	var (
		dUp, dAround = p.RadiansPerElement()
		r            = Radius
		id           = 1
	)
	nodes = make([]NodeRecord, 0, p.NumberOfNodes())
	nodes = append(nodes, NodeRecord{
		ID:    id,
		Kind:  SouthApexNode,
		Value: r3.Vec{Z: -r},
		DS1:   r3.Vec{Y: r * dUp},
		DS2:   r3.Vec{X: r * dUp},
	})
	id++
	for row := 1; row < p.ElementsUp; row++ {
		var (
			phi            = float64(row) * dUp
			cosPhi, sinPhi = math.Cos(phi), math.Sin(phi)
		)
		for col := 0; col < p.ElementsAround; col++ {
			theta := float64(col) * dAround
			cosTheta, sinTheta := math.Cos(theta), math.Sin(theta)
			n := NodeRecord{
				ID:   id,
				Kind: RingNode,
				Row:  row,
				Col:  col,
				Value: r3.Vec{
					X: r * cosTheta * sinPhi,
					Y: r * sinTheta * sinPhi,
					Z: -r * cosPhi,
				},
				DS1: r3.Vec{
					X: -r * sinTheta * sinPhi * dAround,
					Y: r * cosTheta * sinPhi * dAround,
				},
				DS2: r3.Vec{
					X: r * cosTheta * cosPhi * dUp,
					Y: r * sinTheta * cosPhi * dUp,
					Z: r * sinPhi * dUp,
				},
			}
			if p.UseCrossDerivatives {
				n.DS1DS2 = &r3.Vec{}
			}
			nodes = append(nodes, n)
			id++
		}
	}
	nodes = append(nodes, NodeRecord{
		ID:    id,
		Kind:  NorthApexNode,
		Row:   p.ElementsUp,
		Value: r3.Vec{Z: r},
		DS1:   r3.Vec{Y: r * dUp},
		DS2:   r3.Vec{X: -r * dUp},
	})
	return
}
