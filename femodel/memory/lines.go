package memory

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/meshgen/types"
)

// edgeXi maps a parameter along a basis node slot edge to element coordinates
var edgeXi = map[[2]int]func(s float64) (xi1, xi2 float64){
	types.QuadEdges[0]: func(s float64) (float64, float64) { return s, 0 },
	types.QuadEdges[1]: func(s float64) (float64, float64) { return s, 1 },
	types.QuadEdges[2]: func(s float64) (float64, float64) { return 0, s },
	types.QuadEdges[3]: func(s float64) (float64, float64) { return 1, s },
}

// EdgeLines samples the interpolated boundary of every element as nSeg straight
// segments per edge. Collapsed edges are skipped.
func (r *Region) EdgeLines(nSeg int) (segments [][2]r3.Vec, err error) {
	if nSeg < 1 {
		return nil, fmt.Errorf("need at least one segment per edge, have %d", nSeg)
	}
	for _, id := range r.ElementIDs() {
		slotNodes := r.elements[id].SlotNodeIDs()
		for _, se := range types.QuadEdges {
			if types.NewEdgeKey([2]int{slotNodes[se[0]-1], slotNodes[se[1]-1]}).IsCollapsed() {
				continue
			}
			var (
				toXi = edgeXi[se]
				x0   r3.Vec
			)
			for i := 0; i <= nSeg; i++ {
				xi1, xi2 := toXi(float64(i) / float64(nSeg))
				x, _, _, err := r.Evaluate(id, xi1, xi2)
				if err != nil {
					return nil, err
				}
				if i > 0 {
					segments = append(segments, [2]r3.Vec{x0, x})
				}
				x0 = x
			}
		}
	}
	return
}
