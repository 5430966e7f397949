package types

import (
	"fmt"
	"math"
)

/*
EdgeKey packs the two node identifiers of a mesh edge into one positive
integer, independent of the direction the edge was traversed in. An edge
between nodes [7] and [3] is stored as [3,7], the lower identifier in the
low 32 bits.
*/
type EdgeKey uint64

func NewEdgeKey(nodes [2]int) (packed EdgeKey) {
	var (
		limit = math.MaxUint32
	)
	for _, node := range nodes {
		if node < 0 || node > limit {
			panic(fmt.Errorf("unable to pack node identifiers %d and %d into an edge key",
				nodes[0], nodes[1]))
		}
	}
	lo, hi := nodes[0], nodes[1]
	if lo > hi {
		lo, hi = hi, lo
	}
	packed = EdgeKey(uint64(lo) | uint64(hi)<<32)
	return
}

// GetNodes returns the identifiers in ascending order, or descending if rev
func (ek EdgeKey) GetNodes(rev bool) (nodes [2]int) {
	nodes[0] = int(ek & math.MaxUint32)
	nodes[1] = int(ek >> 32)
	if rev {
		nodes[0], nodes[1] = nodes[1], nodes[0]
	}
	return
}

// IsCollapsed is true for an edge whose two ends are the same node
func (ek EdgeKey) IsCollapsed() bool {
	nodes := ek.GetNodes(false)
	return nodes[0] == nodes[1]
}

func (ek EdgeKey) String() string {
	nodes := ek.GetNodes(false)
	return fmt.Sprintf("[%d,%d]", nodes[0], nodes[1])
}

// QuadEdges lists the four edges of the quadrilateral reference element as
// pairs of 1-based basis node slots: xi2=0, xi2=1, xi1=0, xi1=1
var QuadEdges = [4][2]int{{1, 2}, {3, 4}, {1, 3}, {2, 4}}
