package memory

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/james-bowman/sparse"

	"github.com/notargets/meshgen/eft"
	"github.com/notargets/meshgen/types"
)

var ErrScaleFactorMismatch = errors.New("node scale factors disagree between elements")

type nodeScaleFactorKey struct {
	node, identifier int
}

type nodeScaleFactor struct {
	value   float64
	element int
}

/*
CheckScaleFactors verifies node-general scale factors are single valued: a
scale factor is attached to the node its terms read, and every element
using the same (node, identifier) pair must supply the same value.
*/
func (r *Region) CheckScaleFactors(tol float64) (err error) {
	var (
		seen     = make(map[nodeScaleFactorKey]nodeScaleFactor)
		problems []string
	)
	for _, id := range r.ElementIDs() {
		e := r.elements[id]
		for _, fn := range e.Template.Functions {
			for _, tm := range fn.Terms {
				for _, sf := range tm.ScaleFactors {
					if e.Template.ScaleFactors[sf-1].Type == eft.ScaleFactorElementGeneral {
						continue
					}
					key := nodeScaleFactorKey{
						node:       e.NodeIDs[tm.LocalNode-1],
						identifier: e.Template.ScaleFactors[sf-1].Identifier,
					}
					val := e.ScaleFactors[sf-1]
					prev, ok := seen[key]
					if !ok {
						seen[key] = nodeScaleFactor{value: val, element: id}
						continue
					}
					if math.Abs(prev.value-val) > tol {
						problems = append(problems, fmt.Sprintf(
							"node %d identifier %d: element %d has %g, element %d has %g",
							key.node, key.identifier, prev.element, prev.value, id, val))
					}
				}
			}
		}
	}
	if len(problems) != 0 {
		err = fmt.Errorf("%w:\n%s", ErrScaleFactorMismatch, strings.Join(problems, "\n"))
	}
	return
}

// NumberOfNodeScaleFactors counts the distinct (node, identifier) pairs in use
func (r *Region) NumberOfNodeScaleFactors() int {
	keys := make(map[nodeScaleFactorKey]struct{})
	for _, e := range r.elements {
		for _, fn := range e.Template.Functions {
			for _, tm := range fn.Terms {
				for _, sf := range tm.ScaleFactors {
					if e.Template.ScaleFactors[sf-1].Type == eft.ScaleFactorNodeGeneral {
						keys[nodeScaleFactorKey{e.NodeIDs[tm.LocalNode-1],
							e.Template.ScaleFactors[sf-1].Identifier}] = struct{}{}
					}
				}
			}
		}
	}
	return len(keys)
}

// EdgeUse counts the elements bounded by each edge. Collapsed edges, where
// both slots read the same node, are left out.
func (r *Region) EdgeUse() (use map[types.EdgeKey]int) {
	use = make(map[types.EdgeKey]int)
	for _, e := range r.elements {
		slotNodes := e.SlotNodeIDs()
		for _, se := range types.QuadEdges {
			ek := types.NewEdgeKey([2]int{slotNodes[se[0]-1], slotNodes[se[1]-1]})
			if ek.IsCollapsed() {
				continue
			}
			use[ek]++
		}
	}
	return
}

// IsClosed reports whether every edge bounds exactly two elements, returning the offenders
func (r *Region) IsClosed() (closed bool, open []types.EdgeKey) {
	for ek, n := range r.EdgeUse() {
		if n != 2 {
			open = append(open, ek)
		}
	}
	sort.Slice(open, func(i, j int) bool { return open[i] < open[j] })
	closed = len(open) == 0
	return
}

type Incidence struct {
	ElementIDs []int // Row i is element ElementIDs[i]
	NodeIDs    []int // Column j is node NodeIDs[j]
	M          *sparse.CSR
}

// Incidence assembles the element to node incidence matrix, 1 where an element references a node
func (r *Region) Incidence() (inc Incidence) {
	inc.ElementIDs, inc.NodeIDs = r.ElementIDs(), r.NodeIDs()
	col := make(map[int]int, len(inc.NodeIDs))
	for j, id := range inc.NodeIDs {
		col[id] = j
	}
	dok := sparse.NewDOK(len(inc.ElementIDs), len(inc.NodeIDs))
	for i, id := range inc.ElementIDs {
		for _, nid := range r.elements[id].NodeIDs {
			dok.Set(i, col[nid], 1)
		}
	}
	inc.M = dok.ToCSR()
	return
}

// NodeValence counts the elements referencing each node
func (r *Region) NodeValence() (valence map[int]int) {
	inc := r.Incidence()
	valence = make(map[int]int, len(inc.NodeIDs))
	inc.M.DoNonZero(func(i, j int, v float64) {
		valence[inc.NodeIDs[j]]++
	})
	return
}
