package memory

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/meshgen/eft"
)

// SlotNodeIDs returns the node read by each basis node slot's value
func (e *Element) SlotNodeIDs() (ids [eft.NumBasisNodes]int) {
	for slot, local := range e.Template.AliasMap() {
		if local > 0 {
			ids[slot] = e.NodeIDs[local-1]
		}
	}
	return
}

// ElementParameters maps the node parameters through the element's template,
// returning the 16 per-function coefficients of the bicubic Hermite basis
func (r *Region) ElementParameters(id int) (params [eft.NumFunctions]r3.Vec, err error) {
	e, ok := r.elements[id]
	if !ok {
		err = fmt.Errorf("element %d does not exist", id)
		return
	}
	for f, fn := range e.Template.Functions {
		for _, tm := range fn.Terms {
			node := r.nodes[e.NodeIDs[tm.LocalNode-1]]
			scale := 1.
			for _, sf := range tm.ScaleFactors {
				scale *= e.ScaleFactors[sf-1]
			}
			params[f] = r3.Add(params[f], r3.Scale(scale, node.Params[tm.Label][tm.Version-1]))
		}
	}
	return
}

// Evaluate interpolates the coordinate field and its xi derivatives at (xi1, xi2)
func (r *Region) Evaluate(id int, xi1, xi2 float64) (x, dxdxi1, dxdxi2 r3.Vec, err error) {
	var (
		params [eft.NumFunctions]r3.Vec
	)
	if params, err = r.ElementParameters(id); err != nil {
		return
	}
	phi, dphi1, dphi2 := eft.BicubicHermiteBasis(xi1, xi2)
	for f, p := range params {
		x = r3.Add(x, r3.Scale(phi[f], p))
		dxdxi1 = r3.Add(dxdxi1, r3.Scale(dphi1[f], p))
		dxdxi2 = r3.Add(dxdxi2, r3.Scale(dphi2[f], p))
	}
	return
}
