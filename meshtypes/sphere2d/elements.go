package sphere2d

import (
	"math"
)

// ScaleFactorSet is the per-element instantiation of an apex template's 4 scale factors
type ScaleFactorSet struct {
	Identifiers [4]int
	Values      [4]float64
}

type ElementRecord struct {
	ID           int
	Row, Col     int // Row 0 is the south apex ring, ElementsUp-1 the north
	Connectivity Connectivity
	ScaleFactors *ScaleFactorSet // Apex elements only
}

/*
ApexScaleFactorIdentifiers names the scale factors of wedge e: the first pair
belongs to the wedge's own angle, the second to the next angle around. The
group is offset by 100 so a pair is shared exactly with the neighbouring wedge
that meets it along the same meridian.
*/
func ApexScaleFactorIdentifiers(p Params, e int) (ids [4]int) {
	va, vb := mod(e, p.ElementsAround), mod(e+1, p.ElementsAround)
	ids = [4]int{va*100 + 1, va*100 + 2, vb*100 + 1, vb*100 + 2}
	return
}

// ApexScaleFactors computes the general linear map coefficients of wedge e,
// sin and cos of the two bounding angles; north pole sines are negated
func ApexScaleFactors(p Params, e int, kind ConnectivityKind) (sfs *ScaleFactorSet) {
	var (
		_, dAround = p.RadiansPerElement()
		theta      = float64(e) * dAround
		thetaNext  = float64(mod(e+1, p.ElementsAround)) * dAround
		sign       = 1.
	)
	if kind == ApexNorth {
		sign = -1
	}
	sfs = &ScaleFactorSet{
		Identifiers: ApexScaleFactorIdentifiers(p, e),
		Values: [4]float64{
			sign * math.Sin(theta), math.Cos(theta),
			sign * math.Sin(thetaNext), math.Cos(thetaNext),
		},
	}
	return
}

// BuildElements lists the south apex ring, the regular rows bottom to top,
// then the north apex ring, each traversed around
func BuildElements(p Params) (elements []ElementRecord) {
	var (
		id      = 1
		lastRow = p.ElementsUp - 1 // Also the ring of nodes below the north pole
	)
	elements = make([]ElementRecord, 0, p.NumberOfElements())
	for e := 0; e < p.ElementsAround; e++ {
		elements = append(elements, ElementRecord{
			ID:  id,
			Col: e,
			Connectivity: Connectivity{
				Kind:    ApexSouth,
				NodeIDs: []int{p.SouthApexID(), p.RingNodeID(1, e), p.RingNodeID(1, e+1)},
			},
			ScaleFactors: ApexScaleFactors(p, e, ApexSouth),
		})
		id++
	}
	for row := 1; row < lastRow; row++ {
		for e := 0; e < p.ElementsAround; e++ {
			elements = append(elements, ElementRecord{
				ID:  id,
				Row: row,
				Col: e,
				Connectivity: Connectivity{
					Kind: Regular,
					NodeIDs: []int{
						p.RingNodeID(row, e), p.RingNodeID(row, e+1),
						p.RingNodeID(row+1, e), p.RingNodeID(row+1, e+1),
					},
				},
			})
			id++
		}
	}
	for e := 0; e < p.ElementsAround; e++ {
		elements = append(elements, ElementRecord{
			ID:  id,
			Row: lastRow,
			Col: e,
			Connectivity: Connectivity{
				Kind:    ApexNorth,
				NodeIDs: []int{p.RingNodeID(lastRow, e), p.RingNodeID(lastRow, e+1), p.NorthApexID()},
			},
			ScaleFactors: ApexScaleFactors(p, e, ApexNorth),
		})
		id++
	}
	return
}
