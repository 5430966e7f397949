package sphere2d

import (
	"github.com/notargets/meshgen/eft"
)

type Templates struct {
	Regular   *eft.Template
	ApexSouth *eft.Template // Collapsed on the xi2 = 0 edge
	ApexNorth *eft.Template // Collapsed on the xi2 = 1 edge
}

func BuildTemplates(useCrossDerivatives bool) (tp Templates) {
	tp.Regular = eft.NewBicubicHermite()
	if !useCrossDerivatives {
		for slot := 1; slot <= eft.NumBasisNodes; slot++ {
			tp.Regular.SetFunctionNumberOfTerms(slot, eft.DS1DS2, 0)
		}
	}
	tp.ApexSouth = newApexTemplate(ApexSouth, useCrossDerivatives)
	tp.ApexNorth = newApexTemplate(ApexNorth, useCrossDerivatives)
	return
}

// For returns the template elements of the connectivity kind are built from
func (tp Templates) For(kind ConnectivityKind) *eft.Template {
	switch kind {
	case ApexSouth:
		return tp.ApexSouth
	case ApexNorth:
		return tp.ApexNorth
	default:
		return tp.Regular
	}
}

// defaultScaleFactorIdentifier offsets the second pair by 100, a separate version
func defaultScaleFactorIdentifier(sf int) int {
	return ((sf-1)/2)*100 + sf
}

/*
newApexTemplate builds a template with 3 local nodes where two slots read the
pole. At the pole d/dxi1 is zero, and d/dxi2 is a general linear map of the
pole's d/ds1 and d/ds2:

	d/dxi2 = sf[2i+1]*d/ds1 + sf[2i+2]*d/ds2

for the i'th pole slot, so each side of the wedge gets the meridional
direction of its own angle around.
*/
func newApexTemplate(kind ConnectivityKind, useCrossDerivatives bool) (t *eft.Template) {
	var (
		aliases  = kind.AliasMap()
		poleNode = kind.PoleLocalNode()
		poleSlot int
	)
	t = eft.NewBicubicHermite()
	t.SetNumberOfLocalNodes(kind.NumberOfLocalNodes())
	t.SetNumberOfLocalScaleFactors(4)
	for sf := 1; sf <= 4; sf++ {
		t.SetScaleFactor(sf, eft.ScaleFactorNodeGeneral, defaultScaleFactorIdentifier(sf))
	}
	for slot := 1; slot <= eft.NumBasisNodes; slot++ {
		local := aliases[slot-1]
		if local != poleNode {
			for _, label := range eft.Labels {
				t.SetTermNodeParameter(slot, label, 1, local, label, 1)
			}
			if !useCrossDerivatives {
				t.SetFunctionNumberOfTerms(slot, eft.DS1DS2, 0)
			}
			continue
		}
		t.SetTermNodeParameter(slot, eft.Value, 1, poleNode, eft.Value, 1)
		t.SetFunctionNumberOfTerms(slot, eft.DS1, 0)
		t.SetFunctionNumberOfTerms(slot, eft.DS2, 2)
		t.SetTermNodeParameter(slot, eft.DS2, 1, poleNode, eft.DS1, 1)
		t.SetTermScaling(slot, eft.DS2, 1, 2*poleSlot+1)
		t.SetTermNodeParameter(slot, eft.DS2, 2, poleNode, eft.DS2, 1)
		t.SetTermScaling(slot, eft.DS2, 2, 2*poleSlot+2)
		t.SetFunctionNumberOfTerms(slot, eft.DS1DS2, 0)
		poleSlot++
	}
	return
}
