package eft

// cubicHermite returns the 1D cubic Hermite basis on [0,1] and its derivative,
// ordered value at 0, derivative at 0, value at 1, derivative at 1
func cubicHermite(xi float64) (psi, dpsi [4]float64) {
	var (
		xi2 = xi * xi
		xi3 = xi2 * xi
	)
	psi = [4]float64{
		1 - 3*xi2 + 2*xi3,
		xi - 2*xi2 + xi3,
		3*xi2 - 2*xi3,
		xi3 - xi2,
	}
	dpsi = [4]float64{
		6*xi2 - 6*xi,
		1 - 4*xi + 3*xi2,
		6*xi - 6*xi2,
		3*xi2 - 2*xi,
	}
	return
}

/*
BicubicHermiteBasis evaluates the 16 basis functions at (xi1, xi2) along
with their xi1 and xi2 derivatives, indexed by FunctionIndex.

Slot s sits at corner (i1, i2) = ((s-1)%2, (s-1)/2). The value function of a
slot uses the value shape in both directions, d/dxi1 swaps in the derivative
shape along xi1, d/dxi2 along xi2, and the cross function along both.
*/
func BicubicHermiteBasis(xi1, xi2 float64) (phi, dphi1, dphi2 [NumFunctions]float64) {
	var (
		p1, dp1 = cubicHermite(xi1)
		p2, dp2 = cubicHermite(xi2)
	)
	for slot := 1; slot <= NumBasisNodes; slot++ {
		i1, i2 := (slot-1)%2, (slot-1)/2
		for _, label := range Labels {
			// 1D shape index: 2*corner + (0 for value, 1 for derivative)
			a, b := 2*i1, 2*i2
			if label == DS1 || label == DS1DS2 {
				a++
			}
			if label == DS2 || label == DS1DS2 {
				b++
			}
			f := FunctionIndex(slot, label)
			phi[f] = p1[a] * p2[b]
			dphi1[f] = dp1[a] * p2[b]
			dphi2[f] = p1[a] * dp2[b]
		}
	}
	return
}
