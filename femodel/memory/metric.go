package memory

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/mat"
)

// Metric returns the first fundamental form of the coordinate field at
// (xi1, xi2), g = J^T J where the columns of J are dx/dxi1 and dx/dxi2
func (r *Region) Metric(id int, xi1, xi2 float64) (g *mat.SymDense, err error) {
	_, d1, d2, err := r.Evaluate(id, xi1, xi2)
	if err != nil {
		return
	}
	J := mat.NewDense(3, 2, []float64{
		d1.X, d2.X,
		d1.Y, d2.Y,
		d1.Z, d2.Z,
	})
	g = mat.NewSymDense(2, nil)
	g.SymOuterK(1, J.T())
	return
}

// AreaElement is sqrt(det g), zero along a collapsed edge
func (r *Region) AreaElement(id int, xi1, xi2 float64) (dA float64, err error) {
	var g *mat.SymDense
	if g, err = r.Metric(id, xi1, xi2); err != nil {
		return
	}
	dA = math.Sqrt(math.Max(mat.Det(g), 0))
	return
}

// ElementArea integrates the area element with an n x n point Gauss-Legendre rule
func (r *Region) ElementArea(id, n int) (area float64, err error) {
	var (
		xi     = make([]float64, n)
		weight = make([]float64, n)
		dA     float64
	)
	quad.Legendre{}.FixedLocations(xi, weight, 0, 1)
	for i := range xi {
		for j := range xi {
			if dA, err = r.AreaElement(id, xi[i], xi[j]); err != nil {
				return
			}
			area += weight[i] * weight[j] * dA
		}
	}
	return
}

func (r *Region) Area(n int) (area float64, err error) {
	var a float64
	for _, id := range r.ElementIDs() {
		if a, err = r.ElementArea(id, n); err != nil {
			return
		}
		area += a
	}
	return
}
