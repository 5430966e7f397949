// Package sphere2d generates a bicubic Hermite surface mesh of a sphere with
// collapsed triangular elements at both poles.
package sphere2d

import (
	"fmt"
	"math"

	"github.com/notargets/meshgen/meshtypes"
)

// Option names
const (
	ElementsUp          = "elementsUp"
	ElementsAround      = "elementsAround"
	UseCrossDerivatives = "useCrossDerivatives"
)

const (
	// Radius of the generated sphere, giving a unit diameter
	Radius = 0.5

	minElementsUp     = 2
	minElementsAround = 2
)

type Params struct {
	ElementsUp          int // Pole to pole
	ElementsAround      int
	UseCrossDerivatives bool
}

// CheckOptions raises the element counts to their topological minimum. Other
// entries, and entries that are missing or not integers, are left alone.
func CheckOptions(options meshtypes.Options) {
	for name, minimum := range map[string]int{
		ElementsUp:     minElementsUp,
		ElementsAround: minElementsAround,
	} {
		if n, err := options.Int(name); err == nil && n < minimum {
			options[name] = minimum
		}
	}
}

func ParamsFromOptions(options meshtypes.Options) (p Params, err error) {
	if p.ElementsUp, err = options.Int(ElementsUp); err != nil {
		return
	}
	if p.ElementsAround, err = options.Int(ElementsAround); err != nil {
		return
	}
	if p.UseCrossDerivatives, err = options.Bool(UseCrossDerivatives); err != nil {
		return
	}
	err = p.Validate()
	return
}

func (p Params) Validate() (err error) {
	if p.ElementsUp < minElementsUp || p.ElementsAround < minElementsAround {
		err = fmt.Errorf("sphere needs at least %d elements up and %d around, have %d and %d",
			minElementsUp, minElementsAround, p.ElementsUp, p.ElementsAround)
	}
	return
}

// RadiansPerElement returns the parametric width of an element up and around
func (p Params) RadiansPerElement() (up, around float64) {
	up = math.Pi / float64(p.ElementsUp)
	around = 2 * math.Pi / float64(p.ElementsAround)
	return
}

func (p Params) NumberOfNodes() int { return (p.ElementsUp-1)*p.ElementsAround + 2 }

func (p Params) NumberOfElements() int { return p.ElementsUp * p.ElementsAround }

func (p Params) SouthApexID() int { return 1 }

func (p Params) NorthApexID() int { return p.NumberOfNodes() }

// RingNodeID is the node in ring row (1..ElementsUp-1) at column col, wrapping around
func (p Params) RingNodeID(row, col int) int {
	return 2 + (row-1)*p.ElementsAround + mod(col, p.ElementsAround)
}

func mod(i, n int) int {
	return ((i % n) + n) % n
}
