// Package femodel describes the finite element field runtime a mesh generator
// populates: a coordinate field, node templates and nodes, element field
// templates and elements.
package femodel

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/meshgen/eft"
)

var (
	ErrUndefinedCoordinates = errors.New("coordinate field is not defined")
	ErrDuplicateID          = errors.New("identifier already in use")
	ErrInvalidID            = errors.New("identifiers must be positive")
	ErrUnknownTemplate      = errors.New("unknown template")
	ErrUnknownNode          = errors.New("unknown node")
	ErrInvalidTemplate      = errors.New("invalid template")
	ErrNodeParameters       = errors.New("node parameters do not match node template")
	ErrNodeCount            = errors.New("number of nodes does not match element field template")
	ErrScaleFactorCount     = errors.New("number of scale factors does not match element field template")
	ErrMissingParameter     = errors.New("element reads a node parameter that is not stored")
)

type CoordinateSystem uint8

const (
	RectangularCartesian CoordinateSystem = iota
)

func (cs CoordinateSystem) String() string {
	return [...]string{"RECTANGULAR_CARTESIAN"}[cs]
}

type CoordinateField struct {
	Name           string
	ComponentNames []string
	System         CoordinateSystem
}

func NewCoordinates(name string) CoordinateField {
	return CoordinateField{
		Name:           name,
		ComponentNames: []string{"x", "y", "z"},
		System:         RectangularCartesian,
	}
}

// NodeTemplate gives the number of versions stored for each value label
type NodeTemplate map[eft.ValueLabel]int

// NodeParameters holds one vector per version for each value label
type NodeParameters map[eft.ValueLabel][]r3.Vec

type Shape uint8

const (
	ShapeSquare Shape = iota
)

func (s Shape) String() string {
	return [...]string{"SQUARE"}[s]
}

/*
Region is the geometry backend a mesh type generates into. Definitions are
applied when they are made: an element captures the element template bound
to its template name at the time CreateElement is called, so a template can
be redefined between elements.
*/
type Region interface {
	// BeginChange defers the backend's change processing until the matching EndChange
	BeginChange()
	EndChange()
	DefineCoordinates(field CoordinateField) error
	DefineNodeTemplate(name string, nt NodeTemplate) error
	CreateNode(id int, templateName string, params NodeParameters) error
	DefineElementTemplate(name string, shape Shape, t *eft.Template) error
	CreateElement(id int, templateName string, nodeIDs []int, scaleFactors []float64) error
}
