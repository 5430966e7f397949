package sphere2d

import (
	"fmt"

	"github.com/notargets/meshgen/eft"
	"github.com/notargets/meshgen/femodel"
	"github.com/notargets/meshgen/meshtypes"
)

const (
	CoordinatesName = "coordinates"

	nodeTemplateApex    = "apex"
	nodeTemplateRing    = "ring"
	elementTemplateQuad = "regular"
)

var elementTemplateNames = map[ConnectivityKind]string{
	Regular:   elementTemplateQuad,
	ApexSouth: "apexSouth",
	ApexNorth: "apexNorth",
}

type MeshType struct{}

var _ meshtypes.MeshType = MeshType{}

func init() {
	meshtypes.Register(MeshType{})
}

func (MeshType) Name() string { return "2D Sphere 1" }

func (MeshType) DefaultOptions() meshtypes.Options {
	return meshtypes.Options{
		ElementsUp:          4,
		ElementsAround:      4,
		UseCrossDerivatives: false,
	}
}

func (MeshType) OrderedOptionNames() []string {
	return []string{ElementsUp, ElementsAround, UseCrossDerivatives}
}

func (MeshType) CheckOptions(options meshtypes.Options) { CheckOptions(options) }

/*
GenerateMesh builds the node and element records and replays them into
region inside a single change batch. Any backend error ends generation, the
region is left with whatever was created before it.
*/
func (MeshType) GenerateMesh(region femodel.Region, options meshtypes.Options) (err error) {
	var (
		p Params
	)
	if p, err = ParamsFromOptions(options); err != nil {
		return
	}
	region.BeginChange()
	defer region.EndChange()
	if err = defineFields(region, p); err != nil {
		return
	}
	for _, n := range BuildNodes(p) {
		if err = region.CreateNode(n.ID, nodeTemplateName(n), n.Parameters()); err != nil {
			return fmt.Errorf("creating %s node %d: %w", n.Kind, n.ID, err)
		}
	}
	templates := BuildTemplates(p.UseCrossDerivatives)
	if err = region.DefineElementTemplate(elementTemplateQuad, femodel.ShapeSquare,
		templates.Regular); err != nil {
		return fmt.Errorf("defining regular element template: %w", err)
	}
	for _, el := range BuildElements(p) {
		if err = createElement(region, templates, el); err != nil {
			return
		}
	}
	return
}

func defineFields(region femodel.Region, p Params) (err error) {
	if err = region.DefineCoordinates(femodel.NewCoordinates(CoordinatesName)); err != nil {
		return fmt.Errorf("defining %s: %w", CoordinatesName, err)
	}
	// The pole's cross derivative is indeterminate, apexes never store one
	apex := femodel.NodeTemplate{eft.Value: 1, eft.DS1: 1, eft.DS2: 1}
	if err = region.DefineNodeTemplate(nodeTemplateApex, apex); err != nil {
		return fmt.Errorf("defining apex node template: %w", err)
	}
	ring := femodel.NodeTemplate{eft.Value: 1, eft.DS1: 1, eft.DS2: 1}
	if p.UseCrossDerivatives {
		ring[eft.DS1DS2] = 1
	}
	if err = region.DefineNodeTemplate(nodeTemplateRing, ring); err != nil {
		return fmt.Errorf("defining ring node template: %w", err)
	}
	return
}

func nodeTemplateName(n NodeRecord) string {
	if n.Kind == RingNode {
		return nodeTemplateRing
	}
	return nodeTemplateApex
}

/*
createElement commits one element record. An apex template is instantiated
with the element's scale factor identifiers and rebound before the element
is created, as the backend applies the template bound at creation.
*/
func createElement(region femodel.Region, templates Templates, el ElementRecord) (err error) {
	var (
		kind         = el.Connectivity.Kind
		name         = elementTemplateNames[kind]
		t            = templates.For(kind)
		scaleFactors []float64
	)
	if err = el.Connectivity.Validate(t); err != nil {
		return fmt.Errorf("element %d: %w", el.ID, err)
	}
	if el.ScaleFactors != nil {
		if t, err = t.WithScaleFactorIdentifiers(el.ScaleFactors.Identifiers[:]); err != nil {
			return fmt.Errorf("element %d: %w", el.ID, err)
		}
		if err = region.DefineElementTemplate(name, femodel.ShapeSquare, t); err != nil {
			return fmt.Errorf("element %d: redefining %s template: %w", el.ID, kind, err)
		}
		scaleFactors = el.ScaleFactors.Values[:]
	}
	if err = region.CreateElement(el.ID, name, el.Connectivity.NodeIDs, scaleFactors); err != nil {
		return fmt.Errorf("creating %s element %d: %w", kind, el.ID, err)
	}
	return
}
