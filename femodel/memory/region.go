// Package memory is an in-process femodel.Region that stores everything it is
// given and can interpolate the coordinate field over its elements.
package memory

import (
	"fmt"
	"sort"

	"github.com/notargets/meshgen/eft"
	"github.com/notargets/meshgen/femodel"
)

type Node struct {
	ID       int
	Template string
	Params   femodel.NodeParameters
}

type Element struct {
	ID           int
	Shape        femodel.Shape
	Template     *eft.Template // Snapshot of the bound template at creation
	NodeIDs      []int
	ScaleFactors []float64
}

type elementTemplate struct {
	shape femodel.Shape
	eft   *eft.Template
}

type Region struct {
	coordinates      *femodel.CoordinateField
	nodeTemplates    map[string]femodel.NodeTemplate
	elementTemplates map[string]elementTemplate
	nodes            map[int]*Node
	elements         map[int]*Element
	changeDepth      int
	batches          int
}

var _ femodel.Region = (*Region)(nil)

func NewRegion() *Region {
	return &Region{
		nodeTemplates:    make(map[string]femodel.NodeTemplate),
		elementTemplates: make(map[string]elementTemplate),
		nodes:            make(map[int]*Node),
		elements:         make(map[int]*Element),
	}
}

func (r *Region) BeginChange() { r.changeDepth++ }

func (r *Region) EndChange() {
	if r.changeDepth == 0 {
		panic("EndChange called without a matching BeginChange")
	}
	r.changeDepth--
	if r.changeDepth == 0 {
		r.batches++
	}
}

// InChange is true between the outermost BeginChange and its EndChange
func (r *Region) InChange() bool { return r.changeDepth > 0 }

// Batches counts completed outermost change batches
func (r *Region) Batches() int { return r.batches }

func (r *Region) IsEmpty() bool { return len(r.nodes) == 0 && len(r.elements) == 0 }

func (r *Region) Coordinates() (cf femodel.CoordinateField, ok bool) {
	if r.coordinates == nil {
		return
	}
	return *r.coordinates, true
}

func (r *Region) DefineCoordinates(field femodel.CoordinateField) (err error) {
	if len(field.ComponentNames) != 3 {
		return fmt.Errorf("coordinate field %q needs 3 components, have %d",
			field.Name, len(field.ComponentNames))
	}
	cf := field
	cf.ComponentNames = append([]string(nil), field.ComponentNames...)
	r.coordinates = &cf
	return
}

func (r *Region) DefineNodeTemplate(name string, nt femodel.NodeTemplate) (err error) {
	if r.coordinates == nil {
		return fmt.Errorf("node template %q: %w", name, femodel.ErrUndefinedCoordinates)
	}
	ntc := make(femodel.NodeTemplate, len(nt))
	for label, versions := range nt {
		if versions < 1 {
			return fmt.Errorf("node template %q: %s has %d versions", name, label, versions)
		}
		ntc[label] = versions
	}
	r.nodeTemplates[name] = ntc
	return
}

func (r *Region) CreateNode(id int, templateName string, params femodel.NodeParameters) (err error) {
	var (
		nt femodel.NodeTemplate
		ok bool
	)
	if id < 1 {
		return fmt.Errorf("node %d: %w", id, femodel.ErrInvalidID)
	}
	if _, ok = r.nodes[id]; ok {
		return fmt.Errorf("node %d: %w", id, femodel.ErrDuplicateID)
	}
	if nt, ok = r.nodeTemplates[templateName]; !ok {
		return fmt.Errorf("node %d: node template %q: %w", id, templateName, femodel.ErrUnknownTemplate)
	}
	if len(params) != len(nt) {
		return fmt.Errorf("node %d: have %d value labels, template %q stores %d: %w",
			id, len(params), templateName, len(nt), femodel.ErrNodeParameters)
	}
	pc := make(femodel.NodeParameters, len(params))
	for label, vals := range params {
		if versions, defined := nt[label]; !defined || versions != len(vals) {
			return fmt.Errorf("node %d: %s has %d versions, template %q stores %d: %w",
				id, label, len(vals), templateName, versions, femodel.ErrNodeParameters)
		}
		pc[label] = append(pc[label], vals...)
	}
	r.nodes[id] = &Node{ID: id, Template: templateName, Params: pc}
	return
}

func (r *Region) DefineElementTemplate(name string, shape femodel.Shape, t *eft.Template) (err error) {
	if r.coordinates == nil {
		return fmt.Errorf("element template %q: %w", name, femodel.ErrUndefinedCoordinates)
	}
	if t == nil {
		return fmt.Errorf("element template %q: no field template: %w", name, femodel.ErrInvalidTemplate)
	}
	if err = t.Validate(); err != nil {
		return fmt.Errorf("element template %q: %w: %v", name, femodel.ErrInvalidTemplate, err)
	}
	r.elementTemplates[name] = elementTemplate{shape: shape, eft: t.Clone()}
	return
}

func (r *Region) CreateElement(id int, templateName string, nodeIDs []int, scaleFactors []float64) (err error) {
	var (
		et elementTemplate
		ok bool
	)
	if id < 1 {
		return fmt.Errorf("element %d: %w", id, femodel.ErrInvalidID)
	}
	if _, ok = r.elements[id]; ok {
		return fmt.Errorf("element %d: %w", id, femodel.ErrDuplicateID)
	}
	if et, ok = r.elementTemplates[templateName]; !ok {
		return fmt.Errorf("element %d: element template %q: %w", id, templateName, femodel.ErrUnknownTemplate)
	}
	if len(nodeIDs) != et.eft.NumLocalNodes {
		return fmt.Errorf("element %d: have %d nodes for %d local nodes: %w",
			id, len(nodeIDs), et.eft.NumLocalNodes, femodel.ErrNodeCount)
	}
	if len(scaleFactors) != et.eft.NumberOfLocalScaleFactors() {
		return fmt.Errorf("element %d: have %d scale factors for %d: %w",
			id, len(scaleFactors), et.eft.NumberOfLocalScaleFactors(), femodel.ErrScaleFactorCount)
	}
	for _, nid := range nodeIDs {
		if _, ok = r.nodes[nid]; !ok {
			return fmt.Errorf("element %d: node %d: %w", id, nid, femodel.ErrUnknownNode)
		}
	}
	for i, f := range et.eft.Functions {
		for _, tm := range f.Terms {
			node := r.nodes[nodeIDs[tm.LocalNode-1]]
			if len(node.Params[tm.Label]) < tm.Version {
				return fmt.Errorf("element %d: function %d reads %s version %d of node %d: %w",
					id, i+1, tm.Label, tm.Version, node.ID, femodel.ErrMissingParameter)
			}
		}
	}
	// The template was cloned when defined and is not mutated afterwards, so
	// elements created from the same definition can share it
	r.elements[id] = &Element{
		ID:           id,
		Shape:        et.shape,
		Template:     et.eft,
		NodeIDs:      append([]int(nil), nodeIDs...),
		ScaleFactors: append([]float64(nil), scaleFactors...),
	}
	return
}

func (r *Region) NumberOfNodes() int    { return len(r.nodes) }
func (r *Region) NumberOfElements() int { return len(r.elements) }

func (r *Region) Node(id int) (n *Node, ok bool) {
	n, ok = r.nodes[id]
	return
}

func (r *Region) Element(id int) (e *Element, ok bool) {
	e, ok = r.elements[id]
	return
}

func (r *Region) NodeIDs() []int { return sortedKeys(r.nodes) }

func (r *Region) ElementIDs() []int { return sortedKeys(r.elements) }

func sortedKeys[T any](m map[int]T) (keys []int) {
	keys = make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return
}
