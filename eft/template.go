package eft

import (
	"fmt"
)

/*
An element field template (EFT) describes how the parameters of a bicubic
Hermite element are obtained from the nodes it references.

The reference element has 4 basis nodes (slots), numbered 1..4 with xi1
varying fastest:

	3 ---- 4     xi2
	|      |      ^
	|      |      |
	1 ---- 2      +--> xi1

Each slot carries 4 functions: the value, d/dxi1, d/dxi2 and d2/dxi1dxi2.
A function is a sum of terms, each term reads one parameter (local node,
value label, version) and multiplies it by the product of zero or more local
scale factors. A function with no terms is identically zero.

Slots and local nodes are decoupled: when two slots read the same local node
the element is collapsed, which is how a quadrilateral reference shape
describes a triangle at a pole.
*/

type ValueLabel uint8

const (
	Value ValueLabel = iota
	DS1
	DS2
	DS1DS2
)

var Labels = [NumFunctionsPerNode]ValueLabel{Value, DS1, DS2, DS1DS2}

func (vl ValueLabel) String() string {
	return [...]string{"VALUE", "D_DS1", "D_DS2", "D2_DS1DS2"}[vl]
}

type ScaleFactorType uint8

const (
	ScaleFactorElementGeneral ScaleFactorType = iota
	ScaleFactorNodeGeneral
)

func (st ScaleFactorType) String() string {
	return [...]string{"ELEMENT_GENERAL", "NODE_GENERAL"}[st]
}

const (
	NumBasisNodes       = 4
	NumFunctionsPerNode = 4
	NumFunctions        = NumBasisNodes * NumFunctionsPerNode
)

type Term struct {
	LocalNode    int // 1-based
	Label        ValueLabel
	Version      int   // 1-based
	ScaleFactors []int // 1-based local scale factor indices, multiplied together
}

type Function struct {
	Terms []Term
}

func (f Function) IsZero() bool { return len(f.Terms) == 0 }

type ScaleFactor struct {
	Type       ScaleFactorType
	Identifier int
}

type Template struct {
	NumLocalNodes int
	ScaleFactors  []ScaleFactor
	Functions     [NumFunctions]Function
}

// FunctionIndex maps a 1-based slot and a value label to the function index
func FunctionIndex(slot int, label ValueLabel) int {
	return (slot-1)*NumFunctionsPerNode + int(label)
}

// NewBicubicHermite returns the identity template: every function of slot n
// reads the same labelled parameter, version 1, at local node n
func NewBicubicHermite() (t *Template) {
	t = &Template{NumLocalNodes: NumBasisNodes}
	for slot := 1; slot <= NumBasisNodes; slot++ {
		for _, label := range Labels {
			t.Functions[FunctionIndex(slot, label)] = Function{
				Terms: []Term{{LocalNode: slot, Label: label, Version: 1}},
			}
		}
	}
	return
}

func (t *Template) SetNumberOfLocalNodes(n int) { t.NumLocalNodes = n }

func (t *Template) SetNumberOfLocalScaleFactors(n int) {
	sf := make([]ScaleFactor, n)
	copy(sf, t.ScaleFactors)
	t.ScaleFactors = sf
}

func (t *Template) NumberOfLocalScaleFactors() int { return len(t.ScaleFactors) }

func (t *Template) SetScaleFactor(index int, sfType ScaleFactorType, identifier int) {
	t.checkScaleFactorIndex(index)
	t.ScaleFactors[index-1] = ScaleFactor{Type: sfType, Identifier: identifier}
}

func (t *Template) SetScaleFactorIdentifier(index, identifier int) {
	t.checkScaleFactorIndex(index)
	t.ScaleFactors[index-1].Identifier = identifier
}

func (t *Template) ScaleFactorIdentifiers() (ids []int) {
	ids = make([]int, len(t.ScaleFactors))
	for i, sf := range t.ScaleFactors {
		ids[i] = sf.Identifier
	}
	return
}

func (t *Template) Function(slot int, label ValueLabel) Function {
	return t.Functions[FunctionIndex(slot, label)]
}

// SetFunctionNumberOfTerms resizes a function, new terms are zero valued
// until set. Zero terms makes the function identically zero.
func (t *Template) SetFunctionNumberOfTerms(slot int, label ValueLabel, n int) {
	f := &t.Functions[FunctionIndex(slot, label)]
	terms := make([]Term, n)
	copy(terms, f.Terms)
	f.Terms = terms
}

func (t *Template) SetTermNodeParameter(slot int, label ValueLabel, term, localNode int,
	nodeLabel ValueLabel, version int) {
	tm := t.term(slot, label, term)
	tm.LocalNode, tm.Label, tm.Version = localNode, nodeLabel, version
}

func (t *Template) SetTermScaling(slot int, label ValueLabel, term int, scaleFactors ...int) {
	tm := t.term(slot, label, term)
	tm.ScaleFactors = append([]int(nil), scaleFactors...)
}

func (t *Template) term(slot int, label ValueLabel, term int) *Term {
	f := &t.Functions[FunctionIndex(slot, label)]
	if term < 1 || term > len(f.Terms) {
		panic(fmt.Errorf("term %d out of range for slot %d %s with %d terms",
			term, slot, label, len(f.Terms)))
	}
	return &f.Terms[term-1]
}

func (t *Template) checkScaleFactorIndex(index int) {
	if index < 1 || index > len(t.ScaleFactors) {
		panic(fmt.Errorf("scale factor index %d out of range [1,%d]", index, len(t.ScaleFactors)))
	}
}

// AliasMap returns the local node read by each slot's value function, 0 for
// a slot whose value is not read from a node
func (t *Template) AliasMap() (aliases [NumBasisNodes]int) {
	for slot := 1; slot <= NumBasisNodes; slot++ {
		f := t.Function(slot, Value)
		if len(f.Terms) > 0 {
			aliases[slot-1] = f.Terms[0].LocalNode
		}
	}
	return
}

// ReadsLabel reports whether any term of any function reads a node parameter with the label
func (t *Template) ReadsLabel(label ValueLabel) bool {
	for _, f := range t.Functions {
		for _, tm := range f.Terms {
			if tm.Label == label {
				return true
			}
		}
	}
	return false
}

func (t *Template) NumberOfTerms() (n int) {
	for _, f := range t.Functions {
		n += len(f.Terms)
	}
	return
}

func (t *Template) Clone() (tc *Template) {
	tc = &Template{
		NumLocalNodes: t.NumLocalNodes,
		ScaleFactors:  append([]ScaleFactor(nil), t.ScaleFactors...),
	}
	for i, f := range t.Functions {
		if f.Terms == nil {
			continue
		}
		terms := make([]Term, len(f.Terms))
		for j, tm := range f.Terms {
			terms[j] = tm
			terms[j].ScaleFactors = append([]int(nil), tm.ScaleFactors...)
		}
		tc.Functions[i].Terms = terms
	}
	return
}

// WithScaleFactorIdentifiers instantiates the template for one element,
// the receiver is left unchanged
func (t *Template) WithScaleFactorIdentifiers(ids []int) (tc *Template, err error) {
	if len(ids) != len(t.ScaleFactors) {
		err = fmt.Errorf("%w: have %d scale factor identifiers for %d scale factors",
			ErrInvalid, len(ids), len(t.ScaleFactors))
		return
	}
	tc = t.Clone()
	for i, id := range ids {
		tc.SetScaleFactorIdentifier(i+1, id)
	}
	return
}

// Validate checks every term reads a local node and scale factors that exist
func (t *Template) Validate() (err error) {
	if t.NumLocalNodes < 1 {
		return fmt.Errorf("%w: number of local nodes is %d", ErrInvalid, t.NumLocalNodes)
	}
	used := make([]bool, t.NumLocalNodes)
	for i, f := range t.Functions {
		slot, label := i/NumFunctionsPerNode+1, ValueLabel(i%NumFunctionsPerNode)
		for j, tm := range f.Terms {
			if tm.LocalNode < 1 || tm.LocalNode > t.NumLocalNodes {
				return fmt.Errorf("%w: slot %d %s term %d reads local node %d of %d",
					ErrInvalid, slot, label, j+1, tm.LocalNode, t.NumLocalNodes)
			}
			if tm.Version < 1 {
				return fmt.Errorf("%w: slot %d %s term %d reads version %d",
					ErrInvalid, slot, label, j+1, tm.Version)
			}
			for _, sf := range tm.ScaleFactors {
				if sf < 1 || sf > len(t.ScaleFactors) {
					return fmt.Errorf("%w: slot %d %s term %d uses scale factor %d of %d",
						ErrInvalid, slot, label, j+1, sf, len(t.ScaleFactors))
				}
			}
			used[tm.LocalNode-1] = true
		}
	}
	for n, u := range used {
		if !u {
			return fmt.Errorf("%w: local node %d is not read by any function", ErrInvalid, n+1)
		}
	}
	return
}
