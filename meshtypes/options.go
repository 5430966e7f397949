package meshtypes

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrMissingOption = errors.New("missing option")
	ErrOptionType    = errors.New("option has the wrong type")
)

// Options is the dictionary of named settings a mesh type is generated from
type Options map[string]interface{}

func (o Options) Clone() (oc Options) {
	oc = make(Options, len(o))
	for k, v := range o {
		oc[k] = v
	}
	return
}

// Int accepts any integer type, and floats with an integral value as decoded from YAML/JSON
func (o Options) Int(name string) (i int, err error) {
	val, ok := o[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMissingOption, name)
	}
	switch v := val.(type) {
	case int:
		i = v
	case int32:
		i = int(v)
	case int64:
		i = int(v)
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%w: %q = %v is not an integer", ErrOptionType, name, v)
		}
		if v < float64(math.MinInt) || v >= -float64(math.MinInt) {
			return 0, fmt.Errorf("%w: %q = %v is out of integer range", ErrOptionType, name, v)
		}
		i = int(v)
	default:
		return 0, fmt.Errorf("%w: %q = %v (%T) is not an integer", ErrOptionType, name, val, val)
	}
	return
}

func (o Options) Bool(name string) (b bool, err error) {
	val, ok := o[name]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrMissingOption, name)
	}
	if b, ok = val.(bool); !ok {
		return false, fmt.Errorf("%w: %q = %v (%T) is not a boolean", ErrOptionType, name, val, val)
	}
	return
}
