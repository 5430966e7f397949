// Package meshtypes holds the interface a parameterised mesh generator offers
// its host, and the registry hosts look generators up in.
package meshtypes

import (
	"fmt"
	"sort"
	"sync"

	"github.com/notargets/meshgen/femodel"
)

type MeshType interface {
	Name() string
	DefaultOptions() Options
	// OrderedOptionNames is the order options are presented to a user in
	OrderedOptionNames() []string
	// CheckOptions corrects out of range option values in place
	CheckOptions(options Options)
	// GenerateMesh defines the mesh in region, which must be empty
	GenerateMesh(region femodel.Region, options Options) error
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]MeshType)
)

func Register(mt MeshType) {
	registryMu.Lock()
	defer registryMu.Unlock()
	name := mt.Name()
	if _, dup := registry[name]; dup {
		panic(fmt.Errorf("mesh type %q registered twice", name))
	}
	registry[name] = mt
}

func Lookup(name string) (mt MeshType, err error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	var ok bool
	if mt, ok = registry[name]; !ok {
		err = fmt.Errorf("unknown mesh type %q, have %v", name, namesLocked())
	}
	return
}

func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return namesLocked()
}

func namesLocked() (names []string) {
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
