package sphere2d

import (
	"fmt"

	"github.com/notargets/meshgen/eft"
)

type ConnectivityKind uint8

const (
	Regular   ConnectivityKind = iota // 4 distinct corner nodes
	ApexSouth                         // pole, then the two ring nodes above it
	ApexNorth                         // the two ring nodes below the pole, then the pole
)

func (k ConnectivityKind) String() string {
	return [...]string{"Regular", "ApexSouth", "ApexNorth"}[k]
}

// AliasMap gives the 1-based local node each basis node slot reads
func (k ConnectivityKind) AliasMap() [eft.NumBasisNodes]int {
	switch k {
	case ApexSouth:
		return [eft.NumBasisNodes]int{1, 1, 2, 3}
	case ApexNorth:
		return [eft.NumBasisNodes]int{1, 2, 3, 3}
	default:
		return [eft.NumBasisNodes]int{1, 2, 3, 4}
	}
}

// PoleLocalNode is the local node shared by two slots, 0 for regular elements
func (k ConnectivityKind) PoleLocalNode() int {
	switch k {
	case ApexSouth:
		return 1
	case ApexNorth:
		return 3
	default:
		return 0
	}
}

func (k ConnectivityKind) NumberOfLocalNodes() (n int) {
	seen := make(map[int]bool)
	for _, local := range k.AliasMap() {
		if !seen[local] {
			seen[local] = true
			n++
		}
	}
	return
}

type Connectivity struct {
	Kind    ConnectivityKind
	NodeIDs []int // One per local node
}

// SlotNodeIDs expands the local nodes to one node per basis node slot
func (c Connectivity) SlotNodeIDs() (ids [eft.NumBasisNodes]int) {
	for slot, local := range c.Kind.AliasMap() {
		ids[slot] = c.NodeIDs[local-1]
	}
	return
}

// Validate checks the connectivity against the template it will be created
// with: both must alias the same slots, and the node count must match the
// template's local nodes rather than its slots
func (c Connectivity) Validate(t *eft.Template) (err error) {
	if am, tam := c.Kind.AliasMap(), t.AliasMap(); am != tam {
		return fmt.Errorf("%s connectivity aliases slots to %v, template to %v", c.Kind, am, tam)
	}
	if n := c.Kind.NumberOfLocalNodes(); len(c.NodeIDs) != n || t.NumLocalNodes != n {
		return fmt.Errorf("%s connectivity has %d nodes, needs %d, template has %d local nodes",
			c.Kind, len(c.NodeIDs), n, t.NumLocalNodes)
	}
	seen := make(map[int]bool, len(c.NodeIDs))
	for _, id := range c.NodeIDs {
		if seen[id] {
			return fmt.Errorf("%s connectivity repeats node %d in %v", c.Kind, id, c.NodeIDs)
		}
		seen[id] = true
	}
	return
}
