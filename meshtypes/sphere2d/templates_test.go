package sphere2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/meshgen/eft"
)

func checkPoleSlot(t *testing.T, tp *eft.Template, slot, pole, sf1 int) {
	t.Helper()
	assert.Equal(t, []eft.Term{{LocalNode: pole, Label: eft.Value, Version: 1}},
		tp.Function(slot, eft.Value).Terms)
	assert.True(t, tp.Function(slot, eft.DS1).IsZero())
	assert.Equal(t, []eft.Term{
		{LocalNode: pole, Label: eft.DS1, Version: 1, ScaleFactors: []int{sf1}},
		{LocalNode: pole, Label: eft.DS2, Version: 1, ScaleFactors: []int{sf1 + 1}},
	}, tp.Function(slot, eft.DS2).Terms)
	assert.True(t, tp.Function(slot, eft.DS1DS2).IsZero())
}

func checkDirectSlot(t *testing.T, tp *eft.Template, slot, local int, cross bool) {
	t.Helper()
	for _, label := range []eft.ValueLabel{eft.Value, eft.DS1, eft.DS2} {
		assert.Equal(t, []eft.Term{{LocalNode: local, Label: label, Version: 1}},
			tp.Function(slot, label).Terms, "slot %d %s", slot, label)
	}
	if cross {
		assert.Equal(t, []eft.Term{{LocalNode: local, Label: eft.DS1DS2, Version: 1}},
			tp.Function(slot, eft.DS1DS2).Terms)
	} else {
		assert.True(t, tp.Function(slot, eft.DS1DS2).IsZero())
	}
}

func TestBuildTemplates(t *testing.T) {
	for _, cross := range []bool{false, true} {
		tp := BuildTemplates(cross)
		for _, kind := range []ConnectivityKind{Regular, ApexSouth, ApexNorth} {
			require.NoError(t, tp.For(kind).Validate())
			assert.Equal(t, kind.AliasMap(), tp.For(kind).AliasMap())
			assert.Equal(t, kind.NumberOfLocalNodes(), tp.For(kind).NumLocalNodes)
			assert.Equal(t, cross, tp.For(kind).ReadsLabel(eft.DS1DS2))
		}

		assert.Equal(t, 4, tp.Regular.NumLocalNodes)
		assert.Equal(t, 0, tp.Regular.NumberOfLocalScaleFactors())
		for slot := 1; slot <= 4; slot++ {
			checkDirectSlot(t, tp.Regular, slot, slot, cross)
		}

		for _, apex := range []*eft.Template{tp.ApexSouth, tp.ApexNorth} {
			assert.Equal(t, 3, apex.NumLocalNodes)
			assert.Equal(t, []int{1, 2, 103, 104}, apex.ScaleFactorIdentifiers())
			for _, sf := range apex.ScaleFactors {
				assert.Equal(t, eft.ScaleFactorNodeGeneral, sf.Type)
			}
		}
		checkPoleSlot(t, tp.ApexSouth, 1, 1, 1)
		checkPoleSlot(t, tp.ApexSouth, 2, 1, 3)
		checkDirectSlot(t, tp.ApexSouth, 3, 2, cross)
		checkDirectSlot(t, tp.ApexSouth, 4, 3, cross)

		checkDirectSlot(t, tp.ApexNorth, 1, 1, cross)
		checkDirectSlot(t, tp.ApexNorth, 2, 2, cross)
		checkPoleSlot(t, tp.ApexNorth, 3, 3, 1)
		checkPoleSlot(t, tp.ApexNorth, 4, 3, 3)
	}
	tp := BuildTemplates(false)
	assert.Equal(t, 12, tp.Regular.NumberOfTerms())
	// 2 pole slots with a value and a 2 term map, 2 direct slots without cross
	assert.Equal(t, 2*3+2*3, tp.ApexSouth.NumberOfTerms())
	assert.Equal(t, 2*3+2*3, tp.ApexNorth.NumberOfTerms())
}

func TestConnectivityValidate(t *testing.T) {
	tp := BuildTemplates(false)
	assert.Equal(t, 4, Regular.NumberOfLocalNodes())
	assert.Equal(t, 3, ApexSouth.NumberOfLocalNodes())
	assert.Equal(t, 0, Regular.PoleLocalNode())
	assert.Equal(t, 1, ApexSouth.PoleLocalNode())
	assert.Equal(t, 3, ApexNorth.PoleLocalNode())

	south := Connectivity{Kind: ApexSouth, NodeIDs: []int{1, 2, 3}}
	assert.NoError(t, south.Validate(tp.ApexSouth))
	assert.Equal(t, [4]int{1, 1, 2, 3}, south.SlotNodeIDs())
	// Same node count as the north template, but the aliasing differs
	assert.Error(t, south.Validate(tp.ApexNorth))
	assert.Error(t, south.Validate(tp.Regular))

	north := Connectivity{Kind: ApexNorth, NodeIDs: []int{4, 5, 9}}
	assert.NoError(t, north.Validate(tp.ApexNorth))
	assert.Equal(t, [4]int{4, 5, 9, 9}, north.SlotNodeIDs())

	assert.Error(t, Connectivity{Kind: ApexSouth, NodeIDs: []int{1, 2, 3, 4}}.Validate(tp.ApexSouth))
	assert.Error(t, Connectivity{Kind: ApexSouth, NodeIDs: []int{1, 2, 2}}.Validate(tp.ApexSouth))
	assert.NoError(t, Connectivity{Kind: Regular, NodeIDs: []int{2, 3, 6, 7}}.Validate(tp.Regular))
}
