package meshtypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/meshgen/femodel"
)

type fakeMeshType struct{}

func (fakeMeshType) Name() string {
	return "Fake 1"
}

func (fakeMeshType) DefaultOptions() Options {
	return Options{"n": 1}
}

func (fakeMeshType) OrderedOptionNames() []string {
	return []string{"n"}
}

func (fakeMeshType) CheckOptions(Options) {}

func (fakeMeshType) GenerateMesh(femodel.Region, Options) (err error) {
	return
}

func TestRegistry(t *testing.T) {
	Register(fakeMeshType{})
	assert.Contains(t, Names(), "Fake 1")
	mt, err := Lookup("Fake 1")
	require.NoError(t, err)
	assert.Equal(t, []string{"n"}, mt.OrderedOptionNames())
	_, err = Lookup("Missing")
	assert.Error(t, err)
	assert.Panics(t, func() { Register(fakeMeshType{}) })
}
