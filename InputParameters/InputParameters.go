package InputParameters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/notargets/meshgen/meshtypes"
	"github.com/notargets/meshgen/meshtypes/sphere2d"
)

// Parameters obtained from a YAML or HCL input file, unset entries keep the mesh type default
type MeshParameters struct {
	Title               string `json:"Title" hcl:"Title,optional"`
	MeshType            string `json:"MeshType" hcl:"MeshType,optional"`
	ElementsUp          *int   `json:"ElementsUp" hcl:"ElementsUp,optional"`
	ElementsAround      *int   `json:"ElementsAround" hcl:"ElementsAround,optional"`
	UseCrossDerivatives *bool  `json:"UseCrossDerivatives" hcl:"UseCrossDerivatives,optional"`
}

const ExampleFile = `
########################################
Title: "Unit sphere"
MeshType: "2D Sphere 1"
ElementsUp: 8
ElementsAround: 8
UseCrossDerivatives: false
########################################
`

func (mp *MeshParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, mp)
}

func (mp *MeshParameters) ParseHCL(data []byte, fileName string) error {
	file, diags := hclparse.NewParser().ParseHCL(data, fileName)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL file %s: %w", fileName, diags)
	}
	if diags = gohcl.DecodeBody(file.Body, nil, mp); diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", fileName, diags)
	}
	return nil
}

// ReadFile parses fileName as HCL for a .hcl extension and as YAML otherwise
func (mp *MeshParameters) ReadFile(fileName string) (err error) {
	var data []byte
	if data, err = os.ReadFile(fileName); err != nil {
		return
	}
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".hcl":
		err = mp.ParseHCL(data, fileName)
	case ".yaml", ".yml", "":
		err = mp.Parse(data)
	default:
		err = fmt.Errorf("unknown input file type %q, use .yaml or .hcl", filepath.Ext(fileName))
	}
	return
}

// Options overlays the parameters that were set onto defaults
func (mp *MeshParameters) Options(defaults meshtypes.Options) (options meshtypes.Options) {
	options = defaults.Clone()
	if mp.ElementsUp != nil {
		options[sphere2d.ElementsUp] = *mp.ElementsUp
	}
	if mp.ElementsAround != nil {
		options[sphere2d.ElementsAround] = *mp.ElementsAround
	}
	if mp.UseCrossDerivatives != nil {
		options[sphere2d.UseCrossDerivatives] = *mp.UseCrossDerivatives
	}
	return
}

func (mp *MeshParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", mp.Title)
	fmt.Printf("[%s]\t\t= Mesh Type\n", mp.MeshType)
	if mp.ElementsUp != nil {
		fmt.Printf("[%d]\t\t\t\t= Elements Up\n", *mp.ElementsUp)
	}
	if mp.ElementsAround != nil {
		fmt.Printf("[%d]\t\t\t\t= Elements Around\n", *mp.ElementsAround)
	}
	if mp.UseCrossDerivatives != nil {
		fmt.Printf("[%t]\t\t\t= Use Cross Derivatives\n", *mp.UseCrossDerivatives)
	}
}

// PrintOptions lists options in the mesh type's order
func PrintOptions(options meshtypes.Options, names []string) {
	for _, name := range names {
		fmt.Printf("[%v]\t\t\t\t= %s\n", options[name], name)
	}
}
