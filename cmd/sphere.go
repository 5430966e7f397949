/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/notargets/meshgen/InputParameters"
	"github.com/notargets/meshgen/femodel/memory"
	"github.com/notargets/meshgen/meshtypes"
	"github.com/notargets/meshgen/meshtypes/sphere2d"
	"github.com/notargets/meshgen/utils"
)

type SphereModel struct {
	InputFile string
	Plot      bool
	View      utils.View
	Delay     time.Duration
	Profile   string
}

// Flags that override a mesh option, and the option they set
var sphereOptionFlags = map[string]string{
	"elementsUp":       sphere2d.ElementsUp,
	"elementsAround":   sphere2d.ElementsAround,
	"crossDerivatives": sphere2d.UseCrossDerivatives,
}

// SphereCmd represents the sphere command
var SphereCmd = &cobra.Command{
	Use:   "sphere",
	Short: "Bicubic Hermite surface mesh of a sphere with collapsed elements at the poles",
	Long: `
Generates the surface of a sphere of unit diameter, elementsUp elements from pole to pole
and elementsAround elements around each ring of latitude,

meshgen sphere -u 8 -a 8 -g`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("sphere called")
		sm := &SphereModel{}
		sm.InputFile, _ = cmd.Flags().GetString("inputFile")
		sm.Plot, _ = cmd.Flags().GetBool("plot")
		viewLabel, _ := cmd.Flags().GetString("view")
		if sm.View, err = utils.NewView(viewLabel); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		dr, _ := cmd.Flags().GetInt("delay")
		sm.Delay = time.Duration(dr) * time.Millisecond
		sm.Profile, _ = cmd.Flags().GetString("profile")
		switch sm.Profile {
		case "":
		case "cpu":
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		case "mem":
			defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
		default:
			fmt.Printf("error: unknown profile %q, use cpu or mem\n", sm.Profile)
			os.Exit(1)
		}
		options := processInput(sm, viper.GetViper(), cmd.Flags())
		RunSphere(sm, options)
	},
}

func init() {
	rootCmd.AddCommand(SphereCmd)
	addSphereFlags(SphereCmd.Flags())
}

func addSphereFlags(fs *pflag.FlagSet) {
	defaults := sphere2d.MeshType{}.DefaultOptions()
	fs.IntP("elementsUp", "u", defaults[sphere2d.ElementsUp].(int), "number of elements from pole to pole, at least 2")
	fs.IntP("elementsAround", "a", defaults[sphere2d.ElementsAround].(int), "number of elements around each ring, at least 2")
	fs.BoolP("crossDerivatives", "x", defaults[sphere2d.UseCrossDerivatives].(bool), "store a zero cross derivative at ring nodes")
	fs.StringP("inputFile", "I", "", "YAML (.yaml) or HCL (.hcl) file of mesh options")
	fs.BoolP("plot", "g", false, "display the element edges projected onto the view plane")
	fs.StringP("view", "v", "xz", "view plane for plotting: xy, xz or yz")
	fs.IntP("delay", "d", 10000, "milliseconds to hold the plot window")
	fs.StringP("profile", "p", "", "write a cpu or mem profile to the working directory")
}

func processInput(sm *SphereModel, v *viper.Viper, flags *pflag.FlagSet) (options meshtypes.Options) {
	var (
		err error
		mp  = &InputParameters.MeshParameters{}
		mt  = sphere2d.MeshType{}
	)
	if len(sm.InputFile) != 0 {
		if err = mp.ReadFile(sm.InputFile); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			fmt.Printf("Example File:%s\n", InputParameters.ExampleFile)
			os.Exit(1)
		}
		mp.Print()
		if len(mp.MeshType) != 0 && mp.MeshType != mt.Name() {
			fmt.Printf("error: input file is for mesh type [%s], not [%s]\n", mp.MeshType, mt.Name())
			os.Exit(1)
		}
	}
	if options, err = resolveOptions(mt, mp, v, flags); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	return
}

/*
resolveOptions layers the mesh options, later sources winning: mesh type
defaults, the input file, config file or environment entries, then flags given
on the command line. The result has been through CheckOptions.
*/
func resolveOptions(mt meshtypes.MeshType, mp *InputParameters.MeshParameters, v *viper.Viper,
	flags *pflag.FlagSet) (options meshtypes.Options, err error) {
	options = mp.Options(mt.DefaultOptions())
	for flagName, optionName := range sphereOptionFlags {
		var val interface{}
		f := flags.Lookup(flagName)
		if f == nil {
			return nil, fmt.Errorf("no flag for option %q", optionName)
		}
		switch {
		case f.Changed:
			if f.Value.Type() == "bool" {
				val, err = flags.GetBool(flagName)
			} else {
				val, err = flags.GetInt(flagName)
			}
			if err != nil {
				return
			}
		case v.IsSet(flagName):
			if f.Value.Type() == "bool" {
				val = v.GetBool(flagName)
			} else {
				val = v.GetInt(flagName)
			}
		default:
			continue
		}
		options[optionName] = val
	}
	mt.CheckOptions(options)
	return
}

func RunSphere(sm *SphereModel, options meshtypes.Options) (r *memory.Region) {
	var (
		err error
		mt  = sphere2d.MeshType{}
	)
	InputParameters.PrintOptions(options, mt.OrderedOptionNames())
	r = memory.NewRegion()
	start := time.Now()
	if err = mt.GenerateMesh(r, options); err != nil {
		panic(err)
	}
	fmt.Printf("Generated in %v\n", time.Since(start))
	printSummary(r)
	if sm.Plot {
		segments, err := r.EdgeLines(8)
		if err != nil {
			panic(err)
		}
		utils.PlotSegments(segments, sm.View, sm.Delay)
	}
	return
}

func printSummary(r *memory.Region) {
	var (
		exactArea = 4 * math.Pi * sphere2d.Radius * sphere2d.Radius
	)
	fmt.Printf("[%d]\t\t\t\t= Nodes\n", r.NumberOfNodes())
	fmt.Printf("[%d]\t\t\t\t= Elements\n", r.NumberOfElements())
	fmt.Printf("[%d]\t\t\t\t= Node Scale Factors\n", r.NumberOfNodeScaleFactors())
	if area, err := r.Area(4); err != nil {
		fmt.Printf("error: %s\n", err.Error())
	} else {
		fmt.Printf("%8.5f\t\t= Surface Area, %6.3f%% from the sphere\n", area, 100*(area-exactArea)/exactArea)
	}
	if err := r.CheckScaleFactors(1.e-12); err != nil {
		fmt.Printf("error: %s\n", err.Error())
	} else {
		fmt.Printf("[%t]\t\t\t\t= Scale Factors Consistent\n", true)
	}
	closed, open := r.IsClosed()
	fmt.Printf("[%t]\t\t\t\t= Closed Surface\n", closed)
	for _, ek := range open {
		fmt.Printf("open edge %s\n", ek)
	}
}
