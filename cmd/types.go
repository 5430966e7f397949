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

	"github.com/spf13/cobra"

	"github.com/notargets/meshgen/meshtypes"
)

// TypesCmd represents the types command
var TypesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the registered mesh types and their default options",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range meshtypes.Names() {
			if err := printMeshType(name); err != nil {
				panic(err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(TypesCmd)
}

func printMeshType(name string) (err error) {
	var mt meshtypes.MeshType
	if mt, err = meshtypes.Lookup(name); err != nil {
		return
	}
	fmt.Printf("%s\n", mt.Name())
	defaults := mt.DefaultOptions()
	for _, option := range mt.OrderedOptionNames() {
		fmt.Printf("\t%-24s%v\n", option, defaults[option])
	}
	return
}
