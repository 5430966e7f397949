package main

import "github.com/notargets/meshgen/cmd"

func main() {
	cmd.Execute()
}
