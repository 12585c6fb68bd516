package main

import (
	"fmt"
	"os"

	"github.com/niptools/niptest/doctest"
	"github.com/niptools/niptest/engine"
	"github.com/niptools/niptest/knownfail"
	"github.com/niptools/niptest/numspace"
)

func main() {
	os.Exit(launch(os.Args[1:]))
}

// runEngine is replaced in tests.
var runEngine = engine.Main

func launch(args []string) int {
	if err := numspace.PrepareImports(); err != nil {
		fmt.Fprintf(os.Stderr, "niptest: %s\n", err)
		return 2
	}
	return runEngine(buildArgs(args), doctest.New(), knownfail.New())
}
