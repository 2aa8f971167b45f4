package main

import (
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/zonegraph/pkg/runner"
)

func main() {
	// Parse the command line flags and read config files
	options := runner.ParseOptions()

	zonegraphRunner, err := runner.New(options)
	if err != nil {
		gologger.Fatal().Msgf("Could not create runner: %s\n", err)
	}

	if err := zonegraphRunner.Run(); err != nil {
		gologger.Fatal().Msgf("Could not render zone graph: %s\n", err)
	}
}
