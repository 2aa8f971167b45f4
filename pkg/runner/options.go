package runner

import (
	"os"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/zonegraph/pkg/parser"
)

// Options contains the configuration options for rendering a zone graph
type Options struct {
	Input   string // Input is the zone export to render
	Format  string // Format is the format of the input (auto, route53, zone)
	Origin  string // Origin completes relative names in zone files
	Output  string // Output is the file to write the graph to (optional)
	JSON    bool   // JSON writes the graph as JSON instead of DOT
	Silent  bool   // Silent suppresses any extra text and only writes the graph to screen
	Version bool   // Version specifies if we should just show version and exit
	Verbose bool   // Verbose flag indicates whether to show verbose output or not
	NoColor bool   // No-Color disables the colored output
}

// ParseOptions parses the command line flags provided by a user
func ParseOptions() *Options {
	options := &Options{}

	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`zonegraph renders the routing topology of a DNS zone export as a Graphviz graph.

Usage:
  zonegraph [flags] <zonefile>`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&options.Input, "input", "i", "", "zone export to render (route53 json or rfc1035 zone file)"),
		flagSet.StringVarP(&options.Format, "format", "f", string(parser.FormatAuto), "input format (auto, route53, zone)"),
		flagSet.StringVar(&options.Origin, "origin", "", "origin for relative names in zone files"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&options.Output, "output", "o", "", "file to write output to (optional)"),
		flagSet.BoolVar(&options.JSON, "json", false, "write graph as json instead of dot"),
	)

	flagSet.CreateGroup("config", "Configuration",
		flagSet.BoolVar(&options.Silent, "silent", false, "show only the graph in output"),
		flagSet.BoolVarP(&options.Verbose, "verbose", "v", false, "show verbose output"),
		flagSet.BoolVarP(&options.NoColor, "no-color", "nc", false, "disable color in output"),
		flagSet.BoolVar(&options.Version, "version", false, "show version of zonegraph"),
		flagSet.CallbackVarP(GetUpdateCallback(), "update", "up", "update zonegraph to latest version"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not parse flags: %s\n", err)
	}

	// The zone export may also be given as the positional argument
	if options.Input == "" && flagSet.CommandLine.NArg() > 0 {
		options.Input = flagSet.CommandLine.Arg(0)
	}

	// Read the inputs and configure the logging
	options.configureOutput()

	// Show the user the banner
	showBanner()

	if options.Version {
		gologger.Info().Msgf("Current Version: %s\n", version)
		os.Exit(0)
	}
	// Validate the options passed by the user and if any
	// invalid options have been used, exit.
	if err := options.validateOptions(); err != nil {
		gologger.Error().Msgf("Program exiting: %s\n", err)
		gologger.Print().Msgf("Usage: %s [flags] <zonefile>\n", os.Args[0])
		os.Exit(1)
	}

	return options
}
