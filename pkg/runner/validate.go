package runner

import (
	"errors"
	"fmt"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/formatter"
	"github.com/projectdiscovery/gologger/levels"
	fileutil "github.com/projectdiscovery/utils/file"
	"github.com/projectdiscovery/zonegraph/pkg/parser"
)

// validateOptions validates the configuration options passed
func (options *Options) validateOptions() error {
	// Both verbose and silent flags were used
	if options.Verbose && options.Silent {
		return errors.New("both verbose and silent mode specified")
	}

	// Check if a zone export was provided and it exists
	if options.Input == "" {
		return errors.New("no zone file provided")
	}
	if !fileutil.FileExists(options.Input) {
		return fmt.Errorf("zone file doesn't exist: %s", options.Input)
	}

	switch parser.Format(options.Format) {
	case parser.FormatAuto, parser.FormatRoute53, parser.FormatZone:
	default:
		return fmt.Errorf("invalid input format: %s", options.Format)
	}

	if options.Origin != "" && parser.Format(options.Format) == parser.FormatRoute53 {
		gologger.Warning().Msgf("Origin is only used for zone files, ignoring it\n")
	}
	return nil
}

// configureOutput configures the output on the screen
func (options *Options) configureOutput() {
	// If the user desires verbose output, show verbose output
	if options.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	if options.NoColor {
		gologger.DefaultLogger.SetFormatter(formatter.NewCLI(true))
	}
	if options.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	}
}
