package runner

import (
	"fmt"
	"os"
	"time"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/zonegraph/pkg/graph"
	"github.com/projectdiscovery/zonegraph/pkg/parser"
	"github.com/projectdiscovery/zonegraph/pkg/record"
)

// Runner is a client for rendering a zone export as a graph.
type Runner struct {
	options *Options
}

// New creates a new client for rendering a zone export.
func New(options *Options) (*Runner, error) {
	if options.Format == "" {
		options.Format = string(parser.FormatAuto)
	}
	return &Runner{options: options}, nil
}

// Run reads the zone export, builds the graph and writes it out
func (r *Runner) Run() error {
	now := time.Now()
	records, err := r.readRecords()
	if err != nil {
		return err
	}
	gologger.Info().Msgf("Read %d record sets from %s in %s\n", len(records), r.options.Input, time.Since(now))

	g := graph.New(records)
	stats := g.Stats()
	gologger.Info().Msgf("Built graph with %d nodes and %d edges\n", stats.Nodes, stats.Edges)

	output, err := r.render(g)
	if err != nil {
		return err
	}
	return r.writeOutput(output)
}

// readRecords reads and normalizes all the record sets of the input
func (r *Runner) readRecords() ([]record.Record, error) {
	var records []record.Record

	err := parser.ParseFormatFile(r.options.Input, parser.Format(r.options.Format), r.options.Origin, func(raw record.RawRecord) error {
		if graph.Excluded(raw.Type) {
			gologger.Debug().Msgf("Skipping %s record %s\n", raw.Type, raw.Name)
		}
		records = append(records, record.Normalize(raw))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not read zone export: %w", err)
	}
	return records, nil
}

func (r *Runner) render(g *graph.Graph) (string, error) {
	if !r.options.JSON {
		return g.Render(), nil
	}
	data, err := g.JSON()
	if err != nil {
		return "", fmt.Errorf("could not marshal graph as json: %w", err)
	}
	return string(data) + "\n", nil
}

// writeOutput writes the graph to the screen and the output file
// if the user has asked for one.
func (r *Runner) writeOutput(output string) error {
	if r.options.Output != "" {
		if err := os.WriteFile(r.options.Output, []byte(output), 0o644); err != nil {
			return fmt.Errorf("could not write output file: %w", err)
		}
		gologger.Info().Msgf("Graph written to %s\n", r.options.Output)
	}
	gologger.Silent().Msgf("%s", output)
	return nil
}
