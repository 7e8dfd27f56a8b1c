package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mainseq/pkg/analysis"
	"github.com/matzehuels/mainseq/pkg/errors"
	graphio "github.com/matzehuels/mainseq/pkg/io"
	"github.com/matzehuels/mainseq/pkg/metrics"
	"github.com/matzehuels/mainseq/pkg/report"
)

// Graph export formats.
const (
	graphFormatJSON = "json"
	graphFormatYAML = "yaml"
	graphFormatDOT  = "dot"
	graphFormatSVG  = "svg"
)

// graphOptions holds the graph command flags.
type graphOptions struct {
	format   string
	output   string
	detailed bool
}

// graphCommand creates the graph command.
func (c *CLI) graphCommand() *cobra.Command {
	opts := graphOptions{format: graphFormatJSON}

	cmd := &cobra.Command{
		Use:   "graph [dir|graph.json|graph.yaml]",
		Short: "Export the component graph",
		Long: `Export the component graph of a project or graph file.

JSON and YAML exports include the abstract and concrete file counts found by
scanning each component's sources, so the file can be analysed later without
the sources. DOT and SVG draw the analysed graph with nodes shaded by zone and
edges toward less stable components in red.`,
		Example: `  # Save a Maven reactor's graph for later analysis
  mainseq graph ./reactor -o graph.json

  # Render the analysed graph
  mainseq graph ./reactor -f svg --detailed -o graph.svg`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := "."
			if len(args) == 1 {
				input = args[0]
			}
			return c.runGraph(cmd, input, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: json, yaml, dot, svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show metrics in DOT and SVG node labels")

	return cmd
}

// runGraph loads, scans and writes the graph in the requested format.
func (c *CLI) runGraph(cmd *cobra.Command, input string, opts graphOptions) error {
	ctx := cmd.Context()

	write, err := graphWriter(opts)
	if err != nil {
		return err
	}

	lg, err := loadGraph(ctx, input)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(c.configPath, lg.dir)
	if err != nil {
		return err
	}
	counts, err := classify(ctx, lg, cfg)
	if err != nil {
		return err
	}

	// The analysis is only needed for diagrams; violations do not fail it.
	var res *analysis.Result
	if opts.format == graphFormatDOT || opts.format == graphFormatSVG {
		if res, err = analysis.NewRunner(loggerFromContext(ctx)).Run(ctx, lg.graph, counts); err != nil {
			return err
		}
	}

	emit := func(w io.Writer) error { return write(w, lg, counts, res) }
	if opts.output == "" {
		return emit(cmd.OutOrStdout())
	}
	if err := report.WriteFile(opts.output, emit); err != nil {
		return err
	}
	printFile(opts.output)
	return nil
}

// graphWriteFunc writes a loaded graph. res is nil unless the format draws
// the analysis.
type graphWriteFunc func(w io.Writer, lg *loadedGraph, counts metrics.Counts, res *analysis.Result) error

// graphWriter returns the writer for opts.format.
func graphWriter(opts graphOptions) (graphWriteFunc, error) {
	switch opts.format {
	case graphFormatJSON:
		return func(w io.Writer, lg *loadedGraph, counts metrics.Counts, _ *analysis.Result) error {
			return graphio.WriteJSON(lg.graph, counts, w)
		}, nil
	case graphFormatYAML:
		return func(w io.Writer, lg *loadedGraph, counts metrics.Counts, _ *analysis.Result) error {
			return graphio.WriteYAML(lg.graph, counts, w)
		}, nil
	case graphFormatDOT:
		return func(w io.Writer, _ *loadedGraph, _ metrics.Counts, res *analysis.Result) error {
			_, err := io.WriteString(w, report.ToDOT(res, report.DOTOptions{Detailed: opts.detailed}))
			return err
		}, nil
	case graphFormatSVG:
		return func(w io.Writer, _ *loadedGraph, _ metrics.Counts, res *analysis.Result) error {
			svg, err := report.RenderSVG(report.ToDOT(res, report.DOTOptions{Detailed: opts.detailed}))
			if err != nil {
				return err
			}
			_, err = w.Write(svg)
			return err
		}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown graph format %q (want json, yaml, dot or svg)", opts.format)
}
