package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mainseq/pkg/analysis"
	"github.com/matzehuels/mainseq/pkg/metrics"
	"github.com/matzehuels/mainseq/pkg/observability"
	"github.com/matzehuels/mainseq/pkg/report"
	"github.com/matzehuels/mainseq/pkg/source"
)

// analyzeCommand creates the analyze command.
func (c *CLI) analyzeCommand() *cobra.Command {
	var flags Config

	cmd := &cobra.Command{
		Use:   "analyze [dir|graph.json|graph.yaml]",
		Short: "Compute package metrics and check dependency principles",
		Long: `Compute package metrics and check dependency principles.

The argument is a project directory (a Maven reactor with pom.xml, or a Go
workspace with go.work) or a graph file. It defaults to the current directory.

For every module, analyze computes instability (I), abstractness (A) and the
distance from the main sequence |I + A - 1|, lists the modules in the zones of
pain and uselessness, and reports the mean, variance and standard deviation of
the distances. It then checks the Stable Dependencies Principle (depend in the
direction of stability) and the Stable Abstractions Principle (depend in the
direction of abstraction).

The report is written to target/dependency-metrics-result.txt below the
project directory unless --output is given. Violations are logged as
warnings; with --fail-on-violation the first one fails the command.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := "."
			if len(args) == 1 {
				input = args[0]
			}
			return c.runAnalyze(cmd, input, flags)
		},
	}

	def := defaultConfig()
	cmd.Flags().StringVarP(&flags.Output, "output", "o", def.Output, "report file (relative paths from the config file resolve against the project directory)")
	cmd.Flags().StringVarP(&flags.Format, "format", "f", def.Format, "report format: text, json")
	cmd.Flags().BoolVar(&flags.FailOnViolation, "fail-on-violation", def.FailOnViolation, "exit with an error when a principle is violated")
	cmd.Flags().IntVar(&flags.Workers, "workers", def.Workers, "components scanned concurrently (0 = number of CPUs)")
	cmd.Flags().StringSliceVar(&flags.Source.Exclude, "exclude", nil, "directory names to skip when scanning sources")

	return cmd
}

// resolveConfig layers the flags explicitly set on cmd over the config file.
func (c *CLI) resolveConfig(cmd *cobra.Command, flags Config, dir string) (Config, error) {
	cfg, err := loadConfig(c.configPath, dir)
	if err != nil {
		return Config{}, err
	}

	fs := cmd.Flags()
	if fs.Changed("output") {
		cfg.Output = flags.Output
	} else if !filepath.IsAbs(cfg.Output) {
		cfg.Output = filepath.Join(dir, cfg.Output)
	}
	if fs.Changed("format") {
		cfg.Format = flags.Format
	}
	if fs.Changed("fail-on-violation") {
		cfg.FailOnViolation = flags.FailOnViolation
	}
	if fs.Changed("workers") {
		cfg.Workers = flags.Workers
	}
	if fs.Changed("exclude") {
		cfg.Source.Exclude = flags.Source.Exclude
	}
	return cfg, cfg.validate()
}

// runAnalyze loads the graph, scans sources, runs the analysis and writes
// the report.
func (c *CLI) runAnalyze(cmd *cobra.Command, input string, flags Config) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	lg, err := loadGraph(ctx, input)
	if err != nil {
		return err
	}
	cfg, err := c.resolveConfig(cmd, flags, lg.dir)
	if err != nil {
		return err
	}

	if lg.graph.IsEmpty() {
		logger.Info("no modules found, skipping analysis", "input", input)
		printInfo("No modules to analyze in %s", input)
		return nil
	}

	counts, err := classify(ctx, lg, cfg)
	if err != nil {
		return err
	}

	res, err := analysis.NewRunner(logger).Run(ctx, lg.graph, counts)
	if err != nil {
		return err
	}

	if err := writeReport(cfg, res); err != nil {
		return err
	}
	logger.Debug("wrote report", "path", cfg.Output, "format", cfg.Format)

	printResult(res)
	printFile(cfg.Output)

	if cfg.FailOnViolation {
		return res.Err()
	}
	return nil
}

// classify scans component sources. Counts read from a graph file take
// precedence over scanned ones.
func classify(ctx context.Context, lg *loadedGraph, cfg Config) (metrics.Counts, error) {
	scanner := source.NewScanner()
	scanner.Exclude = cfg.Source.Exclude
	scanner.Workers = cfg.Workers

	prog := newProgress(loggerFromContext(ctx))
	spinner := newSpinnerWithContext(ctx, "Scanning sources...")

	prev := observability.Scan()
	observability.SetScanHooks(&scanProgress{next: prev, spinner: spinner, total: lg.graph.Len()})
	defer observability.SetScanHooks(prev)

	spinner.Start()
	counts, err := scanner.ClassifyAll(ctx, lg.graph)
	if err != nil {
		spinner.StopWithError("Scanning sources failed")
		return nil, err
	}
	spinner.Stop()
	prog.done("scanned sources", "components", len(counts))

	for id, cls := range lg.counts {
		counts[id] = cls
	}
	return counts, nil
}

func writeReport(cfg Config, res *analysis.Result) error {
	return report.WriteFile(cfg.Output, func(w io.Writer) error {
		switch cfg.Format {
		case formatJSON:
			return report.WriteJSON(w, res, uuid.NewString())
		case formatText:
			return report.WriteText(w, res)
		default:
			return fmt.Errorf("unknown format %q", cfg.Format)
		}
	})
}
