// Package cli implements the mainseq command-line interface.
//
// # Commands
//
// The main commands are:
//   - analyze: Compute package metrics for a project or graph file and check
//     the Stable Dependencies and Stable Abstractions principles
//   - graph: Export the component graph as JSON, YAML, DOT or SVG
//   - completion: Generate shell completion scripts
//
// # Configuration
//
// Flags are layered over an optional mainseq.toml found in the analysed
// directory or named with --config. Flags given on the command line win.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// is passed through context.Context so helpers can report progress.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mainseq/pkg/build"
	"github.com/matzehuels/mainseq/pkg/build/golang"
	"github.com/matzehuels/mainseq/pkg/build/maven"
	"github.com/matzehuels/mainseq/pkg/buildinfo"
	"github.com/matzehuels/mainseq/pkg/component"
	"github.com/matzehuels/mainseq/pkg/errors"
	graphio "github.com/matzehuels/mainseq/pkg/io"
	"github.com/matzehuels/mainseq/pkg/metrics"
	"github.com/matzehuels/mainseq/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display and the config file.
const appName = "mainseq"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a new CLI instance logging to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "mainseq measures package stability and abstractness",
		Long: `mainseq computes instability, abstractness and distance from the main
sequence for every module of a multi-module build, and checks the Stable
Dependencies and Stable Abstractions principles.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			hooks := logHooks{logger: c.Logger}
			observability.SetBuildHooks(hooks)
			observability.SetScanHooks(hooks)
			observability.SetAnalysisHooks(hooks)
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: "+configFile+" in the project directory)")

	root.AddCommand(c.analyzeCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Graph Loading
// =============================================================================

// builders lists the supported build systems in detection order.
func builders() []build.Builder {
	return []build.Builder{maven.Builder{}, golang.Builder{}}
}

// loadedGraph is a component graph with the directory it was read from.
type loadedGraph struct {
	graph  *component.Graph
	counts metrics.Counts // precomputed counts from a graph file, may be empty
	dir    string         // project directory or graph file directory
	source string         // builder name or "file"
}

// loadGraph builds the graph for a project directory or imports a graph file.
func loadGraph(ctx context.Context, input string) (*loadedGraph, error) {
	logger := loggerFromContext(ctx)

	info, err := os.Stat(input)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "%s does not exist", input)
		}
		return nil, err
	}

	if !info.IsDir() {
		if !graphio.IsGraphFile(input) {
			return nil, errors.New(errors.ErrCodeInvalidInput, "%s is neither a directory nor a graph file (.json, .yaml, .yml)", input)
		}
		g, counts, err := graphio.Import(input)
		if err != nil {
			return nil, err
		}
		logger.Debug("imported graph file", "path", input, "components", g.Len())
		return &loadedGraph{graph: g, counts: counts, dir: filepath.Dir(input), source: "file"}, nil
	}

	b, err := build.Detect(input, builders()...)
	if err != nil {
		return nil, err
	}
	prog := newProgress(logger)
	g, err := build.Run(ctx, b, input)
	if err != nil {
		return nil, err
	}
	prog.done("built component graph", "builder", b.Name(), "components", g.Len(), "edges", g.EdgeCount())
	return &loadedGraph{graph: g, counts: metrics.Counts{}, dir: input, source: b.Name()}, nil
}
