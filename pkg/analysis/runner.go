package analysis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mainseq/pkg/component"
	"github.com/matzehuels/mainseq/pkg/metrics"
	"github.com/matzehuels/mainseq/pkg/observability"
	"github.com/matzehuels/mainseq/pkg/statistic"
	"github.com/matzehuels/mainseq/pkg/violation"
)

// Result holds everything computed by one analysis run.
type Result struct {
	Graph   *component.Graph
	Skipped bool // true when the graph had no components

	Instability     metrics.Map
	Abstractness    metrics.Map
	Classifications metrics.Counts

	Points            []statistic.Point
	Summary           statistic.Summary
	ZoneOfPain        []string
	ZoneOfUselessness []string

	// Violations holds at most one violation per principle, SDP first.
	Violations []*violation.Violation

	HasCycle bool
	Stats    Stats
}

// Stats records timing and size information about a run.
type Stats struct {
	Components int
	Edges      int
	Duration   time.Duration
}

// Err returns the first recorded violation, or nil.
func (r *Result) Err() error {
	if r == nil || len(r.Violations) == 0 {
		return nil
	}
	return r.Violations[0]
}

// Violation returns the recorded violation of p, if any.
func (r *Result) Violation(p violation.Principle) (*violation.Violation, bool) {
	if r == nil {
		return nil, false
	}
	for _, v := range r.Violations {
		if v.Principle.Code == p.Code {
			return v, true
		}
	}
	return nil, false
}

// Runner executes analysis runs. It holds no per-run state, so one Runner
// may be shared across goroutines.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner logging to logger.
// If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Run analyses g, classifying component sources with cls.
func (r *Runner) Run(ctx context.Context, g *component.Graph, cls metrics.Classifier) (res *Result, err error) {
	if g == nil || g.IsEmpty() {
		r.Logger.Info("no components to analyze, skipping")
		return &Result{Graph: g, Skipped: true}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	hooks := observability.Analysis()
	hooks.OnAnalyzeStart(ctx, g.Len())
	defer func() {
		hooks.OnAnalyzeComplete(ctx, g.Len(), time.Since(start), err)
	}()

	res = &Result{
		Graph:    g,
		HasCycle: g.HasCycle(),
		Stats: Stats{
			Components: g.Len(),
			Edges:      g.EdgeCount(),
		},
	}
	if res.HasCycle {
		r.Logger.Warn("component graph contains a dependency cycle")
	}

	res.Instability = metrics.Instability(g)
	r.Logger.Debug("computed instability", "components", len(res.Instability))

	res.Classifications, err = metrics.Classifications(ctx, g, cls)
	if err != nil {
		return nil, err
	}
	res.Abstractness, err = metrics.Abstractness(ctx, g, res.Classifications)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("computed abstractness", "components", len(res.Abstractness))

	for _, id := range g.IDs() {
		r.Logger.Debug("component metrics",
			"component", id,
			"instability", res.Instability[id],
			"abstractness", res.Abstractness[id],
			"applicable", res.Classifications[id].Applicable())
	}

	res.Points = statistic.NewPoints(g, res.Instability, res.Abstractness)
	res.Summary, err = statistic.Summarize(res.Points)
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}
	res.ZoneOfPain = statistic.ZoneOfPain(res.Points)
	res.ZoneOfUselessness = statistic.ZoneOfUselessness(res.Points)

	checks := []struct {
		principle violation.Principle
		values    metrics.Map
	}{
		{violation.SDP, res.Instability},
		{violation.SAP, res.Abstractness},
	}
	for _, c := range checks {
		v, err := check(g, c.values, c.principle)
		if err != nil {
			return nil, err
		}
		if v != nil {
			r.Logger.Warn(v.Error())
			hooks.OnViolation(ctx, v.Principle.Name, v.Component)
			res.Violations = append(res.Violations, v)
		}
	}

	res.Stats.Duration = time.Since(start)
	r.Logger.Info("analyzed components",
		"components", res.Stats.Components,
		"mean_distance", res.Summary.Mean,
		"violations", len(res.Violations),
		"duration", res.Stats.Duration)

	return res, nil
}

// check separates a principle violation from an input error.
func check(g *component.Graph, values metrics.Map, p violation.Principle) (*violation.Violation, error) {
	err := violation.Check(g, values, p)
	var v *violation.Violation
	if errors.As(err, &v) {
		return v, nil
	}
	return nil, err
}
