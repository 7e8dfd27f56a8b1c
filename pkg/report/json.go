package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/mainseq/pkg/analysis"
	"github.com/matzehuels/mainseq/pkg/metrics"
	"github.com/matzehuels/mainseq/pkg/statistic"
)

type jsonReport struct {
	RunID             string             `json:"run_id,omitempty"`
	Skipped           bool               `json:"skipped,omitempty"`
	Components        []jsonComponent    `json:"components"`
	Summary           *statistic.Summary `json:"summary,omitempty"`
	ZoneOfPain        []string           `json:"zone_of_pain"`
	ZoneOfUselessness []string           `json:"zone_of_uselessness"`
	Violations        []jsonViolation    `json:"violations"`
	HasCycle          bool               `json:"has_cycle"`
}

type jsonComponent struct {
	ID           string   `json:"id"`
	Name         string   `json:"name,omitempty"`
	Dependencies []string `json:"dependencies"`
	FanIn        int      `json:"fan_in"`
	FanOut       int      `json:"fan_out"`
	Instability  float64  `json:"instability"`
	Abstractness float64  `json:"abstractness"`
	Applicable   bool     `json:"abstractness_applicable"`
	Abstract     int      `json:"abstract_files"`
	Concrete     int      `json:"concrete_files"`
	Distance     float64  `json:"distance"`
}

type jsonViolation struct {
	Principle string `json:"principle"`
	Code      string `json:"code"`
	Component string `json:"component"`
	Message   string `json:"message"`
}

// WriteJSON writes res as an indented JSON report to w. runID identifies
// the run and is omitted when empty.
func WriteJSON(w io.Writer, res *analysis.Result, runID string) error {
	out := jsonReport{
		RunID:             runID,
		Components:        []jsonComponent{},
		ZoneOfPain:        []string{},
		ZoneOfUselessness: []string{},
		Violations:        []jsonViolation{},
	}

	if res == nil || res.Skipped {
		out.Skipped = true
	} else {
		g := res.Graph
		for _, p := range res.Points {
			deps := g.Dependencies(p.Component)
			if deps == nil {
				deps = []string{}
			}
			cls := res.Classifications[p.Component]
			out.Components = append(out.Components, jsonComponent{
				ID:           p.Component,
				Name:         p.Name,
				Dependencies: deps,
				FanIn:        metrics.FanIn(g, p.Component),
				FanOut:       metrics.FanOut(g, p.Component),
				Instability:  p.Instability,
				Abstractness: p.Abstractness,
				Applicable:   cls.Applicable(),
				Abstract:     cls.Abstract,
				Concrete:     cls.Concrete,
				Distance:     p.Distance(),
			})
		}
		summary := res.Summary
		out.Summary = &summary
		out.ZoneOfPain = append(out.ZoneOfPain, res.ZoneOfPain...)
		out.ZoneOfUselessness = append(out.ZoneOfUselessness, res.ZoneOfUselessness...)
		for _, v := range res.Violations {
			out.Violations = append(out.Violations, jsonViolation{
				Principle: v.Principle.Name,
				Code:      string(v.Code()),
				Component: v.Component,
				Message:   v.Error(),
			})
		}
		out.HasCycle = res.HasCycle
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
