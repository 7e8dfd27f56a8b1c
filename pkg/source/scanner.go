package source

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/mainseq/pkg/component"
	"github.com/matzehuels/mainseq/pkg/errors"
	"github.com/matzehuels/mainseq/pkg/metrics"
	"github.com/matzehuels/mainseq/pkg/observability"
)

// skippedDirs are never descended into.
var skippedDirs = []string{"vendor", "testdata", "node_modules"}

// Scanner walks component source roots and classifies their files.
type Scanner struct {
	Rules   []Rule   // Checked in order; the first match wins
	Exclude []string // Extra directory names to skip
	Workers int      // Concurrent components in ClassifyAll; <= 0 means GOMAXPROCS
}

// NewScanner creates a scanner with the given rules, or DefaultRules if none.
func NewScanner(rules ...Rule) *Scanner {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Scanner{Rules: rules}
}

// Classify counts abstract and concrete files below c's source roots.
// Source roots that do not exist contribute nothing. Any read or parse
// failure aborts the scan.
func (s *Scanner) Classify(ctx context.Context, c component.Component) (metrics.Classification, error) {
	start := time.Now()
	var counts metrics.Classification
	var err error
	for _, root := range c.SourceRoots {
		if err = s.walk(ctx, root, &counts); err != nil {
			break
		}
	}
	observability.Scan().OnScanComplete(ctx, c.ID, counts.Total(), time.Since(start), err)
	if err != nil {
		return metrics.Classification{}, err
	}
	return counts, nil
}

// ClassifyAll classifies every component of g concurrently.
func (s *Scanner) ClassifyAll(ctx context.Context, g *component.Graph) (metrics.Counts, error) {
	comps := g.Components()
	results := make([]metrics.Classification, len(comps))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.workers())
	for i, c := range comps {
		eg.Go(func() error {
			counts, err := s.Classify(egCtx, c)
			if err != nil {
				return errors.Wrap(errors.ErrCodeClassifyFailed, err, "classify %s", c.ID)
			}
			results[i] = counts
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := make(metrics.Counts, len(comps))
	for i, c := range comps {
		out[c.ID] = results[i]
	}
	return out, nil
}

func (s *Scanner) workers() int {
	if s.Workers > 0 {
		return s.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (s *Scanner) walk(ctx context.Context, root string, counts *metrics.Classification) error {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("source root %s is not a directory", root)
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && s.skipDir(path, d.Name()) {
				return filepath.SkipDir
			}
			return ctx.Err()
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rule, ok := s.match(d.Name())
		if !ok {
			return nil
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		abstract, err := rule.IsAbstract(path, src)
		if err != nil {
			return fmt.Errorf("%s rule: %w", rule.Name, err)
		}
		if abstract {
			counts.Abstract++
		} else {
			counts.Concrete++
		}
		return nil
	})
}

func (s *Scanner) skipDir(path, name string) bool {
	if strings.HasPrefix(name, ".") || slices.Contains(skippedDirs, name) || slices.Contains(s.Exclude, name) {
		return true
	}
	for _, r := range s.Rules {
		if r.Boundary == "" {
			continue
		}
		if _, err := os.Stat(filepath.Join(path, r.Boundary)); err == nil {
			return true
		}
	}
	return false
}

func (s *Scanner) match(name string) (Rule, bool) {
	for _, r := range s.Rules {
		if r.Matches(name) {
			return r, true
		}
	}
	return Rule{}, false
}
