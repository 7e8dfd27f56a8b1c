// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about graph construction, source scanning and
// analysis runs.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so the analysis packages
// stay free of observability frameworks.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetAnalysisHooks(&myAnalysisHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Analysis().OnAnalyzeStart(ctx, g.Len())
//	// ... compute metrics ...
//	observability.Analysis().OnAnalyzeComplete(ctx, g.Len(), duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Analysis Hooks
// =============================================================================

// AnalysisHooks receives events from an analysis run.
type AnalysisHooks interface {
	// OnAnalyzeStart records the start of a run over a graph of n components.
	OnAnalyzeStart(ctx context.Context, components int)

	// OnAnalyzeComplete records the end of a run. err is nil for runs that
	// finished, with or without violations.
	OnAnalyzeComplete(ctx context.Context, components int, duration time.Duration, err error)

	// OnViolation records the first violation found for a principle.
	OnViolation(ctx context.Context, principle, component string)
}

// =============================================================================
// Build Hooks
// =============================================================================

// BuildHooks receives events from build-graph construction.
type BuildHooks interface {
	// OnBuildStart records the start of graph construction for dir.
	OnBuildStart(ctx context.Context, builder, dir string)

	// OnBuildComplete records the end of graph construction.
	OnBuildComplete(ctx context.Context, builder, dir string, components int, duration time.Duration, err error)
}

// =============================================================================
// Scan Hooks
// =============================================================================

// ScanHooks receives events from source-tree classification.
type ScanHooks interface {
	// OnScanComplete records one classified component.
	OnScanComplete(ctx context.Context, component string, files int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopAnalysisHooks is a no-op implementation of AnalysisHooks.
type NoopAnalysisHooks struct{}

func (NoopAnalysisHooks) OnAnalyzeStart(context.Context, int)                          {}
func (NoopAnalysisHooks) OnAnalyzeComplete(context.Context, int, time.Duration, error) {}
func (NoopAnalysisHooks) OnViolation(context.Context, string, string)                  {}

// NoopBuildHooks is a no-op implementation of BuildHooks.
type NoopBuildHooks struct{}

func (NoopBuildHooks) OnBuildStart(context.Context, string, string) {}
func (NoopBuildHooks) OnBuildComplete(context.Context, string, string, int, time.Duration, error) {
}

// NoopScanHooks is a no-op implementation of ScanHooks.
type NoopScanHooks struct{}

func (NoopScanHooks) OnScanComplete(context.Context, string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	analysisHooks AnalysisHooks = NoopAnalysisHooks{}
	buildHooks    BuildHooks    = NoopBuildHooks{}
	scanHooks     ScanHooks     = NoopScanHooks{}
	hooksMu       sync.RWMutex
)

// SetAnalysisHooks registers custom analysis hooks.
// This should be called once at application startup before any analysis runs.
func SetAnalysisHooks(h AnalysisHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		analysisHooks = h
	}
}

// SetBuildHooks registers custom build hooks.
func SetBuildHooks(h BuildHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		buildHooks = h
	}
}

// SetScanHooks registers custom scan hooks.
func SetScanHooks(h ScanHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		scanHooks = h
	}
}

// Analysis returns the registered analysis hooks.
func Analysis() AnalysisHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return analysisHooks
}

// Build returns the registered build hooks.
func Build() BuildHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return buildHooks
}

// Scan returns the registered scan hooks.
func Scan() ScanHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return scanHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	analysisHooks = NoopAnalysisHooks{}
	buildHooks = NoopBuildHooks{}
	scanHooks = NoopScanHooks{}
}
