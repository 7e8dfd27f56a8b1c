package cli

import (
	"context"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mainseq/pkg/observability"
)

// newLogger creates a logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with
// elapsed duration. It is meant for sequential use by a single goroutine.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with keyvals and the elapsed time, rounded to the millisecond.
// Example output: "built component graph builder=maven components=8 duration=12ms"
func (p *progress) done(msg string, keyvals ...any) {
	keyvals = append(keyvals, "duration", time.Since(p.start).Round(time.Millisecond))
	p.logger.Info(msg, keyvals...)
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks reports build, scan and analysis events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnBuildStart(_ context.Context, builder, dir string) {
	h.logger.Debug("building component graph", "builder", builder, "dir", dir)
}

func (h logHooks) OnBuildComplete(_ context.Context, builder, dir string, components int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("build failed", "builder", builder, "dir", dir, "error", err)
		return
	}
	h.logger.Debug("build complete", "builder", builder, "components", components, "duration", d.Round(time.Millisecond))
}

func (h logHooks) OnScanComplete(_ context.Context, component string, files int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("scan failed", "component", component, "error", err)
		return
	}
	h.logger.Debug("scanned sources", "component", component, "files", files, "duration", d.Round(time.Millisecond))
}

func (h logHooks) OnAnalyzeStart(_ context.Context, components int) {
	h.logger.Debug("analysis started", "components", components)
}

func (h logHooks) OnAnalyzeComplete(_ context.Context, components int, d time.Duration, err error) {
	h.logger.Debug("analysis complete", "components", components, "duration", d.Round(time.Millisecond), "error", err)
}

func (h logHooks) OnViolation(_ context.Context, principle, component string) {
	h.logger.Debug("principle violated", "principle", principle, "component", component)
}

// scanProgress advances a spinner as components finish scanning and
// forwards every event to next. Scans run concurrently.
type scanProgress struct {
	next    observability.ScanHooks
	spinner *Spinner
	total   int
	done    atomic.Int64
}

func (p *scanProgress) OnScanComplete(ctx context.Context, component string, files int, d time.Duration, err error) {
	n := p.done.Add(1)
	p.spinner.Update("Scanning sources (%d/%d)...", n, p.total)
	p.next.OnScanComplete(ctx, component, files, d, err)
}
