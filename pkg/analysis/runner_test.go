package analysis

import (
	"context"
	stderrors "errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/mainseq/pkg/component"
	"github.com/matzehuels/mainseq/pkg/errors"
	"github.com/matzehuels/mainseq/pkg/metrics"
	"github.com/matzehuels/mainseq/pkg/observability"
	"github.com/matzehuels/mainseq/pkg/violation"
)

func quietRunner() *Runner {
	return NewRunner(log.New(io.Discard))
}

// moduleGraph reproduces an eight-module build where module4 sits between
// three consumers and a highly unstable module5.
func moduleGraph(t *testing.T) *component.Graph {
	t.Helper()
	g := component.New()
	add := func(id string, deps ...string) {
		require.NoError(t, g.Add(component.Component{ID: id}, deps...))
	}
	add("module1", "module4")
	add("module2", "module4")
	add("module3", "module4")
	add("module4", "module5")
	add("module5", "module6", "module7", "module8")
	add("module6")
	add("module7")
	add("module8")
	return g
}

func TestRunEmptyGraphIsSkipped(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetAnalysisHooks(hooks)
	t.Cleanup(observability.Reset)

	failing := metrics.ClassifierFunc(func(context.Context, component.Component) (metrics.Classification, error) {
		t.Fatal("classifier must not be called for an empty graph")
		return metrics.Classification{}, nil
	})

	res, err := quietRunner().Run(context.Background(), component.New(), failing)
	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Empty(t, res.Points)
	assert.NoError(t, res.Err())
	assert.Zero(t, hooks.starts)
}

func TestRunComputesMetricsAndViolations(t *testing.T) {
	g := moduleGraph(t)
	counts := metrics.Counts{
		"module4": {Abstract: 3, Concrete: 2},
		"module5": {Abstract: 1, Concrete: 4},
		"module6": {Abstract: 1, Concrete: 1},
	}

	res, err := quietRunner().Run(context.Background(), g, counts)
	require.NoError(t, err)
	require.False(t, res.Skipped)

	assert.InDelta(t, 0.25, res.Instability["module4"], 1e-9)
	assert.InDelta(t, 0.75, res.Instability["module5"], 1e-9)
	assert.InDelta(t, 0.6, res.Abstractness["module4"], 1e-9)
	assert.InDelta(t, 0.2, res.Abstractness["module5"], 1e-9)
	assert.False(t, res.Classifications["module1"].Applicable())

	require.Len(t, res.Points, 8)
	assert.Equal(t, "module1", res.Points[0].Component)
	assert.Equal(t, 8, res.Summary.Count)

	require.Len(t, res.Violations, 2)
	sdp, ok := res.Violation(violation.SDP)
	require.True(t, ok)
	assert.Equal(t, "module4", sdp.Component)
	sap, ok := res.Violation(violation.SAP)
	require.True(t, ok)
	assert.Equal(t, "module4", sap.Component)

	err = res.Err()
	assert.True(t, errors.Is(err, errors.ErrCodeSDPViolation))
	assert.Equal(t, "Component module4 is violating the stable dependencies principle", err.Error())
}

func TestRunWithoutViolations(t *testing.T) {
	g := component.New()
	require.NoError(t, g.Add(component.Component{ID: "app"}, "core"))
	require.NoError(t, g.Add(component.Component{ID: "core"}))

	counts := metrics.Counts{
		"app":  {Concrete: 4},
		"core": {Abstract: 2, Concrete: 2},
	}

	res, err := quietRunner().Run(context.Background(), g, counts)
	require.NoError(t, err)
	assert.Empty(t, res.Violations)
	assert.NoError(t, res.Err())
	assert.Equal(t, []string{"core"}, res.ZoneOfPain)
	assert.False(t, res.HasCycle)
}

func TestRunReportsOnlySAP(t *testing.T) {
	g := component.New()
	require.NoError(t, g.Add(component.Component{ID: "app"}, "core"))
	require.NoError(t, g.Add(component.Component{ID: "core"}))

	counts := metrics.Counts{
		"app":  {Abstract: 1},
		"core": {Concrete: 1},
	}

	res, err := quietRunner().Run(context.Background(), g, counts)
	require.NoError(t, err)
	require.Len(t, res.Violations, 1)
	assert.True(t, errors.Is(res.Err(), errors.ErrCodeSAPViolation))
	_, ok := res.Violation(violation.SDP)
	assert.False(t, ok)
}

func TestRunClassifierFailureAborts(t *testing.T) {
	boom := stderrors.New("unreadable file")
	cls := metrics.ClassifierFunc(func(_ context.Context, c component.Component) (metrics.Classification, error) {
		if c.ID == "module5" {
			return metrics.Classification{}, boom
		}
		return metrics.Classification{Concrete: 1}, nil
	})

	hooks := &recordingHooks{}
	observability.SetAnalysisHooks(hooks)
	t.Cleanup(observability.Reset)

	res, err := quietRunner().Run(context.Background(), moduleGraph(t), cls)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, errors.ErrCodeClassifyFailed))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, hooks.completes)
	assert.Error(t, hooks.lastErr)
}

func TestRunInvalidGraph(t *testing.T) {
	g := component.New()
	require.NoError(t, g.Add(component.Component{ID: "app\t"}))

	_, err := quietRunner().Run(context.Background(), g, metrics.Counts{})
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidGraph))
}

func TestRunCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := quietRunner().Run(ctx, moduleGraph(t), metrics.Counts{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunIsDeterministic(t *testing.T) {
	g := moduleGraph(t)
	counts := metrics.Counts{"module4": {Abstract: 1, Concrete: 1}}
	runner := quietRunner()

	first, err := runner.Run(context.Background(), g, counts)
	require.NoError(t, err)
	for range 10 {
		res, err := runner.Run(context.Background(), g, counts)
		require.NoError(t, err)
		assert.Equal(t, first.Points, res.Points)
		assert.Equal(t, first.Summary, res.Summary)
		assert.Equal(t, first.Err().Error(), res.Err().Error())
	}
}

func TestRunFiresHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetAnalysisHooks(hooks)
	t.Cleanup(observability.Reset)

	_, err := quietRunner().Run(context.Background(), moduleGraph(t), metrics.Counts{
		"module4": {Abstract: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, hooks.starts)
	assert.Equal(t, 1, hooks.completes)
	assert.NoError(t, hooks.lastErr)
	assert.Equal(t, []string{"stable dependencies principle:module4", "stable abstraction principle:module4"}, hooks.violations)
}

func TestResultErrOnNil(t *testing.T) {
	var res *Result
	assert.NoError(t, res.Err())
}

type recordingHooks struct {
	observability.NoopAnalysisHooks

	mu         sync.Mutex
	starts     int
	completes  int
	lastErr    error
	violations []string
}

func (h *recordingHooks) OnAnalyzeStart(context.Context, int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.starts++
}

func (h *recordingHooks) OnAnalyzeComplete(_ context.Context, _ int, _ time.Duration, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.completes++
	h.lastErr = err
}

func (h *recordingHooks) OnViolation(_ context.Context, principle, component string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.violations = append(h.violations, principle+":"+component)
}
