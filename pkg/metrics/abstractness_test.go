package metrics

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/mainseq/pkg/component"
	"github.com/matzehuels/mainseq/pkg/errors"
)

func TestClassificationAbstractness(t *testing.T) {
	tests := []struct {
		name       string
		c          Classification
		want       float64
		applicable bool
	}{
		{"all abstract", Classification{Abstract: 4}, 1, true},
		{"all concrete", Classification{Concrete: 7}, 0, true},
		{"mixed", Classification{Abstract: 1, Concrete: 3}, 0.25, true},
		{"no sources", Classification{}, NotApplicableSentinel, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.Abstractness())
			assert.Equal(t, tt.applicable, tt.c.Applicable())
		})
	}
}

func TestAbstractness(t *testing.T) {
	g := component.New()
	require.NoError(t, g.Add(component.Component{ID: "api"}, "impl"))
	require.NoError(t, g.Add(component.Component{ID: "impl"}))
	require.NoError(t, g.Add(component.Component{ID: "parent"}))

	counts := Counts{
		"api":  {Abstract: 3, Concrete: 1},
		"impl": {Abstract: 0, Concrete: 5},
	}

	m, err := Abstractness(context.Background(), g, counts)
	require.NoError(t, err)

	require.Len(t, m, 3)
	assert.Equal(t, 0.75, m["api"])
	assert.Equal(t, 0.0, m["impl"])
	assert.Equal(t, NotApplicableSentinel, m["parent"])

	for id, v := range m {
		assert.GreaterOrEqual(t, v, 0.0, id)
		assert.LessOrEqual(t, v, 1.0, id)
	}
}

func TestAbstractnessClassifierFailure(t *testing.T) {
	g := component.New()
	require.NoError(t, g.Add(component.Component{ID: "ok"}))
	require.NoError(t, g.Add(component.Component{ID: "broken"}))

	ioErr := stderrors.New("read src/Broken.java: permission denied")
	cls := ClassifierFunc(func(_ context.Context, c component.Component) (Classification, error) {
		if c.ID == "broken" {
			return Classification{}, ioErr
		}
		return Classification{Concrete: 1}, nil
	})

	m, err := Abstractness(context.Background(), g, cls)

	assert.Nil(t, m)
	require.Error(t, err)
	assert.ErrorIs(t, err, ioErr)
	assert.True(t, errors.Is(err, errors.ErrCodeClassifyFailed))
}

func TestAbstractnessRejectsNegativeCounts(t *testing.T) {
	g := component.New()
	require.NoError(t, g.Add(component.Component{ID: "x"}))

	_, err := Abstractness(context.Background(), g, Counts{"x": {Abstract: -1, Concrete: 2}})
	assert.True(t, errors.Is(err, errors.ErrCodeClassifyFailed))
}

func TestClassifications(t *testing.T) {
	g := component.New()
	require.NoError(t, g.Add(component.Component{ID: "a"}))
	require.NoError(t, g.Add(component.Component{ID: "b"}))

	calls := 0
	cls := ClassifierFunc(func(_ context.Context, c component.Component) (Classification, error) {
		calls++
		return Classification{Abstract: len(c.ID)}, nil
	})

	counts, err := Classifications(context.Background(), g, cls)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, Counts{"a": {Abstract: 1}, "b": {Abstract: 1}}, counts)
}

func TestMapKeys(t *testing.T) {
	m := Map{"b": 0.1, "a": 0.2}
	assert.Equal(t, []string{"a", "b"}, m.Keys())

	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 0.2, v)
}
