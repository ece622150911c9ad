package bitlab_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/bitlab"
	"github.com/aretw0/bitlab/internal/logging"
	"github.com/aretw0/bitlab/pkg/adapters/memory"
	"github.com/aretw0/bitlab/pkg/domain"
	"github.com/aretw0/bitlab/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLab_Evaluate(t *testing.T) {
	var events []*domain.GateEvent
	hooks := domain.LifecycleHooks{
		OnEvaluate: func(ctx context.Context, e *domain.GateEvent) { events = append(events, e) },
	}
	lab := bitlab.New(bitlab.WithLifecycleHooks(hooks), bitlab.WithLogger(logging.NewNop()))
	ctx := context.Background()

	assert.True(t, lab.Evaluate(ctx, domain.GateXNOR, true, true))

	out, err := lab.EvaluateViaBasis(ctx, domain.GateXNOR, domain.BasisNOR, true, true)
	require.NoError(t, err)
	assert.True(t, out)

	_, err = lab.EvaluateViaBasis(ctx, domain.GateXNOR, domain.BasisNAND, true, true)
	assert.ErrorIs(t, err, domain.ErrConstructionUnavailable)

	require.Len(t, events, 3)
	assert.Equal(t, domain.Basis(""), events[0].Basis)
	assert.True(t, events[1].Available)
	assert.False(t, events[2].Available)
}

func TestLab_Construct(t *testing.T) {
	lab := bitlab.New(bitlab.WithLogger(logging.NewNop()))
	ctx := context.Background()

	view, err := lab.Construct(ctx, domain.GateOR, domain.BasisNAND, false, true)
	require.NoError(t, err)
	assert.True(t, view.Output)
	assert.Equal(t, view.Direct, view.Output)
	assert.Equal(t, 3, view.Circuit.GateCount())
	assert.Contains(t, view.Diagram, "graph LR")

	_, err = lab.Construct(ctx, domain.GateNAND, domain.BasisNOR, false, true)
	assert.ErrorIs(t, err, domain.ErrConstructionUnavailable)
	assert.Contains(t, lab.ConstructionDiagram(domain.GateNAND, domain.BasisNOR, false, true), "coming soon")
}

func TestLab_ConvertAndClassify(t *testing.T) {
	var converted, classified int
	hooks := domain.LifecycleHooks{
		OnConvert:  func(ctx context.Context, e *domain.ConvertEvent) { converted++ },
		OnClassify: func(ctx context.Context, e *domain.ClassifyEvent) { classified++ },
	}
	lab := bitlab.New(bitlab.WithLifecycleHooks(hooks), bitlab.WithLogger(logging.NewNop()))
	ctx := context.Background()

	out, err := lab.Convert(ctx, "1010", domain.Binary, domain.Decimal)
	require.NoError(t, err)
	assert.Equal(t, "10", out)

	_, err = lab.Convert(ctx, "2", domain.Binary, domain.Decimal)
	assert.ErrorIs(t, err, domain.ErrInvalidDigits)

	c, err := lab.Classify(ctx, "7")
	require.NoError(t, err)
	assert.True(t, c.Has(domain.Prime))

	_, err = lab.Classify(ctx, "abc")
	assert.ErrorIs(t, err, domain.ErrUnclassifiable)

	assert.Equal(t, 2, converted)
	assert.Equal(t, 2, classified)
}

func TestLab_Explain(t *testing.T) {
	t.Run("Without explainer", func(t *testing.T) {
		lab := bitlab.New()
		assert.False(t, lab.CanExplain())
		_, err := lab.Explain(context.Background(), "RAM")
		assert.ErrorIs(t, err, bitlab.ErrExplainerUnavailable)
	})

	t.Run("With explainer and cache", func(t *testing.T) {
		calls := 0
		fake := ports.ExplainerFunc(func(ctx context.Context, topic string) (string, error) {
			calls++
			return "**" + topic + "** is memory.", nil
		})
		lab := bitlab.New(
			bitlab.WithExplainer(fake),
			bitlab.WithCache(memory.NewCache()),
			bitlab.WithLogger(logging.NewNop()),
		)

		exp, err := lab.Explain(context.Background(), "RAM")
		require.NoError(t, err)
		assert.Equal(t, "**RAM** is memory.", exp.Markdown)
		assert.Equal(t, "<strong>RAM</strong> is memory.", exp.HTML)

		_, err = lab.Explain(context.Background(), "ram")
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("Provider failure", func(t *testing.T) {
		fake := ports.ExplainerFunc(func(ctx context.Context, topic string) (string, error) {
			return "", errors.New("network down")
		})
		lab := bitlab.New(bitlab.WithExplainer(fake), bitlab.WithLogger(logging.NewNop()))

		_, err := lab.Explain(context.Background(), "ROM")
		assert.ErrorIs(t, err, domain.ErrExplanationFetch)
		assert.Equal(t, "Failed to get explanation: network down", domain.DisplayMessage(err))
	})
}
