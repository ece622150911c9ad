package bitlab

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aretw0/bitlab/internal/presentation/graph"
	"github.com/aretw0/bitlab/pkg/domain"
	"github.com/aretw0/bitlab/pkg/explain"
	"github.com/aretw0/bitlab/pkg/logic"
	"github.com/aretw0/bitlab/pkg/numclass"
	"github.com/aretw0/bitlab/pkg/ports"
	"github.com/aretw0/bitlab/pkg/radix"
)

// ErrExplainerUnavailable is returned by Explain when no provider was configured.
var ErrExplainerUnavailable = errors.New("no explainer configured")

// Lab is the high-level entry point for the bitlab library.
// It is stateless apart from its configuration and safe for concurrent use.
type Lab struct {
	explainer ports.Explainer
	cache     ports.ExplanationCache
	timeout   time.Duration
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	service   *explain.Service
}

// Option defines a functional option for configuring the Lab.
type Option func(*Lab)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(l *Lab) {
		l.hooks = hooks
	}
}

// WithExplainer sets the generative-text provider used by Explain.
func WithExplainer(e ports.Explainer) Option {
	return func(l *Lab) {
		l.explainer = e
	}
}

// WithCache sets the explanation cache.
func WithCache(c ports.ExplanationCache) Option {
	return func(l *Lab) {
		l.cache = c
	}
}

// WithExplainTimeout bounds each provider call.
func WithExplainTimeout(d time.Duration) Option {
	return func(l *Lab) {
		l.timeout = d
	}
}

// WithLogger sets a custom structured logger for the lab.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Lab) {
		l.logger = logger
	}
}

// New creates a Lab.
func New(opts ...Option) *Lab {
	l := &Lab{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}

	if l.explainer != nil {
		svcOpts := []explain.Option{
			explain.WithLogger(l.logger),
			explain.WithLifecycleHooks(l.hooks),
			explain.WithTimeout(l.timeout),
		}
		if l.cache != nil {
			svcOpts = append(svcOpts, explain.WithCache(l.cache))
		}
		l.service = explain.NewService(l.explainer, svcOpts...)
	}
	return l
}

// Evaluate returns the direct output of a gate.
func (l *Lab) Evaluate(ctx context.Context, kind domain.GateKind, a, b bool) bool {
	out := logic.Evaluate(kind, a, b)
	l.emitGate(ctx, kind, "", out, kind.Valid())
	return out
}

// EvaluateViaBasis returns the output of a gate computed through its NAND or NOR construction.
func (l *Lab) EvaluateViaBasis(ctx context.Context, kind domain.GateKind, basis domain.Basis, a, b bool) (bool, error) {
	out, err := logic.EvaluateViaBasis(kind, basis, a, b)
	l.emitGate(ctx, kind, basis, out, err == nil)
	if err != nil {
		l.logger.Debug("construction unavailable", "kind", kind, "basis", basis, "err", err)
		return false, err
	}
	return out, nil
}

// TruthTable tabulates a gate.
func (l *Lab) TruthTable(kind domain.GateKind) []domain.TruthRow {
	return logic.TruthTable(kind)
}

// ConstructionView is everything a host needs to draw one universal-gate construction.
type ConstructionView struct {
	Circuit *logic.Circuit `json:"circuit"`
	Trace   logic.Trace    `json:"trace"`
	Output  bool           `json:"output"`
	Direct  bool           `json:"direct"`
	Diagram string         `json:"diagram"`
}

// Construct builds the circuit for kind from basis gates and runs it on a and b.
// Unavailable pairs fail with domain.ErrConstructionUnavailable.
func (l *Lab) Construct(ctx context.Context, kind domain.GateKind, basis domain.Basis, a, b bool) (*ConstructionView, error) {
	c, err := logic.Construction(kind, basis)
	if err != nil {
		l.emitGate(ctx, kind, basis, false, false)
		return nil, err
	}
	out, trace := c.Compute(a, b)
	l.emitGate(ctx, kind, basis, out, true)

	return &ConstructionView{
		Circuit: c,
		Trace:   trace,
		Output:  out,
		Direct:  logic.Evaluate(kind, a, b),
		Diagram: graph.ConstructionMermaid(c, trace),
	}, nil
}

// ConstructionDiagram returns the Mermaid diagram for a pair, or the
// "coming soon" placeholder when the pair has no construction.
func (l *Lab) ConstructionDiagram(kind domain.GateKind, basis domain.Basis, a, b bool) string {
	c, err := logic.Construction(kind, basis)
	if err != nil {
		return graph.UnavailableMermaid(kind, basis)
	}
	_, trace := c.Compute(a, b)
	return graph.ConstructionMermaid(c, trace)
}

// Convert re-renders digits from one base into another.
func (l *Lab) Convert(ctx context.Context, digits string, from, to domain.Base) (string, error) {
	out, err := radix.Convert(digits, from, to)
	if l.hooks.OnConvert != nil {
		l.hooks.OnConvert(ctx, &domain.ConvertEvent{
			EventBase: domain.NewEventBase(domain.EventConvert),
			From:      from,
			To:        to,
			IsError:   err != nil,
		})
	}
	if err != nil {
		l.logger.Debug("conversion rejected", "digits", digits, "from", from, "to", to, "err", err)
	}
	return out, err
}

// Classify places text into number categories.
func (l *Lab) Classify(ctx context.Context, text string) (numclass.Classification, error) {
	c, err := numclass.Classify(text)
	if l.hooks.OnClassify != nil {
		l.hooks.OnClassify(ctx, &domain.ClassifyEvent{
			EventBase: domain.NewEventBase(domain.EventClassify),
			Matched:   c.Categories(),
			IsError:   err != nil,
		})
	}
	return c, err
}

// Explanation is a provider answer in source and rendered form.
type Explanation struct {
	Topic    string `json:"topic"`
	Markdown string `json:"markdown"`
	HTML     string `json:"html"`
}

// Explain asks the configured provider about topic.
func (l *Lab) Explain(ctx context.Context, topic string) (*Explanation, error) {
	if l.service == nil {
		return nil, ErrExplainerUnavailable
	}
	md, err := l.service.Explain(ctx, topic)
	if err != nil {
		return nil, err
	}
	return &Explanation{Topic: topic, Markdown: md, HTML: explain.RenderHTML(md)}, nil
}

// CanExplain reports whether an explainer is configured.
func (l *Lab) CanExplain() bool {
	return l.service != nil
}

func (l *Lab) emitGate(ctx context.Context, kind domain.GateKind, basis domain.Basis, out, available bool) {
	if l.hooks.OnEvaluate == nil {
		return
	}
	l.hooks.OnEvaluate(ctx, &domain.GateEvent{
		EventBase: domain.NewEventBase(domain.EventEvaluate),
		Kind:      kind,
		Basis:     basis,
		Output:    out,
		Available: available,
	})
}
