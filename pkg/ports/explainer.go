package ports

import "context"

// Explainer produces a markdown-flavoured explanation of a topic.
// Implementations perform network I/O and must honour ctx cancellation.
type Explainer interface {
	Explain(ctx context.Context, topic string) (string, error)
}

// ExplainerFunc adapts a plain function to the Explainer interface.
type ExplainerFunc func(ctx context.Context, topic string) (string, error)

// Explain calls f(ctx, topic).
func (f ExplainerFunc) Explain(ctx context.Context, topic string) (string, error) {
	return f(ctx, topic)
}
