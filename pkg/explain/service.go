package explain

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aretw0/bitlab/pkg/domain"
	"github.com/aretw0/bitlab/pkg/ports"
)

// Service wraps an Explainer with validation, caching and observability.
type Service struct {
	explainer ports.Explainer
	cache     ports.ExplanationCache
	hooks     domain.LifecycleHooks
	timeout   time.Duration
	logger    *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithCache serves repeated topics from cache.
func WithCache(c ports.ExplanationCache) Option {
	return func(s *Service) {
		s.cache = c
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(s *Service) {
		s.hooks = hooks
	}
}

// WithTimeout bounds each provider call. Zero means no bound beyond ctx.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		s.timeout = d
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a Service backed by explainer.
func NewService(explainer ports.Explainer, opts ...Option) *Service {
	s := &Service{
		explainer: explainer,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CacheKey normalises a topic so trivially different spellings share an entry.
func CacheKey(topic string) string {
	return strings.Join(strings.Fields(strings.ToLower(topic)), " ")
}

// Explain returns the explanation for topic.
// Blank topics fail with domain.ErrEmptyTopic; provider failures are returned as
// *domain.ExplanationFetchError.
func (s *Service) Explain(ctx context.Context, topic string) (string, error) {
	topic, err := SanitizeTopic(topic)
	if err != nil {
		return "", err
	}
	if topic == "" {
		return "", domain.ErrEmptyTopic
	}

	start := time.Now()
	key := CacheKey(topic)

	if s.cache != nil {
		text, err := s.cache.Get(ctx, key)
		switch {
		case err == nil:
			s.logger.Debug("explanation served from cache", "topic", topic)
			s.emit(ctx, topic, true, start, nil)
			return text, nil
		case !errors.Is(err, domain.ErrCacheMiss):
			s.logger.Warn("explanation cache read failed", "topic", topic, "err", err)
		}
	}

	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	text, err := s.explainer.Explain(callCtx, topic)
	if err != nil {
		fetchErr := &domain.ExplanationFetchError{Topic: topic, Err: err}
		s.logger.Error("explanation fetch failed", "topic", topic, "err", err)
		s.emit(ctx, topic, false, start, fetchErr)
		return "", fetchErr
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, text); err != nil {
			s.logger.Warn("explanation cache write failed", "topic", topic, "err", err)
		}
	}

	s.emit(ctx, topic, false, start, nil)
	return text, nil
}

func (s *Service) emit(ctx context.Context, topic string, cached bool, start time.Time, err error) {
	if s.hooks.OnExplain == nil {
		return
	}
	s.hooks.OnExplain(ctx, &domain.ExplainEvent{
		EventBase: domain.NewEventBase(domain.EventExplain),
		Topic:     topic,
		Cached:    cached,
		Duration:  time.Since(start),
		IsError:   err != nil,
	})
}
