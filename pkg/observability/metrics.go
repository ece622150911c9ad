package observability

import (
	"context"
	"strconv"

	"github.com/aretw0/bitlab/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors exported by bitlab.
type Metrics struct {
	Evaluations     *prometheus.CounterVec
	Conversions     *prometheus.CounterVec
	Classifications *prometheus.CounterVec
	Explanations    *prometheus.CounterVec
	ExplainDuration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bitlab_gate_evaluations_total",
				Help: "Total number of gate evaluations",
			},
			[]string{"kind", "basis", "available"},
		),
		Conversions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bitlab_conversions_total",
				Help: "Total number of base conversions",
			},
			[]string{"from", "to", "result"},
		),
		Classifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bitlab_classifications_total",
				Help: "Total number of number classifications",
			},
			[]string{"result"},
		),
		Explanations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bitlab_explanations_total",
				Help: "Total number of explanation requests",
			},
			[]string{"source", "result"},
		),
		ExplainDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "bitlab_explain_duration_seconds",
				Help:    "Duration of explanation requests",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
			},
		),
	}
	reg.MustRegister(m.Evaluations, m.Conversions, m.Classifications, m.Explanations, m.ExplainDuration)
	return m
}

func result(isError bool) string {
	if isError {
		return "error"
	}
	return "ok"
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnEvaluate: func(ctx context.Context, e *domain.GateEvent) {
			basis := string(e.Basis)
			if basis == "" {
				basis = "direct"
			}
			m.Evaluations.WithLabelValues(string(e.Kind), basis, strconv.FormatBool(e.Available)).Inc()
		},
		OnConvert: func(ctx context.Context, e *domain.ConvertEvent) {
			m.Conversions.WithLabelValues(strconv.Itoa(int(e.From)), strconv.Itoa(int(e.To)), result(e.IsError)).Inc()
		},
		OnClassify: func(ctx context.Context, e *domain.ClassifyEvent) {
			m.Classifications.WithLabelValues(result(e.IsError)).Inc()
		},
		OnExplain: func(ctx context.Context, e *domain.ExplainEvent) {
			source := "provider"
			if e.Cached {
				source = "cache"
			}
			m.Explanations.WithLabelValues(source, result(e.IsError)).Inc()
			m.ExplainDuration.Observe(e.Duration.Seconds())
		},
	}
}

// Chain merges several hook sets, calling each in order.
func Chain(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnEvaluate: func(ctx context.Context, e *domain.GateEvent) {
			for _, s := range sets {
				if s.OnEvaluate != nil {
					s.OnEvaluate(ctx, e)
				}
			}
		},
		OnConvert: func(ctx context.Context, e *domain.ConvertEvent) {
			for _, s := range sets {
				if s.OnConvert != nil {
					s.OnConvert(ctx, e)
				}
			}
		},
		OnClassify: func(ctx context.Context, e *domain.ClassifyEvent) {
			for _, s := range sets {
				if s.OnClassify != nil {
					s.OnClassify(ctx, e)
				}
			}
		},
		OnExplain: func(ctx context.Context, e *domain.ExplainEvent) {
			for _, s := range sets {
				if s.OnExplain != nil {
					s.OnExplain(ctx, e)
				}
			}
		},
	}
}
