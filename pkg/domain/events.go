package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventEvaluate  EventType = "evaluate"
	EventConvert   EventType = "convert"
	EventClassify  EventType = "classify"
	EventExplain   EventType = "explain"
	EventCacheHit  EventType = "cache_hit"
	EventCacheMiss EventType = "cache_miss"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// GateEvent is emitted after a gate evaluation. Basis is empty for direct evaluation.
type GateEvent struct {
	EventBase
	Kind      GateKind `json:"kind"`
	Basis     Basis    `json:"basis,omitempty"`
	Output    bool     `json:"output"`
	Available bool     `json:"available"`
}

// ConvertEvent is emitted after a base conversion attempt.
type ConvertEvent struct {
	EventBase
	From    Base `json:"from"`
	To      Base `json:"to"`
	IsError bool `json:"is_error,omitempty"`
}

// ClassifyEvent is emitted after a classification attempt.
type ClassifyEvent struct {
	EventBase
	Matched []Category `json:"matched,omitempty"`
	IsError bool       `json:"is_error,omitempty"`
}

// ExplainEvent is emitted when an explanation request finishes.
type ExplainEvent struct {
	EventBase
	Topic    string        `json:"topic"`
	Cached   bool          `json:"cached,omitempty"`
	Duration time.Duration `json:"duration"`
	IsError  bool          `json:"is_error,omitempty"`
}

// LifecycleHooks defines callbacks for library observability.
type LifecycleHooks struct {
	OnEvaluate func(context.Context, *GateEvent)
	OnConvert  func(context.Context, *ConvertEvent)
	OnClassify func(context.Context, *ClassifyEvent)
	OnExplain  func(context.Context, *ExplainEvent)
}

// NewEventBase stamps an event with the current time.
func NewEventBase(t EventType) EventBase {
	return EventBase{Timestamp: time.Now(), Type: t}
}
