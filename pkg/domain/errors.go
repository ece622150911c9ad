package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownGate is returned when a gate name is not one of the eight kinds.
var ErrUnknownGate = errors.New("unknown gate kind")

// ErrUnknownBasis is returned when a basis name is neither NAND nor NOR.
var ErrUnknownBasis = errors.New("unknown construction basis")

// ErrUnsupportedBase is returned for a radix outside 2, 8, 10 and 16.
var ErrUnsupportedBase = errors.New("unsupported base")

// ErrInvalidBit is returned when a signal is written as anything but 0 or 1.
var ErrInvalidBit = errors.New("invalid signal")

// ErrConstructionUnavailable is returned when no universal-gate construction is defined
// for the requested gate and basis.
var ErrConstructionUnavailable = errors.New("construction not available")

// ErrInvalidDigits is returned when a digit string holds a character outside its base's alphabet.
var ErrInvalidDigits = errors.New("invalid digits")

// ErrPrecisionExceeded is returned when a digit string does not fit in 64 bits.
var ErrPrecisionExceeded = errors.New("value exceeds 64-bit precision")

// ErrUnclassifiable is returned when the classifier recognises neither a number nor a marker.
var ErrUnclassifiable = errors.New("no classification available")

// ErrEmptyTopic is returned when an explanation is requested for a blank topic.
var ErrEmptyTopic = errors.New("topic is empty")

// ErrInvalidTopic is returned for topics that are too long or not valid UTF-8.
var ErrInvalidTopic = errors.New("invalid topic")

// ErrExplanationFetch is returned when the generative-text provider fails.
var ErrExplanationFetch = errors.New("explanation fetch failed")

// ErrCacheMiss is returned by explanation caches when no entry exists for a topic.
var ErrCacheMiss = errors.New("cache miss")

// ConstructionUnavailableError reports a (kind, basis) pair without a defined circuit.
type ConstructionUnavailableError struct {
	Kind  GateKind
	Basis Basis
}

func (e *ConstructionUnavailableError) Error() string {
	return fmt.Sprintf("%s from %s gates: %s", e.Kind, e.Basis, ErrConstructionUnavailable)
}

func (e *ConstructionUnavailableError) Unwrap() error {
	return ErrConstructionUnavailable
}

// InvalidDigitsError reports the first character that is not part of the base's alphabet.
type InvalidDigitsError struct {
	Digits string
	Base   Base
	Index  int
	Char   rune
}

func (e *InvalidDigitsError) Error() string {
	return fmt.Sprintf("%s: %q at position %d is not a %s digit", ErrInvalidDigits, e.Char, e.Index, e.Base)
}

func (e *InvalidDigitsError) Unwrap() error {
	return ErrInvalidDigits
}

// UnclassifiableInputError reports text the number classifier could not interpret.
type UnclassifiableInputError struct {
	Input string
}

func (e *UnclassifiableInputError) Error() string {
	return fmt.Sprintf("%s for %q", ErrUnclassifiable, e.Input)
}

func (e *UnclassifiableInputError) Unwrap() error {
	return ErrUnclassifiable
}

// ExplanationFetchError wraps a provider failure with the topic that triggered it.
type ExplanationFetchError struct {
	Topic string
	Err   error
}

func (e *ExplanationFetchError) Error() string {
	return fmt.Sprintf("%s for %q: %v", ErrExplanationFetch, e.Topic, e.Err)
}

// Unwrap exposes both the sentinel and the provider error to errors.Is.
func (e *ExplanationFetchError) Unwrap() []error {
	return []error{ErrExplanationFetch, e.Err}
}

// DisplayMessage is the user-facing rendering of the failure.
func (e *ExplanationFetchError) DisplayMessage() string {
	msg := "An unknown error occurred."
	if e.Err != nil {
		msg = e.Err.Error()
	}
	return "Failed to get explanation: " + msg
}

// DisplayMessage converts any library error into text that is safe to show to a user.
func DisplayMessage(err error) string {
	if err == nil {
		return ""
	}
	var fetchErr *ExplanationFetchError
	switch {
	case errors.As(err, &fetchErr):
		return fetchErr.DisplayMessage()
	case errors.Is(err, ErrConstructionUnavailable):
		return "Construction not available yet (coming soon)."
	case errors.Is(err, ErrUnclassifiable):
		return "Please enter a valid number (e.g., 7, -3, 1/2, 3.14, π, √2, 3+2i)."
	case errors.Is(err, ErrInvalidDigits):
		return "Invalid characters for the selected base."
	default:
		return err.Error()
	}
}
