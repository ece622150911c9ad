package explain

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aretw0/bitlab/pkg/domain"
)

// MaxTopicBytes bounds the topic forwarded to the provider.
const MaxTopicBytes = 1024

// SanitizeTopic rejects oversized or non-UTF-8 topics, turns line breaks and
// tabs into spaces and drops other control characters (ANSI escapes, NUL, BEL).
func SanitizeTopic(topic string) (string, error) {
	if len(topic) > MaxTopicBytes {
		return "", fmt.Errorf("%w: size=%d limit=%d", domain.ErrInvalidTopic, len(topic), MaxTopicBytes)
	}
	if !utf8.ValidString(topic) {
		return "", fmt.Errorf("%w: invalid UTF-8", domain.ErrInvalidTopic)
	}

	// Fast path: nothing to strip.
	if strings.IndexFunc(topic, unicode.IsControl) < 0 {
		return strings.TrimSpace(topic), nil
	}

	var b strings.Builder
	b.Grow(len(topic))
	for _, r := range topic {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			b.WriteByte(' ')
		case unicode.IsControl(r):
		default:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String()), nil
}
