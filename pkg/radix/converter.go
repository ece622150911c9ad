// Package radix converts unsigned integers between binary, octal, decimal and hexadecimal.
package radix

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/bitlab/pkg/domain"
)

var baseAliases = map[string]domain.Base{
	"2": domain.Binary, "bin": domain.Binary, "binary": domain.Binary,
	"8": domain.Octal, "oct": domain.Octal, "octal": domain.Octal,
	"10": domain.Decimal, "dec": domain.Decimal, "decimal": domain.Decimal,
	"16": domain.Hexadecimal, "hex": domain.Hexadecimal, "hexadecimal": domain.Hexadecimal,
}

// ParseBase resolves a radix given as a number or a name.
func ParseBase(s string) (domain.Base, error) {
	b, ok := baseAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnsupportedBase, s)
	}
	return b, nil
}

func inAlphabet(r rune, base domain.Base) bool {
	switch base {
	case domain.Binary:
		return r == '0' || r == '1'
	case domain.Octal:
		return r >= '0' && r <= '7'
	case domain.Decimal:
		return r >= '0' && r <= '9'
	case domain.Hexadecimal:
		return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
	}
	return false
}

// Validate checks that every character of digits belongs to base's alphabet.
// The empty string is valid.
func Validate(digits string, base domain.Base) error {
	if !base.Valid() {
		return fmt.Errorf("%w: %d", domain.ErrUnsupportedBase, int(base))
	}
	for i, r := range digits {
		if !inAlphabet(r, base) {
			return &domain.InvalidDigitsError{Digits: digits, Base: base, Index: i, Char: r}
		}
	}
	return nil
}

// Convert re-renders digits written in base from into base to.
// Hex output is upper case. Empty input converts to empty output.
func Convert(digits string, from, to domain.Base) (string, error) {
	if !to.Valid() {
		return "", fmt.Errorf("%w: %d", domain.ErrUnsupportedBase, int(to))
	}
	if err := Validate(digits, from); err != nil {
		return "", err
	}
	if digits == "" {
		return "", nil
	}

	v, err := strconv.ParseUint(digits, int(from), 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return "", fmt.Errorf("%w: %q in %s", domain.ErrPrecisionExceeded, digits, from)
		}
		return "", fmt.Errorf("parse %q as %s: %w", digits, from, err)
	}
	return strings.ToUpper(strconv.FormatUint(v, int(to))), nil
}

// ConvertAll renders digits in every supported base, its own included.
func ConvertAll(digits string, from domain.Base) (map[domain.Base]string, error) {
	out := make(map[domain.Base]string, len(domain.NumberBases))
	for _, to := range domain.NumberBases {
		s, err := Convert(digits, from, to)
		if err != nil {
			return nil, err
		}
		out[to] = s
	}
	return out, nil
}
