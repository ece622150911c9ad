/*
Package numclass sorts a typed-in number into the classic number sets.

The classification is a heuristic, not a numeric type inference engine:

  - Any text containing "i" together with a sign is treated as a complex number and
    nothing else is reported, so "3+2i" is only Complex.
  - Text mentioning π, "pi" or √ is reported as Irrational, Real and Complex.
  - Otherwise the text must be a fraction p/q (q > 0) or start with a decimal literal.
    Every such value is reported as Rational, even when the decimal expansion was typed
    from an irrational number.

These rules mirror what learners see in the classroom widget and are kept as is.
*/
package numclass

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/aretw0/bitlab/pkg/domain"
)

var (
	signPattern     = regexp.MustCompile(`[+\-]`)
	fractionPattern = regexp.MustCompile(`^(-?\d+)\s*/\s*([1-9]\d*)$`)
	// Longest prefix a float parser would accept, mirroring a lenient parseFloat.
	decimalPrefix = regexp.MustCompile(`^[+\-]?(\d+\.?\d*|\.\d+)([eE][+\-]?\d+)?`)
)

// Classification records membership of each category.
type Classification struct {
	Input   string                   `json:"input"`
	Value   *float64                 `json:"value,omitempty"`
	Members map[domain.Category]bool `json:"categories"`
}

func newClassification(input string) Classification {
	members := make(map[domain.Category]bool, len(domain.Categories))
	for _, c := range domain.Categories {
		members[c] = false
	}
	return Classification{Input: input, Members: members}
}

// Has reports whether the number belongs to c.
func (c Classification) Has(cat domain.Category) bool {
	return c.Members[cat]
}

// Categories returns the matched categories in table order.
func (c Classification) Categories() []domain.Category {
	var out []domain.Category
	for _, cat := range domain.Categories {
		if c.Members[cat] {
			out = append(out, cat)
		}
	}
	return out
}

// Classify places text into number categories.
// Text that is neither a recognised marker nor a number fails with
// a *domain.UnclassifiableInputError.
func Classify(text string) (Classification, error) {
	input := strings.ToLower(strings.TrimSpace(text))
	if input == "" {
		return Classification{}, &domain.UnclassifiableInputError{Input: text}
	}

	result := newClassification(text)

	if strings.Contains(input, "i") && signPattern.MatchString(input) && !strings.HasPrefix(input, "http") {
		result.Members[domain.Complex] = true
		return result, nil
	}

	if strings.Contains(input, "π") || strings.Contains(input, "pi") || strings.Contains(input, "√") {
		result.Members[domain.Irrational] = true
		result.Members[domain.Real] = true
		result.Members[domain.Complex] = true
		return result, nil
	}

	num, ok := parseNumber(input)
	if !ok {
		return Classification{}, &domain.UnclassifiableInputError{Input: text}
	}
	result.Value = &num

	result.Members[domain.Complex] = true
	result.Members[domain.Real] = true
	result.Members[domain.Rational] = true

	if num == math.Trunc(num) && !math.IsInf(num, 0) {
		result.Members[domain.Integer] = true
		if num >= 0 {
			result.Members[domain.Whole] = true
			if num > 0 {
				result.Members[domain.Natural] = true
				if num < math.MaxInt64 && IsPrime(int64(num)) {
					result.Members[domain.Prime] = true
				} else if num > 1 {
					result.Members[domain.Composite] = true
				}
			}
		}
	}
	return result, nil
}

func parseNumber(input string) (float64, bool) {
	if m := fractionPattern.FindStringSubmatch(input); m != nil {
		p, errP := strconv.ParseFloat(m[1], 64)
		q, errQ := strconv.ParseFloat(m[2], 64)
		if errP != nil || errQ != nil {
			return 0, false
		}
		return p / q, true
	}

	prefix := decimalPrefix.FindString(input)
	if prefix == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		// Overflowing exponents still parse to ±Inf, like a lenient float parser.
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return v, true
		}
		return 0, false
	}
	return v, true
}

// IsPrime reports whether n is prime using 6k±1 trial division up to √n.
func IsPrime(n int64) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := int64(5); i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}
