package numclass_test

import (
	"testing"

	"github.com/aretw0/bitlab/pkg/domain"
	"github.com/aretw0/bitlab/pkg/numclass"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []domain.Category
	}{
		{"Prime", "7", []domain.Category{domain.Natural, domain.Prime, domain.Whole, domain.Integer, domain.Rational, domain.Real, domain.Complex}},
		{"Composite", "4", []domain.Category{domain.Natural, domain.Composite, domain.Whole, domain.Integer, domain.Rational, domain.Real, domain.Complex}},
		{"One is neither prime nor composite", "1", []domain.Category{domain.Natural, domain.Whole, domain.Integer, domain.Rational, domain.Real, domain.Complex}},
		{"Zero", "0", []domain.Category{domain.Whole, domain.Integer, domain.Rational, domain.Real, domain.Complex}},
		{"Negative integer", "-5", []domain.Category{domain.Integer, domain.Rational, domain.Real, domain.Complex}},
		{"Fraction", "1/2", []domain.Category{domain.Rational, domain.Real, domain.Complex}},
		{"Fraction with spaces reducing to integer", "6 / 3", []domain.Category{domain.Natural, domain.Prime, domain.Whole, domain.Integer, domain.Rational, domain.Real, domain.Complex}},
		{"Decimal", "3.14", []domain.Category{domain.Rational, domain.Real, domain.Complex}},
		{"Trailing garbage is ignored", "12abc", []domain.Category{domain.Natural, domain.Composite, domain.Whole, domain.Integer, domain.Rational, domain.Real, domain.Complex}},
		{"Pi symbol", "π", []domain.Category{domain.Irrational, domain.Real, domain.Complex}},
		{"Pi word", " PI ", []domain.Category{domain.Irrational, domain.Real, domain.Complex}},
		{"Root", "√2", []domain.Category{domain.Irrational, domain.Real, domain.Complex}},
		{"Complex", "3+2i", []domain.Category{domain.Complex}},
		{"Complex with minus", "1 - i", []domain.Category{domain.Complex}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := numclass.Classify(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Categories())
			assert.Len(t, got.Members, len(domain.Categories))
		})
	}
}

func TestClassify_CategoryFlags(t *testing.T) {
	seven, err := numclass.Classify("7")
	require.NoError(t, err)
	assert.True(t, seven.Has(domain.Prime))
	assert.False(t, seven.Has(domain.Composite))
	require.NotNil(t, seven.Value)
	assert.Equal(t, 7.0, *seven.Value)

	four, err := numclass.Classify("4")
	require.NoError(t, err)
	assert.True(t, four.Has(domain.Composite))
	assert.False(t, four.Has(domain.Prime))

	neg, err := numclass.Classify("-5")
	require.NoError(t, err)
	assert.True(t, neg.Has(domain.Integer))
	assert.False(t, neg.Has(domain.Whole))
	assert.False(t, neg.Has(domain.Natural))
	assert.False(t, neg.Has(domain.Prime))
	assert.False(t, neg.Has(domain.Composite))

	half, err := numclass.Classify("1/2")
	require.NoError(t, err)
	assert.False(t, half.Has(domain.Integer))
	assert.True(t, half.Has(domain.Rational))
}

func TestClassify_Unclassifiable(t *testing.T) {
	for _, input := range []string{"abc", "", "   ", "x7", "/2", "http://example.com/1-i"} {
		_, err := numclass.Classify(input)
		assert.ErrorIs(t, err, domain.ErrUnclassifiable, "input %q", input)
	}
}

func TestIsPrime(t *testing.T) {
	primes := []int64{2, 3, 5, 7, 11, 13, 25013, 2147483647}
	for _, p := range primes {
		assert.True(t, numclass.IsPrime(p), "%d", p)
	}
	composites := []int64{-7, 0, 1, 4, 9, 25, 49, 25015, 2147483649}
	for _, c := range composites {
		assert.False(t, numclass.IsPrime(c), "%d", c)
	}
}
