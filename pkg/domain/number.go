package domain

// Base is the radix of a positional numeral system.
type Base int

const (
	Binary      Base = 2
	Octal       Base = 8
	Decimal     Base = 10
	Hexadecimal Base = 16
)

// Bases in the order the converter offers them.
var NumberBases = []Base{Binary, Decimal, Hexadecimal, Octal}

// Valid reports whether b is one of the supported radixes.
func (b Base) Valid() bool {
	switch b {
	case Binary, Octal, Decimal, Hexadecimal:
		return true
	}
	return false
}

func (b Base) String() string {
	switch b {
	case Binary:
		return "binary"
	case Octal:
		return "octal"
	case Decimal:
		return "decimal"
	case Hexadecimal:
		return "hexadecimal"
	default:
		return "unknown"
	}
}

// Category is a set of numbers the classifier can report membership of.
type Category string

const (
	Natural    Category = "Natural"
	Prime      Category = "Prime"
	Composite  Category = "Composite"
	Whole      Category = "Whole"
	Integer    Category = "Integer"
	Rational   Category = "Rational"
	Irrational Category = "Irrational"
	Real       Category = "Real"
	Complex    Category = "Complex"
)

// Categories lists every category in table order.
var Categories = []Category{Natural, Prime, Composite, Whole, Integer, Rational, Irrational, Real, Complex}

var categoryDescriptions = map[Category]string{
	Natural:    "Common counting numbers, starting from 1. Example: 1, 2, 3, ...",
	Prime:      "A natural number greater than 1 which has only 1 and itself as factors. Example: 2, 3, 5, 7, 11.",
	Composite:  "A natural number greater than 1 which has more factors than 1 and itself. Example: 4, 6, 8, 9, 10.",
	Whole:      "The set of Natural Numbers with the number 0 adjoined. Example: 0, 1, 2, 3, ...",
	Integer:    "Whole Numbers with their opposites (negative numbers) adjoined. Example: ..., -2, -1, 0, 1, 2, ...",
	Rational:   "All numbers which can be written as fractions (a/b where b is not 0). Example: 1/2, -3/4, 5.",
	Irrational: "All numbers which cannot be written as fractions. Their decimal representations are non-repeating and non-terminating. Example: π, √2.",
	Real:       "The set of Rational Numbers with the set of Irrational Numbers adjoined. It includes all numbers on the number line.",
	Complex:    "A number which can be written in the form a + bi, where a and b are real numbers and i is the square root of -1. Example: 3 + 2i.",
}

// Description returns the definition shown next to the category.
func (c Category) Description() string {
	return categoryDescriptions[c]
}
