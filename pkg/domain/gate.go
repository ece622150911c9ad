package domain

import (
	"fmt"
	"strings"
)

// GateKind names a boolean operator.
type GateKind string

const (
	GateAND    GateKind = "AND"
	GateOR     GateKind = "OR"
	GateXOR    GateKind = "XOR"
	GateNOT    GateKind = "NOT"
	GateBUFFER GateKind = "BUFFER"
	GateNAND   GateKind = "NAND"
	GateNOR    GateKind = "NOR"
	GateXNOR   GateKind = "XNOR"
)

// GateKinds lists every gate kind in display order.
var GateKinds = []GateKind{GateAND, GateOR, GateXOR, GateNOT, GateBUFFER, GateNAND, GateNOR, GateXNOR}

// ParseGateKind resolves a gate name case-insensitively.
// "BUF" is accepted as an alias of BUFFER.
func ParseGateKind(s string) (GateKind, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if name == "BUF" {
		return GateBUFFER, nil
	}
	k := GateKind(name)
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownGate, s)
	}
	return k, nil
}

// Valid reports whether k is one of the eight known kinds.
func (k GateKind) Valid() bool {
	switch k {
	case GateAND, GateOR, GateXOR, GateNOT, GateBUFFER, GateNAND, GateNOR, GateXNOR:
		return true
	}
	return false
}

// Arity returns the number of inputs the gate reads.
func (k GateKind) Arity() int {
	if k.Unary() {
		return 1
	}
	return 2
}

// Unary reports whether the gate ignores its second input.
func (k GateKind) Unary() bool {
	return k == GateNOT || k == GateBUFFER
}

// Inverting reports whether the gate symbol carries an output bubble.
func (k GateKind) Inverting() bool {
	switch k {
	case GateNOT, GateNAND, GateNOR, GateXNOR:
		return true
	}
	return false
}

func (k GateKind) String() string {
	return string(k)
}

// Basis names the universal gate a construction is built from.
type Basis string

const (
	BasisNAND Basis = "NAND"
	BasisNOR  Basis = "NOR"
)

// Bases lists both construction bases.
var Bases = []Basis{BasisNAND, BasisNOR}

// ParseBasis resolves a basis name case-insensitively.
func ParseBasis(s string) (Basis, error) {
	b := Basis(strings.ToUpper(strings.TrimSpace(s)))
	if !b.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownBasis, s)
	}
	return b, nil
}

// Valid reports whether b is NAND or NOR.
func (b Basis) Valid() bool {
	return b == BasisNAND || b == BasisNOR
}

// Gate returns the gate kind the basis is made of.
func (b Basis) Gate() GateKind {
	return GateKind(b)
}

func (b Basis) String() string {
	return string(b)
}

// TruthRow is one line of a truth table. B is always false for unary gates.
type TruthRow struct {
	A      bool `json:"a"`
	B      bool `json:"b"`
	Output bool `json:"output"`
}

// ParseBit reads a signal written as 0 or 1.
func ParseBit(s string) (bool, error) {
	switch s {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return false, fmt.Errorf("%w: %q must be 0 or 1", ErrInvalidBit, s)
}

// ParseBits reads the A and B inputs of a gate. Missing inputs are 0.
func ParseBits(args []string) (a, b bool, err error) {
	if len(args) > 2 {
		return false, false, fmt.Errorf("%w: expected at most 2 inputs, got %d", ErrInvalidBit, len(args))
	}
	var bits [2]bool
	for i, in := range args {
		if bits[i], err = ParseBit(in); err != nil {
			return false, false, err
		}
	}
	return bits[0], bits[1], nil
}

// Bit renders a boolean signal as 0 or 1.
func Bit(v bool) int {
	if v {
		return 1
	}
	return 0
}
