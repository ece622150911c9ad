package logic

import "github.com/aretw0/bitlab/pkg/domain"

type gateFunc func(a, b bool) bool

func nand(a, b bool) bool { return !(a && b) }
func nor(a, b bool) bool  { return !(a || b) }

var gateTable = map[domain.GateKind]gateFunc{
	domain.GateAND:    func(a, b bool) bool { return a && b },
	domain.GateOR:     func(a, b bool) bool { return a || b },
	domain.GateXOR:    func(a, b bool) bool { return a != b },
	domain.GateNOT:    func(a, _ bool) bool { return !a },
	domain.GateBUFFER: func(a, _ bool) bool { return a },
	domain.GateNAND:   nand,
	domain.GateNOR:    nor,
	domain.GateXNOR:   func(a, b bool) bool { return a == b },
}

// Evaluate returns the output of gate kind for inputs a and b.
// b is ignored by NOT and BUFFER. Unknown kinds evaluate to false.
func Evaluate(kind domain.GateKind, a, b bool) bool {
	f, ok := gateTable[kind]
	if !ok {
		return false
	}
	return f(a, b)
}

// TruthTable tabulates kind over every input combination, A-major.
// Unary gates yield two rows with B held at false.
func TruthTable(kind domain.GateKind) []domain.TruthRow {
	if kind.Unary() {
		rows := make([]domain.TruthRow, 0, 2)
		for _, a := range []bool{false, true} {
			rows = append(rows, domain.TruthRow{A: a, Output: Evaluate(kind, a, false)})
		}
		return rows
	}
	rows := make([]domain.TruthRow, 0, 4)
	for _, a := range []bool{false, true} {
		for _, b := range []bool{false, true} {
			rows = append(rows, domain.TruthRow{A: a, B: b, Output: Evaluate(kind, a, b)})
		}
	}
	return rows
}

func basisOp(basis domain.Basis) gateFunc {
	if basis == domain.BasisNOR {
		return nor
	}
	return nand
}
