package logic

import (
	"fmt"

	"github.com/aretw0/bitlab/pkg/domain"
)

// Wire indexes a signal inside a circuit. Wires 0 and 1 are the inputs A and B;
// wire 2+i is the output of the i-th gate.
type Wire int

const (
	WireA Wire = 0
	WireB Wire = 1
)

// Name returns the label used in tables and diagrams: A, B, g1, g2, ...
func (w Wire) Name() string {
	switch w {
	case WireA:
		return "A"
	case WireB:
		return "B"
	default:
		return fmt.Sprintf("g%d", int(w)-1)
	}
}

// Gate is one universal gate inside a circuit.
type Gate struct {
	In0 Wire `json:"in0"`
	In1 Wire `json:"in1"`
	Out Wire `json:"out"`
}

// Circuit is a fixed composition of a single basis gate that reproduces a target gate.
type Circuit struct {
	Kind   domain.GateKind `json:"kind"`
	Basis  domain.Basis    `json:"basis"`
	Gates  []Gate          `json:"gates"`
	Output Wire            `json:"output"`
}

// Trace holds the value of every wire after a computation, indexed by Wire.
type Trace []bool

// Value returns the signal on w.
func (t Trace) Value(w Wire) bool {
	if int(w) < 0 || int(w) >= len(t) {
		return false
	}
	return t[w]
}

// NumWires returns the number of wires, inputs included.
func (c *Circuit) NumWires() int {
	return 2 + len(c.Gates)
}

// GateCount returns the number of basis gates used.
func (c *Circuit) GateCount() int {
	return len(c.Gates)
}

// Compute evaluates the circuit on inputs a and b and returns the output
// together with the value of every wire.
func (c *Circuit) Compute(a, b bool) (bool, Trace) {
	op := basisOp(c.Basis)
	wires := make(Trace, c.NumWires())
	wires[WireA] = a
	wires[WireB] = b

	for _, g := range c.Gates {
		wires[g.Out] = op(wires[g.In0], wires[g.In1])
	}
	return wires[c.Output], wires
}

// builder appends basis gates and hands back their output wires.
type builder struct {
	gates []Gate
}

func (b *builder) op(x, y Wire) Wire {
	out := Wire(2 + len(b.gates))
	b.gates = append(b.gates, Gate{In0: x, In1: y, Out: out})
	return out
}

type construction struct {
	kind  domain.GateKind
	basis domain.Basis
}

// constructions maps each supported pair to the wiring of its circuit.
// NOR and XNOR from NAND, NAND and XOR from NOR have no entry.
var constructions = map[construction]func(b *builder) Wire{
	{domain.GateNOT, domain.BasisNAND}: func(b *builder) Wire {
		return b.op(WireA, WireA)
	},
	{domain.GateBUFFER, domain.BasisNAND}: func(b *builder) Wire {
		n := b.op(WireA, WireA)
		return b.op(n, n)
	},
	{domain.GateAND, domain.BasisNAND}: func(b *builder) Wire {
		n := b.op(WireA, WireB)
		return b.op(n, n)
	},
	{domain.GateOR, domain.BasisNAND}: func(b *builder) Wire {
		na := b.op(WireA, WireA)
		nb := b.op(WireB, WireB)
		return b.op(na, nb)
	},
	{domain.GateNAND, domain.BasisNAND}: func(b *builder) Wire {
		return b.op(WireA, WireB)
	},
	{domain.GateXOR, domain.BasisNAND}: func(b *builder) Wire {
		n1 := b.op(WireA, WireB)
		n2 := b.op(WireA, n1)
		n3 := b.op(WireB, n1)
		return b.op(n2, n3)
	},

	{domain.GateNOT, domain.BasisNOR}: func(b *builder) Wire {
		return b.op(WireA, WireA)
	},
	{domain.GateBUFFER, domain.BasisNOR}: func(b *builder) Wire {
		n := b.op(WireA, WireA)
		return b.op(n, n)
	},
	{domain.GateOR, domain.BasisNOR}: func(b *builder) Wire {
		n := b.op(WireA, WireB)
		return b.op(n, n)
	},
	{domain.GateAND, domain.BasisNOR}: func(b *builder) Wire {
		na := b.op(WireA, WireA)
		nb := b.op(WireB, WireB)
		return b.op(na, nb)
	},
	{domain.GateNOR, domain.BasisNOR}: func(b *builder) Wire {
		return b.op(WireA, WireB)
	},
	{domain.GateXNOR, domain.BasisNOR}: func(b *builder) Wire {
		n1 := b.op(WireA, WireA)
		n2 := b.op(WireB, WireB)
		n3 := b.op(WireA, WireB)
		n4 := b.op(n1, n2)
		// NOR(n4, n3) alone yields XOR; the tied gate inverts it.
		x := b.op(n4, n3)
		return b.op(x, x)
	},
}

// Construction builds the circuit that reproduces kind using only basis gates.
// Pairs without a defined circuit fail with a *domain.ConstructionUnavailableError.
func Construction(kind domain.GateKind, basis domain.Basis) (*Circuit, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownGate, string(kind))
	}
	if !basis.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownBasis, string(basis))
	}
	wire, ok := constructions[construction{kind, basis}]
	if !ok {
		return nil, &domain.ConstructionUnavailableError{Kind: kind, Basis: basis}
	}

	b := &builder{}
	out := wire(b)
	return &Circuit{
		Kind:   kind,
		Basis:  basis,
		Gates:  b.gates,
		Output: out,
	}, nil
}

// Available reports whether a construction exists for the pair.
func Available(kind domain.GateKind, basis domain.Basis) bool {
	_, ok := constructions[construction{kind, basis}]
	return ok
}

// Pair identifies a supported construction.
type Pair struct {
	Kind  domain.GateKind `json:"kind"`
	Basis domain.Basis    `json:"basis"`
}

// Constructions lists every supported pair, basis-major in display order.
func Constructions() []Pair {
	var pairs []Pair
	for _, basis := range domain.Bases {
		for _, kind := range domain.GateKinds {
			if Available(kind, basis) {
				pairs = append(pairs, Pair{Kind: kind, Basis: basis})
			}
		}
	}
	return pairs
}

// EvaluateViaBasis computes kind on a and b through its basis construction.
func EvaluateViaBasis(kind domain.GateKind, basis domain.Basis, a, b bool) (bool, error) {
	c, err := Construction(kind, basis)
	if err != nil {
		return false, err
	}
	out, _ := c.Compute(a, b)
	return out, nil
}

// Verify checks that the construction for the pair agrees with direct evaluation
// on every input combination.
func Verify(kind domain.GateKind, basis domain.Basis) error {
	c, err := Construction(kind, basis)
	if err != nil {
		return err
	}
	for _, a := range []bool{false, true} {
		for _, b := range []bool{false, true} {
			got, _ := c.Compute(a, b)
			if want := Evaluate(kind, a, b); got != want {
				return fmt.Errorf("%s from %s disagrees at A=%d B=%d: got %d, want %d",
					kind, basis, domain.Bit(a), domain.Bit(b), domain.Bit(got), domain.Bit(want))
			}
		}
	}
	return nil
}
