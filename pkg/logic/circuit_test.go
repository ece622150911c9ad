package logic_test

import (
	"errors"
	"testing"

	"github.com/aretw0/bitlab/pkg/domain"
	"github.com/aretw0/bitlab/pkg/logic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateViaBasis_MatchesEvaluate(t *testing.T) {
	pairs := logic.Constructions()
	require.Len(t, pairs, 12)

	for _, p := range pairs {
		t.Run(p.Kind.String()+"_from_"+p.Basis.String(), func(t *testing.T) {
			for _, a := range []bool{false, true} {
				for _, b := range []bool{false, true} {
					got, err := logic.EvaluateViaBasis(p.Kind, p.Basis, a, b)
					require.NoError(t, err)
					assert.Equal(t, logic.Evaluate(p.Kind, a, b), got, "A=%v B=%v", a, b)
				}
			}
			assert.NoError(t, logic.Verify(p.Kind, p.Basis))
		})
	}
}

func TestEvaluateViaBasis_Unavailable(t *testing.T) {
	tests := []struct {
		kind  domain.GateKind
		basis domain.Basis
	}{
		{domain.GateNOR, domain.BasisNAND},
		{domain.GateXNOR, domain.BasisNAND},
		{domain.GateNAND, domain.BasisNOR},
		{domain.GateXOR, domain.BasisNOR},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String()+"_from_"+tt.basis.String(), func(t *testing.T) {
			assert.False(t, logic.Available(tt.kind, tt.basis))
			for _, a := range []bool{false, true} {
				for _, b := range []bool{false, true} {
					_, err := logic.EvaluateViaBasis(tt.kind, tt.basis, a, b)
					assert.ErrorIs(t, err, domain.ErrConstructionUnavailable)

					var target *domain.ConstructionUnavailableError
					require.True(t, errors.As(err, &target))
					assert.Equal(t, tt.kind, target.Kind)
					assert.Equal(t, tt.basis, target.Basis)
				}
			}
		})
	}
}

func TestConstruction_InvalidInputs(t *testing.T) {
	_, err := logic.Construction("IMPLY", domain.BasisNAND)
	assert.ErrorIs(t, err, domain.ErrUnknownGate)

	_, err = logic.Construction(domain.GateAND, "XOR")
	assert.ErrorIs(t, err, domain.ErrUnknownBasis)
}

func TestConstruction_Topology(t *testing.T) {
	tests := []struct {
		kind      domain.GateKind
		basis     domain.Basis
		gateCount int
	}{
		{domain.GateNOT, domain.BasisNAND, 1},
		{domain.GateBUFFER, domain.BasisNAND, 2},
		{domain.GateAND, domain.BasisNAND, 2},
		{domain.GateOR, domain.BasisNAND, 3},
		{domain.GateNAND, domain.BasisNAND, 1},
		{domain.GateXOR, domain.BasisNAND, 4},
		{domain.GateNOT, domain.BasisNOR, 1},
		{domain.GateBUFFER, domain.BasisNOR, 2},
		{domain.GateOR, domain.BasisNOR, 2},
		{domain.GateAND, domain.BasisNOR, 3},
		{domain.GateNOR, domain.BasisNOR, 1},
		{domain.GateXNOR, domain.BasisNOR, 6},
	}

	for _, tt := range tests {
		c, err := logic.Construction(tt.kind, tt.basis)
		require.NoError(t, err)
		assert.Equal(t, tt.gateCount, c.GateCount(), "%s from %s", tt.kind, tt.basis)
		assert.Equal(t, logic.Wire(c.NumWires()-1), c.Output, "output is the last gate")
	}
}

func TestCircuit_ComputeTrace(t *testing.T) {
	// XOR from NAND with A=1, B=0: g1=1, g2=0, g3=1, g4=1
	c, err := logic.Construction(domain.GateXOR, domain.BasisNAND)
	require.NoError(t, err)

	out, trace := c.Compute(true, false)
	assert.True(t, out)
	assert.Equal(t, logic.Trace{true, false, true, false, true, true}, trace)
	assert.Equal(t, "g4", c.Output.Name())
	assert.False(t, trace.Value(logic.Wire(99)))
}

func TestCircuit_XNORFromNOR(t *testing.T) {
	c, err := logic.Construction(domain.GateXNOR, domain.BasisNOR)
	require.NoError(t, err)

	tests := []struct {
		a, b bool
		want logic.Trace
	}{
		// A, B, g1=~A, g2=~B, g3=NOR(A,B), g4=A&B, g5=A^B, g6=out
		{false, false, logic.Trace{false, false, true, true, true, false, false, true}},
		{false, true, logic.Trace{false, true, true, false, false, false, true, false}},
		{true, false, logic.Trace{true, false, false, true, false, false, true, false}},
		{true, true, logic.Trace{true, true, false, false, false, true, false, true}},
	}

	for _, tt := range tests {
		out, trace := c.Compute(tt.a, tt.b)
		assert.Equal(t, tt.want, trace, "A=%v B=%v", tt.a, tt.b)
		assert.Equal(t, logic.Evaluate(domain.GateXNOR, tt.a, tt.b), out)
		assert.Equal(t, logic.Evaluate(domain.GateXOR, tt.a, tt.b), trace.Value(logic.Wire(6)))
	}
	assert.NoError(t, logic.Verify(domain.GateXNOR, domain.BasisNOR))
}
