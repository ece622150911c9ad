package domain_test

import (
	"testing"

	"github.com/aretw0/bitlab/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBit(t *testing.T) {
	v, err := domain.ParseBit("1")
	require.NoError(t, err)
	assert.True(t, v)

	v, err = domain.ParseBit("0")
	require.NoError(t, err)
	assert.False(t, v)

	for _, in := range []string{"", "2", "true", "T", "f", " 1"} {
		_, err := domain.ParseBit(in)
		assert.ErrorIs(t, err, domain.ErrInvalidBit, "%q", in)
	}
}

func TestParseBits(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		a, b    bool
		wantErr bool
	}{
		{"None", nil, false, false, false},
		{"Unary", []string{"1"}, true, false, false},
		{"Binary", []string{"0", "1"}, false, true, false},
		{"Bad second input", []string{"1", "yes"}, false, false, true},
		{"Too many", []string{"1", "0", "1"}, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b, err := domain.ParseBits(tt.args)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidBit)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.a, a)
			assert.Equal(t, tt.b, b)
		})
	}
}

func TestParseGateKind(t *testing.T) {
	k, err := domain.ParseGateKind("Nand")
	require.NoError(t, err)
	assert.Equal(t, domain.GateNAND, k)
	assert.Equal(t, 2, k.Arity())
	assert.True(t, k.Inverting())

	_, err = domain.ParseGateKind("mux")
	assert.ErrorIs(t, err, domain.ErrUnknownGate)
}
