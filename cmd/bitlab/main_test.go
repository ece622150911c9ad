package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/aretw0/bitlab"
	"github.com/aretw0/bitlab/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("BITLAB_LOG_LEVEL", "error")
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "bitlab version "+bitlab.Version+"\n", out)
}

func TestGateEval(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"gate", "eval", "xor", "1", "0"}, "1\n"},
		{[]string{"gate", "eval", "NAND", "1", "1"}, "0\n"},
		{[]string{"gate", "eval", "not", "0"}, "1\n"},
		{[]string{"gate", "eval", "xnor", "0", "1", "--via", "nor"}, "0\n"},
	}
	for _, tt := range tests {
		out, err := execute(t, tt.args...)
		require.NoError(t, err, tt.args)
		assert.Equal(t, tt.want, out, tt.args)
	}

	_, err := execute(t, "gate", "eval", "xnor", "0", "1", "--via", "nand")
	assert.ErrorIs(t, err, domain.ErrConstructionUnavailable)

	_, err = execute(t, "gate", "eval", "and", "1")
	assert.EqualError(t, err, "AND takes 2 input(s), got 1")

	_, err = execute(t, "gate", "eval", "and", "1", "2")
	assert.ErrorIs(t, err, domain.ErrInvalidBit)
}

func TestGateTableAndList(t *testing.T) {
	out, err := execute(t, "gate", "table", "buffer")
	require.NoError(t, err)
	assert.Equal(t, "BUFFER truth table\n A | Y\n---+---\n 0 | 0\n 1 | 1\n", out)

	out, err = execute(t, "gate", "list")
	require.NoError(t, err)
	assert.Contains(t, out, " XOR     2      ✓     ✗    \n")
}

func TestGateConstruct(t *testing.T) {
	out, err := execute(t, "gate", "construct", "or", "nand", "0", "1")
	require.NoError(t, err)
	assert.Equal(t, `OR from NAND gates (3)
 A = 0
 B = 1
 g1 = NAND(A, A) = 1
 g2 = NAND(B, B) = 0
 g3 = NAND(g1, g2) = 1
 Y = g3 = 1
`, out)

	_, err = execute(t, "gate", "construct", "or", "nand", "0", "high")
	assert.ErrorIs(t, err, domain.ErrInvalidBit)

	out, err = execute(t, "gate", "construct", "and", "nor", "--mermaid")
	require.NoError(t, err)
	assert.Contains(t, out, "graph LR")

	out, err = execute(t, "gate", "construct", "nand", "nor", "--mermaid")
	assert.ErrorIs(t, err, domain.ErrConstructionUnavailable)
	assert.Contains(t, out, "coming soon")
}

func TestGateVerify(t *testing.T) {
	out, err := execute(t, "gate", "verify")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ XOR from NAND (4 gates)")
	assert.Contains(t, out, "✓ XNOR from NOR (6 gates)")
	assert.NotContains(t, out, "✗")
}

func TestConvert(t *testing.T) {
	out, err := execute(t, "convert", "1010", "--from", "2", "--to", "10")
	require.NoError(t, err)
	assert.Equal(t, "10\n", out)

	out, err = execute(t, "convert", "ff", "--from", "hex", "--all")
	require.NoError(t, err)
	assert.Equal(t, "binary       11111111\ndecimal      255\nhexadecimal  FF\noctal        377\n", out)

	_, err = execute(t, "convert", "12", "--from", "2", "--to", "10")
	assert.ErrorIs(t, err, domain.ErrInvalidDigits)

	_, err = execute(t, "convert", "1", "--from", "3")
	assert.ErrorIs(t, err, domain.ErrUnsupportedBase)
}

func TestClassify(t *testing.T) {
	out, err := execute(t, "classify", "1/2")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Rational")
	assert.Contains(t, out, "✗ Integer")

	_, err = execute(t, "classify", "banana")
	assert.ErrorIs(t, err, domain.ErrUnclassifiable)
}

func TestExplain(t *testing.T) {
	out, err := execute(t, "explain", "--topics")
	require.NoError(t, err)
	assert.Contains(t, out, "What is an AND gate?")

	t.Setenv("BITLAB_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")
	t.Setenv("BITLAB_CACHE", "none")
	_, err = execute(t, "explain", "RAM")
	assert.ErrorIs(t, err, bitlab.ErrExplainerUnavailable)

	_, err = execute(t, "explain")
	assert.Error(t, err)
}
