package tui_test

import (
	"bytes"
	"testing"

	"github.com/aretw0/bitlab/internal/presentation/tui"
	"github.com/aretw0/bitlab/pkg/domain"
	"github.com/aretw0/bitlab/pkg/logic"
	"github.com/aretw0/bitlab/pkg/numclass"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTruthTable(t *testing.T) {
	var buf bytes.Buffer
	tui.WriteTruthTable(&buf, tui.PlainStyler(), domain.GateNAND, logic.TruthTable(domain.GateNAND))

	assert.Contains(t, buf.String(), "NAND truth table")
	assert.Contains(t, buf.String(), " 0 | 0 | 1\n")
	assert.Contains(t, buf.String(), " 1 | 1 | 0\n")
}

func TestWriteTruthTable_Unary(t *testing.T) {
	var buf bytes.Buffer
	tui.WriteTruthTable(&buf, tui.PlainStyler(), domain.GateNOT, logic.TruthTable(domain.GateNOT))

	assert.Contains(t, buf.String(), " A | Y\n")
	assert.Contains(t, buf.String(), " 0 | 1\n")
	assert.NotContains(t, buf.String(), " B ")
}

func TestWriteClassification(t *testing.T) {
	c, err := numclass.Classify("7")
	require.NoError(t, err)

	var buf bytes.Buffer
	tui.WriteClassification(&buf, tui.PlainStyler(), c)

	assert.Contains(t, buf.String(), "✓ Prime")
	assert.Contains(t, buf.String(), "✗ Composite")
}

func TestNewStyledRenderer(t *testing.T) {
	render, err := tui.NewStyledRenderer("notty")
	require.NoError(t, err)

	out, err := render("**bold** and `code`")
	require.NoError(t, err)
	assert.Contains(t, out, "bold")
	assert.Contains(t, out, "code")
}
