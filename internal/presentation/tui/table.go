package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/bitlab/pkg/domain"
	"github.com/aretw0/bitlab/pkg/numclass"
	"github.com/muesli/termenv"
)

// Styler colours 0/1 signals and yes/no cells for a given terminal profile.
type Styler struct {
	profile termenv.Profile
}

// NewStyler detects the colour profile of w.
func NewStyler(w io.Writer) Styler {
	return Styler{profile: termenv.NewOutput(w).Profile}
}

// PlainStyler never emits escape sequences.
func PlainStyler() Styler {
	return Styler{profile: termenv.Ascii}
}

// Bit renders a signal, green for 1 and red for 0.
func (s Styler) Bit(v bool) string {
	if v {
		return s.profile.String("1").Foreground(s.profile.Color("#4ade80")).Bold().String()
	}
	return s.profile.String("0").Foreground(s.profile.Color("#f87171")).String()
}

// Check renders a membership cell.
func (s Styler) Check(v bool) string {
	if v {
		return s.profile.String("✓").Foreground(s.profile.Color("#4ade80")).String()
	}
	return s.profile.String("✗").Foreground(s.profile.Color("#6b7280")).String()
}

// Heading renders a bold title line.
func (s Styler) Heading(text string) string {
	return s.profile.String(text).Foreground(s.profile.Color("#22d3ee")).Bold().String()
}

// WriteTruthTable prints the truth table of a gate.
func WriteTruthTable(w io.Writer, s Styler, kind domain.GateKind, rows []domain.TruthRow) {
	fmt.Fprintln(w, s.Heading(kind.String()+" truth table"))
	if kind.Unary() {
		fmt.Fprintln(w, " A | Y")
		fmt.Fprintln(w, "---+---")
		for _, r := range rows {
			fmt.Fprintf(w, " %s | %s\n", s.Bit(r.A), s.Bit(r.Output))
		}
		return
	}
	fmt.Fprintln(w, " A | B | Y")
	fmt.Fprintln(w, "---+---+---")
	for _, r := range rows {
		fmt.Fprintf(w, " %s | %s | %s\n", s.Bit(r.A), s.Bit(r.B), s.Bit(r.Output))
	}
}

// WriteClassification prints one row per category with its description.
func WriteClassification(w io.Writer, s Styler, c numclass.Classification) {
	fmt.Fprintln(w, s.Heading("Classification of "+strings.TrimSpace(c.Input)))
	for _, cat := range domain.Categories {
		fmt.Fprintf(w, " %s %-11s %s\n", s.Check(c.Has(cat)), cat, s.profile.String(cat.Description()).Faint())
	}
}
