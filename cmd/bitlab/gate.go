package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/bitlab/internal/presentation/graph"
	"github.com/aretw0/bitlab/internal/presentation/tui"
	"github.com/aretw0/bitlab/pkg/domain"
	"github.com/aretw0/bitlab/pkg/logic"
	"github.com/spf13/cobra"
)

func newGateCmd() *cobra.Command {
	gateCmd := &cobra.Command{
		Use:   "gate",
		Short: "Evaluate logic gates and their universal-gate constructions",
	}
	gateCmd.AddCommand(
		newGateEvalCmd(),
		newGateTableCmd(),
		newGateConstructCmd(),
		newGateVerifyCmd(),
		newGateListCmd(),
	)
	return gateCmd
}

func newGateEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <gate> <a> [b]",
		Short: "Evaluate a gate on 0/1 inputs",
		Example: `  bitlab gate eval xor 1 0
  bitlab gate eval not 1
  bitlab gate eval or 0 1 --via nand`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			lab, err := loadLab(cmd)
			if err != nil {
				return err
			}
			kind, err := domain.ParseGateKind(args[0])
			if err != nil {
				return err
			}
			a, b, err := parseInputs(kind, args[1:])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			s := tui.NewStyler(out)
			via, _ := cmd.Flags().GetString("via")
			if via == "" {
				fmt.Fprintln(out, s.Bit(lab.Evaluate(cmd.Context(), kind, a, b)))
				return nil
			}
			basis, err := domain.ParseBasis(via)
			if err != nil {
				return err
			}
			v, err := lab.EvaluateViaBasis(cmd.Context(), kind, basis, a, b)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, s.Bit(v))
			return nil
		},
	}
	cmd.Flags().String("via", "", "Compute through the NAND or NOR construction")
	return cmd
}

func newGateTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table <gate>",
		Short: "Print the truth table of a gate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lab, err := loadLab(cmd)
			if err != nil {
				return err
			}
			kind, err := domain.ParseGateKind(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			tui.WriteTruthTable(out, tui.NewStyler(out), kind, lab.TruthTable(kind))
			return nil
		},
	}
}

func newGateConstructCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "construct <gate> <nand|nor> [a] [b]",
		Short: "Show how a gate is built from NAND or NOR gates",
		Long: `Lists every basis gate of the construction with the signal on its output
for the given inputs (default 0 0). With --mermaid, prints a Mermaid flowchart instead.`,
		Args: cobra.RangeArgs(2, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			lab, err := loadLab(cmd)
			if err != nil {
				return err
			}
			kind, err := domain.ParseGateKind(args[0])
			if err != nil {
				return err
			}
			basis, err := domain.ParseBasis(args[1])
			if err != nil {
				return err
			}
			var a, b bool
			if len(args) > 2 {
				if a, b, err = domain.ParseBits(args[2:]); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			mermaid, _ := cmd.Flags().GetBool("mermaid")
			view, err := lab.Construct(cmd.Context(), kind, basis, a, b)
			if err != nil {
				if mermaid && errors.Is(err, domain.ErrConstructionUnavailable) {
					fmt.Fprint(out, graph.UnavailableMermaid(kind, basis))
				}
				return err
			}
			if mermaid {
				fmt.Fprint(out, view.Diagram)
				return nil
			}
			writeConstruction(out, tui.NewStyler(out), view.Circuit, view.Trace)
			return nil
		},
	}
	cmd.Flags().Bool("mermaid", false, "Print a Mermaid flowchart")
	return cmd
}

func writeConstruction(w io.Writer, s tui.Styler, c *logic.Circuit, trace logic.Trace) {
	fmt.Fprintln(w, s.Heading(fmt.Sprintf("%s from %s gates (%d)", c.Kind, c.Basis, c.GateCount())))
	fmt.Fprintf(w, " A = %s\n", s.Bit(trace.Value(logic.WireA)))
	if !c.Kind.Unary() {
		fmt.Fprintf(w, " B = %s\n", s.Bit(trace.Value(logic.WireB)))
	}
	for _, g := range c.Gates {
		fmt.Fprintf(w, " %s = %s(%s, %s) = %s\n",
			g.Out.Name(), c.Basis, g.In0.Name(), g.In1.Name(), s.Bit(trace.Value(g.Out)))
	}
	fmt.Fprintf(w, " Y = %s = %s\n", c.Output.Name(), s.Bit(trace.Value(c.Output)))
}

func newGateVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check every construction against direct evaluation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			s := tui.NewStyler(out)
			var failed []string
			for _, p := range logic.Constructions() {
				if err := logic.Verify(p.Kind, p.Basis); err != nil {
					fmt.Fprintf(out, " %s %s\n", s.Check(false), err)
					failed = append(failed, fmt.Sprintf("%s/%s", p.Kind, p.Basis))
					continue
				}
				c, _ := logic.Construction(p.Kind, p.Basis)
				fmt.Fprintf(out, " %s %s from %s (%d gates)\n", s.Check(true), p.Kind, p.Basis, c.GateCount())
			}
			if len(failed) > 0 {
				return fmt.Errorf("constructions disagree with direct evaluation: %s", strings.Join(failed, ", "))
			}
			return nil
		},
	}
}

func newGateListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List gate kinds and which bases can build them",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			s := tui.NewStyler(out)
			fmt.Fprintln(out, s.Heading(fmt.Sprintf(" %-7s %-6s %-5s %-5s", "GATE", "INPUTS", "NAND", "NOR")))
			for _, kind := range domain.GateKinds {
				fmt.Fprintf(out, " %-7s %-6d %-5s %-5s\n", kind, kind.Arity(),
					s.Check(logic.Available(kind, domain.BasisNAND)),
					s.Check(logic.Available(kind, domain.BasisNOR)))
			}
		},
	}
}

// parseInputs reads the inputs of kind, one for unary gates and two otherwise.
func parseInputs(kind domain.GateKind, args []string) (bool, bool, error) {
	if len(args) != kind.Arity() {
		return false, false, fmt.Errorf("%s takes %d input(s), got %d", kind, kind.Arity(), len(args))
	}
	return domain.ParseBits(args)
}
