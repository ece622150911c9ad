package main

import (
	"strings"

	"github.com/aretw0/bitlab/internal/presentation/tui"
	"github.com/spf13/cobra"
)

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <number>",
		Short: "Classify a number into Natural, Prime, Whole, Integer, Rational, Irrational, Real and Complex",
		Example: `  bitlab classify 7
  bitlab classify -- -3
  bitlab classify 1/2
  bitlab classify √2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lab, err := loadLab(cmd)
			if err != nil {
				return err
			}
			c, err := lab.Classify(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			tui.WriteClassification(out, tui.NewStyler(out), c)
			return nil
		},
	}
}
