package main

import (
	"fmt"

	"github.com/aretw0/bitlab/internal/presentation/tui"
	"github.com/aretw0/bitlab/pkg/domain"
	"github.com/aretw0/bitlab/pkg/radix"
	"github.com/spf13/cobra"
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <digits>",
		Short: "Convert an unsigned integer between bases 2, 8, 10 and 16",
		Example: `  bitlab convert 1010 --from 2 --to 10
  bitlab convert ff --from hex --all`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lab, err := loadLab(cmd)
			if err != nil {
				return err
			}
			fromFlag, _ := cmd.Flags().GetString("from")
			from, err := radix.ParseBase(fromFlag)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if all, _ := cmd.Flags().GetBool("all"); all {
				s := tui.NewStyler(out)
				for _, to := range domain.NumberBases {
					v, err := lab.Convert(cmd.Context(), args[0], from, to)
					if err != nil {
						return err
					}
					fmt.Fprintf(out, "%s %s\n", s.Heading(fmt.Sprintf("%-12s", to)), v)
				}
				return nil
			}

			toFlag, _ := cmd.Flags().GetString("to")
			to, err := radix.ParseBase(toFlag)
			if err != nil {
				return err
			}
			v, err := lab.Convert(cmd.Context(), args[0], from, to)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, v)
			return nil
		},
	}
	cmd.Flags().String("from", "10", "Source base (2, 8, 10, 16 or bin, oct, dec, hex)")
	cmd.Flags().String("to", "2", "Target base (2, 8, 10, 16 or bin, oct, dec, hex)")
	cmd.Flags().Bool("all", false, "Print the value in every supported base")
	return cmd
}
