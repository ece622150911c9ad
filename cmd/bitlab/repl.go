package main

import (
	"os"
	"strings"

	"github.com/aretw0/bitlab"
	"github.com/aretw0/bitlab/internal/presentation/tui"
	"github.com/spf13/cobra"
)

func newReplCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive workbench",
		Long:  `Reads one command per line from standard input. Type 'help' for the command list.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			headless, _ := cmd.Flags().GetBool("headless")

			runner := bitlab.NewRunner()
			runner.Input = os.Stdin
			runner.Output = os.Stdout
			runner.Headless = headless
			if !headless {
				tui.PrintBanner(os.Stdout, strings.TrimSpace(bitlab.Version))
				runner.Renderer = tui.NewRenderer()
				runner.Styler = tui.NewStyler(os.Stdout)
			}
			return runner.Run(cmd.Context(), app.Lab)
		},
	}
	cmd.Flags().Bool("headless", false, "Run without banner, prompts or colour (strict IO)")
	return cmd
}
