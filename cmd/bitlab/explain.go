package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/bitlab/internal/presentation/tui"
	"github.com/aretw0/bitlab/pkg/explain"
	"github.com/spf13/cobra"
)

func newExplainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain <topic>",
		Short: "Ask the tutor model to explain a computer science concept",
		Long: `Sends the topic to the configured Gemini model and renders the markdown answer.
Requires an API key (explainer.api_key, BITLAB_API_KEY, GEMINI_API_KEY or API_KEY).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if topics, _ := cmd.Flags().GetBool("topics"); topics {
				for _, t := range explain.SuggestedTopics {
					fmt.Fprintln(out, t)
				}
				return nil
			}
			if len(args) == 0 {
				return errors.New("a topic is required (see --topics for ideas)")
			}

			app, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			exp, err := app.Lab.Explain(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			text := exp.Markdown
			if rendered, err := tui.NewRenderer()(text); err == nil {
				text = rendered
			}
			fmt.Fprintln(out, strings.TrimSpace(text))
			return nil
		},
	}
	cmd.Flags().Bool("topics", false, "List suggested topics")
	return cmd
}
