package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/bitlab"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of bitlab",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bitlab version %s\n", strings.TrimSpace(bitlab.Version))
		},
	}
}
