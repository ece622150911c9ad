package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/bitlab"
	"github.com/aretw0/bitlab/internal/cli"
	"github.com/aretw0/bitlab/internal/config"
	"github.com/aretw0/bitlab/pkg/domain"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bitlab",
		Short: "bitlab is a digital logic and number systems workbench",
		Long: `bitlab evaluates logic gates, rebuilds them from NAND or NOR gates,
converts between numeral systems, classifies numbers and asks a tutor model
to explain computer science concepts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags (available to all commands)
	root.PersistentFlags().String("config", "", "Path to a bitlab.yaml config file")
	root.PersistentFlags().String("log-level", "", "Override the log level (debug, info, warn, error)")

	replCmd := newReplCmd()
	root.AddCommand(
		newGateCmd(),
		newConvertCmd(),
		newClassifyCmd(),
		newExplainCmd(),
		replCmd,
		newServeCmd(),
		newMCPCmd(),
		newVersionCmd(),
	)
	root.RunE = replCmd.RunE
	root.Flags().AddFlagSet(replCmd.Flags())
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", domain.DisplayMessage(err))
		os.Exit(1)
	}
}

// loadConfig reads --config and applies --log-level.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Log.Level = level
	}
	return cfg, nil
}

// loadApp builds the fully wired application: cache, explainer and metrics.
func loadApp(cmd *cobra.Command) (*cli.App, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger, err := cli.NewLogger(cfg)
	if err != nil {
		return nil, err
	}
	return cli.NewApp(cmd.Context(), cfg, logger)
}

// loadLab builds a Lab for the offline commands, which never touch the cache or provider.
func loadLab(cmd *cobra.Command) (*bitlab.Lab, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger, err := cli.NewLogger(cfg)
	if err != nil {
		return nil, err
	}
	hooks := domain.LifecycleHooks{}
	if logger.Enabled(cmd.Context(), slog.LevelDebug) {
		hooks = cli.DebugHooks(logger)
	}
	return bitlab.New(bitlab.WithLogger(logger), bitlab.WithLifecycleHooks(hooks)), nil
}
