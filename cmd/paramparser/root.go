package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/paramparser/pkg/config"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
)

// app carries what every subcommand needs once the root has initialized.
type app struct {
	envFile string
	cfg     appConfig
	log     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "paramparser",
		Short: "Validate and clean records against declarative rule tables",
		Long: `paramparser checks untyped records (JSON, YAML or TOML documents, or HTTP
request bodies) against rule tables written as spec files, and prints the
cleaned record or the list of failures.

Examples:
  paramparser validate --spec signup.yaml --input request.json
  cat request.json | paramparser validate --spec signup.yaml --output yaml
  paramparser serve --spec-dir ./specs --addr :8080`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", "load environment variables from this file (default .env when present)")

	root.AddCommand(newValidateCmd(a), newServeCmd(a), newVersionCmd())
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	if a.envFile != "" {
		if err := config.LoadEnv(a.envFile); err != nil {
			return err
		}
	}

	if err := config.Load(&a.cfg); err != nil {
		return err
	}

	log, err := newLogger(a.cfg, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("invalid logger configuration: %w", err)
	}
	a.log = log
	return nil
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "paramparser %s (commit: %s)\n", Version, Commit)
		},
	}
	// version needs neither configuration nor a logger
	cmd.PersistentPreRunE = func(*cobra.Command, []string) error { return nil }
	return cmd
}
