// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"fmt"
	"log/slog"

	"github.com/dacolabs/jsonshape/internal/session"
	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	output  string
	verbose bool
	noInput bool

	logger *slog.Logger
}

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{logger: slog.New(slog.DiscardHandler)}

	rootCmd := &cobra.Command{
		Use:   "jsonshape",
		Short: "Normalize, link and validate semi-structured JSON records",
		Long: `jsonshape reshapes loosely-typed JSON records before import.

It coerces string-encoded scalars, builds a leaf/branch graph from records
that reference each other by id, and validates records against a field schema.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.setup(cmd); err != nil {
				return err
			}
			return session.Attach(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "text", "Output format (text, json, yaml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log diagnostics to stderr")
	rootCmd.PersistentFlags().BoolVar(&opts.noInput, "no-input", false, "Never prompt; fail when a value is missing")

	rootCmd.AddCommand(
		newInitCmd(opts),
		newNormalizeCmd(opts),
		newGraphCmd(opts),
		newValidateCmd(opts),
		newPipelineCmd(opts),
		newSchemaCmd(opts),
		newVersionCmd(opts),
	)

	return rootCmd
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	switch o.output {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unsupported output format %q (text, json, yaml)", o.output)
	}
	if o.verbose {
		o.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return nil
}
