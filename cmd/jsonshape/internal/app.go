// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/dacolabs/jsonshape/internal/commands"
)

// NoInputEnv disables interactive prompts when set to a non-empty value.
const NoInputEnv = "JSONSHAPE_NO_INPUT"

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, arguments, env lookup).
func Run(ctx context.Context, args []string, getenv func(string) string) error {
	rootCmd := commands.NewRootCmd()
	if getenv(NoInputEnv) != "" {
		if err := rootCmd.PersistentFlags().Set("no-input", "true"); err != nil {
			return err
		}
	}
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}
