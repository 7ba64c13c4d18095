// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package session

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

// ErrNotLoaded is returned by Of when Attach has not run for the command.
var ErrNotLoaded = errors.New("project context not loaded")

// Attach loads the project context for the working directory and stores it
// on cmd. Its signature fits cobra's PersistentPreRunE.
func Attach(cmd *cobra.Command, _ []string) error {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, err := Load(parent)
	if err != nil {
		return err
	}
	cmd.SetContext(ctx)
	return nil
}

// Of returns the Context that Attach stored on cmd.
func Of(cmd *cobra.Command) (*Context, error) {
	if cmd.Context() == nil {
		return nil, ErrNotLoaded
	}
	if sess := From(cmd.Context()); sess != nil {
		return sess, nil
	}
	return nil, ErrNotLoaded
}
