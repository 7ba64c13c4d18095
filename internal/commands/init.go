// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dacolabs/jsonshape/internal/config"
	"github.com/dacolabs/jsonshape/internal/graph"
	"github.com/dacolabs/jsonshape/internal/normalize"
	"github.com/dacolabs/jsonshape/internal/prompts"
	"github.com/dacolabs/jsonshape/internal/session"
	"github.com/dacolabs/jsonshape/internal/validate"
	"github.com/spf13/cobra"
)

type initOptions struct {
	idField         string
	branchField     string
	schemaPath      string
	typeConversions bool
	defineSchema    bool
	nonInteractive  bool
}

func newInitCmd(root *rootOptions) *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a jsonshape project",
		Long: `Initialize a jsonshape project with a jsonshape.yaml configuration file.
Optionally defines a record schema interactively and stores it next to the config.`,
		Example: `  # Interactive mode
  jsonshape init

  # Non-interactive
  jsonshape init --id-field id --branch-field friends --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, root, opts)
		},
	}

	defaults := config.Default()
	cmd.Flags().StringVar(&opts.idField, "id-field", defaults.Graph.IDField, "Field holding each record's identity")
	cmd.Flags().StringVar(&opts.branchField, "branch-field", defaults.Graph.BranchField, "Field holding the array of referenced ids")
	cmd.Flags().StringVar(&opts.schemaPath, "schema", "", "Path of the schema file to reference")
	cmd.Flags().BoolVar(&opts.typeConversions, "convert", false, "Enable string-to-scalar conversion")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	return cmd
}

func runInit(cmd *cobra.Command, root *rootOptions, opts *initOptions) error {
	sess, err := session.Of(cmd)
	if err != nil {
		return err
	}

	cfgPath := filepath.Join(sess.Dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return errors.New("jsonshape.yaml already exists; project already initialized")
	}

	if !opts.nonInteractive && !root.noInput {
		if err := prompts.RunInitForm(
			&opts.idField,
			&opts.branchField,
			&opts.schemaPath,
			&opts.typeConversions,
			&opts.defineSchema,
		); err != nil {
			return err
		}
	}

	cfg := config.Config{
		Version: config.CurrentConfigVersion,
		Schema:  opts.schemaPath,
		Graph:   graph.Config{IDField: opts.idField, BranchField: opts.branchField},
		Normalize: normalize.Config{
			TypeConversions: opts.typeConversions,
		},
	}

	if opts.defineSchema {
		if cfg.Schema == "" {
			cfg.Schema = "schema.yaml"
		}
		schema := validate.Schema{}
		if err := prompts.RunSchemaForm(schema); err != nil {
			return err
		}
		if err := writeSchemaFile(sess.Path(cfg.Schema), schema); err != nil {
			return err
		}
		root.logger.Debug("schema written", "path", cfg.Schema, "fields", len(schema))
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(cfgPath); err != nil {
		return fmt.Errorf("failed to write jsonshape.yaml: %w", err)
	}

	fields := []prompts.ResultField{
		{Label: "Identity field", Value: cfg.Graph.IDField},
		{Label: "Reference field", Value: cfg.Graph.BranchField},
	}
	if cfg.Schema != "" {
		fields = append(fields, prompts.ResultField{Label: "Schema", Value: cfg.Schema})
	}
	prompts.PrintResult(cmd.OutOrStdout(), fields, "Initialization completed")
	return nil
}
