// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dacolabs/jsonshape/internal/document"
	"github.com/dacolabs/jsonshape/internal/jschema"
	"github.com/dacolabs/jsonshape/internal/prompts"
	"github.com/dacolabs/jsonshape/internal/schemadoc"
	"github.com/dacolabs/jsonshape/internal/session"
	"github.com/dacolabs/jsonshape/internal/validate"
	"github.com/spf13/cobra"
)

func newSchemaCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Work with field schemas",
		Long:  `Create, export and describe the field schemas records are validated against.`,
	}

	cmd.AddCommand(
		newSchemaExportCmd(root),
		newSchemaDescribeCmd(),
		newSchemaNewCmd(root),
	)

	return cmd
}

// schemaArg returns the schema named on the command line, or the configured one.
func schemaArg(sess *session.Context, args []string) (validate.Schema, string, error) {
	path := sess.Config.Schema
	if len(args) > 0 {
		path = args[0]
	}
	s, err := sess.LoadSchema(path)
	return s, path, err
}

func newSchemaExportCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export [schema]",
		Short: "Export a field schema as JSON Schema",
		Long: `Convert a field schema into a JSON Schema object document.
Written as JSON, or YAML with --output yaml.`,
		Example: `  jsonshape schema export user.schema.yaml > user.schema.json`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := session.Of(cmd)
			if err != nil {
				return err
			}
			s, _, err := schemaArg(sess, args)
			if err != nil {
				return err
			}
			w := document.JSONWriter
			if root.output == "yaml" {
				w = document.YAMLWriter
			}
			return w.Write(cmd.OutOrStdout(), jschema.ToJSONSchema(s))
		},
	}
}

func newSchemaDescribeCmd() *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:     "describe [schema]",
		Short:   "Describe a field schema as a Markdown table",
		Example: `  jsonshape schema describe user.schema.yaml --title "Users"`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := session.Of(cmd)
			if err != nil {
				return err
			}
			s, path, err := schemaArg(sess, args)
			if err != nil {
				return err
			}
			if title == "" {
				base := filepath.Base(path)
				title = strings.TrimSuffix(base, filepath.Ext(base))
			}
			out, err := schemadoc.Render(title, s)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Document title (default from the file name)")

	return cmd
}

func newSchemaNewCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "new <file>",
		Short: "Define a new field schema interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if root.noInput {
				return errors.New("schema new is interactive and cannot run with --no-input")
			}
			sess, err := session.Of(cmd)
			if err != nil {
				return err
			}
			path := sess.Path(args[0])
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("schema file already exists: %s", args[0])
			}

			s := validate.Schema{}
			if err := prompts.RunSchemaForm(s); err != nil {
				return err
			}
			if err := writeSchemaFile(path, s); err != nil {
				return err
			}
			prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
				{Label: "Path", Value: args[0]},
				{Label: "Fields", Value: strings.Join(s.Fields(), ", ")},
			}, "Schema created")
			return nil
		},
	}
}

// writeSchemaFile stores s at path in the native rule mapping, as JSON when
// path ends in .json and YAML otherwise.
func writeSchemaFile(path string, s validate.Schema) error {
	if err := s.Check(); err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create schema directory: %w", err)
	}
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	w := document.YAMLWriter
	if strings.HasSuffix(path, ".json") {
		w = document.JSONWriter
	}
	return w.Write(f, s)
}
