// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"

	"github.com/dacolabs/jsonshape/internal/config"
	"github.com/dacolabs/jsonshape/internal/document"
	"github.com/dacolabs/jsonshape/internal/normalize"
	"github.com/dacolabs/jsonshape/internal/session"
	"github.com/spf13/cobra"
)

type normalizeOptions struct {
	convert  bool
	required []string
	each     bool
}

func newNormalizeCmd(root *rootOptions) *cobra.Command {
	opts := &normalizeOptions{}

	cmd := &cobra.Command{
		Use:   "normalize <file>",
		Short: "Coerce string-encoded scalars in a document",
		Long: `Check a document for required top-level fields and, with --convert,
turn string-encoded booleans and numbers into real ones at every depth.
The result is written as JSON, or YAML with --output yaml. Use "-" to read stdin.`,
		Example: `  jsonshape normalize record.json --convert
  jsonshape normalize users.json --each --require id,name
  cat record.json | jsonshape normalize - --convert -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNormalize(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.convert, "convert", false, "Convert string-encoded booleans and numbers")
	cmd.Flags().StringSliceVar(&opts.required, "require", nil, "Top-level fields that must be present")
	cmd.Flags().BoolVar(&opts.each, "each", false, "Treat the document as a record collection and normalize each record")

	return cmd
}

// normalizeConfig merges the normalize flags over the project configuration.
func normalizeConfig(cmd *cobra.Command, sess *session.Context, opts *normalizeOptions) normalize.Config {
	o := config.Overrides{RequiredFields: opts.required}
	if cmd.Flags().Changed("convert") {
		o.TypeConversions = &opts.convert
	}
	return sess.Config.Merge(o).Normalize
}

func runNormalize(cmd *cobra.Command, root *rootOptions, opts *normalizeOptions, arg string) error {
	sess, err := session.Of(cmd)
	if err != nil {
		return err
	}
	cfg := normalizeConfig(cmd, sess, opts)

	doc, err := readDocument(cmd, sess, arg)
	if err != nil {
		return err
	}

	var out any
	if opts.each {
		records, err := document.Records(doc)
		if err != nil {
			return err
		}
		normalized := make([]any, len(records))
		for i, rec := range records {
			n, err := normalize.Normalize(rec, cfg)
			if err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
			normalized[i] = n
		}
		out = normalized
	} else {
		out, err = normalize.Normalize(doc, cfg)
		if err != nil {
			return err
		}
	}
	root.logger.Debug("normalized", "source", arg, "convert", cfg.TypeConversions, "required", cfg.RequiredFields)

	w := document.JSONWriter
	if root.output == "yaml" {
		w = document.YAMLWriter
	}
	return w.Write(cmd.OutOrStdout(), out)
}
