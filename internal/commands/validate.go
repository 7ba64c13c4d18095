// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"strconv"

	"github.com/dacolabs/jsonshape/internal/prompts"
	"github.com/dacolabs/jsonshape/internal/session"
	"github.com/dacolabs/jsonshape/internal/validate"
	"github.com/spf13/cobra"
)

type validateOptions struct {
	schema string
}

func newValidateCmd(root *rootOptions) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate records against a field schema",
		Long: `Validate a record, or every record of an array, against a field schema.
The schema is a YAML or JSON mapping of field rules, or a JSON Schema object
document. Exits with an error when any record is invalid.`,
		Example: `  jsonshape validate user.json --schema user.schema.yaml
  jsonshape validate users.json -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.schema, "schema", "s", "", "Schema file (default from jsonshape.yaml)")

	return cmd
}

// recordResult is the machine-readable outcome for one record.
type recordResult struct {
	Record string                `json:"record" yaml:"record"`
	Valid  bool                  `json:"isValid" yaml:"isValid"`
	Errors []validate.FieldError `json:"errors" yaml:"errors"`
}

// loadSchema resolves the --schema flag against the project configuration.
func loadSchema(sess *session.Context, flag string) (validate.Schema, error) {
	path := flag
	if path == "" {
		path = sess.Config.Schema
	}
	return sess.LoadSchema(path)
}

func validateAll(root *rootOptions, records []any, idField string, schema validate.Schema) []recordResult {
	results := make([]recordResult, 0, len(records))
	for i, rec := range records {
		res := validate.Validate(rec, schema)
		label := recordLabel(rec, idField, i)
		if !res.Valid {
			root.logger.Debug("record invalid", "record", label, "errors", len(res.Errors))
		}
		results = append(results, recordResult{Record: label, Valid: res.Valid, Errors: res.Errors})
	}
	return results
}

// reportValidation prints results and returns an error when any is invalid.
func reportValidation(cmd *cobra.Command, root *rootOptions, results []recordResult) error {
	invalid := 0
	for _, r := range results {
		if !r.Valid {
			invalid++
		}
	}

	done, err := root.emit(cmd, results)
	if err != nil {
		return err
	}
	if !done {
		w := cmd.OutOrStdout()
		var issues []prompts.Issue
		for _, r := range results {
			for _, e := range r.Errors {
				issues = append(issues, prompts.Issue{Subject: r.Record, Message: e.Message})
			}
		}
		if invalid == 0 {
			prompts.PrintResult(w, []prompts.ResultField{
				{Label: "Records", Value: strconv.Itoa(len(results))},
			}, "All records valid")
		}
		prompts.PrintIssues(w, "Validation errors", prompts.Error, issues)
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d records failed validation", invalid, len(results))
	}
	return nil
}

func runValidate(cmd *cobra.Command, root *rootOptions, opts *validateOptions, arg string) error {
	sess, err := session.Of(cmd)
	if err != nil {
		return err
	}
	schema, err := loadSchema(sess, opts.schema)
	if err != nil {
		return err
	}

	doc, err := readDocument(cmd, sess, arg)
	if err != nil {
		return err
	}
	records, ok := doc.([]any)
	if !ok {
		records = []any{doc}
	}

	results := validateAll(root, records, sess.Config.Graph.IDField, schema)
	return reportValidation(cmd, root, results)
}
