// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"strconv"

	"github.com/dacolabs/jsonshape/internal/graph"
	"github.com/dacolabs/jsonshape/internal/normalize"
	"github.com/dacolabs/jsonshape/internal/prompts"
	"github.com/dacolabs/jsonshape/internal/session"
	"github.com/spf13/cobra"
)

type pipelineOptions struct {
	normalize   normalizeOptions
	idField     string
	branchField string
	schema      string
	all         bool
}

func newPipelineCmd(root *rootOptions) *cobra.Command {
	opts := &pipelineOptions{}

	cmd := &cobra.Command{
		Use:   "pipeline <file>",
		Short: "Normalize, link and validate a record collection",
		Long: `Run the full preparation pipeline over a record collection:
each record is normalized, the collection is split into leaves and branches,
and every leaf is validated against the schema. With --all, branches are
validated too. Exits with an error when any validated record is invalid.`,
		Example: `  jsonshape pipeline users.json --convert --schema user.schema.yaml
  jsonshape pipeline users.json --all -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.normalize.convert, "convert", false, "Convert string-encoded booleans and numbers")
	cmd.Flags().StringSliceVar(&opts.normalize.required, "require", nil, "Top-level fields every record must have")
	addGraphFlags(cmd, &opts.idField, &opts.branchField)
	cmd.Flags().StringVarP(&opts.schema, "schema", "s", "", "Schema file (default from jsonshape.yaml)")
	cmd.Flags().BoolVar(&opts.all, "all", false, "Validate branches as well as leaves")

	return cmd
}

type pipelineSummary struct {
	Graph   graphSummary   `json:"graph" yaml:"graph"`
	Results []recordResult `json:"results" yaml:"results"`
}

func runPipeline(cmd *cobra.Command, root *rootOptions, opts *pipelineOptions, arg string) error {
	sess, err := session.Of(cmd)
	if err != nil {
		return err
	}
	normCfg := normalizeConfig(cmd, sess, &opts.normalize)
	graphCfg, err := graphConfig(root, sess, opts.idField, opts.branchField)
	if err != nil {
		return err
	}
	schema, err := loadSchema(sess, opts.schema)
	if err != nil {
		return err
	}

	records, err := readRecords(cmd, sess, arg)
	if err != nil {
		return err
	}
	normalized := make([]any, len(records))
	for i, rec := range records {
		n, err := normalize.Normalize(rec, normCfg)
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		normalized[i] = n
	}

	g, err := graph.FromJSON(normalized, graphCfg)
	if err != nil {
		return err
	}
	logDangling(root, g)
	root.logger.Debug("graph built", "leaves", g.Size(), "branches", g.BranchCount())

	var targets []any
	for l := range g.Leaves() {
		targets = append(targets, l.Value)
	}
	if opts.all {
		for b := range g.Branches() {
			targets = append(targets, b.Value)
		}
	}
	results := validateAll(root, targets, graphCfg.IDField, schema)

	summary := pipelineSummary{Graph: summarizeGraph(g), Results: results}
	done, err := root.emit(cmd, summary)
	if err != nil {
		return err
	}

	invalid := 0
	var issues []prompts.Issue
	for _, r := range results {
		if !r.Valid {
			invalid++
		}
		for _, e := range r.Errors {
			issues = append(issues, prompts.Issue{Subject: r.Record, Message: e.Message})
		}
	}

	if !done {
		w := cmd.OutOrStdout()
		prompts.PrintResult(w, []prompts.ResultField{
			{Label: "Records", Value: strconv.Itoa(g.Len())},
			{Label: "Leaves", Value: strconv.Itoa(g.Size())},
			{Label: "Branches", Value: strconv.Itoa(g.BranchCount())},
			{Label: "Validated", Value: strconv.Itoa(len(results))},
			{Label: "Invalid", Value: strconv.Itoa(invalid)},
		}, "Pipeline completed")
		prompts.PrintIssues(w, "Dangling references", prompts.Warning, danglingIssues(g))
		prompts.PrintIssues(w, "Validation errors", prompts.Error, issues)
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d records failed validation", invalid, len(results))
	}
	return nil
}
