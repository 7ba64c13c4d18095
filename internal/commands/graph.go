// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dacolabs/jsonshape/internal/config"
	"github.com/dacolabs/jsonshape/internal/graph"
	"github.com/dacolabs/jsonshape/internal/normalize"
	"github.com/dacolabs/jsonshape/internal/prompts"
	"github.com/dacolabs/jsonshape/internal/session"
	"github.com/spf13/cobra"
)

type graphOptions struct {
	idField     string
	branchField string
	from        string
}

func newGraphCmd(root *rootOptions) *cobra.Command {
	opts := &graphOptions{}

	cmd := &cobra.Command{
		Use:   "graph <file>",
		Short: "Build a leaf/branch graph from a record collection",
		Long: `Split a record collection into leaves and branches. A record is a branch
when its reference field holds a non-empty array of ids. References to ids
that are not in the collection are reported as dangling.`,
		Example: `  jsonshape graph users.json --id-field id --branch-field friends
  jsonshape graph users.json --from 1 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(cmd, root, opts, args[0])
		},
	}

	addGraphFlags(cmd, &opts.idField, &opts.branchField)
	cmd.Flags().StringVar(&opts.from, "from", "", "List the records reachable from this id")

	return cmd
}

func addGraphFlags(cmd *cobra.Command, idField, branchField *string) {
	cmd.Flags().StringVar(idField, "id-field", "", "Field holding each record's identity (default from jsonshape.yaml)")
	cmd.Flags().StringVar(branchField, "branch-field", "", "Field holding the array of referenced ids (default from jsonshape.yaml)")
}

// graphConfig merges the graph flags over the project configuration and
// prompts for whatever is still missing.
func graphConfig(root *rootOptions, sess *session.Context, idField, branchField string) (graph.Config, error) {
	cfg := sess.Config.Merge(config.Overrides{IDField: idField, BranchField: branchField}).Graph
	if (cfg.IDField == "" || cfg.BranchField == "") && !root.noInput {
		if err := prompts.RunGraphFieldsForm(&cfg.IDField, &cfg.BranchField); err != nil {
			return graph.Config{}, err
		}
	}
	if cfg.IDField == "" {
		return graph.Config{}, errors.New("no identity field configured (use --id-field or set graph.idField in jsonshape.yaml)")
	}
	if cfg.BranchField == "" {
		return graph.Config{}, errors.New("no reference field configured (use --branch-field or set graph.branchField in jsonshape.yaml)")
	}
	return cfg, nil
}

type nodeSummary struct {
	ID       any    `json:"id" yaml:"id"`
	Kind     string `json:"kind" yaml:"kind"`
	Children []any  `json:"children,omitempty" yaml:"children,omitempty"`
	Dangling []any  `json:"dangling,omitempty" yaml:"dangling,omitempty"`
}

type danglingSummary struct {
	From any `json:"from" yaml:"from"`
	Ref  any `json:"ref" yaml:"ref"`
}

type graphSummary struct {
	Leaves    int               `json:"leaves" yaml:"leaves"`
	Branches  int               `json:"branches" yaml:"branches"`
	Cyclic    bool              `json:"cyclic" yaml:"cyclic"`
	Nodes     []nodeSummary     `json:"nodes" yaml:"nodes"`
	Dangling  []danglingSummary `json:"dangling" yaml:"dangling"`
	Reachable []any             `json:"reachable,omitempty" yaml:"reachable,omitempty"`
}

func summarizeGraph(g *graph.Graph) graphSummary {
	s := graphSummary{
		Leaves:   g.Size(),
		Branches: g.BranchCount(),
		Cyclic:   g.Cycles(),
		Nodes:    make([]nodeSummary, 0, g.Len()),
		Dangling: []danglingSummary{},
	}
	for n := range g.Nodes() {
		ns := nodeSummary{ID: n.NodeID(), Kind: "leaf"}
		if b, ok := n.(*graph.Branch); ok {
			ns.Kind = "branch"
			ns.Children = b.Children
			ns.Dangling = b.Dangling
		}
		s.Nodes = append(s.Nodes, ns)
	}
	for _, d := range g.Dangling() {
		s.Dangling = append(s.Dangling, danglingSummary(d))
	}
	return s
}

// parseID resolves a command-line id against the graph. The raw string is
// tried first, then its number and boolean readings.
func parseID(g *graph.Graph, raw string) (any, error) {
	if _, ok := g.Lookup(raw); ok {
		return raw, nil
	}
	if v := normalize.Coerce(raw); v != raw {
		if _, ok := g.Lookup(v); ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("no record with id %s", strconv.Quote(raw))
}

func runGraph(cmd *cobra.Command, root *rootOptions, opts *graphOptions, arg string) error {
	sess, err := session.Of(cmd)
	if err != nil {
		return err
	}
	cfg, err := graphConfig(root, sess, opts.idField, opts.branchField)
	if err != nil {
		return err
	}

	records, err := readRecords(cmd, sess, arg)
	if err != nil {
		return err
	}
	g, err := graph.FromJSON(records, cfg)
	if err != nil {
		return err
	}
	logDangling(root, g)

	summary := summarizeGraph(g)
	if opts.from != "" {
		start, err := parseID(g, opts.from)
		if err != nil {
			return err
		}
		summary.Reachable = []any{}
		for n := range g.Reachable(start) {
			summary.Reachable = append(summary.Reachable, n.NodeID())
		}
	}

	if done, err := root.emit(cmd, summary); done {
		return err
	}

	w := cmd.OutOrStdout()
	fields := []prompts.ResultField{
		{Label: "Records", Value: strconv.Itoa(g.Len())},
		{Label: "Leaves", Value: strconv.Itoa(summary.Leaves)},
		{Label: "Branches", Value: strconv.Itoa(summary.Branches)},
		{Label: "Cyclic", Value: strconv.FormatBool(summary.Cyclic)},
	}
	if summary.Reachable != nil {
		fields = append(fields, prompts.ResultField{Label: "Reachable", Value: formatIDs(summary.Reachable)})
	}
	prompts.PrintResult(w, fields, "Graph built")
	prompts.PrintIssues(w, "Dangling references", prompts.Warning, danglingIssues(g))
	return nil
}

func logDangling(root *rootOptions, g *graph.Graph) {
	for _, d := range g.Dangling() {
		root.logger.Debug("dangling reference", "from", graph.FormatID(d.From), "ref", graph.FormatID(d.Ref))
	}
}

func danglingIssues(g *graph.Graph) []prompts.Issue {
	var issues []prompts.Issue
	for _, d := range g.Dangling() {
		issues = append(issues, prompts.Issue{
			Subject: graph.FormatID(d.From),
			Message: "references missing id " + graph.FormatID(d.Ref),
		})
	}
	return issues
}

func formatIDs(ids []any) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = graph.FormatID(id)
	}
	return strings.Join(parts, ", ")
}
