// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/dacolabs/jsonshape/internal/document"
	"github.com/dacolabs/jsonshape/internal/graph"
	"github.com/dacolabs/jsonshape/internal/session"
	"github.com/spf13/cobra"
)

// readDocument decodes the file named by arg, or stdin as JSON when arg is "-".
func readDocument(cmd *cobra.Command, sess *session.Context, arg string) (any, error) {
	if arg == "-" {
		return document.JSON.Parse(cmd.InOrStdin())
	}
	full := sess.Path(arg)
	return document.ReadFile(os.DirFS(filepath.Dir(full)), filepath.Base(full))
}

// readRecords decodes the file named by arg and extracts its record array.
func readRecords(cmd *cobra.Command, sess *session.Context, arg string) ([]any, error) {
	doc, err := readDocument(cmd, sess, arg)
	if err != nil {
		return nil, err
	}
	return document.Records(doc)
}

// emit writes v in the selected machine format. It reports false for text
// output so the caller can render its own summary.
func (o *rootOptions) emit(cmd *cobra.Command, v any) (bool, error) {
	if o.output == "text" {
		return false, nil
	}
	w, err := document.WriterFor(o.output)
	if err != nil {
		return true, err
	}
	return true, w.Write(cmd.OutOrStdout(), v)
}

// recordLabel names a record in messages: its id when it has one, otherwise
// its position.
func recordLabel(record any, idField string, index int) string {
	if obj, ok := record.(map[string]any); ok && idField != "" {
		if id, ok := obj[idField]; ok {
			return "id " + graph.FormatID(id)
		}
	}
	return "record " + strconv.Itoa(index)
}
