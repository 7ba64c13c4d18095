// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package document

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Writer encodes a value to an io.Writer.
type Writer struct {
	write func(w io.Writer, v any) error
	name  string
}

var (
	// JSONWriter writes indented JSON.
	JSONWriter = Writer{writeJSON, "json"}
	// YAMLWriter writes YAML with two-space indentation.
	YAMLWriter = Writer{writeYAML, "yaml"}
)

// WriterFor returns the Writer registered under format.
func WriterFor(format string) (Writer, error) {
	switch format {
	case "json":
		return JSONWriter, nil
	case "yaml", "yml":
		return YAMLWriter, nil
	default:
		return Writer{}, fmt.Errorf("unsupported output format %q (json, yaml)", format)
	}
}

// Name returns the format name.
func (wr Writer) Name() string {
	return wr.name
}

// Write encodes v to w.
func (wr Writer) Write(w io.Writer, v any) error {
	return wr.write(w, v)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
