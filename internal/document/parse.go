// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package document reads and writes the JSON-shaped documents the CLI works
// on. Decoded values always use the encoding/json shapes: map[string]any,
// []any, string, float64, bool and nil.
package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrNoRecords indicates a document with no record array in it.
var ErrNoRecords = errors.New("document does not contain a record array")

// Parser decodes a document from an io.Reader.
type Parser struct {
	parse func([]byte) (any, error)
}

var (
	// JSON parses JSON documents.
	JSON = Parser{parseJSON}
	// YAML parses YAML documents.
	YAML = Parser{parseYAML}
)

// ParserFor picks a Parser from the file extension. Anything that is not
// .yaml or .yml is treated as JSON.
func ParserFor(path string) Parser {
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return YAML
	}
	return JSON
}

// Parse decodes a single document from r.
func (p Parser) Parse(r io.Reader) (any, error) {
	if r == nil {
		return nil, errors.New("nil reader")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return p.parse(data)
}

// ReadFile opens path in fsys and decodes it with the parser matching its
// extension.
func ReadFile(fsys fs.FS, path string) (any, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	v, err := ParserFor(path).Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// Records returns the record collection held by a document: the document
// itself when it is an array, otherwise the "records" field of a top-level
// object, otherwise that object's only array-valued field.
func Records(doc any) ([]any, error) {
	switch v := doc.(type) {
	case []any:
		return v, nil
	case map[string]any:
		if recs, ok := v["records"].([]any); ok {
			return recs, nil
		}
		var found []any
		count := 0
		for _, field := range v {
			if recs, ok := field.([]any); ok {
				found = recs
				count++
			}
		}
		if count == 1 {
			return found, nil
		}
		if count > 1 {
			return nil, fmt.Errorf("%w: object has %d array fields and no %q field", ErrNoRecords, count, "records")
		}
	}
	return nil, ErrNoRecords
}

func parseJSON(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func parseYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return jsonShape(v)
}

// jsonShape converts yaml.v3 decoding output to the encoding/json shape.
func jsonShape(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, elem := range t {
			conv, err := jsonShape(elem)
			if err != nil {
				return nil, err
			}
			out[k] = conv
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, elem := range t {
			conv, err := jsonShape(elem)
			if err != nil {
				return nil, err
			}
			out[fmt.Sprint(k)] = conv
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, elem := range t {
			conv, err := jsonShape(elem)
			if err != nil {
				return nil, err
			}
			out[i] = conv
		}
		return out, nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case uint64:
		return float64(t), nil
	case float64, string, bool, nil:
		return t, nil
	case time.Time:
		return t.Format(time.RFC3339Nano), nil
	default:
		return nil, fmt.Errorf("unsupported YAML value of type %T", v)
	}
}
