// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"

	"github.com/dacolabs/jsonshape/internal/document"
	"github.com/dacolabs/jsonshape/internal/validate"
	"github.com/google/jsonschema-go/jsonschema"
)

// Loader loads field schemas from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadFile loads a schema file as JSON or YAML by extension. A document with
// a top-level "properties" key is read as a JSON Schema object; anything else
// is read as a mapping of field name to rule. The loaded schema must pass
// validate.Schema.Check.
func (l *Loader) LoadFile(filePath string) (validate.Schema, error) {
	doc, err := document.ReadFile(l.fsys, filePath)
	if err != nil {
		return nil, err
	}
	s, err := Decode(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return s, nil
}

// Decode converts a decoded document into a checked schema.
func Decode(doc any) (validate.Schema, error) {
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("schema document must be an object")
	}

	raw, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}

	var s validate.Schema
	if _, isJSONSchema := obj["properties"]; isJSONSchema {
		var js jsonschema.Schema
		if err := json.Unmarshal(raw, &js); err != nil {
			return nil, err
		}
		if s, err = FromJSONSchema(&js); err != nil {
			return nil, err
		}
	} else {
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, err
		}
	}

	if err := s.Check(); err != nil {
		return nil, err
	}
	return s, nil
}
