// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package jschema converts field schemas to and from JSON Schema documents
// and loads them from a filesystem.
package jschema

import (
	"errors"
	"fmt"

	"github.com/dacolabs/jsonshape/internal/validate"
	"github.com/google/jsonschema-go/jsonschema"
)

// Draft is the $schema URI written by ToJSONSchema.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// ErrUnsupported indicates a JSON Schema construct with no field-rule
// equivalent.
var ErrUnsupported = errors.New("unsupported JSON Schema")

// ToJSONSchema returns an object schema describing the same contract as s.
func ToJSONSchema(s validate.Schema) *jsonschema.Schema {
	out := &jsonschema.Schema{
		Schema:     Draft,
		Type:       "object",
		Properties: make(map[string]*jsonschema.Schema, len(s)),
	}
	for _, name := range s.Fields() {
		rule := s[name]
		prop := &jsonschema.Schema{Type: string(rule.Type)}
		switch rule.Type {
		case validate.Number:
			prop.Minimum = rule.Min
			prop.Maximum = rule.Max
		case validate.String:
			prop.MinLength = rule.MinLength
			prop.MaxLength = rule.MaxLength
			prop.Pattern = rule.Pattern
		}
		out.Properties[name] = prop
		if rule.Required {
			out.Required = append(out.Required, name)
		}
	}
	return out
}

// FromJSONSchema converts an object schema with scalar properties into field
// rules. "integer" properties become number rules.
func FromJSONSchema(js *jsonschema.Schema) (validate.Schema, error) {
	if js == nil {
		return nil, fmt.Errorf("%w: nil schema", ErrUnsupported)
	}
	if js.Type != "" && js.Type != "object" {
		return nil, fmt.Errorf("%w: root type must be object, got %q", ErrUnsupported, js.Type)
	}

	out := make(validate.Schema, len(js.Properties))
	for name, prop := range js.Properties {
		rule, err := ruleFrom(prop)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", name, err)
		}
		out[name] = rule
	}
	for _, name := range js.Required {
		rule, ok := out[name]
		if !ok {
			return nil, fmt.Errorf("%w: required property %q is not declared", ErrUnsupported, name)
		}
		rule.Required = true
		out[name] = rule
	}
	return out, nil
}

func ruleFrom(prop *jsonschema.Schema) (validate.FieldRule, error) {
	if prop == nil {
		return validate.FieldRule{}, fmt.Errorf("%w: empty property schema", ErrUnsupported)
	}
	if len(prop.Types) > 0 {
		return validate.FieldRule{}, fmt.Errorf("%w: multiple types %v", ErrUnsupported, prop.Types)
	}

	var rule validate.FieldRule
	switch prop.Type {
	case "string":
		rule.Type = validate.String
		rule.MinLength = prop.MinLength
		rule.MaxLength = prop.MaxLength
		rule.Pattern = prop.Pattern
	case "number", "integer":
		rule.Type = validate.Number
		rule.Min = prop.Minimum
		rule.Max = prop.Maximum
	case "boolean":
		rule.Type = validate.Boolean
	default:
		return validate.FieldRule{}, fmt.Errorf("%w: type %q", ErrUnsupported, prop.Type)
	}
	return rule, nil
}
