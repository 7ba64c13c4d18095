// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package validate checks records against a declarative field schema.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Type is the declared runtime type of a field.
type Type string

// Supported field types.
const (
	String  Type = "string"
	Number  Type = "number"
	Boolean Type = "boolean"
)

// Valid reports whether t is one of the supported types.
func (t Type) Valid() bool {
	switch t {
	case String, Number, Boolean:
		return true
	}
	return false
}

// FieldRule is the constraint set for a single field. Bounds left nil are not
// checked. Min and Max apply to numbers only; MinLength, MaxLength and
// Pattern apply to strings only.
type FieldRule struct {
	Type      Type     `yaml:"type" json:"type"`
	Required  bool     `yaml:"required,omitempty" json:"required,omitempty"`
	Min       *float64 `yaml:"min,omitempty" json:"min,omitempty"`
	Max       *float64 `yaml:"max,omitempty" json:"max,omitempty"`
	MinLength *int     `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	MaxLength *int     `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	Pattern   string   `yaml:"pattern,omitempty" json:"pattern,omitempty"`
}

// Schema maps field names to their rules. Record fields not named in the
// schema are ignored.
type Schema map[string]FieldRule

// Fields returns the schema's field names in ascending order, the order in
// which Validate evaluates them.
func (s Schema) Fields() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Check reports rules that can never be satisfied or that carry bounds for
// the wrong type. It returns nil for a well-formed schema.
func (s Schema) Check() error {
	var errs []error
	for _, name := range s.Fields() {
		for _, problem := range s[name].problems() {
			errs = append(errs, fmt.Errorf("field %q: %s", name, problem))
		}
	}
	return errors.Join(errs...)
}

func (r FieldRule) problems() []string {
	var out []string
	if !r.Type.Valid() {
		out = append(out, fmt.Sprintf("unknown type %q", r.Type))
	}
	if r.Type != Number && (r.Min != nil || r.Max != nil) {
		out = append(out, "min/max apply only to number fields")
	}
	if r.Type != String && (r.MinLength != nil || r.MaxLength != nil || r.Pattern != "") {
		out = append(out, "minLength/maxLength/pattern apply only to string fields")
	}
	if r.Min != nil && r.Max != nil && *r.Min > *r.Max {
		out = append(out, "min is greater than max")
	}
	if r.MinLength != nil && *r.MinLength < 0 {
		out = append(out, "minLength is negative")
	}
	if r.MaxLength != nil && *r.MaxLength < 0 {
		out = append(out, "maxLength is negative")
	}
	if r.MinLength != nil && r.MaxLength != nil && *r.MinLength > *r.MaxLength {
		out = append(out, "minLength is greater than maxLength")
	}
	if r.Pattern != "" {
		if _, err := regexp.Compile(r.Pattern); err != nil {
			out = append(out, "invalid pattern: "+strings.TrimPrefix(err.Error(), "error parsing regexp: "))
		}
	}
	return out
}

// Float returns a pointer to v, for building rules in code.
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v, for building rules in code.
func Int(v int) *int { return &v }
