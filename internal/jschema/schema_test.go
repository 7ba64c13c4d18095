// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"testing"
	"testing/fstest"

	"github.com/dacolabs/jsonshape/internal/validate"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userSchema = validate.Schema{
	"name":   {Type: validate.String, Required: true, MinLength: validate.Int(1), Pattern: `^\w+$`},
	"age":    {Type: validate.Number, Min: validate.Float(0), Max: validate.Float(150)},
	"active": {Type: validate.Boolean, Required: true},
}

func TestToJSONSchema(t *testing.T) {
	js := ToJSONSchema(userSchema)

	assert.Equal(t, Draft, js.Schema)
	assert.Equal(t, "object", js.Type)
	assert.Equal(t, []string{"active", "name"}, js.Required)
	require.Len(t, js.Properties, 3)

	name := js.Properties["name"]
	assert.Equal(t, "string", name.Type)
	assert.Equal(t, 1, *name.MinLength)
	assert.Equal(t, `^\w+$`, name.Pattern)

	age := js.Properties["age"]
	assert.Equal(t, "number", age.Type)
	assert.Equal(t, 0.0, *age.Minimum)
	assert.Equal(t, 150.0, *age.Maximum)
}

func TestFromJSONSchema_RoundTrip(t *testing.T) {
	got, err := FromJSONSchema(ToJSONSchema(userSchema))
	require.NoError(t, err)
	assert.Equal(t, userSchema, got)
}

func TestFromJSONSchema_Errors(t *testing.T) {
	tests := []struct {
		name string
		js   *jsonschema.Schema
		want string
	}{
		{"nil", nil, "nil schema"},
		{"array root", &jsonschema.Schema{Type: "array"}, "root type must be object"},
		{
			"object property",
			&jsonschema.Schema{Properties: map[string]*jsonschema.Schema{"addr": {Type: "object"}}},
			`property "addr"`,
		},
		{
			"union type",
			&jsonschema.Schema{Properties: map[string]*jsonschema.Schema{"x": {Types: []string{"string", "null"}}}},
			"multiple types",
		},
		{
			"undeclared required",
			&jsonschema.Schema{Type: "object", Required: []string{"ghost"}},
			`required property "ghost"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromJSONSchema(tt.js)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnsupported)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestFromJSONSchema_Integer(t *testing.T) {
	s, err := FromJSONSchema(&jsonschema.Schema{
		Properties: map[string]*jsonschema.Schema{"n": {Type: "integer", Minimum: validate.Float(1)}},
	})
	require.NoError(t, err)
	assert.Equal(t, validate.Number, s["n"].Type)
	assert.Equal(t, 1.0, *s["n"].Min)
}

func TestLoadFile(t *testing.T) {
	fsys := fstest.MapFS{
		"native.yaml": &fstest.MapFile{Data: []byte(`
name:
  type: string
  required: true
  minLength: 1
age:
  type: number
  min: 0
`)},
		"jsonschema.json": &fstest.MapFile{Data: []byte(`{
  "type": "object",
  "required": ["name"],
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "age": {"type": "integer", "minimum": 0}
  }
}`)},
		"typo.yaml":     &fstest.MapFile{Data: []byte("name:\n  type: string\n  minlen: 3\n")},
		"badrule.yaml":  &fstest.MapFile{Data: []byte("age:\n  type: number\n  minLength: 3\n")},
		"list.yaml":     &fstest.MapFile{Data: []byte("- name\n")},
		"invalid.json":  &fstest.MapFile{Data: []byte("{invalid json}")},
		"unknown.yaml":  &fstest.MapFile{Data: []byte("when:\n  type: date\n")},
		"nested.json":   &fstest.MapFile{Data: []byte(`{"properties": {"a": {"type": "array"}}}`)},
	}
	want := validate.Schema{
		"name": {Type: validate.String, Required: true, MinLength: validate.Int(1)},
		"age":  {Type: validate.Number, Min: validate.Float(0)},
	}

	loader := NewLoader(fsys)

	t.Run("native YAML", func(t *testing.T) {
		s, err := loader.LoadFile("native.yaml")
		require.NoError(t, err)
		assert.Equal(t, want, s)
	})

	t.Run("JSON Schema document", func(t *testing.T) {
		s, err := loader.LoadFile("jsonschema.json")
		require.NoError(t, err)
		assert.Equal(t, want, s)
	})

	for _, name := range []string{"typo.yaml", "badrule.yaml", "list.yaml", "invalid.json", "unknown.yaml", "nested.json", "missing.yaml"} {
		t.Run("rejects "+name, func(t *testing.T) {
			_, err := loader.LoadFile(name)
			assert.Error(t, err)
		})
	}
}
