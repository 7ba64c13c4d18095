// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	PrintResult(&buf, []ResultField{
		{Label: "Leaves", Value: "2"},
		{Label: "Branches", Value: "3"},
	}, "Graph built")

	out := buf.String()
	assert.Contains(t, out, "✓")
	assert.Contains(t, out, "Leaves:")
	assert.Contains(t, out, "2")
	assert.Contains(t, out, "Branches:")
	assert.Contains(t, out, "Graph built")
}

func TestPrintIssues(t *testing.T) {
	var buf bytes.Buffer
	PrintIssues(&buf, "Dangling references", Warning, []Issue{
		{Subject: "1", Message: "references missing id 42"},
		{Message: "no subject"},
	})

	out := buf.String()
	assert.Contains(t, out, "Dangling references")
	assert.Contains(t, out, "!")
	assert.Contains(t, out, "1:")
	assert.Contains(t, out, "references missing id 42")
	assert.Contains(t, out, "no subject")

	buf.Reset()
	PrintIssues(&buf, "Errors", Error, nil)
	assert.Empty(t, buf.String())

	PrintIssues(&buf, "Errors", Error, []Issue{{Subject: "age", Message: "age must be >= 0"}})
	assert.Contains(t, buf.String(), "✗")
}

func TestIdentifierValidator(t *testing.T) {
	validate := identifierValidator(map[string]int{"taken": 1})

	tests := []struct {
		in      string
		wantErr string
	}{
		{"name", ""},
		{"_private", ""},
		{"field_2", ""},
		{"", "name is required"},
		{"2fast", "must start with letter or underscore"},
		{"has-dash", "must contain only letters, numbers, underscores"},
		{"taken", `"taken" already exists`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := validate(tt.in)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestValueValidators(t *testing.T) {
	assert.NoError(t, requiredValidator("identity field")("id"))
	assert.EqualError(t, requiredValidator("identity field")(""), "identity field is required")

	assert.NoError(t, optionalNumberValidator(""))
	assert.NoError(t, optionalNumberValidator("-1.5"))
	assert.Error(t, optionalNumberValidator("abc"))

	assert.NoError(t, optionalCountValidator(""))
	assert.NoError(t, optionalCountValidator("3"))
	assert.Error(t, optionalCountValidator("-1"))
	assert.Error(t, optionalCountValidator("1.5"))
}

func TestTheme(t *testing.T) {
	assert.NotNil(t, Theme())
}
