// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package schemadoc renders field schemas as Markdown documentation.
package schemadoc

import (
	"bytes"
	"embed"
	"fmt"
	"strconv"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/dacolabs/jsonshape/internal/validate"
)

//go:embed schemadoc.go.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("schemadoc.go.tmpl").ParseFS(tmplFS, "schemadoc.go.tmpl"))

type docData struct {
	Title  string
	Fields []docField
}

type docField struct {
	Name        string
	Type        string
	Required    bool
	Constraints string
}

// Render returns a Markdown table describing every field of s in evaluation
// order.
func Render(title string, s validate.Schema) ([]byte, error) {
	data := docData{Title: heading(title)}
	for _, name := range s.Fields() {
		rule := s[name]
		data.Fields = append(data.Fields, docField{
			Name:        name,
			Type:        string(rule.Type),
			Required:    rule.Required,
			Constraints: formatConstraints(rule),
		})
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "schemadoc.go.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// formatConstraints lists the bounds that apply to the rule's type.
func formatConstraints(r validate.FieldRule) string {
	var parts []string

	switch r.Type {
	case validate.Number:
		if r.Min != nil {
			parts = append(parts, "min: "+strconv.FormatFloat(*r.Min, 'f', -1, 64))
		}
		if r.Max != nil {
			parts = append(parts, "max: "+strconv.FormatFloat(*r.Max, 'f', -1, 64))
		}
	case validate.String:
		if r.MinLength != nil {
			parts = append(parts, fmt.Sprintf("minLength: %d", *r.MinLength))
		}
		if r.MaxLength != nil {
			parts = append(parts, fmt.Sprintf("maxLength: %d", *r.MaxLength))
		}
		if r.Pattern != "" {
			parts = append(parts, fmt.Sprintf("pattern: `%s`", r.Pattern))
		}
	}

	return strings.Join(parts, ", ")
}

// heading turns "user_records" into "User Records".
func heading(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == ' ' || r == '.'
	})
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
