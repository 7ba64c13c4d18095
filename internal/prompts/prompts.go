// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package prompts provides interactive terminal prompts and styled output for
// CLI commands.
package prompts

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#27ca3f"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f56"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f9ca24"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#bababa"))
)

// Theme returns the shared huh theme used across all CLI forms.
func Theme() *huh.Theme {
	theme := huh.ThemeBase16()
	theme.FieldSeparator = lipgloss.NewStyle().SetString("\n").MarginBottom(1)
	theme.Form.Base = theme.Form.Base.MarginTop(1)
	theme.Group.Base = theme.Group.Base.MarginTop(1)
	theme.Focused.Title = theme.Focused.Title.Foreground(lipgloss.Color("#f9ca24"))
	theme.Blurred.Title = theme.Blurred.Title.Foreground(lipgloss.Color("#bababa"))
	return theme
}

// ResultField is a label-value pair for PrintResult.
type ResultField struct {
	Label string
	Value string
}

// PrintResult prints a styled summary with green checkmarks and gray labels.
func PrintResult(w io.Writer, fields []ResultField, successMsg string) {
	check := successStyle.Render("✓")

	_, _ = fmt.Fprintln(w)
	for _, f := range fields {
		_, _ = fmt.Fprintf(w, "%s %s %s\n", check, labelStyle.Render(f.Label+":"), f.Value)
	}

	if successMsg != "" {
		_, _ = fmt.Fprintln(w, successStyle.Render("\n"+successMsg))
	}
}

// Severity selects the marker PrintIssues uses.
type Severity int

const (
	// Error marks violations that make a record invalid.
	Error Severity = iota
	// Warning marks non-fatal diagnostics.
	Warning
)

// Issue is one line of PrintIssues output.
type Issue struct {
	Subject string
	Message string
}

// PrintIssues prints a titled list of issues with a red cross or yellow bang.
func PrintIssues(w io.Writer, title string, sev Severity, issues []Issue) {
	if len(issues) == 0 {
		return
	}
	marker := failureStyle.Render("✗")
	if sev == Warning {
		marker = warningStyle.Render("!")
	}

	_, _ = fmt.Fprintf(w, "\n%s\n", labelStyle.Render(title))
	for _, is := range issues {
		if is.Subject == "" {
			_, _ = fmt.Fprintf(w, "%s %s\n", marker, is.Message)
			continue
		}
		_, _ = fmt.Fprintf(w, "%s %s %s\n", marker, labelStyle.Render(is.Subject+":"), is.Message)
	}
}

func identifierValidator[T any](existing map[string]T) func(string) error {
	return func(s string) error {
		if s == "" {
			return errors.New("name is required")
		}
		for i, r := range s {
			if i == 0 && !unicode.IsLetter(r) && r != '_' {
				return errors.New("must start with letter or underscore")
			}
			if i > 0 && !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
				return errors.New("must contain only letters, numbers, underscores")
			}
		}
		if _, exists := existing[s]; exists {
			return fmt.Errorf("%q already exists", s)
		}
		return nil
	}
}

func requiredValidator(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func optionalNumberValidator(s string) error {
	if s == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return errors.New("must be a valid number")
	}
	return nil
}

func optionalCountValidator(s string) error {
	if s == "" {
		return nil
	}
	if n, err := strconv.Atoi(s); err != nil || n < 0 {
		return errors.New("must be a non-negative whole number")
	}
	return nil
}
