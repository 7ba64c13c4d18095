// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"
)

// RunInitForm runs the interactive form for the init command.
// It fills the provided pointers with user input.
func RunInitForm(idField, branchField, schemaPath *string, typeConversions, defineSchema *bool) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Identity field").
				Placeholder("id").
				Validate(requiredValidator("identity field")).
				Value(idField),
			huh.NewInput().
				Title("Reference field").
				Placeholder("children").
				Validate(requiredValidator("reference field")).
				Value(branchField),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Convert string-encoded numbers and booleans?").
				Affirmative("Yes").
				Negative("No").
				Value(typeConversions),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Define a record schema now?").
				Affirmative("Yes").
				Negative("Later").
				Value(defineSchema),
			huh.NewInput().
				Title("Schema file").
				Placeholder("schema.yaml").
				Value(schemaPath),
		),
	).WithTheme(Theme()).Run()
}

// RunGraphFieldsForm asks for whichever graph field names are still empty.
func RunGraphFieldsForm(idField, branchField *string) error {
	var fields []huh.Field
	if *idField == "" {
		fields = append(fields, huh.NewInput().
			Title("Identity field").
			Placeholder("e.g., id").
			Validate(requiredValidator("identity field")).
			Value(idField))
	}
	if *branchField == "" {
		fields = append(fields, huh.NewInput().
			Title("Reference field").
			Placeholder("e.g., children").
			Validate(requiredValidator("reference field")).
			Value(branchField))
	}
	if len(fields) == 0 {
		return nil
	}
	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(Theme()).Run()
}
