// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/dacolabs/jsonshape/internal/validate"
)

// RunSchemaForm prompts for field rules until the user stops, adding each
// one to schema.
func RunSchemaForm(schema validate.Schema) error {
	for {
		var (
			name       string
			fieldType  = string(validate.String)
			required   bool
			addAnother bool
		)

		if err := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Field name").
					Placeholder("e.g., email").
					Value(&name).
					Validate(identifierValidator(schema)),
				huh.NewSelect[string]().
					Title("Field type").
					Options(
						huh.NewOption("string", string(validate.String)),
						huh.NewOption("number", string(validate.Number)),
						huh.NewOption("boolean", string(validate.Boolean)),
					).
					Value(&fieldType),
				huh.NewConfirm().
					Title("Is this field required?").
					Affirmative("Yes").
					Negative("No").
					Value(&required),
			),
		).WithTheme(Theme()).Run(); err != nil {
			return err
		}

		rule := validate.FieldRule{Type: validate.Type(fieldType), Required: required}
		switch rule.Type {
		case validate.String:
			if err := promptStringRule(&rule); err != nil {
				return err
			}
		case validate.Number:
			if err := promptNumberRule(&rule); err != nil {
				return err
			}
		}
		schema[name] = rule

		if err := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Add another field?").
					Affirmative("Yes").
					Negative("No").
					Value(&addAnother),
			),
		).WithTheme(Theme()).Run(); err != nil {
			return err
		}

		if !addAnother {
			return nil
		}
	}
}

func promptStringRule(rule *validate.FieldRule) error {
	var minStr, maxStr string

	if err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Minimum length (optional)").
				Placeholder("e.g., 1").
				Value(&minStr).
				Validate(optionalCountValidator),
			huh.NewInput().
				Title("Maximum length (optional)").
				Placeholder("e.g., 64").
				Value(&maxStr).
				Validate(optionalCountValidator),
			huh.NewInput().
				Title("Pattern (optional)").
				Placeholder(`e.g., ^[^@]+@[^@]+$`).
				Value(&rule.Pattern),
		),
	).WithTheme(Theme()).Run(); err != nil {
		return err
	}

	if minStr != "" {
		if val, err := strconv.Atoi(minStr); err == nil {
			rule.MinLength = &val
		}
	}
	if maxStr != "" {
		if val, err := strconv.Atoi(maxStr); err == nil {
			rule.MaxLength = &val
		}
	}
	return nil
}

func promptNumberRule(rule *validate.FieldRule) error {
	var minStr, maxStr string

	if err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Minimum value (optional)").
				Placeholder("e.g., 0").
				Value(&minStr).
				Validate(optionalNumberValidator),
			huh.NewInput().
				Title("Maximum value (optional)").
				Placeholder("e.g., 100").
				Value(&maxStr).
				Validate(optionalNumberValidator),
		),
	).WithTheme(Theme()).Run(); err != nil {
		return err
	}

	if minStr != "" {
		if val, err := strconv.ParseFloat(minStr, 64); err == nil {
			rule.Min = &val
		}
	}
	if maxStr != "" {
		if val, err := strconv.ParseFloat(maxStr, 64); err == nil {
			rule.Max = &val
		}
	}
	return nil
}
