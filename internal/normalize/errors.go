// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package normalize

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingField is matched by every *MissingFieldError.
var ErrMissingField = errors.New("missing required field")

// MissingFieldError reports required top-level fields that were absent.
type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %s", pluralize(len(e.Fields)), strings.Join(e.Fields, ", "))
}

// Is reports whether target is ErrMissingField.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

func pluralize(n int) string {
	if n == 1 {
		return ErrMissingField.Error()
	}
	return "missing required fields"
}
