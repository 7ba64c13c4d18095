// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package normalize coerces loosely-typed JSON values to their likely native
// types and checks that required top-level fields are present.
package normalize

import (
	"math"
	"strconv"
	"strings"
)

// Config controls a single Normalize call.
type Config struct {
	// TypeConversions enables string scalar coercion ("true" -> true, "42" -> 42).
	TypeConversions bool `yaml:"typeConversions,omitempty" json:"typeConversions,omitempty"`

	// RequiredFields lists top-level keys that must be present.
	RequiredFields []string `yaml:"requiredFields,omitempty" json:"requiredFields,omitempty"`
}

// Normalize returns a normalized copy of value. The input is never modified.
//
// Values are expected in the shape produced by encoding/json when decoding
// into any: map[string]any, []any, string, float64, bool and nil. Other
// scalars pass through untouched.
//
// Required fields are checked against the top-level object only; a value that
// is not an object is missing every required field. Failure is reported as a
// *MissingFieldError listing all missing names in configuration order.
func Normalize(value any, cfg Config) (any, error) {
	if missing := missingFields(value, cfg.RequiredFields); len(missing) > 0 {
		return nil, &MissingFieldError{Fields: missing}
	}
	if !cfg.TypeConversions {
		return copyValue(value), nil
	}
	return convert(value), nil
}

func missingFields(value any, required []string) []string {
	if len(required) == 0 {
		return nil
	}
	obj, _ := value.(map[string]any)
	var missing []string
	for _, name := range required {
		if _, ok := obj[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// convert walks value depth-first and rebuilds every container with string
// scalars coerced.
func convert(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, elem := range v {
			out[k] = convert(elem)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = convert(elem)
		}
		return out
	case string:
		return Coerce(v)
	default:
		return v
	}
}

func copyValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, elem := range v {
			out[k] = copyValue(elem)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = copyValue(elem)
		}
		return out
	default:
		return v
	}
}

// Coerce converts a single string scalar. Boolean literals are tested first
// (case-sensitive), then finite numeric literals. Anything else is returned
// unchanged as a string.
func Coerce(s string) any {
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	if f, ok := parseNumber(s); ok {
		return f
	}
	return s
}

// parseNumber accepts decimal literals only. ParseFloat also takes Go syntax
// such as "1_000" and "0x1p4", which is not a number in a JSON document.
func parseNumber(s string) (float64, bool) {
	if s == "" || strings.ContainsRune(s, '_') {
		return 0, false
	}
	digits := strings.TrimLeft(s, "+-")
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
