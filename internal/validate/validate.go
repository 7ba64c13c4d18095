// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"sync"
	"unicode/utf8"
)

// FieldError is a single constraint violation.
type FieldError struct {
	Field   string `json:"field" yaml:"field"`
	Message string `json:"message" yaml:"message"`
}

func (e FieldError) Error() string {
	return e.Message
}

// Result is the outcome of one Validate call. Valid is true exactly when
// Errors is empty.
type Result struct {
	Valid  bool         `json:"isValid" yaml:"isValid"`
	Errors []FieldError `json:"errors" yaml:"errors"`
}

// Err joins the violations into a single error, or returns nil when valid.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	errs := make([]error, len(r.Errors))
	for i, e := range r.Errors {
		errs[i] = e
	}
	return errors.Join(errs...)
}

// Validate checks value against schema and collects every violation. It does
// not fail: a value that is not an object simply has no fields, and an
// uncompilable pattern is reported as a mismatch. Neither input is modified.
func Validate(value any, schema Schema) Result {
	obj, _ := value.(map[string]any)
	res := Result{Errors: []FieldError{}}

	for _, name := range schema.Fields() {
		rule := schema[name]
		v, present := obj[name]
		if !present {
			if rule.Required {
				res.add(name, "%s is required", name)
			}
			continue
		}
		if !hasType(v, rule.Type) {
			res.add(name, "%s must be of type %s", name, rule.Type)
			continue
		}

		switch rule.Type {
		case String:
			checkString(&res, name, v.(string), rule)
		case Number:
			n, _ := toFloat(v)
			checkNumber(&res, name, n, rule)
		}
	}

	res.Valid = len(res.Errors) == 0
	return res
}

func (r *Result) add(field, format string, args ...any) {
	r.Errors = append(r.Errors, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

func checkString(res *Result, name, s string, rule FieldRule) {
	length := utf8.RuneCountInString(s)
	if rule.MinLength != nil && length < *rule.MinLength {
		res.add(name, "%s must be at least %d characters", name, *rule.MinLength)
	}
	if rule.MaxLength != nil && length > *rule.MaxLength {
		res.add(name, "%s must be at most %d characters", name, *rule.MaxLength)
	}
	if rule.Pattern != "" {
		re, err := compilePattern(rule.Pattern)
		if err != nil || !re.MatchString(s) {
			res.add(name, "%s does not match required pattern", name)
		}
	}
}

func checkNumber(res *Result, name string, n float64, rule FieldRule) {
	if rule.Min != nil && n < *rule.Min {
		res.add(name, "%s must be >= %s", name, formatNumber(*rule.Min))
	}
	if rule.Max != nil && n > *rule.Max {
		res.add(name, "%s must be <= %s", name, formatNumber(*rule.Max))
	}
}

func hasType(v any, t Type) bool {
	switch t {
	case String:
		_, ok := v.(string)
		return ok
	case Boolean:
		_, ok := v.(bool)
		return ok
	case Number:
		_, ok := toFloat(v)
		return ok
	}
	return false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32:
		return rv.Float(), true
	}
	return 0, false
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

type compiled struct {
	re  *regexp.Regexp
	err error
}

// patterns caches compiled pattern rules, including failed compilations.
var patterns sync.Map // string -> compiled

func compilePattern(p string) (*regexp.Regexp, error) {
	if c, ok := patterns.Load(p); ok {
		return c.(compiled).re, c.(compiled).err
	}
	re, err := regexp.Compile(p)
	c, _ := patterns.LoadOrStore(p, compiled{re: re, err: err})
	return c.(compiled).re, c.(compiled).err
}
