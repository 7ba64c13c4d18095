// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package graph

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"reflect"
	"slices"
)

// Config names the record fields FromJSON reads.
type Config struct {
	// IDField holds each record's identity.
	IDField string `yaml:"idField" json:"idField"`
	// BranchField holds an array of referenced ids. When empty, no record
	// can reference another and FromJSON returns an all-leaf Graph.
	BranchField string `yaml:"branchField" json:"branchField"`
}

// FromJSON builds a Graph from records in input order.
//
// A record is a Branch when its branch field is a non-empty array and a Leaf
// otherwise. References that match no record are kept as diagnostics on the
// Graph and never fail the build. A repeated id fails with *DuplicateIDError;
// a record that is not an object or has no scalar id fails with
// *InvalidRecordError. On failure no Graph is returned.
func FromJSON(records []any, cfg Config) (*Graph, error) {
	if cfg.IDField == "" {
		return nil, fmt.Errorf("%w: id field is not configured", ErrInvalidRecord)
	}

	objs := make([]map[string]any, len(records))
	ids := make([]any, len(records))
	positions := make(map[any][]int, len(records))
	var dupes []any

	for i, r := range records {
		obj, ok := r.(map[string]any)
		if !ok {
			return nil, &InvalidRecordError{Position: i, Reason: fmt.Sprintf("expected object, got %s", kindOf(r))}
		}
		raw, ok := obj[cfg.IDField]
		if !ok {
			return nil, &InvalidRecordError{Position: i, Reason: fmt.Sprintf("field %q is missing", cfg.IDField)}
		}
		id, ok := canonicalID(raw)
		if !ok {
			return nil, &InvalidRecordError{Position: i, Reason: fmt.Sprintf("field %q must be a string, number or boolean, got %s", cfg.IDField, kindOf(raw))}
		}
		if len(positions[id]) == 1 {
			dupes = append(dupes, id)
		}
		positions[id] = append(positions[id], i)
		objs[i] = obj
		ids[i] = id
	}
	if len(dupes) > 0 {
		return nil, &DuplicateIDError{ID: dupes[0], Positions: positions[dupes[0]]}
	}

	g := &Graph{
		index: make(map[any]Node, len(records)),
		order: make([]Node, 0, len(records)),
	}

	for i, obj := range objs {
		value := maps.Clone(obj)
		refs, isBranch := referenceList(obj, cfg.BranchField)
		if !isBranch {
			l := &Leaf{ID: ids[i], Value: value}
			g.leaves = append(g.leaves, l)
			g.index[l.ID] = l
			g.order = append(g.order, l)
			continue
		}

		b := &Branch{ID: ids[i], Value: value, Refs: slices.Clone(refs)}
		for _, ref := range refs {
			key, ok := canonicalID(ref)
			if _, found := positions[key]; ok && found {
				b.Children = append(b.Children, key)
				continue
			}
			b.Dangling = append(b.Dangling, ref)
			g.dangling = append(g.dangling, DanglingRef{From: b.ID, Ref: ref})
		}
		g.branches = append(g.branches, b)
		g.index[b.ID] = b
		g.order = append(g.order, b)
	}

	return g, nil
}

func referenceList(obj map[string]any, field string) ([]any, bool) {
	if field == "" {
		return nil, false
	}
	refs, ok := obj[field].([]any)
	if !ok || len(refs) == 0 {
		return nil, false
	}
	return refs, true
}

// canonicalID maps an identity value to a comparable map key. Numbers of any
// Go numeric type collapse to float64 so 1, int64(1) and 1.0 are the same id.
func canonicalID(v any) (any, bool) {
	switch id := v.(type) {
	case string, bool:
		return id, true
	case float64:
		if math.IsNaN(id) {
			return nil, false
		}
		return id, true
	case json.Number:
		f, err := id.Float64()
		if err != nil {
			return nil, false
		}
		return f, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32:
		return rv.Float(), true
	default:
		return nil, false
	}
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", v)
	}
}
