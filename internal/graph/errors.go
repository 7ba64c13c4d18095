// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package graph

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrDuplicateID indicates two or more records share an identity value.
	ErrDuplicateID = errors.New("duplicate id")

	// ErrInvalidRecord indicates a record that cannot carry an identity.
	ErrInvalidRecord = errors.New("invalid record")
)

// DuplicateIDError names the repeated id and every input position holding it.
type DuplicateIDError struct {
	ID        any
	Positions []int
}

func (e *DuplicateIDError) Error() string {
	pos := make([]string, len(e.Positions))
	for i, p := range e.Positions {
		pos[i] = strconv.Itoa(p)
	}
	return fmt.Sprintf("%v %s at positions %s", ErrDuplicateID, FormatID(e.ID), strings.Join(pos, ", "))
}

// Is reports whether target is ErrDuplicateID.
func (e *DuplicateIDError) Is(target error) bool {
	return target == ErrDuplicateID
}

// InvalidRecordError reports a record that is not an object or whose identity
// field is missing or not a scalar.
type InvalidRecordError struct {
	Position int
	Reason   string
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("%v at position %d: %s", ErrInvalidRecord, e.Position, e.Reason)
}

// Is reports whether target is ErrInvalidRecord.
func (e *InvalidRecordError) Is(target error) bool {
	return target == ErrInvalidRecord
}

// FormatID renders an id for messages: strings are quoted, numbers print
// without a trailing fraction.
func FormatID(id any) string {
	switch v := id.(type) {
	case string:
		return strconv.Quote(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
