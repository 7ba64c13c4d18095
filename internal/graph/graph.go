// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package graph builds an id-indexed graph from a flat collection of records
// that reference each other by id.
//
// Nodes never point at each other directly. A Branch holds the ids it
// references and every traversal resolves them through the Graph's index, so
// cycles and self-references cost nothing at construction time.
package graph

import "iter"

// Node is either a *Leaf or a *Branch.
type Node interface {
	// NodeID returns the canonical identity of the record.
	NodeID() any
	// Record returns the record the node was built from.
	Record() map[string]any
	// IsBranch reports whether the record references other records.
	IsBranch() bool
}

// Leaf is a record with no outgoing references.
type Leaf struct {
	ID    any
	Value map[string]any
}

func (l *Leaf) NodeID() any            { return l.ID }
func (l *Leaf) Record() map[string]any { return l.Value }
func (l *Leaf) IsBranch() bool         { return false }

// Branch is a record whose reference field lists other record ids.
type Branch struct {
	ID    any
	Value map[string]any

	// Refs mirrors the reference field of the original record.
	Refs []any
	// Children holds the canonical ids from Refs that resolved to a record.
	Children []any
	// Dangling holds the entries of Refs with no matching record.
	Dangling []any
}

func (b *Branch) NodeID() any            { return b.ID }
func (b *Branch) Record() map[string]any { return b.Value }
func (b *Branch) IsBranch() bool         { return true }

// DanglingRef is a reference whose target is not in the collection.
type DanglingRef struct {
	From any
	Ref  any
}

// Graph is the immutable result of FromJSON.
type Graph struct {
	index    map[any]Node
	order    []Node
	leaves   []*Leaf
	branches []*Branch
	dangling []DanglingRef
}

// Size returns the number of Leaf nodes.
func (g *Graph) Size() int {
	return len(g.leaves)
}

// BranchCount returns the number of Branch nodes.
func (g *Graph) BranchCount() int {
	return len(g.branches)
}

// Len returns the total number of nodes.
func (g *Graph) Len() int {
	return len(g.order)
}

// Leaves iterates Leaf nodes in input order. The sequence can be ranged over
// any number of times.
func (g *Graph) Leaves() iter.Seq[*Leaf] {
	return func(yield func(*Leaf) bool) {
		for _, l := range g.leaves {
			if !yield(l) {
				return
			}
		}
	}
}

// Branches iterates Branch nodes in input order.
func (g *Graph) Branches() iter.Seq[*Branch] {
	return func(yield func(*Branch) bool) {
		for _, b := range g.branches {
			if !yield(b) {
				return
			}
		}
	}
}

// Nodes iterates every node in input order.
func (g *Graph) Nodes() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, n := range g.order {
			if !yield(n) {
				return
			}
		}
	}
}

// Lookup returns the node with the given id. Numeric ids of any Go numeric
// type match the float64 form stored in the graph.
func (g *Graph) Lookup(id any) (Node, bool) {
	key, ok := canonicalID(id)
	if !ok {
		return nil, false
	}
	n, ok := g.index[key]
	return n, ok
}

// Dangling returns every unresolved reference in input order.
func (g *Graph) Dangling() []DanglingRef {
	out := make([]DanglingRef, len(g.dangling))
	copy(out, g.dangling)
	return out
}
