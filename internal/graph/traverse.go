// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package graph

import "iter"

// Reachable iterates the node with the given id followed by every node
// reachable from it through resolved references, breadth-first. Each node is
// yielded once. The walk uses a work list and a visited set, so it terminates
// on cyclic input in time linear in nodes plus edges.
func (g *Graph) Reachable(id any) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		start, ok := g.Lookup(id)
		if !ok {
			return
		}
		visited := map[any]struct{}{start.NodeID(): {}}
		queue := []Node{start}
		for len(queue) > 0 {
			n := queue[0]
			queue = queue[1:]
			if !yield(n) {
				return
			}
			b, ok := n.(*Branch)
			if !ok {
				continue
			}
			for _, child := range b.Children {
				if _, seen := visited[child]; seen {
					continue
				}
				visited[child] = struct{}{}
				queue = append(queue, g.index[child])
			}
		}
	}
}

// Cycles reports whether any record transitively references itself,
// including a record listing its own id.
func (g *Graph) Cycles() bool {
	const (
		white = iota
		grey
		black
	)
	type frame struct {
		branch *Branch
		next   int
	}

	color := make(map[any]int, len(g.branches))
	for _, root := range g.branches {
		if color[root.ID] != white {
			continue
		}
		color[root.ID] = grey
		stack := []frame{{branch: root}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next == len(top.branch.Children) {
				color[top.branch.ID] = black
				stack = stack[:len(stack)-1]
				continue
			}
			child := top.branch.Children[top.next]
			top.next++

			switch color[child] {
			case grey:
				return true
			case black:
				continue
			}
			b, ok := g.index[child].(*Branch)
			if !ok {
				color[child] = black
				continue
			}
			color[child] = grey
			stack = append(stack, frame{branch: b})
		}
	}
	return false
}
