// Package tree provides the generic traversal primitive the validator
// driver uses to walk an AST deterministically.
package tree

import "wollokvalidate/pkg/ast"

// Reduce performs a depth-first, pre-order fold over the subtree rooted
// at root, visiting every node exactly once and children in source order
// (ast.Children is the single source of truth for that order). step
// receives the accumulator and the node currently visited and returns the
// next accumulator.
//
// This is the sole traversal primitive used by the validator driver —
// diagnostic order is therefore exactly pre-order × per-kind rule
// declaration order, and nothing else walks the tree independently.
func Reduce[T any](step func(acc T, node ast.Node) T, seed T, root ast.Node) T {
	if root == nil {
		return seed
	}
	acc := step(seed, root)
	for _, child := range ast.Children(root) {
		acc = Reduce(step, acc, child)
	}
	return acc
}

// Walk is Reduce specialized to side-effecting visitors that don't need
// an accumulator.
func Walk(visit func(node ast.Node), root ast.Node) {
	Reduce(func(_ struct{}, n ast.Node) struct{} {
		visit(n)
		return struct{}{}
	}, struct{}{}, root)
}

// Collect gathers every node in pre-order, the shape testable property 2
// ("reduce(concat, [], E) visits each node exactly once, in pre-order")
// asks for directly.
func Collect(root ast.Node) []ast.Node {
	return Reduce(func(acc []ast.Node, n ast.Node) []ast.Node {
		return append(acc, n)
	}, []ast.Node{}, root)
}
