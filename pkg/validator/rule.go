package validator

import "wollokvalidate/pkg/ast"

// Predicate is evaluated over a node and, when it needs to reason across
// siblings (overload clashes, import shadowing), the owning Environment.
// It must be pure: no mutation of either argument.
type Predicate func(env *ast.Environment, node ast.Node) bool

// Rule pairs a stable code and level with the predicate that enforces it.
// Evaluating a Rule on a node yields a Problem only when the predicate
// returns false.
type Rule struct {
	Code      string
	Level     Level
	Predicate Predicate
}

// Evaluate runs the rule against node, returning nil when the predicate
// holds (testable property 4: a Problem is produced only when its
// predicate returns false).
func (r Rule) Evaluate(env *ast.Environment, node ast.Node) *Problem {
	if r.Predicate(env, node) {
		return nil
	}
	return &Problem{Code: r.Code, Level: r.Level, Node: node}
}
