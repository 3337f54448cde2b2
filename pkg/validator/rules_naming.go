package validator

import "wollokvalidate/pkg/ast"

// nameOf extracts the identifier a node is named with, for the node kinds
// that carry one. The boolean reports whether n carries a name at all.
func nameOf(n ast.Node) (string, bool) {
	switch t := n.(type) {
	case *ast.Class:
		return t.Name, true
	case *ast.Mixin:
		return t.Name, true
	case *ast.Singleton:
		return t.Name, true
	case *ast.Parameter:
		return t.Name, true
	case *ast.Variable:
		return t.Name, true
	case *ast.Method:
		return t.Name, true
	case *ast.Reference:
		return t.Name, true
	case *ast.Program:
		return t.Name, true
	case *ast.Test:
		return t.Name, true
	case *ast.Describe:
		return t.Name, true
	default:
		return "", false
	}
}

func isASCIIUpper(b byte) bool { return b >= 'A' && b <= 'Z' }
func isASCIILower(b byte) bool { return b >= 'a' && b <= 'z' }

// nameIsPascalCase: first character is an ASCII uppercase letter.
// Applies to Class, Mixin.
func nameIsPascalCase(_ *ast.Environment, n ast.Node) bool {
	name, _ := nameOf(n)
	return name != "" && isASCIIUpper(name[0])
}

// nameIsCamelCase: name is present and first character is ASCII
// lowercase. Applies to Parameter, Variable, and named Singletons only —
// an anonymous Singleton (Name == "") is exempt, not a violation.
func nameIsCamelCase(_ *ast.Environment, n ast.Node) bool {
	if s, ok := n.(*ast.Singleton); ok && s.Name == "" {
		return true
	}
	name, _ := nameOf(n)
	return name != "" && isASCIILower(name[0])
}

// nameIsNotKeyword: name is not in the fixed reserved-word set.
// Applies to Reference, Method, Variable.
func nameIsNotKeyword(_ *ast.Environment, n ast.Node) bool {
	name, ok := nameOf(n)
	if !ok {
		return true
	}
	return !isReservedWord(name)
}
