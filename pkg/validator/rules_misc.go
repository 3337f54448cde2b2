package validator

import "wollokvalidate/pkg/ast"

// methodNotOnlyCallToSuper: the method body is not a single sentence that
// is a bare Super call.
func methodNotOnlyCallToSuper(_ *ast.Environment, n ast.Node) bool {
	m := n.(*ast.Method)
	if m.Body == nil || len(m.Body.Sentences) != 1 {
		return true
	}
	_, isBareSuper := m.Body.Sentences[0].(*ast.Super)
	return !isBareSuper
}

// testIsNotEmpty: the test body has at least one sentence.
func testIsNotEmpty(_ *ast.Environment, n ast.Node) bool {
	t := n.(*ast.Test)
	return t.Body != nil && len(t.Body.Sentences) > 0
}

// programIsNotEmpty: the program body has at least one sentence.
func programIsNotEmpty(_ *ast.Environment, n ast.Node) bool {
	p := n.(*ast.Program)
	return p.Body != nil && len(p.Body.Sentences) > 0
}
