package validator

import (
	"strings"

	"wollokvalidate/pkg/ast"
)

// onlyLastParameterIsVarArg reproduces the contract from §4.3 literally:
// indexOf(varArg)+1 == length. As the design notes (§9.1) point out, this
// is false whenever there is no varArg parameter at all on a non-empty
// list (indexOf returns "not found", taken as -1, so 0 != length). We
// preserve that observable behavior rather than silently fixing it; see
// DESIGN.md.
func onlyLastParameterIsVarArg(_ *ast.Environment, n ast.Node) bool {
	m := n.(*ast.Method)
	idx := -1
	for i, p := range m.Parameters {
		if p.IsVarArg {
			idx = i
			break
		}
	}
	return idx+1 == len(m.Parameters)
}

// hasCatchOrAlways keeps the literal `a || b && c` precedence flagged in
// §9.2: a try with at least one catch clause satisfies the rule even if
// its body and always block are both empty.
func hasCatchOrAlways(_ *ast.Environment, n ast.Node) bool {
	t := n.(*ast.Try)
	hasCatch := len(t.Catches) > 0
	hasBody := t.Body != nil && len(t.Body.Sentences) > 0
	hasAlways := t.Always != nil && len(t.Always.Sentences) > 0
	return hasCatch || (hasAlways && hasBody)
}

// singletonIsNotUnnamed: a package-level singleton must have a name.
// Anonymous singletons used as expressions elsewhere in the tree are not
// checked by this rule (§9.5).
func singletonIsNotUnnamed(env *ast.Environment, n ast.Node) bool {
	s := n.(*ast.Singleton)
	parent, err := env.ParentOf(s)
	if err != nil {
		return true
	}
	if _, ok := parent.(*ast.Package); ok {
		return s.Name != ""
	}
	return true
}

// importHasNotLocalReference: no sibling member of the enclosing Package
// shares the imported reference's (last-segment) name.
func importHasNotLocalReference(env *ast.Environment, n ast.Node) bool {
	imp := n.(*ast.Import)
	parent, err := env.ParentOf(imp)
	if err != nil {
		return true
	}
	pkg, ok := parent.(*ast.Package)
	if !ok || imp.Reference == nil {
		return true
	}
	localName := lastSegment(imp.Reference.Name)
	for _, m := range pkg.Members {
		if m.Id() == imp.Id() {
			continue
		}
		if name, ok := nameOf(m); ok && name == localName {
			return false
		}
	}
	return true
}

func lastSegment(dotted string) string {
	if idx := strings.LastIndex(dotted, "."); idx >= 0 {
		return dotted[idx+1:]
	}
	return dotted
}

// nonAsignationOfFullyQualifiedReferences: the assignment's LHS reference
// name contains no dot.
func nonAsignationOfFullyQualifiedReferences(_ *ast.Environment, n ast.Node) bool {
	a := n.(*ast.Assignment)
	if a.Reference == nil {
		return true
	}
	return !strings.Contains(a.Reference.Name, ".")
}

// fieldNameDifferentFromTheMethods: no sibling Method in the enclosing
// Class shares the field's name.
func fieldNameDifferentFromTheMethods(env *ast.Environment, n ast.Node) bool {
	f := n.(*ast.Field)
	parent, err := env.ParentOf(f)
	if err != nil {
		return true
	}
	class, ok := parent.(*ast.Class)
	if !ok {
		return true
	}
	for _, m := range class.Members {
		if method, ok := m.(*ast.Method); ok && method.Name == f.Name {
			return false
		}
	}
	return true
}
