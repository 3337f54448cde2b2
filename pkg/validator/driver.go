package validator

import (
	"fmt"

	"wollokvalidate/pkg/ast"
	"wollokvalidate/pkg/tree"
)

// Override lets a consumer disable a rule code or replace its declared
// level. Validate treats a Disabled override as "skip"; a non-empty Level
// override replaces the Problem's level but never the dispatch table
// itself, which stays exhaustive and fixed at init time (§4.4).
type Override struct {
	Disabled bool
	Level    Level
}

// Overrides maps a rule code to the override that applies to it. A nil
// Overrides behaves exactly like spec.md's driver: no rule is ever
// skipped or re-leveled.
type Overrides map[string]Override

// dispatchTable is the static, per-kind mapping from code to rule built
// once at package init. Its completeness (one entry — possibly empty —
// per ast.NodeKind) is asserted by TestDispatchTableIsExhaustive rather
// than the Go compiler, since Go has no sum-type exhaustiveness check;
// that test is this repository's substitute for "adding a variant is a
// compile-time change".
var dispatchTable = buildDispatchTable()

func buildDispatchTable() map[ast.NodeKind][]Rule {
	table := make(map[ast.NodeKind][]Rule, len(ast.AllKinds))
	for _, kind := range ast.AllKinds {
		table[kind] = nil
	}

	table[ast.KindClass] = []Rule{
		{Code: "nameIsPascalCase", Level: Warning, Predicate: nameIsPascalCase},
		{Code: "methodsHaveDistinctSignatures", Level: Error, Predicate: methodsHaveDistinctSignatures},
	}
	table[ast.KindMixin] = []Rule{
		{Code: "nameIsPascalCase", Level: Warning, Predicate: nameIsPascalCase},
	}
	table[ast.KindParameter] = []Rule{
		{Code: "nameIsCamelCase", Level: Warning, Predicate: nameIsCamelCase},
	}
	table[ast.KindSingleton] = []Rule{
		{Code: "nameIsCamelCase", Level: Warning, Predicate: nameIsCamelCase},
		{Code: "singletonIsNotUnnamed", Level: Error, Predicate: singletonIsNotUnnamed},
	}
	table[ast.KindVariable] = []Rule{
		{Code: "nameIsCamelCase", Level: Warning, Predicate: nameIsCamelCase},
		{Code: "nameIsNotKeyword", Level: Error, Predicate: nameIsNotKeyword},
	}
	table[ast.KindReference] = []Rule{
		{Code: "nameIsNotKeyword", Level: Error, Predicate: nameIsNotKeyword},
	}
	table[ast.KindMethod] = []Rule{
		{Code: "nameIsNotKeyword", Level: Error, Predicate: nameIsNotKeyword},
		{Code: "onlyLastParameterIsVarArg", Level: Error, Predicate: onlyLastParameterIsVarArg},
		{Code: "methodNotOnlyCallToSuper", Level: Warning, Predicate: methodNotOnlyCallToSuper},
	}
	table[ast.KindTry] = []Rule{
		{Code: "hasCatchOrAlways", Level: Error, Predicate: hasCatchOrAlways},
	}
	table[ast.KindImport] = []Rule{
		{Code: "importHasNotLocalReference", Level: Error, Predicate: importHasNotLocalReference},
	}
	table[ast.KindAssignment] = []Rule{
		{Code: "nonAsignationOfFullyQualifiedReferences", Level: Error, Predicate: nonAsignationOfFullyQualifiedReferences},
	}
	table[ast.KindField] = []Rule{
		{Code: "fieldNameDifferentFromTheMethods", Level: Error, Predicate: fieldNameDifferentFromTheMethods},
	}
	table[ast.KindConstructor] = []Rule{
		{Code: "constructorsHaveDistinctArity", Level: Error, Predicate: constructorsHaveDistinctArity},
	}
	table[ast.KindTest] = []Rule{
		{Code: "testIsNotEmpty", Level: Warning, Predicate: testIsNotEmpty},
	}
	table[ast.KindProgram] = []Rule{
		{Code: "programIsNotEmpty", Level: Warning, Predicate: programIsNotEmpty},
	}

	for _, kind := range ast.AllKinds {
		if _, ok := table[kind]; !ok {
			panic(fmt.Sprintf("validator: dispatch table missing entry for kind %q", kind))
		}
	}
	return table
}

// Validate folds over root (usually env itself) via tree.Reduce, running
// every rule registered for each visited node's kind and collecting the
// resulting Problems in pre-order × declaration order (§4.4) — the order
// guarantee consumers rely on.
func Validate(env *ast.Environment, root ast.Node, overrides Overrides) []Problem {
	if root == nil {
		root = env
	}
	return tree.Reduce(func(acc []Problem, node ast.Node) []Problem {
		rules := dispatchTable[node.Kind()]
		for _, rule := range rules {
			problem := rule.Evaluate(env, node)
			if problem == nil {
				continue
			}
			if overrides != nil {
				if o, ok := overrides[problem.Code]; ok {
					if o.Disabled {
						continue
					}
					if o.Level != "" {
						problem.Level = o.Level
					}
				}
			}
			acc = append(acc, *problem)
		}
		return acc
	}, []Problem{}, root)
}
