package validator

import (
	"testing"

	"wollokvalidate/pkg/ast"
)

func TestDispatchTableIsExhaustive(t *testing.T) {
	if len(dispatchTable) != len(ast.AllKinds) {
		t.Fatalf("dispatch table has %d entries, want %d (one per NodeKind)", len(dispatchTable), len(ast.AllKinds))
	}
	for _, kind := range ast.AllKinds {
		if _, ok := dispatchTable[kind]; !ok {
			t.Fatalf("dispatch table missing entry for kind %q", kind)
		}
	}
}

func mustEnv(t *testing.T, root *ast.Package) *ast.Environment {
	t.Helper()
	env, err := ast.NewEnvironment(root)
	if err != nil {
		t.Fatalf("NewEnvironment failed: %v", err)
	}
	return env
}

// Scenario 1: Pascal-case warning.
func TestPascalCaseWarningOnLowercaseClassName(t *testing.T) {
	class := ast.Cls("foo", nil, nil)
	env := mustEnv(t, ast.Pkg("p", class))

	problems := Validate(env, env, nil)
	found := false
	for _, p := range problems {
		if p.Code == "nameIsPascalCase" && p.Node.Id() == class.Id() {
			found = true
			if p.Level != Warning {
				t.Fatalf("expected Warning level, got %s", p.Level)
			}
		}
	}
	if !found {
		t.Fatalf("expected a nameIsPascalCase problem on the class")
	}
}

// Scenario 2: import shadowing.
func TestImportShadowingLocalMember(t *testing.T) {
	class := ast.Cls("X", nil, nil)
	imp := ast.Imp(ast.Ref("X"), "")
	env := mustEnv(t, ast.Pkg("P", class, imp))

	problems := Validate(env, env, nil)
	found := false
	for _, p := range problems {
		if p.Code == "importHasNotLocalReference" && p.Node.Id() == imp.Id() {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected importHasNotLocalReference on the shadowing import")
	}
}

// Scenario 5: keyword name.
func TestKeywordNameOnVariable(t *testing.T) {
	v := ast.Var("class", ast.Lit(1))
	body := ast.Bod(v)
	prog := ast.Prog("Main", body)
	env := mustEnv(t, ast.Pkg("p", prog))

	problems := Validate(env, env, nil)
	found := false
	for _, p := range problems {
		if p.Code == "nameIsNotKeyword" && p.Node.Id() == v.Id() {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected nameIsNotKeyword on the variable named 'class'")
	}
}

// Scenario 6: try without catch or always.
func TestTryWithoutCatchOrAlways(t *testing.T) {
	try := ast.TryExpr(ast.Bod(), nil, ast.Bod())
	prog := ast.Prog("Main", ast.Bod(try))
	env := mustEnv(t, ast.Pkg("p", prog))

	problems := Validate(env, env, nil)
	found := false
	for _, p := range problems {
		if p.Code == "hasCatchOrAlways" && p.Node.Id() == try.Id() {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected hasCatchOrAlways on the try")
	}
}

// Boundary: empty Program/Test body -> one Warning, no Errors.
func TestEmptyProgramBodyYieldsOnlyWarning(t *testing.T) {
	prog := ast.Prog("Main", ast.Bod())
	env := mustEnv(t, ast.Pkg("p", prog))

	problems := Validate(env, env, nil)
	if len(problems) != 1 {
		t.Fatalf("expected exactly one problem, got %d: %+v", len(problems), problems)
	}
	if problems[0].Code != "programIsNotEmpty" || problems[0].Level != Warning {
		t.Fatalf("expected a programIsNotEmpty Warning, got %+v", problems[0])
	}
}

func TestEmptyTestBodyYieldsOnlyWarning(t *testing.T) {
	test := ast.TestCase("does a thing", ast.Bod())
	env := mustEnv(t, ast.Pkg("p", test))

	problems := Validate(env, env, nil)
	if len(problems) != 1 {
		t.Fatalf("expected exactly one problem, got %d: %+v", len(problems), problems)
	}
	if problems[0].Code != "testIsNotEmpty" || problems[0].Level != Warning {
		t.Fatalf("expected a testIsNotEmpty Warning, got %+v", problems[0])
	}
}

// Boundary: method with zero parameters passes onlyLastParameterIsVarArg
// (the literal, spec-pinned behavior — see §9.1 / DESIGN.md).
func TestOnlyLastParameterIsVarArgZeroParamsPasses(t *testing.T) {
	m := ast.Mth("m", nil, ast.Bod())
	class := ast.Cls("M", nil, nil, m)
	env := mustEnv(t, ast.Pkg("p", class))

	problems := Validate(env, env, nil)
	for _, p := range problems {
		if p.Code == "onlyLastParameterIsVarArg" {
			t.Fatalf("zero-parameter method should not trip onlyLastParameterIsVarArg, got %+v", p)
		}
	}
}

// Pinned: a non-empty, vararg-free parameter list DOES trip the rule —
// this is the "almost certainly unintended" behavior flagged in §9.1.
func TestOnlyLastParameterIsVarArgNonEmptyWithoutVarArgFails(t *testing.T) {
	m := ast.Mth("m", []*ast.Parameter{ast.Param("a")}, ast.Bod())
	class := ast.Cls("M", nil, nil, m)
	env := mustEnv(t, ast.Pkg("p", class))

	problems := Validate(env, env, nil)
	found := false
	for _, p := range problems {
		if p.Code == "onlyLastParameterIsVarArg" && p.Node.Id() == m.Id() {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the literal spec.md behavior to flag a single non-vararg parameter")
	}
}

// Class with two methods m(a) and m(b) -> one methodsHaveDistinctSignatures error.
func TestOverloadClashSameArity(t *testing.T) {
	m1 := ast.Mth("m", []*ast.Parameter{ast.Param("a")}, ast.Bod())
	m2 := ast.Mth("m", []*ast.Parameter{ast.Param("b")}, ast.Bod())
	class := ast.Cls("C", nil, nil, m1, m2)
	env := mustEnv(t, ast.Pkg("p", class))

	problems := Validate(env, env, nil)
	count := 0
	for _, p := range problems {
		if p.Code == "methodsHaveDistinctSignatures" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one methodsHaveDistinctSignatures problem, got %d", count)
	}
}

// Class with m(a) and m(a, ...rest) -> overload clash via varargs.
func TestOverloadClashVarArg(t *testing.T) {
	m1 := ast.Mth("m", []*ast.Parameter{ast.Param("a")}, ast.Bod())
	m2 := ast.Mth("m", []*ast.Parameter{ast.Param("a"), ast.VarArg("rest")}, ast.Bod())
	class := ast.Cls("C", nil, nil, m1, m2)
	env := mustEnv(t, ast.Pkg("p", class))

	problems := Validate(env, env, nil)
	count := 0
	for _, p := range problems {
		if p.Code == "methodsHaveDistinctSignatures" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one methodsHaveDistinctSignatures problem, got %d", count)
	}
}

// Assignment to foo.bar -> nonAsignationOfFullyQualifiedReferences error.
func TestAssignmentToDottedReference(t *testing.T) {
	assign := ast.Asgn(ast.Ref("foo.bar"), ast.Lit(1))
	prog := ast.Prog("Main", ast.Bod(assign))
	env := mustEnv(t, ast.Pkg("p", prog))

	problems := Validate(env, env, nil)
	found := false
	for _, p := range problems {
		if p.Code == "nonAsignationOfFullyQualifiedReferences" && p.Node.Id() == assign.Id() {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected nonAsignationOfFullyQualifiedReferences on the assignment")
	}
}

// validate is deterministic and pure: repeated calls produce the same list.
func TestValidateIsDeterministic(t *testing.T) {
	class := ast.Cls("foo", nil, nil, ast.Fld("a", nil), ast.Fld("a", nil))
	env := mustEnv(t, ast.Pkg("p", class))

	first := Validate(env, env, nil)
	second := Validate(env, env, nil)

	if len(first) != len(second) {
		t.Fatalf("different result lengths across calls: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Code != second[i].Code || first[i].Node.Id() != second[i].Node.Id() {
			t.Fatalf("result order/content differs at index %d", i)
		}
	}
}

// Overrides: disabling a code removes its Problems; re-leveling changes
// the level without touching the dispatch table.
func TestOverridesDisableAndRelevel(t *testing.T) {
	class := ast.Cls("foo", nil, nil)
	env := mustEnv(t, ast.Pkg("p", class))

	disabled := Validate(env, env, Overrides{"nameIsPascalCase": {Disabled: true}})
	for _, p := range disabled {
		if p.Code == "nameIsPascalCase" {
			t.Fatalf("expected nameIsPascalCase to be suppressed by the override")
		}
	}

	releveled := Validate(env, env, Overrides{"nameIsPascalCase": {Level: Error}})
	found := false
	for _, p := range releveled {
		if p.Code == "nameIsPascalCase" {
			found = true
			if p.Level != Error {
				t.Fatalf("expected overridden level Error, got %s", p.Level)
			}
		}
	}
	if !found {
		t.Fatalf("expected a nameIsPascalCase problem to still be reported")
	}
}
