package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"wollokvalidate/pkg/ast"
)

func writeFixture(t *testing.T, dir string, pkg *ast.Package) string {
	t.Helper()
	data, err := json.Marshal(pkg)
	if err != nil {
		t.Fatalf("unexpected error marshaling fixture: %v", err)
	}
	path := filepath.Join(dir, "env.json")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("unexpected error writing fixture: %v", err)
	}
	return path
}

func TestRunReportsErrorExitCodeOnErrorLevelProblem(t *testing.T) {
	dir := t.TempDir()
	// lowercase class name trips nameIsPascalCase (a Warning, not fatal)
	// but an empty program body trips nothing fatal either; use a keyword
	// variable name to force an Error-level problem deterministically.
	body := ast.NewBody([]ast.Sentence{ast.NewVariable("class", nil, false)})
	method := ast.NewMethod("m", nil, body, false, false)
	class := ast.NewClass("Ok", nil, nil, []ast.ClassMember{method})
	pkg := ast.NewPackage("p", []ast.Member{class})

	path := writeFixture(t, dir, pkg)
	code := run([]string{"-env", path})
	if code != 1 {
		t.Fatalf("expected exit code 1 when an Error-level problem is present, got %d", code)
	}
}

func TestRunReturnsZeroOnCleanEnvironment(t *testing.T) {
	dir := t.TempDir()
	body := ast.NewBody([]ast.Sentence{ast.NewReturn(ast.NewLiteral(1.0))})
	method := ast.NewMethod("compute", nil, body, false, false)
	class := ast.NewClass("Calculator", nil, nil, []ast.ClassMember{method})
	pkg := ast.NewPackage("p", []ast.Member{class})

	path := writeFixture(t, dir, pkg)
	code := run([]string{"-env", path})
	if code != 0 {
		t.Fatalf("expected exit code 0 on a clean environment, got %d", code)
	}
}

func TestRunFailsOnMissingFile(t *testing.T) {
	code := run([]string{"-env", "/no/such/file.json"})
	if code != 1 {
		t.Fatalf("expected exit code 1 for a missing input file, got %d", code)
	}
}

func TestRunRendersTreeWithoutError(t *testing.T) {
	dir := t.TempDir()
	pkg := ast.NewPackage("p", []ast.Member{ast.NewClass("A", nil, nil, nil)})
	path := writeFixture(t, dir, pkg)
	code := run([]string{"-env", path, "-tree"})
	if code != 0 {
		t.Fatalf("expected -tree rendering to exit 0, got %d", code)
	}
}
