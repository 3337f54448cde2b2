package ast

import "testing"

func TestParentOfReturnsNodeInEnvironment(t *testing.T) {
	field := Fld("x", Lit(1))
	class := Cls("Foo", nil, nil, field)
	env := Env(Pkg("p", class))

	parent, err := env.ParentOf(field)
	if err != nil {
		t.Fatalf("ParentOf returned error: %v", err)
	}
	if parent.Id() != class.Id() {
		t.Fatalf("expected parent %d, got %d", class.Id(), parent.Id())
	}

	found := false
	for _, child := range Children(parent) {
		if child.Id() == field.Id() {
			found = true
		}
	}
	if !found {
		t.Fatalf("field is not among its parent's children")
	}
}

func TestParentOfRootIsError(t *testing.T) {
	env := Env(Pkg("p"))
	if _, err := env.ParentOf(env); err == nil {
		t.Fatalf("expected an error asking for the environment's own parent")
	}
}

func TestParentOfDetachedNodeFails(t *testing.T) {
	env := Env(Pkg("p"))
	detached := Lit("never linked in")
	if _, err := env.ParentOf(detached); err == nil {
		t.Fatalf("expected ErrDetachedNode")
	}
}

func TestGetNodeByFQNResolvesNestedNames(t *testing.T) {
	inner := Cls("Inner", nil, nil)
	outer := Pkg("outer", Pkg("nested", inner))
	env := Env(outer)

	node, err := env.GetNodeByFQN("outer.nested.Inner")
	if err != nil {
		t.Fatalf("GetNodeByFQN failed: %v", err)
	}
	if node.Id() != inner.Id() {
		t.Fatalf("resolved wrong node")
	}
}

func TestGetNodeByFQNUnknownNameErrors(t *testing.T) {
	env := Env(Pkg("p"))
	if _, err := env.GetNodeByFQN("nope"); err == nil {
		t.Fatalf("expected an error for an unknown FQN")
	}
}

func TestNewEnvironmentRejectsDuplicateIds(t *testing.T) {
	shared := Fld("x", nil)
	class := &Class{nodeImpl: shared.nodeImpl, Name: "Dup", Members: []ClassMember{shared}}
	pkg := Pkg("p", class)
	if _, err := NewEnvironment(pkg); err == nil {
		t.Fatalf("expected ErrDuplicateId when a node reuses another node's id")
	}
}
