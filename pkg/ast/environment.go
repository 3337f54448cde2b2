package ast

import (
	"errors"
	"fmt"
)

// ErrDetachedNode is returned by Environment.ParentOf when asked about a
// node that was never linked into this Environment's tree.
var ErrDetachedNode = errors.New("ast: node is detached from its environment")

// ErrDuplicateId is returned by NewEnvironment when two nodes in the tree
// share an Id — a violation of the "each Id appears exactly once" data
// model invariant.
var ErrDuplicateId = errors.New("ast: duplicate node id")

// Environment is the AST root. It owns the full tree and, once built,
// answers parentOf and getNodeByFQN in O(1) via indexes computed during
// construction — see the "Parent back-edges" design note: we never store
// parent pointers on nodeImpl itself, to keep Node values plain,
// construction-order-independent data.
type Environment struct {
	nodeImpl

	root       *Package
	byId       map[Id]Node
	parentById map[Id]Id
	byFQN      map[string]Node
}

// NewEnvironment links root into a fresh Environment, building the parent
// and fully-qualified-name indexes in one linear pass (testable property
// 1: every reachable node's parentOf returns a node also in the
// Environment, and that node is among its parent's children).
func NewEnvironment(root *Package) (*Environment, error) {
	env := &Environment{
		nodeImpl:   newNodeImpl(KindEnvironment),
		root:       root,
		byId:       make(map[Id]Node),
		parentById: make(map[Id]Id),
		byFQN:      make(map[string]Node),
	}
	if root == nil {
		return env, nil
	}
	if err := env.index(env, root, ""); err != nil {
		return nil, err
	}
	return env, nil
}

// Root returns the Environment's single root Package.
func (e *Environment) Root() *Package { return e.root }

func (e *Environment) index(parent Node, n Node, pathPrefix string) error {
	if n == nil {
		return nil
	}
	if _, dup := e.byId[n.Id()]; dup {
		return fmt.Errorf("%w: id %d", ErrDuplicateId, n.Id())
	}
	e.byId[n.Id()] = n
	if parent != nil {
		e.parentById[n.Id()] = parent.Id()
	}

	fqn := pathPrefix
	if name, ok := fqnName(n); ok && name != "" {
		if fqn == "" {
			fqn = name
		} else {
			fqn = fqn + "." + name
		}
		e.byFQN[fqn] = n
	}

	for _, child := range Children(n) {
		if err := e.index(n, child, fqn); err != nil {
			return err
		}
	}
	return nil
}

// fqnName reports the name a node contributes to its descendants'
// fully-qualified names: Package, Class, Mixin, named Singleton, Program,
// Test, and Describe are all "named" in this sense.
func fqnName(n Node) (string, bool) {
	switch t := n.(type) {
	case *Package:
		return t.Name, true
	case *Class:
		return t.Name, true
	case *Mixin:
		return t.Name, true
	case *Singleton:
		return t.Name, t.Name != ""
	case *Program:
		return t.Name, true
	case *Test:
		return t.Name, true
	case *Describe:
		return t.Name, true
	default:
		return "", false
	}
}

// ParentOf returns node's parent, or ErrDetachedNode if node was never
// indexed into this Environment (e.g. built separately and never linked
// into the tree this Environment was constructed from).
func (e *Environment) ParentOf(node Node) (Node, error) {
	if node == nil {
		return nil, ErrDetachedNode
	}
	if node.Id() == e.Id() {
		return nil, fmt.Errorf("ast: the environment root has no parent")
	}
	parentId, ok := e.parentById[node.Id()]
	if !ok {
		return nil, ErrDetachedNode
	}
	if parentId == e.Id() {
		return e, nil
	}
	parent, ok := e.byId[parentId]
	if !ok {
		return nil, ErrDetachedNode
	}
	return parent, nil
}

// NodeById looks up a node by its dense Id.
func (e *Environment) NodeById(id Id) (Node, bool) {
	n, ok := e.byId[id]
	return n, ok
}

// GetNodeByFQN resolves a dotted fully-qualified name to the node that
// declared it (a Package, Class, Mixin, named Singleton, Program, Test, or
// Describe).
func (e *Environment) GetNodeByFQN(fqn string) (Node, error) {
	n, ok := e.byFQN[fqn]
	if !ok {
		return nil, fmt.Errorf("ast: no node with fully-qualified name %q", fqn)
	}
	return n, nil
}
