package ast

// Node is the sum type every AST variant implements. Behavior lives
// elsewhere (pkg/tree, pkg/validator); Node itself is purely data.
type Node interface {
	Id() Id
	Kind() NodeKind
	isNode()
}

// nodeImpl carries the fields every variant shares. Embedding it gives a
// struct its Id/Kind accessors and satisfies the isNode marker.
type nodeImpl struct {
	NodeId   Id       `json:"id"`
	NodeKind NodeKind `json:"type"`
}

func (n nodeImpl) Id() Id        { return n.NodeId }
func (n nodeImpl) Kind() NodeKind { return n.NodeKind }
func (nodeImpl) isNode()          {}

func newNodeImpl(kind NodeKind) nodeImpl {
	return nodeImpl{NodeId: nextId(), NodeKind: kind}
}

// Member marks the node kinds that may appear in a Package's member list:
// Package, Import, Class, Singleton, Mixin, Program, Test, Describe.
type Member interface {
	Node
	isMember()
}

type memberMarker struct{}

func (memberMarker) isMember() {}

// ClassMember marks Field, Method, Constructor — the node kinds that may
// appear in a Class, Singleton, or Mixin's member list.
type ClassMember interface {
	Node
	isClassMember()
}

type classMemberMarker struct{}

func (classMemberMarker) isClassMember() {}

// Sentence marks the node kinds that may appear in a Body: Variable,
// Return, Assignment, and every Expression (expressions are valid
// statements on their own).
type Sentence interface {
	Node
	isSentence()
}

type sentenceMarker struct{}

func (sentenceMarker) isSentence() {}

// Expression marks the node kinds that produce a value: Reference, Self,
// Super, New, Literal, Send, If, Throw, Try, and Singleton (an anonymous
// object literal). Every Expression is also a Sentence.
type Expression interface {
	Node
	Sentence
	isExpression()
}

type expressionMarker struct{ sentenceMarker }

func (expressionMarker) isExpression() {}
