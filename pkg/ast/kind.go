package ast

// Id is an opaque, dense identifier. AST nodes and runtime objects have
// disjoint Id spaces; this type exists so the two can never be confused at
// compile time.
type Id int

// NodeKind discriminates the closed set of AST node variants. The set is
// closed and exhaustive: every variant listed here must have a matching
// entry in the validator's dispatch table, even if that entry is empty.
type NodeKind string

const (
	KindEnvironment NodeKind = "Environment"
	KindPackage     NodeKind = "Package"
	KindImport      NodeKind = "Import"
	KindClass       NodeKind = "Class"
	KindSingleton   NodeKind = "Singleton"
	KindMixin       NodeKind = "Mixin"
	KindField       NodeKind = "Field"
	KindMethod      NodeKind = "Method"
	KindConstructor NodeKind = "Constructor"
	KindParameter   NodeKind = "Parameter"
	KindBody        NodeKind = "Body"
	KindVariable    NodeKind = "Variable"
	KindReturn      NodeKind = "Return"
	KindAssignment  NodeKind = "Assignment"
	KindReference   NodeKind = "Reference"
	KindSelf        NodeKind = "Self"
	KindSuper       NodeKind = "Super"
	KindNew         NodeKind = "New"
	KindLiteral     NodeKind = "Literal"
	KindSend        NodeKind = "Send"
	KindIf          NodeKind = "If"
	KindThrow       NodeKind = "Throw"
	KindTry         NodeKind = "Try"
	KindCatch       NodeKind = "Catch"
	KindProgram     NodeKind = "Program"
	KindTest        NodeKind = "Test"
	KindDescribe    NodeKind = "Describe"
)

// AllKinds lists every NodeKind in the closed set, in the order declared
// above. The validator driver uses it to build an exhaustive dispatch
// table at startup (pkg/validator.buildDispatchTable panics if a kind is
// missing).
var AllKinds = []NodeKind{
	KindEnvironment, KindPackage, KindImport, KindClass, KindSingleton,
	KindMixin, KindField, KindMethod, KindConstructor, KindParameter,
	KindBody, KindVariable, KindReturn, KindAssignment, KindReference,
	KindSelf, KindSuper, KindNew, KindLiteral, KindSend, KindIf, KindThrow,
	KindTry, KindCatch, KindProgram, KindTest, KindDescribe,
}
