package ast

// Package is a named container of ordered members: nested Packages,
// Classes, Singletons, Mixins, Programs, Tests, Describes, and Imports,
// all interleaved in source order.
type Package struct {
	nodeImpl
	memberMarker

	Name    string   `json:"name"`
	Members []Member `json:"members"`
}

func NewPackage(name string, members []Member) *Package {
	return &Package{nodeImpl: newNodeImpl(KindPackage), Name: name, Members: members}
}

// Reference is a (possibly dotted, fully-qualified) name used where a
// value is expected.
type Reference struct {
	nodeImpl
	expressionMarker

	Name string `json:"name"`
}

func NewReference(name string) *Reference {
	return &Reference{nodeImpl: newNodeImpl(KindReference), Name: name}
}

// Import binds a Reference, optionally under a local alias.
type Import struct {
	nodeImpl
	memberMarker

	Reference *Reference `json:"reference"`
	Alias     string     `json:"alias,omitempty"`
}

func NewImport(reference *Reference, alias string) *Import {
	return &Import{nodeImpl: newNodeImpl(KindImport), Reference: reference, Alias: alias}
}

// Class has a name, an optional superclass reference, zero or more
// mixed-in mixins, and an ordered ClassMember list.
type Class struct {
	nodeImpl
	memberMarker

	Name       string        `json:"name"`
	Superclass *Reference    `json:"superclass,omitempty"`
	Mixins     []*Reference  `json:"mixins,omitempty"`
	Members    []ClassMember `json:"members"`
}

func NewClass(name string, superclass *Reference, mixins []*Reference, members []ClassMember) *Class {
	return &Class{nodeImpl: newNodeImpl(KindClass), Name: name, Superclass: superclass, Mixins: mixins, Members: members}
}

// Singleton is a named or anonymous object literal. Name is empty for an
// anonymous singleton; whether that is legal depends on where it sits in
// the tree (singletonIsNotUnnamed).
type Singleton struct {
	nodeImpl
	memberMarker
	expressionMarker

	Name    string        `json:"name,omitempty"`
	Members []ClassMember `json:"members"`
}

func NewSingleton(name string, members []ClassMember) *Singleton {
	return &Singleton{nodeImpl: newNodeImpl(KindSingleton), Name: name, Members: members}
}

// Mixin has a name and an ordered ClassMember list.
type Mixin struct {
	nodeImpl
	memberMarker

	Name    string        `json:"name"`
	Members []ClassMember `json:"members"`
}

func NewMixin(name string, members []ClassMember) *Mixin {
	return &Mixin{nodeImpl: newNodeImpl(KindMixin), Name: name, Members: members}
}

// Field declares an instance variable with an initializer expression.
type Field struct {
	nodeImpl
	classMemberMarker

	Name        string     `json:"name"`
	Initializer Expression `json:"initializer,omitempty"`
}

func NewField(name string, initializer Expression) *Field {
	return &Field{nodeImpl: newNodeImpl(KindField), Name: name, Initializer: initializer}
}

// Parameter is a method/constructor parameter; IsVarArg marks it as
// absorbing zero or more trailing arguments (only legal as the last
// parameter — enforced by onlyLastParameterIsVarArg).
type Parameter struct {
	nodeImpl

	Name     string `json:"name"`
	IsVarArg bool   `json:"isVarArg"`
}

func NewParameter(name string, isVarArg bool) *Parameter {
	return &Parameter{nodeImpl: newNodeImpl(KindParameter), Name: name, IsVarArg: isVarArg}
}

// Method has a name, parameters, an optional body (absent for abstract or
// native methods), and override/native flags.
type Method struct {
	nodeImpl
	classMemberMarker

	Name       string       `json:"name"`
	Parameters []*Parameter `json:"parameters"`
	Body       *Body        `json:"body,omitempty"`
	IsOverride bool         `json:"isOverride"`
	IsNative   bool         `json:"isNative"`
}

func NewMethod(name string, parameters []*Parameter, body *Body, isOverride, isNative bool) *Method {
	return &Method{
		nodeImpl:   newNodeImpl(KindMethod),
		Name:       name,
		Parameters: parameters,
		Body:       body,
		IsOverride: isOverride,
		IsNative:   isNative,
	}
}

// Constructor has parameters, a body, and an optional base-constructor
// call (a bare `super(...)`).
type Constructor struct {
	nodeImpl
	classMemberMarker

	Parameters []*Parameter `json:"parameters"`
	Body       *Body        `json:"body"`
	BaseCall   *Super       `json:"baseCall,omitempty"`
}

func NewConstructor(parameters []*Parameter, body *Body, baseCall *Super) *Constructor {
	return &Constructor{nodeImpl: newNodeImpl(KindConstructor), Parameters: parameters, Body: body, BaseCall: baseCall}
}

// Body is an ordered sequence of Sentences; order is preserved from the
// source.
type Body struct {
	nodeImpl

	Sentences []Sentence `json:"sentences"`
}

func NewBody(sentences []Sentence) *Body {
	return &Body{nodeImpl: newNodeImpl(KindBody), Sentences: sentences}
}

// Variable declares a local binding (`var` or `const`).
type Variable struct {
	nodeImpl
	sentenceMarker

	Name        string     `json:"name"`
	Initializer Expression `json:"initializer,omitempty"`
	IsConst     bool       `json:"isConst"`
}

func NewVariable(name string, initializer Expression, isConst bool) *Variable {
	return &Variable{nodeImpl: newNodeImpl(KindVariable), Name: name, Initializer: initializer, IsConst: isConst}
}

// Return yields an optional value from the enclosing method/program body.
type Return struct {
	nodeImpl
	sentenceMarker

	Value Expression `json:"value,omitempty"`
}

func NewReturn(value Expression) *Return {
	return &Return{nodeImpl: newNodeImpl(KindReturn), Value: value}
}

// Assignment updates the binding named by Reference. Assignment is a
// Sentence but, per the Language grammar, not itself an Expression — it
// has no value to read back.
type Assignment struct {
	nodeImpl
	sentenceMarker

	Reference *Reference `json:"reference"`
	Value     Expression `json:"value"`
}

func NewAssignment(reference *Reference, value Expression) *Assignment {
	return &Assignment{nodeImpl: newNodeImpl(KindAssignment), Reference: reference, Value: value}
}

// Self refers to the current receiver.
type Self struct {
	nodeImpl
	expressionMarker
}

func NewSelf() *Self {
	return &Self{nodeImpl: newNodeImpl(KindSelf)}
}

// Super either calls the superclass implementation of the enclosing
// method (bare call, no arguments needed on its own) or, as a
// Constructor's BaseCall, invokes a specific superclass constructor.
type Super struct {
	nodeImpl
	expressionMarker

	Arguments []Expression `json:"arguments,omitempty"`
}

func NewSuper(arguments []Expression) *Super {
	return &Super{nodeImpl: newNodeImpl(KindSuper), Arguments: arguments}
}

// New instantiates a class.
type New struct {
	nodeImpl
	expressionMarker

	ClassRef  *Reference   `json:"classRef"`
	Arguments []Expression `json:"arguments,omitempty"`
}

func NewNew(classRef *Reference, arguments []Expression) *New {
	return &New{nodeImpl: newNodeImpl(KindNew), ClassRef: classRef, Arguments: arguments}
}

// Literal holds a constant scalar: nil, bool, a number (int64/float64),
// or string.
type Literal struct {
	nodeImpl
	expressionMarker

	Value any `json:"value"`
}

func NewLiteral(value any) *Literal {
	return &Literal{nodeImpl: newNodeImpl(KindLiteral), Value: value}
}

// Send dispatches Selector to Receiver with Arguments.
type Send struct {
	nodeImpl
	expressionMarker

	Receiver  Expression   `json:"receiver"`
	Selector  string       `json:"selector"`
	Arguments []Expression `json:"arguments,omitempty"`
}

func NewSend(receiver Expression, selector string, arguments []Expression) *Send {
	return &Send{nodeImpl: newNodeImpl(KindSend), Receiver: receiver, Selector: selector, Arguments: arguments}
}

// If evaluates Condition and runs Then or Else.
type If struct {
	nodeImpl
	expressionMarker

	Condition Expression `json:"condition"`
	Then      *Body      `json:"then"`
	Else      *Body      `json:"else,omitempty"`
}

func NewIf(condition Expression, thenBody, elseBody *Body) *If {
	return &If{nodeImpl: newNodeImpl(KindIf), Condition: condition, Then: thenBody, Else: elseBody}
}

// Throw raises Exception.
type Throw struct {
	nodeImpl
	expressionMarker

	Exception Expression `json:"exception"`
}

func NewThrow(exception Expression) *Throw {
	return &Throw{nodeImpl: newNodeImpl(KindThrow), Exception: exception}
}

// Catch matches an exception bound to Variable, optionally constrained by
// ExceptionType, and runs Body.
type Catch struct {
	nodeImpl

	Variable      string     `json:"variable"`
	ExceptionType *Reference `json:"exceptionType,omitempty"`
	Body          *Body      `json:"body"`
}

func NewCatch(variable string, exceptionType *Reference, body *Body) *Catch {
	return &Catch{nodeImpl: newNodeImpl(KindCatch), Variable: variable, ExceptionType: exceptionType, Body: body}
}

// Try runs Body, dispatching any raised exception to the first matching
// Catch, and always runs Always (if present) on the way out.
type Try struct {
	nodeImpl
	expressionMarker

	Body    *Body    `json:"body"`
	Catches []*Catch `json:"catches,omitempty"`
	Always  *Body    `json:"always,omitempty"`
}

func NewTry(body *Body, catches []*Catch, always *Body) *Try {
	return &Try{nodeImpl: newNodeImpl(KindTry), Body: body, Catches: catches, Always: always}
}

// Program is a named, runnable top-level entry point.
type Program struct {
	nodeImpl
	memberMarker

	Name string `json:"name"`
	Body *Body  `json:"body"`
}

func NewProgram(name string, body *Body) *Program {
	return &Program{nodeImpl: newNodeImpl(KindProgram), Name: name, Body: body}
}

// Test is a named, independently runnable assertion body.
type Test struct {
	nodeImpl
	memberMarker

	Name string `json:"name"`
	Body *Body  `json:"body"`
}

func NewTest(name string, body *Body) *Test {
	return &Test{nodeImpl: newNodeImpl(KindTest), Name: name, Body: body}
}

// Describe is a named grouping container with its own Body, structurally
// identical to Test/Program at this level of the model.
type Describe struct {
	nodeImpl
	memberMarker

	Name string `json:"name"`
	Body *Body  `json:"body"`
}

func NewDescribe(name string, body *Body) *Describe {
	return &Describe{nodeImpl: newNodeImpl(KindDescribe), Name: name, Body: body}
}
