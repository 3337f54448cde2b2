package ast

// Construction DSL. No parser lives in this repository (parsing is an
// external collaborator); tests build trees directly with these short
// helpers instead, grounded on the same idiom
// as the teacher's sibling dsl.go (ast.Mod, ast.Fn, ast.Str, ...).

func Env(root *Package) *Environment {
	env, err := NewEnvironment(root)
	if err != nil {
		panic(err)
	}
	return env
}

func Pkg(name string, members ...Member) *Package { return NewPackage(name, members) }

func Ref(name string) *Reference { return NewReference(name) }

func Imp(reference *Reference, alias string) *Import { return NewImport(reference, alias) }

func Cls(name string, superclass *Reference, mixins []*Reference, members ...ClassMember) *Class {
	return NewClass(name, superclass, mixins, members)
}

func Obj(name string, members ...ClassMember) *Singleton { return NewSingleton(name, members) }

func Mix(name string, members ...ClassMember) *Mixin { return NewMixin(name, members) }

func Fld(name string, initializer Expression) *Field { return NewField(name, initializer) }

func Param(name string) *Parameter { return NewParameter(name, false) }

func VarArg(name string) *Parameter { return NewParameter(name, true) }

func Mth(name string, params []*Parameter, body *Body) *Method {
	return NewMethod(name, params, body, false, false)
}

func OverrideMth(name string, params []*Parameter, body *Body) *Method {
	return NewMethod(name, params, body, true, false)
}

func NativeMth(name string, params []*Parameter) *Method {
	return NewMethod(name, params, nil, false, true)
}

func Ctor(params []*Parameter, body *Body, baseCall *Super) *Constructor {
	return NewConstructor(params, body, baseCall)
}

func Bod(sentences ...Sentence) *Body { return NewBody(sentences) }

func Var(name string, initializer Expression) *Variable { return NewVariable(name, initializer, false) }

func Const(name string, initializer Expression) *Variable { return NewVariable(name, initializer, true) }

func Ret(value Expression) *Return { return NewReturn(value) }

func Asgn(reference *Reference, value Expression) *Assignment { return NewAssignment(reference, value) }

func SelfExpr() *Self { return NewSelf() }

func SuperCall(args ...Expression) *Super { return NewSuper(args) }

func NewExpr(classRef *Reference, args ...Expression) *New { return NewNew(classRef, args) }

func Lit(value any) *Literal { return NewLiteral(value) }

func SendMsg(receiver Expression, selector string, args ...Expression) *Send {
	return NewSend(receiver, selector, args)
}

func IfExpr(condition Expression, then, els *Body) *If { return NewIf(condition, then, els) }

func ThrowExpr(exception Expression) *Throw { return NewThrow(exception) }

func CatchClause(variable string, exceptionType *Reference, body *Body) *Catch {
	return NewCatch(variable, exceptionType, body)
}

func TryExpr(body *Body, catches []*Catch, always *Body) *Try { return NewTry(body, catches, always) }

func Prog(name string, body *Body) *Program { return NewProgram(name, body) }

func TestCase(name string, body *Body) *Test { return NewTest(name, body) }

func Desc(name string, body *Body) *Describe { return NewDescribe(name, body) }
