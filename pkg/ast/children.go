package ast

// Children enumerates a node's direct children in source order. It is the
// single place that knows how each variant's attributes relate to the
// tree shape; both Environment's parent-index construction and
// pkg/tree.Reduce build on it, so there is exactly one definition of
// "what are this node's children" in the whole repository.
func Children(n Node) []Node {
	switch t := n.(type) {
	case *Environment:
		if t.root == nil {
			return nil
		}
		return []Node{t.root}
	case *Package:
		out := make([]Node, 0, len(t.Members))
		for _, m := range t.Members {
			out = append(out, m)
		}
		return out
	case *Import:
		if t.Reference == nil {
			return nil
		}
		return []Node{t.Reference}
	case *Class:
		out := []Node{}
		if t.Superclass != nil {
			out = append(out, t.Superclass)
		}
		for _, m := range t.Mixins {
			out = append(out, m)
		}
		for _, m := range t.Members {
			out = append(out, m)
		}
		return out
	case *Singleton:
		out := make([]Node, 0, len(t.Members))
		for _, m := range t.Members {
			out = append(out, m)
		}
		return out
	case *Mixin:
		out := make([]Node, 0, len(t.Members))
		for _, m := range t.Members {
			out = append(out, m)
		}
		return out
	case *Field:
		if t.Initializer == nil {
			return nil
		}
		return []Node{t.Initializer}
	case *Method:
		out := make([]Node, 0, len(t.Parameters)+1)
		for _, p := range t.Parameters {
			out = append(out, p)
		}
		if t.Body != nil {
			out = append(out, t.Body)
		}
		return out
	case *Constructor:
		out := make([]Node, 0, len(t.Parameters)+2)
		for _, p := range t.Parameters {
			out = append(out, p)
		}
		if t.BaseCall != nil {
			out = append(out, t.BaseCall)
		}
		if t.Body != nil {
			out = append(out, t.Body)
		}
		return out
	case *Parameter:
		return nil
	case *Body:
		out := make([]Node, 0, len(t.Sentences))
		for _, s := range t.Sentences {
			out = append(out, s)
		}
		return out
	case *Variable:
		if t.Initializer == nil {
			return nil
		}
		return []Node{t.Initializer}
	case *Return:
		if t.Value == nil {
			return nil
		}
		return []Node{t.Value}
	case *Assignment:
		out := []Node{}
		if t.Reference != nil {
			out = append(out, t.Reference)
		}
		if t.Value != nil {
			out = append(out, t.Value)
		}
		return out
	case *Reference:
		return nil
	case *Self:
		return nil
	case *Super:
		out := make([]Node, 0, len(t.Arguments))
		for _, a := range t.Arguments {
			out = append(out, a)
		}
		return out
	case *New:
		out := make([]Node, 0, len(t.Arguments)+1)
		if t.ClassRef != nil {
			out = append(out, t.ClassRef)
		}
		for _, a := range t.Arguments {
			out = append(out, a)
		}
		return out
	case *Literal:
		return nil
	case *Send:
		out := make([]Node, 0, len(t.Arguments)+1)
		if t.Receiver != nil {
			out = append(out, t.Receiver)
		}
		for _, a := range t.Arguments {
			out = append(out, a)
		}
		return out
	case *If:
		out := []Node{}
		if t.Condition != nil {
			out = append(out, t.Condition)
		}
		if t.Then != nil {
			out = append(out, t.Then)
		}
		if t.Else != nil {
			out = append(out, t.Else)
		}
		return out
	case *Throw:
		if t.Exception == nil {
			return nil
		}
		return []Node{t.Exception}
	case *Catch:
		out := []Node{}
		if t.ExceptionType != nil {
			out = append(out, t.ExceptionType)
		}
		if t.Body != nil {
			out = append(out, t.Body)
		}
		return out
	case *Try:
		out := []Node{}
		if t.Body != nil {
			out = append(out, t.Body)
		}
		for _, c := range t.Catches {
			out = append(out, c)
		}
		if t.Always != nil {
			out = append(out, t.Always)
		}
		return out
	case *Program:
		if t.Body == nil {
			return nil
		}
		return []Node{t.Body}
	case *Test:
		if t.Body == nil {
			return nil
		}
		return []Node{t.Body}
	case *Describe:
		if t.Body == nil {
			return nil
		}
		return []Node{t.Body}
	default:
		return nil
	}
}
