// Package natives implements the host side of the native-calling
// convention (§4.6): Go functions that stand in for methods declared
// native in the Language standard library, each required to leave
// exactly one Id on the current Frame's operand stack before
// returning.
package natives

import "wollokvalidate/pkg/runtime"

// Native is the Go signature of a native method. It receives the
// already-resolved self and argument objects, matching the teacher's
// NativeFunctionValue.Impl signature adapted from a single return Value
// to a push onto the operand stack.
type Native func(eval *runtime.Evaluation, self *runtime.RuntimeObject, args []*runtime.RuntimeObject) error

// Invoke resolves selfId/argIds to RuntimeObjects, calls n, and performs
// the stack-balance check, which runs on every call: the current Frame must end exactly
// one Id deeper than it started. A native that forgets to push, or that
// pushes more than once, is a bug in this package, not in caller code.
func Invoke(eval *runtime.Evaluation, n Native, selfId runtime.Id, argIds ...runtime.Id) error {
	self, ok := eval.Instance(selfId)
	if !ok {
		return runtime.NewTypeError("natives: no such object %d", selfId)
	}
	args := make([]*runtime.RuntimeObject, len(argIds))
	for i, id := range argIds {
		obj, ok := eval.Instance(id)
		if !ok {
			return runtime.NewTypeError("natives: no such object %d", id)
		}
		args[i] = obj
	}
	frame := eval.CurrentFrame()
	depthBefore := frame.Depth()
	if err := n(eval, self, args); err != nil {
		return err
	}
	if frame.Depth() != depthBefore+1 {
		return runtime.NewTypeError(
			"natives: operand stack imbalance: expected depth %d after native call, got %d",
			depthBefore+1, frame.Depth())
	}
	return nil
}

// redirectTo forwards a native's arguments on to another receiver by
// re-sending selector, re-entering the external interpreter via
// eval.SendMessage. When discardResult is true the forwarded call's
// return value is popped and replaced with Void — used when the
// Language-level native returns void but the thing it forwards to
// doesn't.
func redirectTo(eval *runtime.Evaluation, receiverFQN, selector string, args []*runtime.RuntimeObject, discardResult bool) error {
	receiverId, ok := eval.WellKnownSingleton(receiverFQN)
	if !ok {
		return runtime.NewTypeError("natives: no %s singleton registered with this evaluation", receiverFQN)
	}
	frame := eval.CurrentFrame()
	if err := eval.SendMessage(selector, receiverId, idsOf(args)...); err != nil {
		return err
	}
	if discardResult {
		if _, err := frame.Pop(); err != nil {
			return err
		}
		frame.Push(eval.Sentinels.Void)
	}
	return nil
}

// forwardWithSelector builds a Native that forwards verbatim to another
// singleton's method of a possibly different name, discarding whatever
// that method answers and returning void — the shape of addVisualCharacter,
// whenCollideDo, onTick, whenKeyPressedDo and friends (§4.6).
func forwardWithSelector(targetFQN, targetSelector string) Native {
	return func(eval *runtime.Evaluation, self *runtime.RuntimeObject, args []*runtime.RuntimeObject) error {
		return redirectTo(eval, targetFQN, targetSelector, args, true)
	}
}

func idsOf(objs []*runtime.RuntimeObject) []runtime.Id {
	ids := make([]runtime.Id, len(objs))
	for i, o := range objs {
		ids[i] = o.Id()
	}
	return ids
}

func isNull(eval *runtime.Evaluation, obj *runtime.RuntimeObject) bool {
	return obj.Id() == eval.Sentinels.Null
}

// collectionAttr reads the List/Set stored at attr on obj, creating an
// empty wollok.lang.List and storing it back when absent and
// createIfAbsent is set. Shared by game's visuals list and Sound's
// game-level sounds list.
func collectionAttr(eval *runtime.Evaluation, obj *runtime.RuntimeObject, attr string, createIfAbsent bool) (*runtime.Collection, error) {
	if id, ok := obj.Get(attr); ok {
		inst, ok := eval.Instance(id)
		if !ok {
			return nil, runtime.NewTypeError("natives: dangling %s reference on object %d", attr, obj.Id())
		}
		return inst.AssertIsCollection()
	}
	if !createIfAbsent {
		return &runtime.Collection{Ordered: true}, nil
	}
	inst := eval.CreateInstance(runtime.FQNList, &runtime.Collection{Ordered: true})
	obj.Set(attr, inst.Id())
	return inst.AssertIsCollection()
}

// property builds a Native implementing the optional-argument
// getter/setter convention (§4.6): called with one argument, it sets
// attr and returns void; called with none, it returns the current value
// or Null when unset.
func property(attr string) Native {
	return func(eval *runtime.Evaluation, self *runtime.RuntimeObject, args []*runtime.RuntimeObject) error {
		frame := eval.CurrentFrame()
		if len(args) > 0 {
			self.Set(attr, args[0].Id())
			frame.Push(eval.Sentinels.Void)
			return nil
		}
		if id, ok := self.Get(attr); ok {
			frame.Push(id)
		} else {
			frame.Push(eval.Sentinels.Null)
		}
		return nil
	}
}

// setter builds a Native that always takes exactly one argument, stores
// it at attr, and returns void — ground/boardGround/doCellSize and the
// other game configuration natives that have no corresponding getter.
func setter(attr string) Native {
	return func(eval *runtime.Evaluation, self *runtime.RuntimeObject, args []*runtime.RuntimeObject) error {
		if len(args) == 0 {
			return runtime.NewTypeError("natives: %s expects one argument", attr)
		}
		self.Set(attr, args[0].Id())
		eval.CurrentFrame().Push(eval.Sentinels.Void)
		return nil
	}
}
