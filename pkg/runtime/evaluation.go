package runtime

import "fmt"

// Frame owns one operand stack of Ids. "Return a value" means push onto
// the current frame's operand stack; "return void" means push the Void
// sentinel.
type Frame struct {
	operands []Id
}

func NewFrame() *Frame { return &Frame{} }

func (f *Frame) Push(id Id) { f.operands = append(f.operands, id) }

func (f *Frame) Pop() (Id, error) {
	if len(f.operands) == 0 {
		return 0, fmt.Errorf("runtime: pop from an empty operand stack")
	}
	last := len(f.operands) - 1
	id := f.operands[last]
	f.operands = f.operands[:last]
	return id, nil
}

// Depth reports the number of Ids currently on the stack — used by the
// balance check natives are wrapped with (§9 design notes).
func (f *Frame) Depth() int { return len(f.operands) }

// Sentinels are the well-known, process-wide-per-Evaluation constants:
// the sole instances of their respective types.
type Sentinels struct {
	True  Id
	False Id
	Null  Id
	Void  Id
}

// MessageSender is the contract an external interpreter satisfies so that
// natives can re-enter evaluation (sendMessage, §4.6). The interpreter's
// evaluation loop itself is out of scope for this repository — only the
// calling convention crossing into it is specified here.
type MessageSender interface {
	SendMessage(eval *Evaluation, selector string, receiver Id, args ...Id) error
}

// Evaluation owns the runtime object table and the frame stack for one
// evaluation run. Sentinel Ids live on the Evaluation instance, not as
// package globals, so multiple evaluations may coexist (§9).
type Evaluation struct {
	objects     map[Id]*RuntimeObject
	nextId      Id
	frames      []*Frame
	Sentinels   Sentinels
	Interpreter MessageSender
	wellKnown   map[string]Id
}

// NewEvaluation allocates a fresh Evaluation with its sentinel objects
// created and registered, and a single initial Frame pushed.
func NewEvaluation() *Evaluation {
	e := &Evaluation{objects: make(map[Id]*RuntimeObject)}
	e.Sentinels.True = e.register(newRuntimeObject(e.allocId(), FQNBoolean, true))
	e.Sentinels.False = e.register(newRuntimeObject(e.allocId(), FQNBoolean, false))
	e.Sentinels.Null = e.register(newRuntimeObject(e.allocId(), fqnNull, nil))
	e.Sentinels.Void = e.register(newRuntimeObject(e.allocId(), fqnVoid, nil))
	e.PushFrame()
	return e
}

func (e *Evaluation) allocId() Id {
	e.nextId++
	return e.nextId
}

func (e *Evaluation) register(obj *RuntimeObject) Id {
	e.objects[obj.Id()] = obj
	return obj.Id()
}

// CreateInstance allocates and registers a fresh RuntimeObject for
// moduleFQN with the given innerValue (nil for ordinary objects with no
// scalar payload).
func (e *Evaluation) CreateInstance(moduleFQN string, innerValue any) *RuntimeObject {
	obj := newRuntimeObject(e.allocId(), moduleFQN, innerValue)
	e.register(obj)
	return obj
}

// Instance looks up a registered RuntimeObject by Id in O(1).
func (e *Evaluation) Instance(id Id) (*RuntimeObject, bool) {
	obj, ok := e.objects[id]
	return obj, ok
}

// Bool maps a Go bool to the matching sentinel Id.
func (e *Evaluation) Bool(v bool) Id {
	if v {
		return e.Sentinels.True
	}
	return e.Sentinels.False
}

// IsTrue reports whether id is the True sentinel.
func (e *Evaluation) IsTrue(id Id) bool { return id == e.Sentinels.True }

// PushFrame starts a new Frame (e.g. on method invocation) and makes it
// current.
func (e *Evaluation) PushFrame() *Frame {
	f := NewFrame()
	e.frames = append(e.frames, f)
	return f
}

// PopFrame discards the current Frame, returning it.
func (e *Evaluation) PopFrame() (*Frame, error) {
	if len(e.frames) == 0 {
		return nil, fmt.Errorf("runtime: pop from an empty frame stack")
	}
	last := len(e.frames) - 1
	f := e.frames[last]
	e.frames = e.frames[:last]
	return f, nil
}

// CurrentFrame returns the frame natives observe and mutate.
func (e *Evaluation) CurrentFrame() *Frame {
	if len(e.frames) == 0 {
		return nil
	}
	return e.frames[len(e.frames)-1]
}

// WellKnownSingleton looks up the instance Id registered for a module's
// sole singleton (io, game, gameMirror) so natives that forward to them
// don't need the AST environment to resolve an FQN to an instance.
func (e *Evaluation) WellKnownSingleton(moduleFQN string) (Id, bool) {
	id, ok := e.wellKnown[moduleFQN]
	return id, ok
}

// SetWellKnownSingleton registers the sole instance of a singleton module
// so it can later be resolved by WellKnownSingleton. Called once by
// whoever bootstraps the Evaluation, before any native forwards to it.
func (e *Evaluation) SetWellKnownSingleton(moduleFQN string, id Id) {
	if e.wellKnown == nil {
		e.wellKnown = make(map[string]Id)
	}
	e.wellKnown[moduleFQN] = id
}

// SendMessage drives the external interpreter to completion of a single
// message send, leaving the result on the current operand stack.
// Re-entrance is permitted: natives may call this from within another
// native's execution.
func (e *Evaluation) SendMessage(selector string, receiver Id, args ...Id) error {
	if e.Interpreter == nil {
		return fmt.Errorf("runtime: no interpreter wired to this evaluation; cannot send %q", selector)
	}
	return e.Interpreter.SendMessage(e, selector, receiver, args...)
}
