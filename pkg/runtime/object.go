package runtime

// Collection is the innerValue shape for wollok.lang.List (Ordered: true)
// and wollok.lang.Set (Ordered: false) — an ordered or unordered sequence
// of member Ids.
type Collection struct {
	Items   []Id
	Ordered bool
}

// RuntimeObject is an identity-based instance: a fresh Id, the
// fully-qualified module name of its class/singleton in the AST, a
// string-keyed attribute map of referent Ids, and an optional typed
// innerValue whose shape depends on ModuleFQN (§4.5).
type RuntimeObject struct {
	id         Id
	moduleFQN  string
	attributes map[string]Id
	innerValue any
}

func newRuntimeObject(id Id, moduleFQN string, innerValue any) *RuntimeObject {
	return &RuntimeObject{
		id:         id,
		moduleFQN:  moduleFQN,
		attributes: make(map[string]Id),
		innerValue: innerValue,
	}
}

func (o *RuntimeObject) Id() Id           { return o.id }
func (o *RuntimeObject) ModuleFQN() string { return o.moduleFQN }

// Get reads an attribute, reporting whether it is set.
func (o *RuntimeObject) Get(attr string) (Id, bool) {
	id, ok := o.attributes[attr]
	return id, ok
}

// Set writes an attribute. Round-trip property (§8): Set(r,k,v);
// Get(r,k) == v.
func (o *RuntimeObject) Set(attr string, value Id) {
	o.attributes[attr] = value
}

// AssertIsNumber returns the numeric scalar, or a TypeError if this
// object's innerValue isn't a wollok.lang.Number.
func (o *RuntimeObject) AssertIsNumber() (float64, error) {
	n, ok := o.innerValue.(float64)
	if !ok {
		return 0, NewTypeError("object %d (%s) is not a Number", o.id, o.moduleFQN)
	}
	return n, nil
}

// AssertIsString returns the string scalar, or a TypeError if this
// object's innerValue isn't a wollok.lang.String.
func (o *RuntimeObject) AssertIsString() (string, error) {
	s, ok := o.innerValue.(string)
	if !ok {
		return "", NewTypeError("object %d (%s) is not a String", o.id, o.moduleFQN)
	}
	return s, nil
}

// AssertIsCollection returns the Collection, or a TypeError if this
// object's innerValue isn't a wollok.lang.List/Set.
func (o *RuntimeObject) AssertIsCollection() (*Collection, error) {
	c, ok := o.innerValue.(*Collection)
	if !ok {
		return nil, NewTypeError("object %d (%s) is not a List or Set", o.id, o.moduleFQN)
	}
	return c, nil
}

// InnerValue exposes the raw discriminant for callers (e.g. the Sound
// state machine) that need to read a plain string/bool rather than go
// through one of the typed asserts above.
func (o *RuntimeObject) InnerValue() any { return o.innerValue }

func (o *RuntimeObject) SetInnerValue(v any) { o.innerValue = v }
