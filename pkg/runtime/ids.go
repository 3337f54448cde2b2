package runtime

// Id is a runtime object's opaque, dense identifier. It is a distinct Go
// type from ast.Id so a node identity and an object identity can never be
// passed to the wrong API by accident — the two spaces are disjoint by
// construction, not just by convention.
type Id int64
