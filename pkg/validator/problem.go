package validator

import (
	"encoding/json"

	"wollokvalidate/pkg/ast"
)

// Level distinguishes a Problem that merely warrants attention from one
// that makes the program invalid.
type Level string

const (
	Warning Level = "Warning"
	Error   Level = "Error"
)

// Problem is a single diagnostic: the rule code that produced it, its
// level, and the offending node. A Problem is data, never an exception —
// the driver never aborts traversal because of one.
type Problem struct {
	Code  string
	Level Level
	Node  ast.Node
}

// problemJSON is the on-the-wire shape (§6): the node itself isn't
// serializable (it's a live interface value), so only its Id travels.
type problemJSON struct {
	Code   string   `json:"code"`
	Level  Level    `json:"level"`
	NodeId ast.Id   `json:"nodeId"`
	Kind   ast.NodeKind `json:"nodeKind"`
}

func (p Problem) MarshalJSON() ([]byte, error) {
	var kind ast.NodeKind
	var id ast.Id
	if p.Node != nil {
		kind = p.Node.Kind()
		id = p.Node.Id()
	}
	return json.Marshal(problemJSON{Code: p.Code, Level: p.Level, NodeId: id, Kind: kind})
}
