package ast

import (
	"encoding/json"
	"fmt"
)

// DecodeNode reconstructs a Node tree from the JSON shape every variant's
// json tags describe (§3 ambient addition). Unlike New*, it preserves
// the Ids present in data rather than allocating fresh ones, so a
// decoded Environment's node identities match whatever produced the
// fixture (a test, or a Problem's nodeId referencing back into it).
func DecodeNode(data []byte) (Node, error) {
	if string(data) == "null" {
		return nil, nil
	}
	var envelope struct {
		Type NodeKind `json:"type"`
		Id   Id       `json:"id"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("ast: decode node envelope: %w", err)
	}

	switch envelope.Type {
	case KindPackage:
		var raw struct {
			Name    string            `json:"name"`
			Members []json.RawMessage `json:"members"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		members, err := decodeMembers(raw.Members)
		if err != nil {
			return nil, err
		}
		n := NewPackage(raw.Name, members)
		n.NodeId = envelope.Id
		return n, nil

	case KindReference:
		var raw struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		n := NewReference(raw.Name)
		n.NodeId = envelope.Id
		return n, nil

	case KindImport:
		var raw struct {
			Reference json.RawMessage `json:"reference"`
			Alias     string          `json:"alias"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		ref, err := decodeReference(raw.Reference)
		if err != nil {
			return nil, err
		}
		n := NewImport(ref, raw.Alias)
		n.NodeId = envelope.Id
		return n, nil

	case KindClass:
		var raw struct {
			Name       string            `json:"name"`
			Superclass json.RawMessage   `json:"superclass"`
			Mixins     []json.RawMessage `json:"mixins"`
			Members    []json.RawMessage `json:"members"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		superclass, err := decodeReference(raw.Superclass)
		if err != nil {
			return nil, err
		}
		mixins := make([]*Reference, len(raw.Mixins))
		for i, m := range raw.Mixins {
			mixins[i], err = decodeReference(m)
			if err != nil {
				return nil, err
			}
		}
		members, err := decodeClassMembers(raw.Members)
		if err != nil {
			return nil, err
		}
		n := NewClass(raw.Name, superclass, mixins, members)
		n.NodeId = envelope.Id
		return n, nil

	case KindSingleton:
		var raw struct {
			Name    string            `json:"name"`
			Members []json.RawMessage `json:"members"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		members, err := decodeClassMembers(raw.Members)
		if err != nil {
			return nil, err
		}
		n := NewSingleton(raw.Name, members)
		n.NodeId = envelope.Id
		return n, nil

	case KindMixin:
		var raw struct {
			Name    string            `json:"name"`
			Members []json.RawMessage `json:"members"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		members, err := decodeClassMembers(raw.Members)
		if err != nil {
			return nil, err
		}
		n := NewMixin(raw.Name, members)
		n.NodeId = envelope.Id
		return n, nil

	case KindField:
		var raw struct {
			Name        string          `json:"name"`
			Initializer json.RawMessage `json:"initializer"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		init, err := decodeExpression(raw.Initializer)
		if err != nil {
			return nil, err
		}
		n := NewField(raw.Name, init)
		n.NodeId = envelope.Id
		return n, nil

	case KindParameter:
		var raw struct {
			Name     string `json:"name"`
			IsVarArg bool   `json:"isVarArg"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		n := NewParameter(raw.Name, raw.IsVarArg)
		n.NodeId = envelope.Id
		return n, nil

	case KindMethod:
		var raw struct {
			Name       string            `json:"name"`
			Parameters []json.RawMessage `json:"parameters"`
			Body       json.RawMessage   `json:"body"`
			IsOverride bool              `json:"isOverride"`
			IsNative   bool              `json:"isNative"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		params, err := decodeParameters(raw.Parameters)
		if err != nil {
			return nil, err
		}
		body, err := decodeBody(raw.Body)
		if err != nil {
			return nil, err
		}
		n := NewMethod(raw.Name, params, body, raw.IsOverride, raw.IsNative)
		n.NodeId = envelope.Id
		return n, nil

	case KindConstructor:
		var raw struct {
			Parameters []json.RawMessage `json:"parameters"`
			Body       json.RawMessage   `json:"body"`
			BaseCall   json.RawMessage   `json:"baseCall"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		params, err := decodeParameters(raw.Parameters)
		if err != nil {
			return nil, err
		}
		body, err := decodeBody(raw.Body)
		if err != nil {
			return nil, err
		}
		baseCall, err := decodeSuper(raw.BaseCall)
		if err != nil {
			return nil, err
		}
		n := NewConstructor(params, body, baseCall)
		n.NodeId = envelope.Id
		return n, nil

	case KindBody:
		var raw struct {
			Sentences []json.RawMessage `json:"sentences"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		sentences, err := decodeSentences(raw.Sentences)
		if err != nil {
			return nil, err
		}
		n := NewBody(sentences)
		n.NodeId = envelope.Id
		return n, nil

	case KindVariable:
		var raw struct {
			Name        string          `json:"name"`
			Initializer json.RawMessage `json:"initializer"`
			IsConst     bool            `json:"isConst"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		init, err := decodeExpression(raw.Initializer)
		if err != nil {
			return nil, err
		}
		n := NewVariable(raw.Name, init, raw.IsConst)
		n.NodeId = envelope.Id
		return n, nil

	case KindReturn:
		var raw struct {
			Value json.RawMessage `json:"value"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		value, err := decodeExpression(raw.Value)
		if err != nil {
			return nil, err
		}
		n := NewReturn(value)
		n.NodeId = envelope.Id
		return n, nil

	case KindAssignment:
		var raw struct {
			Reference json.RawMessage `json:"reference"`
			Value     json.RawMessage `json:"value"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		ref, err := decodeReference(raw.Reference)
		if err != nil {
			return nil, err
		}
		value, err := decodeExpression(raw.Value)
		if err != nil {
			return nil, err
		}
		n := NewAssignment(ref, value)
		n.NodeId = envelope.Id
		return n, nil

	case KindSelf:
		n := NewSelf()
		n.NodeId = envelope.Id
		return n, nil

	case KindSuper:
		var raw struct {
			Arguments []json.RawMessage `json:"arguments"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		args, err := decodeExpressions(raw.Arguments)
		if err != nil {
			return nil, err
		}
		n := NewSuper(args)
		n.NodeId = envelope.Id
		return n, nil

	case KindNew:
		var raw struct {
			ClassRef  json.RawMessage   `json:"classRef"`
			Arguments []json.RawMessage `json:"arguments"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		classRef, err := decodeReference(raw.ClassRef)
		if err != nil {
			return nil, err
		}
		args, err := decodeExpressions(raw.Arguments)
		if err != nil {
			return nil, err
		}
		n := NewNew(classRef, args)
		n.NodeId = envelope.Id
		return n, nil

	case KindLiteral:
		var raw struct {
			Value any `json:"value"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		n := NewLiteral(raw.Value)
		n.NodeId = envelope.Id
		return n, nil

	case KindSend:
		var raw struct {
			Receiver  json.RawMessage   `json:"receiver"`
			Selector  string            `json:"selector"`
			Arguments []json.RawMessage `json:"arguments"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		receiver, err := decodeExpression(raw.Receiver)
		if err != nil {
			return nil, err
		}
		args, err := decodeExpressions(raw.Arguments)
		if err != nil {
			return nil, err
		}
		n := NewSend(receiver, raw.Selector, args)
		n.NodeId = envelope.Id
		return n, nil

	case KindIf:
		var raw struct {
			Condition json.RawMessage `json:"condition"`
			Then      json.RawMessage `json:"then"`
			Else      json.RawMessage `json:"else"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		condition, err := decodeExpression(raw.Condition)
		if err != nil {
			return nil, err
		}
		thenBody, err := decodeBody(raw.Then)
		if err != nil {
			return nil, err
		}
		elseBody, err := decodeBody(raw.Else)
		if err != nil {
			return nil, err
		}
		n := NewIf(condition, thenBody, elseBody)
		n.NodeId = envelope.Id
		return n, nil

	case KindThrow:
		var raw struct {
			Exception json.RawMessage `json:"exception"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		exception, err := decodeExpression(raw.Exception)
		if err != nil {
			return nil, err
		}
		n := NewThrow(exception)
		n.NodeId = envelope.Id
		return n, nil

	case KindCatch:
		c, err := decodeCatchBody(data)
		if err != nil {
			return nil, err
		}
		c.NodeId = envelope.Id
		return c, nil

	case KindTry:
		var raw struct {
			Body    json.RawMessage   `json:"body"`
			Catches []json.RawMessage `json:"catches"`
			Always  json.RawMessage   `json:"always"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		body, err := decodeBody(raw.Body)
		if err != nil {
			return nil, err
		}
		catches := make([]*Catch, len(raw.Catches))
		for i, c := range raw.Catches {
			cn, err := DecodeNode(c)
			if err != nil {
				return nil, err
			}
			catch, ok := cn.(*Catch)
			if !ok {
				return nil, fmt.Errorf("ast: expected a Catch, got %T", cn)
			}
			catches[i] = catch
		}
		always, err := decodeBody(raw.Always)
		if err != nil {
			return nil, err
		}
		n := NewTry(body, catches, always)
		n.NodeId = envelope.Id
		return n, nil

	case KindProgram:
		var raw struct {
			Name string          `json:"name"`
			Body json.RawMessage `json:"body"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		body, err := decodeBody(raw.Body)
		if err != nil {
			return nil, err
		}
		n := NewProgram(raw.Name, body)
		n.NodeId = envelope.Id
		return n, nil

	case KindTest:
		var raw struct {
			Name string          `json:"name"`
			Body json.RawMessage `json:"body"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		body, err := decodeBody(raw.Body)
		if err != nil {
			return nil, err
		}
		n := NewTest(raw.Name, body)
		n.NodeId = envelope.Id
		return n, nil

	case KindDescribe:
		var raw struct {
			Name string          `json:"name"`
			Body json.RawMessage `json:"body"`
		}
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		body, err := decodeBody(raw.Body)
		if err != nil {
			return nil, err
		}
		n := NewDescribe(raw.Name, body)
		n.NodeId = envelope.Id
		return n, nil

	default:
		return nil, fmt.Errorf("ast: unknown node kind %q", envelope.Type)
	}
}

func decodeCatchBody(data json.RawMessage) (*Catch, error) {
	var raw struct {
		Variable      string          `json:"variable"`
		ExceptionType json.RawMessage `json:"exceptionType"`
		Body          json.RawMessage `json:"body"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	exceptionType, err := decodeReference(raw.ExceptionType)
	if err != nil {
		return nil, err
	}
	body, err := decodeBody(raw.Body)
	if err != nil {
		return nil, err
	}
	return NewCatch(raw.Variable, exceptionType, body), nil
}

func isEmptyRaw(data json.RawMessage) bool {
	return len(data) == 0 || string(data) == "null"
}

func decodeReference(data json.RawMessage) (*Reference, error) {
	if isEmptyRaw(data) {
		return nil, nil
	}
	n, err := DecodeNode(data)
	if err != nil {
		return nil, err
	}
	ref, ok := n.(*Reference)
	if !ok {
		return nil, fmt.Errorf("ast: expected a Reference, got %T", n)
	}
	return ref, nil
}

func decodeSuper(data json.RawMessage) (*Super, error) {
	if isEmptyRaw(data) {
		return nil, nil
	}
	n, err := DecodeNode(data)
	if err != nil {
		return nil, err
	}
	s, ok := n.(*Super)
	if !ok {
		return nil, fmt.Errorf("ast: expected a Super, got %T", n)
	}
	return s, nil
}

func decodeBody(data json.RawMessage) (*Body, error) {
	if isEmptyRaw(data) {
		return nil, nil
	}
	n, err := DecodeNode(data)
	if err != nil {
		return nil, err
	}
	b, ok := n.(*Body)
	if !ok {
		return nil, fmt.Errorf("ast: expected a Body, got %T", n)
	}
	return b, nil
}

func decodeExpression(data json.RawMessage) (Expression, error) {
	if isEmptyRaw(data) {
		return nil, nil
	}
	n, err := DecodeNode(data)
	if err != nil {
		return nil, err
	}
	e, ok := n.(Expression)
	if !ok {
		return nil, fmt.Errorf("ast: expected an Expression, got %T", n)
	}
	return e, nil
}

func decodeExpressions(items []json.RawMessage) ([]Expression, error) {
	if items == nil {
		return nil, nil
	}
	out := make([]Expression, len(items))
	for i, item := range items {
		e, err := decodeExpression(item)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func decodeSentences(items []json.RawMessage) ([]Sentence, error) {
	out := make([]Sentence, len(items))
	for i, item := range items {
		n, err := DecodeNode(item)
		if err != nil {
			return nil, err
		}
		s, ok := n.(Sentence)
		if !ok {
			return nil, fmt.Errorf("ast: expected a Sentence, got %T", n)
		}
		out[i] = s
	}
	return out, nil
}

func decodeMembers(items []json.RawMessage) ([]Member, error) {
	out := make([]Member, len(items))
	for i, item := range items {
		n, err := DecodeNode(item)
		if err != nil {
			return nil, err
		}
		m, ok := n.(Member)
		if !ok {
			return nil, fmt.Errorf("ast: expected a Member, got %T", n)
		}
		out[i] = m
	}
	return out, nil
}

func decodeClassMembers(items []json.RawMessage) ([]ClassMember, error) {
	out := make([]ClassMember, len(items))
	for i, item := range items {
		n, err := DecodeNode(item)
		if err != nil {
			return nil, err
		}
		cm, ok := n.(ClassMember)
		if !ok {
			return nil, fmt.Errorf("ast: expected a ClassMember, got %T", n)
		}
		out[i] = cm
	}
	return out, nil
}

func decodeParameters(items []json.RawMessage) ([]*Parameter, error) {
	out := make([]*Parameter, len(items))
	for i, item := range items {
		n, err := DecodeNode(item)
		if err != nil {
			return nil, err
		}
		p, ok := n.(*Parameter)
		if !ok {
			return nil, fmt.Errorf("ast: expected a Parameter, got %T", n)
		}
		out[i] = p
	}
	return out, nil
}

// DecodeEnvironment decodes a JSON Package tree and immediately builds
// its Environment (parent index, FQN index) — the shape
// cmd/wollokvalidate reads from a file or stdin.
func DecodeEnvironment(data []byte) (*Environment, error) {
	n, err := DecodeNode(data)
	if err != nil {
		return nil, err
	}
	root, ok := n.(*Package)
	if !ok {
		return nil, fmt.Errorf("ast: expected a Package at the document root, got %T", n)
	}
	return NewEnvironment(root)
}
