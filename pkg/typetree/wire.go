package typetree

import (
	"encoding/json"
	"fmt"
)

// WireNode is the flat serialized form of a Node, used for JSON and
// YAML output. Unlike the sealed Node set it can represent invalid
// shapes, so decoding validates every structural invariant.
type WireNode struct {
	Kind     string       `json:"kind" yaml:"kind"`
	DataType string       `json:"dataType" yaml:"dataType"`
	Nullable bool         `json:"nullable" yaml:"nullable"`
	Members  []WireMember `json:"members,omitempty" yaml:"members,omitempty"`
}

// WireMember is the serialized form of one compound-node member.
type WireMember struct {
	Name    string   `json:"name,omitempty" yaml:"name,omitempty"`
	Comment string   `json:"comment,omitempty" yaml:"comment,omitempty"`
	Type    WireNode `json:"type" yaml:"type"`
}

// IsCompound reports whether the wire node is a compound node with
// members. A scalar carrying members is an invariant violation, not a
// valid state, and yields an InvariantViolationError.
func (w *WireNode) IsCompound() (bool, error) {
	if w.Kind == KindScalar.String() && len(w.Members) > 0 {
		return false, &InvariantViolationError{
			Message: fmt.Sprintf("scalar node %q carries %d members", w.DataType, len(w.Members)),
		}
	}
	return w.Kind != KindScalar.String() && len(w.Members) > 0, nil
}

// ToWire converts a parsed tree into its serialized form.
func ToWire(n Node) *WireNode {
	w := &WireNode{
		Kind:     n.Kind().String(),
		DataType: n.TypeName(),
		Nullable: n.Nullable(),
	}
	for _, m := range Members(n) {
		w.Members = append(w.Members, WireMember{
			Name:    m.Name,
			Comment: m.Comment,
			Type:    *ToWire(m.Type),
		})
	}
	return w
}

// FromWire rebuilds a Node from its serialized form, enforcing the
// structural invariants the sealed node set guarantees by construction.
func FromWire(w *WireNode) (Node, error) {
	if _, err := w.IsCompound(); err != nil {
		return nil, err
	}

	switch w.Kind {
	case KindScalar.String():
		return &Scalar{Name: w.DataType, IsNullable: w.Nullable}, nil

	case KindRow.String():
		if len(w.Members) == 0 {
			return nil, &InvariantViolationError{Message: "row node has no members"}
		}
		fields := make([]Field, len(w.Members))
		for i := range w.Members {
			t, err := FromWire(&w.Members[i].Type)
			if err != nil {
				return nil, err
			}
			fields[i] = Field{Name: w.Members[i].Name, Comment: w.Members[i].Comment, Type: t}
		}
		return &Row{Fields: fields, IsNullable: w.Nullable}, nil

	case KindMap.String():
		if len(w.Members) != 2 {
			return nil, &InvariantViolationError{
				Message: fmt.Sprintf("map node has %d members, want 2", len(w.Members)),
			}
		}
		key, err := FromWire(&w.Members[0].Type)
		if err != nil {
			return nil, err
		}
		value, err := FromWire(&w.Members[1].Type)
		if err != nil {
			return nil, err
		}
		return &Map{Key: key, Value: value, IsNullable: w.Nullable}, nil

	case KindArray.String(), KindMultiset.String():
		if len(w.Members) != 1 {
			return nil, &InvariantViolationError{
				Message: fmt.Sprintf("%s node has %d members, want 1", w.Kind, len(w.Members)),
			}
		}
		elem, err := FromWire(&w.Members[0].Type)
		if err != nil {
			return nil, err
		}
		if w.Kind == KindArray.String() {
			return &Array{Elem: elem, IsNullable: w.Nullable}, nil
		}
		return &Multiset{Elem: elem, IsNullable: w.Nullable}, nil
	}
	return nil, fmt.Errorf("unknown node kind %q", w.Kind)
}

// MarshalJSON serializes a tree as indented JSON.
func MarshalJSON(n Node) ([]byte, error) {
	return json.MarshalIndent(ToWire(n), "", "  ")
}

// UnmarshalJSON deserializes and validates a tree.
func UnmarshalJSON(data []byte) (Node, error) {
	var w WireNode
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}
	return FromWire(&w)
}
