// Package typetree defines the parsed representation of a SQL type
// descriptor: a tree of scalar and compound nodes, each independently
// nullable, with per-field names and documentation comments on row
// members.
//
// The node set is closed. Scalars cannot carry members by construction;
// the runtime invariant guard only matters for trees decoded from
// external data (see wire.go).
package typetree

// Kind identifies the grammar production a node was built from.
type Kind int

// Kind constants for the five node varieties.
const (
	KindScalar Kind = iota
	KindRow
	KindMap
	KindArray
	KindMultiset
)

// String returns the display name of the kind, which for compound kinds
// is also the node's type name.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "SCALAR"
	case KindRow:
		return "ROW"
	case KindMap:
		return "MAP"
	case KindArray:
		return "ARRAY"
	case KindMultiset:
		return "MULTISET"
	}
	return "UNKNOWN"
}

// Field names assigned to the two members of a map node.
const (
	MapKeyName   = "key"
	MapValueName = "value"
)

// Node is a single node of a parsed type tree. Nodes are constructed
// once, bottom-up, during a parse and are immutable afterwards.
type Node interface {
	// Kind returns the node's variety.
	Kind() Kind
	// TypeName returns the normalized display name: the uppercased base
	// name with parameters and suffix words for scalars, the kind name
	// for compound nodes.
	TypeName() string
	// Nullable reports whether this node, in isolation, admits NULL.
	// Nullability of a compound node and of its members are independent.
	Nullable() bool

	node()
}

// Scalar is an atomic or parameterized type with no nested members,
// e.g. INT, VARCHAR(255), TIMESTAMP(3) WITH LOCAL TIME ZONE.
type Scalar struct {
	Name       string
	IsNullable bool
}

func (s *Scalar) Kind() Kind       { return KindScalar }
func (s *Scalar) TypeName() string { return s.Name }
func (s *Scalar) Nullable() bool   { return s.IsNullable }
func (*Scalar) node()              {}

// Field is one named member of a row node. Comment is empty when the
// descriptor carried no comment, or one that trimmed to nothing.
type Field struct {
	Name    string
	Comment string
	Type    Node
}

// Row is an ordered, named-field record type with at least one field.
type Row struct {
	Fields     []Field
	IsNullable bool
}

func (r *Row) Kind() Kind       { return KindRow }
func (r *Row) TypeName() string { return KindRow.String() }
func (r *Row) Nullable() bool   { return r.IsNullable }
func (*Row) node()              {}

// Map is a key/value pair type with exactly two members.
type Map struct {
	Key        Node
	Value      Node
	IsNullable bool
}

func (m *Map) Kind() Kind       { return KindMap }
func (m *Map) TypeName() string { return KindMap.String() }
func (m *Map) Nullable() bool   { return m.IsNullable }
func (*Map) node()              {}

// Array is a single-element-type container. The element's own
// nullability is carried on the element node itself.
type Array struct {
	Elem       Node
	IsNullable bool
}

func (a *Array) Kind() Kind       { return KindArray }
func (a *Array) TypeName() string { return KindArray.String() }
func (a *Array) Nullable() bool   { return a.IsNullable }
func (*Array) node()              {}

// Multiset is a duplicate-permitting single-element-type container.
type Multiset struct {
	Elem       Node
	IsNullable bool
}

func (m *Multiset) Kind() Kind       { return KindMultiset }
func (m *Multiset) TypeName() string { return KindMultiset.String() }
func (m *Multiset) Nullable() bool   { return m.IsNullable }
func (*Multiset) node()              {}

// Member is a child of a compound node in declaration order. Name is the
// row field name, "key"/"value" for map members, and empty for the
// element of an array or multiset.
type Member struct {
	Name    string
	Comment string
	Type    Node
}

// Members returns the ordered members of a compound node: row fields in
// declaration order, map key then value, the single element for arrays
// and multisets. Scalars have none.
func Members(n Node) []Member {
	switch t := n.(type) {
	case *Row:
		members := make([]Member, len(t.Fields))
		for i, f := range t.Fields {
			members[i] = Member{Name: f.Name, Comment: f.Comment, Type: f.Type}
		}
		return members
	case *Map:
		return []Member{
			{Name: MapKeyName, Type: t.Key},
			{Name: MapValueName, Type: t.Value},
		}
	case *Array:
		return []Member{{Type: t.Elem}}
	case *Multiset:
		return []Member{{Type: t.Elem}}
	}
	return nil
}

// IsCompound reports whether n is a compound node carrying members.
// With the sealed node set a scalar carrying members is unrepresentable,
// so this reduces to a kind check; the equivalent guard for external
// data lives on the wire decoder.
func IsCompound(n Node) bool {
	return n != nil && n.Kind() != KindScalar
}
