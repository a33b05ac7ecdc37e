// Package kind defines node kind tags, the category lattice they belong to and
// the per-kind field layout shared by the native service and the engine.
//
// The tables themselves live in kind_gen.go, generated from schema/nodes.yaml.
package kind

import "strconv"

//go:generate go run ../../tools/astgen -schema schema/nodes.yaml -kind kind_gen.go -nodes ../ast/nodes_gen.go

// Kind is the discriminator identifying the concrete subtype of a native node.
type Kind uint16

// Category is a node class in the single-inheritance taxonomy.
type Category uint8

// Categories, roots first.
const (
	CategoryNode Category = iota
	CategoryExpression
	CategoryLiteral
	CategoryTypeNode
	CategoryStatement
	CategoryDeclaration
)

var categoryNames = [...]string{
	CategoryNode:        "Node",
	CategoryExpression:  "Expression",
	CategoryLiteral:     "Literal",
	CategoryTypeNode:    "TypeNode",
	CategoryStatement:   "Statement",
	CategoryDeclaration: "Declaration",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}

	return "Category(" + strconv.Itoa(int(c)) + ")"
}

// Super returns the direct parent category. CategoryNode has none.
func (c Category) Super() (Category, bool) {
	switch c {
	case CategoryLiteral, CategoryTypeNode:
		return CategoryExpression, true
	case CategoryDeclaration:
		return CategoryStatement, true
	case CategoryExpression, CategoryStatement:
		return CategoryNode, true
	default:
		return CategoryNode, false
	}
}

// Includes reports whether other is c or one of its descendants.
func (c Category) Includes(other Category) bool {
	for {
		if other == c {
			return true
		}

		parent, ok := other.Super()
		if !ok {
			return false
		}

		other = parent
	}
}

// Contains reports whether nodes of kind k belong to c.
func (c Category) Contains(k Kind) bool {
	if !k.Valid() {
		return false
	}

	return c.Includes(specs[k].Category)
}

// ParseCategory resolves a category by name.
func ParseCategory(name string) (Category, bool) {
	for idx, candidate := range categoryNames {
		if candidate == name {
			return Category(idx), true
		}
	}

	return CategoryNode, false
}

// FieldType is the value shape stored in a field.
type FieldType uint8

// Field value shapes.
const (
	FieldNode FieldType = iota
	FieldNodes
	FieldString
	FieldInt
	FieldBool
)

var fieldTypeNames = [...]string{
	FieldNode:   "node",
	FieldNodes:  "nodes",
	FieldString: "string",
	FieldInt:    "int",
	FieldBool:   "bool",
}

func (t FieldType) String() string {
	if int(t) < len(fieldTypeNames) {
		return fieldTypeNames[t]
	}

	return "FieldType(" + strconv.Itoa(int(t)) + ")"
}

// IsNode reports whether the field holds one or more child nodes.
func (t FieldType) IsNode() bool { return t == FieldNode || t == FieldNodes }

// FieldSpec describes one field of a kind, in declaration order.
type FieldSpec struct {
	Name     string
	Type     FieldType
	Optional bool

	// Accepts is the category a child must belong to. Ignored when Kind is set.
	Accepts Category

	// Kind restricts the slot to one concrete kind.
	Kind Kind
}

// Accept reports whether a child of kind k may occupy this slot.
func (f FieldSpec) Accept(k Kind) bool {
	if !f.Type.IsNode() {
		return false
	}

	if f.Kind != Invalid {
		return k == f.Kind || Canonical(k) == f.Kind
	}

	return f.Accepts.Contains(k)
}

// Expect names what the slot accepts, for diagnostics.
func (f FieldSpec) Expect() string {
	if f.Kind != Invalid {
		return f.Kind.String()
	}

	return f.Accepts.String()
}

// Spec is the schema entry of one kind.
type Spec struct {
	Name     string
	Category Category
	Fields   []FieldSpec

	// Stub kinds have a native layout but no typed wrapper yet.
	Stub bool

	// Reindex kinds need their whole subtree re-linked after a rebuild.
	Reindex bool

	// RepresentedBy names the kind this one is wrapped as. Invalid means itself.
	RepresentedBy Kind
}

// Field returns the field spec by name.
func (s Spec) Field(name string) (FieldSpec, int, bool) {
	for idx, f := range s.Fields {
		if f.Name == name {
			return f, idx, true
		}
	}

	return FieldSpec{}, -1, false
}

// Valid reports whether k names a known kind.
func (k Kind) Valid() bool { return k > Invalid && k < numKinds }

func (k Kind) String() string {
	if k.Valid() {
		return specs[k].Name
	}

	if k == Invalid {
		return "Invalid"
	}

	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Spec returns the schema entry of k, or the zero Spec for unknown kinds.
func (k Kind) Spec() Spec {
	if !k.Valid() {
		return Spec{}
	}

	return specs[k]
}

// Category returns the category of k.
func (k Kind) Category() Category { return k.Spec().Category }

// IsStub reports whether k has no typed wrapper.
func (k Kind) IsStub() bool { return k.Spec().Stub }

// Canonical maps k to the representative kind it is wrapped as. The mapping is
// total: kinds without a representative map to themselves.
func Canonical(k Kind) Kind {
	if k.Valid() && specs[k].RepresentedBy != Invalid {
		return specs[k].RepresentedBy
	}

	return k
}

// Lookup resolves a kind by name.
func Lookup(name string) (Kind, bool) {
	k, ok := byName[name]

	return k, ok
}

// All returns every valid kind in schema order.
func All() []Kind {
	out := make([]Kind, 0, numKinds-1)
	for k := Invalid + 1; k < numKinds; k++ {
		out = append(out, k)
	}

	return out
}

// Count is the number of valid kinds.
func Count() int { return int(numKinds) - 1 }

var byName = func() map[string]Kind {
	index := make(map[string]Kind, numKinds)
	for k := Invalid + 1; k < numKinds; k++ {
		index[specs[k].Name] = k
	}

	return index
}()
