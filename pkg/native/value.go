package native

import (
	"slices"
	"strconv"
)

// ValueTag discriminates the payload of a Value.
type ValueTag uint8

// Value tags.
const (
	ValueNone ValueTag = iota
	ValueNode
	ValueNodes
	ValueString
	ValueInt
	ValueBool
)

func (t ValueTag) String() string {
	switch t {
	case ValueNone:
		return "none"
	case ValueNode:
		return "node"
	case ValueNodes:
		return "nodes"
	case ValueString:
		return "string"
	case ValueInt:
		return "int"
	case ValueBool:
		return "bool"
	default:
		return "ValueTag(" + strconv.Itoa(int(t)) + ")"
	}
}

// Value is one field value crossing the native boundary.
type Value struct {
	nodes []Addr
	str   string
	num   int64
	node  Addr
	tag   ValueTag
}

// NodeValue holds a single child address. Null means absent.
func NodeValue(addr Addr) Value { return Value{tag: ValueNode, node: addr} }

// NodesValue holds an ordered child list. The slice is not copied.
func NodesValue(addrs []Addr) Value { return Value{tag: ValueNodes, nodes: addrs} }

// StringValue holds a string primitive.
func StringValue(s string) Value { return Value{tag: ValueString, str: s} }

// IntValue holds an integer primitive.
func IntValue(n int64) Value { return Value{tag: ValueInt, num: n} }

// BoolValue holds a boolean primitive.
func BoolValue(b bool) Value {
	v := Value{tag: ValueBool}
	if b {
		v.num = 1
	}

	return v
}

// Tag returns the payload discriminator.
func (v Value) Tag() ValueTag { return v.tag }

// Node returns the child address, or Null when v is not a node value.
func (v Value) Node() Addr { return v.node }

// Nodes returns the child list. Callers must not modify it.
func (v Value) Nodes() []Addr { return v.nodes }

// Str returns the string payload.
func (v Value) Str() string { return v.str }

// Int returns the integer payload.
func (v Value) Int() int64 { return v.num }

// Bool returns the boolean payload.
func (v Value) Bool() bool { return v.num != 0 }

// Same reports identity: node values compare by address, node lists by length
// and element-wise address, primitives by value. Deep structure is never
// inspected.
func (v Value) Same(other Value) bool {
	if v.tag != other.tag {
		return false
	}

	switch v.tag {
	case ValueNode:
		return v.node == other.node
	case ValueNodes:
		return slices.Equal(v.nodes, other.nodes)
	case ValueString:
		return v.str == other.str
	case ValueInt, ValueBool:
		return v.num == other.num
	default:
		return true
	}
}

func (v Value) String() string {
	switch v.tag {
	case ValueNode:
		return v.node.String()
	case ValueNodes:
		return "[" + strconv.Itoa(len(v.nodes)) + " nodes]"
	case ValueString:
		return strconv.Quote(v.str)
	case ValueInt:
		return strconv.FormatInt(v.num, 10)
	case ValueBool:
		return strconv.FormatBool(v.Bool())
	default:
		return "none"
	}
}
