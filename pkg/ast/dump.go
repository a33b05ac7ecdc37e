package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/Sumatoshi-tech/arkast/pkg/kind"
	"github.com/Sumatoshi-tech/arkast/pkg/native"
)

// Dump renders the tree at n as nested maps ready for encoding/json. Each
// map has "kind", the scalar fields by schema name, node fields as maps and
// node lists as slices. Modifiers and comments appear when set.
func Dump(n Node) (map[string]any, error) {
	if n == nil {
		return nil, nil
	}

	out := map[string]any{"kind": n.Kind().String()}

	err := dumpMeta(n, out)
	if err != nil {
		return nil, err
	}

	if unsupported, ok := n.(*Unsupported); ok {
		out["unsupported"] = true

		text, textErr := unsupported.Text()
		if textErr != nil {
			return nil, textErr
		}

		if text != "" {
			out["text"] = text
		}

		return out, nil
	}

	sess := n.Session()

	raw, fields, err := sess.currentFields(n.Addr())
	if err != nil {
		return nil, atNode(n, err)
	}

	for idx, field := range raw.Spec().Fields {
		value := fields[idx]

		switch field.Type {
		case kind.FieldNode:
			child, wrapErr := sess.wrap(value.Node())
			if wrapErr != nil {
				return nil, wrapErr
			}

			if child == nil {
				continue
			}

			out[field.Name], err = Dump(child)
		case kind.FieldNodes:
			out[field.Name], err = dumpList(sess, value.Nodes())
		case kind.FieldString:
			out[field.Name] = value.Str()
		case kind.FieldInt:
			out[field.Name] = value.Int()
		case kind.FieldBool:
			out[field.Name] = value.Bool()
		}

		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

func dumpList(sess *Session, addrs []native.Addr) ([]any, error) {
	items := make([]any, 0, len(addrs))

	for _, addr := range addrs {
		child, err := sess.wrap(addr)
		if err != nil {
			return nil, err
		}

		item, err := Dump(child)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}

func dumpMeta(n Node, out map[string]any) error {
	mods, err := n.Modifiers()
	if err != nil {
		return err
	}

	if mods != native.ModNone {
		out["modifiers"] = mods.Keywords()
	}

	comment, err := n.Comment()
	if err != nil {
		return err
	}

	if comment != "" {
		out["comment"] = comment
	}

	return nil
}

// TreeStyle decorates the parts of a tree line. Nil functions leave the text
// as is.
type TreeStyle struct {
	Kind  func(string) string
	Field func(string) string
	Value func(string) string
}

func (s *TreeStyle) kind(text string) string {
	if s == nil {
		return text
	}

	return decorate(s.Kind, text)
}

func (s *TreeStyle) field(text string) string {
	if s == nil {
		return text
	}

	return decorate(s.Field, text)
}

func (s *TreeStyle) value(text string) string {
	if s == nil {
		return text
	}

	return decorate(s.Value, text)
}

func decorate(fn func(string) string, text string) string {
	if fn == nil {
		return text
	}

	return fn(text)
}

// FprintTree writes an indented outline of the tree at root, one node per
// line, labelled with the field it occupies in its parent.
func FprintTree(w io.Writer, root Node, style *TreeStyle) error {
	return fprintNode(w, root, "", 0, style)
}

func fprintNode(w io.Writer, n Node, label string, depth int, style *TreeStyle) error {
	if n == nil {
		return nil
	}

	var line strings.Builder

	line.WriteString(strings.Repeat("  ", depth))

	if label != "" {
		line.WriteString(style.field(label))
		line.WriteString(": ")
	}

	line.WriteString(style.kind(n.Kind().String()))

	mods, err := n.Modifiers()
	if err != nil {
		return err
	}

	if mods != native.ModNone {
		line.WriteString(" [" + mods.String() + "]")
	}

	if IsUnsupported(n) {
		line.WriteString(" (unsupported)")

		return writeLine(w, line.String())
	}

	sess := n.Session()

	raw, fields, err := sess.currentFields(n.Addr())
	if err != nil {
		return atNode(n, err)
	}

	spec := raw.Spec()

	for idx, field := range spec.Fields {
		if field.Type.IsNode() {
			continue
		}

		line.WriteString(" " + field.Name + "=" + style.value(scalarText(field.Type, fields[idx])))
	}

	err = writeLine(w, line.String())
	if err != nil {
		return err
	}

	for idx, field := range spec.Fields {
		switch field.Type {
		case kind.FieldNode:
			child, wrapErr := sess.wrap(fields[idx].Node())
			if wrapErr != nil {
				return wrapErr
			}

			err = fprintNode(w, child, field.Name, depth+1, style)
		case kind.FieldNodes:
			for pos, addr := range fields[idx].Nodes() {
				child, wrapErr := sess.wrap(addr)
				if wrapErr != nil {
					return wrapErr
				}

				err = fprintNode(w, child, field.Name+"["+strconv.Itoa(pos)+"]", depth+1, style)
				if err != nil {
					return err
				}
			}
		default:
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func scalarText(ft kind.FieldType, value native.Value) string {
	switch ft {
	case kind.FieldString:
		return strconv.Quote(value.Str())
	case kind.FieldInt:
		return strconv.FormatInt(value.Int(), 10)
	case kind.FieldBool:
		return strconv.FormatBool(value.Bool())
	default:
		return value.String()
	}
}

func writeLine(w io.Writer, line string) error {
	_, err := fmt.Fprintln(w, line)
	if err != nil {
		return errors.Wrap(err, "write tree")
	}

	return nil
}
