package main

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"strings"
	"text/template"
	"unicode"
)

// initialisms are field names whose exported form is all caps.
var initialisms = map[string]string{
	"id": "ID",
}

var categoryBases = map[string]struct{ base, literal string }{
	"Node":        {"nodeBase", "b"},
	"Expression":  {"expressionBase", "expressionBase{b}"},
	"Literal":     {"literalBase", "literalBase{expressionBase{b}}"},
	"TypeNode":    {"typeNodeBase", "typeNodeBase{expressionBase{b}}"},
	"Statement":   {"statementBase", "statementBase{b}"},
	"Declaration": {"declarationBase", "declarationBase{statementBase{b}}"},
}

type fileView struct {
	Source  string
	Kinds   []kindView
	Wrapped []kindView
	Version int
}

type kindView struct {
	Name          string
	Category      string
	Base          string
	Literal       string
	RepresentedBy string
	Fields        []fieldView
	Stub          bool
	Reindex       bool
}

type fieldView struct {
	Name     string
	Method   string
	Param    string
	GoType   string
	Accessor string
	Value    string
	SpecLit  string
}

func exportName(name string) string {
	if upper, ok := initialisms[name]; ok {
		return upper
	}

	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}

func paramName(name string) string {
	if token.IsKeyword(name) {
		return name + "Arg"
	}

	return name
}

func newFileView(schema *Schema, source string) fileView {
	view := fileView{Source: source, Version: schema.Version}

	for _, def := range schema.Kinds {
		kv := newKindView(def)
		view.Kinds = append(view.Kinds, kv)

		if !def.Stub && def.RepresentedBy == "" {
			view.Wrapped = append(view.Wrapped, kv)
		}
	}

	return view
}

func newKindView(def KindDef) kindView {
	bases := categoryBases[def.Category]
	kv := kindView{
		Name:          def.Name,
		Category:      "Category" + def.Category,
		Base:          bases.base,
		Literal:       bases.literal,
		RepresentedBy: def.RepresentedBy,
		Stub:          def.Stub,
		Reindex:       def.Reindex,
	}

	for _, field := range def.Fields {
		kv.Fields = append(kv.Fields, newFieldView(field))
	}

	return kv
}

func newFieldView(field FieldDef) fieldView {
	fv := fieldView{
		Name:   field.Name,
		Method: exportName(field.Name),
		Param:  paramName(field.Name),
	}

	elem := field.Of
	if field.IsNode() && !field.OfCategory() {
		elem = "*" + field.Of
	}

	spec := []string{fmt.Sprintf("Name: %q", field.Name)}

	switch field.Type {
	case "node":
		fv.GoType = elem
		fv.Accessor = fmt.Sprintf("child[%s](n.base(), %q)", elem, field.Name)
		fv.Value = fmt.Sprintf("nodeValue(%s)", fv.Param)
		spec = append(spec, "Type: FieldNode")
	case "nodes":
		fv.GoType = "[]" + elem
		fv.Accessor = fmt.Sprintf("children[%s](n.base(), %q)", elem, field.Name)
		fv.Value = fmt.Sprintf("nodesValue(%s)", fv.Param)
		spec = append(spec, "Type: FieldNodes")
	case "string":
		fv.GoType = "string"
		fv.Accessor = fmt.Sprintf("stringField(n.base(), %q)", field.Name)
		fv.Value = fmt.Sprintf("native.StringValue(%s)", fv.Param)
		spec = append(spec, "Type: FieldString")
	case "int":
		fv.GoType = "int64"
		fv.Accessor = fmt.Sprintf("intField(n.base(), %q)", field.Name)
		fv.Value = fmt.Sprintf("native.IntValue(%s)", fv.Param)
		spec = append(spec, "Type: FieldInt")
	case "bool":
		fv.GoType = "bool"
		fv.Accessor = fmt.Sprintf("boolField(n.base(), %q)", field.Name)
		fv.Value = fmt.Sprintf("native.BoolValue(%s)", fv.Param)
		spec = append(spec, "Type: FieldBool")
	}

	if field.Optional {
		spec = append(spec, "Optional: true")
	}

	if field.IsNode() {
		if field.OfCategory() {
			spec = append(spec, "Accepts: Category"+field.Of)
		} else {
			spec = append(spec, "Kind: "+field.Of)
		}
	}

	fv.SpecLit = "{" + strings.Join(spec, ", ") + "}"

	return fv
}

var kindTemplate = template.Must(template.New("kind").Parse(`// Code generated by astgen from {{.Source}}. DO NOT EDIT.

package kind

// SchemaVersion is the version of the schema these tables were generated from.
const SchemaVersion = {{.Version}}

// Node kinds in schema order.
const (
	Invalid Kind = iota
{{- range .Kinds}}
	{{.Name}}
{{- end}}
	numKinds
)

var specs = [numKinds]Spec{
{{- range .Kinds}}
	{{.Name}}: {
		Name: "{{.Name}}",
		Category: {{.Category}},
{{- if .Stub}}
		Stub: true,
{{- end}}
{{- if .Reindex}}
		Reindex: true,
{{- end}}
{{- if .RepresentedBy}}
		RepresentedBy: {{.RepresentedBy}},
{{- end}}
{{- if .Fields}}
		Fields: []FieldSpec{
{{- range .Fields}}
			{{.SpecLit}},
{{- end}}
		},
{{- end}}
	},
{{- end}}
}
`))

var nodesTemplate = template.Must(template.New("nodes").Parse(`// Code generated by astgen from {{.Source}}. DO NOT EDIT.

package ast

import (
	"github.com/Sumatoshi-tech/arkast/pkg/kind"
	"github.com/Sumatoshi-tech/arkast/pkg/native"
)

var constructors = map[kind.Kind]func(nodeBase) Node{
{{- range .Wrapped}}
	kind.{{.Name}}: func(b nodeBase) Node { return &{{.Name}}{ {{- .Literal -}} } },
{{- end}}
}
{{range $k := .Wrapped}}
// {{$k.Name}} wraps a native {{$k.Name}} node.
type {{$k.Name}} struct{ {{$k.Base}} }
{{range $k.Fields}}
// {{.Method}} returns the {{.Name}} field.
func (n *{{$k.Name}}) {{.Method}}() ({{.GoType}}, error) { return {{.Accessor}} }
{{end}}
// Create{{$k.Name}} allocates a new {{$k.Name}} node.
func Create{{$k.Name}}(s *Session{{range $k.Fields}}, {{.Param}} {{.GoType}}{{end}}) (*{{$k.Name}}, error) {
	return createAs[*{{$k.Name}}](s, kind.{{$k.Name}}{{range $k.Fields}},
		{{.Value}}{{end}}{{if $k.Fields}},
	{{end}})
}
{{- if $k.Fields}}

// Update{{$k.Name}} returns original when every argument matches its current
// field, and a rebuilt node otherwise.
func Update{{$k.Name}}(original *{{$k.Name}}{{range $k.Fields}}, {{.Param}} {{.GoType}}{{end}}) (*{{$k.Name}}, error) {
	return updateAs(original{{range $k.Fields}},
		{{.Value}}{{end}},
	)
}
{{- end}}
{{end}}`))

func render(tmpl *template.Template, view fileView) ([]byte, error) {
	var buf bytes.Buffer

	err := tmpl.Execute(&buf, view)
	if err != nil {
		return nil, fmt.Errorf("execute %s template: %w", tmpl.Name(), err)
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format %s output: %w", tmpl.Name(), err)
	}

	return out, nil
}

// GenerateKinds renders pkg/kind/kind_gen.go.
func GenerateKinds(schema *Schema, source string) ([]byte, error) {
	return render(kindTemplate, newFileView(schema, source))
}

// GenerateNodes renders pkg/ast/nodes_gen.go.
func GenerateNodes(schema *Schema, source string) ([]byte, error) {
	return render(nodesTemplate, newFileView(schema, source))
}
