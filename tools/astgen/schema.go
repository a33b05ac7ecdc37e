package main

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// Schema validation errors.
var (
	ErrSchemaInvalid   = errors.New("schema does not match node schema format")
	ErrDuplicateKind   = errors.New("duplicate kind")
	ErrUnknownRef      = errors.New("unknown kind or category")
	ErrLayoutMismatch  = errors.New("representative layout differs")
	ErrReservedField   = errors.New("field name collides with a node method")
	ErrDuplicateField  = errors.New("duplicate field")
	ErrMissingNodeType = errors.New("node field without of")
)

//go:embed nodes.schema.json
var nodesJSONSchema string

var categories = []string{"Node", "Expression", "Literal", "TypeNode", "Statement", "Declaration"}

// Accessor names already taken by the Node interface.
var reservedAccessors = []string{
	"Addr", "Kind", "Session", "Parent", "NextSibling", "Modifiers",
	"SetModifiers", "HasModifier", "Comment", "Span", "String",
}

// Schema is the parsed nodes.yaml.
type Schema struct {
	Kinds   []KindDef `yaml:"kinds"`
	Version int       `yaml:"version"`
}

// KindDef is one node kind.
type KindDef struct {
	Name          string     `yaml:"name"`
	Category      string     `yaml:"category"`
	RepresentedBy string     `yaml:"representedBy"`
	Fields        []FieldDef `yaml:"fields"`
	Stub          bool       `yaml:"stub"`
	Reindex       bool       `yaml:"reindex"`
}

// FieldDef is one field of a kind.
type FieldDef struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Of       string `yaml:"of"`
	Optional bool   `yaml:"optional"`
}

// IsNode reports whether the field holds child nodes.
func (f FieldDef) IsNode() bool { return f.Type == "node" || f.Type == "nodes" }

// OfCategory reports whether Of names a category rather than a kind.
func (f FieldDef) OfCategory() bool { return slices.Contains(categories, f.Of) }

// LoadSchema reads and validates a schema file.
func LoadSchema(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}

	return ParseSchema(data)
}

// ParseSchema validates raw YAML against the node schema format and the
// cross-reference rules, then decodes it.
func ParseSchema(data []byte) (*Schema, error) {
	var raw any

	err := yaml.Unmarshal(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(nodesJSONSchema),
		gojsonschema.NewGoLoader(raw),
	)
	if err != nil {
		return nil, fmt.Errorf("validate schema: %w", err)
	}

	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}

		return nil, fmt.Errorf("%w: %s", ErrSchemaInvalid, strings.Join(msgs, "; "))
	}

	var schema Schema

	err = yaml.Unmarshal(data, &schema)
	if err != nil {
		return nil, fmt.Errorf("decode schema: %w", err)
	}

	err = schema.check()
	if err != nil {
		return nil, err
	}

	return &schema, nil
}

// Kind returns the definition of a kind by name.
func (s *Schema) Kind(name string) (KindDef, bool) {
	for _, def := range s.Kinds {
		if def.Name == name {
			return def, true
		}
	}

	return KindDef{}, false
}

func (s *Schema) check() error {
	seen := make(map[string]bool, len(s.Kinds))

	for _, def := range s.Kinds {
		if seen[def.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateKind, def.Name)
		}

		seen[def.Name] = true
	}

	for _, def := range s.Kinds {
		err := s.checkKind(def, seen)
		if err != nil {
			return err
		}
	}

	return nil
}

func (s *Schema) checkKind(def KindDef, known map[string]bool) error {
	fieldNames := make(map[string]bool, len(def.Fields))

	for _, field := range def.Fields {
		if fieldNames[field.Name] {
			return fmt.Errorf("%w: %s.%s", ErrDuplicateField, def.Name, field.Name)
		}

		fieldNames[field.Name] = true

		if slices.Contains(reservedAccessors, exportName(field.Name)) {
			return fmt.Errorf("%w: %s.%s", ErrReservedField, def.Name, field.Name)
		}

		if !field.IsNode() {
			continue
		}

		if field.Of == "" {
			return fmt.Errorf("%w: %s.%s", ErrMissingNodeType, def.Name, field.Name)
		}

		if !field.OfCategory() && !known[field.Of] {
			return fmt.Errorf("%w: %s in %s.%s", ErrUnknownRef, field.Of, def.Name, field.Name)
		}
	}

	if def.RepresentedBy == "" {
		return nil
	}

	rep, ok := s.Kind(def.RepresentedBy)
	if !ok {
		return fmt.Errorf("%w: %s represented by %s", ErrUnknownRef, def.Name, def.RepresentedBy)
	}

	if rep.Category != def.Category || !slices.Equal(rep.Fields, def.Fields) {
		return fmt.Errorf("%w: %s vs %s", ErrLayoutMismatch, def.Name, rep.Name)
	}

	return nil
}
