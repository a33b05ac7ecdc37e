// Package main generates the node kind tables and typed node wrappers from the
// YAML node schema.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

func main() {
	schemaPath := flag.String("schema", "pkg/kind/schema/nodes.yaml", "Path to the node schema")
	kindOut := flag.String("kind", "pkg/kind/kind_gen.go", "Output path for the kind tables")
	nodesOut := flag.String("nodes", "pkg/ast/nodes_gen.go", "Output path for the node wrappers")
	check := flag.Bool("check", false, "Validate the schema without writing files")
	flag.Parse()

	err := run(*schemaPath, *kindOut, *nodesOut, *check)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(schemaPath, kindOut, nodesOut string, check bool) error {
	schema, err := LoadSchema(schemaPath)
	if err != nil {
		return err
	}

	if check {
		fmt.Printf("%s: %d kinds, version %d\n", schemaPath, len(schema.Kinds), schema.Version)

		return nil
	}

	source := "schema/" + filepath.Base(schemaPath)

	kindSrc, err := GenerateKinds(schema, source)
	if err != nil {
		return err
	}

	nodesSrc, err := GenerateNodes(schema, source)
	if err != nil {
		return err
	}

	for path, src := range map[string][]byte{kindOut: kindSrc, nodesOut: nodesSrc} {
		err = os.WriteFile(path, src, 0o600)
		if err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}

		fmt.Printf("Generated %s\n", path)
	}

	return nil
}
