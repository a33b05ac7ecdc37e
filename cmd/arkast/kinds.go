package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/arkast/pkg/kind"
)

// ErrUnknownCategory reports an unknown --category value.
var ErrUnknownCategory = errors.New("unknown category")

func kindsCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List the node kinds of the schema",
		Long: `List every node kind with its category, fields and wrapper.

Optional fields are marked with "?", list fields with "[]".

Examples:
  arkast kinds
  arkast kinds --category Expression`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runKinds(category, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "only kinds in this category and its subcategories")

	return cmd
}

func runKinds(category string, w io.Writer) error {
	filter, filtered := kind.CategoryNode, false

	if category != "" {
		parsed, ok := kind.ParseCategory(category)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownCategory, category)
		}

		filter, filtered = parsed, true
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Kind", "Category", "Fields", "Represented by", "Wrapper"})

	count := 0

	for _, k := range kind.All() {
		if filtered && !filter.Contains(k) {
			continue
		}

		spec := k.Spec()

		representedBy := ""
		if spec.RepresentedBy != kind.Invalid {
			representedBy = spec.RepresentedBy.String()
		}

		wrapper := "typed"
		if spec.Stub {
			wrapper = "unsupported"
		}

		tbl.AppendRow(table.Row{k.String(), spec.Category.String(), fieldList(spec.Fields), representedBy, wrapper})

		count++
	}

	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d kinds", count)})
	tbl.Render()

	return nil
}

func fieldList(fields []kind.FieldSpec) string {
	names := make([]string, 0, len(fields))

	for _, field := range fields {
		name := field.Name

		if field.Type == kind.FieldNodes {
			name += "[]"
		}

		if field.Optional {
			name += "?"
		}

		names = append(names, name)
	}

	return strings.Join(names, ", ")
}
