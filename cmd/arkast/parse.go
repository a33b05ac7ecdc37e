package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/arkast/pkg/ast"
	"github.com/Sumatoshi-tech/arkast/pkg/safeconv"
)

// ErrUnsupportedFormat reports an unknown --format value.
var ErrUnsupportedFormat = errors.New("unsupported format")

type parseOptions struct {
	language string
	format   string
	noColor  bool
}

func parseCmd() *cobra.Command {
	var opts parseOptions

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a source file and print its tree",
		Long: `Parse a TypeScript, TSX or ArkTS file and print the typed tree.

Examples:
  arkast parse main.ets                 # Indented tree
  arkast parse -f json app.ts           # JSON dump
  arkast parse -l tsx component.txt     # Force the TSX grammar`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv("", func(env *runtimeEnv) error {
				return runParse(cmd.Context(), env, args[0], opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			})
		},
	}

	cmd.Flags().StringVarP(&opts.language, "language", "l", "", "force the grammar (typescript, tsx)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatTree, "output format (tree, json)")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	return cmd
}

func runParse(ctx context.Context, env *runtimeEnv, path string, opts parseOptions, out, errOut io.Writer) error {
	if opts.format != formatTree && opts.format != formatJSON {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, opts.format)
	}

	if ctx == nil {
		ctx = context.Background()
	}

	src, err := env.open(ctx, path, opts.language)
	if err != nil {
		return err
	}
	defer src.sess.Dispose()

	root, err := src.sess.Root()
	if err != nil {
		return err
	}

	if opts.format == formatJSON {
		err = writeJSON(out, root)
	} else {
		err = ast.FprintTree(out, root, treeStyle(opts.noColor))
	}

	if err != nil {
		return err
	}

	reportSyntaxErrors(errOut, src)

	return nil
}

func writeJSON(w io.Writer, root ast.Node) error {
	dump, err := ast.Dump(root)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	err = enc.Encode(dump)
	if err != nil {
		return fmt.Errorf("encode tree: %w", err)
	}

	return nil
}

func treeStyle(noColor bool) *ast.TreeStyle {
	if noColor || color.NoColor {
		return nil
	}

	kindColor := color.New(color.FgCyan, color.Bold)
	fieldColor := color.New(color.FgYellow)
	valueColor := color.New(color.FgGreen)

	return &ast.TreeStyle{
		Kind:  func(s string) string { return kindColor.Sprint(s) },
		Field: func(s string) string { return fieldColor.Sprint(s) },
		Value: func(s string) string { return valueColor.Sprint(s) },
	}
}

func reportSyntaxErrors(w io.Writer, src *source) {
	res := src.result

	for _, syntaxErr := range res.Errors {
		color.New(color.FgYellow).Fprintf(w, "warning: %s:%s: cannot parse %q\n",
			src.path, syntaxErr.Span.Start, sanitizeForTerminal(syntaxErr.Text))
	}

	fmt.Fprintf(w, "%s: %s, %s nodes (%s opaque)\n",
		src.path,
		humanize.Bytes(safeconv.MustIntToUint64(len(src.text))),
		humanize.Comma(int64(res.Nodes)),
		humanize.Comma(int64(res.Opaque)),
	)
}
