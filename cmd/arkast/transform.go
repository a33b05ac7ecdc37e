package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/arkast/pkg/ast"
	"github.com/Sumatoshi-tech/arkast/pkg/config"
	"github.com/Sumatoshi-tech/arkast/pkg/passes"
)

// ErrNoPasses reports a transform without any pass to run.
var ErrNoPasses = errors.New("no passes selected")

type transformOptions struct {
	language        string
	output          string
	metricsTextfile string
	passes          []string
	renames         []string
	callees         []string
	diff            bool
	changes         bool
}

func transformCmd() *cobra.Command {
	var opts transformOptions

	cmd := &cobra.Command{
		Use:   "transform <file>",
		Short: "Run rewrite passes over a source file",
		Long: `Run rewrite passes over a source file and print the rewritten source.

Passes run in the order given. Without --pass the engine.passes list of the
config file is used.

Examples:
  arkast transform -p const-fold main.ets
  arkast transform -p rename --rename oldName=newName --diff app.ts
  arkast transform -p strip-calls -p const-fold --changes -o out.ts app.ts`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(opts.metricsTextfile, func(env *runtimeEnv) error {
				return runTransform(cmd.Context(), env, args[0], opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			})
		},
	}

	cmd.Flags().StringVarP(&opts.language, "language", "l", "", "force the grammar (typescript, tsx)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the rewritten source to this file")
	cmd.Flags().StringVar(&opts.metricsTextfile, "metrics-textfile", "", "write a Prometheus metrics snapshot to this file")
	cmd.Flags().StringSliceVarP(&opts.passes, "pass", "p", nil, "pass to run, repeatable ("+strings.Join(passes.Names(), ", ")+")")
	cmd.Flags().StringSliceVar(&opts.renames, "rename", nil, "old=new identifier mapping for the rename pass, repeatable")
	cmd.Flags().StringSliceVar(&opts.callees, "strip", nil, "dotted callee removed by strip-calls, repeatable")
	cmd.Flags().BoolVar(&opts.diff, "diff", false, "print a unified diff instead of the rewritten source")
	cmd.Flags().BoolVar(&opts.changes, "changes", false, "print a summary of structural changes")

	return cmd
}

func runTransform(ctx context.Context, env *runtimeEnv, path string, opts transformOptions, out, errOut io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	pipeline, err := buildPipeline(env, opts)
	if err != nil {
		return err
	}

	src, err := env.open(ctx, path, opts.language)
	if err != nil {
		return err
	}
	defer src.sess.Dispose()

	before, err := src.sess.Root()
	if err != nil {
		return err
	}

	after, err := pipeline.Run(ctx, src.sess)
	if err != nil {
		return err
	}

	printed, err := passes.Sprint(after)
	if err != nil {
		return err
	}

	switch {
	case opts.diff:
		original, printErr := passes.Sprint(before)
		if printErr != nil {
			return printErr
		}

		err = writeUnifiedDiff(out, src.path, lineDiff(original, printed))
	case opts.output != "":
		err = writeOutputFile(opts.output, []byte(printed))
	default:
		_, err = io.WriteString(out, printed)
	}

	if err != nil {
		return err
	}

	if opts.changes {
		return writeChanges(errOut, src.sess, before, after)
	}

	return nil
}

func buildPipeline(env *runtimeEnv, opts transformOptions) (*ast.Pipeline, error) {
	names := opts.passes
	if len(names) == 0 {
		names = env.cfg.Engine.Passes
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("%w: use --pass or engine.passes (known: %s)", ErrNoPasses, strings.Join(passes.Names(), ", "))
	}

	renames, err := config.ParseRenames(append(append([]string{}, env.cfg.Rename...), opts.renames...))
	if err != nil {
		return nil, err
	}

	callees := opts.callees
	if len(callees) == 0 {
		callees = env.cfg.Engine.StripCallees
	}

	built, err := passes.Build(names, passes.Options{Rename: renames, Callees: callees})
	if err != nil {
		return nil, err
	}

	return ast.NewPipeline(built,
		ast.WithPipelineLogger(env.logger()),
		ast.WithTracer(env.providers.Tracer),
		ast.WithMetrics(env.metrics),
		ast.WithRecheck(env.cfg.Engine.Recheck),
	), nil
}

func writeChanges(w io.Writer, sess *ast.Session, before, after ast.Node) error {
	changes, err := ast.DetectChanges(before, after)
	if err != nil {
		return err
	}

	sum := ast.Summarize(changes)
	stats := sess.Stats()

	_, err = fmt.Fprintf(w, "changes: %s modified, %s added, %s removed\nnodes: %s rebuilt, %s created, %s updates shared, %s rechecks\n",
		humanize.Comma(int64(sum.Modified)),
		humanize.Comma(int64(sum.Added)),
		humanize.Comma(int64(sum.Removed)),
		humanize.Comma(stats.Rebuilt),
		humanize.Comma(stats.Created),
		humanize.Comma(stats.Shared),
		humanize.Comma(stats.Rechecks),
	)
	if err != nil {
		return fmt.Errorf("write changes: %w", err)
	}

	return nil
}
