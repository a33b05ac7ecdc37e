// Package passes holds the rewrite passes shipped with arkast and a registry
// to build pipelines from pass names.
package passes

import (
	"slices"
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/Sumatoshi-tech/arkast/pkg/ast"
	"github.com/Sumatoshi-tech/arkast/pkg/levenshtein"
)

// Pass names.
const (
	NameRename     = "rename"
	NameStripCalls = "strip-calls"
	NameConstFold  = "const-fold"
	NameNumber     = "number"
)

// suggestDistance bounds the edit distance of "did you mean" hints.
const suggestDistance = 3

// Registry errors.
var (
	ErrUnknownPass   = errors.New("unknown pass")
	ErrMissingOption = errors.New("missing pass option")
)

// Options carries the inputs of passes that need them.
type Options struct {
	// Rename maps old identifier names to new ones.
	Rename map[string]string
	// Callees are the dotted callee names whose call statements StripCalls
	// removes. DefaultCallees is used when empty.
	Callees []string
}

type builder func(opts Options) (ast.Pass, error)

var builders = map[string]builder{
	NameRename: func(opts Options) (ast.Pass, error) {
		if len(opts.Rename) == 0 {
			return nil, errors.WithHint(
				errors.Wrapf(ErrMissingOption, "%s needs at least one mapping", NameRename),
				"pass --rename old=new or set rename in the config file",
			)
		}

		return Rename(opts.Rename), nil
	},
	NameStripCalls: func(opts Options) (ast.Pass, error) {
		callees := opts.Callees
		if len(callees) == 0 {
			callees = DefaultCallees
		}

		return StripCalls(callees...), nil
	},
	NameConstFold: func(Options) (ast.Pass, error) { return ConstFold(), nil },
	NameNumber:    func(Options) (ast.Pass, error) { return Number(), nil },
}

// Names lists the registered passes in sorted order.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Build returns the named passes in the order given.
func Build(names []string, opts Options) ([]ast.Pass, error) {
	out := make([]ast.Pass, 0, len(names))

	for _, name := range names {
		build, ok := builders[name]
		if !ok {
			err := errors.WithHintf(errors.Wrapf(ErrUnknownPass, "%q", name), "known passes: %v", Names())
			if guess, near := levenshtein.Closest(name, Names(), suggestDistance); near {
				err = errors.WithHintf(err, "did you mean %q?", guess)
			}

			return nil, err
		}

		pass, err := build(opts)
		if err != nil {
			return nil, err
		}

		out = append(out, pass)
	}

	return out, nil
}

// Known reports whether name is a registered pass.
func Known(name string) bool {
	return slices.Contains(Names(), name)
}
