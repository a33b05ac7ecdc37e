package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

const diffContextLines = 3

type diffLine struct {
	text string
	op   diffmatchpatch.Operation
}

// lineDiff compares two texts line by line.
func lineDiff(before, after string) []diffLine {
	dmp := diffmatchpatch.New()
	src, dst, lines := dmp.DiffLinesToRunes(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(src, dst, false), lines)

	var out []diffLine

	for _, d := range diffs {
		if d.Text == "" {
			continue
		}

		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			out = append(out, diffLine{text: line, op: d.Type})
		}
	}

	return out
}

type hunk struct {
	start, end int
}

// hunks groups changed lines with diffContextLines of context around them.
func hunks(lines []diffLine) []hunk {
	var out []hunk

	for idx, line := range lines {
		if line.op == diffmatchpatch.DiffEqual {
			continue
		}

		lo, hi := max(idx-diffContextLines, 0), min(idx+diffContextLines+1, len(lines))

		if n := len(out); n > 0 && lo <= out[n-1].end {
			out[n-1].end = max(out[n-1].end, hi)

			continue
		}

		out = append(out, hunk{start: lo, end: hi})
	}

	return out
}

func writeUnifiedDiff(w io.Writer, name string, lines []diffLine) error {
	groups := hunks(lines)
	if len(groups) == 0 {
		return nil
	}

	// oldAt and newAt hold the number of old and new lines before each index.
	oldAt, newAt := make([]int, len(lines)+1), make([]int, len(lines)+1)

	for idx, line := range lines {
		oldAt[idx+1], newAt[idx+1] = oldAt[idx], newAt[idx]

		if line.op != diffmatchpatch.DiffInsert {
			oldAt[idx+1]++
		}

		if line.op != diffmatchpatch.DiffDelete {
			newAt[idx+1]++
		}
	}

	var buf strings.Builder

	header := color.New(color.Bold)
	header.Fprintf(&buf, "--- a/%s\n+++ b/%s\n", name, name)

	removed, added, marker := color.New(color.FgRed), color.New(color.FgGreen), color.New(color.FgCyan)

	for _, group := range groups {
		oldCount := oldAt[group.end] - oldAt[group.start]
		newCount := newAt[group.end] - newAt[group.start]

		marker.Fprintf(&buf, "@@ -%s +%s @@\n",
			hunkRange(oldAt[group.start], oldCount), hunkRange(newAt[group.start], newCount))

		for _, line := range lines[group.start:group.end] {
			switch line.op {
			case diffmatchpatch.DiffDelete:
				removed.Fprintln(&buf, "-"+line.text)
			case diffmatchpatch.DiffInsert:
				added.Fprintln(&buf, "+"+line.text)
			default:
				buf.WriteString(" " + line.text + "\n")
			}
		}
	}

	_, err := io.WriteString(w, buf.String())
	if err != nil {
		return fmt.Errorf("write diff: %w", err)
	}

	return nil
}

// hunkRange renders a 1-based start and a count. An empty range names the
// line before it.
func hunkRange(before, count int) string {
	if count == 0 {
		return fmt.Sprintf("%d,0", before)
	}

	return fmt.Sprintf("%d,%d", before+1, count)
}
