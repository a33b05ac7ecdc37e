// Copyright (c) 2015, Arbo von Monkiewitsch All rights reserved.
// Use of this source code is governed by a BSD-style
// license.

// Package levenshtein measures edit distance between short names and picks
// the closest candidate for "did you mean" hints.
package levenshtein

// Context reuses its row buffer across Distance calls. It is not safe for
// concurrent use.
type Context struct {
	row []int
}

func (ctx *Context) buffer(length int) []int {
	if cap(ctx.row) < length {
		ctx.row = make([]int, length)
	}

	return ctx.row[:length]
}

// Distance is the minimum number of single-rune insertions, deletions and
// substitutions turning a into b. It keeps one row of the edit matrix.
func (ctx *Context) Distance(a, b string) int {
	s1, s2 := []rune(a), []rune(b)

	if len(s2) == 0 {
		return len(s1)
	}

	row := ctx.buffer(len(s1) + 1)
	for idx := range row {
		row[idx] = idx
	}

	for col, r := range s2 {
		diag := row[0]
		row[0] = col + 1

		for idx := range s1 {
			above := row[idx+1]

			cost := 1
			if s1[idx] == r {
				cost = 0
			}

			row[idx+1] = min(above+1, row[idx]+1, diag+cost)
			diag = above
		}
	}

	return row[len(s1)]
}

// Closest returns the candidate nearest to name when it is within maxDist
// edits. Ties go to the earlier candidate.
func Closest(name string, candidates []string, maxDist int) (string, bool) {
	var ctx Context

	best, bestDist := "", maxDist+1

	for _, candidate := range candidates {
		dist := ctx.Distance(name, candidate)
		if dist < bestDist {
			best, bestDist = candidate, dist
		}
	}

	return best, bestDist <= maxDist
}
