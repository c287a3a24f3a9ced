// Package dp implements the Davis-Putnam resolution procedure: pure
// literal elimination plus variable elimination by pairwise resolution.
// Pure literals are re-evaluated every round rather than found once,
// since eliminating one variable can turn a previously mixed literal
// pure.
package dp

import (
	"sort"

	"github.com/cnfkit/satcore/dimacs"
)

// Solve decides satisfiability only; it does not reconstruct a model.
func Solve(p dimacs.Problem) bool {
	clauses := cloneClauses(p.Clauses)
	for {
		if len(clauses) == 0 {
			return true
		}

		if pure := findPureLiterals(clauses); len(pure) > 0 {
			clauses = removeContaining(clauses, pure)
			continue
		}

		v := pickVariable(clauses)
		if v == 0 {
			// Clauses remain but none carry a literal: they must all be
			// the empty clause.
			return false
		}
		next, ok := resolveOn(clauses, v)
		if !ok {
			return false
		}
		clauses = next
	}
}

func cloneClauses(clauses [][]int) [][]int {
	out := make([][]int, len(clauses))
	for i, c := range clauses {
		out[i] = append([]int(nil), c...)
	}
	return out
}

func findPureLiterals(clauses [][]int) []int {
	present := make(map[int]bool)
	for _, c := range clauses {
		for _, l := range c {
			present[l] = true
		}
	}
	var pure []int
	for l := range present {
		if !present[-l] {
			pure = append(pure, l)
		}
	}
	sort.Ints(pure)
	return pure
}

func removeContaining(clauses [][]int, lits []int) [][]int {
	drop := make(map[int]bool, len(lits))
	for _, l := range lits {
		drop[l] = true
	}
	var kept [][]int
	for _, c := range clauses {
		containsDropped := false
		for _, l := range c {
			if drop[l] {
				containsDropped = true
				break
			}
		}
		if !containsDropped {
			kept = append(kept, c)
		}
	}
	return kept
}

// pickVariable returns the smallest variable (by absolute value) present
// in clauses, or 0 if clauses is non-empty but every clause is empty.
func pickVariable(clauses [][]int) int {
	min := 0
	for _, c := range clauses {
		for _, l := range c {
			v := l
			if v < 0 {
				v = -v
			}
			if min == 0 || v < min {
				min = v
			}
		}
	}
	return min
}

// resolveOn eliminates variable v: clauses containing +v or -v are
// replaced by every non-tautological pairwise resolvent; an empty
// resolvent reports UNSAT (ok == false).
func resolveOn(clauses [][]int, v int) (result [][]int, ok bool) {
	var pos, neg []([]int)
	for _, c := range clauses {
		hasPos, hasNeg := false, false
		for _, l := range c {
			if l == v {
				hasPos = true
			} else if l == -v {
				hasNeg = true
			}
		}
		switch {
		case hasPos:
			pos = append(pos, c)
		case hasNeg:
			neg = append(neg, c)
		default:
			result = append(result, c)
		}
	}
	for _, c1 := range pos {
		for _, c2 := range neg {
			resolvent, tautology := resolve(c1, c2, v)
			if tautology {
				continue
			}
			if len(resolvent) == 0 {
				return nil, false
			}
			result = append(result, resolvent)
		}
	}
	return result, true
}

// resolve computes (c1 ∪ c2) \ {v, -v}, reporting tautology if the
// result contains both a literal and its negation.
func resolve(c1, c2 []int, v int) (resolvent []int, tautology bool) {
	set := make(map[int]bool, len(c1)+len(c2))
	for _, l := range c1 {
		if l != v && l != -v {
			set[l] = true
		}
	}
	for _, l := range c2 {
		if l != v && l != -v {
			set[l] = true
		}
	}
	for l := range set {
		if set[-l] {
			return nil, true
		}
	}
	out := make([]int, 0, len(set))
	for l := range set {
		out = append(out, l)
	}
	sort.Ints(out)
	return out, false
}
