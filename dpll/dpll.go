package dpll

import "github.com/cnfkit/satcore/dimacs"

// Solve decides satisfiability via recursive DPLL.
func Solve(p dimacs.Problem) Result {
	sol, ok := dpll(newFormula(p))
	if !ok {
		return Result{Sat: false}
	}
	return Result{Sat: true, Model: sol.model()}
}

// unitPropagate repeatedly finds a length-1 clause, assigns its literal,
// and simplifies, until no unit clause remains or a terminal status is
// reached.
func unitPropagate(f *formula) status {
	if len(f.clauses) == 0 {
		return statusSat
	}
	for {
		idx := -1
		for i, cls := range f.clauses {
			if len(cls) == 0 {
				return statusUnsat
			}
			if idx == -1 && len(cls) == 1 {
				idx = i
			}
		}
		if idx == -1 {
			return statusNormal
		}
		lit := f.clauses[idx][0]
		v := lit.variable()
		f.assigned[v] = int8(lit.sign())
		f.freq[v] = -1
		if res := applyTransform(f, v); res != statusNormal {
			return res
		}
	}
}

// applyTransform simplifies f after variable v has just been assigned:
// clauses containing the now-true literal are removed, clauses containing
// the now-false literal have it dropped.
func applyTransform(f *formula, v int) status {
	trueSign := int(f.assigned[v])
	kept := f.clauses[:0]
	for _, cls := range f.clauses {
		satisfied := false
		var newCls []litEnc
		for _, lit := range cls {
			if lit.variable() == v {
				if lit.sign() == trueSign {
					satisfied = true
					break
				}
				continue
			}
			newCls = append(newCls, lit)
		}
		if satisfied {
			continue
		}
		if len(newCls) == 0 {
			return statusUnsat
		}
		kept = append(kept, newCls)
	}
	f.clauses = kept
	if len(f.clauses) == 0 {
		return statusSat
	}
	return statusNormal
}

// dpll is the recursive split: unit-propagate, then branch on the
// highest-frequency unassigned variable, trying the polarity its sign
// bias suggests first.
func dpll(f *formula) (*formula, bool) {
	switch unitPropagate(f) {
	case statusSat:
		return f, true
	case statusUnsat:
		return nil, false
	}

	best, bestFreq := -1, -1
	for v, fr := range f.freq {
		if fr > bestFreq {
			bestFreq, best = fr, v
		}
	}
	if best == -1 {
		return nil, false
	}

	firstSign := int8(1)
	if f.polarity[best] > 0 {
		firstSign = 0
	}
	for _, sign := range [2]int8{firstSign, 1 - firstSign} {
		nf := f.copy()
		nf.assigned[best] = sign
		nf.freq[best] = -1
		switch applyTransform(nf, best) {
		case statusSat:
			return nf, true
		case statusUnsat:
			continue
		}
		if sol, ok := dpll(nf); ok {
			return sol, true
		}
	}
	return nil, false
}
