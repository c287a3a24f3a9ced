// Package dpll implements the recursive Davis-Putnam-Logemann-Loveland
// decision procedure: unit propagation plus frequency-biased branching,
// copying the formula on each descent rather than mutating and undoing
// in place.
package dpll

import "github.com/cnfkit/satcore/dimacs"

// litEnc is a packed literal: 2*variable + sign (0 = positive, 1 =
// negative).
type litEnc int

func encodeLit(x int) litEnc {
	v := x
	sign := 0
	if v < 0 {
		sign = 1
		v = -v
	}
	return litEnc(2*(v-1) + sign)
}

func (l litEnc) variable() int { return int(l) / 2 }
func (l litEnc) sign() int     { return int(l) % 2 }

type status int

const (
	statusNormal status = iota
	statusSat
	statusUnsat
)

// formula is a CNF clause set plus the per-variable bookkeeping DPLL
// branches on: an assignment (-1 = unassigned, else the sign of the
// literal that was made true), an occurrence frequency, and a polarity
// bias (net sign of the variable's occurrences).
type formula struct {
	numVars  int
	assigned []int8
	freq     []int
	polarity []int
	clauses  [][]litEnc
}

func newFormula(p dimacs.Problem) *formula {
	f := &formula{
		numVars:  p.NumVars,
		assigned: make([]int8, p.NumVars),
		freq:     make([]int, p.NumVars),
		polarity: make([]int, p.NumVars),
	}
	for i := range f.assigned {
		f.assigned[i] = -1
	}
	for _, c := range p.Clauses {
		cls := make([]litEnc, len(c))
		for i, x := range c {
			l := encodeLit(x)
			cls[i] = l
			f.freq[l.variable()]++
			if x > 0 {
				f.polarity[l.variable()]++
			} else {
				f.polarity[l.variable()]--
			}
		}
		f.clauses = append(f.clauses, cls)
	}
	return f
}

func (f *formula) copy() *formula {
	nf := &formula{
		numVars:  f.numVars,
		assigned: append([]int8(nil), f.assigned...),
		freq:     append([]int(nil), f.freq...),
		polarity: append([]int(nil), f.polarity...),
		clauses:  make([][]litEnc, len(f.clauses)),
	}
	for i, cls := range f.clauses {
		nf.clauses[i] = append([]litEnc(nil), cls...)
	}
	return nf
}

// model renders the final signed assignment; unassigned variables (never
// touched because they never appeared in a unit clause on any branch
// taken) print positive.
func (f *formula) model() []int {
	m := make([]int, f.numVars)
	for v := 0; v < f.numVars; v++ {
		if f.assigned[v] == 1 {
			m[v] = -(v + 1)
			continue
		}
		m[v] = v + 1
	}
	return m
}

// Result is the outcome of a DPLL solve.
type Result struct {
	Sat   bool
	Model []int
}
