package cdcl

import (
	"context"

	"github.com/cnfkit/satcore/dimacs"
)

// Solve runs CDCL to a terminal verdict on p. ctx is consulted only
// between branching decisions, never mid-propagation or mid-analysis: the
// solver's invariants are only quiescent at a decision point, so that is
// the only place cancellation can be noticed safely.
func Solve(ctx context.Context, p dimacs.Problem) (Result, error) {
	s := newSolver(p.NumVars)

	if ok := s.initialize(p.Clauses); !ok {
		return Result{Sat: false, Stats: s.stats}, nil
	}
	if conflict := s.propagate(); conflict != noReason {
		return Result{Sat: false, Stats: s.stats}, nil
	}

	sat, err := s.search(ctx)
	if err != nil {
		return Result{}, err
	}
	if !sat {
		return Result{Sat: false, Stats: s.stats}, nil
	}
	return Result{Sat: true, Model: s.model(), Stats: s.stats}, nil
}

// initialize loads the original clause set: an empty clause is immediate
// UNSAT; a unit clause directly assigns (or, if it contradicts an earlier
// unit clause, reports immediate UNSAT); longer clauses register their
// first two literals as watches via addClause.
func (s *solver) initialize(clauses [][]int) bool {
	for _, c := range clauses {
		if len(c) == 0 {
			return false
		}
		lits := make([]lit, len(c))
		for i, x := range c {
			lits[i] = fromDIMACS(x)
		}
		idx := s.addClause(lits, false)
		if len(lits) != 1 {
			continue
		}
		l := lits[0]
		switch {
		case s.litFalse(l):
			return false
		case s.litTrue(l):
			// Consistent with an earlier unit clause; nothing to do.
		default:
			s.assign(l, 0, idx)
		}
	}
	return true
}

// search alternates propagation, conflict analysis, and branching until
// the formula is decided: propagate to a fixpoint or a conflict; on
// conflict, learn a clause and backjump, or report UNSAT if the conflict
// persists at decision level 0; otherwise branch on the next unassigned
// variable, or report SAT if none remain.
func (s *solver) search(ctx context.Context) (sat bool, err error) {
	for {
		if conflict := s.propagate(); conflict != noReason {
			s.stats.Conflicts++
			if s.level == 0 {
				return false, nil
			}
			learned, backjump := s.analyze(conflict)
			s.backtrack(backjump)
			idx := s.addClause(learned, true)
			s.stats.Learned++
			assertLit := learned[0]
			s.assign(assertLit, s.level, idx)
			continue
		}

		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
		}

		v, ok := s.pickBranchVar()
		if !ok {
			return true, nil
		}
		s.level++
		s.stats.Decisions++
		s.assign(mkLit(v, false), s.level, noReason)
	}
}

func (s *solver) model() []int {
	m := make([]int, s.numVars)
	for v := 0; v < s.numVars; v++ {
		if s.vars[v].assigned && !s.vars[v].value {
			m[v] = -(v + 1)
			continue
		}
		m[v] = v + 1
	}
	return m
}
